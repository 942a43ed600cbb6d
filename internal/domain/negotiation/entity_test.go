//go:build unit

package negotiation_test

import (
	"strings"
	"testing"
	"time"

	"producer-market/internal/domain/negotiation"
	"producer-market/internal/domain/user"
	"producer-market/internal/pkg/ptr"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC)

type fixture struct {
	buyer    user.Principal
	producer user.Principal
	outsider user.Principal
	offer    negotiation.OfferRef
	clock    time.Time
}

func newFixture() *fixture {
	producer := user.Principal{ID: uuid.New(), Role: user.RoleProducer}
	return &fixture{
		buyer:    user.Principal{ID: uuid.New(), Role: user.RoleBuyer},
		producer: producer,
		outsider: user.Principal{ID: uuid.New(), Role: user.RoleBuyer},
		offer:    negotiation.OfferRef{ID: uuid.New(), ProducerID: producer.ID, Currency: "PLN", Active: true},
		clock:    t0,
	}
}

func (f *fixture) next() (ulid.ULID, time.Time) {
	f.clock = f.clock.Add(time.Second)
	return ulid.MustNew(ulid.Timestamp(f.clock), ulid.DefaultEntropy()), f.clock
}

func (f *fixture) open(t *testing.T, price string) *negotiation.Negotiation {
	t.Helper()
	id, now := f.next()
	n, err := negotiation.Open(uuid.New(), id, f.buyer, f.offer, decimal.RequireFromString(price), ptr.Of("hello"), now)
	require.NoError(t, err)
	return n
}

func (f *fixture) post(n *negotiation.Negotiation, sender user.Principal, d negotiation.Draft) (*negotiation.Message, error) {
	id, now := f.next()
	return n.Post(sender, id, d, now)
}

func price(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func status(s negotiation.Status) *negotiation.Status { return &s }

func TestOpen(t *testing.T) {
	t.Run("first message carries the opening proposal", func(t *testing.T) {
		f := newFixture()
		n := f.open(t, "100")

		assert.Equal(t, negotiation.StatusOpen, n.Status())
		assert.Equal(t, f.buyer.ID, n.BuyerID())
		assert.Equal(t, f.producer.ID, n.ProducerID())
		assert.Equal(t, "PLN", n.Currency())
		assert.Nil(t, n.AgreedPrice())
		require.Len(t, n.Messages(), 1)

		m := n.Messages()[0]
		assert.Equal(t, 1, m.Seq())
		assert.Equal(t, f.buyer.ID, m.SenderID())
		assert.Equal(t, "100", m.ProposedPrice().String())
		assert.Equal(t, "hello", *m.Text())
		assert.Nil(t, m.StatusUpdate())
	})

	t.Run("rejections", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(f *fixture) (user.Principal, string)
			errIs  error
		}{
			{
				name:   "producer on own offer",
				mutate: func(f *fixture) (user.Principal, string) { return f.producer, "100" },
				errIs:  negotiation.ErrOwnOffer,
			},
			{
				name: "producer on another producer's offer",
				mutate: func(f *fixture) (user.Principal, string) {
					return user.Principal{ID: uuid.New(), Role: user.RoleProducer}, "100"
				},
				errIs: negotiation.ErrBuyerRoleRequired,
			},
			{
				name: "inactive offer",
				mutate: func(f *fixture) (user.Principal, string) {
					f.offer.Active = false
					return f.buyer, "100"
				},
				errIs: negotiation.ErrOfferInactive,
			},
			{
				name:   "zero price",
				mutate: func(f *fixture) (user.Principal, string) { return f.buyer, "0" },
				errIs:  negotiation.ErrNonPositivePrice,
			},
			{
				name:   "negative price",
				mutate: func(f *fixture) (user.Principal, string) { return f.buyer, "-1" },
				errIs:  negotiation.ErrNonPositivePrice,
			},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := newFixture()
				who, p := tt.mutate(f)
				id, now := f.next()
				n, err := negotiation.Open(uuid.New(), id, who, f.offer, decimal.RequireFromString(p), nil, now)
				require.Nil(t, n)
				require.ErrorIs(t, err, tt.errIs)
			})
		}
	})

	t.Run("text over the limit", func(t *testing.T) {
		f := newFixture()
		id, now := f.next()
		long := strings.Repeat("a", negotiation.MaxMessageLength+1)
		_, err := negotiation.Open(uuid.New(), id, f.buyer, f.offer, decimal.NewFromInt(1), &long, now)
		require.ErrorIs(t, err, negotiation.ErrMessageTooLong)
	})
}

func TestPost(t *testing.T) {
	t.Run("buyer text then producer accepts at the last proposed price", func(t *testing.T) {
		f := newFixture()
		n := f.open(t, "100")

		_, err := f.post(n, f.buyer, negotiation.Draft{Text: ptr.Of("still there?")})
		require.NoError(t, err)
		_, err = f.post(n, f.producer, negotiation.Draft{StatusUpdate: status(negotiation.StatusAccepted)})
		require.NoError(t, err)

		assert.Equal(t, negotiation.StatusAccepted, n.Status())
		require.NotNil(t, n.AgreedPrice())
		assert.Equal(t, "100", n.AgreedPrice().String())
		assert.Len(t, n.Messages(), 3)
	})

	t.Run("producer counter price with ACCEPTED agrees on the counter", func(t *testing.T) {
		f := newFixture()
		n := f.open(t, "100")

		msg, err := f.post(n, f.producer, negotiation.Draft{ProposedPrice: price("90"), StatusUpdate: status(negotiation.StatusAccepted)})
		require.NoError(t, err)

		assert.Equal(t, 2, msg.Seq())
		assert.Equal(t, negotiation.StatusAccepted, n.Status())
		assert.Equal(t, "90", n.AgreedPrice().String())
	})

	t.Run("rejected leaves no agreed price", func(t *testing.T) {
		f := newFixture()
		n := f.open(t, "100")

		_, err := f.post(n, f.producer, negotiation.Draft{StatusUpdate: status(negotiation.StatusRejected)})
		require.NoError(t, err)
		assert.Equal(t, negotiation.StatusRejected, n.Status())
		assert.Nil(t, n.AgreedPrice())
	})

	t.Run("buyer cannot accept", func(t *testing.T) {
		f := newFixture()
		n := f.open(t, "100")

		_, err := f.post(n, f.buyer, negotiation.Draft{StatusUpdate: status(negotiation.StatusAccepted)})
		require.ErrorIs(t, err, negotiation.ErrOnlyProducerDecides)
		assert.Equal(t, negotiation.StatusOpen, n.Status())
		assert.Len(t, n.Messages(), 1)
	})

	t.Run("outsider cannot post", func(t *testing.T) {
		f := newFixture()
		n := f.open(t, "100")

		_, err := f.post(n, f.outsider, negotiation.Draft{Text: ptr.Of("hi")})
		require.ErrorIs(t, err, negotiation.ErrNotParticipant)
	})

	t.Run("closed negotiation rejects every message", func(t *testing.T) {
		f := newFixture()
		n := f.open(t, "100")
		_, err := f.post(n, f.producer, negotiation.Draft{StatusUpdate: status(negotiation.StatusRejected)})
		require.NoError(t, err)

		for _, d := range []negotiation.Draft{
			{Text: ptr.Of("please reconsider")},
			{ProposedPrice: price("120")},
			{StatusUpdate: status(negotiation.StatusAccepted)},
		} {
			_, err := f.post(n, f.buyer, d)
			require.ErrorIs(t, err, negotiation.ErrNegotiationClosed)
			_, err = f.post(n, f.producer, d)
			require.ErrorIs(t, err, negotiation.ErrNegotiationClosed)
		}
		assert.Equal(t, negotiation.StatusRejected, n.Status())
		assert.Len(t, n.Messages(), 2)
	})

	t.Run("validation", func(t *testing.T) {
		tests := []struct {
			name  string
			draft negotiation.Draft
			errIs error
		}{
			{name: "empty", draft: negotiation.Draft{}, errIs: negotiation.ErrEmptyMessage},
			{name: "blank text only", draft: negotiation.Draft{Text: ptr.Of("   ")}, errIs: negotiation.ErrEmptyMessage},
			{name: "zero price", draft: negotiation.Draft{ProposedPrice: price("0")}, errIs: negotiation.ErrNonPositivePrice},
			{name: "status OPEN", draft: negotiation.Draft{StatusUpdate: status(negotiation.StatusOpen)}, errIs: negotiation.ErrInvalidStatusUpdate},
			{name: "unknown status", draft: negotiation.Draft{StatusUpdate: status("MAYBE")}, errIs: negotiation.ErrInvalidStatusUpdate},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := newFixture()
				n := f.open(t, "100")
				_, err := f.post(n, f.producer, tt.draft)
				require.ErrorIs(t, err, tt.errIs)
				assert.Len(t, n.Messages(), 1)
				assert.Equal(t, negotiation.StatusOpen, n.Status())
			})
		}
	})

	t.Run("authorization is checked before the status value", func(t *testing.T) {
		f := newFixture()
		n := f.open(t, "100")

		_, err := f.post(n, f.buyer, negotiation.Draft{StatusUpdate: status("MAYBE")})
		require.ErrorIs(t, err, negotiation.ErrOnlyProducerDecides)
	})

	t.Run("status never returns to OPEN and seq grows by one", func(t *testing.T) {
		f := newFixture()
		n := f.open(t, "100")
		for i := 0; i < 5; i++ {
			sender := f.buyer
			if i%2 == 1 {
				sender = f.producer
			}
			_, err := f.post(n, sender, negotiation.Draft{ProposedPrice: price("95")})
			require.NoError(t, err)
		}
		_, err := f.post(n, f.producer, negotiation.Draft{StatusUpdate: status(negotiation.StatusAccepted)})
		require.NoError(t, err)
		_, err = f.post(n, f.producer, negotiation.Draft{StatusUpdate: status(negotiation.StatusRejected)})
		require.ErrorIs(t, err, negotiation.ErrNegotiationClosed)

		assert.Equal(t, negotiation.StatusAccepted, n.Status())
		for i, m := range n.Messages() {
			assert.Equal(t, i+1, m.Seq())
		}
	})
}

func TestEffectivePrice(t *testing.T) {
	mk := func(seq int, p string) *negotiation.Message {
		var pp *negotiation.Price
		if p != "" {
			v, err := negotiation.NewPrice(decimal.RequireFromString(p))
			require.NoError(t, err)
			pp = &v
		}
		return negotiation.ReconstructMessage(ulid.Make(), seq, uuid.New(), uuid.New(), pp, nil, nil, t0)
	}

	t.Run("candidate wins", func(t *testing.T) {
		c, err := negotiation.NewPrice(decimal.NewFromInt(7))
		require.NoError(t, err)
		got, err := negotiation.EffectivePrice([]*negotiation.Message{mk(1, "100")}, &c)
		require.NoError(t, err)
		assert.Equal(t, "7", got.String())
	})

	t.Run("latest prior price by seq", func(t *testing.T) {
		got, err := negotiation.EffectivePrice([]*negotiation.Message{mk(1, "100"), mk(2, "95"), mk(3, "")}, nil)
		require.NoError(t, err)
		assert.Equal(t, "95", got.String())
	})

	t.Run("no price at all", func(t *testing.T) {
		_, err := negotiation.EffectivePrice([]*negotiation.Message{mk(1, "")}, nil)
		require.ErrorIs(t, err, negotiation.ErrNoProposedPrice)
	})
}

func TestAuthorize(t *testing.T) {
	f := newFixture()
	n := f.open(t, "100")

	assert.NoError(t, negotiation.Authorize(f.buyer, n, negotiation.ActionRead))
	assert.NoError(t, negotiation.Authorize(f.producer, n, negotiation.ActionChangeStatus))
	assert.ErrorIs(t, negotiation.Authorize(f.buyer, n, negotiation.ActionChangeStatus), negotiation.ErrOnlyProducerDecides)
	assert.ErrorIs(t, negotiation.Authorize(f.outsider, n, negotiation.ActionRead), negotiation.ErrNotParticipant)

	_, err := f.post(n, f.producer, negotiation.Draft{StatusUpdate: status(negotiation.StatusRejected)})
	require.NoError(t, err)
	assert.NoError(t, negotiation.Authorize(f.buyer, n, negotiation.ActionRead), "closed negotiations stay readable")
	assert.ErrorIs(t, negotiation.Authorize(f.buyer, n, negotiation.ActionPost), negotiation.ErrNegotiationClosed)
}
