package memstore

import (
	"context"

	"producer-market/internal/domain/negotiation"
	"producer-market/internal/domain/offer"
	"producer-market/internal/domain/order"
	"producer-market/internal/domain/user"
	"producer-market/internal/infra"
	"producer-market/internal/usecase/shared"

	"github.com/google/uuid"
)

type UoW struct {
	store *Store
}

func NewUoW(store *Store) shared.UnitOfWork {
	return &UoW{store: store}
}

// Within runs fn against a staging area and publishes it only when fn succeeds.
func (u *UoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	u.store.txMu.Lock()
	defer u.store.txMu.Unlock()

	t := &memTx{
		store:        u.store,
		users:        make(map[uuid.UUID]*user.User),
		offers:       make(map[uuid.UUID]offerRecord),
		negotiations: make(map[uuid.UUID]negotiationRecord),
		orders:       make(map[uuid.UUID]*order.Order),
	}
	if err := fn(ctx, t); err != nil {
		return err
	}
	t.commit()
	return nil
}

type memTx struct {
	store *Store

	users        map[uuid.UUID]*user.User
	offers       map[uuid.UUID]offerRecord
	negotiations map[uuid.UUID]negotiationRecord
	orders       map[uuid.UUID]*order.Order
}

func (t *memTx) commit() {
	s := t.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, u := range t.users {
		s.users[id] = u
		s.usersByEmail[u.Email().Value()] = id
	}
	for id, r := range t.offers {
		s.offers[id] = r
	}
	for id, r := range t.negotiations {
		s.negotiations[id] = r
	}
	for id, o := range t.orders {
		s.orders[id] = o
	}
}

func (t *memTx) Negotiations() shared.NegotiationRepository { return negotiationRepo{t} }
func (t *memTx) Offers() shared.OfferRepository             { return offerRepo{t} }
func (t *memTx) Orders() shared.OrderRepository             { return orderRepo{t} }
func (t *memTx) Users() shared.UserRepository               { return userRepo{t} }

func (t *memTx) offer(id uuid.UUID) (offerRecord, bool) {
	if r, ok := t.offers[id]; ok {
		return r, true
	}
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	r, ok := t.store.offers[id]
	return r, ok
}

func (t *memTx) negotiation(id uuid.UUID) (negotiationRecord, bool) {
	if r, ok := t.negotiations[id]; ok {
		return r, true
	}
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	r, ok := t.store.negotiations[id]
	return r, ok
}

func (t *memTx) userExists(id uuid.UUID) bool {
	if _, ok := t.users[id]; ok {
		return true
	}
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	_, ok := t.store.users[id]
	return ok
}

func (t *memTx) emailTaken(email string) bool {
	for _, u := range t.users {
		if u.Email().Value() == email {
			return true
		}
	}
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	_, ok := t.store.usersByEmail[email]
	return ok
}

type userRepo struct{ t *memTx }

func (r userRepo) Create(_ context.Context, u *user.User) error {
	if r.t.userExists(u.ID()) || r.t.emailTaken(u.Email().Value()) {
		return infra.WrapRepoErr("user already exists", nil, infra.KindDuplicateKey)
	}
	r.t.users[u.ID()] = u
	return nil
}

type offerRepo struct{ t *memTx }

func (r offerRepo) Create(_ context.Context, o *offer.Offer) error {
	if _, ok := r.t.offer(o.ID()); ok {
		return infra.WrapRepoErr("offer already exists", nil, infra.KindDuplicateKey)
	}
	if !r.t.userExists(o.ProducerID()) {
		return infra.WrapRepoErr("offer producer does not exist", nil, infra.KindForeignKeyViolated)
	}
	r.t.offers[o.ID()] = offerRecordOf(o)
	return nil
}

func (r offerRepo) FindByID(_ context.Context, id uuid.UUID) (*offer.Offer, error) {
	rec, ok := r.t.offer(id)
	if !ok {
		return nil, infra.WrapRepoErr("offer not found", nil, infra.KindNotFound)
	}
	return rec.toDomain(), nil
}

// Write transactions are already serialized, so no extra locking is needed.
func (r offerRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*offer.Offer, error) {
	return r.FindByID(ctx, id)
}

func (r offerRepo) Update(_ context.Context, o *offer.Offer) error {
	if _, ok := r.t.offer(o.ID()); !ok {
		return infra.WrapRepoErr("offer not found", nil, infra.KindNotFound)
	}
	r.t.offers[o.ID()] = offerRecordOf(o)
	return nil
}

type orderRepo struct{ t *memTx }

func (r orderRepo) Create(_ context.Context, o *order.Order) error {
	if _, ok := r.t.offer(o.OfferID()); !ok {
		return infra.WrapRepoErr("order offer does not exist", nil, infra.KindForeignKeyViolated)
	}
	r.t.orders[o.ID()] = o
	return nil
}

type negotiationRepo struct{ t *memTx }

func (r negotiationRepo) Create(ctx context.Context, n *negotiation.Negotiation) error {
	if _, ok := r.t.negotiation(n.ID()); ok {
		return infra.WrapRepoErr("negotiation already exists", nil, infra.KindDuplicateKey)
	}
	if _, ok := r.t.offer(n.OfferID()); !ok {
		return infra.WrapRepoErr("negotiation offer does not exist", nil, infra.KindForeignKeyViolated)
	}
	if n.Status() == negotiation.StatusOpen {
		open, err := r.ExistsOpen(ctx, n.OfferID(), n.BuyerID())
		if err != nil {
			return err
		}
		if open {
			return infra.UniqueViolation("open negotiation already exists", infra.ConstraintOpenNegotiation)
		}
	}
	r.t.negotiations[n.ID()] = negotiationRecordOf(n)
	return nil
}

func (r negotiationRepo) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*negotiation.Negotiation, error) {
	rec, ok := r.t.negotiation(id)
	if !ok {
		return nil, infra.WrapRepoErr("negotiation not found", nil, infra.KindNotFound)
	}
	return rec.toDomain(), nil
}

func (r negotiationRepo) ExistsOpen(_ context.Context, offerID, buyerID uuid.UUID) (bool, error) {
	match := func(rec negotiationRecord) bool {
		return rec.offerID == offerID && rec.buyerID == buyerID && rec.status == negotiation.StatusOpen
	}
	for _, rec := range r.t.negotiations {
		if match(rec) {
			return true, nil
		}
	}
	r.t.store.mu.RLock()
	defer r.t.store.mu.RUnlock()
	for id, rec := range r.t.store.negotiations {
		// staged versions shadow committed ones
		if _, staged := r.t.negotiations[id]; staged {
			continue
		}
		if match(rec) {
			return true, nil
		}
	}
	return false, nil
}

func (r negotiationRepo) AppendMessage(_ context.Context, n *negotiation.Negotiation, msg *negotiation.Message) error {
	rec, ok := r.t.negotiation(n.ID())
	if !ok {
		return infra.WrapRepoErr("negotiation not found", nil, infra.KindNotFound)
	}
	for _, m := range rec.messages {
		if m.Seq() == msg.Seq() {
			return infra.WrapRepoErr("message seq already used", nil, infra.KindDuplicateKey)
		}
	}
	next := negotiationRecordOf(n)
	next.messages = append(append([]*negotiation.Message(nil), rec.messages...), msg)
	r.t.negotiations[n.ID()] = next
	return nil
}
