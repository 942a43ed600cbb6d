package converter

import (
	"producer-market/internal/domain/negotiation"
	"producer-market/internal/infra/sqldb"
	"producer-market/internal/pkg/errs"
	"producer-market/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/oklog/ulid/v2"
)

func NegotiationToRow(n *negotiation.Negotiation) sqldb.Negotiations {
	return sqldb.Negotiations{
		ID:          n.ID(),
		OfferID:     n.OfferID(),
		BuyerID:     n.BuyerID(),
		ProducerID:  n.ProducerID(),
		Status:      n.Status().String(),
		AgreedPrice: priceToNumeric(n.AgreedPrice()),
		Currency:    n.Currency(),
		CreatedAt:   pgconv.TimeToPgtype(n.CreatedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(n.UpdatedAt()),
	}
}

func MessageToRow(m *negotiation.Message) sqldb.NegotiationMessages {
	row := sqldb.NegotiationMessages{
		ID:            m.ID().String(),
		NegotiationID: m.NegotiationID(),
		Seq:           int32(m.Seq()), // #nosec G115 -- seq is a small positive counter
		SenderID:      m.SenderID(),
		ProposedPrice: priceToNumeric(m.ProposedPrice()),
		Message:       pgconv.StringPtrToPgtype(m.Text()),
		CreatedAt:     pgconv.TimeToPgtype(m.CreatedAt()),
	}
	if s := m.StatusUpdate(); s != nil {
		row.StatusUpdate = pgconv.StringToPgtype(s.String())
	}
	return row
}

func NegotiationFromRows(row sqldb.Negotiations, msgRows []sqldb.NegotiationMessages) (*negotiation.Negotiation, error) {
	status, err := negotiation.NewStatus(row.Status)
	if err != nil {
		return nil, errs.Wrap(err, "negotiation status")
	}
	agreed, err := priceFromNumeric(row.AgreedPrice)
	if err != nil {
		return nil, errs.Wrap(err, "negotiation agreed price")
	}

	messages := make([]*negotiation.Message, 0, len(msgRows))
	for _, mr := range msgRows {
		m, err := MessageFromRow(mr)
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}

	return negotiation.ReconstructNegotiation(
		row.ID, row.OfferID, row.BuyerID, row.ProducerID,
		status, agreed, row.Currency, messages,
		pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func MessageFromRow(row sqldb.NegotiationMessages) (*negotiation.Message, error) {
	id, err := ulid.ParseStrict(row.ID)
	if err != nil {
		return nil, errs.Wrap(err, "message id")
	}
	price, err := priceFromNumeric(row.ProposedPrice)
	if err != nil {
		return nil, errs.Wrap(err, "message proposed price")
	}
	var statusUpdate *negotiation.Status
	if row.StatusUpdate.Valid {
		s, err := negotiation.NewStatusUpdate(row.StatusUpdate.String)
		if err != nil {
			return nil, errs.Wrap(err, "message status update")
		}
		statusUpdate = &s
	}
	return negotiation.ReconstructMessage(
		id, int(row.Seq), row.NegotiationID, row.SenderID,
		price, pgconv.StringPtrFromPgtype(row.Message), statusUpdate,
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}

func priceToNumeric(p *negotiation.Price) pgtype.Numeric {
	if p == nil {
		return pgtype.Numeric{Valid: false}
	}
	return pgconv.DecimalToNumeric(p.Decimal())
}

// Stored prices are trusted; the table's CHECK constraints keep them positive.
func priceFromNumeric(n pgtype.Numeric) (*negotiation.Price, error) {
	d, err := pgconv.DecimalPtrFromNumeric(n)
	if err != nil || d == nil {
		return nil, err
	}
	p, err := negotiation.NewPrice(*d)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
