package sqldb

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Users struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    pgtype.Timestamptz
}

type Offers struct {
	ID              uuid.UUID
	ProducerID      uuid.UUID
	ProductName     string
	ProductCategory string
	Sku             pgtype.Text
	Description     pgtype.Text
	Quantity        pgtype.Numeric
	UnitOfMeasure   string
	UnitPrice       pgtype.Numeric
	Currency        string
	Location        string
	Active          bool
	CreatedAt       pgtype.Timestamptz
	UpdatedAt       pgtype.Timestamptz
}

type Negotiations struct {
	ID          uuid.UUID
	OfferID     uuid.UUID
	BuyerID     uuid.UUID
	ProducerID  uuid.UUID
	Status      string
	AgreedPrice pgtype.Numeric
	Currency    string
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}

type NegotiationMessages struct {
	ID            string
	NegotiationID uuid.UUID
	Seq           int32
	SenderID      uuid.UUID
	ProposedPrice pgtype.Numeric
	Message       pgtype.Text
	StatusUpdate  pgtype.Text
	CreatedAt     pgtype.Timestamptz
}

type Orders struct {
	ID                uuid.UUID
	BuyerID           uuid.UUID
	OfferID           uuid.UUID
	Quantity          pgtype.Numeric
	UnitPriceSnapshot pgtype.Numeric
	Currency          string
	Status            string
	Notes             pgtype.Text
	CreatedAt         pgtype.Timestamptz
}
