package sqldb

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const negotiationColumns = `id, offer_id, buyer_id, producer_id, status, agreed_price, currency, created_at, updated_at`

func scanNegotiation(row interface{ Scan(...any) error }) (Negotiations, error) {
	var i Negotiations
	err := row.Scan(
		&i.ID,
		&i.OfferID,
		&i.BuyerID,
		&i.ProducerID,
		&i.Status,
		&i.AgreedPrice,
		&i.Currency,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createNegotiation = `-- name: CreateNegotiation :exec
INSERT INTO negotiations (id, offer_id, buyer_id, producer_id, status, agreed_price, currency, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`

func (q *Queries) CreateNegotiation(ctx context.Context, db DBTX, arg Negotiations) error {
	_, err := db.Exec(ctx, createNegotiation,
		arg.ID,
		arg.OfferID,
		arg.BuyerID,
		arg.ProducerID,
		arg.Status,
		arg.AgreedPrice,
		arg.Currency,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const findNegotiationByID = `-- name: FindNegotiationByID :one
SELECT ` + negotiationColumns + `
FROM negotiations
WHERE id = $1
`

func (q *Queries) FindNegotiationByID(ctx context.Context, db DBTX, id uuid.UUID) (Negotiations, error) {
	return scanNegotiation(db.QueryRow(ctx, findNegotiationByID, id))
}

const findNegotiationByIDForUpdate = `-- name: FindNegotiationByIDForUpdate :one
SELECT ` + negotiationColumns + `
FROM negotiations
WHERE id = $1
FOR UPDATE
`

func (q *Queries) FindNegotiationByIDForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Negotiations, error) {
	return scanNegotiation(db.QueryRow(ctx, findNegotiationByIDForUpdate, id))
}

// OPEN sorts before the terminal states, then newest first.
const findNegotiationForOffer = `-- name: FindNegotiationForOffer :one
SELECT ` + negotiationColumns + `
FROM negotiations
WHERE offer_id = $1
  AND (buyer_id = $2 OR producer_id = $2)
ORDER BY (status = 'OPEN') DESC, created_at DESC, id DESC
LIMIT 1
`

func (q *Queries) FindNegotiationForOffer(ctx context.Context, db DBTX, offerID, participantID uuid.UUID) (Negotiations, error) {
	return scanNegotiation(db.QueryRow(ctx, findNegotiationForOffer, offerID, participantID))
}

const existsOpenNegotiation = `-- name: ExistsOpenNegotiation :one
SELECT EXISTS (
    SELECT 1 FROM negotiations
    WHERE offer_id = $1 AND buyer_id = $2 AND status = 'OPEN'
)
`

func (q *Queries) ExistsOpenNegotiation(ctx context.Context, db DBTX, offerID, buyerID uuid.UUID) (bool, error) {
	row := db.QueryRow(ctx, existsOpenNegotiation, offerID, buyerID)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}

const updateNegotiationState = `-- name: UpdateNegotiationState :execrows
UPDATE negotiations
SET status = $2,
    agreed_price = $3,
    updated_at = $4
WHERE id = $1
`

type UpdateNegotiationStateParams struct {
	ID          uuid.UUID
	Status      string
	AgreedPrice pgtype.Numeric
	UpdatedAt   pgtype.Timestamptz
}

func (q *Queries) UpdateNegotiationState(ctx context.Context, db DBTX, arg UpdateNegotiationStateParams) (int64, error) {
	result, err := db.Exec(ctx, updateNegotiationState,
		arg.ID,
		arg.Status,
		arg.AgreedPrice,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const insertNegotiationMessage = `-- name: InsertNegotiationMessage :exec
INSERT INTO negotiation_messages (id, negotiation_id, seq, sender_id, proposed_price, message, status_update, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

func (q *Queries) InsertNegotiationMessage(ctx context.Context, db DBTX, arg NegotiationMessages) error {
	_, err := db.Exec(ctx, insertNegotiationMessage,
		arg.ID,
		arg.NegotiationID,
		arg.Seq,
		arg.SenderID,
		arg.ProposedPrice,
		arg.Message,
		arg.StatusUpdate,
		arg.CreatedAt,
	)
	return err
}

const listNegotiationMessages = `-- name: ListNegotiationMessages :many
SELECT id, negotiation_id, seq, sender_id, proposed_price, message, status_update, created_at
FROM negotiation_messages
WHERE negotiation_id = $1
ORDER BY seq ASC
`

func (q *Queries) ListNegotiationMessages(ctx context.Context, db DBTX, negotiationID uuid.UUID) ([]NegotiationMessages, error) {
	rows, err := db.Query(ctx, listNegotiationMessages, negotiationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []NegotiationMessages
	for rows.Next() {
		var i NegotiationMessages
		if err := rows.Scan(
			&i.ID,
			&i.NegotiationID,
			&i.Seq,
			&i.SenderID,
			&i.ProposedPrice,
			&i.Message,
			&i.StatusUpdate,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listNegotiationsByParticipant = `-- name: ListNegotiationsByParticipant :many
SELECT n.id, n.offer_id, o.product_name, n.buyer_id, n.producer_id, n.status, n.agreed_price, n.currency,
       (SELECT m.proposed_price FROM negotiation_messages m
         WHERE m.negotiation_id = n.id AND m.proposed_price IS NOT NULL
         ORDER BY m.seq DESC LIMIT 1) AS last_proposed_price,
       (SELECT count(*) FROM negotiation_messages m WHERE m.negotiation_id = n.id) AS message_count,
       n.created_at, n.updated_at
FROM negotiations n
JOIN offers o ON o.id = n.offer_id
WHERE (n.buyer_id = $1 OR n.producer_id = $1)
  AND ($2::timestamptz IS NULL OR (n.created_at, n.id) < ($2, $3::uuid))
ORDER BY n.created_at DESC, n.id DESC
LIMIT $4
`

type ListNegotiationsByParticipantParams struct {
	ParticipantID uuid.UUID
	LastCreatedAt pgtype.Timestamptz
	LastID        pgtype.UUID
	Limit         int32
}

type ListNegotiationsByParticipantRow struct {
	ID                uuid.UUID
	OfferID           uuid.UUID
	ProductName       string
	BuyerID           uuid.UUID
	ProducerID        uuid.UUID
	Status            string
	AgreedPrice       pgtype.Numeric
	Currency          string
	LastProposedPrice pgtype.Numeric
	MessageCount      int64
	CreatedAt         pgtype.Timestamptz
	UpdatedAt         pgtype.Timestamptz
}

func (q *Queries) ListNegotiationsByParticipant(ctx context.Context, db DBTX, arg ListNegotiationsByParticipantParams) ([]ListNegotiationsByParticipantRow, error) {
	rows, err := db.Query(ctx, listNegotiationsByParticipant,
		arg.ParticipantID,
		arg.LastCreatedAt,
		arg.LastID,
		arg.Limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListNegotiationsByParticipantRow
	for rows.Next() {
		var i ListNegotiationsByParticipantRow
		if err := rows.Scan(
			&i.ID,
			&i.OfferID,
			&i.ProductName,
			&i.BuyerID,
			&i.ProducerID,
			&i.Status,
			&i.AgreedPrice,
			&i.Currency,
			&i.LastProposedPrice,
			&i.MessageCount,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
