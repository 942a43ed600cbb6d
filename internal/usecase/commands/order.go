package commands

//go:generate mockgen -source=$GOFILE -destination=../../mock/commands/$GOFILE -package=commandsmock

import (
	"context"

	"producer-market/internal/domain/offer"
	"producer-market/internal/domain/order"
	"producer-market/internal/domain/user"
	"producer-market/internal/infra"
	"producer-market/internal/pkg/clock"
	"producer-market/internal/usecase/queries"
	"producer-market/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PlaceOrderInput struct {
	OfferID  uuid.UUID
	Quantity decimal.Decimal
	Notes    *string
}

type OrderCommands interface {
	Place(ctx context.Context, principal user.Principal, in PlaceOrderInput) (*queries.OrderView, error)
}

type orderCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewOrderCommands(uow shared.UnitOfWork, clk clock.Clock) OrderCommands {
	return &orderCommandsImpl{uow: uow, clock: clk}
}

func (uc *orderCommandsImpl) Place(ctx context.Context, principal user.Principal, in PlaceOrderInput) (*queries.OrderView, error) {
	if principal.Role != user.RoleBuyer {
		return nil, order.ErrBuyerRoleRequired
	}

	var view *queries.OrderView
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := tx.Offers().FindByID(ctx, in.OfferID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return offer.ErrOfferNotFound
			}
			return err
		}
		if !o.Active() {
			return offer.ErrOfferNotActive
		}

		snapshot := order.OfferSnapshot{
			ID:        o.ID(),
			Quantity:  o.Quantity(),
			UnitPrice: o.UnitPrice(),
			Currency:  o.Currency(),
		}
		placed, err := order.Place(uuid.New(), principal.ID, snapshot, in.Quantity, in.Notes, uc.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.Orders().Create(ctx, placed); err != nil {
			return err
		}

		view = &queries.OrderView{
			ID:                placed.ID(),
			BuyerID:           placed.BuyerID(),
			OfferID:           placed.OfferID(),
			ProductName:       o.ProductName(),
			Quantity:          placed.Quantity(),
			UnitPriceSnapshot: placed.UnitPriceSnapshot(),
			Total:             placed.Total(),
			Currency:          placed.Currency(),
			Status:            string(placed.Status()),
			Notes:             placed.Notes(),
			CreatedAt:         placed.CreatedAt(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}
