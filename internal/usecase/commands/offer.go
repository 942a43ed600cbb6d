package commands

//go:generate mockgen -source=$GOFILE -destination=../../mock/commands/$GOFILE -package=commandsmock

import (
	"context"

	"producer-market/internal/domain/offer"
	"producer-market/internal/domain/user"
	"producer-market/internal/infra"
	"producer-market/internal/pkg/clock"
	"producer-market/internal/pkg/patch"
	"producer-market/internal/usecase/queries"
	"producer-market/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateOfferInput struct {
	ProductName     string
	ProductCategory string
	SKU             *string
	Description     *string
	Quantity        decimal.Decimal
	UnitOfMeasure   string
	UnitPrice       decimal.Decimal
	Currency        *string
	Location        string
	Active          *bool
}

// UpdateOfferInput is a partial update; nil fields keep their current value.
type UpdateOfferInput struct {
	ProductName     *string
	ProductCategory *string
	SKU             *string
	Description     *string
	Quantity        *decimal.Decimal
	UnitOfMeasure   *string
	UnitPrice       *decimal.Decimal
	Currency        *string
	Location        *string
	Active          *bool
}

type OfferCommands interface {
	Create(ctx context.Context, principal user.Principal, in CreateOfferInput) (*queries.OfferView, error)
	Update(ctx context.Context, principal user.Principal, offerID uuid.UUID, in UpdateOfferInput) (*queries.OfferView, error)
}

type offerCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewOfferCommands(uow shared.UnitOfWork, clk clock.Clock) OfferCommands {
	return &offerCommandsImpl{uow: uow, clock: clk}
}

func (uc *offerCommandsImpl) Create(ctx context.Context, principal user.Principal, in CreateOfferInput) (*queries.OfferView, error) {
	if principal.Role != user.RoleProducer {
		return nil, offer.ErrProducerRoleNeeded
	}

	o, err := offer.NewOffer(uuid.New(), principal.ID, offer.Fields{
		ProductName:     in.ProductName,
		ProductCategory: in.ProductCategory,
		SKU:             in.SKU,
		Description:     in.Description,
		Quantity:        in.Quantity,
		UnitOfMeasure:   in.UnitOfMeasure,
		UnitPrice:       in.UnitPrice,
		Currency:        patch.Coalesce(in.Currency, offer.DefaultCurrency),
		Location:        in.Location,
		Active:          patch.Coalesce(in.Active, true),
	}, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Offers().Create(ctx, o)
	})
	if err != nil {
		return nil, err
	}
	return queries.FromOffer(o), nil
}

func (uc *offerCommandsImpl) Update(ctx context.Context, principal user.Principal, offerID uuid.UUID, in UpdateOfferInput) (*queries.OfferView, error) {
	var view *queries.OfferView
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := tx.Offers().FindByIDForUpdate(ctx, offerID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return offer.ErrOfferNotFound
			}
			return err
		}
		if !o.IsOwnedBy(principal.ID) {
			return offer.ErrNotOfferOwner
		}

		cur := o.Fields()
		next := offer.Fields{
			ProductName:     patch.Coalesce(in.ProductName, cur.ProductName),
			ProductCategory: patch.Coalesce(in.ProductCategory, cur.ProductCategory),
			SKU:             patch.CoalescePtr(in.SKU, cur.SKU),
			Description:     patch.CoalescePtr(in.Description, cur.Description),
			Quantity:        patch.Coalesce(in.Quantity, cur.Quantity),
			UnitOfMeasure:   patch.Coalesce(in.UnitOfMeasure, cur.UnitOfMeasure),
			UnitPrice:       patch.Coalesce(in.UnitPrice, cur.UnitPrice),
			Currency:        patch.Coalesce(in.Currency, cur.Currency),
			Location:        patch.Coalesce(in.Location, cur.Location),
			Active:          patch.Coalesce(in.Active, cur.Active),
		}
		if err := o.Update(next, uc.clock.Now()); err != nil {
			return err
		}
		if err := tx.Offers().Update(ctx, o); err != nil {
			return err
		}
		view = queries.FromOffer(o)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}
