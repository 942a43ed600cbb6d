package request

import (
	"producer-market/internal/pkg/errs"
	"producer-market/internal/usecase/commands"
	"producer-market/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

var ErrInvalidPriceFilter = errs.Mark(errs.New("min_price and max_price must be decimal numbers"), errs.ErrInvalidArgument)

type CreateOfferRequest struct {
	ProductName     string           `json:"product_name" binding:"required"`
	ProductCategory string           `json:"product_category" binding:"required"`
	SKU             *string          `json:"sku,omitempty"`
	Description     *string          `json:"description,omitempty"`
	Quantity        *decimal.Decimal `json:"quantity" binding:"required"`
	UnitOfMeasure   string           `json:"unit_of_measure" binding:"required"`
	UnitPrice       *decimal.Decimal `json:"unit_price" binding:"required"`
	Currency        *string          `json:"currency,omitempty"`
	Location        string           `json:"location" binding:"required"`
	Active          *bool            `json:"active,omitempty"`
}

func (r *CreateOfferRequest) ToInput() commands.CreateOfferInput {
	return commands.CreateOfferInput{
		ProductName:     r.ProductName,
		ProductCategory: r.ProductCategory,
		SKU:             r.SKU,
		Description:     r.Description,
		Quantity:        *r.Quantity,
		UnitOfMeasure:   r.UnitOfMeasure,
		UnitPrice:       *r.UnitPrice,
		Currency:        r.Currency,
		Location:        r.Location,
		Active:          r.Active,
	}
}

type UpdateOfferRequest struct {
	ProductName     *string          `json:"product_name,omitempty"`
	ProductCategory *string          `json:"product_category,omitempty"`
	SKU             *string          `json:"sku,omitempty"`
	Description     *string          `json:"description,omitempty"`
	Quantity        *decimal.Decimal `json:"quantity,omitempty"`
	UnitOfMeasure   *string          `json:"unit_of_measure,omitempty"`
	UnitPrice       *decimal.Decimal `json:"unit_price,omitempty"`
	Currency        *string          `json:"currency,omitempty"`
	Location        *string          `json:"location,omitempty"`
	Active          *bool            `json:"active,omitempty"`
}

func (r *UpdateOfferRequest) ToInput() commands.UpdateOfferInput {
	return commands.UpdateOfferInput{
		ProductName:     r.ProductName,
		ProductCategory: r.ProductCategory,
		SKU:             r.SKU,
		Description:     r.Description,
		Quantity:        r.Quantity,
		UnitOfMeasure:   r.UnitOfMeasure,
		UnitPrice:       r.UnitPrice,
		Currency:        r.Currency,
		Location:        r.Location,
		Active:          r.Active,
	}
}

// ListOffersQuery carries prices as strings so a malformed number is reported
// as a filter error rather than a binding failure.
type ListOffersQuery struct {
	PageQuery
	Q        *string `form:"q"`
	Category *string `form:"category"`
	Location *string `form:"location"`
	MinPrice *string `form:"min_price"`
	MaxPrice *string `form:"max_price"`
	Active   *bool   `form:"active"`
}

func (r *ListOffersQuery) ToFilters() (queries.OfferFilters, error) {
	f := queries.OfferFilters{
		Q:        nonEmpty(r.Q),
		Category: nonEmpty(r.Category),
		Location: nonEmpty(r.Location),
		Active:   r.Active,
	}
	var err error
	if f.MinPrice, err = parseDecimal(r.MinPrice); err != nil {
		return queries.OfferFilters{}, err
	}
	if f.MaxPrice, err = parseDecimal(r.MaxPrice); err != nil {
		return queries.OfferFilters{}, err
	}
	return f, nil
}

func parseDecimal(s *string) (*decimal.Decimal, error) {
	if s = nonEmpty(s); s == nil {
		return nil, nil
	}
	d, err := decimal.NewFromString(*s)
	if err != nil {
		return nil, ErrInvalidPriceFilter
	}
	return &d, nil
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
