package offer

import (
	"strings"
	"unicode/utf8"

	"producer-market/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const DefaultCurrency = "PLN"

var (
	ErrInvalidProductName = errs.Mark(errs.New("product_name must be 1-200 characters"), errs.ErrInvalidArgument)
	ErrInvalidCategory    = errs.Mark(errs.New("product_category must be 1-100 characters"), errs.ErrInvalidArgument)
	ErrInvalidSKU         = errs.Mark(errs.New("sku must be at most 100 characters"), errs.ErrInvalidArgument)
	ErrInvalidUnit        = errs.Mark(errs.New("unit_of_measure must be 1-20 characters"), errs.ErrInvalidArgument)
	ErrInvalidLocation    = errs.Mark(errs.New("location must be 1-200 characters"), errs.ErrInvalidArgument)
	ErrInvalidQuantity    = errs.Mark(errs.New("quantity must be greater than zero"), errs.ErrInvalidArgument)
	ErrInvalidUnitPrice   = errs.Mark(errs.New("unit_price must be greater than zero"), errs.ErrInvalidArgument)
	ErrInvalidCurrency    = errs.Mark(errs.New("currency must be a 3-letter code"), errs.ErrInvalidArgument)
	ErrDescriptionTooLong = errs.Mark(errs.New("description must be at most 5000 characters"), errs.ErrInvalidArgument)
	ErrProducerRoleNeeded = errs.Mark(errs.New("only producers can manage offers"), errs.ErrForbidden)
	ErrNotOfferOwner      = errs.Mark(errs.New("offer belongs to another producer"), errs.ErrForbidden)
	ErrOfferNotFound      = errs.Mark(errs.New("offer not found"), errs.ErrNotFound)
	ErrOfferNotActive     = errs.Mark(errs.New("offer is not available"), errs.ErrConflict)
)

func boundedText(s string, min, max int, err error) (string, error) {
	t := strings.TrimSpace(s)
	n := utf8.RuneCountInString(t)
	if n < min || n > max {
		return "", err
	}
	return t, nil
}

func optionalText(s *string, max int, err error) (*string, error) {
	if s == nil {
		return nil, nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(t) > max {
		return nil, err
	}
	return &t, nil
}

func normalizeCurrency(s string) (string, error) {
	c := strings.ToUpper(strings.TrimSpace(s))
	if c == "" {
		return DefaultCurrency, nil
	}
	if len(c) != 3 {
		return "", ErrInvalidCurrency
	}
	for _, r := range c {
		if r < 'A' || r > 'Z' {
			return "", ErrInvalidCurrency
		}
	}
	return c, nil
}

func positive(d decimal.Decimal, err error) (decimal.Decimal, error) {
	if !d.IsPositive() {
		return decimal.Zero, err
	}
	return d, nil
}
