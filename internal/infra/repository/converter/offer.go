package converter

import (
	"producer-market/internal/domain/offer"
	"producer-market/internal/infra/sqldb"
	"producer-market/internal/pkg/errs"
	"producer-market/internal/pkg/pgconv"
)

func OfferToRow(o *offer.Offer) sqldb.Offers {
	f := o.Fields()
	return sqldb.Offers{
		ID:              o.ID(),
		ProducerID:      o.ProducerID(),
		ProductName:     f.ProductName,
		ProductCategory: f.ProductCategory,
		Sku:             pgconv.StringPtrToPgtype(f.SKU),
		Description:     pgconv.StringPtrToPgtype(f.Description),
		Quantity:        pgconv.DecimalToNumeric(f.Quantity),
		UnitOfMeasure:   f.UnitOfMeasure,
		UnitPrice:       pgconv.DecimalToNumeric(f.UnitPrice),
		Currency:        f.Currency,
		Location:        f.Location,
		Active:          f.Active,
		CreatedAt:       pgconv.TimeToPgtype(o.CreatedAt()),
		UpdatedAt:       pgconv.TimeToPgtype(o.UpdatedAt()),
	}
}

func OfferFromRow(row sqldb.Offers) (*offer.Offer, error) {
	quantity, err := pgconv.DecimalFromNumeric(row.Quantity)
	if err != nil {
		return nil, errs.Wrap(err, "offer quantity")
	}
	unitPrice, err := pgconv.DecimalFromNumeric(row.UnitPrice)
	if err != nil {
		return nil, errs.Wrap(err, "offer unit price")
	}
	f := offer.Fields{
		ProductName:     row.ProductName,
		ProductCategory: row.ProductCategory,
		SKU:             pgconv.StringPtrFromPgtype(row.Sku),
		Description:     pgconv.StringPtrFromPgtype(row.Description),
		Quantity:        quantity,
		UnitOfMeasure:   row.UnitOfMeasure,
		UnitPrice:       unitPrice,
		Currency:        row.Currency,
		Location:        row.Location,
		Active:          row.Active,
	}
	return offer.ReconstructOffer(row.ID, row.ProducerID, f, pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt)), nil
}
