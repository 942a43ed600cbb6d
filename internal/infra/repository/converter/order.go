package converter

import (
	"producer-market/internal/domain/order"
	"producer-market/internal/infra/sqldb"
	"producer-market/internal/pkg/pgconv"
)

func OrderToRow(o *order.Order) sqldb.Orders {
	return sqldb.Orders{
		ID:                o.ID(),
		BuyerID:           o.BuyerID(),
		OfferID:           o.OfferID(),
		Quantity:          pgconv.DecimalToNumeric(o.Quantity()),
		UnitPriceSnapshot: pgconv.DecimalToNumeric(o.UnitPriceSnapshot()),
		Currency:          o.Currency(),
		Status:            string(o.Status()),
		Notes:             pgconv.StringPtrToPgtype(o.Notes()),
		CreatedAt:         pgconv.TimeToPgtype(o.CreatedAt()),
	}
}
