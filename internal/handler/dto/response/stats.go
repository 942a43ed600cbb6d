package response

import "producer-market/internal/usecase/queries"

type OverviewResponse struct {
	ActiveOffers int64 `json:"active_offers"`
	Producers    int64 `json:"producers"`
	Buyers       int64 `json:"buyers"`
}

func FromOverview(o *queries.Overview) *OverviewResponse {
	return &OverviewResponse{ActiveOffers: o.ActiveOffers, Producers: o.Producers, Buyers: o.Buyers}
}
