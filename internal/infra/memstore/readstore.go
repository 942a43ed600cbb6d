package memstore

import (
	"context"
	"slices"
	"strings"

	"producer-market/internal/domain/negotiation"
	"producer-market/internal/domain/user"
	"producer-market/internal/infra"
	"producer-market/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct{ s *Store }

func NewUserReadStore(s *Store) *UserReadStore { return &UserReadStore{s: s} }

func (r *UserReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.UserView, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return userView(u), nil
}

func (r *UserReadStore) FindByEmail(_ context.Context, email string) (*queries.UserView, string, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	id, ok := r.s.usersByEmail[email]
	if !ok {
		return nil, "", infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	u := r.s.users[id]
	return userView(u), u.PasswordHash(), nil
}

func userView(u *user.User) *queries.UserView {
	return &queries.UserView{
		ID:        u.ID(),
		Email:     u.Email().Value(),
		Role:      u.Role().String(),
		CreatedAt: u.CreatedAt(),
	}
}

type OfferReadStore struct{ s *Store }

func NewOfferReadStore(s *Store) *OfferReadStore { return &OfferReadStore{s: s} }

func (r *OfferReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.OfferView, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rec, ok := r.s.offers[id]
	if !ok {
		return nil, infra.WrapRepoErr("offer not found", nil, infra.KindNotFound)
	}
	return queries.FromOffer(rec.toDomain()), nil
}

func (r *OfferReadStore) List(_ context.Context, f queries.OfferFilters, page queries.Page) ([]*queries.OfferView, error) {
	r.s.mu.RLock()
	matched := make([]offerRecord, 0, len(r.s.offers))
	for _, rec := range r.s.offers {
		if matchesOffer(rec, f) && beforeKeyset(rec.createdAt, rec.id, page.After) {
			matched = append(matched, rec)
		}
	}
	r.s.mu.RUnlock()

	slices.SortFunc(matched, func(a, b offerRecord) int {
		return newerFirst(a.createdAt, a.id, b.createdAt, b.id)
	})
	matched = truncate(matched, page.Limit)

	items := make([]*queries.OfferView, 0, len(matched))
	for _, rec := range matched {
		items = append(items, queries.FromOffer(rec.toDomain()))
	}
	return items, nil
}

func matchesOffer(rec offerRecord, f queries.OfferFilters) bool {
	fields := rec.fields
	if f.Q != nil {
		q := strings.ToLower(*f.Q)
		inName := strings.Contains(strings.ToLower(fields.ProductName), q)
		inDesc := fields.Description != nil && strings.Contains(strings.ToLower(*fields.Description), q)
		if !inName && !inDesc {
			return false
		}
	}
	if f.Category != nil && !strings.EqualFold(fields.ProductCategory, *f.Category) {
		return false
	}
	if f.Location != nil && !strings.EqualFold(fields.Location, *f.Location) {
		return false
	}
	if f.MinPrice != nil && fields.UnitPrice.LessThan(*f.MinPrice) {
		return false
	}
	if f.MaxPrice != nil && fields.UnitPrice.GreaterThan(*f.MaxPrice) {
		return false
	}
	if f.Active != nil && fields.Active != *f.Active {
		return false
	}
	if f.ProducerID != nil && rec.producerID != *f.ProducerID {
		return false
	}
	return true
}

type NegotiationReadStore struct{ s *Store }

func NewNegotiationReadStore(s *Store) *NegotiationReadStore { return &NegotiationReadStore{s: s} }

func (r *NegotiationReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.NegotiationView, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rec, ok := r.s.negotiations[id]
	if !ok {
		return nil, infra.WrapRepoErr("negotiation not found", nil, infra.KindNotFound)
	}
	return queries.FromNegotiation(rec.toDomain()), nil
}

func (r *NegotiationReadStore) FindForOffer(_ context.Context, offerID, participantID uuid.UUID) (*queries.NegotiationView, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var best *negotiationRecord
	for _, rec := range r.s.negotiations {
		if rec.offerID != offerID || (rec.buyerID != participantID && rec.producerID != participantID) {
			continue
		}
		if best == nil || preferForOffer(rec, *best) {
			c := rec
			best = &c
		}
	}
	if best == nil {
		return nil, infra.WrapRepoErr("negotiation not found", nil, infra.KindNotFound)
	}
	return queries.FromNegotiation(best.toDomain()), nil
}

// preferForOffer ranks OPEN first, then newest.
func preferForOffer(a, b negotiationRecord) bool {
	aOpen, bOpen := a.status == negotiation.StatusOpen, b.status == negotiation.StatusOpen
	if aOpen != bOpen {
		return aOpen
	}
	return newerFirst(a.createdAt, a.id, b.createdAt, b.id) < 0
}

func (r *NegotiationReadStore) ListByParticipant(_ context.Context, participantID uuid.UUID, page queries.Page) ([]*queries.NegotiationListItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	matched := make([]negotiationRecord, 0)
	for _, rec := range r.s.negotiations {
		if rec.buyerID != participantID && rec.producerID != participantID {
			continue
		}
		if beforeKeyset(rec.createdAt, rec.id, page.After) {
			matched = append(matched, rec)
		}
	}
	slices.SortFunc(matched, func(a, b negotiationRecord) int {
		return newerFirst(a.createdAt, a.id, b.createdAt, b.id)
	})
	matched = truncate(matched, page.Limit)

	items := make([]*queries.NegotiationListItem, 0, len(matched))
	for _, rec := range matched {
		n := rec.toDomain()
		view := queries.FromNegotiation(n)
		item := &queries.NegotiationListItem{
			ID:                n.ID(),
			OfferID:           n.OfferID(),
			BuyerID:           n.BuyerID(),
			ProducerID:        n.ProducerID(),
			Status:            view.Status,
			AgreedPrice:       view.AgreedPrice,
			LastProposedPrice: view.LastProposedPrice(),
			Currency:          n.Currency(),
			MessageCount:      len(view.Messages),
			CreatedAt:         n.CreatedAt(),
			UpdatedAt:         n.UpdatedAt(),
		}
		if o, ok := r.s.offers[n.OfferID()]; ok {
			item.ProductName = o.fields.ProductName
		}
		items = append(items, item)
	}
	return items, nil
}

type OrderReadStore struct{ s *Store }

func NewOrderReadStore(s *Store) *OrderReadStore { return &OrderReadStore{s: s} }

func (r *OrderReadStore) ListByBuyer(_ context.Context, buyerID uuid.UUID, page queries.Page) ([]*queries.OrderView, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	items := make([]*queries.OrderView, 0)
	for _, o := range r.s.orders {
		if o.BuyerID() != buyerID || !beforeKeyset(o.CreatedAt(), o.ID(), page.After) {
			continue
		}
		view := &queries.OrderView{
			ID:                o.ID(),
			BuyerID:           o.BuyerID(),
			OfferID:           o.OfferID(),
			Quantity:          o.Quantity(),
			UnitPriceSnapshot: o.UnitPriceSnapshot(),
			Total:             o.Total(),
			Currency:          o.Currency(),
			Status:            string(o.Status()),
			Notes:             o.Notes(),
			CreatedAt:         o.CreatedAt(),
		}
		if rec, ok := r.s.offers[o.OfferID()]; ok {
			view.ProductName = rec.fields.ProductName
		}
		items = append(items, view)
	}
	slices.SortFunc(items, func(a, b *queries.OrderView) int {
		return newerFirst(a.CreatedAt, a.ID, b.CreatedAt, b.ID)
	})
	return truncate(items, page.Limit), nil
}

type StatsReadStore struct{ s *Store }

func NewStatsReadStore(s *Store) *StatsReadStore { return &StatsReadStore{s: s} }

func (r *StatsReadStore) Overview(_ context.Context) (*queries.Overview, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out queries.Overview
	for _, rec := range r.s.offers {
		if rec.fields.Active {
			out.ActiveOffers++
		}
	}
	for _, u := range r.s.users {
		switch u.Role() {
		case user.RoleProducer:
			out.Producers++
		case user.RoleBuyer:
			out.Buyers++
		}
	}
	return &out, nil
}

func truncate[T any](items []T, limit int32) []T {
	if limit > 0 && len(items) > int(limit) {
		return items[:limit]
	}
	return items
}
