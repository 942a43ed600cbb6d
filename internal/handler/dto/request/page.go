package request

import "producer-market/internal/usecase/queries"

type PageQuery struct {
	After string `form:"after"`
	Limit int    `form:"limit"`
}

func (p PageQuery) Cursor() *queries.Cursor {
	if p.After == "" {
		return nil
	}
	return &queries.Cursor{After: p.After}
}
