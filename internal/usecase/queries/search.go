package queries

import (
	"context"
	"sort"
	"strings"

	"medilocate/internal/domain/catalog"
	"medilocate/internal/domain/geo"
	"medilocate/internal/pkg/config"
	"medilocate/internal/pkg/errs"
)

var (
	ErrEmptySearchQuery = errs.New("medicine name is required")
	ErrSearchFailed     = errs.New("medicine search failed")
)

type InventorySearchStore interface {
	SearchByMedicineName(ctx context.Context, name string) ([]InventoryMatch, error)
}

type SearchQueries interface {
	SearchMedicine(ctx context.Context, nameQuery string) ([]SearchResult, error)
}

type searchQueriesImpl struct {
	store  InventorySearchStore
	origin config.SearchConfig
}

func NewSearchQueries(store InventorySearchStore, cfg config.Config) SearchQueries {
	return &searchQueriesImpl{store: store, origin: cfg.Search}
}

// SearchMedicine ranks every inventory line whose medicine name contains
// nameQuery by great-circle distance from the configured origin. The sort is
// stable: ties keep the store's retrieval order. The first result is flagged
// nearest even when it is out of stock.
func (q *searchQueriesImpl) SearchMedicine(ctx context.Context, nameQuery string) ([]SearchResult, error) {
	if strings.TrimSpace(nameQuery) == "" {
		return nil, ErrEmptySearchQuery
	}

	matches, err := q.store.SearchByMedicineName(ctx, nameQuery)
	if err != nil {
		return nil, errs.Mark(err, ErrSearchFailed)
	}

	results := make([]SearchResult, len(matches))
	for i, m := range matches {
		distance := geo.DistanceKm(
			q.origin.OriginLatitude, q.origin.OriginLongitude,
			m.Shop.Latitude, m.Shop.Longitude,
		)

		results[i] = SearchResult{
			Shop:          m.Shop,
			Medicine:      m.Medicine,
			Price:         m.Line.Price,
			StockQuantity: m.Line.StockQuantity,
			DistanceKm:    geo.RoundKm(distance),
			InStock:       m.Line.StockQuantity > 0,
			StockStatus:   catalog.StockStatusFor(m.Line.StockQuantity),
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].DistanceKm < results[j].DistanceKm
	})

	if len(results) > 0 {
		results[0].IsNearest = true
	}

	return results, nil
}
