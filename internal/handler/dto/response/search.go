package response

import (
	"medilocate/internal/usecase/queries"
)

type SearchMedicineResponse struct {
	Query   string                 `json:"query"`
	Count   int                    `json:"count"`
	Results []queries.SearchResult `json:"results"`
}

func FromSearchResults(query string, results []queries.SearchResult) *SearchMedicineResponse {
	if results == nil {
		results = []queries.SearchResult{}
	}
	return &SearchMedicineResponse{
		Query:   query,
		Count:   len(results),
		Results: results,
	}
}
