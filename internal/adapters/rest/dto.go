package rest

import "listing-service/internal/core/domain"

type ErrorResponse struct {
	Error string `json:"error"`
}

// ListingPageResponse - ответ постраничного поиска
type ListingPageResponse struct {
	Rows       []domain.Listing `json:"rows"`
	TotalCount int64            `json:"totalCount"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
}

// ListingSetResponse - ответ поиска с all=true
type ListingSetResponse struct {
	Rows       []domain.Listing `json:"rows"`
	TotalCount int64            `json:"totalCount"`
}

// IngestSummaryResponse - итог загрузки, переданной в теле запроса
type IngestSummaryResponse struct {
	RunID      string   `json:"run_id"`
	Processed  int      `json:"processed"`
	Created    int      `json:"created"`
	Updated    int      `json:"updated"`
	Failed     int      `json:"failed"`
	FailedKeys []string `json:"failed_keys"`
}

func toIngestSummaryResponse(s *domain.IngestSummary) IngestSummaryResponse {
	keys := s.FailedKeys
	if keys == nil {
		keys = []string{}
	}
	return IngestSummaryResponse{
		RunID:      s.RunID,
		Processed:  s.Processed,
		Created:    s.Created,
		Updated:    s.Updated,
		Failed:     s.Failed,
		FailedKeys: keys,
	}
}

// nonNilRows гарантирует "rows": [] вместо null в пустом ответе
func nonNilRows(rows []domain.Listing) []domain.Listing {
	if rows == nil {
		return []domain.Listing{}
	}
	return rows
}
