package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"listing-service/internal/adapters/metrics"
	"listing-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	find    *fakeFind
	get     *fakeGet
	export  *fakeExport
	ingest  *fakeIngest
	ping    fakePinger
	timeout time.Duration
}

func (h *harness) router() http.Handler {
	return NewRouter(
		RouterConfig{RequestTimeout: h.timeout, AllowedOrigins: []string{"http://localhost:5173"}},
		NewListingHandler(h.find, h.get, h.export, 50),
		NewIngestHandler(h.ingest),
		NewHealthHandler(h.ping),
		metrics.NewMetrics("test"),
		testLogger{},
	)
}

func newHarness() *harness {
	return &harness{find: &fakeFind{}, get: &fakeGet{}, export: &fakeExport{}, ingest: &fakeIngest{}}
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))
	return rec
}

func TestFindListings_ParsesFiltersAndPage(t *testing.T) {
	h := newHarness()
	h.find.rows = []domain.Listing{{ListingKey: "K1"}}
	h.find.total = 25

	rec := do(t, h.router(), http.MethodGet,
		"/api/v1/listings?city=savage&priceMin=300000&priceMax=500000&bedsMin=2.9&waterfrontOnly=true&lotSizeMin=1&lotSizeUnit=sqft&page=2&pageSize=10&unknown=x", "")
	require.Equal(t, http.StatusOK, rec.Code)

	f := h.find.filters
	assert.Equal(t, "savage", f.City)
	require.NotNil(t, f.PriceMin)
	assert.Equal(t, 300000.0, *f.PriceMin)
	require.NotNil(t, f.BedsMin)
	assert.Equal(t, int64(2), *f.BedsMin)
	assert.True(t, f.WaterfrontOnly)
	assert.Equal(t, domain.LotSizeSquareFeet, f.LotSizeUnit)
	assert.Equal(t, domain.PageRequest{Page: 2, PageSize: 10}, h.find.page)

	var resp ListingPageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(25), resp.TotalCount)
	assert.Equal(t, 2, resp.Page)
	assert.Len(t, resp.Rows, 1)
	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
}

func TestFindListings_DefaultsAndClamp(t *testing.T) {
	h := newHarness()

	rec := do(t, h.router(), http.MethodGet, "/api/v1/listings?page=-3&pageSize=5000&priceMin=abc&waterfrontOnly=no", "")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, domain.PageRequest{Page: 1, PageSize: 50}, h.find.page)
	assert.Nil(t, h.find.filters.PriceMin)
	assert.False(t, h.find.filters.WaterfrontOnly)
	assert.Equal(t, domain.LotSizeAcres, h.find.filters.LotSizeUnit)
	assert.Contains(t, rec.Body.String(), `"rows":[]`)
}

func TestFindListings_All(t *testing.T) {
	h := newHarness()
	h.find.rows = []domain.Listing{{ListingKey: "A"}, {ListingKey: "B"}}
	h.find.total = 2

	rec := do(t, h.router(), http.MethodGet, "/api/v1/listings?all=true", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, h.find.all)
	assert.NotContains(t, rec.Body.String(), `"page"`)
	assert.Contains(t, rec.Body.String(), `"totalCount":2`)
}

func TestFindListings_QueryFailure(t *testing.T) {
	h := newHarness()
	h.find.err = fmt.Errorf("%w: count: %v", domain.ErrQueryFailed, errBoom)

	rec := do(t, h.router(), http.MethodGet, "/api/v1/listings", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to retrieve listings"}`, rec.Body.String())
}

func TestGetListing(t *testing.T) {
	h := newHarness()
	h.get.listing = &domain.Listing{ListingKey: "K9"}

	rec := do(t, h.router(), http.MethodGet, "/api/v1/listings/K9", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "K9", h.get.id)
	assert.Contains(t, rec.Body.String(), `"ListingKey":"K9"`)
}

func TestGetListing_NotFound(t *testing.T) {
	h := newHarness()
	h.get.err = domain.ErrListingNotFound

	rec := do(t, h.router(), http.MethodGet, "/api/v1/listings/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Listing not found"}`, rec.Body.String())
}

func TestGetListing_Failure(t *testing.T) {
	h := newHarness()
	h.get.err = domain.ErrQueryFailed

	rec := do(t, h.router(), http.MethodGet, "/api/v1/listings/x", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestExportListings(t *testing.T) {
	h := newHarness()
	h.export.body = "ListingKey\nA\nB\n"

	rec := do(t, h.router(), http.MethodGet, "/api/v1/listings/export.csv?city=naples", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "2", rec.Header().Get("X-Total-Count"))
	assert.Equal(t, "ListingKey\nA\nB\n", rec.Body.String())

	h.export.err = errBoom
	rec = do(t, h.router(), http.MethodGet, "/api/v1/listings/export.csv", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestIngest(t *testing.T) {
	h := newHarness()
	h.ingest.summary = &domain.IngestSummary{RunID: "r1", Processed: 2, Created: 1, Failed: 1, FailedKeys: []string{"B"}}

	rec := do(t, h.router(), http.MethodPost, "/api/v1/listings/ingest", `{"value":[{"ListingKey":"A"},{"ListingKey":"B"}]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, h.ingest.records, 2)

	var resp IngestSummaryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Processed)
	assert.Equal(t, []string{"B"}, resp.FailedKeys)
}

func TestIngest_NotBoundByRequestTimeout(t *testing.T) {
	h := newHarness()
	h.timeout = time.Minute
	h.ingest.summary = &domain.IngestSummary{RunID: "r1", Processed: 1, Created: 1, FailedKeys: []string{}}
	h.find.rows = []domain.Listing{}

	rec := do(t, h.router(), http.MethodPost, "/api/v1/listings/ingest", `[{"ListingKey":"A"}]`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, h.ingest.hadDeadline)

	rec = do(t, h.router(), http.MethodGet, "/api/v1/listings", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, h.find.hadDeadline)
}

func TestIngest_BadBody(t *testing.T) {
	h := newHarness()

	rec := do(t, h.router(), http.MethodPost, "/api/v1/listings/ingest", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, h.ingest.records)
}

func TestRootHealthAndMetrics(t *testing.T) {
	h := newHarness()
	r := h.router()

	rec := do(t, r, http.MethodGet, "/", "")
	assert.Equal(t, "Backend is up and running!", rec.Body.String())

	rec = do(t, r, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, r, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "listing_http_request_duration_seconds")

	h.ping = fakePinger{err: errBoom}
	rec = do(t, h.router(), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	h := newHarness()

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/listings", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	h.router().ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}
