package rest

import (
	"context"
	"errors"
	"io"

	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

type testLogger struct{}

func (testLogger) Info(string, port.Fields)         {}
func (testLogger) Warn(string, port.Fields)         {}
func (testLogger) Error(string, error, port.Fields) {}
func (testLogger) Debug(string, port.Fields)        {}

func (l testLogger) WithFields(port.Fields) port.LoggerPort { return l }

type fakeFind struct {
	filters     domain.ListingFilters
	page        domain.PageRequest
	all         bool
	rows        []domain.Listing
	total       int64
	err         error
	hadDeadline bool
}

func (f *fakeFind) Execute(ctx context.Context, filters domain.ListingFilters, page domain.PageRequest) (*domain.ListingPage, error) {
	_, f.hadDeadline = ctx.Deadline()
	f.filters, f.page = filters, page
	if f.err != nil {
		return nil, f.err
	}
	return &domain.ListingPage{Rows: f.rows, TotalCount: f.total, Page: page.Page, PageSize: page.PageSize}, nil
}

func (f *fakeFind) ExecuteAll(_ context.Context, filters domain.ListingFilters) (*domain.ListingSet, error) {
	f.filters, f.all = filters, true
	if f.err != nil {
		return nil, f.err
	}
	return &domain.ListingSet{Rows: f.rows, TotalCount: f.total}, nil
}

type fakeGet struct {
	listing *domain.Listing
	err     error
	id      string
}

func (f *fakeGet) Execute(_ context.Context, id string) (*domain.Listing, error) {
	f.id = id
	return f.listing, f.err
}

type fakeExport struct {
	body string
	err  error
}

func (f *fakeExport) Execute(_ context.Context, _ domain.ListingFilters, w io.Writer) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	_, err := io.WriteString(w, f.body)
	return 2, err
}

func (f *fakeExport) ContentType() string { return "text/csv; charset=utf-8" }

type fakeIngest struct {
	records     []domain.RawRecord
	summary     *domain.IngestSummary
	err         error
	hadDeadline bool
}

func (f *fakeIngest) Execute(ctx context.Context, records []domain.RawRecord) (*domain.IngestSummary, error) {
	_, f.hadDeadline = ctx.Deadline()
	f.records = records
	return f.summary, f.err
}

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }

var errBoom = errors.New("boom")
