package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"listing-service/internal/core/domain"
)

type fakeStorage struct {
	rows    map[string]domain.Listing
	failKey string
	calls   int
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{rows: map[string]domain.Listing{}}
}

func (s *fakeStorage) Upsert(ctx context.Context, listing *domain.Listing) (*domain.UpsertOutcome, error) {
	s.calls++
	if listing.ListingKey == s.failKey {
		return nil, errors.New("unique violation")
	}
	prev, exists := s.rows[listing.ListingKey]
	updatedAt := time.Now()
	if exists && !updatedAt.After(prev.UpdatedAt) {
		updatedAt = prev.UpdatedAt.Add(time.Microsecond)
	}
	stored := *listing
	stored.UpdatedAt = updatedAt
	s.rows[listing.ListingKey] = stored
	return &domain.UpsertOutcome{Created: !exists, UpdatedAt: updatedAt}, nil
}

type fakeReporter struct {
	summaries []*domain.IngestSummary
	err       error
}

func (r *fakeReporter) ReportIngest(ctx context.Context, summary *domain.IngestSummary) error {
	r.summaries = append(r.summaries, summary)
	return r.err
}

type fakeMetrics struct {
	outcomes    map[string]int
	diagnostics map[domain.DiagnosticKind]int
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{outcomes: map[string]int{}, diagnostics: map[domain.DiagnosticKind]int{}}
}

func (m *fakeMetrics) RecordOutcome(outcome string)                { m.outcomes[outcome]++ }
func (m *fakeMetrics) RecordDiagnostic(kind domain.DiagnosticKind) { m.diagnostics[kind]++ }

type rejectAllValidator struct{}

func (rejectAllValidator) ValidateRecord(record domain.RawRecord) error {
	return domain.ErrInvalidRecord
}

type fakeQuery struct {
	page    *domain.ListingPage
	set     *domain.ListingSet
	byID    map[string]domain.Listing
	err     error
	lastReq domain.PageRequest
}

func (q *fakeQuery) FindPage(ctx context.Context, filters domain.ListingFilters, page domain.PageRequest) (*domain.ListingPage, error) {
	q.lastReq = page
	if q.err != nil {
		return nil, q.err
	}
	return q.page, nil
}

func (q *fakeQuery) FindAll(ctx context.Context, filters domain.ListingFilters) (*domain.ListingSet, error) {
	if q.err != nil {
		return nil, q.err
	}
	return q.set, nil
}

func (q *fakeQuery) GetByIdentifier(ctx context.Context, id string) (*domain.Listing, error) {
	if q.err != nil {
		return nil, q.err
	}
	l, ok := q.byID[strings.TrimSpace(id)]
	if !ok {
		return nil, domain.ErrListingNotFound
	}
	return &l, nil
}

type keysEncoder struct{}

func (keysEncoder) ContentType() string { return "text/plain" }

func (keysEncoder) Encode(w io.Writer, listings []domain.Listing) error {
	for _, l := range listings {
		if _, err := io.WriteString(w, l.ListingKey+"\n"); err != nil {
			return err
		}
	}
	return nil
}
