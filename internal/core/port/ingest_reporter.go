package port

import (
	"context"
	"io"
	"listing-service/internal/core/domain"
)

type IngestReporterPort interface {
	ReportIngest(ctx context.Context, summary *domain.IngestSummary) error
}

// IngestMetricsPort собирает счетчики загрузки. Реализация может быть пустой.
type IngestMetricsPort interface {
	RecordOutcome(outcome string)
	RecordDiagnostic(kind domain.DiagnosticKind)
}

// RecordSourcePort - источник сырых записей фида (файл, тело запроса).
type RecordSourcePort interface {
	Records(ctx context.Context) ([]domain.RawRecord, error)
}

// RecordValidatorPort проверяет форму сырой записи до нормализации.
type RecordValidatorPort interface {
	ValidateRecord(record domain.RawRecord) error
}

// ListingEncoderPort сериализует выборку объявлений (например, в CSV).
type ListingEncoderPort interface {
	ContentType() string
	Encode(w io.Writer, listings []domain.Listing) error
}
