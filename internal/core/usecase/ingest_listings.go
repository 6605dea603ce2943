package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/normalizer"
	"listing-service/internal/core/port"

	"github.com/google/uuid"
)

const (
	outcomeCreated  = "created"
	outcomeUpdated  = "updated"
	outcomeFailed   = "failed"
	outcomeRejected = "rejected" // запись отклонена до обращения к хранилищу
)

type recordNormalizer interface {
	Normalize(raw domain.RawRecord) (*domain.Listing, []domain.Diagnostic, error)
}

// IngestListingsUseCase последовательно нормализует и сохраняет записи фида.
// Ошибка одной записи не прерывает обработку остальных.
type IngestListingsUseCase struct {
	normalizer recordNormalizer
	storage    port.ListingStoragePort
	validator  port.RecordValidatorPort
	reporter   port.IngestReporterPort
	metrics    port.IngestMetricsPort
}

// NewIngestListingsUseCase создает use case. validator, reporter и metrics могут быть nil.
func NewIngestListingsUseCase(
	normalizer recordNormalizer,
	storage port.ListingStoragePort,
	validator port.RecordValidatorPort,
	reporter port.IngestReporterPort,
	metrics port.IngestMetricsPort,
) *IngestListingsUseCase {
	return &IngestListingsUseCase{
		normalizer: normalizer,
		storage:    storage,
		validator:  validator,
		reporter:   reporter,
		metrics:    metrics,
	}
}

// Execute обрабатывает пачку записей и возвращает итоговую статистику.
// Ошибка возвращается только при отмене контекста, вместе с частичной статистикой.
func (uc *IngestListingsUseCase) Execute(ctx context.Context, records []domain.RawRecord) (*domain.IngestSummary, error) {
	summary := &domain.IngestSummary{
		RunID:      uuid.NewString(),
		FailedKeys: []string{},
	}

	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":     "IngestListings",
		"run_id":       summary.RunID,
		"record_count": len(records),
	})

	ucLogger.Info("Use case started: ingesting feed records", nil)

	for i, raw := range records {
		if err := ctx.Err(); err != nil {
			ucLogger.Warn("Ingestion interrupted", port.Fields{"processed": summary.Processed})
			return summary, fmt.Errorf("ingestion interrupted after %d records: %w", summary.Processed, err)
		}

		summary.Processed++
		created, err := uc.ingestOne(ctx, ucLogger, raw)
		if err != nil {
			key := recordLabel(raw, i)
			ucLogger.Error("Failed to ingest record, skipping", err, port.Fields{"listing_key": key, "index": i})
			summary.Failed++
			summary.FailedKeys = append(summary.FailedKeys, key)
			if isRecordRejected(err) {
				uc.recordOutcome(outcomeRejected)
			} else {
				uc.recordOutcome(outcomeFailed)
			}
			continue
		}

		if created {
			summary.Created++
			uc.recordOutcome(outcomeCreated)
		} else {
			summary.Updated++
			uc.recordOutcome(outcomeUpdated)
		}
	}

	ucLogger.Info("Ingestion finished", port.Fields{
		"processed": summary.Processed,
		"created":   summary.Created,
		"updated":   summary.Updated,
		"failed":    summary.Failed,
	})

	if uc.reporter != nil {
		if err := uc.reporter.ReportIngest(ctx, summary); err != nil {
			// Записи уже сохранены, поэтому ошибка отчета не делает прогон неуспешным
			ucLogger.Error("Failed to report ingest results", err, nil)
		}
	}

	return summary, nil
}

func (uc *IngestListingsUseCase) ingestOne(ctx context.Context, logger port.LoggerPort, raw domain.RawRecord) (bool, error) {
	if uc.validator != nil {
		if err := uc.validator.ValidateRecord(raw); err != nil {
			return false, err
		}
	}

	listing, diagnostics, err := uc.normalizer.Normalize(raw)
	if err != nil {
		return false, err
	}

	for _, d := range diagnostics {
		logger.Warn("Value adjusted during normalization", port.Fields{
			"listing_key": listing.ListingKey,
			"column":      d.Column,
			"kind":        string(d.Kind),
			"detail":      d.Detail,
		})
		if uc.metrics != nil {
			uc.metrics.RecordDiagnostic(d.Kind)
		}
	}

	outcome, err := uc.storage.Upsert(ctx, listing)
	if err != nil {
		return false, err
	}
	return outcome.Created, nil
}

func (uc *IngestListingsUseCase) recordOutcome(outcome string) {
	if uc.metrics != nil {
		uc.metrics.RecordOutcome(outcome)
	}
}

// recordLabel возвращает ключ записи для отчета или ее позицию, если ключа нет.
func recordLabel(raw domain.RawRecord, index int) string {
	candidate := normalizer.FirstNonNull(
		raw["ListingKey"],
		raw["listingkey"],
		normalizer.Lookup(raw, "raw_data", "ListingKey"),
	)
	if key, _ := normalizer.ToBoundedString(candidate, 0); key != nil && strings.TrimSpace(*key) != "" {
		return strings.TrimSpace(*key)
	}
	return fmt.Sprintf("record[%d]", index)
}

func isRecordRejected(err error) bool {
	return errors.Is(err, domain.ErrMissingListingKey) || errors.Is(err, domain.ErrInvalidRecord)
}
