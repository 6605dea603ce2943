package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"listing-service/internal/contextkeys"
	"listing-service/internal/contracts"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"

	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 10 * time.Second

// publisher - то, что адаптеру нужно от rabbitmq_producer.Publisher
type publisher interface {
	Publish(ctx context.Context, routingKey string, msg amqp.Publishing) error
}

// IngestReporterAdapter публикует итог прогона загрузки как событие IngestReportEvent
type IngestReporterAdapter struct {
	producer   publisher
	routingKey string
}

func NewIngestReporterAdapter(producer publisher, routingKey string) (*IngestReporterAdapter, error) {
	if producer == nil {
		return nil, fmt.Errorf("rabbitmq adapter: producer cannot be nil")
	}
	if routingKey == "" {
		return nil, fmt.Errorf("rabbitmq adapter: routingKey cannot be empty")
	}
	return &IngestReporterAdapter{
		producer:   producer,
		routingKey: routingKey,
	}, nil
}

func (a *IngestReporterAdapter) ReportIngest(ctx context.Context, summary *domain.IngestSummary) error {
	if summary == nil {
		return fmt.Errorf("rabbitmq adapter: summary cannot be nil")
	}

	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":   "IngestReporterAdapter",
		"routing_key": a.routingKey,
		"run_id":      summary.RunID,
	})

	// failed_keys в событии всегда массив
	event := *summary
	if event.FailedKeys == nil {
		event.FailedKeys = []string{}
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("rabbitmq adapter: failed to marshal ingest report: %w", err)
	}
	if err := contracts.ValidateEvent(contracts.IngestReportEvent, contracts.CurrentSchemaVersion, body); err != nil {
		logger.Error("Ingest report does not match its contract", err, nil)
		return fmt.Errorf("rabbitmq adapter: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Type:         contracts.IngestReportEvent,
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Headers: amqp.Table{
			"x-schema-version": contracts.CurrentSchemaVersion,
		},
	}
	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		msg.Headers["x-trace-id"] = traceID
	}

	publishCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	logger.Info("Publishing ingest report", port.Fields{
		"processed": event.Processed,
		"created":   event.Created,
		"updated":   event.Updated,
		"failed":    event.Failed,
	})
	if err := a.producer.Publish(publishCtx, a.routingKey, msg); err != nil {
		logger.Error("Failed to publish ingest report", err, nil)
		return fmt.Errorf("rabbitmq adapter: failed to publish report for run %s: %w", summary.RunID, err)
	}

	logger.Debug("Ingest report published", nil)
	return nil
}
