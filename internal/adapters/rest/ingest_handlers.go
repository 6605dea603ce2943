package rest

import (
	"errors"
	"net/http"

	"listing-service/internal/adapters/feedfile"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/port"
	"listing-service/internal/core/port/usecases_port"
)

// Максимальный размер тела запроса на загрузку фида
const maxIngestBodyBytes = 64 << 20

type IngestHandler struct {
	ingestUC usecases_port.IngestListingsUseCase
}

func NewIngestHandler(ingestUC usecases_port.IngestListingsUseCase) *IngestHandler {
	return &IngestHandler{ingestUC: ingestUC}
}

// Ingest обрабатывает POST /api/v1/listings/ingest. Тело - JSON-массив записей
// или конверт {"value": [...]}.
func (h *IngestHandler) Ingest(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{
		"handler": "Ingest",
	})

	records, err := feedfile.DecodeRecords(http.MaxBytesReader(w, r.Body, maxIngestBodyBytes))
	if err != nil {
		logger.Warn("Invalid feed payload", port.Fields{"error": err.Error()})
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			WriteJSONError(w, http.StatusRequestEntityTooLarge, "Feed payload is too large")
			return
		}
		WriteJSONError(w, http.StatusBadRequest, "Request body must be a JSON array of records")
		return
	}

	summary, err := h.ingestUC.Execute(r.Context(), records)
	if err != nil {
		logger.Error("Ingestion interrupted", err, nil)
		if summary != nil {
			RespondWithJSON(w, http.StatusServiceUnavailable, toIngestSummaryResponse(summary))
			return
		}
		WriteJSONError(w, http.StatusInternalServerError, "Failed to ingest listings")
		return
	}

	RespondWithJSON(w, http.StatusOK, toIngestSummaryResponse(summary))
}
