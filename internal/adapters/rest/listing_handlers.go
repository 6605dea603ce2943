package rest

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"listing-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
)

type ListingHandler struct {
	findListingsUC   usecases_port.FindListingsUseCase
	getListingUC     usecases_port.GetListingUseCase
	exportListingsUC usecases_port.ExportListingsUseCase
	maxPageSize      int
}

func NewListingHandler(
	findListingsUC usecases_port.FindListingsUseCase,
	getListingUC usecases_port.GetListingUseCase,
	exportListingsUC usecases_port.ExportListingsUseCase,
	maxPageSize int,
) *ListingHandler {
	return &ListingHandler{
		findListingsUC:   findListingsUC,
		getListingUC:     getListingUC,
		exportListingsUC: exportListingsUC,
		maxPageSize:      maxPageSize,
	}
}

// FindListings обрабатывает GET /api/v1/listings
func (h *ListingHandler) FindListings(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	query := r.URL.Query()

	filters := parseListingFilters(query)
	handlerLogger := logger.WithFields(port.Fields{
		"handler": "FindListings",
		"filters": filters,
	})

	if parseBool(query, "all") {
		set, err := h.findListingsUC.ExecuteAll(r.Context(), filters)
		if err != nil {
			handlerLogger.Error("Use case failed", err, nil)
			WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve listings")
			return
		}
		RespondWithJSON(w, http.StatusOK, ListingSetResponse{
			Rows:       nonNilRows(set.Rows),
			TotalCount: set.TotalCount,
		})
		return
	}

	page := parsePageRequest(query, h.maxPageSize)
	result, err := h.findListingsUC.Execute(r.Context(), filters, page)
	if err != nil {
		handlerLogger.Error("Use case failed", err, port.Fields{"page": page.Page, "page_size": page.PageSize})
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve listings")
		return
	}

	RespondWithJSON(w, http.StatusOK, ListingPageResponse{
		Rows:       nonNilRows(result.Rows),
		TotalCount: result.TotalCount,
		Page:       result.Page,
		PageSize:   result.PageSize,
	})
}

// ExportListings обрабатывает GET /api/v1/listings/export.csv
func (h *ListingHandler) ExportListings(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{
		"handler": "ExportListings",
	})

	// Пишем в буфер, чтобы при ошибке еще можно было вернуть 500
	var buf bytes.Buffer
	count, err := h.exportListingsUC.Execute(r.Context(), parseListingFilters(r.URL.Query()), &buf)
	if err != nil {
		logger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to export listings")
		return
	}

	w.Header().Set("Content-Type", h.exportListingsUC.ContentType())
	w.Header().Set("Content-Disposition", `attachment; filename="listings.csv"`)
	w.Header().Set("X-Total-Count", strconv.Itoa(count))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// GetListing обрабатывает GET /api/v1/listings/{id}
func (h *ListingHandler) GetListing(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{
		"handler":    "GetListing",
		"identifier": id,
	})

	listing, err := h.getListingUC.Execute(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrListingNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Listing not found")
			return
		}
		logger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve listing")
		return
	}

	RespondWithJSON(w, http.StatusOK, listing)
}
