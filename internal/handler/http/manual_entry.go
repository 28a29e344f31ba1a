package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/overtime-backend-go/internal/domain/manualentry"
	"github.com/cmlabs-hris/overtime-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/overtime-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type ManualEntryHandler interface {
	ListManualEntries(w http.ResponseWriter, r *http.Request)
	CreateManualEntry(w http.ResponseWriter, r *http.Request)
	DeleteManualEntry(w http.ResponseWriter, r *http.Request)
}

type manualEntryHandlerImpl struct {
	manualEntryService manualentry.ManualEntryService
}

func NewManualEntryHandler(manualEntryService manualentry.ManualEntryService) ManualEntryHandler {
	return &manualEntryHandlerImpl{
		manualEntryService: manualEntryService,
	}
}

// ListManualEntries handles GET /manual-entries?month=YYYY-MM
func (h *manualEntryHandlerImpl) ListManualEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.manualEntryService.ListByMonth(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

// CreateManualEntry handles POST /manual-entries
func (h *manualEntryHandlerImpl) CreateManualEntry(w http.ResponseWriter, r *http.Request) {
	var req manualentry.CreateManualEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	created, err := h.manualEntryService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Manual entry created", created)
}

// DeleteManualEntry handles DELETE /manual-entries/{id}
func (h *manualEntryHandlerImpl) DeleteManualEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := validator.ParseID(chi.URLParam(r, "id"))
	if !ok {
		response.HandleError(w, manualentry.ErrInvalidID)
		return
	}

	if err := h.manualEntryService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Manual entry deleted", nil)
}
