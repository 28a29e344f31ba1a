package http

import (
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/cmlabs-hris/overtime-backend-go/internal/domain/imports"
	"github.com/cmlabs-hris/overtime-backend-go/internal/handler/http/response"
)

const importFileField = "file"

type ImportHandler interface {
	ImportCheckins(w http.ResponseWriter, r *http.Request)
	ImportUsers(w http.ResponseWriter, r *http.Request)
}

type importHandlerImpl struct {
	importService  imports.ImportService
	maxUploadBytes int64
	retryAfter     time.Duration
}

func NewImportHandler(importService imports.ImportService, maxUploadBytes int64, retryAfter time.Duration) ImportHandler {
	return &importHandlerImpl{
		importService:  importService,
		maxUploadBytes: maxUploadBytes,
		retryAfter:     retryAfter,
	}
}

// ImportCheckins handles POST /import/checkins
func (h *importHandlerImpl) ImportCheckins(w http.ResponseWriter, r *http.Request) {
	file, ok := h.openUpload(w, r)
	if !ok {
		return
	}
	defer file.Close()

	rows, err := readCheckinRows(file)
	if err != nil {
		h.handleParseError(w, err)
		return
	}

	result, err := h.importService.ImportCheckins(r.Context(), rows)
	h.writeResult(w, "Check-ins imported", result, err)
}

// ImportUsers handles POST /import/users
func (h *importHandlerImpl) ImportUsers(w http.ResponseWriter, r *http.Request) {
	file, ok := h.openUpload(w, r)
	if !ok {
		return
	}
	defer file.Close()

	rows, err := readEmployeeRows(file)
	if err != nil {
		h.handleParseError(w, err)
		return
	}

	result, err := h.importService.ImportEmployees(r.Context(), rows)
	h.writeResult(w, "Employees imported", result, err)
}

func (h *importHandlerImpl) openUpload(w http.ResponseWriter, r *http.Request) (multipart.File, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			response.HandleError(w, err)
			return nil, false
		}
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return nil, false
	}

	file, _, err := r.FormFile(importFileField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			response.BadRequest(w, "CSV file is required in field 'file'", nil)
			return nil, false
		}
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return nil, false
	}
	return file, true
}

func (h *importHandlerImpl) handleParseError(w http.ResponseWriter, err error) {
	if errors.Is(err, imports.ErrEmptyFile) || errors.Is(err, imports.ErrMissingColumns) {
		response.HandleError(w, err)
		return
	}
	if errors.Is(err, io.ErrUnexpectedEOF) {
		response.BadRequest(w, "Upload was truncated", nil)
		return
	}
	response.BadRequest(w, err.Error(), nil)
}

func (h *importHandlerImpl) writeResult(w http.ResponseWriter, message string, result imports.ImportResult, err error) {
	if err != nil {
		if errors.Is(err, imports.ErrServiceBusy) {
			response.ServiceUnavailable(w, "Service busy, retry later", h.retryAfter, result)
			return
		}
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, message, result)
}
