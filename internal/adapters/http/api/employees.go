package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	service "github.com/okian/staffgen/internal/app"
	"github.com/okian/staffgen/internal/domain/generator"
	"github.com/okian/staffgen/internal/domain/model"
)

// RunIDHeader carries the identifier of the generation run.
const RunIDHeader = "X-Run-Id"

// maxBodyBytes bounds the request body of POST /employees.
const maxBodyBytes = 1 << 16

var (
	errMissingCount = errors.New("missing count")
	errMissingAge   = errors.New("missing age")
)

// generateRequest mirrors the OpenAPI schema for POST /employees.
// Pointers distinguish absent fields from zero values.
type generateRequest struct {
	Count *int            `json:"count"`
	Age   *model.AgeRange `json:"age"`
}

func (g generateRequest) validate() error {
	switch {
	case g.Count == nil:
		return errMissingCount
	case g.Age == nil:
		return errMissingAge
	}
	return nil
}

func (g generateRequest) toModel() model.GenerationRequest {
	return model.GenerationRequest{Count: *g.Count, Age: *g.Age}
}

// EmployeesHandler handles employee generation requests.
type EmployeesHandler struct {
	deps Dependencies
}

// NewEmployeesHandler creates a new employees handler.
func NewEmployeesHandler(deps Dependencies) *EmployeesHandler {
	return &EmployeesHandler{deps: deps}
}

// HandlePostEmployees handles POST /employees requests.
func (h *EmployeesHandler) HandlePostEmployees(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_employees"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req generateRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "too_large", WrapKind(op, ErrBadRequest, err))
			return
		}
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	result, err := h.deps.Generate(r.Context(), req.toModel())
	if err != nil {
		status, code := classify(err)
		writeError(w, status, code, WrapKind(op, ErrGenerate, err))
		return
	}

	w.Header().Set(RunIDHeader, result.RunID)
	writeJSON(w, http.StatusOK, result)
}

// classify maps orchestrator errors to an HTTP status and an error code.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, generator.ErrInvalidRequest):
		return http.StatusBadRequest, "invalid_request"
	case errors.Is(err, service.ErrCountTooLarge):
		return http.StatusBadRequest, "count_too_large"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, "cancelled"
	default:
		return http.StatusInternalServerError, "internal"
	}
}
