package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"aigov/internal/ports"
	compliancesvc "aigov/internal/services/compliance"
	contestsvc "aigov/internal/services/contestations"
	datasetsvc "aigov/internal/services/datasets"
	incidentsvc "aigov/internal/services/incidents"
	policysvc "aigov/internal/services/policies"
	registrysvc "aigov/internal/services/registry"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}

// respondError maps domain and validation errors onto HTTP statuses. Unknown
// errors are logged and surfaced as opaque 500s.
func respondError(w http.ResponseWriter, err error) {
	var (
		valErrs          validator.ValidationErrors
		policyTransition *policysvc.TransitionError
		contestTransit   *contestsvc.TransitionError
	)
	switch {
	case errors.Is(err, ports.ErrNotFound):
		respondJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	case errors.As(err, &valErrs),
		errors.Is(err, errBadBody),
		errors.Is(err, registrysvc.ErrInvalidStatus),
		errors.Is(err, registrysvc.ErrInvalidOverride),
		errors.Is(err, compliancesvc.ErrUnknownFramework),
		errors.Is(err, compliancesvc.ErrUnknownRequirement),
		errors.Is(err, compliancesvc.ErrInvalidStatus),
		errors.Is(err, incidentsvc.ErrInvalidSeverity),
		errors.Is(err, incidentsvc.ErrInvalidStatus),
		errors.Is(err, datasetsvc.ErrInvalidSensitivity),
		errors.Is(err, contestsvc.ErrDecisionRequired),
		errors.Is(err, contestsvc.ErrAssigneeRequired):
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.As(err, &policyTransition),
		errors.As(err, &contestTransit),
		errors.Is(err, policysvc.ErrNotDraft),
		errors.Is(err, policysvc.ErrNotPublished):
		respondJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	default:
		slog.Error("request failed", "error", err)
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

// decode parses the JSON body into req and runs struct validation. An empty
// body decodes as the zero value; required fields then fail validation.
func (s *Server) decode(r *http.Request, req any) error {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil && !errors.Is(err, io.EOF) {
		return errBadBody
	}
	return s.validate.Struct(req)
}

var errBadBody = errors.New("malformed request body")
