package evaluation

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/camco-mfg/gauge/internal/tolerances"
	"github.com/camco-mfg/gauge/pkg/handlers"
	"github.com/camco-mfg/gauge/pkg/routes"
)

// Handler provides HTTP endpoints for measurement evaluation operations.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "evaluations"),
	}
}

// Routes returns the route group definition for evaluation endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/evaluations",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/{category}", Handler: h.Evaluate},
			{Method: "POST", Pattern: "/{category}/batch", Handler: h.EvaluateBatch},
		},
	}
}

// Evaluate judges a single measurement against the category's Camco standard
// by decoding an EvaluateCommand JSON body.
func (h *Handler) Evaluate(w http.ResponseWriter, r *http.Request) {
	category, err := tolerances.ParseCategory(r.PathValue("category"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	var cmd EvaluateCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		err = fmt.Errorf("%w: measurement must be numeric", ErrInvalidMeasurement)
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	result, err := h.sys.Evaluate(category, cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// EvaluateBatch judges a batch of measurements by decoding an
// EvaluateBatchCommand JSON body.
func (h *Handler) EvaluateBatch(w http.ResponseWriter, r *http.Request) {
	category, err := tolerances.ParseCategory(r.PathValue("category"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	var cmd EvaluateBatchCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		err = fmt.Errorf("%w: measurements must be a numeric list", ErrInvalidBatch)
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	result, err := h.sys.EvaluateBatch(category, cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
