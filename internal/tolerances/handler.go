package tolerances

import (
	"log/slog"
	"net/http"

	"github.com/camco-mfg/gauge/pkg/handlers"
	"github.com/camco-mfg/gauge/pkg/routes"
)

// Handler provides HTTP endpoints for tolerance reference data lookups.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "tolerances"),
	}
}

// Routes returns the route group definition for tolerance endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/tolerances",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/{category}", Handler: h.All},
			{Method: "GET", Pattern: "/{category}/standard", Handler: h.CamcoStandard},
			{Method: "GET", Pattern: "/{category}/{designation}", Handler: h.Designation},
		},
	}
}

// All returns every designation row-set for the category path parameter.
func (h *Handler) All(w http.ResponseWriter, r *http.Request) {
	category, err := ParseCategory(r.PathValue("category"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	result, err := h.sys.All(category)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Designation returns the row-set for a specific designation path parameter.
func (h *Handler) Designation(w http.ResponseWriter, r *http.Request) {
	category, err := ParseCategory(r.PathValue("category"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	result, err := h.sys.Designation(category, r.PathValue("designation"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// CamcoStandard returns the category's fixed Camco standard row-set.
func (h *Handler) CamcoStandard(w http.ResponseWriter, r *http.Request) {
	category, err := ParseCategory(r.PathValue("category"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	result, err := h.sys.CamcoStandard(category)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
