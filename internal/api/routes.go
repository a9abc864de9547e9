package api

import (
	"net/http"

	"github.com/camco-mfg/gauge/internal/config"
	"github.com/camco-mfg/gauge/pkg/openapi"
	"github.com/camco-mfg/gauge/pkg/routes"
)

func registerRoutes(mux *http.ServeMux, domain *Domain, cfg *config.Config) error {
	routes.Register(
		mux,
		domain.Tolerances.Handler().Routes(),
		domain.Evaluations.Handler().Routes(),
	)

	spec := buildSpec(cfg)
	specBytes, err := openapi.MarshalJSON(spec)
	if err != nil {
		return err
	}
	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(specBytes))

	return nil
}
