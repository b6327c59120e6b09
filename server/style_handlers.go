package server

import (
	"net/http"
	"post_bot/dto"
	"post_bot/logic"
	"post_bot/shared"
)

// Lists the writing styles and the backend's post templates.
type styleHandlerGroup struct {
	cfg     *shared.Config
	logger  shared.ILogger
	metrics logic.IMetrics
	backend logic.IBackendClient
}

func NewStyleHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
	metrics logic.IMetrics,
	backend logic.IBackendClient,
) IHandlerGroup {
	res := styleHandlerGroup{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
		backend: backend,
	}
	return &res
}

func (hg *styleHandlerGroup) Prefix() string {
	return "/api/styles"
}

func (hg *styleHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"GET", "", func(w http.ResponseWriter, r *http.Request) { hg.getStyles(w, r) }},
	}
}

func (hg *styleHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return apiKeyMW(hg.cfg, hg.logger)
}

func (hg *styleHandlerGroup) getStyles(w http.ResponseWriter, r *http.Request) {
	obs := hg.metrics.StartApiRequestIn("styles")
	defer obs.Finish()

	templates, err := hg.backend.GetTemplates(r.Context())
	if err != nil {
		writeDomainError(hg.logger, w, r, err)
		return
	}
	writeJsonResponse(hg.logger, w, map[string]any{
		"styles":    dto.KnownStyles,
		"templates": templates,
	})
}
