// Package http provides http transport for analysis
package http

import (
	stdhttp "net/http"

	"postpulse/internal/modkit/httpkit"
	"postpulse/internal/services/analysis/domain"
	svc "postpulse/internal/services/analysis/service"
)

// Register mounts analysis endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// full analyzer fan-out with composite score and rewrite templates
	httpkit.PostJSON[domain.AnalyzeInput](r, "/analyze", h.analyze)

	// reach and engagement estimates
	httpkit.PostJSON[domain.PredictInput](r, "/predict", h.predict)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /analysis/analyze Analysis analysisAnalyze
// @Summary Score a post across all analyzers
// @Tags Analysis
// @Accept json
// @Produce json
// @Param payload body domain.AnalyzeInput true "Post text"
// @Success 200 {object} domain.AnalyzeOutput "ok"
// @Router /analysis/analyze [post]
func (h *handlers) analyze(r *stdhttp.Request, in domain.AnalyzeInput) (any, error) {
	return h.svc.Analyze(r.Context(), in)
}

// swagger:route POST /analysis/predict Analysis analysisPredict
// @Summary Estimate reach and engagement for a post
// @Tags Analysis
// @Accept json
// @Produce json
// @Param payload body domain.PredictInput true "Post text"
// @Success 200 {object} domain.PredictOutput "ok"
// @Router /analysis/predict [post]
func (h *handlers) predict(r *stdhttp.Request, in domain.PredictInput) (any, error) {
	return h.svc.Predict(r.Context(), in)
}
