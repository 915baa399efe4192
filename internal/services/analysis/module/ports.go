package module

import (
	"context"

	"postpulse/internal/services/analysis/domain"
	analysissvc "postpulse/internal/services/analysis/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptAnalysisPort struct{ svc analysissvc.Service }

// Analyze runs the full analyzer fan-out for one post
func (a adaptAnalysisPort) Analyze(ctx context.Context, in domain.AnalyzeInput) (domain.AnalyzeOutput, error) {
	return a.svc.Analyze(ctx, in)
}

// Predict estimates reach and engagement for one post
func (a adaptAnalysisPort) Predict(ctx context.Context, in domain.PredictInput) (domain.PredictOutput, error) {
	return a.svc.Predict(ctx, in)
}
