// Package service contains analysis workflows
package service

import (
	"context"

	"postpulse/internal/core/analyze"
	"postpulse/internal/core/predict"
	"postpulse/internal/services/analysis/domain"
)

// Service defines the analysis service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the analysis service over the in-process scoring engine
type Svc struct {
	engine    *analyze.Engine
	predictor *predict.Predictor
}

// New constructs an analysis service
func New(engine *analyze.Engine) *Svc {
	if engine == nil {
		panic("analysis.Service requires a non nil Engine")
	}
	return &Svc{engine: engine, predictor: predict.New(engine)}
}

// Analyze runs every analyzer over the post and returns the combined record.
// The engine is total, so the error is always nil today; the signature keeps
// room for future backends that can fail
func (s *Svc) Analyze(_ context.Context, in domain.AnalyzeInput) (domain.AnalyzeOutput, error) {
	return s.engine.Analyze(in.Text), nil
}

// Predict maps the post onto reach and engagement estimates
func (s *Svc) Predict(_ context.Context, in domain.PredictInput) (domain.PredictOutput, error) {
	return s.predictor.Predict(in.Text), nil
}
