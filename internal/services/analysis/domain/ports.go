package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Analyze(ctx context.Context, in AnalyzeInput) (AnalyzeOutput, error)
	Predict(ctx context.Context, in PredictInput) (PredictOutput, error)
}
