// Package domain holds DTOs for analysis http and service contracts
package domain

import (
	"postpulse/internal/core/analyze"
	"postpulse/internal/core/predict"
)

// AnalyzeInput is a post to run through the scoring engine
type AnalyzeInput struct {
	Text string `json:"text" validate:"required,max=10000" example:"Have you ever wondered why 90% of side projects fail?"`
}

// PredictInput is a post to estimate engagement for
type PredictInput struct {
	Text string `json:"text" validate:"required,max=10000" example:"Have you ever wondered why 90% of side projects fail?"`
}

// AnalyzeOutput is the full analysis record for one post
type AnalyzeOutput = analyze.Record

// PredictOutput is the engagement estimate for one post
type PredictOutput = predict.Prediction
