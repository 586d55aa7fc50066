// Package advisory orchestrates one advisory request: input resolution, AQI
// computation and risk classification over the same resolved reading set.
package advisory

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/airadvisor/airadvisor/internal/aqi"
	"github.com/airadvisor/airadvisor/internal/classifier"
	"github.com/airadvisor/airadvisor/internal/reading"
)

// ServiceConfig holds configuration for the advisory service.
type ServiceConfig struct {
	// Profiles supplies city-default readings. May be nil.
	Profiles reading.Profiles

	// Bundle is the loaded classifier model (required).
	Bundle *classifier.Bundle

	// Logger for service operations.
	Logger zerolog.Logger
}

// Service computes advisories. It is stateless per request and safe for
// concurrent use: the profile store and model bundle are immutable.
type Service struct {
	resolver *reading.Resolver
	bundle   *classifier.Bundle
	logger   zerolog.Logger
}

// NewService creates a new advisory service.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		resolver: reading.NewResolver(cfg.Profiles),
		bundle:   cfg.Bundle,
		logger:   cfg.Logger,
	}
}

// Advisory is the outcome of one request.
type Advisory struct {
	// Prediction and Probabilities come from the classifier, which sees the
	// resolved readings with missing features substituted by 0.0.
	Prediction    string
	Probabilities map[string]float64

	// Inputs is the resolved reading set both paths consumed.
	Inputs reading.Set

	// SubIndices holds the unrounded sub-index per pollutant with a usable
	// reading. Pollutants absent here had no reading (or one below the
	// table's floor).
	SubIndices map[aqi.Pollutant]float64

	// Overall is the aggregated AQI result, valid only when HasOverall.
	Overall    aqi.Result
	HasOverall bool
}

// Advise resolves the request inputs and runs both the AQI and classifier
// paths over them.
//
// An absent pollutant reading stays absent in the AQI path; the zero
// substitution happens only inside the classifier's feature vector.
func (s *Service) Advise(ctx context.Context, city string, explicit reading.Set) (*Advisory, error) {
	resolved := s.resolver.Resolve(city, explicit)

	sub := make(map[aqi.Pollutant]float64, len(aqi.Pollutants))
	for _, p := range aqi.Pollutants {
		conc, ok := resolved.Pollutant(p)
		if !ok {
			continue
		}
		if idx, ok := aqi.SubIndex(p, conc); ok {
			sub[p] = idx
		}
	}
	overall, hasOverall := aqi.Aggregate(sub)

	features := s.bundle.FeatureVector(resolved)
	model := s.bundle.Classifier()

	label, err := model.Predict(features)
	if err != nil {
		return nil, fmt.Errorf("predict: %w", err)
	}
	probabilities, err := model.PredictProbabilities(features)
	if err != nil {
		return nil, fmt.Errorf("predict probabilities: %w", err)
	}

	logEvent := s.logger.Debug().
		Str("city", city).
		Int("resolved_fields", len(resolved)).
		Str("prediction", label)
	if hasOverall {
		logEvent = logEvent.
			Float64("aqi", overall.AQI).
			Str("main_pollutant", string(overall.MainPollutant))
	}
	logEvent.Msg("advisory computed")

	return &Advisory{
		Prediction:    label,
		Probabilities: probabilities,
		Inputs:        resolved,
		SubIndices:    sub,
		Overall:       overall,
		HasOverall:    hasOverall,
	}, nil
}
