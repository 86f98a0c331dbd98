package analysis

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/rotorbench/rotorbench/pkg/core"
)

const meterName = "github.com/rotorbench/rotorbench/internal/analysis"

// meter returns the global OTel meter (no-op if no provider is configured).
func meter() metric.Meter {
	return otel.GetMeterProvider().Meter(meterName)
}

// Service wraps the pure analysis pipeline with logging and metrics.
type Service struct {
	logger zerolog.Logger

	analyses metric.Int64Counter
	invalid  metric.Int64Counter
	duration metric.Float64Histogram
}

// NewService creates an analysis service using the global OTel meter.
func NewService(logger zerolog.Logger) (*Service, error) {
	s := &Service{logger: logger}
	m := meter()

	var err error
	s.analyses, err = m.Int64Counter(
		"analysis.builds.total",
		metric.WithDescription("Number of build analyses performed"),
	)
	if err != nil {
		return nil, err
	}

	s.invalid, err = m.Int64Counter(
		"analysis.builds.invalid",
		metric.WithDescription("Number of analyses that found an invalid build"),
	)
	if err != nil {
		return nil, err
	}

	s.duration, err = m.Float64Histogram(
		"analysis.duration.ms",
		metric.WithDescription("Duration of a single build analysis"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return s, nil
}

// Analyze runs the engine on one build, recording metrics and a summary log
// line. The computation itself is pure; this wrapper owns all side effects.
func (s *Service) Analyze(ctx context.Context, build core.Build) core.BuildAnalysis {
	start := time.Now()
	result := Analyze(build)
	elapsedMs := float64(time.Since(start).Microseconds()) / 1000.0

	s.analyses.Add(ctx, 1, metric.WithAttributes(attribute.Bool("valid", result.IsValid)))
	if !result.IsValid {
		s.invalid.Add(ctx, 1)
	}
	s.duration.Record(ctx, elapsedMs)

	s.logger.Info().
		Str("build", build.Name).
		Bool("valid", result.IsValid).
		Int("errors", len(result.Errors)).
		Int("warnings", len(result.Warnings)).
		Float64("totalWeight", result.Performance.TotalWeight).
		Float64("twr", result.Performance.ThrustToWeightRatio).
		Float64("flightTime", result.FlightSimulation.EstimatedFlightTime).
		Msg("Analyzed build")

	return result
}
