package world

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/townmap/internal/telemetry"
)

// Generation defaults
const (
	DefaultMaxAttempts        = 200
	DefaultPlacementTrials    = 100
	DefaultMinDecorationDraws = 10
	DefaultMaxDecorationDraws = 20
	placeInBuildingTrials     = 100
)

// Options tunes town generation. Zero fields take their defaults.
type Options struct {
	MaxAttempts        int // Full regenerations before giving up
	PlacementTrials    int // Room proposals per attempt
	MinDecorationDraws int
	MaxDecorationDraws int

	Logger *slog.Logger
	Tracer trace.Tracer
}

// DefaultOptions returns the reference generation settings.
func DefaultOptions() Options {
	return Options{
		MaxAttempts:        DefaultMaxAttempts,
		PlacementTrials:    DefaultPlacementTrials,
		MinDecorationDraws: DefaultMinDecorationDraws,
		MaxDecorationDraws: DefaultMaxDecorationDraws,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = d.MaxAttempts
	}
	if o.PlacementTrials <= 0 {
		o.PlacementTrials = d.PlacementTrials
	}
	if o.MinDecorationDraws <= 0 {
		o.MinDecorationDraws = d.MinDecorationDraws
	}
	if o.MaxDecorationDraws < o.MinDecorationDraws {
		o.MaxDecorationDraws = max(d.MaxDecorationDraws, o.MinDecorationDraws)
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	if o.Tracer == nil {
		o.Tracer = telemetry.Tracer("world")
	}
	return o
}
