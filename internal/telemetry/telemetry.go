// Package telemetry defines the OpenTelemetry instruments recorded by the
// game. Instruments come from the global meter provider, which is a no-op
// until a provider is installed.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/tomz197/cyberjet"

// Metrics holds the game's instruments.
type Metrics struct {
	sessions   metric.Int64UpDownCounter
	events     metric.Int64Counter
	finalScore metric.Int64Histogram
	players    metric.Int64ObservableGauge
	meter      metric.Meter
}

// New creates the instruments from the global meter provider.
func New() (*Metrics, error) {
	return NewWithMeter(otel.Meter(instrumentationName))
}

// NewWithMeter creates the instruments from m.
func NewWithMeter(m metric.Meter) (*Metrics, error) {
	t := &Metrics{meter: m}

	var err error
	t.sessions, err = m.Int64UpDownCounter(
		"cyberjet.sessions.active",
		metric.WithDescription("Connected terminal sessions"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating sessions counter: %w", err)
	}

	t.events, err = m.Int64Counter(
		"cyberjet.game.events",
		metric.WithDescription("Game events by kind"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating events counter: %w", err)
	}

	t.finalScore, err = m.Int64Histogram(
		"cyberjet.game.final_score",
		metric.WithDescription("Score at game over"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating score histogram: %w", err)
	}

	t.players, err = m.Int64ObservableGauge(
		"cyberjet.hub.players",
		metric.WithDescription("Players registered with the hub"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating players gauge: %w", err)
	}

	return t, nil
}

// ObservePlayers registers count as the source of the players gauge.
func (t *Metrics) ObservePlayers(count func() int) error {
	_, err := t.meter.RegisterCallback(
		func(ctx context.Context, o metric.Observer) error {
			o.ObserveInt64(t.players, int64(count()))
			return nil
		},
		t.players,
	)
	if err != nil {
		return fmt.Errorf("registering players callback: %w", err)
	}
	return nil
}

// SessionStarted counts a new terminal session.
func (t *Metrics) SessionStarted(ctx context.Context) {
	t.sessions.Add(ctx, 1)
}

// SessionEnded counts a closed terminal session.
func (t *Metrics) SessionEnded(ctx context.Context) {
	t.sessions.Add(ctx, -1)
}

// RecordEvent counts one game event of the given kind.
func (t *Metrics) RecordEvent(ctx context.Context, kind string) {
	t.events.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
}

// RecordGameOver records the final score of a finished game.
func (t *Metrics) RecordGameOver(ctx context.Context, score int) {
	t.finalScore.Record(ctx, int64(score))
}
