package utils

import (
	"time"

	"github.com/rs/zerolog"
)

// Timer is a simple performance timer for measuring operation duration
type Timer struct {
	start   time.Time
	name    string
	log     zerolog.Logger
	enabled bool
}

// NewTimer creates a new timer with the given name
func NewTimer(name string, log zerolog.Logger) *Timer {
	return &Timer{
		start:   time.Now(),
		name:    name,
		log:     log,
		enabled: true,
	}
}

// Stop stops the timer and logs the duration
func (t *Timer) Stop() time.Duration {
	if !t.enabled {
		return 0
	}

	duration := time.Since(t.start)

	t.log.Debug().
		Str("operation", t.name).
		Dur("duration_ms", duration).
		Float64("duration_seconds", duration.Seconds()).
		Msg("Performance measurement")

	// Scoring a batch should never take seconds; warn if it does.
	if duration > 10*time.Second {
		t.log.Warn().
			Str("operation", t.name).
			Dur("duration", duration).
			Msg("Slow operation detected (>10s)")
	}

	return duration
}
