package main

import (
	"context"
	"math"
	"sync"
	"time"

	"elrs-hud/internal/instrument"
)

const sampleInterval = 20 * time.Millisecond

// TelemetrySource holds the latest telemetry sample. With the demo enabled a
// background loop sweeps every value; otherwise samples change only through
// Nudge.
type TelemetrySource struct {
	mu      sync.RWMutex
	state   instrument.Telemetry
	demo    bool
	started time.Time

	ctx     context.Context
	cancel  context.CancelFunc
	running bool
}

// NewTelemetrySource creates a new source at rest.
func NewTelemetrySource() *TelemetrySource {
	return &TelemetrySource{state: instrument.Telemetry{Airspeed: 60, Altitude: 100}}
}

// Start launches the sample loop. It is a no-op when already running.
func (s *TelemetrySource) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.started = time.Now()
	s.ctx, s.cancel = context.WithCancel(context.Background())
	ctx := s.ctx
	s.mu.Unlock()

	go s.loop(ctx)
}

// Stop ends the sample loop.
func (s *TelemetrySource) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}
	s.running = false
}

func (s *TelemetrySource) loop(ctx context.Context) {
	ticker := time.NewTicker(sampleInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.mu.Lock()
			if s.demo {
				s.state = demoSample(now.Sub(s.started).Seconds())
			}
			s.mu.Unlock()
		}
	}
}

// GetState returns a copy of the current sample.
func (s *TelemetrySource) GetState() instrument.Telemetry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *TelemetrySource) Demo() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.demo
}

func (s *TelemetrySource) SetDemo(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.demo = on
}

// Nudge applies fn to the current sample. It has no lasting effect while
// the demo is running.
func (s *TelemetrySource) Nudge(fn func(*instrument.Telemetry)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.state)
}

// demoSample is a smooth sweep through every instrument's range, t seconds
// after start.
func demoSample(t float64) instrument.Telemetry {
	return instrument.Telemetry{
		Pitch:         15 * math.Sin(0.4*t),
		Roll:          40 * math.Sin(0.25*t),
		Yaw:           math.Mod(20*t, 360),
		Airspeed:      60 + 20*math.Sin(0.3*t),
		TargetSpeed:   70,
		VerticalSpeed: 8 * math.Sin(0.5*t),
		Altitude:      120 + 50*math.Sin(0.1*t),
	}
}
