package scale

import (
	"Pantry-Backend/domain"
	"context"
	"log"
	"math/rand"
	"time"
)

// SimulatorConfig describes one virtual scale feeding readings for a barcode.
type SimulatorConfig struct {
	UserID     string
	Barcode    string
	SensorID   string
	Unit       string
	BaseWeight float64
	Interval   time.Duration
}

// Simulator emits plausible weight readings on a ticker, standing in for a
// real IoT scale. Weight drifts slowly downward as the item is used, with a
// little measurement noise and battery drain on top.
type Simulator struct {
	service ScaleService
	cfg     SimulatorConfig

	weight  float64
	battery int
	rng     *rand.Rand
}

func NewSimulator(service ScaleService, cfg SimulatorConfig) *Simulator {
	if cfg.Unit == "" {
		cfg.Unit = "g"
	}
	if cfg.Interval <= 0 {
		cfg.Interval = 30 * time.Second
	}
	if cfg.SensorID == "" {
		cfg.SensorID = "sim-scale-01"
	}
	return &Simulator{
		service: service,
		cfg:     cfg,
		weight:  cfg.BaseWeight,
		battery: 100,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run blocks until ctx is cancelled, emitting one reading per interval.
func (s *Simulator) Run(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.service.AddReading(ctx, s.nextReading(), s.cfg.UserID); err != nil {
				log.Printf("scale simulator failed to record reading: %v", err)
			}
		}
	}
}

func (s *Simulator) nextReading() domain.AddReadingRequest {
	// Consume 0-2% of the base weight per tick, plus +-1g noise.
	s.weight -= s.cfg.BaseWeight * s.rng.Float64() * 0.02
	if s.weight < 0 {
		s.weight = 0
	}
	noisy := s.weight + s.rng.Float64()*2 - 1
	if noisy < 0 {
		noisy = 0
	}

	if s.battery > 1 && s.rng.Intn(10) == 0 {
		s.battery--
	}

	temperature := 18 + s.rng.Float64()*6
	signal := -40 - s.rng.Intn(50)
	battery := s.battery

	return domain.AddReadingRequest{
		Barcode:        s.cfg.Barcode,
		SensorID:       s.cfg.SensorID,
		WeightValue:    noisy,
		Unit:           s.cfg.Unit,
		RecordedAt:     time.Now().Format(time.RFC3339),
		Temperature:    &temperature,
		BatteryLevel:   &battery,
		SignalStrength: &signal,
	}
}
