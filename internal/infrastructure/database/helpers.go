package database

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// Close releases every pooled connection. Safe to call more than once.
func (db *PostgresDB) Close() error {
	if db.Pool == nil {
		return nil
	}

	log.Info().Msg("[DATABASE] closing connection pool")
	db.Pool.Close()
	db.Pool = nil

	return nil
}

// PoolStats is a snapshot of pool counters for the health endpoint and the monitor.
type PoolStats struct {
	AcquireCount         int64         `json:"acquire_count"`
	AcquireDuration      time.Duration `json:"acquire_duration"`
	AcquiredConns        int32         `json:"acquired_conns"`
	CanceledAcquireCount int64         `json:"canceled_acquire_count"`
	IdleConns            int32         `json:"idle_conns"`
	MaxConns             int32         `json:"max_conns"`
	TotalConns           int32         `json:"total_conns"`
	NewConnsCount        int64         `json:"new_conns_count"`
}

// Stats returns a snapshot of pool statistics.
func (db *PostgresDB) Stats() (*PoolStats, error) {
	if db.Pool == nil {
		return nil, fmt.Errorf("database pool is not initialized")
	}

	raw := db.Pool.Stat()
	return &PoolStats{
		AcquireCount:         raw.AcquireCount(),
		AcquireDuration:      raw.AcquireDuration(),
		AcquiredConns:        raw.AcquiredConns(),
		CanceledAcquireCount: raw.CanceledAcquireCount(),
		IdleConns:            raw.IdleConns(),
		MaxConns:             raw.MaxConns(),
		TotalConns:           raw.TotalConns(),
		NewConnsCount:        raw.NewConnsCount(),
	}, nil
}

// AverageAcquire is the mean time spent waiting for a connection.
func (s *PoolStats) AverageAcquire() time.Duration {
	if s.AcquireCount == 0 {
		return 0
	}
	return s.AcquireDuration / time.Duration(s.AcquireCount)
}

// Utilization is acquired / max as a percentage.
func (s *PoolStats) Utilization() float64 {
	if s.MaxConns == 0 {
		return 0
	}
	return float64(s.AcquiredConns) / float64(s.MaxConns) * 100
}

// MonitorPoolHealth logs warnings about pool pressure until ctx is done.
// Run it in its own goroutine.
func (db *PostgresDB) MonitorPoolHealth(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			stats, err := db.Stats()
			if err != nil {
				log.Warn().Err(err).Msg("[MONITOR] failed to get stats")
				continue
			}

			if pct := stats.Utilization(); pct > 80 {
				log.Warn().
					Float64("utilization_pct", pct).
					Int32("acquired", stats.AcquiredConns).
					Int32("max", stats.MaxConns).
					Msg("[MONITOR] high pool utilization")
			}
			if avg := stats.AverageAcquire(); avg > 100*time.Millisecond {
				log.Warn().Dur("avg_acquire", avg).Msg("[MONITOR] high acquire latency")
			}

		case <-ctx.Done():
			log.Info().Msg("[MONITOR] stopping pool health monitoring")
			return
		}
	}
}

// StartMonitor runs MonitorPoolHealth in the background. The returned stop
// function cancels the monitor and blocks until it has exited, so Close can
// follow it without racing on Pool.
func (db *PostgresDB) StartMonitor(interval time.Duration) (stop func()) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		defer close(done)
		db.MonitorPoolHealth(ctx, interval)
	}()

	return func() {
		cancel()
		<-done
	}
}
