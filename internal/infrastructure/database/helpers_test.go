package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartMonitor_StopWaitsForExit(t *testing.T) {
	// Pool is nil, so every tick takes the Stats error branch.
	db := &PostgresDB{}
	stop := db.StartMonitor(time.Millisecond)
	time.Sleep(5 * time.Millisecond)

	stopped := make(chan struct{})
	go func() {
		stop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("monitor did not stop")
	}

	// The monitor has exited; Close may now clear Pool.
	require.NoError(t, db.Close())
	assert.Nil(t, db.Pool)

	assert.NotPanics(t, stop)
}
