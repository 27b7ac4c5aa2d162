package syncbuffer

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatisticsCounters(t *testing.T) {
	s := NewStatistics()

	s.Write()
	s.Write()
	s.Read()
	s.Peek()
	s.Overflow()
	s.Drop()

	assert.Equal(t, int64(2), s.Writes())
	assert.Equal(t, int64(1), s.Reads())
	assert.Equal(t, int64(1), s.Peeks())
	assert.Equal(t, int64(1), s.Overflows())
	assert.Equal(t, int64(1), s.Drops())
}

func TestStatisticsSizeTracking(t *testing.T) {
	s := NewStatistics()

	s.UpdateSize(3)
	s.UpdateSize(7)
	s.UpdateSize(2)

	assert.Equal(t, int64(2), s.CurrentSize())
	assert.Equal(t, int64(7), s.MaxSize(), "high-water mark must survive a shrink")
}

func TestStatisticsRates(t *testing.T) {
	s := NewStatistics()

	assert.Equal(t, 0.0, s.DropRate(), "no writes means no drop rate")
	assert.Equal(t, 0.0, s.Utilization(0), "zero capacity reports zero utilization")

	for i := 0; i < 4; i++ {
		s.Write()
	}
	s.Drop()

	assert.InDelta(t, 0.25, s.DropRate(), 1e-9)

	s.UpdateSize(5)
	assert.InDelta(t, 0.5, s.Utilization(10), 1e-9)

	assert.Greater(t, s.Throughput(), 0.0)
	assert.Greater(t, s.Uptime().Nanoseconds(), int64(0))
}

func TestStatisticsReset(t *testing.T) {
	s := NewStatistics()
	s.Write()
	s.Read()
	s.UpdateSize(9)

	s.Reset()

	assert.Equal(t, int64(0), s.Writes())
	assert.Equal(t, int64(0), s.Reads())
	assert.Equal(t, int64(0), s.CurrentSize())
	assert.Equal(t, int64(0), s.MaxSize())
}

func TestStatisticsSummary(t *testing.T) {
	s := NewStatistics()
	s.Write()
	s.Write()
	s.Drop()
	s.UpdateSize(1)

	sum := s.Summary()
	assert.Equal(t, int64(2), sum.Writes)
	assert.Equal(t, int64(1), sum.Drops)
	assert.Equal(t, int64(1), sum.CurrentSize)
	assert.InDelta(t, 0.5, sum.DropRate, 1e-9)
}

func TestStatisticsConcurrentUpdates(t *testing.T) {
	s := NewStatistics()

	const workers = 8
	const perWorker = 1000

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				s.Write()
				s.UpdateSize(int64(i))
			}
		}()
	}
	wg.Wait()

	require.Equal(t, int64(workers*perWorker), s.Writes())
	assert.Equal(t, int64(perWorker-1), s.MaxSize())
}
