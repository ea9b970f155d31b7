package knowledge

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sahayak/backend/internal/seed"
)

func countingLoader(calls *int32) func() (*seed.Data, error) {
	return func() (*seed.Data, error) {
		atomic.AddInt32(calls, 1)
		return testSeed(), nil
	}
}

func TestServiceBuildsLazilyAndCaches(t *testing.T) {
	var calls int32
	svc := NewService(countingLoader(&calls))
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))

	g1, err := svc.Graph()
	require.NoError(t, err)
	require.NotNil(t, g1)

	g2, err := svc.Graph()
	require.NoError(t, err)
	assert.Same(t, g1, g2)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestServiceConcurrentFirstAccess(t *testing.T) {
	var calls int32
	svc := NewService(countingLoader(&calls))

	const readers = 16
	graphs := make([]*Graph, readers)
	var wg sync.WaitGroup
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			g, err := svc.Graph()
			assert.NoError(t, err)
			graphs[i] = g
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	for i := 1; i < readers; i++ {
		assert.Same(t, graphs[0], graphs[i])
	}
}

func TestServiceRebuildSwapsGraph(t *testing.T) {
	var calls int32
	svc := NewService(countingLoader(&calls))

	old, err := svc.Graph()
	require.NoError(t, err)

	fresh, err := svc.Rebuild()
	require.NoError(t, err)
	assert.NotSame(t, old, fresh)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))

	current, err := svc.Graph()
	require.NoError(t, err)
	assert.Same(t, fresh, current)
}

func TestServiceLoaderErrorPropagates(t *testing.T) {
	loadErr := errors.New("seed file unreadable")
	svc := NewService(func() (*seed.Data, error) { return nil, loadErr })

	_, err := svc.Graph()
	require.ErrorIs(t, err, loadErr)

	// A failed build must not poison the service
	_, err = svc.Graph()
	require.ErrorIs(t, err, loadErr)
}
