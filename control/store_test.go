package control_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/control"
)

func TestConfigStoreReloadRebuildsRing(t *testing.T) {
	defer goleak.VerifyNone(t)

	store := control.NewConfigStore(control.DefaultConfig())

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		rebuilt api.Ring[int]
	)
	store.OnReload(func(cfg control.Config) {
		defer wg.Done()
		r, err := control.Build[int](cfg)
		if err != nil {
			return
		}
		mu.Lock()
		rebuilt = r
		mu.Unlock()
	})

	next := control.Config{Name: "small", Kind: control.KindMasking, Capacity: 8, Backend: control.BackendHeap}
	wg.Add(1)
	require.NoError(t, store.Set(next))
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	require.NotNil(t, rebuilt)
	assert.Equal(t, 8, rebuilt.Cap())
	assert.Equal(t, next, store.Get())
}

func TestConfigStoreRejectsInvalid(t *testing.T) {
	store := control.NewConfigStore(control.DefaultConfig())
	called := false
	store.OnReload(func(control.Config) { called = true })

	err := store.SetSync(control.Config{Kind: control.KindMasking, Capacity: 12, Backend: control.BackendHeap})
	assert.ErrorIs(t, err, api.ErrInvalidCapacity)
	assert.False(t, called)
	assert.Equal(t, control.DefaultConfig(), store.Get())

	cfg := control.DefaultConfig()
	cfg.Capacity = 7
	require.NoError(t, store.SetSync(cfg))
	assert.True(t, called)
}
