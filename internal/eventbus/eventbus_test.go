package eventbus

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/annel0/blockverse/internal/logging"
	"github.com/annel0/blockverse/internal/world"
	"github.com/annel0/blockverse/internal/world/block"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, ch <-chan *Envelope) *Envelope {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("событие не доставлено")
		return nil
	}
}

func TestMemoryBusFilter(t *testing.T) {
	bus := NewMemoryBus(16)
	defer bus.Close()

	got := make(chan *Envelope, 4)
	_, err := bus.Subscribe(context.Background(), Filter{Types: []string{"a"}}, func(ctx context.Context, ev *Envelope) {
		got <- ev
	})
	require.NoError(t, err)

	require.NoError(t, bus.Publish(context.Background(), &Envelope{ID: "1", EventType: "b"}))
	require.NoError(t, bus.Publish(context.Background(), &Envelope{ID: "2", EventType: "a"}))

	ev := receive(t, got)
	assert.Equal(t, "2", ev.ID)

	select {
	case extra := <-got:
		t.Fatalf("лишнее событие %s", extra.ID)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestMemoryBusUnsubscribeAndClose(t *testing.T) {
	bus := NewMemoryBus(4)

	got := make(chan *Envelope, 4)
	sub, err := bus.Subscribe(context.Background(), Filter{}, func(ctx context.Context, ev *Envelope) {
		got <- ev
	})
	require.NoError(t, err)
	sub.Unsubscribe()

	require.NoError(t, bus.Publish(context.Background(), &Envelope{ID: "x"}))
	bus.Close()
	assert.Empty(t, got)

	assert.ErrorIs(t, bus.Publish(context.Background(), &Envelope{}), ErrBusClosed)
	_, err = bus.Subscribe(context.Background(), Filter{}, func(context.Context, *Envelope) {})
	assert.ErrorIs(t, err, ErrBusClosed)

	stats := bus.Metrics()
	assert.Equal(t, uint64(1), stats.Published)
	assert.Equal(t, uint64(0), stats.Consumed)

	// повторное закрытие безопасно
	bus.Close()
}

func TestWorldPublisher(t *testing.T) {
	bus := NewMemoryBus(16)
	defer bus.Close()

	got := make(chan *Envelope, 8)
	_, err := bus.Subscribe(context.Background(), Filter{Types: []string{EventTypeMeshChanged}}, func(ctx context.Context, ev *Envelope) {
		got <- ev
	})
	require.NoError(t, err)

	w := world.NewWorld(world.WithChangeListener(WorldPublisher(bus, "test")))
	w.LoadChunk(world.ChunkPos{})
	w.LoadChunk(world.ChunkPos{X: 1})

	_, err = w.AddBlock(world.NewWorldBlock(block.Stone, world.WorldPos{X: 15, Y: 3, Z: 0}))
	require.NoError(t, err)

	var mc MeshChanged
	for i := 0; i < 3; i++ {
		ev := receive(t, got)
		_, err := uuid.Parse(ev.ID)
		require.NoError(t, err)
		assert.Equal(t, "test", ev.Source)
		assert.Equal(t, MeshChangedVersion, ev.Version)

		decoded, err := DecodeMeshChanged(ev)
		require.NoError(t, err)
		if decoded.Op == world.ChangeOpAddBlock.String() {
			mc = decoded
		}
	}

	assert.Equal(t, "0 0", mc.Origin)
	assert.Equal(t, []string{"0 0", "1 0"}, mc.Chunks)
}

func TestDecodeMeshChangedRejectsOtherTypes(t *testing.T) {
	_, err := DecodeMeshChanged(&Envelope{EventType: "other"})
	assert.Error(t, err)

	_, err = DecodeMeshChanged(&Envelope{EventType: EventTypeMeshChanged, Payload: []byte("{")})
	assert.Error(t, err)
}

func TestUnloadIsHighPriority(t *testing.T) {
	env, err := NewMeshChangedEnvelope("test", world.ChangeEvent{
		Op:      world.ChangeOpUnloadChunk,
		Changed: world.NewChangeSet(world.ChunkPos{}),
	})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, env.Priority, HighPriority)
	assert.Equal(t, "unload_chunk", env.Metadata["op"])
}

func TestMetricsExporter(t *testing.T) {
	bus := NewMemoryBus(4)
	reg := prometheus.NewRegistry()

	exp, err := NewMetricsExporter(bus, reg)
	require.NoError(t, err)

	require.NoError(t, bus.Publish(context.Background(), &Envelope{ID: "1"}))
	require.NoError(t, bus.Publish(context.Background(), &Envelope{ID: "2"}))
	bus.Close()

	exp.Update()
	exp.Update()
	exp.Stop()

	assert.Equal(t, 2.0, testutil.ToFloat64(exp.published))
	assert.Equal(t, 0.0, testutil.ToFloat64(exp.inflight))

	_, err = NewMetricsExporter(bus, reg)
	assert.Error(t, err, "повторная регистрация в том же реестре")
}

func TestLoggingListener(t *testing.T) {
	bus := NewMemoryBus(4)

	var out bytes.Buffer
	logger := logging.NewWriterLogger("bus", &out, nil)
	logger.SetLevels(logging.DEBUG, logging.DEBUG)

	_, err := StartLoggingListener(bus, logger)
	require.NoError(t, err)

	env, err := NewMeshChangedEnvelope("test", world.ChangeEvent{
		Op:      world.ChangeOpAddBlock,
		Changed: world.NewChangeSet(world.ChunkPos{X: -1, Y: 2}),
	})
	require.NoError(t, err)
	require.NoError(t, bus.Publish(context.Background(), env))
	bus.Close()

	assert.Contains(t, out.String(), "op=add_block")
	assert.Contains(t, out.String(), "chunks=[-1 2]")
}
