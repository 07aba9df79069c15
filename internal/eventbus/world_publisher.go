package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/annel0/blockverse/internal/logging"
	"github.com/annel0/blockverse/internal/world"
	"github.com/google/uuid"
)

// EventTypeMeshChanged тип события об изменении сеток чанков
const EventTypeMeshChanged = "chunk.mesh_changed"

// MeshChangedVersion версия схемы MeshChanged
const MeshChangedVersion = 1

// MeshChanged полезная нагрузка события chunk.mesh_changed
type MeshChanged struct {
	Op     string   `json:"op"`
	Origin string   `json:"origin"`
	Chunks []string `json:"chunks"`
}

// NewMeshChangedEnvelope упаковывает изменение мира в конверт
func NewMeshChangedEnvelope(source string, ev world.ChangeEvent) (*Envelope, error) {
	payload, err := json.Marshal(MeshChanged{
		Op:     ev.Op.String(),
		Origin: ev.Origin.String(),
		Chunks: ev.Changed.IDs(),
	})
	if err != nil {
		return nil, fmt.Errorf("marshal mesh change: %w", err)
	}

	priority := 3
	// Выгрузка убирает сетку целиком, потребителю нельзя её пропустить
	if ev.Op == world.ChangeOpUnloadChunk {
		priority = HighPriority
	}

	return &Envelope{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Source:    source,
		EventType: EventTypeMeshChanged,
		Version:   MeshChangedVersion,
		Priority:  priority,
		Payload:   payload,
		Metadata:  map[string]string{"op": ev.Op.String()},
	}, nil
}

// DecodeMeshChanged разбирает полезную нагрузку chunk.mesh_changed
func DecodeMeshChanged(ev *Envelope) (MeshChanged, error) {
	var mc MeshChanged
	if ev.EventType != EventTypeMeshChanged {
		return mc, fmt.Errorf("unexpected event type %q", ev.EventType)
	}
	if err := json.Unmarshal(ev.Payload, &mc); err != nil {
		return mc, fmt.Errorf("unmarshal mesh change: %w", err)
	}
	return mc, nil
}

// WorldPublisher возвращает подписчика World, который публикует каждое
// изменение сеток в шину. Ошибки публикации только логируются: World
// не должен зависеть от доставки.
func WorldPublisher(bus EventBus, source string) world.ChangeListener {
	return func(ev world.ChangeEvent) {
		env, err := NewMeshChangedEnvelope(source, ev)
		if err != nil {
			logging.Warn("EventBus: %v", err)
			return
		}
		if err := bus.Publish(context.Background(), env); err != nil {
			logging.Warn("EventBus: публикация %s не удалась: %v", env.ID, err)
		}
	}
}
