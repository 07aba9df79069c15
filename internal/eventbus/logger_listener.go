package eventbus

import (
	"context"
	"strings"

	"github.com/annel0/blockverse/internal/logging"
)

// StartLoggingListener подписывается на все события и пишет их в лог компонента.
// Функция неблокирующая.
func StartLoggingListener(bus EventBus, logger *logging.Logger) (Subscription, error) {
	sub, err := bus.Subscribe(context.Background(), Filter{}, func(ctx context.Context, ev *Envelope) {
		if ev.EventType == EventTypeMeshChanged {
			if mc, err := DecodeMeshChanged(ev); err == nil {
				logger.Debug("[EventBus] %s %s op=%s origin=%s chunks=[%s]",
					ev.ID, ev.EventType, mc.Op, mc.Origin, strings.Join(mc.Chunks, "; "))
				return
			}
		}
		logger.Debug("[EventBus] %s %s src=%s prio=%d size=%dB", ev.ID, ev.EventType, ev.Source, ev.Priority, len(ev.Payload))
	})
	if err != nil {
		return nil, err
	}
	logger.Info("LoggingListener: подписка на все события активирована")
	return sub, nil
}
