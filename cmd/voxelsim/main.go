package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/annel0/blockverse/internal/config"
	"github.com/annel0/blockverse/internal/eventbus"
	"github.com/annel0/blockverse/internal/logging"
	"github.com/annel0/blockverse/internal/observability"
	"github.com/annel0/blockverse/internal/sim"
	"github.com/annel0/blockverse/internal/snapshot"
	"github.com/annel0/blockverse/internal/vec"
	"github.com/annel0/blockverse/internal/world"
	"github.com/annel0/blockverse/internal/world/block"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	configPath := flag.String("config", "", "путь к YAML конфигурации (по умолчанию $BLOCKVERSE_CONFIG)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Ошибка загрузки конфигурации: %v", err)
	}

	if err := setupLogging(cfg.Logging); err != nil {
		log.Fatalf("❌ Ошибка инициализации логирования: %v", err)
	}
	defer logging.CloseDefaultLogger()
	defer logging.GetLoggerManager().CloseAll()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logging.Error("❌ %v", err)
		os.Exit(1)
	}
	logging.Info("👋 Симуляция завершена")
}

func setupLogging(cfg config.LoggingConfig) error {
	level, err := logging.ParseLevel(cfg.Level)
	if err != nil {
		return err
	}

	if cfg.File {
		if err := logging.InitDefaultLogger("voxelsim"); err != nil {
			return err
		}
	} else {
		logging.SetDefaultLogger(logging.NewConsoleLogger("voxelsim"))
	}
	logging.Default().SetLevels(level, logging.TRACE)

	logging.GetLoggerManager().SetFactory(func(component string) (*logging.Logger, error) {
		var l *logging.Logger
		if cfg.File {
			var err error
			if l, err = logging.NewLogger(component); err != nil {
				return nil, err
			}
		} else {
			l = logging.NewConsoleLogger(component)
		}
		l.SetLevels(level, logging.TRACE)
		return l, nil
	})
	return nil
}

func run(ctx context.Context, cfg *config.Config) error {
	shutdownTelemetry, err := observability.InitTelemetry(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("init telemetry: %w", err)
	}
	defer func() {
		if err := shutdownTelemetry(context.Background()); err != nil {
			logging.Warn("OpenTelemetry shutdown: %v", err)
		}
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	worldMetrics, err := world.NewMetrics(reg)
	if err != nil {
		return err
	}

	bus := eventbus.NewMemoryBus(1024)
	defer bus.Close()

	busMetrics, err := eventbus.NewMetricsExporter(bus, reg)
	if err != nil {
		return err
	}
	busMetrics.Start(time.Second)
	defer busMetrics.Stop()

	if _, err := eventbus.StartLoggingListener(bus, logging.GetComponentLogger("eventbus")); err != nil {
		return err
	}

	if cfg.Metrics.Enabled {
		srv := eventbus.StartHTTP(fmt.Sprintf(":%d", cfg.Metrics.GetMetricsPort()), reg)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	w := world.NewWorld(
		world.WithMetrics(worldMetrics),
		world.WithLogger(logging.GetWorldLogger()),
		world.WithChangeListener(eventbus.WorldPublisher(bus, "voxelsim")),
	)

	gen := world.NewFlatGenerator(cfg.World.Seed)
	gen.GroundHeight = cfg.World.GroundHeight
	changed := w.LoadGenerated(gen, chunksAround(world.ChunkPos{}, cfg.World.ViewRadius)...)
	logging.Info("🌍 Загружено чанков: %d (изменено сеток: %d)", w.ChunkCount(), len(changed))

	logSnapshot(w, world.ChunkPos{})

	s := sim.New(w, sim.WithLogger(logging.GetSimLogger()))
	spawnBodies(s, float64(cfg.World.GroundHeight))

	tick := time.Duration(cfg.Sim.TickMS) * time.Millisecond
	dt := tick.Seconds()
	if dt == 0 {
		dt = float64(config.DefaultTickMS) / 1000
	}

	var ticker *time.Ticker
	if tick > 0 {
		ticker = time.NewTicker(tick)
		defer ticker.Stop()
	}

	for i := 0; i < cfg.Sim.Ticks; i++ {
		if ticker != nil {
			select {
			case <-ctx.Done():
				logging.Info("📡 Получен сигнал завершения, останавливаемся на шаге %d", i)
				return nil
			case <-ticker.C:
			}
		}

		_, span := observability.StartTick(ctx, i)
		s.Step(dt)
		span.End()

		for _, b := range s.Bodies() {
			logging.Debug("tick %d: %s onGround=%t", i, b, b.OnGround)
		}
	}

	for _, b := range s.Bodies() {
		if target, ok := s.LookingAt(b.ID); ok {
			logging.Info("%s смотрит на %s (грань %s, %.2f)", b, target.Block, target.Face, target.Distance)
		} else {
			logging.Info("%s ни на что не смотрит", b)
		}
	}
	return nil
}

// chunksAround возвращает квадрат чанков радиуса r вокруг center
func chunksAround(center world.ChunkPos, r int) []world.ChunkPos {
	out := make([]world.ChunkPos, 0, (2*r+1)*(2*r+1))
	for dx := -r; dx <= r; dx++ {
		for dz := -r; dz <= r; dz++ {
			out = append(out, world.ChunkPos{X: center.X + int16(dx), Y: center.Y + int16(dz)})
		}
	}
	return out
}

// spawnBodies создаёт падающее тело, строителя и ходока над поверхностью
func spawnBodies(s *sim.Sim, ground float64) {
	s.Spawn(sim.NewBody(mgl64.Vec3{2.2, ground + 4, 2.2}, sim.DefaultBodySize), nil)

	builder := sim.NewBody(mgl64.Vec3{6.2, ground + 1, 6.2}, sim.DefaultBodySize)
	builder.Look = vec.SphericalRotation{Theta: 0, Phi: 0.6}
	s.Spawn(builder, sim.NewBuilder(5, block.Planks))

	walker := sim.NewBody(mgl64.Vec3{10.2, ground + 1, 3.2}, sim.DefaultBodySize)
	walker.Look = vec.RotationFromDirection(vec.North)
	s.Spawn(walker, &sim.Walker{Speed: 3})
}

func logSnapshot(w *world.World, pos world.ChunkPos) {
	chunk, ok := w.GetChunk(pos)
	if !ok {
		return
	}
	data, err := snapshot.EncodeChunk(chunk)
	if err != nil {
		logging.Warn("snapshot %s: %v", pos, err)
		return
	}
	logging.Info("📦 Снимок чанка %s: %d байт", pos, len(data))

	n := len(data)
	if n > 32 {
		n = 32
	}
	logging.Trace("snapshot head: %s", logging.HexDump(data[:n]))

	if mesh, ok := w.GetChunkMesh(pos); ok {
		meshData, err := snapshot.EncodeMesh(mesh)
		if err == nil {
			logging.Debug("Снимок сетки %s: %d записей, %d байт", pos, mesh.Len(), len(meshData))
		}
	}
}
