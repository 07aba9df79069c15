package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config корневая структура конфигурации симуляции.
type Config struct {
	World     WorldConfig     `yaml:"world"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Logging   LoggingConfig   `yaml:"logging"`
	Sim       SimConfig       `yaml:"sim"`
}

type WorldConfig struct {
	Seed         int64 `yaml:"seed"`
	ViewRadius   int   `yaml:"view_radius"`   // Радиус загрузки в чанках вокруг начала координат
	GroundHeight int   `yaml:"ground_height"` // Высота плоской поверхности
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
	Port    int  `yaml:"port"`
}

type TelemetryConfig struct {
	Enabled     bool   `yaml:"enabled"`
	ServiceName string `yaml:"service_name"`
	Endpoint    string `yaml:"endpoint"` // host:port OTLP/HTTP; пусто — localhost:4318
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	File  bool   `yaml:"file"` // Писать ли logs/<component>_<ts>.log
}

type SimConfig struct {
	Ticks  int `yaml:"ticks"`
	TickMS int `yaml:"tick_ms"`
}

const (
	// ConfigEnv переменная окружения с путём к файлу конфигурации
	ConfigEnv = "BLOCKVERSE_CONFIG"
	// MetricsPortEnv переменная окружения с портом Prometheus
	MetricsPortEnv = "BLOCKVERSE_METRICS_PORT"

	DefaultMetricsPort  = 2112
	DefaultViewRadius   = 2
	DefaultGroundHeight = 8
	DefaultTicks        = 20
	DefaultTickMS       = 50
	DefaultServiceName  = "blockverse"
)

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		World: WorldConfig{
			ViewRadius:   DefaultViewRadius,
			GroundHeight: DefaultGroundHeight,
		},
		Metrics:   MetricsConfig{Enabled: false},
		Telemetry: TelemetryConfig{ServiceName: DefaultServiceName},
		Logging:   LoggingConfig{Level: "info"},
		Sim:       SimConfig{Ticks: DefaultTicks, TickMS: DefaultTickMS},
	}
}

// GetMetricsPort возвращает порт метрик с поддержкой fallback значений
func (m *MetricsConfig) GetMetricsPort() int {
	return getPortWithEnvFallback(m.Port, MetricsPortEnv, DefaultMetricsPort)
}

// getPortWithEnvFallback возвращает порт с приоритетом: config -> env -> default
func getPortWithEnvFallback(configPort int, envVar string, defaultPort int) int {
	// Если порт задан в конфиге и больше 0, используем его
	if configPort > 0 {
		return configPort
	}

	// Пробуем прочитать из environment variable
	if envVal := os.Getenv(envVar); envVal != "" {
		if port, err := strconv.Atoi(envVal); err == nil && port > 0 {
			return port
		}
	}

	return defaultPort
}

// Load читает YAML файл конфигурации поверх значений по умолчанию.
// Если path == "", берёт путь из BLOCKVERSE_CONFIG; если и он пуст,
// возвращает Default().
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(ConfigEnv)
		if path == "" {
			return Default(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse разбирает YAML поверх значений по умолчанию и проверяет результат
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет значения, которые нельзя исправить молча
func (c *Config) Validate() error {
	switch {
	case c.World.ViewRadius < 0:
		return fmt.Errorf("world.view_radius must be >= 0, got %d", c.World.ViewRadius)
	case c.World.GroundHeight < 0 || c.World.GroundHeight >= 64:
		return fmt.Errorf("world.ground_height must be in [0,64), got %d", c.World.GroundHeight)
	case c.Sim.Ticks < 0:
		return fmt.Errorf("sim.ticks must be >= 0, got %d", c.Sim.Ticks)
	case c.Sim.TickMS < 0:
		return fmt.Errorf("sim.tick_ms must be >= 0, got %d", c.Sim.TickMS)
	}
	return nil
}
