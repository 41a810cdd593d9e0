package engine

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config хранит параметры запуска движка
type Config struct {
	// Seed - мастер-зерно. От него зависят все уровни.
	// Level N Seed = DeriveSeed(MasterSeed, N)
	Seed int64 `yaml:"seed"`

	StartLevel int `yaml:"start_level"`

	// TickHz - частота тиков симуляции в реальном времени.
	TickHz int `yaml:"tick_hz"`

	Port      string `yaml:"port"`
	ReplayDir string `yaml:"replay_dir"`

	// Cheats включает отладочные команды ADMIN_*.
	Cheats bool `yaml:"cheats"`

	// Autopilot - уровень проходит встроенный бот, ввод клиентов игнорируется.
	Autopilot bool `yaml:"autopilot"`
}

// NewConfig создает конфиг по умолчанию (случайный сид)
func NewConfig() Config {
	return Config{
		Seed:       time.Now().UnixNano(),
		StartLevel: 0,
		TickHz:     20,
		Port:       "8080",
		ReplayDir:  "./replays",
	}
}

// LoadConfig накладывает YAML-файл поверх значений по умолчанию.
// Пустой путь - только умолчания.
func LoadConfig(path string) (Config, error) {
	cfg := NewConfig()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.TickHz <= 0 || c.TickHz > 1000 {
		return errors.New("tick_hz must be in 1..1000")
	}
	if c.StartLevel < 0 {
		return errors.New("start_level cannot be negative")
	}
	if c.Port == "" {
		return errors.New("port is required")
	}
	return nil
}

// TickInterval - период тикера игрового цикла.
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickHz)
}
