package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

var (
	ErrInvalidTablesCount = errors.New("tables-count must be at least 1")
	ErrInvalidDuration    = errors.New("game durations must be positive")
)

type Config struct {
	LogLevel   string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort   string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort string `yaml:"socket-port" env:"SOCKET_PORT" env-default:"8080"`
	Redis      Redis  `yaml:"redis"`
	Game       Game   `yaml:"game"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// Game - lobby settings, read once when the registry is built.
type Game struct {
	TablesCount  int           `yaml:"tables-count" env:"TABLES_COUNT" env-default:"8"`
	MoveTimeout  time.Duration `yaml:"move-timeout" env:"MOVE_TIMEOUT" env-default:"10s"`
	ReadyTimeout time.Duration `yaml:"ready-timeout" env:"READY_TIMEOUT" env-default:"30s"`
	TickInterval time.Duration `yaml:"tick-interval" env:"TICK_INTERVAL" env-default:"250ms"`
	ResetOnStart bool          `yaml:"reset-on-start" env:"RESET_ON_START" env-default:"false"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Game.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

func (that *Game) Validate() error {
	if that.TablesCount < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidTablesCount, that.TablesCount)
	}

	if that.MoveTimeout <= 0 || that.ReadyTimeout <= 0 || that.TickInterval <= 0 {
		return ErrInvalidDuration
	}

	return nil
}
