package main

import (
	"errors"
	"flag"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/sushihentaime/registration-form/internal/ui"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type application struct {
	config   config
	logger   *slog.Logger
	renderer *ui.Renderer
}

type config struct {
	Port            string        `env:"PORT" envDefault:":4000"`
	Env             string        `env:"ENV" envDefault:"development"`
	LogLevel        slog.Level    `env:"LOG_LEVEL" envDefault:"info"`
	MaxBodyBytes    int64         `env:"MAX_BODY_BYTES" envDefault:"1048576"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

func main() {
	var envFile string

	flag.StringVar(&envFile, "env", ".env", "Environment variables file name")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := loadConfig(envFile)
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}

	logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))

	renderer, err := ui.New()
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}

	app := &application{
		config:   cfg,
		logger:   logger,
		renderer: renderer,
	}

	err = app.serve()
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

// loadConfig reads envFile into the process environment, if it exists, and
// parses the environment into a config.
func loadConfig(envFile string) (config, error) {
	var cfg config

	err := godotenv.Load(envFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, err
	}

	err = env.Parse(&cfg)
	if err != nil {
		return cfg, err
	}

	return cfg, nil
}
