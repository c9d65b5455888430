package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env   string `yaml:"env" env:"ENV" env-default:"local" validate:"required,oneof=local dev prod"`
	Files Files  `yaml:"files"`
}

type Files struct {
	Seats    string `yaml:"seats" env:"SEATS_FILE" env-default:"available-seats.json" validate:"required"`
	Audience string `yaml:"audience" env:"AUDIENCE_FILE" env-default:"audiences.csv" validate:"required"`
	Output   string `yaml:"output" env:"OUTPUT_FILE"`
	Reserved string `yaml:"reserved" env:"RESERVED_FILE" env-default:"preserved-seats.csv" validate:"required"`
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatal(err)
	}

	return cfg
}

// Load reads the configuration from the YAML file named by CONFIG_PATH,
// with environment variables overriding file values. When CONFIG_PATH is
// not set the defaults and environment alone are used, so the tool runs
// without any config file at all.
func Load() (*Config, error) {
	var cfg Config

	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return nil, fmt.Errorf("config file %s does not exist", configPath)
		}

		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", configPath, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read config from environment: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		var validateErr validator.ValidationErrors
		if errors.As(err, &validateErr) {
			return nil, fmt.Errorf("invalid config: %s", validationError(validateErr))
		}

		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func validationError(errs validator.ValidationErrors) string {
	var errMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "oneof":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s must be one of [%s]", err.Field(), err.Param()))
		default:
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is not valid", err.Field()))
		}
	}

	return strings.Join(errMsgs, ", ")
}
