package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/zakriahayder/airfoil-selection-tool/internal/polar"
)

const (
	DefaultInputDir  = "polar data"
	DefaultExtension = ".txt"
	DefaultOutput    = "airfoil_analysis_report.pdf"
	DefaultTitle     = "Airfoil Analysis Report"
	DefaultLayout    = "letter"

	// EnvPrefix prefixes environment overrides, e.g. AIRFOIL_INPUT_DIR.
	EnvPrefix = "AIRFOIL"
)

type Config struct {
	InputDir  string       `yaml:"input_dir" toml:"input_dir" envconfig:"INPUT_DIR" validate:"required"`
	Extension string       `yaml:"extension" toml:"extension" envconfig:"EXTENSION" validate:"required"`
	Output    string       `yaml:"output" toml:"output" envconfig:"OUTPUT" validate:"required"`
	Title     string       `yaml:"title" toml:"title" envconfig:"TITLE" validate:"required"`
	Layout    string       `yaml:"layout" toml:"layout" envconfig:"LAYOUT" validate:"required"`
	Format    polar.Format `yaml:"format" toml:"format" envconfig:"FORMAT"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func DefaultConfig() *Config {
	return &Config{
		InputDir:  DefaultInputDir,
		Extension: DefaultExtension,
		Output:    DefaultOutput,
		Title:     DefaultTitle,
		Layout:    DefaultLayout,
		Format:    polar.DefaultFormat(),
	}
}

// Load builds a config from the defaults, the file at path and then the
// AIRFOIL_* environment, each overriding the previous. An empty path skips
// the file. Files ending in .toml are decoded as TOML, anything else as YAML.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		if err := decodeFile(path, cfg); err != nil {
			return nil, err
		}
	}
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		if path != "" {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return nil, err
	}
	return cfg, nil
}

func decodeFile(path string, cfg *Config) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if isTOML(path) {
		err = toml.NewDecoder(file).Decode(cfg)
	} else {
		err = yaml.NewDecoder(file).Decode(cfg)
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// Save writes cfg as TOML or YAML, chosen by the extension of path.
func Save(path string, cfg *Config) error {
	var (
		data []byte
		err  error
	)
	if isTOML(path) {
		data, err = toml.Marshal(cfg)
	} else {
		data, err = yaml.Marshal(cfg)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return fmt.Errorf("%s is %s", verrs[0].Field(), verrs[0].Tag())
		}
		return err
	}
	if GetLayout(c.Layout) == nil {
		return fmt.Errorf("unknown layout: %s (available: %v)", c.Layout, ListLayouts())
	}
	return c.Format.Validate()
}

// Parser builds a polar parser for the configured file format.
func (c *Config) Parser() (*polar.Parser, error) {
	return polar.NewParser(c.Format)
}
