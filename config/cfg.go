package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"

	"ftc/common"
	"ftc/geometry"
	"ftc/measure"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	PageConfig struct {
		Width  float64 `yaml:"width" validate:"gt=0"`
		Height float64 `yaml:"height" validate:"gt=0"`
	}

	DocumentConfig struct {
		Name            string                     `yaml:"name" validate:"required"`
		Page            PageConfig                 `yaml:"page"`
		FrameBounds     []float64                  `yaml:"frame_bounds" validate:"len=4,dive,gte=0"`
		OnThreadFailure common.ThreadFailurePolicy `yaml:"on_thread_failure" validate:"gte=0"`
		TextEncoding    string                     `yaml:"text_encoding"`
	}

	MeasureConfig struct {
		FontSize  float64 `yaml:"font_size" validate:"gt=0"`
		Leading   float64 `yaml:"leading" validate:"gte=0"`
		CharWidth float64 `yaml:"char_width" validate:"gt=0,lte=2"`
		Inset     float64 `yaml:"inset" validate:"gte=0"`
	}

	ScenarioConfig struct {
		ContinueOnError bool `yaml:"continue_on_error"`
		// Include frame content in list and dump results.
		ShowContent bool `yaml:"show_content"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Document  DocumentConfig `yaml:"document"`
		Measure   MeasureConfig  `yaml:"measure"`
		Scenario  ScenarioConfig `yaml:"scenario"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

// PageSize returns default page size.
func (conf *DocumentConfig) PageSize() geometry.PageSize {
	return geometry.PageSize{Width: conf.Page.Width, Height: conf.Page.Height}
}

// Bounds returns default frame bounds.
func (conf *DocumentConfig) Bounds() (geometry.Bounds, error) {
	return geometry.FromSlice(conf.FrameBounds)
}

// Estimator returns reference content oracle configured by measure section.
func (conf *MeasureConfig) Estimator() measure.Estimator {
	return measure.Estimator{
		FontSize:  conf.FontSize,
		Leading:   conf.Leading,
		CharWidth: conf.CharWidth,
		Inset:     conf.Inset,
	}
}

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		// sanitize and validate what has been loaded
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, fmt.Errorf("failed to sanitize configuration: %w", err)
		}
		if err := gencfg.Validate(cfg, gencfg.WithAdditionalChecks(checkFrameBounds)); err != nil {
			return nil, fmt.Errorf("failed to validate configuration: %w", err)
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to provide
// sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}
