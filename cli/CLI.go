package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ffigen/go-ffigen/generator"
)

// Default Config Values
const (
	DefaultInput         = ""
	DefaultOutput        = ""
	DefaultDiff          = ""
	DefaultPackage       = ""
	DefaultCTypesPrefix  = ""
	DefaultConvertFloats = false
	DefaultDebug         = false
)

// Config holds the options of a generate run. Non-empty values override the
// ones read from the declaration description.
type Config struct {
	Debug         bool
	Input         string
	Output        string
	Diff          string
	Package       string
	CTypesPrefix  string
	ConvertFloats bool
}

func setConfigValue(input, defaultValue string) string {
	if input = strings.TrimSpace(input); input != "" {
		return input
	}
	return defaultValue
}

// Normalize trims the string options.
func (cfg *Config) Normalize() {
	cfg.Input = setConfigValue(cfg.Input, DefaultInput)
	cfg.Output = setConfigValue(cfg.Output, DefaultOutput)
	cfg.Diff = setConfigValue(cfg.Diff, DefaultDiff)
	cfg.Package = setConfigValue(cfg.Package, DefaultPackage)
	cfg.CTypesPrefix = setConfigValue(cfg.CTypesPrefix, DefaultCTypesPrefix)
}

// Validate checks that the input exists and that the output paths can be
// written.
func (cfg *Config) Validate() error {
	if cfg.Input == "" {
		return errors.New("--input is required")
	}
	if _, err := os.Stat(cfg.Input); err != nil {
		return fmt.Errorf("--input \"%s\" is invalid: %v", cfg.Input, err)
	}

	if cfg.Output != "" {
		if filepath.Ext(cfg.Output) != ".go" {
			return errors.New("output file must have a .go extension")
		}
		if err := validateDir(cfg.Output); err != nil {
			return err
		}
	}

	if cfg.Diff != "" {
		if cfg.Output == "" {
			return errors.New("--diff requires --output")
		}
		if filepath.Ext(cfg.Diff) != ".diff" {
			return errors.New("diff file must have a .diff extension")
		}
		if err := validateDir(cfg.Diff); err != nil {
			return err
		}
	}
	return nil
}

func validateDir(path string) error {
	_, err := os.Stat(filepath.Dir(path))
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("output file directory does not exist: %v", err)
	}
	return nil
}

// Apply overrides the fields of spec that are set in cfg.
func (cfg *Config) Apply(spec *generator.Spec) {
	if cfg.Package != "" {
		spec.Package = cfg.Package
	}
	if cfg.CTypesPrefix != "" {
		spec.CTypesPrefix = cfg.CTypesPrefix
	}
	if cfg.ConvertFloats {
		spec.ConvertFloats = true
	}
}
