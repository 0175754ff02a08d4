package config

import (
	"github.com/go-playground/validator"
	"github.com/inhies/go-bytesize"
)

// Failure policies for catalog and index provider errors.
const (
	PolicyFailOpen = "fail-open"
	PolicyFailFast = "fail-fast"
)

type Config struct {
	CacheRoot     string   `mapstructure:"cache_root" yaml:"cache_root" validate:"required"`
	IndexPath     string   `mapstructure:"index_path" yaml:"index_path" validate:"required"`
	Catalogs      Catalogs `mapstructure:"catalogs" yaml:"catalogs" validate:"required"`
	Audit         Audit    `mapstructure:"audit" yaml:"audit" validate:"required"`
	FailurePolicy string   `mapstructure:"failure_policy" yaml:"failure_policy" validate:"valid-policy"`
	RefreshCmd    string   `mapstructure:"refresh_cmd" yaml:"refresh_cmd,omitempty"`
}

// Catalogs holds snapshot file locations for the three catalog providers.
type Catalogs struct {
	Applications string `mapstructure:"applications" yaml:"applications" validate:"required"`
	Packages     string `mapstructure:"packages" yaml:"packages" validate:"required"`
	Updates      string `mapstructure:"updates" yaml:"updates" validate:"required"`
}

type Audit struct {
	LogPath    string `mapstructure:"log_path" yaml:"log_path" validate:"required"`
	MaxLogSize string `mapstructure:"max_log_size" yaml:"max_log_size" validate:"valid-bsize"`
	MarkerPath string `mapstructure:"marker_path" yaml:"marker_path" validate:"required"`
}

// MaxLogSizeBytes parses the audit log truncation threshold.
func (c *Config) MaxLogSizeBytes() int64 {
	bs, err := bytesize.Parse(c.Audit.MaxLogSize)
	if err != nil {
		return 0
	}
	return int64(bs)
}

// FailFast reports whether provider errors should abort the run.
func (c *Config) FailFast() bool {
	return c.FailurePolicy == PolicyFailFast
}

func (c *Config) Validate() error {
	return NewValidator().Struct(c)
}

// NewValidator builds the config validator with custom rules registered.
func NewValidator() *validator.Validate {
	validate := validator.New()

	validate.RegisterValidation("valid-bsize", ValidateBSize)
	validate.RegisterValidation("valid-policy", ValidatePolicy)

	return validate
}

func ValidateBSize(fl validator.FieldLevel) bool {
	sizeStr, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	_, err := bytesize.Parse(sizeStr)
	return err == nil
}

func ValidatePolicy(fl validator.FieldLevel) bool {
	policy, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	return policy == PolicyFailOpen || policy == PolicyFailFast
}
