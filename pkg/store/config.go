package store

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/tempo/pkg/picker"
)

const (
	KeyRecentsPath  = "recents.path"
	KeyRecentsLimit = "recents.limit"

	DefaultRecentsPath  = "~/.tempo/recents"
	DefaultRecentsLimit = 10

	// pickerKey holds attributes shared by every variant. A nested key per
	// variant (picker.date-range.min) overrides the shared value.
	pickerKey = "picker"
)

// Config is the resolved tempo configuration.
type Config interface {
	// BasePath is the recents directory.
	BasePath() string
	RecentsLimit() int
	// PickerConfig builds the picker config for v from the configured
	// attributes.
	PickerConfig(v picker.Variant) (picker.Config, error)
}

// LoadConfig reads .tempo.yaml from TEMPO_CONFIG_PATH or the working
// directory. Every key can be overridden from the environment with the
// TEMPO_ prefix, e.g. TEMPO_RECENTS_LIMIT or TEMPO_PICKER_WEEK_START.
func LoadConfig() (Config, error) {
	v := newViper()
	v.SetConfigName(".tempo") // .yaml is implicit

	if override := os.Getenv("TEMPO_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}
	return FromViper(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyRecentsPath, DefaultRecentsPath)
	v.SetDefault(KeyRecentsLimit, DefaultRecentsLimit)
	v.SetEnvPrefix("TEMPO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// FromViper resolves a Config from an already loaded viper instance.
func FromViper(v *viper.Viper) (Config, error) {
	path, err := homedir.Expand(v.GetString(KeyRecentsPath))
	if err != nil {
		return nil, fmt.Errorf("store: expand %s: %w", KeyRecentsPath, err)
	}
	limit := v.GetInt(KeyRecentsLimit)
	if limit < 1 {
		return nil, fmt.Errorf("store: %s must be at least 1, got %d", KeyRecentsLimit, limit)
	}
	cfg := &fileConfig{
		Path:     path,
		Limit:    limit,
		Shared:   attributes(v, pickerKey),
		Variants: make(map[picker.Variant]map[string]string),
	}
	for _, variant := range picker.Variants() {
		if attrs := attributes(v, pickerKey+"."+string(variant)); len(attrs) > 0 {
			cfg.Variants[variant] = attrs
		}
	}
	return cfg, nil
}

func attributes(v *viper.Viper, prefix string) map[string]string {
	attrs := make(map[string]string)
	for _, name := range picker.AttributeNames() {
		key := prefix + "." + name
		if v.IsSet(key) {
			attrs[name] = v.GetString(key)
		}
	}
	return attrs
}

type fileConfig struct {
	Path     string                               `json:"path"`
	Limit    int                                  `json:"limit"`
	Shared   map[string]string                    `json:"picker"`
	Variants map[picker.Variant]map[string]string `json:"variants"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) RecentsLimit() int {
	return f.Limit
}

func (f *fileConfig) PickerConfig(v picker.Variant) (picker.Config, error) {
	attrs := make(map[string]string, len(f.Shared))
	for k, val := range f.Shared {
		attrs[k] = val
	}
	for k, val := range f.Variants[v] {
		attrs[k] = val
	}
	cfg, err := picker.ConfigFromAttributes(v, attrs)
	if err != nil {
		return cfg, fmt.Errorf("store: picker config for %s: %w", v, err)
	}
	return cfg, nil
}
