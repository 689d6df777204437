package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/handiism/photo-organizer/internal/model"
)

// EnvPrefix prefixes every environment variable read by ApplyEnv.
const EnvPrefix = "PHOTO_ORGANIZER_"

// Settings holds all configuration options.
type Settings struct {
	// Paths
	SourceDir  string `json:"source_dir" yaml:"source_dir"`
	LibraryDir string `json:"library_dir" yaml:"library_dir"`

	// Organization
	Mode   string `json:"mode" yaml:"mode"` // daily, monthly, compact, flat
	Limit  int    `json:"limit" yaml:"limit"`
	Rename bool   `json:"rename" yaml:"rename"`
	Action string `json:"action" yaml:"action"` // move, copy
	DryRun bool   `json:"dry_run" yaml:"dry_run"`

	// Logging
	LogFile string `json:"log_file,omitempty" yaml:"log_file,omitempty"`
	Verbose bool   `json:"verbose" yaml:"verbose"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		Mode:   model.ModeDaily.String(),
		Limit:  25,
		Action: model.ActionMove.String(),
	}
}

// Load reads settings from a JSON file, or a YAML file when the name ends
// in .yaml or .yml. Fields missing from the file keep their defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if isYAML(path) {
		err = yaml.Unmarshal(data, settings)
	} else {
		err = json.Unmarshal(data, settings)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return settings, nil
}

// Save writes settings to path in the format implied by its extension.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(s)
	} else {
		data, err = json.MarshalIndent(s, "", "  ")
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overrides settings from PHOTO_ORGANIZER_* variables found by
// lookup (usually os.LookupEnv). Empty values are ignored.
func (s *Settings) ApplyEnv(lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok && v != "" {
			*dst = v
		}
	}
	boolean := func(name string, dst *bool) error {
		v, ok := lookup(EnvPrefix + name)
		if !ok || v == "" {
			return nil
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, name, err)
		}
		*dst = b
		return nil
	}

	str("SOURCE", &s.SourceDir)
	str("LIBRARY", &s.LibraryDir)
	str("MODE", &s.Mode)
	str("ACTION", &s.Action)
	str("LOG_FILE", &s.LogFile)

	if v, ok := lookup(EnvPrefix + "LIMIT"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sLIMIT: %w", EnvPrefix, err)
		}
		s.Limit = n
	}
	if err := boolean("RENAME", &s.Rename); err != nil {
		return err
	}
	if err := boolean("DRY_RUN", &s.DryRun); err != nil {
		return err
	}
	return boolean("VERBOSE", &s.Verbose)
}

// RunConfig validates the settings and converts them to a RunConfig.
func (s *Settings) RunConfig() (*model.RunConfig, error) {
	if s.SourceDir == "" {
		return nil, fmt.Errorf("source directory is required")
	}
	if s.LibraryDir == "" {
		return nil, fmt.Errorf("library directory is required")
	}

	mode, err := model.ParseMode(s.Mode)
	if err != nil {
		return nil, err
	}
	action, err := model.ParseAction(s.Action)
	if err != nil {
		return nil, err
	}
	if s.Limit < 0 || s.Limit > 0xFFFF {
		return nil, fmt.Errorf("invalid limit %d, must be between 0 and 65535", s.Limit)
	}

	return &model.RunConfig{
		SourceDir:    s.SourceDir,
		LibraryRoot:  s.LibraryDir,
		Mode:         mode,
		MonthlyLimit: uint16(s.Limit),
		Rename:       s.Rename,
		Action:       action,
		DryRun:       s.DryRun,
	}, nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
