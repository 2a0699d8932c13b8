package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Top-level YAML config key names used for shallow merge.
const (
	keyVersion = "version"
	keyOutput  = "output"
	keyReport  = "report"
	keyLogging = "logging"
)

// ShallowMergeYAML loads a YAML file and merges its top-level keys onto
// target. A key present in the overlay replaces the whole section; absent
// keys are left unchanged and unknown keys are ignored.
func ShallowMergeYAML(target *Config, overlayPath string) error {
	if target == nil {
		return errors.New("nil target *Config in ShallowMergeYAML")
	}

	data, err := os.ReadFile(overlayPath)
	if err != nil {
		return fmt.Errorf("reading overlay file %s: %w", overlayPath, err)
	}

	var overlay map[string]yaml.Node
	if err = yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing overlay YAML from %s: %w", overlayPath, err)
	}

	for key, node := range overlay {
		if err = mergeSection(target, key, &node); err != nil {
			return fmt.Errorf("applying overlay section %q: %w", key, err)
		}
	}
	return target.Validate()
}

// mergeSection decodes node into a fresh value so the section is replaced,
// not merged field by field.
func mergeSection(target *Config, key string, node *yaml.Node) error {
	switch key {
	case keyVersion:
		var v string
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Version = v
	case keyOutput:
		var v OutputConfig
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Output = v
	case keyReport:
		var v ReportConfig
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Report = v
	case keyLogging:
		var v LoggingConfig
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Logging = v
	}
	return nil
}
