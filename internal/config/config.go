// Package config loads, validates and persists the carboncalc settings file
// (~/.carboncalc/config.yaml by default).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/rshade/carboncalc/internal/i18n"
)

const (
	// CurrentVersion is written into new config files.
	CurrentVersion = "1.0.0"
	// SupportedVersions is the semver constraint a config file must satisfy.
	SupportedVersions = "^1"

	configFileName = "config.yaml"
	dirPerm        = 0o700
	filePerm       = 0o600
)

// Environment variables that override file settings.
const (
	EnvHome      = "CARBONCALC_HOME"
	EnvLogLevel  = "CARBONCALC_LOG_LEVEL"
	EnvLogFormat = "CARBONCALC_LOG_FORMAT"
	EnvLang      = "CARBONCALC_LANG"
)

// Output formats accepted by output.default_format.
const (
	FormatTable  = "table"
	FormatJSON   = "json"
	FormatNDJSON = "ndjson"
)

// ErrUnknownKey is returned by Get and Set for keys that do not exist.
var ErrUnknownKey = errors.New("unknown configuration key")

// Config is the on-disk configuration.
type Config struct {
	Version string        `yaml:"version"`
	Output  OutputConfig  `yaml:"output"`
	Report  ReportConfig  `yaml:"report"`
	Logging LoggingConfig `yaml:"logging"`

	configPath string
}

// OutputConfig controls how results are shown.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
	Language      string `yaml:"language"`
	DarkMode      bool   `yaml:"dark_mode"`
}

// ReportConfig controls report exports.
type ReportConfig struct {
	Dir     string   `yaml:"dir"`
	Formats []string `yaml:"formats"`
}

// LoggingConfig controls the application logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
	File   string `yaml:"file,omitempty"`
	Caller bool   `yaml:"caller"`
}

// Default returns the built-in configuration without reading any file.
func Default() *Config {
	return &Config{
		Version: CurrentVersion,
		Output: OutputConfig{
			DefaultFormat: FormatTable,
			Language:      string(i18n.English),
		},
		Report: ReportConfig{
			Dir:     ".",
			Formats: []string{"pdf"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			Output: "stderr",
		},
		configPath: defaultConfigPath(),
	}
}

// New returns the default configuration overlaid with the config file, if
// present and valid, and then with environment overrides.
func New() *Config {
	cfg := Default()
	if err := cfg.Load(); err != nil {
		// A broken file must not stop the calculator; callers that care use Load.
		cfg = Default()
	}
	cfg.ApplyEnv(os.LookupEnv)
	return cfg
}

func defaultConfigPath() string {
	dir, err := GetConfigDir()
	if err != nil {
		return configFileName
	}
	return filepath.Join(dir, configFileName)
}

// ConfigPath returns the file this config loads from and saves to.
func (c *Config) ConfigPath() string { return c.configPath }

// SetConfigPath changes the file this config loads from and saves to.
func (c *Config) SetConfigPath(path string) { c.configPath = path }

// Load reads the config file onto c. A missing file is not an error.
func (c *Config) Load() error {
	data, err := os.ReadFile(c.configPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", c.configPath, err)
	}
	if err = yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file %s: %w", c.configPath, err)
	}
	return c.Validate()
}

// Save writes c to its config path, creating the directory if needed.
func (c *Config) Save() error {
	if err := os.MkdirAll(filepath.Dir(c.configPath), dirPerm); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err = os.WriteFile(c.configPath, data, filePerm); err != nil {
		return fmt.Errorf("writing config file %s: %w", c.configPath, err)
	}
	return nil
}

// ApplyEnv applies CARBONCALC_* overrides using lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		c.Logging.Format = v
	}
	if v, ok := lookup(EnvLang); ok && v != "" {
		if lang, supported := i18n.ParseLang(v); supported {
			c.Output.Language = string(lang)
		}
	}
}

// Validate checks every section and reports all problems at once.
func (c *Config) Validate() error {
	var errs []error
	if err := validateVersion(c.Version); err != nil {
		errs = append(errs, err)
	}
	if !slices.Contains([]string{FormatTable, FormatJSON, FormatNDJSON}, c.Output.DefaultFormat) {
		errs = append(errs, fmt.Errorf("output.default_format %q must be table, json or ndjson", c.Output.DefaultFormat))
	}
	if _, ok := i18n.ParseLang(c.Output.Language); !ok {
		errs = append(errs, fmt.Errorf("output.language %q must be en or pt", c.Output.Language))
	}
	for _, f := range c.Report.Formats {
		if f != "pdf" && f != "txt" {
			errs = append(errs, fmt.Errorf("report.formats entry %q must be pdf or txt", f))
		}
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.Logging.Level)); err != nil {
		errs = append(errs, fmt.Errorf("logging.level %q is not a valid level", c.Logging.Level))
	}
	if c.Logging.Format != "console" && c.Logging.Format != "json" {
		errs = append(errs, fmt.Errorf("logging.format %q must be console or json", c.Logging.Format))
	}
	if c.Logging.Output != "stderr" && c.Logging.Output != "file" {
		errs = append(errs, fmt.Errorf("logging.output %q must be stderr or file", c.Logging.Output))
	}
	return errors.Join(errs...)
}

func validateVersion(v string) error {
	if v == "" {
		return nil
	}
	version, err := semver.NewVersion(v)
	if err != nil {
		return fmt.Errorf("version %q is not a semantic version: %w", v, err)
	}
	constraint, err := semver.NewConstraint(SupportedVersions)
	if err != nil {
		return err
	}
	if !constraint.Check(version) {
		return fmt.Errorf("config version %s is not supported (want %s)", v, SupportedVersions)
	}
	return nil
}

// Keys returns every dotted key understood by Get and Set, in display order.
func Keys() []string {
	return []string{
		"version",
		"output.default_format",
		"output.language",
		"output.dark_mode",
		"report.dir",
		"report.formats",
		"logging.level",
		"logging.format",
		"logging.output",
		"logging.file",
		"logging.caller",
	}
}

// Get returns the value at a dotted key such as "output.language".
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "version":
		return c.Version, nil
	case "output.default_format":
		return c.Output.DefaultFormat, nil
	case "output.language":
		return c.Output.Language, nil
	case "output.dark_mode":
		return strconv.FormatBool(c.Output.DarkMode), nil
	case "report.dir":
		return c.Report.Dir, nil
	case "report.formats":
		return strings.Join(c.Report.Formats, ","), nil
	case "logging.level":
		return c.Logging.Level, nil
	case "logging.format":
		return c.Logging.Format, nil
	case "logging.output":
		return c.Logging.Output, nil
	case "logging.file":
		return c.Logging.File, nil
	case "logging.caller":
		return strconv.FormatBool(c.Logging.Caller), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set assigns value to a dotted key. The change is rolled back when it
// leaves the config invalid.
func (c *Config) Set(key, value string) error {
	previous := *c
	previous.Report.Formats = slices.Clone(c.Report.Formats)

	if err := c.set(key, value); err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		*c = previous
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}
	return nil
}

func (c *Config) set(key, value string) error {
	switch key {
	case "version":
		c.Version = value
	case "output.default_format":
		c.Output.DefaultFormat = value
	case "output.language":
		c.Output.Language = value
	case "output.dark_mode":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("output.dark_mode must be true or false: %w", err)
		}
		c.Output.DarkMode = b
	case "report.dir":
		c.Report.Dir = value
	case "report.formats":
		c.Report.Formats = splitList(value)
	case "logging.level":
		c.Logging.Level = value
	case "logging.format":
		c.Logging.Format = value
	case "logging.output":
		c.Logging.Output = value
	case "logging.file":
		c.Logging.File = value
	case "logging.caller":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("logging.caller must be true or false: %w", err)
		}
		c.Logging.Caller = b
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// List returns every key with its current value.
func (c *Config) List() map[string]string {
	out := make(map[string]string, len(Keys()))
	for _, k := range Keys() {
		v, _ := c.Get(k)
		out[k] = v
	}
	return out
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
