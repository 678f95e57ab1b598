package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigName is looked up in the root directory when no --config flag is given.
	DefaultConfigName = ".sectionscan.yaml"
	// DefaultInputFile is the file scanned when no file argument is given.
	DefaultInputFile = "index.html"
	// DefaultPlaceholder is printed for sections whose title was never found.
	DefaultPlaceholder = "None"
	// DefaultMaxIndent is the deepest indentation at which a closing marker still counts.
	DefaultMaxIndent = 20
)

// ErrInvalidConfig indicates the config file failed to decode or validate.
var ErrInvalidConfig = errors.New("invalid config")

// Markers holds the literal substrings the scanner looks for.
type Markers struct {
	Wrapper  string `yaml:"wrapper" json:"wrapper"`
	Title    string `yaml:"title" json:"title"`
	TitleEnd string `yaml:"title_end" json:"title_end"`
	Content  string `yaml:"content" json:"content"`
	Closing  string `yaml:"closing" json:"closing"`
}

// ScanSettings tunes the section scanner.
type ScanSettings struct {
	Markers     Markers
	MaxIndent   int
	Placeholder string
}

// DefaultScanSettings returns the settings matching the collapsible-section markup.
func DefaultScanSettings() ScanSettings {
	return ScanSettings{
		Markers: Markers{
			Wrapper:  `class="collapsible-section"`,
			Title:    `section-title">`,
			TitleEnd: `</span>`,
			Content:  `class="section-content`,
			Closing:  `</div>`,
		},
		MaxIndent:   DefaultMaxIndent,
		Placeholder: DefaultPlaceholder,
	}
}

// FileConfig mirrors the layout of .sectionscan.yaml.
type FileConfig struct {
	File        string  `yaml:"file"`
	Placeholder string  `yaml:"placeholder"`
	MaxIndent   int     `yaml:"max_indent"`
	Markers     Markers `yaml:"markers"`
}

const configSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "file": {"type": "string", "minLength": 1},
    "placeholder": {"type": "string"},
    "max_indent": {"type": "integer", "minimum": 0},
    "markers": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "wrapper": {"$ref": "#/definitions/marker"},
        "title": {"$ref": "#/definitions/marker"},
        "title_end": {"$ref": "#/definitions/marker"},
        "content": {"$ref": "#/definitions/marker"},
        "closing": {"$ref": "#/definitions/marker"}
      }
    }
  },
  "definitions": {
    "marker": {"type": "string", "minLength": 1}
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(configSchema)

// loadConfigFile applies the YAML config on top of the defaults. A missing default file is not an error;
// a missing explicit file is.
func (o *Options) loadConfigFile(path string) error {
	explicit := path != ""
	if !explicit {
		path = filepath.Join(o.RootDir, DefaultConfigName)
	} else if !filepath.IsAbs(path) {
		path = filepath.Join(o.RootDir, path)
	}

	// #nosec G304 -- config path provided via command flag or scoped to RootDir
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			o.Logger().WithField("path", path).Debug("no config file found, using defaults")
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := ParseConfig(data, o.InputFile, o.Scan)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	o.ConfigFile = path
	o.InputFile = cfg.File
	o.Scan = ScanSettings{
		Markers:     cfg.Markers,
		MaxIndent:   cfg.MaxIndent,
		Placeholder: cfg.Placeholder,
	}
	o.Logger().WithField("path", path).Debug("config file loaded")
	return nil
}

// ParseConfig validates a YAML document against the config schema and overlays it on the provided defaults.
func ParseConfig(data []byte, file string, defaults ScanSettings) (*FileConfig, error) {
	var doc map[string]interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if doc == nil {
		doc = map[string]interface{}{}
	}

	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(doc))
	if err != nil {
		return nil, fmt.Errorf("%w: schema validation error: %v", ErrInvalidConfig, err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
	}

	cfg := &FileConfig{
		File:        file,
		Placeholder: defaults.Placeholder,
		MaxIndent:   defaults.MaxIndent,
		Markers:     defaults.Markers,
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return cfg, nil
}
