package compiler

import (
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/BurntSushi/toml"

	"github.com/unitab/unitab/ucd"
)

// Config is the generation manifest: the target package, an optional
// output path, and one [[source]] block per UCD data file.
//
//	package = "ucdtables"
//	output = "tables.go"
//
//	[[source]]
//	path = "DerivedCoreProperties.txt"
//	kind = "boolean"
//	family = "Core_Property"
//
//	[[source]]
//	path = "extracted/DerivedGeneralCategory.txt"
//	kind = "boolean"
//	family = "General_Category"
//	marker = '^#\s*General_Category=(\w+)\s*$'
//
//	[[source]]
//	path = "EastAsianWidth.txt"
//	kind = "valued"
//	family = "East_Asian_Width"
type Config struct {
	Package string         `toml:"package"`
	Output  string         `toml:"output"`
	Sources []SourceConfig `toml:"source"`

	// dir is the manifest's directory; source and output paths resolve
	// against it.
	dir string
}

type SourceConfig struct {
	Path   string `toml:"path"`
	Kind   string `toml:"kind"`
	Family string `toml:"family"`
	Marker string `toml:"marker"`
}

// LoadConfig reads and validates a manifest file.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	_, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("cannot load the manifest %s: %w", path, err)
	}
	cfg.dir = filepath.Dir(path)
	err = cfg.validate()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Package == "" {
		return fmt.Errorf("the manifest names no target package")
	}
	if len(c.Sources) == 0 {
		return fmt.Errorf("the manifest lists no sources")
	}
	for i := range c.Sources {
		_, err := c.Sources[i].spec()
		if err != nil {
			return err
		}
	}
	return nil
}

// OutputPath returns the manifest's output entry resolved against the
// manifest directory, or "" when unset.
func (c *Config) OutputPath() string {
	if c.Output == "" {
		return ""
	}
	return c.resolve(c.Output)
}

func (c *Config) resolve(path string) string {
	if c.dir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.dir, path)
}

func (sc *SourceConfig) spec() (ucd.SourceSpec, error) {
	spec := ucd.SourceSpec{
		Path:   sc.Path,
		Family: sc.Family,
	}
	if sc.Path == "" {
		return spec, fmt.Errorf("a source names no path")
	}
	switch sc.Kind {
	case "boolean":
		spec.Kind = ucd.KindBoolean
	case "valued":
		spec.Kind = ucd.KindValued
	default:
		return spec, fmt.Errorf("unsupported kind %q for %v (want boolean or valued)", sc.Kind, sc.Path)
	}
	if sc.Family == "" {
		return spec, fmt.Errorf("the source %v names no family", sc.Path)
	}
	if sc.Marker != "" {
		re, err := regexp.Compile(sc.Marker)
		if err != nil {
			return spec, fmt.Errorf("invalid marker pattern for %v: %w", sc.Path, err)
		}
		if re.NumSubexp() < 1 {
			return spec, fmt.Errorf("the marker pattern for %v needs a capture group for the sub-table name", sc.Path)
		}
		spec.Marker = re
	}
	return spec, nil
}
