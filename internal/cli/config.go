package cli

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/forestmerge/pkg/errors"
	"github.com/matzehuels/forestmerge/pkg/pipeline"
)

// configFileName is looked up in configDir when --config is not given.
const configFileName = "config.toml"

// fileConfig mirrors the TOML config file:
//
//	format     = "dot"
//	strict     = false
//	check      = true
//	fill_style = "filled,rounded"
//	indent     = 4
//
// Pointer fields distinguish "unset" from zero values.
type fileConfig struct {
	Format    string `toml:"format"`
	Strict    *bool  `toml:"strict"`
	Check     *bool  `toml:"check"`
	FillStyle string `toml:"fill_style"`
	Indent    *int   `toml:"indent"`

	// path the config was read from, "" if none
	path    string
	unknown []string
}

// loadConfig reads the config file. An explicit path must exist; the default
// location is optional.
func loadConfig(explicit string) (fileConfig, error) {
	path := explicit
	if path == "" {
		dir, err := configDir()
		if err != nil {
			return fileConfig{}, nil
		}
		path = filepath.Join(dir, configFileName)
		if _, err := os.Stat(path); err != nil {
			return fileConfig{}, nil
		}
	}

	var cfg fileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return fileConfig{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return fileConfig{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config %s", path)
	}
	cfg.path = path
	for _, k := range md.Undecoded() {
		cfg.unknown = append(cfg.unknown, k.String())
	}
	sort.Strings(cfg.unknown)
	return cfg, nil
}

// apply copies config values into opts for every setting whose flag was not
// given on the command line.
func (fc fileConfig) apply(opts *pipeline.Options, changed func(flag string) bool) {
	if fc.Format != "" && !changed("format") {
		opts.Format = strings.ToLower(fc.Format)
	}
	if fc.Strict != nil && !changed("strict") {
		opts.Strict = *fc.Strict
	}
	if fc.Check != nil && !changed("check") {
		opts.Check = *fc.Check
	}
	if fc.FillStyle != "" && !changed("fill-style") {
		opts.FillStyle = fc.FillStyle
	}
	if fc.Indent != nil && !changed("indent") {
		opts.Indent = *fc.Indent
	}
}
