package cli

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/forestmerge/pkg/errors"
	"github.com/matzehuels/forestmerge/pkg/pipeline"
)

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "forestmerge.toml")
	writeConfig(t, path, `
format = "SVG"
strict = true
fill_style = "filled,rounded"
indent = 4
colour = "red"
`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.path != path {
		t.Errorf("path = %q, want %q", cfg.path, path)
	}
	if cfg.Format != "SVG" || cfg.FillStyle != "filled,rounded" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Strict == nil || !*cfg.Strict {
		t.Error("strict should be set to true")
	}
	if cfg.Check != nil {
		t.Error("check should be unset")
	}
	if cfg.Indent == nil || *cfg.Indent != 4 {
		t.Errorf("indent = %v, want 4", cfg.Indent)
	}
	if !reflect.DeepEqual(cfg.unknown, []string{"colour"}) {
		t.Errorf("unknown = %v, want [colour]", cfg.unknown)
	}
}

func TestLoadConfigDefaultLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig() without a file error = %v", err)
	}
	if cfg.path != "" {
		t.Errorf("path = %q, want empty", cfg.path)
	}

	path := filepath.Join(home, appName, configFileName)
	writeConfig(t, path, `check = true`)

	cfg, err = loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.path != path || cfg.Check == nil || !*cfg.Check {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.toml")
	writeConfig(t, bad, `format = `)

	if _, err := loadConfig(bad); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("malformed config error = %v, want %v", err, errors.ErrCodeInvalidConfig)
	}
	if _, err := loadConfig(filepath.Join(dir, "none.toml")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing config error = %v, want %v", err, errors.ErrCodeFileNotFound)
	}
}

func TestConfigApply(t *testing.T) {
	yes, indent := true, 8
	cfg := fileConfig{
		Format:    "SVG",
		Strict:    &yes,
		Check:     &yes,
		FillStyle: "dashed",
		Indent:    &indent,
	}

	t.Run("no flags", func(t *testing.T) {
		var opts pipeline.Options
		cfg.apply(&opts, func(string) bool { return false })
		want := pipeline.Options{Format: "svg", Strict: true, Check: true, FillStyle: "dashed", Indent: 8}
		if opts != want {
			t.Errorf("opts = %+v, want %+v", opts, want)
		}
	})

	t.Run("flags win", func(t *testing.T) {
		opts := pipeline.Options{Format: "dot", Indent: 2}
		cfg.apply(&opts, func(flag string) bool { return flag == "format" || flag == "indent" })
		if opts.Format != "dot" || opts.Indent != 2 {
			t.Errorf("flag values overwritten: %+v", opts)
		}
		if !opts.Strict || opts.FillStyle != "dashed" {
			t.Errorf("config values not applied: %+v", opts)
		}
	})
}

func TestMergeUsesConfigFile(t *testing.T) {
	dir, forestPath, graphPath := setupInputs(t)
	path := filepath.Join(dir, "cfg.toml")
	writeConfig(t, path, "indent = -1\nfill_style = \"solid\"\n")

	stdout, _, err := runCommand(t, "--config", path, forestPath, graphPath)
	if err != nil {
		t.Fatalf("merge error = %v", err)
	}
	if !strings.Contains(stdout, "\nlabel=\"Alpha\";\n") {
		t.Errorf("indent from config not applied:\n%s", stdout)
	}
	if !strings.Contains(stdout, `style="solid"`) {
		t.Errorf("fill_style from config not applied:\n%s", stdout)
	}
}
