package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sofmeright/shieldsvg/src/badge"
	"github.com/sofmeright/shieldsvg/src/gitver"
)

const sampleYAML = `
defaults:
  style: flat-square
  logo: rust
badges:
  - name: build
    label: build
    message: passing
    color: auto
    status: failed
  - name: release
    label: release
    message: "v{version}"
    color: version
    style: for-the-badge
    output: docs/release.svg
`

const sampleTOML = `
[defaults]
style = "flat-square"
logo = "rust"

[[badges]]
name = "build"
label = "build"
message = "passing"
color = "auto"
status = "failed"

[[badges]]
name = "release"
label = "release"
message = "v{version}"
color = "version"
style = "for-the-badge"
output = "docs/release.svg"
`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadFormats(t *testing.T) {
	for _, tc := range []struct{ file, body string }{
		{"shieldsvg.yml", sampleYAML},
		{"shieldsvg.toml", sampleTOML},
	} {
		t.Run(tc.file, func(t *testing.T) {
			cfg, err := Load(writeFile(t, tc.file, tc.body))
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if cfg.Defaults.Style != "flat-square" || cfg.Defaults.Logo != "rust" {
				t.Errorf("defaults = %+v", cfg.Defaults)
			}
			if cfg.Defaults.LabelColor != badge.DefaultLabelColor || cfg.Defaults.OutputDir != "badges" {
				t.Errorf("unset defaults not kept: %+v", cfg.Defaults)
			}
			if len(cfg.Items) != 2 || cfg.Items[1].Output != "docs/release.svg" {
				t.Fatalf("items = %+v", cfg.Items)
			}
		})
	}
}

func TestLoadMissing(t *testing.T) {
	dir := t.TempDir()
	wd, _ := os.Getwd()
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load default: %v", err)
	}
	if cfg.Defaults != DefaultBadgeDefaults() || len(cfg.Items) != 0 {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}

	if _, err := Load(filepath.Join(dir, "missing.yml")); err == nil {
		t.Error("explicit missing file should fail")
	}
}

func TestLoadInvalid(t *testing.T) {
	if _, err := Load(writeFile(t, "bad.yml", "badges: [")); err == nil {
		t.Error("expected yaml error")
	}
	if _, err := Load(writeFile(t, "bad.toml", "[[badges]\n")); err == nil {
		t.Error("expected toml error")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	orig, err := Parse([]byte(sampleYAML), YAML)
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range []Format{YAML, TOML} {
		data, err := Marshal(orig, f)
		if err != nil {
			t.Fatalf("Marshal %s: %v", f, err)
		}
		back, err := Parse(data, f)
		if err != nil {
			t.Fatalf("Parse %s: %v\n%s", f, err, data)
		}
		if back.Defaults != orig.Defaults || len(back.Items) != len(orig.Items) {
			t.Fatalf("%s round trip = %+v", f, back)
		}
		for i := range orig.Items {
			if back.Items[i] != orig.Items[i] {
				t.Errorf("%s item %d = %+v, want %+v", f, i, back.Items[i], orig.Items[i])
			}
		}
	}
	if _, err := Parse(nil, "ini"); err == nil {
		t.Error("expected unknown format error")
	}
}

func TestSpec(t *testing.T) {
	cfg, err := Parse([]byte(sampleYAML), YAML)
	if err != nil {
		t.Fatal(err)
	}
	v := &gitver.VersionInfo{Version: "0.4.0"}

	build, err := cfg.Spec(cfg.Items[0], v)
	if err != nil {
		t.Fatalf("Spec build: %v", err)
	}
	if build.Style != badge.FlatSquare || build.Logo != "rust" || build.MessageColor != "#e05d44" {
		t.Errorf("build spec = %+v", build)
	}

	release, err := cfg.Spec(cfg.Items[1], v)
	if err != nil {
		t.Fatalf("Spec release: %v", err)
	}
	if release.Style != badge.ForTheBadge || release.Message != "v0.4.0" || release.MessageColor != "#fe7d37" {
		t.Errorf("release spec = %+v", release)
	}

	if _, err := cfg.Spec(BadgeItem{Name: "x", Style: "round"}, nil); err == nil {
		t.Error("expected unknown style error")
	}
}

func TestOutputPath(t *testing.T) {
	cfg := defaults()
	if got := cfg.OutputPath(BadgeItem{Name: "build"}); got != filepath.Join("badges", "build.svg") {
		t.Errorf("OutputPath = %q", got)
	}
	if got := cfg.OutputPath(BadgeItem{Name: "build", Output: "x/y.svg"}); got != "x/y.svg" {
		t.Errorf("OutputPath = %q", got)
	}
}

func TestNeedsVersion(t *testing.T) {
	cfg := defaults()
	cfg.Items = []BadgeItem{{Name: "a", Message: "passing"}}
	if cfg.NeedsVersion() {
		t.Error("plain message should not need git")
	}
	cfg.Items = append(cfg.Items, BadgeItem{Name: "b", Message: "{sha}"})
	if !cfg.NeedsVersion() {
		t.Error("{sha} should need git")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		items    []BadgeItem
		wantErr  []string
		wantWarn string
	}{
		{"valid", []BadgeItem{{Name: "build", Label: "build", Message: "ok"}}, nil, ""},
		{"empty", nil, nil, "no badges defined"},
		{"missing name", []BadgeItem{{Message: "ok"}}, []string{"name is required"}, ""},
		{"bad name", []BadgeItem{{Name: "1x", Message: "ok"}}, []string{"not a valid identifier"}, ""},
		{"duplicate", []BadgeItem{{Name: "a", Message: "x"}, {Name: "a", Message: "y"}}, []string{"duplicate badge name", "already used"}, ""},
		{"style", []BadgeItem{{Name: "a", Message: "x", Style: "round"}}, []string{"badges[0].style"}, ""},
		{"absolute", []BadgeItem{{Name: "a", Message: "x", Output: "/tmp/a.svg"}}, []string{"must be relative"}, ""},
		{"traversal", []BadgeItem{{Name: "a", Message: "x", Output: "../a.svg"}}, []string{"must not contain '..'"}, ""},
		{"tilde", []BadgeItem{{Name: "a", Message: "x", Output: "~/a.svg"}}, []string{"must not start with ~"}, ""},
		{"drive", []BadgeItem{{Name: "a", Message: "x", Output: "C:a.svg"}}, []string{"Windows drive"}, ""},
		{"canonical", []BadgeItem{{Name: "a", Message: "x", Output: "a//b.svg"}}, []string{"canonical form"}, ""},
		{"same output", []BadgeItem{{Name: "a", Message: "x", Output: "o.svg"}, {Name: "b", Message: "y", Output: "./o.svg"}}, []string{"already used by badge \"a\""}, ""},
		{"empty text", []BadgeItem{{Name: "a"}}, nil, "label and message are both empty"},
		{"unknown color", []BadgeItem{{Name: "a", Message: "x", Color: "notacolor"}}, nil, "not recognized"},
		{"auto without status", []BadgeItem{{Name: "a", Message: "x", Color: "auto"}}, nil, "without status"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			cfg.Items = tt.items
			warnings, err := Validate(cfg)
			if len(tt.wantErr) == 0 && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, want := range tt.wantErr {
				if err == nil || !strings.Contains(err.Error(), want) {
					t.Errorf("error %v does not mention %q", err, want)
				}
			}
			if tt.wantWarn == "" {
				if len(warnings) != 0 {
					t.Errorf("unexpected warnings: %v", warnings)
				}
				return
			}
			if !strings.Contains(strings.Join(warnings, "\n"), tt.wantWarn) {
				t.Errorf("warnings %v do not mention %q", warnings, tt.wantWarn)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := defaults()
	cfg.Defaults.Style = "round"
	cfg.Defaults.OutputDir = "/abs"
	cfg.Items = []BadgeItem{{Name: "a", Message: "x"}}
	_, err := Validate(cfg)
	if err == nil || !strings.Contains(err.Error(), "defaults.style") || !strings.Contains(err.Error(), "defaults.output_dir") {
		t.Errorf("err = %v", err)
	}
}
