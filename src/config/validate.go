package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/sofmeright/shieldsvg/src/badge"
)

var identifierRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_.\-]*$`)

// Validate checks structural invariants of a loaded Config.
// Returns warnings (soft issues) and a hard error if the config is invalid.
func Validate(cfg *Config) (warnings []string, err error) {
	var errs []error

	if _, perr := badge.ParseStyle(cfg.Defaults.Style); perr != nil {
		errs = append(errs, fmt.Errorf("defaults.style: %w", perr))
	}
	if cfg.Defaults.OutputDir != "" {
		errs = append(errs, validateOutputPath(cfg.Defaults.OutputDir, "defaults.output_dir")...)
	}

	if len(cfg.Items) == 0 {
		warnings = append(warnings, "badges: no badges defined")
	}

	names := make(map[string]bool)
	outputs := make(map[string]string)
	for i, item := range cfg.Items {
		ipath := fmt.Sprintf("badges[%d]", i)

		switch {
		case item.Name == "":
			errs = append(errs, fmt.Errorf("%s: name is required", ipath))
		case !identifierRe.MatchString(item.Name):
			errs = append(errs, fmt.Errorf("%s: name %q is not a valid identifier (must match [a-zA-Z][a-zA-Z0-9_.\\-]*)", ipath, item.Name))
		case names[item.Name]:
			errs = append(errs, fmt.Errorf("%s: duplicate badge name %q", ipath, item.Name))
		default:
			names[item.Name] = true
		}

		if item.Style != "" {
			if _, perr := badge.ParseStyle(item.Style); perr != nil {
				errs = append(errs, fmt.Errorf("%s.style: %w", ipath, perr))
			}
		}

		if item.Label == "" && item.Message == "" {
			warnings = append(warnings, fmt.Sprintf("%s: label and message are both empty", ipath))
		}

		color := strings.ToLower(strings.TrimSpace(item.Color))
		if color == ColorAuto && item.Status == "" {
			warnings = append(warnings, fmt.Sprintf("%s: color auto without status renders as passing", ipath))
		}
		if color != "" && color != ColorAuto && color != ColorVersion {
			if _, ok := badge.Canonical(item.Color); !ok {
				warnings = append(warnings, fmt.Sprintf("%s: color %q is not recognized, fallback will be used", ipath, item.Color))
			}
		}

		if item.Output != "" {
			errs = append(errs, validateOutputPath(item.Output, ipath)...)
		}
		if item.Name != "" {
			out := filepath.Clean(cfg.OutputPath(item))
			if prev, ok := outputs[out]; ok {
				errs = append(errs, fmt.Errorf("%s: output %q already used by badge %q", ipath, out, prev))
			} else {
				outputs[out] = item.Name
			}
		}
	}

	return warnings, errors.Join(errs...)
}

// validateOutputPath checks that an output path is safe for writing:
// relative, no traversal, no home expansion, canonical form.
func validateOutputPath(p string, itemPath string) []error {
	if p == "" {
		return []error{fmt.Errorf("%s: output path is empty", itemPath)}
	}

	if filepath.IsAbs(p) {
		return []error{fmt.Errorf("%s: output path %q must be relative, not absolute", itemPath, p)}
	}

	if strings.HasPrefix(p, "~") {
		return []error{fmt.Errorf("%s: output path %q must not start with ~", itemPath, p)}
	}

	// Windows drive prefix
	if len(p) >= 2 && p[1] == ':' && ((p[0] >= 'A' && p[0] <= 'Z') || (p[0] >= 'a' && p[0] <= 'z')) {
		return []error{fmt.Errorf("%s: output path %q looks like a Windows drive path", itemPath, p)}
	}

	if strings.Contains(p, "..") {
		return []error{fmt.Errorf("%s: output path %q must not contain '..'", itemPath, p)}
	}

	// Normalize: strip leading ./ then compare with filepath.Clean
	normalized := strings.TrimPrefix(p, "./")
	if clean := filepath.Clean(normalized); clean != normalized {
		return []error{fmt.Errorf("%s: output path %q is not in canonical form (cleaned to %q)", itemPath, p, clean)}
	}

	return nil
}
