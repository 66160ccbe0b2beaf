package gitver

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// ResolveTemplate expands template variables in a badge message.
//
// Supported templates:
//
//	{version}       → "1.2.3" or "1.2.3-rc.1" (full version)
//	{base}          → "1.2.3"
//	{major} {minor} {patch}
//	{prerelease}    → "rc.1" or ""
//	{tag}           → "v1.2.3"
//	{branch}        → "main"
//	{sha}           → "abc1234"
//	{sha:N}         → first N characters of the abbreviated SHA
//	{commit.date}   → "2026-02-24"
//	{date}          → today, UTC, YYYY-MM-DD
//	{env:VAR}       → value of environment variable VAR
//
// Unknown templates pass through as-is. With a nil VersionInfo only {env:}
// and {date} are resolved.
func ResolveTemplate(tmpl string, v *VersionInfo) string {
	if !strings.Contains(tmpl, "{") {
		return tmpl
	}

	s := resolveEnvVars(tmpl)
	s = strings.ReplaceAll(s, "{date}", time.Now().UTC().Format("2006-01-02"))
	if v == nil {
		return s
	}

	s = resolveSHA(s, v.SHA)
	return strings.NewReplacer(
		"{version}", v.Version,
		"{base}", v.Base,
		"{major}", v.Major,
		"{minor}", v.Minor,
		"{patch}", v.Patch,
		"{prerelease}", v.Prerelease,
		"{tag}", v.Tag,
		"{branch}", v.Branch,
		"{sha}", v.SHA,
		"{commit.date}", v.CommitDate,
	).Replace(s)
}

// NeedsVersion reports whether tmpl references git-derived variables.
func NeedsVersion(tmpl string) bool {
	for _, k := range []string{"{version}", "{base}", "{major}", "{minor}", "{patch}", "{prerelease}", "{tag}", "{branch}", "{sha", "{commit.date}"} {
		if strings.Contains(tmpl, k) {
			return true
		}
	}
	return false
}

// resolveEnvVars replaces all {env:VAR_NAME} with the env var value.
// Substituted values are not scanned again.
func resolveEnvVars(s string) string {
	return replaceDirective(s, "{env:", os.Getenv)
}

// resolveSHA replaces {sha:N} with the SHA truncated to N chars.
// Plain {sha} is handled by the simple replacement pass.
func resolveSHA(s string, sha string) string {
	return replaceDirective(s, "{sha:", func(arg string) string {
		width, err := strconv.Atoi(arg)
		if err != nil || width <= 0 {
			width = 7
		}
		return truncate(sha, width)
	})
}

// replaceDirective expands every prefix...} directive in s with fn applied
// to its argument, scanning left to right past each replacement.
func replaceDirective(s, prefix string, fn func(arg string) string) string {
	var b strings.Builder
	for {
		start := strings.Index(s, prefix)
		if start == -1 {
			break
		}
		end := strings.Index(s[start:], "}")
		if end == -1 {
			break
		}
		end += start
		b.WriteString(s[:start])
		b.WriteString(fn(s[start+len(prefix) : end]))
		s = s[end+1:]
	}
	b.WriteString(s)
	return b.String()
}

// truncate returns the first n characters of s, or s if shorter.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
