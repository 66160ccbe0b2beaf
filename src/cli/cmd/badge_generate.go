package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/sofmeright/shieldsvg/src/badge"
	"github.com/sofmeright/shieldsvg/src/config"
	"github.com/sofmeright/shieldsvg/src/gitver"
	"github.com/sofmeright/shieldsvg/src/narrator"
	"github.com/sofmeright/shieldsvg/src/output"
)

var (
	bgMarkdown   bool
	bgShieldsURL bool
	bgDryRun     bool
)

var badgeGenerateCmd = &cobra.Command{
	Use:   "generate [name...]",
	Short: "Generate the badges defined in config",
	Long: `Generate every badge defined in the config file, or only the named ones.

Badges render concurrently through one shared engine. Messages may use
{version}, {sha}, {branch}, {env:VAR} and the other git templates.`,
	Annotations: map[string]string{"config": "true"},
	RunE:        runBadgeGenerate,
}

func init() {
	badgeGenerateCmd.Flags().BoolVar(&bgMarkdown, "markdown", false, "print a markdown snippet referencing the generated badges")
	badgeGenerateCmd.Flags().BoolVar(&bgShieldsURL, "shields-url", false, "print a markdown snippet using img.shields.io URLs instead of local files")
	badgeGenerateCmd.Flags().BoolVar(&bgDryRun, "dry-run", false, "render without writing files")

	badgeCmd.AddCommand(badgeGenerateCmd)
}

type generated struct {
	item config.BadgeItem
	spec badge.Spec
	path string
	svg  string
}

func runBadgeGenerate(cmd *cobra.Command, args []string) error {
	warnings, err := config.Validate(cfg)
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "  warning: %s\n", w)
	}
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	items, err := selectItems(cfg, args)
	if err != nil {
		return err
	}

	var versionInfo *gitver.VersionInfo
	if cfg.NeedsVersion() {
		versionInfo, err = gitver.DetectVersion(".")
		if err != nil {
			fmt.Fprintf(os.Stderr, "  warning: version detection failed: %v\n", err)
		}
	}

	eng, err := newEngine()
	if err != nil {
		return err
	}

	results, err := renderAll(cmd.Context(), eng, cfg, items, versionInfo)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	sec := output.NewSection(w, "Badges", output.UseColor())
	var writeErrs []error
	for _, r := range results {
		if !bgDryRun {
			if err := writeBadge(cmd, r.path, r.svg); err != nil {
				sec.Result(r.item.Name, "failed", err.Error())
				writeErrs = append(writeErrs, fmt.Errorf("badge %s: %w", r.item.Name, err))
				continue
			}
		}
		sec.Result(r.item.Name, "success", r.path)
	}
	sec.Close()
	if len(writeErrs) > 0 {
		return errors.Join(writeErrs...)
	}

	for _, r := range results {
		logger.Debug("generated badge",
			zap.String("name", r.item.Name),
			zap.String("path", r.path),
			zap.Int("bytes", len(r.svg)))
	}

	if bgMarkdown || bgShieldsURL {
		fmt.Fprintln(w)
		fmt.Fprintln(w, markdownSnippet(results, bgShieldsURL))
	}
	return nil
}

// selectItems returns the config items named in names, or all of them.
func selectItems(cfg *config.Config, names []string) ([]config.BadgeItem, error) {
	if len(cfg.Items) == 0 {
		return nil, fmt.Errorf("no badges configured")
	}
	if len(names) == 0 {
		return cfg.Items, nil
	}
	items := make([]config.BadgeItem, 0, len(names))
	for _, n := range names {
		item, ok := cfg.Find(n)
		if !ok {
			return nil, fmt.Errorf("no badge named %q", n)
		}
		items = append(items, item)
	}
	return items, nil
}

// renderAll renders items with bounded parallelism. Results keep the order
// of items; the first failure cancels the rest.
func renderAll(ctx context.Context, eng *badge.Engine, cfg *config.Config, items []config.BadgeItem, v *gitver.VersionInfo) ([]generated, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	results := make([]generated, len(items))
	sem := semaphore.NewWeighted(int64(runtime.NumCPU()))
	g, gctx := errgroup.WithContext(ctx)

	for i, item := range items {
		if err := sem.Acquire(gctx, 1); err != nil {
			break
		}
		g.Go(func() error {
			defer sem.Release(1)

			spec, err := cfg.Spec(item, v)
			if err != nil {
				return err
			}
			svg, err := eng.Render(spec)
			if err != nil {
				return fmt.Errorf("badge %s: %w", item.Name, err)
			}
			results[i] = generated{item: item, spec: spec, path: cfg.OutputPath(item), svg: svg}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// markdownSnippet composes one line of badges pointing at the generated files
// or, with shields set, at equivalent img.shields.io URLs.
func markdownSnippet(results []generated, shields bool) string {
	mods := make([]narrator.Module, 0, len(results))
	for _, r := range results {
		alt := r.spec.Label
		if alt == "" {
			alt = r.item.Name
		}
		if shields {
			mods = append(mods, narrator.ShieldModule{Spec: r.spec, Alt: alt})
			continue
		}
		mods = append(mods, narrator.BadgeModule{
			Alt:    alt,
			ImgURL: filepath.ToSlash(r.path),
			Link:   r.spec.Link,
		})
	}
	return narrator.Compose(mods)
}
