package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"sync/atomic"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/muesli/termenv"
	"go.trai.ch/glance/internal/adapters/tui"
	"go.trai.ch/glance/internal/core/domain"
	"go.trai.ch/glance/internal/core/ports"
	"go.trai.ch/glance/internal/ui/output"
	"go.trai.ch/glance/internal/ui/style"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const maxNameWidth = 40

// List prints the working set of path. When path is an image it is marked.
func (a *App) List(ctx context.Context, path string, w io.Writer, opts Options) error {
	e, release, err := a.start(ctx, opts)
	if err != nil {
		return err
	}
	defer release()

	set, current, err := workingSet(e.nav, path)
	if err != nil {
		return err
	}
	return renderList(w, set, current)
}

// Warm decodes every image of the working set of path into the cache and reports the result.
func (a *App) Warm(ctx context.Context, path string, w io.Writer, opts Options) error {
	e, release, err := a.start(ctx, opts)
	if err != nil {
		return err
	}
	defer release()

	set, _, err := workingSet(e.nav, path)
	if err != nil {
		return err
	}

	var g errgroup.Group
	g.SetLimit(max(e.cfg.Prefetch.Workers, 1))

	var failed atomic.Int32
	for _, d := range set.Items() {
		g.Go(func() error {
			if _, err := e.loader.Load(ctx, d.Locator); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				failed.Add(1)
				a.logger.Warn(fmt.Sprintf("%s: %s", d.Name, tui.ErrorText(err)))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return zerr.Wrap(err, "warm interrupted")
	}

	n := int(failed.Load())
	if err := renderWarm(w, set.Len()-n, set.Len(), e.cache.Stats()); err != nil {
		return err
	}
	if n > 0 {
		return zerr.With(zerr.With(domain.ErrWarmFailed, "failed", n), "folder", set.Folder())
	}
	return nil
}

// workingSet enumerates path, which may be a folder or an image.
// The second result is the absolute locator of the image, or empty for a folder.
func workingSet(nav Navigator, path string) (*domain.NavigationSet, string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = filepath.Clean(path)
	}

	if info, statErr := os.Stat(abs); statErr == nil && info.IsDir() {
		set, err := nav.EnumerateFolder(abs)
		return set, "", err
	}

	set, err := nav.Enumerate(abs)
	return set, abs, err
}

func renderList(w io.Writer, set *domain.NavigationSet, current string) error {
	out := output.New(w)

	idxWidth := len(strconv.Itoa(set.Len()))
	nameWidth := 0
	for _, d := range set.Items() {
		nameWidth = max(nameWidth, min(utf8.RuneCountInString(d.Name), maxNameWidth))
	}

	highlight := out.Color(string(style.Iris))
	for i, d := range set.Items() {
		marker := " "
		if d.Locator == current {
			marker = style.Current
		}
		line := fmt.Sprintf("%s %*d  %-*s  %-4s  %s",
			marker, idxWidth, i+1, nameWidth, d.Name, d.Format.DisplayName(), humanize.IBytes(uint64(max(d.Size, 0))))

		styled := out.String(line)
		if marker == style.Current {
			styled = styled.Foreground(highlight).Bold()
		}
		if _, err := out.WriteString(styled.String() + "\n"); err != nil {
			return err
		}
	}

	summary := fmt.Sprintf("%d images in %s", set.Len(), set.Folder())
	_, err := out.WriteString(out.String(summary).Foreground(out.Color(string(style.Slate))).String() + "\n")
	return err
}

func renderWarm(w io.Writer, loaded, total int, stats ports.CacheStats) error {
	out := output.New(w)

	icon, color := style.Check, out.Color(string(style.Green))
	if loaded < total {
		icon, color = style.Cross, out.Color(string(style.Red))
	}

	lines := []termenv.Style{
		out.String(fmt.Sprintf("%s warmed %d/%d images", icon, loaded, total)).Foreground(color),
		out.String(fmt.Sprintf("  cache %d entries %s %s of %s",
			stats.Count, style.Bullet,
			humanize.IBytes(uint64(max(stats.TotalBytes, 0))),
			humanize.IBytes(uint64(max(stats.Budget, 0))))).Foreground(out.Color(string(style.Slate))),
	}
	for _, l := range lines {
		if _, err := out.WriteString(l.String() + "\n"); err != nil {
			return err
		}
	}
	return nil
}
