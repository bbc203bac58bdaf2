package listing

import (
	"context"
	"fmt"
	"io"

	"github.com/glorpus-work/portkit/internal/logger"
	"github.com/glorpus-work/portkit/pkg/errors"
	"github.com/glorpus-work/portkit/pkg/model"
)

// Render runs the listing over a snapshot that has already been loaded.
// The snapshot itself is not reordered.
func Render(snapshot []model.InstalledPackage, inv Invocation) Result {
	if len(snapshot) == 0 {
		return Result{State: StateNoPackages, Lines: []string{NoPackagesNotice}}
	}

	selected := Select(Sort(snapshot), inv)

	lines := make([]string, 0, len(selected))
	for i := range selected {
		lines = append(lines, FormatLine(&selected[i], inv.FullDescription))
	}

	return Result{State: StateListed, Lines: lines, Total: len(snapshot)}
}

// Lister loads a snapshot and writes the rendered report. The empty-database
// notice goes through notice, which defaults to a plain line on out.
type Lister struct {
	loader SnapshotLoader
	out    io.Writer
	notice func(w io.Writer, line string) error
}

// Option customizes a Lister.
type Option func(*Lister)

// WithNoticePrinter overrides how the empty-database notice is written.
func WithNoticePrinter(fn func(w io.Writer, line string) error) Option {
	return func(l *Lister) {
		l.notice = fn
	}
}

// NewLister creates a Lister reading from loader and writing to out.
func NewLister(loader SnapshotLoader, out io.Writer, opts ...Option) *Lister {
	l := &Lister{
		loader: loader,
		out:    out,
		notice: writeLine,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run loads the snapshot and writes one line per listed package, or the
// notice when nothing is installed. Only a failed load returns an error.
func (l *Lister) Run(ctx context.Context, inv Invocation) (Result, error) {
	snapshot, err := l.loader.LoadSnapshot(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", errors.ErrDatabaseLoad, err)
	}

	result := Render(snapshot, inv)
	logger.Debug("Rendered installed packages", logger.Fields{
		"state":    result.State.String(),
		"total":    result.Total,
		"listed":   len(result.Lines),
		"filter":   inv.Filter,
		"filtered": inv.HasFilter,
	})

	if result.State == StateNoPackages {
		if err := l.notice(l.out, result.Lines[0]); err != nil {
			return result, errors.Wrap(err, "failed to write notice")
		}
		return result, nil
	}

	for _, line := range result.Lines {
		if err := writeLine(l.out, line); err != nil {
			return result, errors.Wrap(err, "failed to write report")
		}
	}
	return result, nil
}

func writeLine(w io.Writer, line string) error {
	_, err := fmt.Fprintln(w, line)
	return err
}
