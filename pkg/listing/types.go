//go:generate mockgen -destination=./mocks/listing.go . SnapshotLoader

// Package listing turns a snapshot of installed packages into the rows of
// the list report: sort, filter, and fixed-width formatting.
package listing

import (
	"context"

	"github.com/glorpus-work/portkit/pkg/model"
)

// Column widths of the report. The description column is cut at
// DescriptionWidth in compact mode but never padded.
const (
	NameWidth        = 50
	VersionWidth     = 16
	DescriptionWidth = 51
	ColumnSeparator  = " "
)

// NoPackagesNotice is printed instead of a report when nothing is installed.
const NoPackagesNotice = "No packages are installed. Did you mean `search`?"

const initialSelectedCapacity = 16

// SnapshotLoader supplies the installed packages visible to one listing.
type SnapshotLoader interface {
	LoadSnapshot(ctx context.Context) ([]model.InstalledPackage, error)
}

// Invocation holds the effective inputs of one list command. Filter is only
// consulted when HasFilter is set; an empty Filter then matches everything.
type Invocation struct {
	Filter          string
	HasFilter       bool
	FullDescription bool
}

// State is the terminal state a listing finished in.
type State int

const (
	// StateNoPackages means the snapshot was empty and only the notice was produced.
	StateNoPackages State = iota
	// StateListed means one line was produced per surviving record, possibly none.
	StateListed
)

// String returns a readable name for the state.
func (s State) String() string {
	switch s {
	case StateNoPackages:
		return "no-packages"
	case StateListed:
		return "listed"
	default:
		return "unknown"
	}
}

// Result is the outcome of rendering a snapshot.
type Result struct {
	State State
	Lines []string
	// Total is the size of the snapshot before filtering.
	Total int
}
