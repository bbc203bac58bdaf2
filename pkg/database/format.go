package database

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"

	"github.com/hashicorp/go-version"
	"github.com/mholt/archives"

	"github.com/glorpus-work/portkit/pkg/errors"
)

// SupportedFormatConstraint lists the database format versions this build reads.
const SupportedFormatConstraint = ">= 1, < 2"

// supportedFormats panics at init if SupportedFormatConstraint is not a valid constraint.
var supportedFormats = version.MustConstraints(version.NewConstraint(SupportedFormatConstraint))

// checkFormatVersion rejects databases written by an incompatible release.
// Databases without a format version predate versioning and are read as format 1.
func checkFormatVersion(formatVersion string) error {
	if formatVersion == "" {
		return nil
	}

	v, err := version.NewVersion(formatVersion)
	if err != nil {
		return fmt.Errorf("format version %q: %w", formatVersion, errors.ErrUnsupportedDatabaseFormat)
	}
	if !supportedFormats.Check(v) {
		return fmt.Errorf("format version %s does not satisfy %s: %w", v, SupportedFormatConstraint, errors.ErrUnsupportedDatabaseFormat)
	}
	return nil
}

// openDecompressed returns a reader over the decompressed database content.
// Streams that match no known compression are returned as is.
func openDecompressed(ctx context.Context, name string, r io.Reader) (io.ReadCloser, error) {
	format, stream, err := archives.Identify(ctx, name, r)
	if stderrors.Is(err, archives.NoMatch) {
		return io.NopCloser(stream), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to identify database file format: %w", err)
	}

	decompressor, ok := format.(archives.Decompressor)
	if !ok {
		return nil, fmt.Errorf("%s is a %s archive: %w", name, format.Extension(), errors.ErrDatabaseParse)
	}

	reader, err := decompressor.OpenReader(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress database: %w", err)
	}
	return reader, nil
}
