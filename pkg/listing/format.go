package listing

import (
	"strings"

	"github.com/glorpus-work/portkit/pkg/model"
	"github.com/glorpus-work/portkit/pkg/textutil"
)

// FormatLine renders one record as name, version and description columns.
// Compact mode cuts each column to its width; full mode only pads.
func FormatLine(record *model.InstalledPackage, fullDescription bool) string {
	name := record.DisplayName()
	version := record.DisplayVersion()
	description := record.Description

	if fullDescription {
		name = textutil.PadRight(name, NameWidth)
		version = textutil.PadRight(version, VersionWidth)
	} else {
		name = textutil.Fit(name, NameWidth)
		version = textutil.Fit(version, VersionWidth)
		description = textutil.Shorten(description, DescriptionWidth)
	}

	return strings.Join([]string{name, version, description}, ColumnSeparator)
}
