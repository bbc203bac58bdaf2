package listing

import (
	"slices"
	"strings"

	"github.com/glorpus-work/portkit/pkg/model"
)

// Sort returns a copy of records ordered by display name using plain byte
// comparison. Records with equal display names keep their relative order.
func Sort(records []model.InstalledPackage) []model.InstalledPackage {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b model.InstalledPackage) int {
		return strings.Compare(a.DisplayName(), b.DisplayName())
	})
	return sorted
}
