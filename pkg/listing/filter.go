package listing

import (
	"strings"

	"github.com/glorpus-work/portkit/pkg/model"
)

// Matches reports whether the record's display name contains needle,
// ignoring ASCII case. Other bytes must match exactly.
func Matches(record *model.InstalledPackage, needle string) bool {
	return strings.Contains(asciiLower(record.DisplayName()), asciiLower(needle))
}

// Select keeps the records accepted by the invocation's filter, in order.
func Select(records []model.InstalledPackage, inv Invocation) []model.InstalledPackage {
	if !inv.HasFilter {
		return records
	}

	selected := make([]model.InstalledPackage, 0, min(len(records), initialSelectedCapacity))
	for i := range records {
		if Matches(&records[i], inv.Filter) {
			selected = append(selected, records[i])
		}
	}
	return selected
}

func asciiLower(s string) string {
	var b []byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 'A' || c > 'Z' {
			continue
		}
		if b == nil {
			b = []byte(s)
		}
		b[i] = c + ('a' - 'A')
	}
	if b == nil {
		return s
	}
	return string(b)
}
