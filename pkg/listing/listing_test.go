package listing

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glorpus-work/portkit/pkg/model"
)

func sampleSnapshot() []model.InstalledPackage {
	return []model.InstalledPackage{
		{Name: "zlib", Version: "1.2.11", Description: "compression library"},
		{Name: "png", Version: "1.6.37", Description: "PNG reference library"},
	}
}

func row(name, version, description string) string {
	return name + strings.Repeat(" ", NameWidth-len(name)) + " " +
		version + strings.Repeat(" ", VersionWidth-len(version)) + " " +
		description
}

func TestMatches(t *testing.T) {
	tests := []struct {
		name   string
		pkg    model.InstalledPackage
		needle string
		want   bool
	}{
		{name: "exact", pkg: model.InstalledPackage{Name: "png"}, needle: "png", want: true},
		{name: "upper needle", pkg: model.InstalledPackage{Name: "png"}, needle: "PNG", want: true},
		{name: "upper name", pkg: model.InstalledPackage{Name: "SDL2"}, needle: "sdl", want: true},
		{name: "substring", pkg: model.InstalledPackage{Name: "libpng"}, needle: "bPn", want: true},
		{name: "matches triplet", pkg: model.InstalledPackage{Name: "zlib", Triplet: "x64-Linux"}, needle: "X64-linux", want: true},
		{name: "matches feature", pkg: model.InstalledPackage{Name: "curl", Feature: "ssl"}, needle: "[SSL]", want: true},
		{name: "empty needle", pkg: model.InstalledPackage{Name: "zlib"}, needle: "", want: true},
		{name: "no match", pkg: model.InstalledPackage{Name: "zlib"}, needle: "png", want: false},
		{name: "needle longer than name", pkg: model.InstalledPackage{Name: "gl"}, needle: "glew", want: false},
		{name: "non-ASCII is not folded", pkg: model.InstalledPackage{Name: "übersetzer"}, needle: "Ü", want: false},
		{name: "non-ASCII verbatim", pkg: model.InstalledPackage{Name: "übersetzer"}, needle: "üBER", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(&tt.pkg, tt.needle))
		})
	}
}

func TestSelect(t *testing.T) {
	records := Sort([]model.InstalledPackage{
		{Name: "libpng"},
		{Name: "zlib"},
		{Name: "png"},
		{Name: "pngpp"},
	})

	t.Run("no filter keeps everything", func(t *testing.T) {
		assert.Equal(t, records, Select(records, Invocation{}))
	})

	t.Run("filter keeps sorted order", func(t *testing.T) {
		got := Select(records, Invocation{Filter: "PNG", HasFilter: true})
		require.Len(t, got, 3)
		assert.Equal(t, "libpng", got[0].Name)
		assert.Equal(t, "png", got[1].Name)
		assert.Equal(t, "pngpp", got[2].Name)
	})

	t.Run("empty filter matches everything", func(t *testing.T) {
		got := Select(records, Invocation{Filter: "", HasFilter: true})
		assert.Equal(t, records, got)
	})

	t.Run("no matches", func(t *testing.T) {
		got := Select(records, Invocation{Filter: "boost", HasFilter: true})
		assert.Empty(t, got)
	})
}

func TestSort(t *testing.T) {
	input := []model.InstalledPackage{
		{Name: "zlib", Triplet: "x64-linux"},
		{Name: "Zstd", Triplet: "x64-linux"},
		{Name: "curl", Feature: "ssl", Triplet: "x64-linux"},
		{Name: "curl", Triplet: "x64-linux"},
		{Name: "png", Triplet: "x64-linux"},
	}
	original := append([]model.InstalledPackage(nil), input...)

	sorted := Sort(input)

	names := make([]string, 0, len(sorted))
	for i := range sorted {
		names = append(names, sorted[i].DisplayName())
	}
	assert.Equal(t, []string{
		"Zstd:x64-linux",
		"curl:x64-linux",
		"curl[ssl]:x64-linux",
		"png:x64-linux",
		"zlib:x64-linux",
	}, names)
	assert.Equal(t, original, input, "input must not be reordered")
}

func TestSort_StableForDuplicates(t *testing.T) {
	input := []model.InstalledPackage{
		{Name: "zlib", Version: "2"},
		{Name: "png", Version: "1"},
		{Name: "zlib", Version: "1"},
	}

	sorted := Sort(input)
	require.Len(t, sorted, 3)
	assert.Equal(t, "png", sorted[0].Name)
	assert.Equal(t, "2", sorted[1].Version)
	assert.Equal(t, "1", sorted[2].Version)
}

func TestFormatLine(t *testing.T) {
	longName := strings.Repeat("n", 60)
	longVersion := "2024-01-01-snapshot-build"
	longDescription := strings.Repeat("d", 80)

	t.Run("compact short values are padded", func(t *testing.T) {
		pkg := model.InstalledPackage{Name: "png", Version: "1.6.37", Description: "PNG reference library"}
		assert.Equal(t, row("png", "1.6.37", "PNG reference library"), FormatLine(&pkg, false))
	})

	t.Run("compact long values are truncated", func(t *testing.T) {
		pkg := model.InstalledPackage{Name: longName, Version: longVersion, Description: longDescription}
		line := FormatLine(&pkg, false)

		name := line[:NameWidth]
		assert.Equal(t, strings.Repeat("n", 47)+"...", name)
		assert.Equal(t, " ", line[NameWidth:NameWidth+1])

		version := line[NameWidth+1 : NameWidth+1+VersionWidth]
		assert.Equal(t, "2024-01-01-sn...", version)

		description := line[NameWidth+1+VersionWidth+1:]
		assert.Equal(t, strings.Repeat("d", 48)+"...", description)
		assert.Equal(t, NameWidth+1+VersionWidth+1+DescriptionWidth, utf8.RuneCountInString(line))
	})

	t.Run("compact columns are measured in runes", func(t *testing.T) {
		pkg := model.InstalledPackage{Name: strings.Repeat("ü", 60), Version: "1.0-é", Description: "bibliothèque"}
		line := []rune(FormatLine(&pkg, false))

		assert.Equal(t, strings.Repeat("ü", 47)+"...", string(line[:NameWidth]))
		assert.Equal(t, "1.0-é"+strings.Repeat(" ", VersionWidth-5), string(line[NameWidth+1:NameWidth+1+VersionWidth]))
		assert.Equal(t, "bibliothèque", string(line[NameWidth+1+VersionWidth+1:]))
	})

	t.Run("full mode keeps long values", func(t *testing.T) {
		pkg := model.InstalledPackage{Name: longName, Version: longVersion, Description: longDescription}
		assert.Equal(t, longName+" "+longVersion+" "+longDescription, FormatLine(&pkg, true))
	})

	t.Run("full mode still pads short values", func(t *testing.T) {
		pkg := model.InstalledPackage{Name: "png", Version: "1.6.37", Description: "PNG reference library"}
		assert.Equal(t, row("png", "1.6.37", "PNG reference library"), FormatLine(&pkg, true))
	})

	t.Run("empty description keeps padding", func(t *testing.T) {
		pkg := model.InstalledPackage{Name: "png", Version: "1.6.37"}
		assert.Equal(t, row("png", "1.6.37", ""), FormatLine(&pkg, false))
	})

	t.Run("port version and triplet are rendered", func(t *testing.T) {
		pkg := model.InstalledPackage{Name: "curl", Feature: "ssl", Triplet: "x64-windows", Version: "8.4.0", PortVersion: 2, Description: "HTTP client"}
		assert.Equal(t, row("curl[ssl]:x64-windows", "8.4.0#2", "HTTP client"), FormatLine(&pkg, false))
	})
}

func TestRender(t *testing.T) {
	t.Run("sorted compact report", func(t *testing.T) {
		result := Render(sampleSnapshot(), Invocation{})
		assert.Equal(t, StateListed, result.State)
		assert.Equal(t, 2, result.Total)
		assert.Equal(t, []string{
			row("png", "1.6.37", "PNG reference library"),
			row("zlib", "1.2.11", "compression library"),
		}, result.Lines)
	})

	t.Run("case-insensitive filter", func(t *testing.T) {
		result := Render(sampleSnapshot(), Invocation{Filter: "PNG", HasFilter: true})
		assert.Equal(t, StateListed, result.State)
		assert.Equal(t, []string{row("png", "1.6.37", "PNG reference library")}, result.Lines)
	})

	t.Run("filter without matches is silent", func(t *testing.T) {
		result := Render(sampleSnapshot(), Invocation{Filter: "boost", HasFilter: true})
		assert.Equal(t, StateListed, result.State)
		assert.Empty(t, result.Lines)
		assert.Equal(t, 2, result.Total)
	})

	t.Run("empty snapshot yields the notice", func(t *testing.T) {
		for _, inv := range []Invocation{
			{},
			{FullDescription: true},
			{Filter: "png", HasFilter: true},
		} {
			result := Render(nil, inv)
			assert.Equal(t, StateNoPackages, result.State)
			assert.Equal(t, []string{NoPackagesNotice}, result.Lines)
		}
	})

	t.Run("long display name", func(t *testing.T) {
		name := strings.Repeat("a", 60)
		snapshot := []model.InstalledPackage{{Name: name, Version: "1.0"}}

		compact := Render(snapshot, Invocation{})
		require.Len(t, compact.Lines, 1)
		assert.Equal(t, strings.Repeat("a", 47)+"...", compact.Lines[0][:NameWidth])

		full := Render(snapshot, Invocation{FullDescription: true})
		require.Len(t, full.Lines, 1)
		assert.True(t, strings.HasPrefix(full.Lines[0], name+" "))
	})

	t.Run("output is ordered by display name", func(t *testing.T) {
		snapshot := []model.InstalledPackage{
			{Name: "b", Triplet: "x86-windows"},
			{Name: "a", Triplet: "x64-windows"},
			{Name: "b", Triplet: "x64-windows"},
			{Name: "A", Triplet: "x64-windows"},
		}
		result := Render(snapshot, Invocation{})
		require.Len(t, result.Lines, 4)
		for i := 1; i < len(result.Lines); i++ {
			assert.LessOrEqual(t, result.Lines[i-1], result.Lines[i])
		}
		assert.True(t, strings.HasPrefix(result.Lines[0], "A:x64-windows "))
	})
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "no-packages", StateNoPackages.String())
	assert.Equal(t, "listed", StateListed.String())
	assert.Equal(t, "unknown", State(42).String())
}
