package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstalledPackage_DisplayName(t *testing.T) {
	tests := []struct {
		name string
		pkg  InstalledPackage
		want string
	}{
		{
			name: "core package",
			pkg:  InstalledPackage{Name: "zlib", Triplet: "x64-linux"},
			want: "zlib:x64-linux",
		},
		{
			name: "feature package",
			pkg:  InstalledPackage{Name: "curl", Feature: "ssl", Triplet: "x64-windows"},
			want: "curl[ssl]:x64-windows",
		},
		{
			name: "no triplet",
			pkg:  InstalledPackage{Name: "png"},
			want: "png",
		},
		{
			name: "feature without triplet",
			pkg:  InstalledPackage{Name: "boost", Feature: "asio"},
			want: "boost[asio]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pkg.DisplayName())
			assert.Equal(t, tt.want, tt.pkg.Key())
		})
	}
}

func TestInstalledPackage_DisplayVersion(t *testing.T) {
	pkg := InstalledPackage{Name: "zlib", Version: "1.2.11"}
	assert.Equal(t, "1.2.11", pkg.DisplayVersion())

	pkg.PortVersion = 3
	assert.Equal(t, "1.2.11#3", pkg.DisplayVersion())
}

func TestInstalledPackage_IsInstalled(t *testing.T) {
	assert.True(t, (&InstalledPackage{}).IsInstalled())
	assert.True(t, (&InstalledPackage{State: StateInstalled}).IsInstalled())
	assert.False(t, (&InstalledPackage{State: StateHalfInstalled}).IsInstalled())
	assert.False(t, (&InstalledPackage{State: StateNotInstalled}).IsInstalled())
}
