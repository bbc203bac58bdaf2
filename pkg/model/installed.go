// Package model provides the data structures describing installed ports.
package model

import (
	"strconv"
	"strings"
)

// InstallState tracks how far an installation got.
type InstallState string

const (
	// StateInstalled marks a package whose files are fully in place.
	StateInstalled InstallState = "installed"
	// StateHalfInstalled marks a package whose installation was interrupted.
	StateHalfInstalled InstallState = "half-installed"
	// StateNotInstalled marks a package that was removed but is still recorded.
	StateNotInstalled InstallState = "not-installed"
)

// InstalledPackage is one record of the installed database.
type InstalledPackage struct {
	Name        string       `json:"name"`
	Feature     string       `json:"feature,omitempty"` // empty for the core package
	Triplet     string       `json:"triplet,omitempty"`
	Version     string       `json:"version"`
	PortVersion int          `json:"port_version,omitempty"`
	Description string       `json:"description,omitempty"`
	State       InstallState `json:"state,omitempty"`
}

// DisplayName returns the human-facing name: name[feature]:triplet, with the
// feature and triplet parts left out when empty.
func (p *InstalledPackage) DisplayName() string {
	var b strings.Builder
	b.Grow(len(p.Name) + len(p.Feature) + len(p.Triplet) + 3)
	b.WriteString(p.Name)
	if p.Feature != "" {
		b.WriteByte('[')
		b.WriteString(p.Feature)
		b.WriteByte(']')
	}
	if p.Triplet != "" {
		b.WriteByte(':')
		b.WriteString(p.Triplet)
	}
	return b.String()
}

// DisplayVersion returns the version with the port revision appended as
// "#N" when it is non-zero.
func (p *InstalledPackage) DisplayVersion() string {
	if p.PortVersion == 0 {
		return p.Version
	}
	return p.Version + "#" + strconv.Itoa(p.PortVersion)
}

// IsInstalled reports whether the record describes a usable installation.
// Records without an explicit state predate state tracking and count as installed.
func (p *InstalledPackage) IsInstalled() bool {
	return p.State == "" || p.State == StateInstalled
}

// Key identifies the record in the database; two records with the same key
// describe the same installation.
func (p *InstalledPackage) Key() string {
	return p.DisplayName()
}
