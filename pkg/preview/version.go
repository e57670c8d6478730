package preview

import (
	"fmt"
	"sort"
)

// CurrentConfigVersion is the config API version this tool targets.
const CurrentConfigVersion = "v1"

// VersionStatus represents the lifecycle state of a config API version.
type VersionStatus int

const (
	// VersionCurrent is an actively supported version.
	VersionCurrent VersionStatus = iota
	// VersionDeprecated still works but is slated for removal.
	VersionDeprecated
	// VersionRemoved is no longer supported.
	VersionRemoved
)

// String returns a human-readable representation of the version status.
func (s VersionStatus) String() string {
	switch s {
	case VersionCurrent:
		return "current"
	case VersionDeprecated:
		return "deprecated"
	case VersionRemoved:
		return "removed"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// VersionInfo describes a config API version.
type VersionInfo struct {
	// Version is the version string (e.g., "v1").
	Version string

	// Status is the lifecycle state of this version.
	Status VersionStatus
}

// VersionRegistry holds known config API versions.
type VersionRegistry struct {
	versions map[string]VersionInfo
	current  string
}

// NewVersionRegistry creates an empty version registry.
func NewVersionRegistry() *VersionRegistry {
	return &VersionRegistry{versions: make(map[string]VersionInfo)}
}

// Register adds a version to the registry. If current is unset and this
// is the first VersionCurrent entry, it becomes the current version.
func (r *VersionRegistry) Register(info VersionInfo) {
	r.versions[info.Version] = info
	if info.Status == VersionCurrent && r.current == "" {
		r.current = info.Version
	}
}

// Get returns the version info for the given version string.
func (r *VersionRegistry) Get(version string) (VersionInfo, bool) {
	info, ok := r.versions[version]
	return info, ok
}

// Current returns the current version string.
func (r *VersionRegistry) Current() string {
	return r.current
}

// ListSupported returns all non-removed version strings, sorted.
func (r *VersionRegistry) ListSupported() []string {
	var supported []string
	for v, info := range r.versions {
		if info.Status != VersionRemoved {
			supported = append(supported, v)
		}
	}
	sort.Strings(supported)
	return supported
}

// IsDeprecated reports whether the version exists and is deprecated.
func (r *VersionRegistry) IsDeprecated(version string) bool {
	info, ok := r.versions[version]
	return ok && info.Status == VersionDeprecated
}

// DefaultRegistry returns the standard version registry with v1 as the
// current version.
func DefaultRegistry() *VersionRegistry {
	r := NewVersionRegistry()
	r.Register(VersionInfo{Version: CurrentConfigVersion, Status: VersionCurrent})
	return r
}
