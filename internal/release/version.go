package release

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"

	oerrors "github.com/AiYo-Studio/emod-cli/internal/errors"
)

// Version is a dot-separated sequence of non-negative integers. Manifests
// expect exactly three components.
type Version []uint64

// VersionFormatError reports a version string with a component that is not
// a non-negative integer.
type VersionFormatError struct {
	Input     string
	Component string
}

func (e *VersionFormatError) Error() string {
	return fmt.Sprintf("invalid version %q: component %q is not a non-negative integer", e.Input, e.Component)
}

// Is makes VersionFormatError match ErrParse.
func (e *VersionFormatError) Is(target error) bool {
	return target == oerrors.ErrParse
}

// ParseVersion parses s ("1.2.3") into a Version. Any number of
// components is accepted.
func ParseVersion(s string) (Version, error) {
	parts := strings.Split(s, ".")
	v := make(Version, len(parts))
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			return nil, &VersionFormatError{Input: s, Component: p}
		}
		v[i] = n
	}
	return v, nil
}

func (v Version) String() string {
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = strconv.FormatUint(n, 10)
	}
	return strings.Join(parts, ".")
}

// ResolveVersion returns the parsed explicit version, or current with its
// patch component incremented when explicit is empty. Only the behavior
// pack version is passed as current; the resource pack version never
// drives the default.
func ResolveVersion(explicit string, current []uint64) (Version, error) {
	if explicit != "" {
		return ParseVersion(explicit)
	}
	if len(current) < 3 {
		return nil, oerrors.NewInvalidDataError(
			fmt.Sprintf("current version %v has fewer than 3 components", current), "")
	}
	next := make(Version, len(current))
	copy(next, current)
	next[2]++
	return next, nil
}

// Advances reports whether next is a higher semantic version than current.
// It fails when either side does not have exactly three components.
func Advances(current, next Version) (bool, error) {
	cv, err := toSemver(current)
	if err != nil {
		return false, fmt.Errorf("parsing current version %q: %w", current, err)
	}
	nv, err := toSemver(next)
	if err != nil {
		return false, fmt.Errorf("parsing next version %q: %w", next, err)
	}
	return nv.GreaterThan(cv), nil
}

func toSemver(v Version) (*semver.Version, error) {
	if len(v) != 3 {
		return nil, fmt.Errorf("want 3 components, got %d", len(v))
	}
	return semver.StrictNewVersion(v.String())
}
