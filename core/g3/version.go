package g3

import (
	"github.com/hashicorp/go-version"
	"github.com/pkg/errors"
)

// Version is the release of the utilities.
const Version = "0.1-beta"

// ParsedVersion returns Version as a comparable version.
func ParsedVersion() (*version.Version, error) {
	return version.NewVersion(Version)
}

// Satisfies returns true if Version matches the constraint, like
// ">= 0.1-alpha, < 1.0".
func Satisfies(constraint string) (bool, error) {
	c, err := version.NewConstraint(constraint)
	if err != nil {
		return false, errors.Wrapf(err, "constraint %q", constraint)
	}
	v, err := ParsedVersion()
	if err != nil {
		return false, err
	}
	return c.Check(v), nil
}
