//go:build !windows

package classifier

import (
	"github.com/spf13/afero"
	"golang.org/x/sys/unix"

	"github.com/usertier/usertier/pkg/logindefs"
	"github.com/usertier/usertier/pkg/tier"
)

// UIDClassifier maps the effective UID of the running process onto a
// tier using the UID_MIN/UID_MAX range from login.defs.
type UIDClassifier struct {
	source logindefs.Source
	euid   func() int
}

// NewUIDClassifier creates a classifier reading the system
// login.defs on the given filesystem.
func NewUIDClassifier(fs afero.Fs) *UIDClassifier {
	return &UIDClassifier{
		source: logindefs.NewFileSource(fs, logindefs.DefaultPath),
		euid:   unix.Geteuid,
	}
}

// Classify determines the tier of the current user. UID 0 is always
// Absolute and never touches the filesystem; for any other UID the
// login.defs range decides, and errors loading it propagate
// unchanged.
func (c *UIDClassifier) Classify() (tier.Tier, error) {
	uid := uint32(c.euid())
	if uid == 0 {
		return tier.Absolute, nil
	}

	rng, err := c.source.LoadUIDRange()
	if err != nil {
		return tier.Unknown, err
	}

	switch {
	case uid < rng.Min:
		return tier.System, nil
	case uid > rng.Max:
		return tier.Guest, nil
	default:
		return tier.User, nil
	}
}

func classifyCurrent() (tier.Tier, error) {
	return NewUIDClassifier(afero.NewOsFs()).Classify()
}
