// Package classifier determines the permission tier of the current OS
// user.
//
// Exactly one platform resolver is compiled into any given binary: on
// unix-family systems the effective UID is compared against the
// UID_MIN/UID_MAX range from /etc/login.defs, and on Windows the
// account's privilege level is read through the user-information API.
// The result is informational only and is not a security boundary.
package classifier

import (
	"github.com/usertier/usertier/pkg/logging"
	"github.com/usertier/usertier/pkg/tier"
)

// Current classifies the user running this process. Any failure is
// returned to the caller as a typed error; see the package errors for
// the taxonomy.
func Current() (tier.Tier, error) {
	return classifyCurrent()
}

// CurrentOrUnknown classifies the user running this process,
// degrading to tier.Unknown on failure. The error is logged through
// the application logger instead of being returned. Callers that need
// the error itself should use Current.
//
// Unknown is only ever produced by this degrade path, so a caller can
// treat a tier.Unknown result as "an error occurred and was logged".
func CurrentOrUnknown() tier.Tier {
	return orUnknown(Current())
}

// orUnknown collapses a classification result to a bare tier, logging
// the error, if any, through the application logger.
func orUnknown(t tier.Tier, err error) tier.Tier {
	if err != nil {
		logging.App.Error("classifying current user", "error", err)
		return tier.Unknown
	}
	return t
}
