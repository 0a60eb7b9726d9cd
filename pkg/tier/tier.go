// Package tier defines the permission tier classification produced by
// the classifier package.
//
// A Tier is a coarse, purely informational summary of how much access
// the current OS user is likely to have. It must never be used to gate
// privileged operations: it is derived from heuristics (a config file
// on unix, a single API call on Windows), not from the OS security
// model itself.
package tier

// Tier classifies the privileges held by an operating system user.
// Values are ordered by ascending privilege, so tiers can be compared
// directly with <, >, etc.
type Tier int

const (
	// Unknown means the tier could not be determined. It is returned
	// by the degrade-on-error entry points instead of an error.
	Unknown Tier = iota

	// Guest users have restricted, often ephemeral access. On unix
	// systems this covers at least the nobody user; on Windows it is
	// accounts with guest privilege.
	Guest

	// User is an ordinary user account, the kind allocated to a real
	// person.
	User

	// System users run system services. They may hold elevated
	// privileges but do not have absolute access. On unix these are
	// accounts with a UID below UID_MIN.
	System

	// Absolute users have full access to the system: root on unix,
	// administrators on Windows.
	Absolute
)

// Symbolic single-character codes, one per tier.
const (
	ByteUnknown  = '?'
	ByteGuest    = '%'
	ByteUser     = '$'
	ByteSystem   = '@'
	ByteAbsolute = '#'
)

// Byte returns the tier's single-character symbolic code, suitable for
// compact machine-readable output.
func (t Tier) Byte() byte {
	switch t {
	case Guest:
		return ByteGuest
	case User:
		return ByteUser
	case System:
		return ByteSystem
	case Absolute:
		return ByteAbsolute
	default:
		return ByteUnknown
	}
}

// String returns the tier's lowercase word form.
func (t Tier) String() string {
	switch t {
	case Guest:
		return "guest"
	case User:
		return "user"
	case System:
		return "system"
	case Absolute:
		return "absolute"
	default:
		return "unknown"
	}
}

// FromByte recovers a Tier from its symbolic code. The second return
// value is false if b is not one of the five codes.
func FromByte(b byte) (Tier, bool) {
	switch b {
	case ByteUnknown:
		return Unknown, true
	case ByteGuest:
		return Guest, true
	case ByteUser:
		return User, true
	case ByteSystem:
		return System, true
	case ByteAbsolute:
		return Absolute, true
	}
	return Unknown, false
}
