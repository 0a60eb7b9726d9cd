package logindefs

// DefaultPath is the well-known location of the shadow-utils login
// definitions file.
const DefaultPath = "/etc/login.defs"

// UIDRange is the inclusive [UID_MIN, UID_MAX] range of UIDs that are
// free to allocate to ordinary users. Both bounds come from login.defs
// and both must be present. The range is not validated beyond that:
// a config with Min > Max is the administrator's problem, not ours.
type UIDRange struct {
	Min uint32
	Max uint32
}

// Contains reports whether uid falls inside the range, bounds included.
func (r UIDRange) Contains(uid uint32) bool {
	return uid >= r.Min && uid <= r.Max
}

// Definition identifies one of the two login.defs keys this package
// cares about.
type Definition int

const (
	// UIDMin is the UID_MIN definition.
	UIDMin Definition = iota
	// UIDMax is the UID_MAX definition.
	UIDMax
)

// Key returns the exact key as it appears in login.defs.
func (d Definition) Key() string {
	if d == UIDMin {
		return "UID_MIN"
	}
	return "UID_MAX"
}

func (d Definition) String() string {
	return d.Key()
}

// Source represents a source of UID range data
type Source interface {
	// LoadUIDRange loads the UID_MIN/UID_MAX range
	LoadUIDRange() (UIDRange, error)
}
