package classifier

import (
	"fmt"
	"os"

	"github.com/usertier/usertier/pkg/tier"
)

// NativePrivilege is the raw privilege code reported by the platform
// user-information API. The values mirror USER_PRIV_GUEST,
// USER_PRIV_USER and USER_PRIV_ADMIN.
type NativePrivilege uint32

const (
	// PrivGuest is the guest account privilege level.
	PrivGuest NativePrivilege = 0
	// PrivUser is the ordinary account privilege level.
	PrivUser NativePrivilege = 1
	// PrivAdmin is the administrator privilege level.
	PrivAdmin NativePrivilege = 2
)

// Tier maps the privilege code onto a tier. Codes outside the
// documented set yield a PrivilegeError carrying the raw value.
func (p NativePrivilege) Tier() (tier.Tier, error) {
	switch p {
	case PrivAdmin:
		return tier.Absolute, nil
	case PrivGuest:
		return tier.Guest, nil
	case PrivUser:
		return tier.User, nil
	}
	return tier.Unknown, &PrivilegeError{Code: p}
}

// fatalf terminates the process. Overridden in tests to observe the
// abort path without exiting.
var fatalf = func(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

// UserInfo is a user record owned by the OS allocator. It must be
// released exactly once before it goes out of scope; Release is
// idempotent so a deferred call is always safe.
type UserInfo struct {
	privilege NativePrivilege
	free      func() error
	released  bool
}

// NewUserInfo wraps a privilege code together with the function that
// returns the backing buffer to the OS allocator.
func NewUserInfo(privilege NativePrivilege, free func() error) *UserInfo {
	return &UserInfo{privilege: privilege, free: free}
}

// Privilege returns the record's privilege code.
func (u *UserInfo) Privilege() NativePrivilege {
	return u.privilege
}

// Release returns the backing buffer to the OS allocator. Only the
// first call frees. A failed free means the OS heap may be corrupted,
// so it terminates the process instead of returning an error.
func (u *UserInfo) Release() {
	if u.released || u.free == nil {
		return
	}
	u.released = true
	if err := u.free(); err != nil {
		fatalf("releasing user info buffer: %v", err)
	}
}

// nativeSource provides access to the platform identity APIs. The
// production implementation lives in native_windows.go; tests supply
// doubles.
type nativeSource interface {
	// ResolveUserName returns the name of the current user.
	ResolveUserName() (string, error)

	// QueryUserInfo returns the user record for the given name. The
	// caller owns the record and must Release it.
	QueryUserInfo(name string) (*UserInfo, error)
}

// classifyNative resolves the current user's name, queries their
// account record, and maps its privilege level to a tier. The record
// is released on every exit path.
func classifyNative(src nativeSource) (tier.Tier, error) {
	name, err := src.ResolveUserName()
	if err != nil {
		return tier.Unknown, &NativeError{Op: OpResolveUserName, Err: err}
	}

	info, err := src.QueryUserInfo(name)
	if err != nil {
		return tier.Unknown, &NativeError{Op: OpQueryUserInfo, Err: err}
	}
	defer info.Release()

	return info.Privilege().Tier()
}
