package classifier

import "fmt"

// NativeOp identifies which platform identity call failed.
type NativeOp int

const (
	// OpResolveUserName is the lookup of the current user's name.
	OpResolveUserName NativeOp = iota
	// OpQueryUserInfo is the user-information query for that name.
	OpQueryUserInfo
)

func (op NativeOp) String() string {
	switch op {
	case OpResolveUserName:
		return "get username"
	case OpQueryUserInfo:
		return "get user info"
	}
	return "unknown operation"
}

// NativeError reports a failed platform identity call, wrapping the
// OS error code.
type NativeError struct {
	Op  NativeOp
	Err error
}

func (e *NativeError) Error() string {
	return fmt.Sprintf("could not %s due to error: %v", e.Op, e.Err)
}

func (e *NativeError) Unwrap() error {
	return e.Err
}

// PrivilegeError reports a privilege code outside the set the
// platform documents, preserving the raw code for diagnostics.
type PrivilegeError struct {
	Code NativePrivilege
}

func (e *PrivilegeError) Error() string {
	return fmt.Sprintf("user privileges had invalid value (%#x)", uint32(e.Code))
}
