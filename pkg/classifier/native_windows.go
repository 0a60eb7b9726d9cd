//go:build windows

package classifier

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/usertier/usertier/pkg/tier"
)

// unlen is the maximum username length (UNLEN from lmcons.h).
const unlen = 256

// userInfo1 mirrors the USER_INFO_1 structure returned by
// NetUserGetInfo at information level 1.
type userInfo1 struct {
	Name        *uint16
	Password    *uint16
	PasswordAge uint32
	Priv        uint32
	HomeDir     *uint16
	Comment     *uint16
	Flags       uint32
	ScriptPath  *uint16
}

var (
	advapi32         = windows.NewLazySystemDLL("advapi32.dll")
	procGetUserNameW = advapi32.NewProc("GetUserNameW")
)

// windowsSource implements nativeSource against the live Windows API.
type windowsSource struct{}

func (windowsSource) ResolveUserName() (string, error) {
	var buf [unlen + 1]uint16
	n := uint32(len(buf))
	r1, _, e1 := procGetUserNameW.Call(
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(unsafe.Pointer(&n)),
	)
	if r1 == 0 {
		if errno, ok := e1.(syscall.Errno); ok && errno != 0 {
			return "", errno
		}
		return "", syscall.EINVAL
	}
	return windows.UTF16ToString(buf[:n]), nil
}

func (windowsSource) QueryUserInfo(name string) (*UserInfo, error) {
	name16, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return nil, err
	}

	var buf *byte
	if err := windows.NetUserGetInfo(nil, name16, 1, &buf); err != nil {
		return nil, err
	}

	rec := (*userInfo1)(unsafe.Pointer(buf))
	return NewUserInfo(NativePrivilege(rec.Priv), func() error {
		return windows.NetApiBufferFree(buf)
	}), nil
}

func classifyCurrent() (tier.Tier, error) {
	return classifyNative(windowsSource{})
}
