package classifier

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usertier/usertier/pkg/tier"
)

// fakeNativeSource is a test double for the platform identity APIs
// that counts how often the user-info buffer is released.
type fakeNativeSource struct {
	name     string
	nameErr  error
	priv     NativePrivilege
	queryErr error
	freeErr  error

	queriedName string
	freeCalls   int
}

func (s *fakeNativeSource) ResolveUserName() (string, error) {
	if s.nameErr != nil {
		return "", s.nameErr
	}
	return s.name, nil
}

func (s *fakeNativeSource) QueryUserInfo(name string) (*UserInfo, error) {
	s.queriedName = name
	if s.queryErr != nil {
		return nil, s.queryErr
	}
	return NewUserInfo(s.priv, func() error {
		s.freeCalls++
		return s.freeErr
	}), nil
}

func TestClassifyNative_PrivilegeMapping(t *testing.T) {
	tests := []struct {
		name string
		priv NativePrivilege
		want tier.Tier
	}{
		{"admin is absolute", PrivAdmin, tier.Absolute},
		{"guest is guest", PrivGuest, tier.Guest},
		{"user is user", PrivUser, tier.User},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &fakeNativeSource{name: "alice", priv: tt.priv}

			got, err := classifyNative(src)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "alice", src.queriedName)
			assert.Equal(t, 1, src.freeCalls, "buffer must be released exactly once")
		})
	}
}

func TestClassifyNative_InvalidPrivilege(t *testing.T) {
	src := &fakeNativeSource{name: "alice", priv: NativePrivilege(9)}

	got, err := classifyNative(src)
	assert.Equal(t, tier.Unknown, got)

	var privErr *PrivilegeError
	require.True(t, errors.As(err, &privErr))
	assert.Equal(t, NativePrivilege(9), privErr.Code)

	// The buffer is released even though classification failed.
	assert.Equal(t, 1, src.freeCalls)
}

func TestClassifyNative_ResolveUserNameError(t *testing.T) {
	osErr := errors.New("access denied")
	src := &fakeNativeSource{nameErr: osErr}

	_, err := classifyNative(src)
	var natErr *NativeError
	require.True(t, errors.As(err, &natErr))
	assert.Equal(t, OpResolveUserName, natErr.Op)
	assert.ErrorIs(t, err, osErr)
	assert.Equal(t, 0, src.freeCalls, "nothing to release when the query never ran")
}

func TestClassifyNative_QueryUserInfoError(t *testing.T) {
	osErr := errors.New("no such user")
	src := &fakeNativeSource{name: "alice", queryErr: osErr}

	_, err := classifyNative(src)
	var natErr *NativeError
	require.True(t, errors.As(err, &natErr))
	assert.Equal(t, OpQueryUserInfo, natErr.Op)
	assert.ErrorIs(t, err, osErr)
	assert.Equal(t, 0, src.freeCalls)
}

func TestUserInfo_ReleaseIsIdempotent(t *testing.T) {
	calls := 0
	info := NewUserInfo(PrivUser, func() error {
		calls++
		return nil
	})

	info.Release()
	info.Release()
	info.Release()
	assert.Equal(t, 1, calls)
}

func TestUserInfo_ReleaseFailureAborts(t *testing.T) {
	orig := fatalf
	defer func() { fatalf = orig }()

	aborts := 0
	fatalf = func(format string, args ...interface{}) { aborts++ }

	src := &fakeNativeSource{name: "alice", priv: PrivUser, freeErr: errors.New("heap corrupted")}

	got, err := classifyNative(src)
	require.NoError(t, err)
	assert.Equal(t, tier.User, got)
	assert.Equal(t, 1, src.freeCalls)
	assert.Equal(t, 1, aborts, "a failing release must terminate the process")
}

func TestNativeError_Message(t *testing.T) {
	err := &NativeError{Op: OpResolveUserName, Err: errors.New("code 5")}
	assert.Equal(t, "could not get username due to error: code 5", err.Error())

	privErr := &PrivilegeError{Code: 9}
	assert.Equal(t, "user privileges had invalid value (0x9)", privErr.Error())
}
