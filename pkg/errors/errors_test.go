package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrVersionParse, "bad version string")
	require.NotNil(t, err)
	assert.Equal(t, ErrVersionParse, err.Code)
	assert.Equal(t, "[VERSION_PARSE] bad version string", err.Error())
}

func TestWrap(t *testing.T) {
	inner := fmt.Errorf("permission denied")
	err := Wrap(inner, ErrSymlinkReplace, "could not replace link")
	require.NotNil(t, err)
	assert.Equal(t, ErrSymlinkReplace, err.Code)
	assert.Contains(t, err.Error(), "permission denied")
	assert.Equal(t, inner, err.Unwrap())
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrInternal, "should be nil"))
	assert.Nil(t, Wrapf(nil, ErrInternal, "should be %s", "nil"))
}

func TestIsErrorCode(t *testing.T) {
	err := Newf(ErrFSQuery, "statfs failed for %s", "/mnt/usb")
	assert.True(t, IsErrorCode(err, ErrFSQuery))
	assert.False(t, IsErrorCode(err, ErrGitConfigQuery))

	// Wrapped errors keep their code reachable through errors.As
	outer := fmt.Errorf("outer: %w", err)
	assert.True(t, IsErrorCode(outer, ErrFSQuery))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, ErrVersionGate, GetErrorCode(New(ErrVersionGate, "too old")))
	assert.Equal(t, ErrUnknown, GetErrorCode(fmt.Errorf("plain error")))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrEnvRelocate, "relocation failed").
		WithDetail("project", "Hephaestus").
		WithDetail("target", "/home/u/.local/share/devup/envs/Hephaestus")

	details := GetErrorDetails(err)
	require.NotNil(t, details)
	assert.Equal(t, "Hephaestus", details["project"])
}
