package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

const testModule = "common/errors/test"

var (
	errTestA = New(testModule, 1, "test: error A")
	errTestB = New(testModule, 2, "test: error B")
)

func TestCodedErrors(t *testing.T) {
	require := require.New(t)

	module, code := Code(errTestA)
	require.Equal(testModule, module)
	require.EqualValues(1, code)

	module, code = Code(nil)
	require.Equal("", module)
	require.EqualValues(CodeNoError, code)

	module, code = Code(fmt.Errorf("plain"))
	require.Equal(UnknownModule, module)
	require.EqualValues(1, code)

	require.Equal(errTestB, FromCode(testModule, 2))
	require.Nil(FromCode(testModule, 42))

	require.Panics(func() { _ = New(testModule, 1, "duplicate") }, "duplicate registration should panic")
	require.Panics(func() { _ = New(testModule, CodeNoError, "no error") }, "reserved code should panic")
}

func TestWithContext(t *testing.T) {
	require := require.New(t)

	err := WithContext(errTestA, "round 500")
	require.True(Is(err, errTestA))
	require.False(Is(err, errTestB))
	require.Equal("test: error A: round 500", err.Error())
	require.Equal("round 500", Context(err))

	module, code := Code(fmt.Errorf("wrapped: %w", err))
	require.Equal(testModule, module)
	require.EqualValues(1, code)

	require.Equal(errTestA, WithContext(errTestA, ""))
	require.Equal("", Context(errTestA))
	require.Equal("", Context(nil))
}

func TestWithContextf(t *testing.T) {
	require := require.New(t)

	err := WithContextf(errTestB, "limit %d", -1)
	require.True(Is(err, errTestB))
	require.Equal("test: error B: limit -1", err.Error())
	require.Equal("limit -1", Context(err))
}
