package check

import (
	"bytes"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/oasisprotocol/rdrand/common/crypto/rdrand"
	"github.com/oasisprotocol/rdrand/common/crypto/rdrand/tests"
	"github.com/oasisprotocol/rdrand/common/errors"
	cmdCommon "github.com/oasisprotocol/rdrand/rdrand-tool/cmd/common"
	"github.com/oasisprotocol/rdrand/rdrand-tool/cmd/common/flags"
)

func TestCheck(t *testing.T) {
	require := require.New(t)

	defer cmdCommon.SetSource(rdrand.HardwareSource{})

	src := tests.NewScriptedSource(1)
	cmdCommon.SetSource(src)

	var buf bytes.Buffer
	err := runCheck(&buf)
	require.NoError(err, "runCheck")
	require.Contains(buf.String(), "RDRAND supported")
	require.Contains(buf.String(), "yes")
	require.Equal(0, src.Calls(), "checking support should not draw values")

	src.SetSupported(false)
	buf.Reset()
	err = runCheck(&buf)
	require.Error(err, "runCheck should fail without hardware support")
	require.True(errors.Is(err, rdrand.ErrNotSupported))
	require.Contains(buf.String(), "no")
	require.NotContains(buf.String(), "yes")
}

func TestCheckVerbose(t *testing.T) {
	require := require.New(t)

	defer cmdCommon.SetSource(rdrand.HardwareSource{})
	defer viper.Set(flags.CfgVerbose, false)

	src := tests.NewScriptedSource(1)
	src.FailRange(1, rdrand.DefaultRetryLimit)
	cmdCommon.SetSource(src)
	viper.Set(flags.CfgVerbose, true)

	var buf bytes.Buffer
	err := runCheck(&buf)
	require.NoError(err, "runCheck")
	require.Contains(buf.String(), "Go toolchain")
	require.Contains(buf.String(), "8-bit request")
	require.Contains(buf.String(), rdrand.ErrRetryExhausted.Error(), "the exhausted 16-bit request should be reported")
	require.Contains(buf.String(), "64-bit request")
	require.Equal(1, src.Count(rdrand.Width64))

	src.SetSupported(false)
	buf.Reset()
	err = runCheck(&buf)
	require.True(errors.Is(err, rdrand.ErrNotSupported))
	require.NotContains(buf.String(), "8-bit request", "no requests without hardware support")
}
