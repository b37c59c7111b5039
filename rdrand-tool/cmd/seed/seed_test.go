package seed

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/oasisprotocol/rdrand/common/crypto/rdrand"
	"github.com/oasisprotocol/rdrand/common/crypto/rdrand/tests"
	"github.com/oasisprotocol/rdrand/common/errors"
	"github.com/oasisprotocol/rdrand/config"
	cmdCommon "github.com/oasisprotocol/rdrand/rdrand-tool/cmd/common"
	"github.com/oasisprotocol/rdrand/rdrand-tool/cmd/common/flags"
)

func setup(t *testing.T) *tests.ScriptedSource {
	src := tests.NewScriptedSource(1)
	cmdCommon.SetSource(src)
	viper.Set(flags.CfgOutputFormat, cmdCommon.FormatText)

	window := config.GlobalConfig.RDRAND.ReseedWindow
	config.GlobalConfig.RDRAND.ReseedWindow = 4

	t.Cleanup(func() {
		cmdCommon.SetSource(rdrand.HardwareSource{})
		config.GlobalConfig.RDRAND.ReseedWindow = window
		viper.Set(CfgBlocks, 1)
		viper.Set(CfgRetryMaxElapsed, time.Duration(0))
	})

	return src
}

func TestSeed(t *testing.T) {
	require := require.New(t)

	src := setup(t)
	src.SetValues(1, 2, 3, 4, 5, 6, 7, 8)
	viper.Set(CfgBlocks, 2)

	var buf bytes.Buffer
	err := runSeed(context.Background(), &buf)
	require.NoError(err, "runSeed")
	require.Equal("0000000000000004\n0000000000000008\n", buf.String(),
		"each seed should be the last value of its reseed window",
	)
	require.Equal(8, src.Count(rdrand.Width64))
}

func TestSeedFailure(t *testing.T) {
	require := require.New(t)

	src := setup(t)
	src.FailRange(0, rdrand.DefaultRetryLimit)
	viper.Set(CfgBlocks, 1)

	var buf bytes.Buffer
	err := runSeed(context.Background(), &buf)
	require.Error(err, "runSeed should fail")
	require.True(errors.Is(err, rdrand.ErrReseedIncomplete))
	require.Empty(buf.String())
}

func TestSeedRetry(t *testing.T) {
	require := require.New(t)

	src := setup(t)
	src.FailRange(0, rdrand.DefaultRetryLimit)
	src.SetValues(1, 2, 3, 4)
	viper.Set(CfgBlocks, 1)
	viper.Set(CfgRetryMaxElapsed, 5*time.Second)

	var buf bytes.Buffer
	err := runSeed(context.Background(), &buf)
	require.NoError(err, "runSeed should retry the failed reseed window")
	require.Equal("0000000000000004\n", buf.String())
	require.Equal(rdrand.DefaultRetryLimit+4, src.Calls())
}
