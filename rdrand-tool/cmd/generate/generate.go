// Package generate implements the random value generation sub-commands.
package generate

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/oasisprotocol/rdrand/common/crypto/rdrand"
	"github.com/oasisprotocol/rdrand/common/logging"
	cmdCommon "github.com/oasisprotocol/rdrand/rdrand-tool/cmd/common"
	"github.com/oasisprotocol/rdrand/rdrand-tool/cmd/common/flags"
)

const (
	// CfgWidth is the flag used to specify the bit width of random values.
	CfgWidth = "width"
	// CfgMin is the flag used to specify the lower range bound.
	CfgMin = "min"
	// CfgMax is the flag used to specify the upper range bound.
	CfgMax = "max"
)

var (
	randomCmd = &cobra.Command{
		Use:   "random",
		Short: "generate random integers of a fixed bit width",
		Run:   doRandom,
	}

	rangeCmd = &cobra.Command{
		Use:   "range",
		Short: "generate uniformly distributed integers in [min, max]",
		Run:   doRange,
	}

	bytesCmd = &cobra.Command{
		Use:   "bytes",
		Short: "generate random bytes",
		Run:   doBytes,
	}

	// WidthFlags has the bit width flag.
	WidthFlags = flag.NewFlagSet("", flag.ContinueOnError)
	// RangeFlags has the range bound flags.
	RangeFlags = flag.NewFlagSet("", flag.ContinueOnError)

	logger = logging.GetLogger("cmd/generate")
)

func run(fn func(io.Writer) error) {
	if err := cmdCommon.Init(); err != nil {
		cmdCommon.EarlyLogAndExit(err)
	}

	if err := fn(os.Stdout); err != nil {
		logger.Error("failed to generate random values",
			"err", err,
		)
		os.Exit(1)
	}
}

func doRandom(cmd *cobra.Command, args []string) {
	run(runRandom)
}

func doRange(cmd *cobra.Command, args []string) {
	run(runRange)
}

func doBytes(cmd *cobra.Command, args []string) {
	run(runBytes)
}

func count() (int, error) {
	n := flags.Count()
	if n < 0 {
		return 0, fmt.Errorf("invalid count: %d", n)
	}
	return n, nil
}

func runRandom(w io.Writer) error {
	n, err := count()
	if err != nil {
		return err
	}
	g, err := cmdCommon.Generator()
	if err != nil {
		return err
	}

	// Partially filled buffers are never printed.
	var values interface{}
	switch width := viper.GetInt(CfgWidth); width {
	case int(rdrand.Width8):
		dst := make([]uint8, n)
		_, err = g.Fill8(dst)
		values = dst
	case int(rdrand.Width16):
		dst := make([]uint16, n)
		_, err = g.Fill16(dst)
		values = dst
	case int(rdrand.Width32):
		dst := make([]uint32, n)
		_, err = g.Fill32(dst)
		values = dst
	case int(rdrand.Width64):
		dst := make([]uint64, n)
		_, err = g.Fill64(dst)
		values = dst
	default:
		return fmt.Errorf("unsupported width: %d", width)
	}
	if err != nil {
		return err
	}

	return cmdCommon.WriteOutput(w, values)
}

func runRange(w io.Writer) error {
	n, err := count()
	if err != nil {
		return err
	}
	g, err := cmdCommon.Generator()
	if err != nil {
		return err
	}

	dst := make([]int32, n)
	if _, err = g.FillRange(dst, viper.GetInt32(CfgMin), viper.GetInt32(CfgMax)); err != nil {
		return err
	}

	return cmdCommon.WriteOutput(w, dst)
}

func runBytes(w io.Writer) error {
	n, err := count()
	if err != nil {
		return err
	}
	g, err := cmdCommon.Generator()
	if err != nil {
		return err
	}

	dst := make([]byte, n)
	if _, err = g.Bytes(dst); err != nil {
		return err
	}

	return cmdCommon.WriteOutput(w, dst)
}

// Register registers the generation sub-commands.
func Register(parentCmd *cobra.Command) {
	randomCmd.Flags().AddFlagSet(WidthFlags)
	rangeCmd.Flags().AddFlagSet(RangeFlags)
	permCmd.Flags().AddFlagSet(RangeFlags)
	parentCmd.AddCommand(permCmd)
	for _, v := range []*cobra.Command{
		randomCmd,
		rangeCmd,
		bytesCmd,
	} {
		v.Flags().AddFlagSet(flags.CountFlags)
		parentCmd.AddCommand(v)
	}
}

func init() {
	WidthFlags.Int(CfgWidth, 32, "bit width of generated values [8,16,32,64]")
	_ = viper.BindPFlags(WidthFlags)

	RangeFlags.Int32(CfgMin, 1, "lower bound (inclusive)")
	RangeFlags.Int32(CfgMax, 6, "upper bound (inclusive)")
	_ = viper.BindPFlags(RangeFlags)
}
