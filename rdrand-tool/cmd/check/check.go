// Package check implements the hardware support check sub-command.
package check

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/oasisprotocol/rdrand/common/crypto/rdrand"
	"github.com/oasisprotocol/rdrand/common/errors"
	"github.com/oasisprotocol/rdrand/common/version"
	"github.com/oasisprotocol/rdrand/config"
	cmdCommon "github.com/oasisprotocol/rdrand/rdrand-tool/cmd/common"
	"github.com/oasisprotocol/rdrand/rdrand-tool/cmd/common/flags"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "check for hardware random number generator support",
	Run:   doCheck,
}

func doCheck(cmd *cobra.Command, args []string) {
	if err := cmdCommon.Init(); err != nil {
		cmdCommon.EarlyLogAndExit(err)
	}

	if err := runCheck(os.Stdout); err != nil {
		cmdCommon.Logger().Error("hardware random number generator unavailable",
			"err", err,
		)
		os.Exit(1)
	}
}

func runCheck(w io.Writer) error {
	g, err := cmdCommon.Generator()

	supported := "yes"
	switch {
	case err == nil:
	case errors.Is(err, rdrand.ErrNotSupported):
		supported = "no"
	default:
		return err
	}

	cfg := config.GlobalConfig.RDRAND
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Property", "Value"})
	table.Append([]string{"Architecture", runtime.GOARCH})
	table.Append([]string{"RDRAND supported", supported})
	table.Append([]string{"Retry limit", strconv.Itoa(cfg.RetryLimit)})
	table.Append([]string{"Reseed window", strconv.Itoa(cfg.ReseedWindow)})
	if flags.Verbose() {
		table.Append([]string{"Software version", version.SoftwareVersion})
		table.Append([]string{"Go toolchain", version.Toolchain})
		if g != nil {
			for _, row := range sampleRows(g) {
				table.Append(row)
			}
		}
	}
	table.Render()

	if err != nil {
		return fmt.Errorf("check: %w", err)
	}
	return nil
}

// sampleRows issues one request per width and reports the outcome.
func sampleRows(g *rdrand.Generator) [][]string {
	result := func(err error) string {
		if err != nil {
			return err.Error()
		}
		return "ok"
	}

	_, err8 := g.Uint8()
	_, err16 := g.Uint16()
	_, err32 := g.Uint32()
	_, err64 := g.Uint64()
	return [][]string{
		{"8-bit request", result(err8)},
		{"16-bit request", result(err16)},
		{"32-bit request", result(err32)},
		{"64-bit request", result(err64)},
	}
}

// Register registers the check sub-command.
func Register(parentCmd *cobra.Command) {
	parentCmd.AddCommand(checkCmd)
}
