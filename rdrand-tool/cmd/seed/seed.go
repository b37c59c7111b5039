// Package seed implements the seed generation sub-command.
package seed

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/oasisprotocol/rdrand/common/backoff"
	"github.com/oasisprotocol/rdrand/common/logging"
	cmdCommon "github.com/oasisprotocol/rdrand/rdrand-tool/cmd/common"
)

const (
	// CfgBlocks is the flag used to specify the number of 64-bit seeds.
	CfgBlocks = "blocks"
	// CfgRetryMaxElapsed is the flag used to specify how long failed seed
	// generations are retried for. Zero disables retries.
	CfgRetryMaxElapsed = "retry.max_elapsed"

	retryInitialInterval = 10 * time.Millisecond
)

var (
	seedCmd = &cobra.Command{
		Use:   "seed",
		Short: "generate 64-bit seeds after a guaranteed DRNG reseed",
		Run:   doSeed,
	}

	// Flags has the seed sub-command flags.
	Flags = flag.NewFlagSet("", flag.ContinueOnError)

	logger = logging.GetLogger("cmd/seed")
)

func doSeed(cmd *cobra.Command, args []string) {
	if err := cmdCommon.Init(); err != nil {
		cmdCommon.EarlyLogAndExit(err)
	}

	if err := runSeed(cmd.Context(), os.Stdout); err != nil {
		logger.Error("failed to generate seeds",
			"err", err,
		)
		os.Exit(1)
	}
}

func runSeed(ctx context.Context, w io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	n := viper.GetInt(CfgBlocks)
	if n < 0 {
		return fmt.Errorf("invalid block count: %d", n)
	}
	g, err := cmdCommon.Generator()
	if err != nil {
		return err
	}

	var blocks []uint64
	switch maxElapsed := viper.GetDuration(CfgRetryMaxElapsed); {
	case maxElapsed <= 0:
		if blocks, err = g.SeedBlocks(n); err != nil {
			return err
		}
	default:
		blocks = make([]uint64, 0, n)
		for i := 0; i < n; i++ {
			b := backoff.NewBoundedBackOff(retryInitialInterval, maxElapsed)
			seed, serr := g.SeedWithBackOff(ctx, b)
			if serr != nil {
				return fmt.Errorf("seed block %d: %w", i, serr)
			}
			blocks = append(blocks, seed)
		}
	}

	logger.Debug("generated seeds",
		"blocks", len(blocks),
		"reseed_window", g.ReseedWindow(),
	)

	return cmdCommon.WriteOutput(w, blocks)
}

// Register registers the seed sub-command.
func Register(parentCmd *cobra.Command) {
	seedCmd.Flags().AddFlagSet(Flags)
	parentCmd.AddCommand(seedCmd)
}

func init() {
	Flags.Int(CfgBlocks, 1, "number of 64-bit seeds to generate")
	Flags.Duration(CfgRetryMaxElapsed, 0, "keep retrying failed seeds for up to this long")
	_ = viper.BindPFlags(Flags)
}
