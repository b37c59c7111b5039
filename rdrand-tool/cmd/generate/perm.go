package generate

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/oasisprotocol/rdrand/common/crypto/mathrand"
	cmdCommon "github.com/oasisprotocol/rdrand/rdrand-tool/cmd/common"
)

// maxPermLength bounds the number of values permuted by the perm command.
const maxPermLength = 1 << 20

var permCmd = &cobra.Command{
	Use:   "perm",
	Short: "generate a random permutation of the integers in [min, max]",
	Run:   doPerm,
}

func doPerm(cmd *cobra.Command, args []string) {
	run(runPerm)
}

func runPerm(w io.Writer) (err error) {
	lo, hi := viper.GetInt32(CfgMin), viper.GetInt32(CfgMax)
	if hi < lo {
		lo, hi = hi, lo
	}
	n := int64(hi) - int64(lo) + 1
	if n > maxPermLength {
		return fmt.Errorf("range [%d, %d] too large: at most %d values can be permuted", lo, hi, maxPermLength)
	}

	g, err := cmdCommon.Generator()
	if err != nil {
		return err
	}

	values := make([]int32, n)
	for i := range values {
		values[i] = lo + int32(i)
	}

	// The adapter panics when the generator fails.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("failed to permute values: %v", r)
		}
	}()
	rng := rand.New(mathrand.New(g)) // nolint: gosec
	rng.Shuffle(len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})

	return cmdCommon.WriteOutput(w, values)
}
