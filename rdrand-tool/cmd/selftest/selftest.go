// Package selftest implements the statistical self-test sub-command.
package selftest

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/oasisprotocol/rdrand/common/logging"
	"github.com/oasisprotocol/rdrand/common/prettyprint"
	cmdCommon "github.com/oasisprotocol/rdrand/rdrand-tool/cmd/common"
)

const (
	// CfgMin is the flag used to specify the lower bound of the tested range.
	CfgMin = "selftest.min"
	// CfgMax is the flag used to specify the upper bound of the tested range.
	CfgMax = "selftest.max"
	// CfgSamples is the flag used to specify the number of drawn samples.
	CfgSamples = "selftest.samples"

	// maxBins bounds the size of the histogram.
	maxBins = 1024
	// minExpected is the smallest expected bin count for which the
	// chi-squared approximation holds.
	minExpected = 5

	// zCritical is the standard normal quantile at p = 0.999.
	zCritical = 3.0902
)

var (
	selftestCmd = &cobra.Command{
		Use:   "selftest",
		Short: "run a chi-squared uniformity test over range generation",
		Run:   doSelftest,
	}

	// Flags has the selftest sub-command flags.
	Flags = flag.NewFlagSet("", flag.ContinueOnError)

	logger = logging.GetLogger("cmd/selftest")
)

var _ prettyprint.PrettyPrinter = (*result)(nil)

type result struct {
	Min       int32 `json:"min"`
	Max       int32 `json:"max"`
	Histogram []int `json:"histogram"`
	Samples   int   `json:"samples"`

	ChiSquared float64 `json:"chi_squared"`
	Critical   float64 `json:"critical_value"`
	Passed     bool    `json:"passed"`
}

// PrettyPrint writes the histogram and the verdict as a table.
func (r *result) PrettyPrint(prefix string, w io.Writer) {
	expected := strconv.FormatFloat(float64(r.Samples)/float64(len(r.Histogram)), 'f', 1, 64)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Value", "Observed", "Expected"})
	for i, observed := range r.Histogram {
		table.Append([]string{
			strconv.FormatInt(int64(r.Min)+int64(i), 10),
			strconv.Itoa(observed),
			expected,
		})
	}
	table.Render()

	verdict := "PASS"
	if !r.Passed {
		verdict = "FAIL"
	}
	_, _ = fmt.Fprintf(w, "%schi-squared: %.3f (critical value %.3f, df %d): %s\n",
		prefix, r.ChiSquared, r.Critical, len(r.Histogram)-1, verdict,
	)
}

// criticalValue approximates the chi-squared quantile at p = 0.999 for the
// given degrees of freedom using the Wilson-Hilferty transformation.
func criticalValue(df int) float64 {
	k := float64(df)
	h := 2 / (9 * k)
	return k * math.Pow(1-h+zCritical*math.Sqrt(h), 3)
}

func chiSquared(histogram []int, samples int) float64 {
	expected := float64(samples) / float64(len(histogram))

	var x2 float64
	for _, observed := range histogram {
		d := float64(observed) - expected
		x2 += d * d / expected
	}
	return x2
}

func doSelftest(cmd *cobra.Command, args []string) {
	if err := cmdCommon.Init(); err != nil {
		cmdCommon.EarlyLogAndExit(err)
	}

	if err := runSelftest(os.Stdout); err != nil {
		logger.Error("self-test failed",
			"err", err,
		)
		os.Exit(1)
	}
}

func runSelftest(w io.Writer) error {
	lo, hi := viper.GetInt32(CfgMin), viper.GetInt32(CfgMax)
	if hi < lo {
		lo, hi = hi, lo
	}
	bins := int64(hi) - int64(lo) + 1
	if bins < 2 || bins > maxBins {
		return fmt.Errorf("invalid range [%d, %d]: must span between 2 and %d values", lo, hi, maxBins)
	}
	samples := viper.GetInt(CfgSamples)
	if int64(samples) < bins*minExpected {
		return fmt.Errorf("invalid sample count %d: at least %d required", samples, bins*minExpected)
	}

	g, err := cmdCommon.Generator()
	if err != nil {
		return err
	}

	values := make([]int32, samples)
	if _, err = g.FillRange(values, lo, hi); err != nil {
		return err
	}

	r := &result{
		Min:       lo,
		Max:       hi,
		Histogram: make([]int, bins),
		Samples:   samples,
		Critical:  criticalValue(int(bins - 1)),
	}
	for _, v := range values {
		if v < lo || v > hi {
			return fmt.Errorf("generated value %d outside of [%d, %d]", v, lo, hi)
		}
		r.Histogram[int64(v)-int64(lo)]++
	}
	r.ChiSquared = chiSquared(r.Histogram, samples)
	r.Passed = r.ChiSquared <= r.Critical

	if err = cmdCommon.WriteOutput(w, r); err != nil {
		return err
	}

	if !r.Passed {
		return fmt.Errorf("distribution not uniform: chi-squared %.3f exceeds %.3f", r.ChiSquared, r.Critical)
	}
	return nil
}

// Register registers the selftest sub-command.
func Register(parentCmd *cobra.Command) {
	selftestCmd.Flags().AddFlagSet(Flags)
	parentCmd.AddCommand(selftestCmd)
}

func init() {
	Flags.Int32(CfgMin, 1, "lower bound of the tested range (inclusive)")
	Flags.Int32(CfgMax, 6, "upper bound of the tested range (inclusive)")
	Flags.Int(CfgSamples, 60000, "number of samples to draw")
	_ = viper.BindPFlags(Flags)
}
