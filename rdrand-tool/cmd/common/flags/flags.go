// Package flags implements common flags used across multiple commands.
package flags

import (
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// CfgOutputFormat is the flag used to specify the output format.
	CfgOutputFormat = "output.format"

	// CfgCount is the flag used to specify the number of generated values.
	CfgCount = "count"

	// CfgVerbose is the flag used to request verbose output.
	CfgVerbose = "verbose"
)

var (
	// VerboseFlags has the verbose flag.
	VerboseFlags = flag.NewFlagSet("", flag.ContinueOnError)
	// OutputFormatFlags has the output format flag.
	OutputFormatFlags = flag.NewFlagSet("", flag.ContinueOnError)
	// CountFlags has the value count flag.
	CountFlags = flag.NewFlagSet("", flag.ContinueOnError)
)

// Verbose returns true iff the verbose flag is set.
func Verbose() bool {
	return viper.GetBool(CfgVerbose)
}

// OutputFormat returns the set output format.
func OutputFormat() string {
	return viper.GetString(CfgOutputFormat)
}

// Count returns the number of values to generate.
func Count() int {
	return viper.GetInt(CfgCount)
}

func init() {
	VerboseFlags.BoolP(CfgVerbose, "v", false, "verbose output")

	OutputFormatFlags.StringP(CfgOutputFormat, "o", "text", "output format [text,json,cbor]")

	CountFlags.IntP(CfgCount, "n", 1, "number of values to generate")

	for _, v := range []*flag.FlagSet{
		VerboseFlags,
		OutputFormatFlags,
		CountFlags,
	} {
		_ = viper.BindPFlags(v)
	}
}
