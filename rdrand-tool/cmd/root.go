// Package cmd implements the commands for the rdrand-tool executable.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/oasisprotocol/rdrand/common/version"
	"github.com/oasisprotocol/rdrand/rdrand-tool/cmd/check"
	cmdCommon "github.com/oasisprotocol/rdrand/rdrand-tool/cmd/common"
	"github.com/oasisprotocol/rdrand/rdrand-tool/cmd/generate"
	"github.com/oasisprotocol/rdrand/rdrand-tool/cmd/seed"
	"github.com/oasisprotocol/rdrand/rdrand-tool/cmd/selftest"
)

var rootCmd = &cobra.Command{
	Use:     "rdrand-tool",
	Short:   "Hardware random number generator utilities",
	Version: version.SoftwareVersion,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		cmdCommon.DumpMetrics()
	},
}

// RootCommand returns the root (top level) cobra.Command.
func RootCommand() *cobra.Command {
	return rootCmd
}

// Execute spawns the main entry point after handling the config file
// and command line arguments.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func initVersions() {
	cobra.AddTemplateFunc("toolVersion", func() interface{} { return version.Versions })

	rootCmd.SetVersionTemplate(`Software version: {{.Version}}
{{- with toolVersion }}
Go toolchain version: {{ .Toolchain }}
{{ end -}}
`)
}

func init() {
	cobra.OnInitialize(cmdCommon.InitConfig)
	initVersions()

	rootCmd.PersistentFlags().AddFlagSet(cmdCommon.RootFlags)

	// Register all of the sub-commands.
	for _, v := range []func(*cobra.Command){
		check.Register,
		generate.Register,
		seed.Register,
		selftest.Register,
	} {
		v(rootCmd)
	}
}
