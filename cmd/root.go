package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dadrus/querybearer/version"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{ // nolint: gochecknoglobals
	Use:     "querybearer",
	Short:   "A proxy accepting RFC 6750 bearer tokens from the query string",
	Version: version.Version,
}

// Execute adds all child commands to the root command sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		RootCmd.PrintErr(err)
		os.Exit(-1)
	}
}
