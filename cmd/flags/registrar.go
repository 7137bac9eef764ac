package flags

import (
	"github.com/spf13/cobra"

	"github.com/dadrus/querybearer/internal/config"
)

func RegisterGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP(Config, "c", "",
		"Path to querybearer's configuration file.\n"+
			"If not provided, the lookup sequence is:\n  1. $PWD\n  2. /etc/querybearer/")
	cmd.PersistentFlags().String(EnvironmentConfigPrefix, config.DefaultEnvVarPrefix,
		"Prefix for the environment variables to consider for\nloading configuration from")
	cmd.PersistentFlags().Bool(SkipAllSecurityEnforcement, false,
		"Disables enforcement of all secure configurations entirely.\n"+
			"Effectively it enables all the --insecure-skip-* flags below.")
	cmd.PersistentFlags().Bool(SkipUpstreamTLSEnforcement, false,
		"Disables enforcement of TLS while forwarding the requests\n"+
			"together with their bearer tokens to the upstream service.")
}
