package flags

const (
	Config                  = "config"
	EnvironmentConfigPrefix = "env-config-prefix"

	SkipAllSecurityEnforcement = "insecure"
	SkipUpstreamTLSEnforcement = "insecure-skip-upstream-tls-enforcement"
)

// InsecureFlags lists the flags weakening the security of the deployment.
var InsecureFlags = []string{ // nolint: gochecknoglobals
	SkipAllSecurityEnforcement,
	SkipUpstreamTLSEnforcement,
}
