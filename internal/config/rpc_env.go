package config

import (
	"os"
	"regexp"
	"strings"

	"github.com/trebuchet-org/upgrade-audit/internal/domain"
	"github.com/trebuchet-org/upgrade-audit/internal/domain/config"
)

// envVarPattern matches ${VAR_NAME} values in the manifest
var envVarPattern = regexp.MustCompile(`^\$\{([A-Za-z_][A-Za-z0-9_]*)\}$`)

// DetectEnvVar checks if a raw manifest value is a simple ${VAR_NAME} reference.
// Returns the variable name and true if the value is a pure env var reference.
func DetectEnvVar(rawValue string) (string, bool) {
	matches := envVarPattern.FindStringSubmatch(rawValue)
	if len(matches) == 2 {
		return matches[1], true
	}
	return "", false
}

// GenerateEnvVarName generates a conventional env var name for a network's RPC URL.
// Examples: holesky -> HOLESKY_RPC_URL, base-sepolia -> BASE_SEPOLIA_RPC_URL
func GenerateEnvVarName(networkName string) string {
	name := strings.ToUpper(networkName)
	name = strings.NewReplacer("-", "_", ".", "_").Replace(name)
	return name + "_RPC_URL"
}

// ResolveNetworkRPC finds an RPC URL for a network when none was given
// explicitly. A manifest rpc_url wins; otherwise <NETWORK>_RPC_URL is read.
func ResolveNetworkRPC(network *config.Network) (string, error) {
	if network.RPCURL == "" {
		return os.Getenv(GenerateEnvVarName(network.Name)), nil
	}

	if name, ok := DetectEnvVar(network.RPCURL); ok {
		value := os.Getenv(name)
		if value == "" {
			return "", &domain.ConfigError{
				Key:    "networks." + network.Name + ".rpc_url",
				Value:  network.RPCURL,
				Reason: "environment variable " + name + " is not set",
			}
		}
		return value, nil
	}

	return os.ExpandEnv(network.RPCURL), nil
}
