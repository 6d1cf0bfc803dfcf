package config

import (
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/upgrade-audit/internal/domain"
	"github.com/trebuchet-org/upgrade-audit/internal/domain/config"
)

// envBindings maps config keys to the environment variables that feed them.
// The unprefixed names are the ones operators already keep in .env files.
var envBindings = map[string][]string{
	"network":           {"UPGRADE_AUDIT_NETWORK", "NETWORK"},
	"rpc_url":           {"UPGRADE_AUDIT_RPC_URL", "ETH_RPC"},
	"etherscan_api_key": {"UPGRADE_AUDIT_ETHERSCAN_API_KEY", "ETHERSCAN_API_KEY"},
}

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	repoRoot := v.GetString("repo_root")

	cfg := &config.RuntimeConfig{
		RPCURL:          v.GetString("rpc_url"),
		APIKey:          v.GetString("etherscan_api_key"),
		RepoRoot:        repoRoot,
		DependencyRoot:  v.GetString("dependency_root"),
		PreamblePath:    v.GetString("preamble_path"),
		UpgradeContract: config.DefaultUpgradeContract,
		Dependents:      slices.Clone(config.DefaultDependents),
		Debug:           v.GetBool("debug"),
		NonInteractive:  v.GetBool("non_interactive"),
		Timeout:         v.GetDuration("timeout"),
		RequestSpacing:  v.GetDuration("request_spacing"),
		Networks:        config.DefaultNetworks(),
	}

	if cfg.DependencyRoot == "" {
		cfg.DependencyRoot = filepath.Join(repoRoot, "node_modules")
	}
	if cfg.PreamblePath == "" {
		cfg.PreamblePath = filepath.Join(repoRoot, "scripts", "preamble.sol")
	}

	if manifestPath := v.GetString("manifest"); manifestPath != "" {
		manifest, err := LoadManifest(manifestPath)
		if err != nil {
			return nil, err
		}
		if err := ApplyManifest(cfg, manifest); err != nil {
			return nil, err
		}
	}

	if block := v.GetString("block"); block != "" && block != "latest" {
		blockNumber, ok := new(big.Int).SetString(block, 0)
		if !ok || blockNumber.Sign() < 0 {
			return nil, &domain.ConfigError{Key: "block", Value: block, Reason: "not a block number"}
		}
		cfg.BlockNumber = blockNumber
	}

	// Resolve network if specified; only commands that need one fail on it
	if networkName := v.GetString("network"); networkName != "" {
		cfg.NetworkErr = resolveNetwork(cfg, networkName)
	}

	return cfg, nil
}

func resolveNetwork(cfg *config.RuntimeConfig, networkName string) error {
	network, err := NewNetworkResolver(cfg.Networks).Resolve(networkName)
	if err != nil {
		return err
	}

	if cfg.RPCURL == "" {
		rpcURL, err := ResolveNetworkRPC(network)
		if err != nil {
			return err
		}
		cfg.RPCURL = rpcURL
	}
	cfg.Network = network
	return nil
}

// ProvideNetworkResolver creates a NetworkResolver for Wire dependency injection
func ProvideNetworkResolver(cfg *config.RuntimeConfig) *NetworkResolver {
	return NewNetworkResolver(cfg.Networks)
}

// SetupViper creates and configures a viper instance
func SetupViper(workDir string, cmd *cobra.Command) *viper.Viper {
	loadEnvFiles(workDir)

	v := viper.New()

	// Set up config file
	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(workDir, ".upgrade-audit"))

	// Set up environment variables
	v.SetEnvPrefix("UPGRADE_AUDIT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	for key, envs := range envBindings {
		_ = v.BindEnv(append([]string{key}, envs...)...)
	}

	// Set defaults
	v.SetDefault("repo_root", "rocketpool")
	v.SetDefault("timeout", "10m")
	v.SetDefault("request_spacing", "220ms")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)

	// Try to read config file (ignore error if not found)
	_ = v.ReadInConfig()

	if cmd != nil {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			key := strings.ReplaceAll(f.Name, "-", "_")
			if err := v.BindPFlag(key, f); err != nil {
				panic(fmt.Sprintf("failed to bind flag %s: %v", f.Name, err))
			}
		})
	}

	return v
}

// loadEnvFiles loads .env files without overriding variables already set
func loadEnvFiles(workDir string) {
	envFiles := []string{
		filepath.Join(workDir, ".env"),
		filepath.Join(workDir, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				// Log warning but don't fail
				fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
			}
		}
	}
}
