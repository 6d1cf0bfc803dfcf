package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/upgrade-audit/internal/domain"
	"github.com/trebuchet-org/upgrade-audit/internal/domain/config"
)

// LoadManifest reads an audit manifest from a TOML file
func LoadManifest(path string) (*config.Manifest, error) {
	var manifest config.Manifest
	meta, err := toml.DecodeFile(path, &manifest)
	if err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return nil, &domain.ConfigError{
			Key:    "manifest",
			Value:  path,
			Reason: fmt.Sprintf("unknown keys: %s", strings.Join(keys, ", ")),
		}
	}

	return &manifest, nil
}

// ApplyManifest overlays a manifest onto the runtime configuration
func ApplyManifest(cfg *config.RuntimeConfig, manifest *config.Manifest) error {
	if manifest.UpgradeContract != "" {
		cfg.UpgradeContract = manifest.UpgradeContract
	}

	if len(manifest.Dependents) > 0 {
		seen := make(map[string]bool, len(manifest.Dependents))
		for i, dep := range manifest.Dependents {
			if dep.Method == "" || dep.Contract == "" {
				return &domain.ConfigError{
					Key:    fmt.Sprintf("dependents[%d]", i),
					Reason: "method and contract are required",
				}
			}
			if seen[dep.Method] {
				return &domain.ConfigError{
					Key:    fmt.Sprintf("dependents[%d]", i),
					Value:  dep.Method,
					Reason: "duplicate method",
				}
			}
			seen[dep.Method] = true
		}
		cfg.Dependents = manifest.Dependents
	}

	if cfg.Networks == nil {
		cfg.Networks = make(map[string]*config.Network)
	}
	for name, entry := range manifest.Networks {
		if !common.IsHexAddress(entry.UpgradeAddress) {
			return &domain.ConfigError{
				Key:    fmt.Sprintf("networks.%s.upgrade_address", name),
				Value:  entry.UpgradeAddress,
				Reason: "not a hex address",
			}
		}
		if entry.ExplorerAPIURL == "" {
			return &domain.ConfigError{
				Key:    fmt.Sprintf("networks.%s.explorer_api_url", name),
				Reason: "required",
			}
		}
		cfg.Networks[strings.ToLower(name)] = &config.Network{
			Name:           name,
			ChainID:        entry.ChainID,
			UpgradeAddress: common.HexToAddress(entry.UpgradeAddress),
			ExplorerAPIURL: strings.TrimSuffix(entry.ExplorerAPIURL, "/"),
			RPCURL:         entry.RPCURL,
		}
	}

	return nil
}
