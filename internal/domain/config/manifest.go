package config

import "github.com/trebuchet-org/upgrade-audit/internal/domain/models"

// Manifest represents an audit manifest file (upgrade.toml)
type Manifest struct {
	UpgradeContract string                     `toml:"upgrade_contract,omitempty"`
	Dependents      []models.DependentMethod   `toml:"dependents,omitempty"`
	Networks        map[string]ManifestNetwork `toml:"networks,omitempty"`
}

// ManifestNetwork represents a [networks.<name>] table in the manifest
type ManifestNetwork struct {
	ChainID        uint64 `toml:"chain_id"`
	UpgradeAddress string `toml:"upgrade_address"`
	ExplorerAPIURL string `toml:"explorer_api_url"`
	RPCURL         string `toml:"rpc_url,omitempty"`
}
