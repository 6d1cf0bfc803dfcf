package config

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/upgrade-audit/internal/domain/models"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Network selection
	Network *Network
	RPCURL  string
	APIKey  string

	// NetworkErr is why the requested network could not be resolved. Commands
	// that need a network report it; the others run without one.
	NetworkErr error

	// Local repository layout
	RepoRoot       string
	DependencyRoot string
	PreamblePath   string

	// Upgrade under audit
	UpgradeContract string
	Dependents      []models.DependentMethod

	// BlockNumber pins on-chain reads; nil means latest
	BlockNumber *big.Int

	// Execution settings
	Debug          bool
	NonInteractive bool
	Timeout        time.Duration
	RequestSpacing time.Duration

	// Networks known to this run (built-in plus manifest entries)
	Networks map[string]*Network
}

// Network represents a named deployment target. RPCURL is the raw endpoint
// from the manifest and may reference ${VARS}.
type Network struct {
	Name           string         `json:"name"`
	ChainID        uint64         `json:"chainId"`
	UpgradeAddress common.Address `json:"upgradeAddress"`
	ExplorerAPIURL string         `json:"explorerApiUrl"`
	RPCURL         string         `json:"rpcUrl,omitempty"`
}

// UpgradeDescriptor returns the descriptor of the upgrade contract itself
func (c *RuntimeConfig) UpgradeDescriptor() models.ContractDescriptor {
	d := models.ContractDescriptor{Name: c.UpgradeContract}
	if c.Network != nil {
		d.Address = c.Network.UpgradeAddress
	}
	return d
}
