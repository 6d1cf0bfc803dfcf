package config

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/upgrade-audit/internal/domain"
	"github.com/trebuchet-org/upgrade-audit/internal/domain/config"
)

func TestNetworkResolver_Resolve(t *testing.T) {
	resolver := NewNetworkResolver(config.DefaultNetworks())

	tests := []struct {
		name        string
		input       string
		wantChainID uint64
		wantAddress string
		wantAPI     string
		wantErr     bool
	}{
		{
			name:        "mainnet",
			input:       "mainnet",
			wantChainID: 1,
			wantAddress: "0xc2C81454427b1E53Fdf5d3B45561e3c18F90f9eD",
			wantAPI:     "https://api.etherscan.io",
		},
		{
			name:        "holesky",
			input:       "holesky",
			wantChainID: 17000,
			wantAddress: "0x761C86751255d8eAc9727392DCf3C77831e2A347",
			wantAPI:     "https://api-holesky.etherscan.io",
		},
		{
			name:        "case insensitive",
			input:       "Holesky",
			wantChainID: 17000,
			wantAddress: "0x761C86751255d8eAc9727392DCf3C77831e2A347",
			wantAPI:     "https://api-holesky.etherscan.io",
		},
		{
			name:    "unknown network",
			input:   "goerli",
			wantErr: true,
		},
		{
			name:    "empty network",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			network, err := resolver.Resolve(tt.input)
			if tt.wantErr {
				var cfgErr *domain.ConfigError
				require.ErrorAs(t, err, &cfgErr)
				assert.Equal(t, "network", cfgErr.Key)
				assert.Nil(t, network)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantChainID, network.ChainID)
			assert.Equal(t, common.HexToAddress(tt.wantAddress), network.UpgradeAddress)
			assert.Equal(t, tt.wantAPI, network.ExplorerAPIURL)
		})
	}
}

func TestNetworkResolver_UnknownListsKnownNetworks(t *testing.T) {
	resolver := NewNetworkResolver(config.DefaultNetworks())

	_, err := resolver.Resolve("sepolia")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "holesky, mainnet")
}

func TestNetworkResolver_Networks(t *testing.T) {
	resolver := NewNetworkResolver(config.DefaultNetworks())
	resolver.Add("devnet", &config.Network{ChainID: 31337, ExplorerAPIURL: "http://localhost:4000"})

	networks := resolver.Networks()
	require.Len(t, networks, 3)
	assert.Equal(t, "devnet", networks[0].Name)
	assert.Equal(t, "holesky", networks[1].Name)
	assert.Equal(t, "mainnet", networks[2].Name)
}
