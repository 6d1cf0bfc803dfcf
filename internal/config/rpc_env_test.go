package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/upgrade-audit/internal/domain"
	"github.com/trebuchet-org/upgrade-audit/internal/domain/config"
)

func TestDetectEnvVar(t *testing.T) {
	tests := []struct {
		name       string
		rawValue   string
		wantEnvVar string
		wantIsVar  bool
	}{
		{
			name:       "simple env var",
			rawValue:   "${HOLESKY_RPC_URL}",
			wantEnvVar: "HOLESKY_RPC_URL",
			wantIsVar:  true,
		},
		{
			name:      "hardcoded URL",
			rawValue:  "https://ethereum-holesky.publicnode.com",
			wantIsVar: false,
		},
		{
			name:      "env var with path suffix",
			rawValue:  "${MY_VAR}/path",
			wantIsVar: false,
		},
		{
			name:      "empty string",
			rawValue:  "",
			wantIsVar: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			envVar, isVar := DetectEnvVar(tt.rawValue)
			assert.Equal(t, tt.wantEnvVar, envVar)
			assert.Equal(t, tt.wantIsVar, isVar)
		})
	}
}

func TestGenerateEnvVarName(t *testing.T) {
	assert.Equal(t, "HOLESKY_RPC_URL", GenerateEnvVarName("holesky"))
	assert.Equal(t, "BASE_SEPOLIA_RPC_URL", GenerateEnvVarName("base-sepolia"))
	assert.Equal(t, "OP_MAINNET_RPC_URL", GenerateEnvVarName("op.mainnet"))
}

func TestResolveNetworkRPC(t *testing.T) {
	t.Run("falls back to conventional variable", func(t *testing.T) {
		t.Setenv("HOLESKY_RPC_URL", "http://holesky.local:8545")

		url, err := ResolveNetworkRPC(&config.Network{Name: "holesky"})
		require.NoError(t, err)
		assert.Equal(t, "http://holesky.local:8545", url)
	})

	t.Run("expands env reference", func(t *testing.T) {
		t.Setenv("MY_NODE", "http://node.local")

		url, err := ResolveNetworkRPC(&config.Network{Name: "holesky", RPCURL: "${MY_NODE}"})
		require.NoError(t, err)
		assert.Equal(t, "http://node.local", url)
	})

	t.Run("expands embedded reference", func(t *testing.T) {
		t.Setenv("INFURA_KEY", "abc123")

		url, err := ResolveNetworkRPC(&config.Network{Name: "mainnet", RPCURL: "https://mainnet.infura.io/v3/${INFURA_KEY}"})
		require.NoError(t, err)
		assert.Equal(t, "https://mainnet.infura.io/v3/abc123", url)
	})

	t.Run("unset reference is a config error", func(t *testing.T) {
		t.Setenv("MISSING_NODE", "")

		_, err := ResolveNetworkRPC(&config.Network{Name: "holesky", RPCURL: "${MISSING_NODE}"})
		var cfgErr *domain.ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "networks.holesky.rpc_url", cfgErr.Key)
	})
}
