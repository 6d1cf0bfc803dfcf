package cli

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearAuditEnv keeps the caller's shell from leaking into command tests
func clearAuditEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"NETWORK", "ETH_RPC", "ETHERSCAN_API_KEY",
		"UPGRADE_AUDIT_NETWORK", "UPGRADE_AUDIT_RPC_URL", "UPGRADE_AUDIT_ETHERSCAN_API_KEY",
		"UPGRADE_AUDIT_MANIFEST",
	} {
		t.Setenv(name, "")
	}
	color.NoColor = true
}

func executeRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootCmd_Commands(t *testing.T) {
	cmd := NewRootCmd()

	names := make([]string, 0, len(cmd.Commands()))
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "verify")
	assert.Contains(t, names, "networks")
	assert.Contains(t, names, "version")

	for _, flag := range []string{"network", "rpc-url", "etherscan-api-key", "repo-root", "dependency-root", "preamble-path", "manifest", "block", "debug", "non-interactive", "timeout"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), flag)
	}
}

func TestVersionCmd(t *testing.T) {
	out, _, err := executeRoot(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "upgrade-audit version dev")
}

func TestNetworksCmd(t *testing.T) {
	clearAuditEnv(t)

	out, _, err := executeRoot(t, "networks", "--non-interactive")
	require.NoError(t, err)
	assert.Contains(t, out, "Holesky - Chain ID: 17000")
	assert.Contains(t, out, "Mainnet - Chain ID: 1")
}

func TestVerifyCmd_UnknownNetwork(t *testing.T) {
	clearAuditEnv(t)

	_, errOut, err := executeRoot(t, "verify", "--network", "goerli", "--non-interactive")

	assert.ErrorIs(t, err, ErrAuditFailed)
	assert.Contains(t, errOut, `network="goerli"`)
	assert.Contains(t, errOut, "holesky, mainnet")
}

func TestNetworksCmd_UnknownSelectedNetwork(t *testing.T) {
	clearAuditEnv(t)
	t.Setenv("NETWORK", "goerli")

	out, _, err := executeRoot(t, "networks", "--non-interactive")
	require.NoError(t, err)
	assert.Contains(t, out, "Holesky - Chain ID: 17000")
}

func TestVerifyCmd_MissingRPC(t *testing.T) {
	clearAuditEnv(t)

	_, errOut, err := executeRoot(t, "verify", "--network", "holesky", "--etherscan-api-key", "key", "--non-interactive")

	assert.ErrorIs(t, err, ErrAuditFailed)
	assert.Contains(t, errOut, "rpc_url")
}
