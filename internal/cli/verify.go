package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/upgrade-audit/internal/cli/render"
)

// NewVerifyCmd creates the verify command
func NewVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Verify the upgrade contract and every contract it installs",
		Long: `Verify fetches the verified sources of the upgrade contract from the block
explorer and compares every file with the local repository. It then reads the
dependent contract addresses from the upgrade contract and verifies each of them
in turn, prints the ETH matched corrections and checks that the upgrade is locked.

The first failure stops the run and exits non-zero.`,
		Example: `  NETWORK=holesky ETH_RPC=https://rpc.holesky.example ETHERSCAN_API_KEY=... upgrade-audit verify
  upgrade-audit verify --network mainnet --repo-root ../rocketpool --block 20000000`,
		Args: cobra.NoArgs,
		RunE: runVerify,
	}
}

func runVerify(cmd *cobra.Command, args []string) error {
	app, err := getApp(cmd)
	if err != nil {
		return err
	}

	result, err := app.VerifyUpgrade.Run(cmd.Context())

	renderer := render.NewVerifyRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr())
	renderer.RenderResult(result)
	if err != nil {
		renderer.RenderError(err)
		return ErrAuditFailed
	}
	return nil
}
