package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/upgrade-audit/internal/cli/render"
)

// NewNetworksCmd creates the networks command
func NewNetworksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "networks",
		Short: "List the networks an upgrade can be audited on",
		Long: `List the built-in networks and any added by the audit manifest, with the
upgrade contract address and explorer API used for each.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Get app from context
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			// Run use case
			result, err := app.ListNetworks.Run(cmd.Context())
			if err != nil {
				return err
			}

			// Render output
			renderer := render.NewNetworksRenderer(cmd.OutOrStdout())
			return renderer.RenderNetworksList(result)
		},
	}

	return cmd
}
