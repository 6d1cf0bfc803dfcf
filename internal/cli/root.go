package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/upgrade-audit/internal/adapters/progress"
	"github.com/trebuchet-org/upgrade-audit/internal/app"
	"github.com/trebuchet-org/upgrade-audit/internal/config"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// ErrAuditFailed is returned once a failed audit has already been reported
var ErrAuditFailed = errors.New("audit failed")

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "upgrade-audit",
		Short: "Audit a deployed protocol upgrade against its source repository",
		Long: `upgrade-audit checks that an on-chain upgrade contract, and every contract it
installs, was verified on the block explorer with exactly the sources in a local
checkout of the protocol repository. It then prints the ETH matched corrections
stored on the upgrade contract and checks that the contract is locked.

Running upgrade-audit without a subcommand performs verify.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			workDir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}

			// Set up viper with flags bound
			v := config.SetupViper(workDir, cmd)

			interactive := !v.GetBool("non_interactive") && isInteractive(cmd.OutOrStdout())
			sink := progress.NewVerifyProgress(cmd.OutOrStdout(), interactive)

			// Initialize app with DI
			appInstance, err := app.InitApp(v, sink)
			if err != nil {
				return err
			}

			// Store app in context
			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			// Add timeout if configured
			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				// Store cancel func to be called on command completion
				cmd.PostRun = func(cmd *cobra.Command, args []string) {
					cancel()
				}
			}

			cmd.SetContext(ctx)

			return nil
		},
		RunE: runVerify,
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable spinners and other interactive output")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Abort the run after this long (default 10m)")
	rootCmd.PersistentFlags().String("manifest", "", "TOML audit manifest overriding the upgrade and dependent contracts")

	// Audit flags
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network the upgrade is deployed on (mainnet, holesky)")
	rootCmd.PersistentFlags().String("rpc-url", "", "Ethereum JSON-RPC endpoint (env ETH_RPC)")
	rootCmd.PersistentFlags().String("etherscan-api-key", "", "Etherscan API key (env ETHERSCAN_API_KEY)")
	rootCmd.PersistentFlags().String("repo-root", "", "Local checkout of the protocol repository (default rocketpool)")
	rootCmd.PersistentFlags().String("dependency-root", "", "Directory holding @-scoped dependencies (default <repo-root>/node_modules)")
	rootCmd.PersistentFlags().String("preamble-path", "", "Header prepended to repository sources (default <repo-root>/scripts/preamble.sol)")
	rootCmd.PersistentFlags().String("block", "", "Block number to pin on-chain reads to (default latest)")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	verifyCmd := NewVerifyCmd()
	verifyCmd.GroupID = "main"
	rootCmd.AddCommand(verifyCmd)

	networksCmd := NewNetworksCmd()
	networksCmd.GroupID = "management"
	rootCmd.AddCommand(networksCmd)

	// Version command
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// isInteractive reports whether w is a terminal that should get spinners
func isInteractive(w io.Writer) bool {
	if os.Getenv("CI") == "true" || os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}
