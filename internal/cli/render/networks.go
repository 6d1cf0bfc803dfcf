package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/trebuchet-org/upgrade-audit/internal/usecase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NetworksRenderer renders network lists
type NetworksRenderer struct {
	out io.Writer
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer) *NetworksRenderer {
	return &NetworksRenderer{
		out: out,
	}
}

// RenderNetworksList renders the networks an upgrade can be audited on
func (r *NetworksRenderer) RenderNetworksList(result *usecase.ListNetworksResult) error {
	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, "No networks configured")
		return nil
	}

	fmt.Fprintln(r.out, "🌐 Available Networks:")
	fmt.Fprintln(r.out)

	title := cases.Title(language.English)
	for _, status := range result.Networks {
		if status.Error != nil {
			fmt.Fprintf(r.out, "  ❌ %s - Error: %v\n", status.Name, status.Error)
			continue
		}
		network := status.Network
		fmt.Fprintf(r.out, "  ✅ %s - Chain ID: %d\n", color.New(color.Bold).Sprint(title.String(network.Name)), network.ChainID)
		fmt.Fprintf(r.out, "      Upgrade:  %s\n", network.UpgradeAddress.Hex())
		fmt.Fprintf(r.out, "      Explorer: %s\n", network.ExplorerAPIURL)
	}

	return nil
}
