package usecase

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/upgrade-audit/internal/domain/config"
	"github.com/trebuchet-org/upgrade-audit/internal/domain/models"
)

// SourceFetcher retrieves verified source bundles from a block explorer
type SourceFetcher interface {
	FetchSources(ctx context.Context, address common.Address) (*models.SourceBundle, error)
}

// ExpectedTreeBuilder reconstructs the source tree a contract should have been
// verified with from the local repository
type ExpectedTreeBuilder interface {
	Preamble() (string, error)
	Build(paths []string, preamble string) (models.ExpectedBundle, error)
}

// ChainTarget describes what to bind on-chain
type ChainTarget struct {
	RPCURL     string
	Network    *config.Network
	Dependents []models.DependentMethod
	// BlockNumber pins every read; nil reads latest
	BlockNumber *big.Int
}

// ChainConnector connects to a node and binds the upgrade contract
type ChainConnector interface {
	Connect(ctx context.Context, target ChainTarget) (UpgradeContract, error)
}

// UpgradeContract reads state from the deployed upgrade contract
type UpgradeContract interface {
	// DependentAddress calls a zero-argument address getter
	DependentAddress(ctx context.Context, method string) (common.Address, error)
	// Correction reads corrections(index). Past the last entry it returns
	// domain.ErrEndOfSequence.
	Correction(ctx context.Context, index uint64) (*models.Correction, error)
	Locked(ctx context.Context) (bool, error)
	Close()
}

// NetworkResolver lists the networks an upgrade can be audited on
type NetworkResolver interface {
	Names() []string
	Resolve(networkName string) (*config.Network, error)
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage    string
	Current  int
	Total    int
	Message  string
	Spinner  bool
	Metadata interface{}
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
