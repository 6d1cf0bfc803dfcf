package adapters

import (
	"github.com/google/wire"
	"github.com/trebuchet-org/upgrade-audit/internal/adapters/blockchain"
	internalconfig "github.com/trebuchet-org/upgrade-audit/internal/adapters/config"
	"github.com/trebuchet-org/upgrade-audit/internal/adapters/explorer"
	"github.com/trebuchet-org/upgrade-audit/internal/adapters/fs"
	"github.com/trebuchet-org/upgrade-audit/internal/usecase"
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewExpectedTreeAdapter,
	wire.Bind(new(usecase.ExpectedTreeBuilder), new(*fs.ExpectedTreeAdapter)),
)

// ExplorerSet provides the block explorer client
var ExplorerSet = wire.NewSet(
	explorer.ProvideLimiter,
	explorer.NewClient,
	wire.Bind(new(usecase.SourceFetcher), new(*explorer.Client)),
)

// ConfigSet provides configuration-based implementations
var ConfigSet = wire.NewSet(
	internalconfig.NewNetworkResolverAdapter,
	wire.Bind(new(usecase.NetworkResolver), new(*internalconfig.NetworkResolverAdapter)),
)

// BlockchainSet provides blockchain-based implementations
var BlockchainSet = wire.NewSet(
	blockchain.NewConnectorAdapter,
	wire.Bind(new(usecase.ChainConnector), new(*blockchain.ConnectorAdapter)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	FSSet,
	ExplorerSet,
	ConfigSet,
	BlockchainSet,
)
