package blockchain

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/trebuchet-org/upgrade-audit/internal/domain"
	"github.com/trebuchet-org/upgrade-audit/internal/usecase"
)

// ChainReader is the subset of ethclient used to bind the upgrade contract
type ChainReader interface {
	ethereum.ContractCaller
	ChainID(ctx context.Context) (*big.Int, error)
	CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error)
}

// ConnectorAdapter dials an RPC endpoint and binds the upgrade contract on it
type ConnectorAdapter struct{}

// NewConnectorAdapter creates a new connector adapter
func NewConnectorAdapter() *ConnectorAdapter {
	return &ConnectorAdapter{}
}

// Connect establishes a connection and checks it points at the expected deployment
func (c *ConnectorAdapter) Connect(ctx context.Context, target usecase.ChainTarget) (usecase.UpgradeContract, error) {
	client, err := ethclient.DialContext(ctx, target.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC: %w", err)
	}

	reader, err := Bind(ctx, client, target)
	if err != nil {
		client.Close()
		return nil, err
	}
	reader.closer = client.Close
	return reader, nil
}

// Bind checks the chain ID and the code at the upgrade address, then returns
// a reader for the upgrade contract
func Bind(ctx context.Context, chain ChainReader, target usecase.ChainTarget) (*UpgradeReader, error) {
	network := target.Network
	if network == nil {
		return nil, &domain.ConfigError{Key: "network", Reason: "no network selected"}
	}

	// Verify chain ID matches
	chainID, err := chain.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}
	if network.ChainID != 0 && chainID.Uint64() != network.ChainID {
		return nil, &domain.ConfigError{
			Key:    "network",
			Value:  network.Name,
			Reason: fmt.Sprintf("RPC endpoint reports chain ID %d, expected %d", chainID.Uint64(), network.ChainID),
		}
	}

	code, err := chain.CodeAt(ctx, network.UpgradeAddress, target.BlockNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to check code: %w", err)
	}
	if len(code) == 0 {
		return nil, fmt.Errorf("upgrade contract %s on %s: %w", network.UpgradeAddress.Hex(), network.Name, domain.ErrNoCode)
	}

	return NewUpgradeReader(chain, network.UpgradeAddress, target.Dependents, target.BlockNumber)
}

// Ensure the adapter implements the interface
var _ usecase.ChainConnector = (*ConnectorAdapter)(nil)

// Ensure the RPC client satisfies the reader interface
var _ ChainReader = (*ethclient.Client)(nil)
