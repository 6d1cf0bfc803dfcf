package config

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/upgrade-audit/internal/domain/models"
)

// DefaultUpgradeContract is the logical name of the upgrade contract audited by default
const DefaultUpgradeContract = "RocketUpgradeOneDotThreeDotOne"

// DefaultDependents lists the view methods of the upgrade contract that point
// at newly deployed contracts. Order is verification order.
var DefaultDependents = []models.DependentMethod{
	{Method: "newRocketDAOProposal", Contract: "RocketDAOProposal"},
	{Method: "newRocketDAOProtocolProposal", Contract: "RocketDAOProtocolProposal"},
	{Method: "newRocketDAOProtocolVerifier", Contract: "RocketDAOProtocolVerifier"},
	{Method: "newRocketDAOProtocolSettingsProposals", Contract: "RocketDAOProtocolSettingsProposals"},
	{Method: "newRocketDAOProtocolSettingsAuction", Contract: "RocketDAOProtocolAuction"},
	{Method: "newRocketMinipoolManager", Contract: "RocketMinipoolManager"},
	{Method: "newRocketNodeStaking", Contract: "RocketNodeStaking"},
	{Method: "newRocketMinipoolDelegate", Contract: "RocketMinipoolDelegate"},
	{Method: "newRocketNodeDeposit", Contract: "RocketNodeDeposit"},
	{Method: "newRocketNetworkVoting", Contract: "RocketNetworkVoting"},
}

// DefaultNetworks are the networks the default upgrade was deployed to
func DefaultNetworks() map[string]*Network {
	return map[string]*Network{
		"mainnet": {
			Name:           "mainnet",
			ChainID:        1,
			UpgradeAddress: common.HexToAddress("0xc2C81454427b1E53Fdf5d3B45561e3c18F90f9eD"),
			ExplorerAPIURL: "https://api.etherscan.io",
		},
		"holesky": {
			Name:           "holesky",
			ChainID:        17000,
			UpgradeAddress: common.HexToAddress("0x761C86751255d8eAc9727392DCf3C77831e2A347"),
			ExplorerAPIURL: "https://api-holesky.etherscan.io",
		},
	}
}
