package models

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Correction is one ETH matched correction stored on the upgrade contract
type Correction struct {
	// Index is the zero-based index passed to corrections(uint256)
	Index   uint64
	Address common.Address
	Amount  *big.Int
}

// DisplayIndex is the one-based position shown to operators
func (c Correction) DisplayIndex() uint64 {
	return c.Index + 1
}

// UpgradeState is the post-deployment state read from the upgrade contract
type UpgradeState struct {
	Locked bool
}
