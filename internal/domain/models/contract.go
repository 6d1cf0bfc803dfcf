package models

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// ContractDescriptor names a deployed contract that is subject to source verification
type ContractDescriptor struct {
	Name    string         `json:"name"`
	Address common.Address `json:"address"`
}

func (c ContractDescriptor) String() string {
	return fmt.Sprintf("%s (%s)", c.Name, c.Address.Hex())
}

// DependentMethod maps a zero-argument view method on the upgrade contract to
// the logical name of the contract whose address it returns
type DependentMethod struct {
	Method   string `json:"method" toml:"method"`
	Contract string `json:"contract" toml:"contract"`
}
