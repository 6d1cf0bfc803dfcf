package blockchain

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/trebuchet-org/upgrade-audit/internal/domain"
	"github.com/trebuchet-org/upgrade-audit/internal/domain/models"
	"github.com/trebuchet-org/upgrade-audit/internal/usecase"
)

const (
	lockedMethod      = "locked"
	correctionsMethod = "corrections"
)

// revertErrorCode is the JSON-RPC code nodes attach to a reverted eth_call
const revertErrorCode = 3

// revertMessages are node error messages that mean the call itself failed in
// the EVM, as opposed to a transport or node failure
var revertMessages = []string{
	"execution reverted",
	"invalid opcode",
	"vm execution error",
}

// UpgradeReader reads the upgrade contract through a dynamically built ABI
type UpgradeReader struct {
	caller  ethereum.ContractCaller
	address common.Address
	abi     abi.ABI
	block   *big.Int
	closer  func()
}

// NewUpgradeReader binds the upgrade contract at address. Every read is pinned
// to block, or to latest when block is nil.
func NewUpgradeReader(caller ethereum.ContractCaller, address common.Address, dependents []models.DependentMethod, block *big.Int) (*UpgradeReader, error) {
	upgradeABI, err := BuildUpgradeABI(dependents)
	if err != nil {
		return nil, err
	}
	return &UpgradeReader{
		caller:  caller,
		address: address,
		abi:     upgradeABI,
		block:   block,
	}, nil
}

// BuildUpgradeABI declares locked(), corrections(uint256) and one
// zero-argument address getter per dependent method
func BuildUpgradeABI(dependents []models.DependentMethod) (abi.ABI, error) {
	addressType, _ := abi.NewType("address", "", nil)
	boolType, _ := abi.NewType("bool", "", nil)
	uint256Type, _ := abi.NewType("uint256", "", nil)
	int256Type, _ := abi.NewType("int256", "", nil)

	methods := map[string]abi.Method{
		lockedMethod: abi.NewMethod(lockedMethod, lockedMethod, abi.Function, "view", false, false,
			nil,
			abi.Arguments{{Name: "", Type: boolType}},
		),
		correctionsMethod: abi.NewMethod(correctionsMethod, correctionsMethod, abi.Function, "view", false, false,
			abi.Arguments{{Name: "index", Type: uint256Type}},
			abi.Arguments{{Name: "account", Type: addressType}, {Name: "amount", Type: int256Type}},
		),
	}

	for _, d := range dependents {
		if _, exists := methods[d.Method]; exists {
			return abi.ABI{}, fmt.Errorf("method %s declared more than once", d.Method)
		}
		methods[d.Method] = abi.NewMethod(d.Method, d.Method, abi.Function, "view", false, false,
			nil,
			abi.Arguments{{Name: "", Type: addressType}},
		)
	}

	return abi.ABI{Methods: methods}, nil
}

// DependentAddress calls a zero-argument address getter
func (r *UpgradeReader) DependentAddress(ctx context.Context, method string) (common.Address, error) {
	if _, ok := r.abi.Methods[method]; !ok {
		return common.Address{}, fmt.Errorf("method %s is not declared", method)
	}

	values, err := r.call(ctx, method)
	if err != nil {
		return common.Address{}, err
	}
	address, ok := values[0].(common.Address)
	if !ok {
		return common.Address{}, fmt.Errorf("unexpected %s() return type %T", method, values[0])
	}
	if address == (common.Address{}) {
		return common.Address{}, fmt.Errorf("%s() returned the zero address", method)
	}
	return address, nil
}

// Correction reads corrections(index). A reverted call marks the end of the
// list and is reported as domain.ErrEndOfSequence.
func (r *UpgradeReader) Correction(ctx context.Context, index uint64) (*models.Correction, error) {
	values, err := r.call(ctx, correctionsMethod, new(big.Int).SetUint64(index))
	if err != nil {
		if IsRevert(err) {
			return nil, domain.ErrEndOfSequence
		}
		return nil, err
	}

	account, ok := values[0].(common.Address)
	if !ok {
		return nil, fmt.Errorf("unexpected corrections() account type %T", values[0])
	}
	amount, ok := values[1].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("unexpected corrections() amount type %T", values[1])
	}

	return &models.Correction{
		Index:   index,
		Address: account,
		Amount:  amount,
	}, nil
}

// Locked reads locked()
func (r *UpgradeReader) Locked(ctx context.Context) (bool, error) {
	values, err := r.call(ctx, lockedMethod)
	if err != nil {
		return false, err
	}
	locked, ok := values[0].(bool)
	if !ok {
		return false, fmt.Errorf("unexpected locked() return type %T", values[0])
	}
	return locked, nil
}

// Close releases the underlying client, if the reader owns one
func (r *UpgradeReader) Close() {
	if r.closer != nil {
		r.closer()
	}
}

func (r *UpgradeReader) call(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	input, err := r.abi.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s: %w", method, err)
	}

	output, err := r.caller.CallContract(ctx, ethereum.CallMsg{To: &r.address, Data: input}, r.block)
	if err != nil {
		return nil, err
	}

	values, err := r.abi.Unpack(method, output)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack %s: %w", method, err)
	}
	return values, nil
}

// IsRevert reports whether err is the EVM rejecting a call rather than a
// failure to reach the node
func IsRevert(err error) bool {
	if err == nil {
		return false
	}
	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) && rpcErr.ErrorCode() == revertErrorCode {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, m := range revertMessages {
		if strings.Contains(msg, m) {
			return true
		}
	}
	return false
}

// Ensure the reader implements the interface
var _ usecase.UpgradeContract = (*UpgradeReader)(nil)
