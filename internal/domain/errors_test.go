package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/trebuchet-org/upgrade-audit/internal/domain/models"
)

func TestErrorMessages(t *testing.T) {
	address := common.HexToAddress("0x761C86751255d8eAc9727392DCf3C77831e2A347")
	contract := models.ContractDescriptor{Name: "RocketUpgradeOneDotThreeDotOne", Address: address}

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "config error without value",
			err:  &ConfigError{Key: "rpc_url", Reason: "required"},
			want: "invalid configuration rpc_url: required",
		},
		{
			name: "config error with value",
			err:  &ConfigError{Key: "network", Value: "goerli", Reason: "unknown network"},
			want: `invalid configuration network="goerli": unknown network`,
		},
		{
			name: "fetch error",
			err:  &FetchError{Address: address, Message: "NOTOK"},
			want: "failed to get verified source for 0x761C86751255d8eAc9727392DCf3C77831e2A347: NOTOK",
		},
		{
			name: "structural error",
			err:  &StructuralError{Contract: contract},
			want: "unexpected single-file source found at 0x761C86751255d8eAc9727392DCf3C77831e2A347 for RocketUpgradeOneDotThreeDotOne",
		},
		{
			name: "mismatch without contract",
			err:  &MismatchError{Path: "contracts/A.sol"},
			want: "unexpected source file contracts/A.sol",
		},
		{
			name: "mismatch with contract",
			err:  &MismatchError{Contract: contract, Path: "contracts/A.sol"},
			want: "unexpected source file contracts/A.sol found at 0x761C86751255d8eAc9727392DCf3C77831e2A347 for RocketUpgradeOneDotThreeDotOne",
		},
		{
			name: "invariant error",
			err:  &InvariantError{Address: address},
			want: "upgrade contract 0x761C86751255d8eAc9727392DCf3C77831e2A347 is not locked",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestFetchErrorUnwrap(t *testing.T) {
	cause := errors.New("connection reset by peer")
	err := fmt.Errorf("verifying: %w", &FetchError{Err: cause})

	assert.ErrorIs(t, err, cause)

	var fetchErr *FetchError
	assert.ErrorAs(t, err, &fetchErr)
}
