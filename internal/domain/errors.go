package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/upgrade-audit/internal/domain/models"
)

// Sentinel errors for domain operations
var (
	// ErrEndOfSequence is returned by indexed on-chain readers when the index
	// is past the stored bound. It terminates enumeration and is never a failure.
	ErrEndOfSequence = errors.New("end of sequence")

	// ErrNoCode is returned when an address holds no contract code
	ErrNoCode = errors.New("no code at address")
)

// ConfigError reports an unusable configuration value (unknown network,
// missing RPC endpoint, bad manifest entry).
type ConfigError struct {
	Key    string
	Value  string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid configuration %s: %s", e.Key, e.Reason)
	}
	return fmt.Sprintf("invalid configuration %s=%q: %s", e.Key, e.Value, e.Reason)
}

// FetchError is returned when the block explorer does not return a usable
// verified source payload.
type FetchError struct {
	Address common.Address
	Message string
	// Payload is the raw response body, kept for diagnosis
	Payload string
	Err     error
}

func (e *FetchError) Error() string {
	msg := fmt.Sprintf("failed to get verified source for %s", e.Address.Hex())
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// StructuralError is returned when a contract's verified source is a single
// flat file instead of a multi-file bundle.
type StructuralError struct {
	Contract models.ContractDescriptor
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("unexpected single-file source found at %s for %s",
		e.Contract.Address.Hex(), e.Contract.Name)
}

// MismatchError carries the first path whose verified content differs from
// the content reconstructed from the local repository.
type MismatchError struct {
	Contract models.ContractDescriptor
	Path     string
	Expected string
	Actual   string
}

func (e *MismatchError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "unexpected source file %s", e.Path)
	if e.Contract.Name != "" {
		fmt.Fprintf(&b, " found at %s for %s", e.Contract.Address.Hex(), e.Contract.Name)
	}
	return b.String()
}

// InvariantError is returned when the upgrade contract is not locked.
type InvariantError struct {
	Address common.Address
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("upgrade contract %s is not locked", e.Address.Hex())
}
