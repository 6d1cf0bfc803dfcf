package usecase

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/upgrade-audit/internal/domain"
	"github.com/trebuchet-org/upgrade-audit/internal/domain/config"
	"github.com/trebuchet-org/upgrade-audit/internal/domain/models"
)

type mockFetcher struct {
	bundles map[common.Address]*models.SourceBundle
	errs    map[common.Address]error
	calls   []common.Address
}

func (m *mockFetcher) FetchSources(ctx context.Context, address common.Address) (*models.SourceBundle, error) {
	m.calls = append(m.calls, address)
	if err, ok := m.errs[address]; ok {
		return nil, err
	}
	bundle, ok := m.bundles[address]
	if !ok {
		return nil, &domain.FetchError{Address: address, Message: "NOTOK"}
	}
	return bundle, nil
}

// mockTrees serves expected content from a flat path map
type mockTrees struct {
	files       map[string]string
	preamble    string
	preambleErr error
	builds      int
}

func (m *mockTrees) Preamble() (string, error) {
	return m.preamble, m.preambleErr
}

func (m *mockTrees) Build(paths []string, preamble string) (models.ExpectedBundle, error) {
	m.builds++
	expected := make(models.ExpectedBundle, len(paths))
	for _, path := range paths {
		content, ok := m.files[path]
		if !ok {
			return nil, fmt.Errorf("failed to read %s: no such file", path)
		}
		expected[path] = content
	}
	return expected, nil
}

type mockUpgrade struct {
	dependents    map[string]common.Address
	dependentErr  error
	corrections   []models.Correction
	correctionErr error
	locked        bool
	lockedErr     error
	calls         []string
	closed        bool
}

func (m *mockUpgrade) DependentAddress(ctx context.Context, method string) (common.Address, error) {
	m.calls = append(m.calls, method)
	if m.dependentErr != nil {
		return common.Address{}, m.dependentErr
	}
	address, ok := m.dependents[method]
	if !ok {
		return common.Address{}, fmt.Errorf("execution reverted")
	}
	return address, nil
}

func (m *mockUpgrade) Correction(ctx context.Context, index uint64) (*models.Correction, error) {
	m.calls = append(m.calls, fmt.Sprintf("corrections(%d)", index))
	if m.correctionErr != nil {
		return nil, m.correctionErr
	}
	if index >= uint64(len(m.corrections)) {
		return nil, domain.ErrEndOfSequence
	}
	c := m.corrections[index]
	return &c, nil
}

func (m *mockUpgrade) Locked(ctx context.Context) (bool, error) {
	m.calls = append(m.calls, "locked")
	return m.locked, m.lockedErr
}

func (m *mockUpgrade) Close() {
	m.closed = true
}

type mockConnector struct {
	upgrade *mockUpgrade
	err     error
	target  ChainTarget
	calls   int
}

func (m *mockConnector) Connect(ctx context.Context, target ChainTarget) (UpgradeContract, error) {
	m.calls++
	m.target = target
	if m.err != nil {
		return nil, m.err
	}
	return m.upgrade, nil
}

type recordingProgress struct {
	events []ProgressEvent
}

func (r *recordingProgress) OnProgress(ctx context.Context, event ProgressEvent) {
	r.events = append(r.events, event)
}

func (r *recordingProgress) last() ProgressEvent {
	if len(r.events) == 0 {
		return ProgressEvent{}
	}
	return r.events[len(r.events)-1]
}

func (r *recordingProgress) verifiedNames() []string {
	var names []string
	for _, e := range r.events {
		if e.Stage != ProgressVerified {
			continue
		}
		if c, ok := e.Metadata.(models.ContractDescriptor); ok {
			names = append(names, c.Name)
		}
	}
	return names
}

func correction(address string, wei int64) models.Correction {
	return models.Correction{
		Address: common.HexToAddress(address),
		Amount:  big.NewInt(wei),
	}
}

func testNetwork() *config.Network {
	return &config.Network{
		Name:           "holesky",
		ChainID:        17000,
		UpgradeAddress: common.HexToAddress("0x761C86751255d8eAc9727392DCf3C77831e2A347"),
		ExplorerAPIURL: "https://api-holesky.etherscan.io",
	}
}
