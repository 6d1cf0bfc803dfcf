package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/trebuchet-org/upgrade-audit/internal/domain"
	"github.com/trebuchet-org/upgrade-audit/internal/domain/config"
	"github.com/trebuchet-org/upgrade-audit/internal/domain/models"
)

// VerifyStage is the position of an audit run in its fixed sequence
type VerifyStage string

const (
	StageStarting                 VerifyStage = "Starting"
	StageVerifyingUpgradeContract VerifyStage = "VerifyingUpgradeContract"
	StageDiscoveringDependents    VerifyStage = "DiscoveringDependents"
	StageVerifyingDependents      VerifyStage = "VerifyingDependents"
	StageReportingCorrections     VerifyStage = "ReportingCorrections"
	StageCheckingLock             VerifyStage = "CheckingLock"
	StageDone                     VerifyStage = "Done"
	StageFailed                   VerifyStage = "Failed"
)

// Progress event stages emitted by VerifyUpgrade
const (
	ProgressVerifying = "verifying"
	ProgressVerified  = "verified"
	ProgressReading   = "reading"
	ProgressFailed    = "failed"
	ProgressDone      = "done"
)

// VerifyUpgradeResult describes how far an audit run got. It is returned even
// when the run fails so callers can report partial progress.
type VerifyUpgradeResult struct {
	Stage       VerifyStage
	FailedAt    VerifyStage
	Upgrade     models.ContractDescriptor
	Dependents  []models.ContractDescriptor
	Verified    []models.ContractDescriptor
	Corrections []models.Correction
	State       *models.UpgradeState
}

// VerifyUpgrade audits an upgrade contract and the contracts it installs
type VerifyUpgrade struct {
	config    *config.RuntimeConfig
	fetcher   SourceFetcher
	trees     ExpectedTreeBuilder
	connector ChainConnector
	progress  ProgressSink
	log       *slog.Logger
}

// NewVerifyUpgrade creates a new VerifyUpgrade use case
func NewVerifyUpgrade(
	cfg *config.RuntimeConfig,
	fetcher SourceFetcher,
	trees ExpectedTreeBuilder,
	connector ChainConnector,
	progress ProgressSink,
	log *slog.Logger,
) *VerifyUpgrade {
	if progress == nil {
		progress = NopProgress{}
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &VerifyUpgrade{
		config:    cfg,
		fetcher:   fetcher,
		trees:     trees,
		connector: connector,
		progress:  progress,
		log:       log,
	}
}

// Run executes the audit. The first failure ends the run.
func (uc *VerifyUpgrade) Run(ctx context.Context) (*VerifyUpgradeResult, error) {
	result := &VerifyUpgradeResult{Upgrade: uc.config.UpgradeDescriptor()}

	uc.enter(result, StageStarting)
	if err := uc.validate(); err != nil {
		return uc.fail(ctx, result, err)
	}
	preamble, err := uc.trees.Preamble()
	if err != nil {
		return uc.fail(ctx, result, err)
	}
	upgrade, err := uc.connector.Connect(ctx, ChainTarget{
		RPCURL:      uc.config.RPCURL,
		Network:     uc.config.Network,
		Dependents:  uc.config.Dependents,
		BlockNumber: uc.config.BlockNumber,
	})
	if err != nil {
		return uc.fail(ctx, result, err)
	}
	defer upgrade.Close()

	uc.enter(result, StageVerifyingUpgradeContract)
	if err := uc.verifyContract(ctx, result, result.Upgrade, preamble, 0, 1); err != nil {
		return uc.fail(ctx, result, err)
	}

	uc.enter(result, StageDiscoveringDependents)
	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   ProgressReading,
		Message: "Resolving dependent contracts",
		Spinner: true,
	})
	dependents, err := ResolveDependents(ctx, upgrade, uc.config.Dependents)
	if err != nil {
		return uc.fail(ctx, result, err)
	}
	result.Dependents = dependents

	uc.enter(result, StageVerifyingDependents)
	for i, dependent := range dependents {
		if err := uc.verifyContract(ctx, result, dependent, preamble, i, len(dependents)); err != nil {
			return uc.fail(ctx, result, err)
		}
	}

	uc.enter(result, StageReportingCorrections)
	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   ProgressReading,
		Message: "Reading ETH matched corrections",
		Spinner: true,
	})
	corrections, err := CollectCorrections(ctx, upgrade)
	result.Corrections = corrections
	if err != nil {
		return uc.fail(ctx, result, err)
	}
	uc.log.Debug("collected corrections", "count", len(corrections))

	uc.enter(result, StageCheckingLock)
	locked, err := upgrade.Locked(ctx)
	if err != nil {
		return uc.fail(ctx, result, fmt.Errorf("failed to call locked(): %w", err))
	}
	result.State = &models.UpgradeState{Locked: locked}
	if !locked {
		return uc.fail(ctx, result, &domain.InvariantError{Address: result.Upgrade.Address})
	}

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: ProgressDone})
	uc.enter(result, StageDone)
	return result, nil
}

func (uc *VerifyUpgrade) validate() error {
	if uc.config.NetworkErr != nil {
		return uc.config.NetworkErr
	}
	if uc.config.Network == nil {
		return &domain.ConfigError{Key: "network", Reason: "no network selected"}
	}
	if uc.config.RPCURL == "" {
		return &domain.ConfigError{Key: "rpc_url", Reason: "an RPC endpoint is required (set ETH_RPC or --rpc-url)"}
	}
	if uc.config.APIKey == "" {
		return &domain.ConfigError{Key: "etherscan_api_key", Reason: "an Etherscan API key is required (set ETHERSCAN_API_KEY or --etherscan-api-key)"}
	}
	if uc.config.UpgradeContract == "" {
		return &domain.ConfigError{Key: "upgrade_contract", Reason: "no upgrade contract name configured"}
	}
	return nil
}

// verifyContract fetches the verified tree for one contract and compares it
// with the local reconstruction
func (uc *VerifyUpgrade) verifyContract(
	ctx context.Context,
	result *VerifyUpgradeResult,
	contract models.ContractDescriptor,
	preamble string,
	current, total int,
) error {
	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:    ProgressVerifying,
		Current:  current + 1,
		Total:    total,
		Message:  fmt.Sprintf("Verifying %s at %s", contract.Name, contract.Address.Hex()),
		Spinner:  true,
		Metadata: contract,
	})

	bundle, err := uc.fetcher.FetchSources(ctx, contract.Address)
	if err != nil {
		return err
	}
	if !bundle.IsMultiFile() {
		return &domain.StructuralError{Contract: contract}
	}

	paths := bundle.Paths()
	uc.log.Debug("fetched verified sources", "contract", contract.Name, "address", contract.Address.Hex(), "files", len(paths))

	expected, err := uc.trees.Build(paths, preamble)
	if err != nil {
		return fmt.Errorf("failed to reconstruct sources for %s: %w", contract.Name, err)
	}
	if err := CompareTrees(expected, bundle.Files); err != nil {
		var mismatch *domain.MismatchError
		if errors.As(err, &mismatch) {
			mismatch.Contract = contract
		}
		return err
	}

	result.Verified = append(result.Verified, contract)
	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:    ProgressVerified,
		Current:  current + 1,
		Total:    total,
		Message:  fmt.Sprintf("Verified contract at %s matches %s", contract.Address.Hex(), contract.Name),
		Metadata: contract,
	})
	return nil
}

func (uc *VerifyUpgrade) enter(result *VerifyUpgradeResult, stage VerifyStage) {
	uc.log.Debug("entering stage", "stage", string(stage))
	result.Stage = stage
}

func (uc *VerifyUpgrade) fail(ctx context.Context, result *VerifyUpgradeResult, err error) (*VerifyUpgradeResult, error) {
	uc.log.Debug("audit failed", "stage", string(result.Stage), "error", err)
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: ProgressFailed})
	result.FailedAt = result.Stage
	result.Stage = StageFailed
	return result, err
}
