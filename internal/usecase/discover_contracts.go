package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/trebuchet-org/upgrade-audit/internal/domain"
	"github.com/trebuchet-org/upgrade-audit/internal/domain/models"
)

// ResolveDependents calls each dependent getter on the upgrade contract in
// order and returns the contracts it points at
func ResolveDependents(ctx context.Context, upgrade UpgradeContract, methods []models.DependentMethod) ([]models.ContractDescriptor, error) {
	dependents := make([]models.ContractDescriptor, 0, len(methods))
	for _, m := range methods {
		address, err := upgrade.DependentAddress(ctx, m.Method)
		if err != nil {
			return nil, fmt.Errorf("failed to call %s(): %w", m.Method, err)
		}
		dependents = append(dependents, models.ContractDescriptor{
			Name:    m.Contract,
			Address: address,
		})
	}
	return dependents, nil
}

// CollectCorrections enumerates corrections(i) from index 0 until the
// contract signals the end of the list
func CollectCorrections(ctx context.Context, upgrade UpgradeContract) ([]models.Correction, error) {
	var corrections []models.Correction
	for index := uint64(0); ; index++ {
		correction, err := upgrade.Correction(ctx, index)
		if errors.Is(err, domain.ErrEndOfSequence) {
			return corrections, nil
		}
		if err != nil {
			return corrections, fmt.Errorf("failed to read correction %d: %w", index, err)
		}
		correction.Index = index
		corrections = append(corrections, *correction)
	}
}
