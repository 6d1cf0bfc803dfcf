package usecase

import (
	"github.com/trebuchet-org/upgrade-audit/internal/domain"
	"github.com/trebuchet-org/upgrade-audit/internal/domain/models"
)

// CompareTrees checks every verified file against its local reconstruction.
//
// Only paths present in the verified tree are visited, in lexical order, and
// the first difference is returned as a *domain.MismatchError. Files that
// exist only in the expected tree are not detected.
func CompareTrees(expected models.ExpectedBundle, actual map[string]string) error {
	for _, path := range models.SortedPaths(actual) {
		want, ok := expected[path]
		if !ok || want != actual[path] {
			return &domain.MismatchError{
				Path:     path,
				Expected: want,
				Actual:   actual[path],
			}
		}
	}
	return nil
}
