package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/trebuchet-org/upgrade-audit/internal/domain/config"
	"github.com/trebuchet-org/upgrade-audit/internal/domain/models"
	"github.com/trebuchet-org/upgrade-audit/internal/usecase"
)

// dependencyPrefix marks verified paths served from the dependency tree
const dependencyPrefix = "@"

// ExpectedTreeAdapter reconstructs expected sources from a local checkout.
// Scoped package paths are read verbatim from the dependency root; every
// other path is read from the repository root and prefixed with the preamble.
type ExpectedTreeAdapter struct {
	repoRoot       string
	dependencyRoot string
	preamblePath   string
}

// NewExpectedTreeAdapter creates a new ExpectedTreeAdapter
func NewExpectedTreeAdapter(cfg *config.RuntimeConfig) *ExpectedTreeAdapter {
	repoRoot := cfg.RepoRoot
	if repoRoot == "" {
		repoRoot = "rocketpool"
	}
	dependencyRoot := cfg.DependencyRoot
	if dependencyRoot == "" {
		dependencyRoot = filepath.Join(repoRoot, "node_modules")
	}
	preamblePath := cfg.PreamblePath
	if preamblePath == "" {
		preamblePath = filepath.Join(repoRoot, "scripts", "preamble.sol")
	}
	return &ExpectedTreeAdapter{
		repoRoot:       repoRoot,
		dependencyRoot: dependencyRoot,
		preamblePath:   preamblePath,
	}
}

// Preamble reads the header prepended to first-party sources
func (a *ExpectedTreeAdapter) Preamble() (string, error) {
	data, err := os.ReadFile(a.preamblePath)
	if err != nil {
		return "", fmt.Errorf("failed to read preamble: %w", err)
	}
	return string(data), nil
}

// Build reads the local counterpart of every verified path
func (a *ExpectedTreeAdapter) Build(paths []string, preamble string) (models.ExpectedBundle, error) {
	expected := make(models.ExpectedBundle, len(paths))
	for _, path := range paths {
		content, err := a.expectedSource(path, preamble)
		if err != nil {
			return nil, err
		}
		expected[path] = content
	}
	return expected, nil
}

func (a *ExpectedTreeAdapter) expectedSource(path, preamble string) (string, error) {
	// Verified paths come from the explorer; never let them leave the roots
	if !filepath.IsLocal(filepath.FromSlash(path)) {
		return "", fmt.Errorf("refusing to read %s: path escapes the repository", path)
	}

	if strings.HasPrefix(path, dependencyPrefix) {
		data, err := os.ReadFile(filepath.Join(a.dependencyRoot, filepath.FromSlash(path)))
		if err != nil {
			return "", fmt.Errorf("failed to read dependency %s: %w", path, err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(filepath.Join(a.repoRoot, filepath.FromSlash(path)))
	if err != nil {
		return "", fmt.Errorf("failed to read source %s: %w", path, err)
	}
	return preamble + string(data), nil
}

// Ensure the adapter implements the interface
var _ usecase.ExpectedTreeBuilder = (*ExpectedTreeAdapter)(nil)
