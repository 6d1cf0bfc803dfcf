package models

import (
	"sort"

	"github.com/samber/lo"
)

// BundleKind distinguishes the two shapes a verified source can take
type BundleKind int

const (
	// SingleFile is a flattened contract delivered as one string
	SingleFile BundleKind = iota
	// MultiFile is a standard-json style set of path -> content entries
	MultiFile
)

func (k BundleKind) String() string {
	switch k {
	case MultiFile:
		return "multi-file"
	case SingleFile:
		return "single-file"
	default:
		return "unknown"
	}
}

// SourceBundle is the verified source a block explorer associates with a deployed contract
type SourceBundle struct {
	Kind BundleKind
	// Files is set for MultiFile bundles
	Files map[string]string
	// Content is set for SingleFile bundles
	Content string
}

// NewMultiFileBundle creates a multi-file bundle
func NewMultiFileBundle(files map[string]string) *SourceBundle {
	if files == nil {
		files = make(map[string]string)
	}
	return &SourceBundle{Kind: MultiFile, Files: files}
}

// NewSingleFileBundle creates a single-file bundle
func NewSingleFileBundle(content string) *SourceBundle {
	return &SourceBundle{Kind: SingleFile, Content: content}
}

// IsMultiFile reports whether the bundle carries a file tree
func (b *SourceBundle) IsMultiFile() bool {
	return b != nil && b.Kind == MultiFile
}

// Paths returns the bundle's file paths in lexical order
func (b *SourceBundle) Paths() []string {
	if !b.IsMultiFile() {
		return nil
	}
	return SortedPaths(b.Files)
}

// ExpectedBundle is the source tree reconstructed from the local repository
type ExpectedBundle map[string]string

// SortedPaths returns the keys of a path -> content mapping in lexical order
func SortedPaths(files map[string]string) []string {
	paths := lo.Keys(files)
	sort.Strings(paths)
	return paths
}
