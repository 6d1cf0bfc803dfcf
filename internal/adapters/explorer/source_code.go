package explorer

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/trebuchet-org/upgrade-audit/internal/domain/models"
)

// standardJSONInput is the subset of solc standard-json input Etherscan stores
// for multi-file verifications
type standardJSONInput struct {
	Language string                    `json:"language"`
	Sources  map[string]standardSource `json:"sources"`
}

type standardSource struct {
	Content string `json:"content"`
}

// ParseSourceCode decodes the SourceCode field of a getsourcecode result.
//
// Multi-file verifications are stored as standard-json input wrapped in an
// extra pair of braces ("{{...}}"); exactly one leading and one trailing
// character are stripped before decoding. Anything else is the flat source of
// a single-file verification.
func ParseSourceCode(source string) (*models.SourceBundle, error) {
	if !strings.HasPrefix(source, "{{") {
		return models.NewSingleFileBundle(source), nil
	}

	var input standardJSONInput
	if err := json.Unmarshal([]byte(source[1:len(source)-1]), &input); err != nil {
		return nil, fmt.Errorf("failed to decode standard-json source: %w", err)
	}

	// A standard-json payload without sources is not a file tree
	if input.Sources == nil {
		return models.NewSingleFileBundle(source), nil
	}

	files := make(map[string]string, len(input.Sources))
	for path, src := range input.Sources {
		files[path] = src.Content
	}
	return models.NewMultiFileBundle(files), nil
}
