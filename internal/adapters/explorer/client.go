package explorer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/upgrade-audit/internal/domain"
	"github.com/trebuchet-org/upgrade-audit/internal/domain/config"
	"github.com/trebuchet-org/upgrade-audit/internal/domain/models"
	"github.com/trebuchet-org/upgrade-audit/internal/usecase"
)

// okMessage is the envelope message Etherscan uses for successful calls
const okMessage = "OK"

// apiResponse is the Etherscan response envelope
type apiResponse struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

// sourceCodeResult is one entry of a getsourcecode result
type sourceCodeResult struct {
	SourceCode      string `json:"SourceCode"`
	ContractName    string `json:"ContractName"`
	CompilerVersion string `json:"CompilerVersion"`
}

// Client fetches verified sources from an Etherscan-compatible API
type Client struct {
	httpClient *http.Client
	limiter    *Limiter
	log        *slog.Logger
	baseURL    string
	apiKey     string
}

// NewClient creates an explorer client for the selected network
func NewClient(cfg *config.RuntimeConfig, limiter *Limiter, log *slog.Logger) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		limiter: limiter,
		log:     log.With("component", "explorer"),
		apiKey:  cfg.APIKey,
	}
	if cfg.Network != nil {
		c.baseURL = strings.TrimSuffix(cfg.Network.ExplorerAPIURL, "/")
	}
	return c
}

// ProvideLimiter creates the process-wide request limiter for Wire
func ProvideLimiter(cfg *config.RuntimeConfig) *Limiter {
	return NewLimiter(cfg.RequestSpacing, SystemClock{})
}

// FetchSources retrieves the verified source bundle for an address
func (c *Client) FetchSources(ctx context.Context, address common.Address) (*models.SourceBundle, error) {
	waited, err := c.limiter.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	c.log.Debug("fetching verified source", "address", address.Hex(), "waited", waited)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.sourceCodeURL(address), nil)
	if err != nil {
		return nil, &domain.FetchError{Address: address, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.FetchError{Address: address, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.FetchError{Address: address, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	var envelope apiResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &domain.FetchError{
			Address: address,
			Message: fmt.Sprintf("unexpected response (HTTP %d)", resp.StatusCode),
			Payload: string(body),
			Err:     err,
		}
	}

	if envelope.Message != okMessage {
		return nil, &domain.FetchError{
			Address: address,
			Message: envelope.Message,
			Payload: string(body),
		}
	}

	var results []sourceCodeResult
	if err := json.Unmarshal(envelope.Result, &results); err != nil || len(results) == 0 {
		return nil, &domain.FetchError{
			Address: address,
			Message: "no source code result",
			Payload: string(body),
			Err:     err,
		}
	}

	bundle, err := ParseSourceCode(results[0].SourceCode)
	if err != nil {
		return nil, &domain.FetchError{Address: address, Payload: string(body), Err: err}
	}

	c.log.Debug("fetched verified source",
		"address", address.Hex(),
		"contract", results[0].ContractName,
		"compiler", results[0].CompilerVersion,
		"kind", bundle.Kind,
		"files", len(bundle.Files),
	)

	return bundle, nil
}

// sourceCodeURL builds the getsourcecode query for an address
func (c *Client) sourceCodeURL(address common.Address) string {
	query := url.Values{}
	query.Set("module", "contract")
	query.Set("action", "getsourcecode")
	query.Set("address", address.Hex())
	query.Set("apikey", c.apiKey)
	return c.baseURL + "/api?" + query.Encode()
}

// Ensure the client implements the interface
var _ usecase.SourceFetcher = (*Client)(nil)
