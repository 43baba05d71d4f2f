package chain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os/exec"

	http "github.com/bogdanfinn/fhttp"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"

	"dotdigest/config"
)

// Client collects on-chain governance data. Referenda come from a node
// bridge script (the polkadot-api decoding lives in JavaScript), treasury
// proposals from the Subscan HTTP API.
type Client struct {
	bridgeScript string
	rpcEndpoint  string
	subscanURL   string
	subscanKey   string
	httpClient   tls_client.HttpClient
}

func NewClient(cfg *config.Config) (*Client, error) {
	options := []tls_client.HttpClientOption{
		tls_client.WithTimeoutSeconds(30),
		tls_client.WithClientProfile(profiles.Chrome_133),
	}

	httpClient, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(), options...)
	if err != nil {
		return nil, fmt.Errorf("create http client: %w", err)
	}

	return &Client{
		bridgeScript: cfg.Chain.BridgeScript,
		rpcEndpoint:  cfg.Chain.RPCEndpoint,
		subscanURL:   cfg.Chain.SubscanURL,
		subscanKey:   cfg.Chain.SubscanAPIKey,
		httpClient:   httpClient,
	}, nil
}

// Referenda runs the bridge script and decodes its JSON output. The script
// prints the ongoing referenda with decoded calls to stdout.
func (c *Client) Referenda(ctx context.Context) ([]Referendum, error) {
	cmd := exec.CommandContext(ctx, "node", c.bridgeScript, c.rpcEndpoint)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("bridge script failed: %w: %s", err, stderr.String())
	}

	var referenda []Referendum
	if err := json.Unmarshal(out, &referenda); err != nil {
		return nil, fmt.Errorf("decode bridge output: %w", err)
	}
	return referenda, nil
}

type subscanTreasuryRequest struct {
	Row  int `json:"row"`
	Page int `json:"page"`
}

type subscanTreasuryResponse struct {
	Code int `json:"code"`
	Data struct {
		List []TreasuryProposal `json:"list"`
	} `json:"data"`
}

// Treasury fetches pending treasury proposals from Subscan.
func (c *Client) Treasury(ctx context.Context) ([]TreasuryProposal, error) {
	raw, err := json.Marshal(subscanTreasuryRequest{Row: 100, Page: 0})
	if err != nil {
		return nil, err
	}

	url := c.subscanURL + "/treasury/proposals"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(raw))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.subscanKey != "" {
		req.Header.Set("X-API-Key", c.subscanKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call subscan: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("subscan error %d: %s", resp.StatusCode, body)
	}

	var parsed subscanTreasuryResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode subscan response: %w", err)
	}
	if parsed.Code != 0 {
		return nil, fmt.Errorf("subscan returned code %d", parsed.Code)
	}
	return parsed.Data.List, nil
}
