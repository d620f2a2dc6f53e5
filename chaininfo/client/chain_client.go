package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/riverdex/sor/domain"
	"github.com/riverdex/sor/sorutil/retry"
	"github.com/riverdex/sor/sorutil/sorhttp"
)

const chainIDPlaceholder = "{chainId}"

// Client fetches the latest block number of a chain.
type Client interface {
	GetLatestHeight(ctx context.Context, chainID domain.ChainID) (uint64, error)
}

type blockNumberResponse struct {
	Data json.Number `json:"data"`
}

type chainClient struct {
	urlTemplate string
	httpClient  *http.Client
	retryConfig domain.RetryConfig
}

// NewClient returns a client reading block numbers from urlTemplate.
// {chainId} is substituted and the response is {"data": <block number>}.
func NewClient(urlTemplate string, httpClient *http.Client, retryConfig domain.RetryConfig) (Client, error) {
	if urlTemplate == "" {
		return nil, fmt.Errorf("block number url is not set")
	}

	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &chainClient{
		urlTemplate: urlTemplate,
		httpClient:  httpClient,
		retryConfig: retryConfig,
	}, nil
}

// GetLatestHeight implements Client.
func (c *chainClient) GetLatestHeight(ctx context.Context, chainID domain.ChainID) (uint64, error) {
	url := strings.ReplaceAll(c.urlTemplate, chainIDPlaceholder, chainID.String())

	response, err := retry.Do(ctx, c.retryConfig, func(ctx context.Context) (*blockNumberResponse, error) {
		return sorhttp.Get[blockNumberResponse](ctx, c.httpClient, url, "", nil)
	})
	if err != nil {
		return 0, err
	}

	height, err := strconv.ParseUint(response.Data.String(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid block number (%s) of chain (%d): %w", response.Data, chainID, err)
	}

	return height, nil
}
