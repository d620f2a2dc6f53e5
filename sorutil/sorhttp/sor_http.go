package sorhttp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/riverdex/sor/domain"
)

// Get makes a GET request to the given URL and endpoint and unmarshals the response body into the given type.
// Optional headers are set on the request as given.
func Get[k any](ctx context.Context, client *http.Client, url, endpoint string, headers map[string]string) (*k, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url+endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	// Read the response body
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, domain.UnexpectedStatusCodeError{URL: url + endpoint, StatusCode: resp.StatusCode}
	}

	// Unmarshal the response body
	var unmarshalledData k
	if err := json.Unmarshal(body, &unmarshalledData); err != nil {
		return nil, fmt.Errorf("failed to unmarshal: %w", err)
	}

	return &unmarshalledData, nil
}
