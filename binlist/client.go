// Package binlist wraps the external BIN lookup service behind a small
// interface so routes can take a test double.
package binlist

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	logger "github.com/sirupsen/logrus"

	"git.thinkinpower.net/cardsrv/mod"
)

const lookupTimeout = 5 * time.Second

// Client resolves a 6-digit BIN to issuer data. An error means the lookup
// produced no usable record; callers treat that as an absent result, never
// as a fault to propagate.
type Client interface {
	Lookup(ctx context.Context, bin string) (*mod.BinInfo, error)
}

// HTTPClient queries a binlist-compatible service over HTTP with a bounded
// timeout.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: lookupTimeout},
	}
}

// Lookup fetches {baseURL}/{bin}. Every failure mode (transport error,
// timeout, non-2xx status, unparseable body) is logged and returned as an
// error so the caller can fall back to sentinel values.
func (c *HTTPClient) Lookup(ctx context.Context, bin string) (*mod.BinInfo, error) {
	url := fmt.Sprintf("%s/%s", c.baseURL, bin)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build bin lookup request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		logger.Errorf("bin lookup failed for %s: %s", bin, err.Error())
		return nil, errors.Wrap(err, "bin lookup request")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		logger.Errorf("bin lookup failed for %s: status %d", bin, resp.StatusCode)
		return nil, errors.Errorf("bin lookup returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Errorf("bin lookup failed for %s: %s", bin, err.Error())
		return nil, errors.Wrap(err, "read bin lookup response")
	}

	var info mod.BinInfo
	if err := json.Unmarshal(body, &info); err != nil {
		logger.Errorf("bin lookup failed for %s: %s", bin, err.Error())
		return nil, errors.Wrap(err, "decode bin lookup response")
	}
	info.Raw = body
	return &info, nil
}
