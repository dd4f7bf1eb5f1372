// Package source fetches shop lists from an upstream HTTP feed.
package source

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"laundry-finder-backend/config"
	"laundry-finder-backend/internal/model"
)

// HTTPSource pulls the complete shop list from a paginated upstream API.
type HTTPSource struct {
	cfg    config.SourceConfig
	client *http.Client
}

// NewHTTPSource creates a source for the configured upstream.
func NewHTTPSource(cfg config.SourceConfig) *HTTPSource {
	var transport http.RoundTripper = &http.Transport{}
	if cfg.HTTPProxy != "" {
		proxyURL, err := url.Parse(cfg.HTTPProxy)
		if err != nil {
			log.Printf("Warning: Invalid proxy URL %q: %v. Source will not use a proxy.", cfg.HTTPProxy, err)
		} else {
			transport = &http.Transport{Proxy: http.ProxyURL(proxyURL)}
		}
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = 50
	}

	return &HTTPSource{
		cfg: cfg,
		client: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
	}
}

// FetchShops fetches every page. The directory replaces its whole list with the result,
// so any page failure fails the fetch rather than returning a partial list.
func (s *HTTPSource) FetchShops(ctx context.Context) ([]model.LaundryShop, error) {
	var shops []model.LaundryShop
	total := 1
	for page := 1; (page-1)*s.cfg.PageSize < total; page++ {
		resp, err := s.fetchPage(ctx, page)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", page, err)
		}
		if resp.Data.Total == 0 || len(resp.Data.Items) == 0 {
			break
		}
		total = resp.Data.Total
		shops = append(shops, resp.Data.Items...)
	}

	for i := range shops {
		fillKind(shops[i].Washers, model.KindWasher)
		fillKind(shops[i].Dryers, model.KindDryer)
	}
	return shops, nil
}

func fillKind(machines []model.Machine, kind model.MachineKind) {
	for i := range machines {
		if machines[i].Kind == "" {
			machines[i].Kind = kind
		}
	}
}

// fetchPage fetches a single page of shops from the upstream API.
func (s *HTTPSource) fetchPage(ctx context.Context, page int) (*ApiResponse, error) {
	payload := make(map[string]any, len(s.cfg.Payload)+2)
	for k, v := range s.cfg.Payload {
		payload[k] = v
	}
	payload["page"] = page
	payload["pageSize"] = s.cfg.PageSize

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.URL, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for key, value := range s.cfg.Headers {
		req.Header.Set(key, value)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("received non-200 status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var apiResp ApiResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal api response: %w", err)
	}

	if apiResp.Code != 0 {
		return nil, fmt.Errorf("API returned non-zero application code: %d", apiResp.Code)
	}

	return &apiResp, nil
}
