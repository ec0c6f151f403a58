package checkers

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// OpenRouterChecker verifies that the provider endpoint is reachable. Any
// HTTP answer counts as reachable; a failing credential still leaves the
// service usable on the default catalog, so only transport failures make
// the service not ready.
type OpenRouterChecker struct {
	baseURL string
	httpDo  *http.Client
}

func NewOpenRouterChecker(baseURL string) *OpenRouterChecker {
	return &OpenRouterChecker{
		baseURL: baseURL,
		httpDo:  &http.Client{},
	}
}

func (c *OpenRouterChecker) Name() string { return "openrouter" }

func (c *OpenRouterChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/models", nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	resp, err := c.httpDo.Do(req)
	if err != nil {
		return fmt.Errorf("reach provider: %w", err)
	}
	resp.Body.Close()
	return nil
}
