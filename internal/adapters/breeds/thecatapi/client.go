// Package thecatapi valida razas contra el catálogo público de TheCatAPI.
package thecatapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"spy-cat-agency/internal/platform/httpclient"
	"spy-cat-agency/internal/ports/breeds"
)

const (
	DefaultBaseURL = "https://api.thecatapi.com"
	apiKeyHeader   = "x-api-key"
	breedsPath     = "/v1/breeds"
)

var (
	ErrUnauthorized = errors.New("thecatapi unauthorized")
	ErrUpstream     = errors.New("thecatapi upstream error")
)

var _ breeds.Catalog = (*Client)(nil)

type Config struct {
	BaseURL string
	// APIKey es opcional: /v1/breeds responde sin key, con límites más bajos.
	APIKey  string
	Timeout time.Duration
}

type Client struct {
	http   *httpclient.Client
	apiKey string
}

func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	hc, err := httpclient.New(base, timeout)
	if err != nil {
		return nil, fmt.Errorf("thecatapi: %w", err)
	}
	return &Client{http: hc, apiKey: strings.TrimSpace(cfg.APIKey)}, nil
}

// Breed es el subconjunto del payload que usamos.
type Breed struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ListBreeds trae el catálogo completo (una sola página, ~70 razas).
func (c *Client) ListBreeds(ctx context.Context) ([]Breed, error) {
	var out []Breed
	err := c.http.GetJSON(ctx, breedsPath, map[string]string{apiKeyHeader: c.apiKey}, &out)
	if err != nil {
		var httpErr *httpclient.HTTPError
		if errors.As(err, &httpErr) {
			switch httpErr.StatusCode {
			case http.StatusUnauthorized, http.StatusForbidden:
				return nil, ErrUnauthorized
			default:
				return nil, fmt.Errorf("%w: status=%d", ErrUpstream, httpErr.StatusCode)
			}
		}
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return out, nil
}

// Contains compara por nombre exacto, sin distinguir mayúsculas.
// Sin cache: cada llamada es un round trip.
func (c *Client) Contains(ctx context.Context, breed string) (bool, error) {
	breed = strings.TrimSpace(breed)
	if breed == "" {
		return false, nil
	}

	list, err := c.ListBreeds(ctx)
	if err != nil {
		return false, err
	}
	for _, b := range list {
		if strings.EqualFold(strings.TrimSpace(b.Name), breed) {
			return true, nil
		}
	}
	return false, nil
}
