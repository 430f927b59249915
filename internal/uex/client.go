// Package uex fetches the market catalog and the item categories from the
// UEX pricing service.
package uex

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"pickman/inventory-index/internal/logging"
	"pickman/inventory-index/internal/models"
	"pickman/inventory-index/internal/parsererror"
)

// Defaults of the public UEX API.
const (
	DefaultBaseURL = "https://api.uexcorp.uk/2.0"
	DefaultTimeout = 15 * time.Second

	MarketEndpoint     = "marketplace_averages_all"
	CategoriesEndpoint = "categories"
)

// Catalog is the result of one refresh: market items and the item categories
// they refer to.
type Catalog struct {
	Items      []models.CatalogItem
	Categories models.CategoryLookup
}

// Client talks to the UEX API.
type Client struct {
	baseURL string
	timeout time.Duration
	http    *http.Client
	logger  logging.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithDailyCache keeps successful responses in dir until the end of the day.
// An empty dir uses a folder in the system temp directory.
func WithDailyCache(dir string) Option {
	return func(c *Client) {
		hc := *c.http
		hc.Transport = newDiskCache(hc.Transport, dir, c.logger)
		c.http = &hc
	}
}

// NewClient creates a client for baseURL. Zero values select the defaults.
func NewClient(baseURL string, timeout time.Duration, logger logging.Logger, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		http:    &http.Client{},
		logger:  logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchCatalog fetches market items and categories concurrently. A failed
// market fetch is returned as a *parsererror.FetchError; a failed category
// fetch is logged and yields an empty lookup.
func (c *Client) FetchCatalog(ctx context.Context) (Catalog, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var out Catalog
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		items, err := c.FetchMarket(gctx)
		if err != nil {
			return err
		}
		out.Items = items
		return nil
	})

	g.Go(func() error {
		categories, err := c.FetchCategories(gctx)
		if err != nil {
			c.logger.WithError(err).Warn("Failed to load categories")
			categories = models.CategoryLookup{}
		}
		out.Categories = categories
		return nil
	})

	if err := g.Wait(); err != nil {
		return Catalog{}, err
	}

	c.logger.Info("Loaded items from UEX",
		logging.F(logging.FieldCount, len(out.Items)),
		logging.F("categories", len(out.Categories)))
	return out, nil
}

// FetchMarket returns the 30-day marketplace averages of every item.
func (c *Client) FetchMarket(ctx context.Context) ([]models.CatalogItem, error) {
	list, err := c.getList(ctx, MarketEndpoint)
	if err != nil {
		return nil, err
	}
	return DecodeItems(list), nil
}

// FetchCategories returns the item categories keyed by id.
func (c *Client) FetchCategories(ctx context.Context) (models.CategoryLookup, error) {
	list, err := c.getList(ctx, CategoriesEndpoint)
	if err != nil {
		return nil, err
	}
	return DecodeCategories(list), nil
}

func (c *Client) getList(ctx context.Context, endpoint string) ([]interface{}, error) {
	addr := c.baseURL + "/" + endpoint
	start := time.Now()

	body, err := c.get(ctx, addr)
	if err != nil {
		return nil, &parsererror.FetchError{Endpoint: addr, Err: err}
	}
	doc, err := decodeJSON(body)
	if err != nil {
		return nil, &parsererror.FetchError{Endpoint: addr, Err: err}
	}
	list, err := envelopeData(doc)
	if err != nil {
		return nil, &parsererror.FetchError{Endpoint: addr, Err: err}
	}

	c.logger.Debug("Fetched UEX endpoint",
		logging.F(logging.FieldEndpoint, endpoint),
		logging.F(logging.FieldCount, len(list)),
		logging.F(logging.FieldDuration, time.Since(start).String()))
	return list, nil
}

// get performs a GET and returns the body of a 200 response.
func (c *Client) get(ctx context.Context, addr string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cannot http GET %v%v: %v", req.URL.Host, req.URL.Path, resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// LoadFile reads a catalog saved from the market endpoint, either the full
// envelope or a bare item list. Local catalogs carry no categories.
func LoadFile(path string) (Catalog, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("error reading catalog file: %w", err)
	}
	doc, err := decodeJSON(body)
	if err != nil {
		return Catalog{}, &parsererror.InvalidFormatError{
			FilePath:       path,
			ExpectedFormat: "UEX marketplace JSON",
			Msg:            "malformed JSON",
			Err:            err,
		}
	}

	list, ok := doc.([]interface{})
	if !ok {
		if list, err = envelopeData(doc); err != nil {
			return Catalog{}, &parsererror.InvalidFormatError{
				FilePath:       path,
				ExpectedFormat: "UEX marketplace JSON",
				Msg:            "not an item list or response envelope",
				Err:            err,
			}
		}
	}
	return Catalog{Items: DecodeItems(list), Categories: models.CategoryLookup{}}, nil
}
