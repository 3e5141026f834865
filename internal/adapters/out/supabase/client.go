package supabase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"concierge/internal/pkg/errs"

	"github.com/go-resty/resty/v2"
)

// Config holds the connection parameters for the remote store.
type Config struct {
	BaseURL string
	APIKey  string
}

// Filter is a single column predicate pushed down to the remote store. The
// store expects predicates in the query string as column=op.value.
type Filter struct {
	Column string
	Value  string
}

// Eq builds an equality filter on the given column.
func Eq(column string, value any) Filter {
	return Filter{Column: column, Value: fmt.Sprintf("eq.%v", value)}
}

// Client is a thin gateway over the remote store's REST surface. Every table
// lives under /rest/v1 and every request carries the project API key twice,
// once as apikey and once as a bearer token.
type Client struct {
	httpClient *resty.Client
	logger     *slog.Logger
}

// NewClient creates a gateway for the remote store at cfg.BaseURL.
func NewClient(cfg Config, logger *slog.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errs.NewValueIsRequiredError("cfg.BaseURL")
	}
	if cfg.APIKey == "" {
		return nil, errs.NewValueIsRequiredError("cfg.APIKey")
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}

	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL+"/rest/v1").
		SetTimeout(30*time.Second).
		SetHeader("apikey", cfg.APIKey).
		SetHeader("Authorization", "Bearer "+cfg.APIKey).
		SetHeader("Content-Type", "application/json")

	return &Client{
		httpClient: httpClient,
		logger:     logger.With("component", "supabase"),
	}, nil
}

// Select reads the rows of table matching filters into dest, which must be a
// pointer to a slice of row DTOs.
func (c *Client) Select(ctx context.Context, table string, filters []Filter, dest any) error {
	request := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("select", "*").
		SetResult(dest)
	applyFilters(request, filters)

	resp, err := request.Get("/" + table)
	if err != nil {
		return errs.NewRemoteStoreErrorWithCause("select", table, err)
	}
	if resp.IsError() {
		c.logger.Error("remote store select failed",
			"table", table, "status", resp.StatusCode())
		return errs.NewRemoteStoreError("select", table, resp.StatusCode())
	}

	return nil
}

// Insert appends record to table. When dest is non-nil the inserted
// representation is requested back from the store and decoded into it.
func (c *Client) Insert(ctx context.Context, table string, record any, dest any) error {
	request := c.httpClient.R().
		SetContext(ctx).
		SetBody(record)
	if dest != nil {
		request.SetHeader("Prefer", "return=representation").SetResult(dest)
	}

	resp, err := request.Post("/" + table)
	if err != nil {
		return errs.NewRemoteStoreErrorWithCause("insert", table, err)
	}
	if resp.IsError() {
		c.logger.Error("remote store insert failed",
			"table", table, "status", resp.StatusCode())
		return errs.NewRemoteStoreError("insert", table, resp.StatusCode())
	}

	return nil
}

// Update patches every row of table matching filters and decodes the updated
// rows into dest when it is non-nil. The patch is a partial row, typically a
// map so that explicit nulls survive encoding.
func (c *Client) Update(ctx context.Context, table string, filters []Filter, patch any, dest any) error {
	request := c.httpClient.R().
		SetContext(ctx).
		SetBody(patch)
	applyFilters(request, filters)
	if dest != nil {
		request.SetHeader("Prefer", "return=representation").SetResult(dest)
	}

	resp, err := request.Patch("/" + table)
	if err != nil {
		return errs.NewRemoteStoreErrorWithCause("update", table, err)
	}
	if resp.IsError() {
		c.logger.Error("remote store update failed",
			"table", table, "status", resp.StatusCode())
		return errs.NewRemoteStoreError("update", table, resp.StatusCode())
	}

	return nil
}

func applyFilters(request *resty.Request, filters []Filter) {
	for _, f := range filters {
		request.SetQueryParam(f.Column, f.Value)
	}
}
