package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"
)

// GraphQLClient abstracts the one outbound call this service makes: a
// single GraphQL request against the Shopify Admin API.
type GraphQLClient interface {
	Execute(ctx context.Context, query string, variables map[string]any) (json.RawMessage, error)
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLEnvelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors"`
}

type graphQLError struct {
	Message string `json:"message"`
}

// ShopifyClient implements GraphQLClient against a single Admin API
// endpoint. One synchronous POST per call, no retries, no timeout
// beyond the transport default.
type ShopifyClient struct {
	accessToken string
	endpoint    string
	client      *resty.Client
}

// NewShopifyClient builds the client for the configured shop. The
// access token is checked on every call, not here, so a tokenless
// process still starts.
func NewShopifyClient(cfg Config) *ShopifyClient {
	return &ShopifyClient{
		accessToken: cfg.AccessToken,
		endpoint:    fmt.Sprintf("https://%s/admin/api/%s/graphql.json", cfg.ShopDomain, cfg.APIVersion),
		client:      resty.New(),
	}
}

// Execute posts one GraphQL document with its variables and returns the
// raw data payload. A transport failure, a non-2xx status, or a
// populated top-level error list all collapse into a single error
// carrying the first available message.
func (c *ShopifyClient) Execute(ctx context.Context, query string, variables map[string]any) (json.RawMessage, error) {
	if c.accessToken == "" {
		return nil, ErrMissingAccessToken
	}

	var envelope graphQLEnvelope
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Shopify-Access-Token", c.accessToken).
		SetBody(graphQLRequest{Query: query, Variables: variables}).
		SetResult(&envelope).
		Post(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("shopify request failed: %w", err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("shopify returned status %d: %s", resp.StatusCode(), resp.String())
	}

	if len(envelope.Errors) > 0 {
		return nil, fmt.Errorf("shopify graphql error: %s", envelope.Errors[0].Message)
	}

	return envelope.Data, nil
}
