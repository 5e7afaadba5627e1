package main

import (
	"errors"
	"fmt"
)

// ErrMissingAccessToken is returned by the Shopify client when no
// access token is configured. The server still boots without one; only
// the upstream call path fails.
var ErrMissingAccessToken = errors.New("SHOPIFY_ACCESS_TOKEN is not configured")

// NotFoundError reports that a referenced upstream resource does not
// exist (product, or a product with no purchasable variant).
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// UserErrorsError carries Shopify's semantic validation failures
// (userErrors) for an otherwise successful mutation call. The list is
// returned to the caller verbatim.
type UserErrorsError struct {
	Errors []UserError
}

// Error implements the error interface
func (e *UserErrorsError) Error() string {
	if len(e.Errors) == 0 {
		return "shopify rejected the order"
	}
	return fmt.Sprintf("shopify rejected the order: %s", e.Errors[0].Message)
}
