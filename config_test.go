package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("SHOPIFY_SHOP_DOMAIN", "")
	t.Setenv("SHOPIFY_ACCESS_TOKEN", "")
	t.Setenv("SHOPIFY_API_VERSION", "")
	t.Setenv("SHOPIFY_ORDER_INPUT_STYLE", "")
	t.Setenv("PORT", "")

	cfg := LoadConfig()

	assert.Equal(t, "your-shop.myshopify.com", cfg.ShopDomain)
	assert.Equal(t, "", cfg.AccessToken, "no safe default exists for the access token")
	assert.Equal(t, "2024-10", cfg.APIVersion)
	assert.Equal(t, OrderInputStyleModern, cfg.OrderInputStyle)
	assert.Equal(t, "3000", cfg.Port)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("SHOPIFY_SHOP_DOMAIN", "ethereal-tarot.myshopify.com")
	t.Setenv("SHOPIFY_ACCESS_TOKEN", "shpat_test")
	t.Setenv("SHOPIFY_API_VERSION", "2023-07")
	t.Setenv("SHOPIFY_ORDER_INPUT_STYLE", "")
	t.Setenv("PORT", "8080")

	cfg := LoadConfig()

	assert.Equal(t, "ethereal-tarot.myshopify.com", cfg.ShopDomain)
	assert.Equal(t, "shpat_test", cfg.AccessToken)
	assert.Equal(t, "2023-07", cfg.APIVersion)
	assert.Equal(t, OrderInputStyleLegacy, cfg.OrderInputStyle, "pre-2024-10 versions default to the input argument")
	assert.Equal(t, "8080", cfg.Port)
}

func TestDefaultOrderInputStyle(t *testing.T) {
	testCases := map[string]struct {
		version  string
		expected string
	}{
		"rename release uses order":  {version: "2024-10", expected: OrderInputStyleModern},
		"later release uses order":   {version: "2025-01", expected: OrderInputStyleModern},
		"earlier release uses input": {version: "2024-07", expected: OrderInputStyleLegacy},
		"old release uses input":     {version: "2023-01", expected: OrderInputStyleLegacy},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, defaultOrderInputStyle(tc.version))
		})
	}
}
