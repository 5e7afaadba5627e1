package main

import "os"

// orderCreate's input argument was renamed between Admin API versions:
// releases before 2024-10 take `input: OrderInput`, 2024-10 and later
// take `order: OrderCreateOrderInput`.
const (
	OrderInputStyleModern = "order"
	OrderInputStyleLegacy = "input"
)

// Config holds everything read from the environment at startup. It is
// built once in main and passed down; nothing mutates it afterwards.
type Config struct {
	ShopDomain      string
	AccessToken     string
	APIVersion      string
	OrderInputStyle string
	Port            string
	ServiceName     string
}

// LoadConfig reads the configuration from the process environment. A
// missing access token is not an error here: the server still starts,
// and every upstream call fails closed until the token is provided.
func LoadConfig() Config {
	version := getEnv("SHOPIFY_API_VERSION", "2024-10")

	return Config{
		ShopDomain:      getEnv("SHOPIFY_SHOP_DOMAIN", "your-shop.myshopify.com"),
		AccessToken:     os.Getenv("SHOPIFY_ACCESS_TOKEN"),
		APIVersion:      version,
		OrderInputStyle: getEnv("SHOPIFY_ORDER_INPUT_STYLE", defaultOrderInputStyle(version)),
		Port:            getEnv("PORT", "3000"),
		ServiceName:     getEnv("SERVICE_NAME", "wechat-shopify-server"),
	}
}

// defaultOrderInputStyle picks the orderCreate argument dialect for an
// Admin API version. Versions are "YYYY-MM" strings, so a plain string
// comparison orders them correctly.
func defaultOrderInputStyle(version string) string {
	if version >= "2024-10" {
		return OrderInputStyleModern
	}
	return OrderInputStyleLegacy
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
