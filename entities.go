package main

// Defaults substituted into an order when the Mini Program sends no
// email or note, plus the tag that marks where the order came from.
const (
	DefaultOrderEmail = "no-email@example.com"
	DefaultOrderNote  = "Order from WeChat Mini Program"
	OrderChannelTag   = "wechat-mini-program"
)

// StockResult is the response body of GET /api/stock.
type StockResult struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Available bool   `json:"available"`
}

// NewStockResult derives the availability flag from the reported
// quantity; anything above zero counts as available.
func NewStockResult(productID string, quantity int) *StockResult {
	return &StockResult{
		ProductID: productID,
		Quantity:  quantity,
		Available: quantity > 0,
	}
}

// CreateOrderRequest is the body of POST /api/create-order.
type CreateOrderRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
	Email     string `json:"email"`
	Note      string `json:"note"`
}

// ApplyDefaults fills the optional fields with their documented
// defaults so the upstream always receives a complete order input.
func (r *CreateOrderRequest) ApplyDefaults() {
	if r.Email == "" {
		r.Email = DefaultOrderEmail
	}
	if r.Note == "" {
		r.Note = DefaultOrderNote
	}
}

// Money carries an upstream price verbatim. Amount stays the decimal
// string Shopify reports; this service does no arithmetic on it.
type Money struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

// Order is the created order as reported by upstream.
type Order struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	TotalPrice Money  `json:"totalPrice"`
}

// OrderResult is the response body of a successful order creation.
type OrderResult struct {
	Success bool   `json:"success"`
	Order   *Order `json:"order"`
}

// UserError is one entry of Shopify's userErrors list; it is passed
// through to the caller untouched.
type UserError struct {
	Field   []string `json:"field"`
	Message string   `json:"message"`
}
