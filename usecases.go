package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
)

const productStockQuery = `
query productStock($id: ID!) {
  product(id: $id) {
    id
    title
    totalInventory
  }
}`

const firstVariantQuery = `
query firstVariant($id: ID!) {
  product(id: $id) {
    id
    variants(first: 1) {
      edges {
        node {
          id
        }
      }
    }
  }
}`

const orderCreateMutationModern = `
mutation orderCreate($order: OrderCreateOrderInput!) {
  orderCreate(order: $order) {
    order {
      id
      name
      email
      totalPriceSet {
        shopMoney {
          amount
          currencyCode
        }
      }
    }
    userErrors {
      field
      message
    }
  }
}`

const orderCreateMutationLegacy = `
mutation orderCreate($input: OrderInput!) {
  orderCreate(input: $input) {
    order {
      id
      name
      email
      totalPriceSet {
        shopMoney {
          amount
          currencyCode
        }
      }
    }
    userErrors {
      field
      message
    }
  }
}`

// orderCreateDialect keeps the mutation text, its argument name and the
// financial-status casing consistent with each other, so only one form
// of the versioned contract ever reaches the wire.
type orderCreateDialect struct {
	mutation        string
	inputKey        string
	financialStatus string
}

func dialectFor(style string) orderCreateDialect {
	if style == OrderInputStyleLegacy {
		return orderCreateDialect{
			mutation:        orderCreateMutationLegacy,
			inputKey:        "input",
			financialStatus: "paid",
		}
	}
	return orderCreateDialect{
		mutation:        orderCreateMutationModern,
		inputKey:        "order",
		financialStatus: "PAID",
	}
}

type productStockPayload struct {
	Product *struct {
		ID             string `json:"id"`
		Title          string `json:"title"`
		TotalInventory *int   `json:"totalInventory"`
	} `json:"product"`
}

type firstVariantPayload struct {
	Product *struct {
		ID       string `json:"id"`
		Variants struct {
			Edges []struct {
				Node struct {
					ID string `json:"id"`
				} `json:"node"`
			} `json:"edges"`
		} `json:"variants"`
	} `json:"product"`
}

type orderCreatePayload struct {
	OrderCreate struct {
		Order *struct {
			ID            string `json:"id"`
			Name          string `json:"name"`
			Email         string `json:"email"`
			TotalPriceSet struct {
				ShopMoney Money `json:"shopMoney"`
			} `json:"totalPriceSet"`
		} `json:"order"`
		UserErrors []UserError `json:"userErrors"`
	} `json:"orderCreate"`
}

// BridgeUseCase holds the business logic of the two bridge operations.
type BridgeUseCase struct {
	client  GraphQLClient
	dialect orderCreateDialect
}

// NewBridgeUseCase creates a new BridgeUseCase instance
func NewBridgeUseCase(client GraphQLClient, cfg Config) *BridgeUseCase {
	return &BridgeUseCase{
		client:  client,
		dialect: dialectFor(cfg.OrderInputStyle),
	}
}

// GetStock looks up a product's total inventory. A null product means
// not found; a null inventory field counts as zero.
func (uc *BridgeUseCase) GetStock(ctx context.Context, productID string) (*StockResult, error) {
	data, err := uc.client.Execute(ctx, productStockQuery, map[string]any{"id": productID})
	if err != nil {
		return nil, fmt.Errorf("failed to query stock: %w", err)
	}

	var payload productStockPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode stock response: %w", err)
	}

	if payload.Product == nil {
		return nil, &NotFoundError{Resource: "product", ID: productID}
	}

	quantity := 0
	if payload.Product.TotalInventory != nil {
		quantity = *payload.Product.TotalInventory
	}

	return NewStockResult(productID, quantity), nil
}

// CreateOrder runs the two-step order flow: resolve the product's first
// variant, then submit the orderCreate mutation with that variant as a
// single line item. The two steps are not atomic; a mutation failure
// after a successful lookup leaves nothing to undo upstream.
func (uc *BridgeUseCase) CreateOrder(ctx context.Context, req CreateOrderRequest) (*Order, error) {
	req.ApplyDefaults()

	variantID, err := uc.resolveFirstVariant(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	log.Printf("➡️ [CREATE ORDER] ProductID: %s | VariantID: %s | Quantity: %d", req.ProductID, variantID, req.Quantity)

	orderInput := map[string]any{
		"lineItems": []map[string]any{
			{"variantId": variantID, "quantity": req.Quantity},
		},
		"tags":  []string{OrderChannelTag},
		"note":  req.Note,
		"email": req.Email,
		// No real payment capture happens in this bridge; orders are
		// marked paid unconditionally.
		"financialStatus": uc.dialect.financialStatus,
	}

	data, err := uc.client.Execute(ctx, uc.dialect.mutation, map[string]any{uc.dialect.inputKey: orderInput})
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	var payload orderCreatePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode order response: %w", err)
	}

	if len(payload.OrderCreate.UserErrors) > 0 {
		return nil, &UserErrorsError{Errors: payload.OrderCreate.UserErrors}
	}

	created := payload.OrderCreate.Order
	if created == nil {
		return nil, fmt.Errorf("shopify returned no order and no userErrors")
	}

	log.Printf("✅ Order created: %s (%s)", created.ID, created.Name)

	return &Order{
		ID:         created.ID,
		Name:       created.Name,
		Email:      created.Email,
		TotalPrice: created.TotalPriceSet.ShopMoney,
	}, nil
}

// resolveFirstVariant returns the id of the product's first variant
// edge. A missing product or an empty edge list both end the flow with
// a NotFoundError before any mutation is attempted.
func (uc *BridgeUseCase) resolveFirstVariant(ctx context.Context, productID string) (string, error) {
	data, err := uc.client.Execute(ctx, firstVariantQuery, map[string]any{"id": productID})
	if err != nil {
		return "", fmt.Errorf("failed to query variant: %w", err)
	}

	var payload firstVariantPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return "", fmt.Errorf("failed to decode variant response: %w", err)
	}

	if payload.Product == nil {
		return "", &NotFoundError{Resource: "product", ID: productID}
	}
	if len(payload.Product.Variants.Edges) == 0 {
		return "", &NotFoundError{Resource: "variant for product", ID: productID}
	}

	return payload.Product.Variants.Edges[0].Node.ID, nil
}
