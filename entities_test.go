package main

import "testing"

func TestNewStockResult(t *testing.T) {
	testCases := map[string]struct {
		quantity  int
		available bool
	}{
		"zero inventory is unavailable":     {quantity: 0, available: false},
		"single unit is available":          {quantity: 1, available: true},
		"large inventory is available":      {quantity: 250, available: true},
		"negative inventory is unavailable": {quantity: -3, available: false},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			result := NewStockResult("p1", tc.quantity)

			if result.ProductID != "p1" {
				t.Errorf("Expected ProductID p1, got %s", result.ProductID)
			}
			if result.Quantity != tc.quantity {
				t.Errorf("Expected Quantity %d, got %d", tc.quantity, result.Quantity)
			}
			if result.Available != tc.available {
				t.Errorf("Expected Available %v, got %v", tc.available, result.Available)
			}
		})
	}
}

func TestCreateOrderRequest_ApplyDefaults(t *testing.T) {
	req := CreateOrderRequest{ProductID: "p1", Quantity: 1}
	req.ApplyDefaults()

	if req.Email != DefaultOrderEmail {
		t.Errorf("Expected default email %s, got %s", DefaultOrderEmail, req.Email)
	}
	if req.Note != DefaultOrderNote {
		t.Errorf("Expected default note %q, got %q", DefaultOrderNote, req.Note)
	}
}

func TestCreateOrderRequest_ApplyDefaultsKeepsProvidedValues(t *testing.T) {
	req := CreateOrderRequest{
		ProductID: "p1",
		Quantity:  1,
		Email:     "buyer@example.com",
		Note:      "gift wrap please",
	}
	req.ApplyDefaults()

	if req.Email != "buyer@example.com" {
		t.Errorf("Expected provided email to survive, got %s", req.Email)
	}
	if req.Note != "gift wrap please" {
		t.Errorf("Expected provided note to survive, got %s", req.Note)
	}
}
