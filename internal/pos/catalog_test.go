package pos

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCatalog_FindPrice(t *testing.T) {
	catalog := NewCatalog(map[string]decimal.Decimal{
		"12345": decimal.RequireFromString("7.25"),
	})

	for i := 0; i < 3; i++ {
		price, ok := catalog.FindPrice("12345")
		if !ok {
			t.Fatal("expected barcode to be found")
		}
		if !price.Equal(decimal.RequireFromString("7.25")) {
			t.Errorf("expected price 7.25, got %s", price)
		}
	}

	if _, ok := catalog.FindPrice("99999"); ok {
		t.Error("expected unknown barcode to be missing")
	}
	if catalog.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", catalog.Len())
	}
}

func TestCatalog_CopiesInput(t *testing.T) {
	prices := map[string]decimal.Decimal{"12345": decimal.RequireFromString("7.25")}
	catalog := NewCatalog(prices)

	prices["12345"] = decimal.RequireFromString("1.00")
	prices["23456"] = decimal.RequireFromString("2.00")

	price, _ := catalog.FindPrice("12345")
	if !price.Equal(decimal.RequireFromString("7.25")) {
		t.Errorf("catalog changed after construction: got %s", price)
	}
	if _, ok := catalog.FindPrice("23456"); ok {
		t.Error("catalog picked up a barcode added after construction")
	}
}

func TestCatalog_LookupIsVerbatim(t *testing.T) {
	catalog := NewCatalog(map[string]decimal.Decimal{"ABC": decimal.NewFromInt(1)})

	for _, barcode := range []string{"abc", " ABC", "ABC "} {
		if _, ok := catalog.FindPrice(barcode); ok {
			t.Errorf("expected %q not to match", barcode)
		}
	}
}

func TestShoppingCart_Total(t *testing.T) {
	cart := NewShoppingCart()
	if !cart.Total().IsZero() {
		t.Errorf("expected zero total for empty cart, got %s", cart.Total())
	}

	// 0.1 + 0.2 is exact in decimal
	cart.Add(decimal.RequireFromString("0.1"))
	cart.Add(decimal.RequireFromString("0.2"))
	if !cart.Total().Equal(decimal.RequireFromString("0.3")) {
		t.Errorf("expected 0.3, got %s", cart.Total())
	}

	cart.Add(decimal.Zero)
	cart.Add(decimal.RequireFromString("-0.3"))
	if !cart.Total().IsZero() {
		t.Errorf("expected zero after negative price, got %s", cart.Total())
	}
	if cart.Count() != 4 {
		t.Errorf("expected 4 prices, got %d", cart.Count())
	}
}
