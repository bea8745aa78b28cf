package pos

import (
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/zap/zaptest"
)

func newTestPointOfSale(t *testing.T) (*PointOfSale, *Display, *ShoppingCart) {
	t.Helper()
	catalog := NewCatalog(map[string]decimal.Decimal{
		"12345": decimal.RequireFromString("7.25"),
		"23456": decimal.RequireFromString("12.50"),
	})
	cart := NewShoppingCart()
	display := NewDisplay()
	return New(catalog, cart, display, zaptest.NewLogger(t)), display, cart
}

func TestOnBarcode_ProductFound(t *testing.T) {
	tests := []struct {
		barcode string
		want    string
	}{
		{"12345", "$7.25"},
		{"23456", "$12.50"},
	}

	for _, tt := range tests {
		t.Run(tt.barcode, func(t *testing.T) {
			pos, display, cart := newTestPointOfSale(t)

			pos.OnBarcode(tt.barcode)

			if got := display.Text(); got != tt.want {
				t.Errorf("expected display %q, got %q", tt.want, got)
			}
			if cart.Count() != 1 {
				t.Errorf("expected 1 price in cart, got %d", cart.Count())
			}
		})
	}
}

func TestOnBarcode_ProductNotFound(t *testing.T) {
	pos, display, cart := newTestPointOfSale(t)

	pos.OnBarcode("99999")

	if got := display.Text(); got != "Error: barcode not found" {
		t.Errorf("expected not found error, got %q", got)
	}
	if cart.Count() != 0 {
		t.Errorf("expected empty cart, got %d prices", cart.Count())
	}
}

func TestOnBarcode_EmptyBarcode(t *testing.T) {
	for _, barcode := range []string{"", " ", "\t\n"} {
		pos, display, cart := newTestPointOfSale(t)

		pos.OnBarcode(barcode)

		if got := display.Text(); got != "Error: empty barcode" {
			t.Errorf("barcode %q: expected empty barcode error, got %q", barcode, got)
		}
		if cart.Count() != 0 {
			t.Errorf("barcode %q: expected empty cart, got %d prices", barcode, cart.Count())
		}
	}
}

func TestOnBarcode_SurroundingWhitespaceIsNotTrimmed(t *testing.T) {
	pos, display, _ := newTestPointOfSale(t)

	pos.OnBarcode(" 12345 ")

	if got := display.Text(); got != "Error: barcode not found" {
		t.Errorf("expected not found error, got %q", got)
	}
}

func TestTotal_NoProductScanned(t *testing.T) {
	pos, display, _ := newTestPointOfSale(t)

	pos.Total()

	if got := display.Text(); got != "Total: $0.00" {
		t.Errorf("expected zero total, got %q", got)
	}
}

func TestTotal_OneProductScanned(t *testing.T) {
	pos, display, _ := newTestPointOfSale(t)

	pos.OnBarcode("12345")
	pos.Total()

	want := "$7.25\nTotal: $7.25"
	if got := display.Text(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestTotal_ManyProductsScanned(t *testing.T) {
	pos, display, _ := newTestPointOfSale(t)

	pos.OnBarcode("12345")
	pos.OnBarcode("23456")
	pos.Total()

	want := "$7.25\n$12.50\nTotal: $19.75"
	if got := display.Text(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestTotal_OnlyFoundProductsCount(t *testing.T) {
	pos, display, _ := newTestPointOfSale(t)

	pos.OnBarcode("12345")
	pos.OnBarcode("99999")
	pos.OnBarcode("")
	pos.Total()

	want := "$7.25\nError: barcode not found\nError: empty barcode\nTotal: $7.25"
	if got := display.Text(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestNew_NilLogger(t *testing.T) {
	pos := New(NewCatalog(nil), NewShoppingCart(), NewDisplay(), nil)
	pos.OnBarcode("12345")
	pos.Total()
}
