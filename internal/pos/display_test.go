package pos

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		price string
		want  string
	}{
		{"0", "$0.00"},
		{"7.25", "$7.25"},
		{"12.5", "$12.50"},
		{"19.75", "$19.75"},
		{"1234.5", "$1,234.50"},
		{"1234567.891", "$1,234,567.89"},
		{"0.005", "$0.01"},
		{"2.345", "$2.35"},
		{"0.004", "$0.00"},
		{"999.995", "$1,000.00"},
		{"-7.25", "$-7.25"},
		{"-0.005", "$-0.01"},
		{"-1234.5", "$-1,234.50"},
	}

	for _, tt := range tests {
		t.Run(tt.price, func(t *testing.T) {
			got := FormatPrice(decimal.RequireFromString(tt.price))
			if got != tt.want {
				t.Errorf("FormatPrice(%s) = %q, want %q", tt.price, got, tt.want)
			}
		})
	}
}

func TestDisplay_Text(t *testing.T) {
	display := NewDisplay()
	if display.Text() != "" {
		t.Errorf("expected empty text, got %q", display.Text())
	}

	display.ShowPrice(decimal.RequireFromString("7.25"))
	display.ShowProductNotFound()
	display.ShowEmptyBarcode()
	display.ShowTotal(decimal.RequireFromString("7.25"))

	want := "$7.25\nError: barcode not found\nError: empty barcode\nTotal: $7.25"
	if got := display.Text(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestDisplay_LinesIsACopy(t *testing.T) {
	display := NewDisplay()
	display.ShowEmptyBarcode()

	lines := display.Lines()
	lines[0] = "changed"

	if display.Text() != MsgEmptyBarcode {
		t.Errorf("display changed through Lines(): %q", display.Text())
	}
}
