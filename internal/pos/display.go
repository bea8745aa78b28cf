package pos

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	lineSeparator = "\n"

	MsgProductNotFound = "Error: barcode not found"
	MsgEmptyBarcode    = "Error: empty barcode"
	totalPrefix        = "Total: "
)

// Display is an append-only buffer of rendered lines.
type Display struct {
	lines []string
}

func NewDisplay() *Display {
	return &Display{}
}

func (d *Display) ShowPrice(price decimal.Decimal) {
	d.lines = append(d.lines, FormatPrice(price))
}

func (d *Display) ShowProductNotFound() {
	d.lines = append(d.lines, MsgProductNotFound)
}

func (d *Display) ShowEmptyBarcode() {
	d.lines = append(d.lines, MsgEmptyBarcode)
}

func (d *Display) ShowTotal(total decimal.Decimal) {
	d.lines = append(d.lines, totalPrefix+FormatPrice(total))
}

// Text joins the lines in the order they were shown, without a trailing newline.
func (d *Display) Text() string {
	return strings.Join(d.lines, lineSeparator)
}

// Lines returns a copy of the rendered lines.
func (d *Display) Lines() []string {
	out := make([]string, len(d.lines))
	copy(out, d.lines)
	return out
}
