package pos

import "github.com/shopspring/decimal"

// Catalog maps barcodes to prices. It is filled once by NewCatalog and is
// read-only afterwards, so one Catalog can back any number of sessions.
type Catalog struct {
	priceByBarcode map[string]decimal.Decimal
}

func NewCatalog(prices map[string]decimal.Decimal) *Catalog {
	priceByBarcode := make(map[string]decimal.Decimal, len(prices))
	for barcode, price := range prices {
		priceByBarcode[barcode] = price
	}
	return &Catalog{priceByBarcode: priceByBarcode}
}

// FindPrice looks the barcode up verbatim. The second result is false when
// the catalog has no such product.
func (c *Catalog) FindPrice(barcode string) (decimal.Decimal, bool) {
	price, ok := c.priceByBarcode[barcode]
	return price, ok
}

func (c *Catalog) Len() int {
	return len(c.priceByBarcode)
}
