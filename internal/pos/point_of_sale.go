package pos

import (
	"strings"

	"go.uber.org/zap"
)

// PointOfSale routes scanner events to the catalog, the cart and the display.
// Failures never leave the controller: they only show up as display lines.
type PointOfSale struct {
	catalog *Catalog
	cart    *ShoppingCart
	display *Display
	logger  *zap.Logger
}

func New(catalog *Catalog, cart *ShoppingCart, display *Display, logger *zap.Logger) *PointOfSale {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PointOfSale{
		catalog: catalog,
		cart:    cart,
		display: display,
		logger:  logger,
	}
}

// OnBarcode handles one scan. The barcode is looked up exactly as received;
// only a blank barcode is rejected before the lookup.
func (p *PointOfSale) OnBarcode(barcode string) {
	if isBlank(barcode) {
		p.logger.Debug("Empty barcode scanned")
		p.display.ShowEmptyBarcode()
		return
	}

	price, found := p.catalog.FindPrice(barcode)
	if !found {
		p.logger.Debug("Barcode not in catalog", zap.String("barcode", barcode))
		p.display.ShowProductNotFound()
		return
	}

	p.cart.Add(price)
	p.display.ShowPrice(price)
	p.logger.Debug("Product scanned",
		zap.String("barcode", barcode),
		zap.String("price", price.StringFixed(priceDecimals)))
}

// Total shows the running cart sum, including "$0.00" when nothing was scanned.
func (p *PointOfSale) Total() {
	total := p.cart.Total()
	p.display.ShowTotal(total)
	p.logger.Debug("Total shown",
		zap.Int("items", p.cart.Count()),
		zap.String("total", total.StringFixed(priceDecimals)))
}

func isBlank(barcode string) bool {
	return strings.TrimSpace(barcode) == ""
}
