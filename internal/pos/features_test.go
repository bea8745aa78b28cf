package pos_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"posbot/internal/pos"

	"github.com/cucumber/godog"
	"github.com/cucumber/godog/colors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var opts = godog.Options{
	Output:      colors.Colored(os.Stdout),
	Format:      "progress",
	Paths:       []string{"features"},
	Randomize:   0,
	Concurrency: 1,
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options:             &opts,
	}

	if suite.Run() != 0 {
		t.Fail()
	}
}

type checkoutTestContext struct {
	prices  map[string]decimal.Decimal
	display *pos.Display
	pos     *pos.PointOfSale
}

func (c *checkoutTestContext) reset() {
	c.prices = map[string]decimal.Decimal{}
	c.display = nil
	c.pos = nil
}

func (c *checkoutTestContext) aCatalogWithProducts(table *godog.Table) error {
	for i, row := range table.Rows {
		if i == 0 {
			continue // skip header
		}
		price, err := decimal.NewFromString(row.Cells[1].Value)
		if err != nil {
			return fmt.Errorf("bad price %q: %w", row.Cells[1].Value, err)
		}
		c.prices[row.Cells[0].Value] = price
	}

	c.display = pos.NewDisplay()
	c.pos = pos.New(pos.NewCatalog(c.prices), pos.NewShoppingCart(), c.display, zap.NewNop())
	return nil
}

func (c *checkoutTestContext) iScan(barcode string) error {
	c.pos.OnBarcode(barcode)
	return nil
}

func (c *checkoutTestContext) iAskForTheTotal() error {
	c.pos.Total()
	return nil
}

func (c *checkoutTestContext) theDisplayShows(expected string) error {
	if got := c.display.Text(); got != expected {
		return fmt.Errorf("expected display %q, got %q", expected, got)
	}
	return nil
}

func (c *checkoutTestContext) theDisplayShowsText(doc *godog.DocString) error {
	return c.theDisplayShows(doc.Content)
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &checkoutTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	ctx.Step(`^a catalog with products:$`, tc.aCatalogWithProducts)
	ctx.Step(`^I scan "([^"]*)"$`, tc.iScan)
	ctx.Step(`^I ask for the total$`, tc.iAskForTheTotal)
	ctx.Step(`^the display shows "([^"]*)"$`, tc.theDisplayShows)
	ctx.Step(`^the display shows:$`, tc.theDisplayShowsText)
}
