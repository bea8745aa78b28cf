package pos

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Session is one checkout: its own cart and display over a shared catalog.
type Session struct {
	ID      string
	Display *Display

	pos *PointOfSale
}

func NewSession(catalog *Catalog, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	id := uuid.NewString()
	display := NewDisplay()
	return &Session{
		ID:      id,
		Display: display,
		pos:     New(catalog, NewShoppingCart(), display, logger.With(zap.String("session_id", id))),
	}
}

// Scan feeds one barcode and returns the lines it added to the display.
func (s *Session) Scan(barcode string) []string {
	return s.record(func() { s.pos.OnBarcode(barcode) })
}

// Total shows the cart total and returns the lines it added to the display.
func (s *Session) Total() []string {
	return s.record(s.pos.Total)
}

func (s *Session) Text() string {
	return s.Display.Text()
}

func (s *Session) record(event func()) []string {
	before := len(s.Display.lines)
	event()
	return s.Display.Lines()[before:]
}
