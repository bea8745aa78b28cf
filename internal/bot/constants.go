package bot

const (
	CommandStart   = "start"
	CommandNew     = "new"
	CommandTotal   = "total"
	CommandReceipt = "receipt"
	CommandHelp    = "help"
	CommandReload  = "reload"
)

const (
	ButtonTotal       = "🧾 Total"
	ButtonNewCheckout = "🆕 New checkout"
	ButtonReceipt     = "📄 Receipt"
)

const (
	msgWelcome = `Point of sale is ready.

Send a barcode to scan a product.
Press "🧾 Total" or send /total to see the total.`

	msgNewCheckout  = "New checkout started."
	msgEmptyReceipt = "Nothing on the display yet."

	msgHelp = `Commands:
/new - start a new checkout
/total - show the cart total
/receipt - show everything displayed in this checkout
/help - show this help

Any other text is scanned as a barcode.`

	msgUnknownCommand = "Unknown command. Send /help for the list of commands."
	msgReloadFailed   = "Catalog reload failed, the previous catalog stays active."
)
