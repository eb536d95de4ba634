package rest

type summaryRequest struct {
	Message string `json:"message"`
}

// Fixed bodies returned to the caller; upstream detail only goes to the log.
const (
	msgStockRequired      = "Stock symbol required"
	msgStockDataFailed    = "Failed to fetch stock data"
	msgMissingStockSymbol = "Missing stock symbol"
	msgNewsFailed         = "Failed to fetch news"
	msgNoMessage          = "No message provided"
	msgSummaryFailed      = "Error contacting Groq API"
	msgNotFound           = "Not found"
	msgInternal           = "Internal server error"
)
