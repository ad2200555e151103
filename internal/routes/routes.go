package routes

const (
	// Health
	Health = "/health"

	// Quote endpoints
	Quotes       = "/api/v1/quotes"
	QuoteOptions = "/api/v1/quotes/options"
)
