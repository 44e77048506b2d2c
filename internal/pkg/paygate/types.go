package paygate

// CreateIntentRequest describes a payable intent to be created on the gateway.
type CreateIntentRequest struct {
	AmountCents    int64    // Minor currency units
	Currency       string   // ISO currency code, e.g. "usd"
	PaymentMethods []string // Allowed method types, e.g. ["card"]
	IdempotencyKey string   // Lets the gateway de-duplicate retried requests
}

// Intent is the gateway's view of a created payment intent. ClientSecret is
// handed to the client so it can confirm the charge directly with the
// gateway; the backend never sees card data.
type Intent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
}
