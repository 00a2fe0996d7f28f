package request

import "encoding/json"

type CreateProjectRequest struct {
	ClientID    string  `json:"client_id" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	QuoteAmount float64 `json:"quote_amount"`
}

// SetQuoteRequest sets the project-level quote. Zero clears it.
type SetQuoteRequest struct {
	Amount float64 `json:"amount"`
}

// CollectPaymentRequest records a project payment. Kind is deposit, progress
// or balance; balance ignores the amount and stamps the balance date instead.
// MPPayload, when present, is forwarded verbatim to the payment gateway.
type CollectPaymentRequest struct {
	Kind      string          `json:"kind" binding:"required"`
	Amount    float64         `json:"amount"`
	MPPayload json.RawMessage `json:"mp_payload"`
}
