package kafka

import "time"

type SettlementEvent struct {
	PaymentID       string    `json:"payment_id"`
	ReferenceNumber string    `json:"reference_number"`
	BatchReference  string    `json:"batch_reference"`
	Amount          float64   `json:"amount"`
	Currency        string    `json:"currency"`
	PayeeAccount    string    `json:"payee_account"`
	SwiftCode       string    `json:"swift_code"`
	SubmittedBy     string    `json:"submitted_by"`
	SubmittedAt     time.Time `json:"submitted_at"`
}
