package models

import "time"

// Invoice is billing metadata attached to a parcel. The PDF itself is fetched
// separately as a binary payload.
type Invoice struct {
	ID            string    `json:"id"`
	InvoiceNumber string    `json:"invoiceNumber"`
	ParcelID      string    `json:"parcelId,omitempty"`
	Amount        float64   `json:"amount"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}
