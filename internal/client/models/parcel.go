package models

import "time"

// Parcel is a customer's shipment as the backend reports it. The portal never
// mutates parcels; monetary fields are computed server-side.
type Parcel struct {
	ID             string          `json:"id"`
	TrackingNumber string          `json:"trackingNumber"`
	Description    string          `json:"description"`
	Status         string          `json:"status"`
	PaymentStatus  string          `json:"paymentStatus"`
	Weight         float64         `json:"weight"`
	DeclaredValue  float64         `json:"declaredValue"`
	ShippingFee    float64         `json:"shippingFee"`
	TaxAmount      float64         `json:"taxAmount"`
	Discount       float64         `json:"discount"`
	TotalAmount    float64         `json:"totalAmount"`
	Customer       *ParcelCustomer `json:"customer,omitempty"`
	Invoice        *Invoice        `json:"invoice,omitempty"`
	TrackingEvents []TrackingEvent `json:"trackingEvents,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// ParcelCustomer is the owner subset included in public tracking responses.
type ParcelCustomer struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// TrackingEvent is one append-only status/location/description record on a
// parcel's timeline.
type TrackingEvent struct {
	ID          string    `json:"id"`
	Status      string    `json:"status"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// InsuranceRate is applied to the declared value when it is positive.
const InsuranceRate = 0.02

// Insurance returns the insurance portion of the parcel cost, zero when no
// value was declared.
func (p *Parcel) Insurance() float64 {
	if p.DeclaredValue <= 0 {
		return 0
	}
	return p.DeclaredValue * InsuranceRate
}
