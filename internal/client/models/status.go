package models

// Parcel statuses, ordered by typical lifecycle.
const (
	StatusPending        = "PENDING"
	StatusInTransitUSA   = "IN_TRANSIT_USA"
	StatusDepartedUSA    = "DEPARTED_USA"
	StatusInTransitHaiti = "IN_TRANSIT_HAITI"
	StatusArrivedHaiti   = "ARRIVED_HAITI"
	StatusReadyForPickup = "READY_FOR_PICKUP"
	StatusPickedUp       = "PICKED_UP"
	StatusCancelled      = "CANCELLED"
)

// Payment statuses.
const (
	PaymentPending = "PENDING"
	PaymentPaid    = "PAID"
)

// statusLabels maps parcel statuses to their customer-facing French labels.
var statusLabels = map[string]string{
	StatusPending:        "En attente",
	StatusInTransitUSA:   "En transit (USA)",
	StatusDepartedUSA:    "A quitté USA",
	StatusInTransitHaiti: "En transit vers Haiti",
	StatusArrivedHaiti:   "Arrivé en Haiti",
	StatusReadyForPickup: "Prêt pour récupération",
	StatusPickedUp:       "Récupéré",
	StatusCancelled:      "Annulé",
}

// StatusLabel returns the display label for a parcel status. Unknown values
// fall back to the raw status instead of failing.
func StatusLabel(status string) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return status
}

// KnownStatus reports whether status is one of the fixed enumeration values.
func KnownStatus(status string) bool {
	_, ok := statusLabels[status]
	return ok
}

// Statuses returns the enumeration in lifecycle order, for filter menus.
func Statuses() []string {
	return []string{
		StatusPending,
		StatusInTransitUSA,
		StatusDepartedUSA,
		StatusInTransitHaiti,
		StatusArrivedHaiti,
		StatusReadyForPickup,
		StatusPickedUp,
		StatusCancelled,
	}
}
