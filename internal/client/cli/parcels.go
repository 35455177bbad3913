package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/jcsoftlabs/Yeng-client/internal/client/models"
	"github.com/jcsoftlabs/Yeng-client/internal/client/services"
)

// Parcels fetches the parcel list and renders it with the page's client-side
// filters applied. The first argument is a free-text search term, the second
// a status from the fixed enumeration (or ALL). A lone status argument is
// recognized and treated as a filter, not a search term.
func (a *App) Parcels(ctx context.Context, args []string) error {
	term, status := parseParcelFilters(args)

	parcels, err := a.parcels.List(ctx)
	if err != nil {
		return err
	}

	filtered := services.FilterParcels(parcels, term, status)
	if len(filtered) == 0 {
		printlnFn("No parcels match.")
		return nil
	}

	for _, p := range filtered {
		printlnFn(fmt.Sprintf("%-16s %-24s %-10s %8.2f USD  %s",
			p.TrackingNumber, models.StatusLabel(p.Status), p.PaymentStatus, p.TotalAmount, p.Description))
	}
	return nil
}

func parseParcelFilters(args []string) (term, status string) {
	status = services.FilterAll
	switch len(args) {
	case 0:
	case 1:
		if isStatusArg(args[0]) {
			status = strings.ToUpper(args[0])
		} else {
			term = args[0]
		}
	default:
		term = args[0]
		if isStatusArg(args[1]) {
			status = strings.ToUpper(args[1])
		}
	}
	return term, status
}

func isStatusArg(arg string) bool {
	upper := strings.ToUpper(arg)
	return upper == services.FilterAll || models.KnownStatus(upper)
}

// Parcel renders a single parcel with its cost breakdown and timeline.
func (a *App) Parcel(ctx context.Context, id string) error {
	parcel, err := a.parcels.Get(ctx, id)
	if err != nil {
		return err
	}
	renderParcel(parcel)
	return nil
}

// Track is the public tracking lookup; it works logged out.
func (a *App) Track(ctx context.Context, trackingNumber string) error {
	parcel, err := a.parcels.Track(ctx, trackingNumber)
	if err != nil {
		return err
	}
	renderParcel(parcel)
	return nil
}

func renderParcel(p *models.Parcel) {
	printlnFn(fmt.Sprintf("%s — %s", p.TrackingNumber, models.StatusLabel(p.Status)))
	if p.Description != "" {
		printlnFn(p.Description)
	}
	if p.Customer != nil {
		printlnFn(fmt.Sprintf("Owner: %s %s", p.Customer.FirstName, p.Customer.LastName))
	}

	if p.TotalAmount > 0 {
		printlnFn(fmt.Sprintf("Weight: %.2f lb, declared value: %.2f USD", p.Weight, p.DeclaredValue))
		printlnFn(fmt.Sprintf("Shipping %.2f + tax %.2f + insurance %.2f - discount %.2f = %.2f USD (%s)",
			p.ShippingFee, p.TaxAmount, p.Insurance(), p.Discount, p.TotalAmount, p.PaymentStatus))
	}

	if p.Invoice != nil {
		printlnFn(fmt.Sprintf("Invoice %s (download with: pdf %s)", p.Invoice.InvoiceNumber, p.Invoice.ID))
	}

	if len(p.TrackingEvents) > 0 {
		printlnFn("Timeline:")
		for _, e := range p.TrackingEvents {
			printlnFn(fmt.Sprintf("  %s  %-24s %-20s %s",
				e.CreatedAt.Format("2006-01-02 15:04"), models.StatusLabel(e.Status), e.Location, e.Description))
		}
	}
}
