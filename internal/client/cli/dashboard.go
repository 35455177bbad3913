package cli

import (
	"context"
	"fmt"

	"github.com/jcsoftlabs/Yeng-client/internal/client/models"
)

// Dashboard fetches and renders the landing page: counters, the USA
// forwarding address, and the recent parcels strip.
func (a *App) Dashboard(ctx context.Context) error {
	data, err := a.parcels.Dashboard(ctx)
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Parcels: %d total, %d in transit, %d delivered, %d awaiting payment",
		data.Stats.TotalParcels, data.Stats.InTransit, data.Stats.Delivered, data.Stats.PendingPayment))

	if data.Customer != nil {
		printlnFn("")
		printlnFn("Your USA forwarding address:")
		printlnFn(data.Customer.USAAddress())
	}

	if len(data.Recent) > 0 {
		printlnFn("")
		printlnFn("Recent parcels:")
		for _, p := range data.Recent {
			printlnFn(fmt.Sprintf("  %-16s %-24s %s", p.TrackingNumber, models.StatusLabel(p.Status), p.Description))
		}
	}
	return nil
}
