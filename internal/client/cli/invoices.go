package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jcsoftlabs/Yeng-client/internal/client/models"
	"github.com/jcsoftlabs/Yeng-client/internal/filex"
)

// writeFileFn is a test seam for saving the PDF payload.
var writeFileFn = os.WriteFile

// Invoices lists the customer's invoices.
func (a *App) Invoices(ctx context.Context) error {
	invoices, err := a.invoices.List(ctx)
	if err != nil {
		return err
	}
	if len(invoices) == 0 {
		printlnFn("No invoices yet.")
		return nil
	}
	for _, inv := range invoices {
		printlnFn(formatInvoice(&inv))
	}
	return nil
}

// Invoice renders a single invoice.
func (a *App) Invoice(ctx context.Context, id string) error {
	invoice, err := a.invoices.Get(ctx, id)
	if err != nil {
		return err
	}
	printlnFn(formatInvoice(invoice))
	return nil
}

// DownloadInvoice fetches the invoice PDF and saves it under
// ./downloads/<portal file name>.
func (a *App) DownloadInvoice(ctx context.Context, id string) error {
	payload, name, err := a.invoices.DownloadPDF(ctx, id)
	if err != nil {
		return err
	}

	dir, err := filex.EnsureSubDir("downloads")
	if err != nil {
		return err
	}

	target := filepath.Join(dir, name)
	if err := writeFileFn(target, payload, 0o600); err != nil {
		return fmt.Errorf("save %s: %w", target, err)
	}

	printlnFn("Saved", target)
	return nil
}

func formatInvoice(inv *models.Invoice) string {
	return fmt.Sprintf("%-16s %10.2f USD  %-8s %s",
		inv.InvoiceNumber, inv.Amount, inv.Status, inv.CreatedAt.Format("2006-01-02"))
}
