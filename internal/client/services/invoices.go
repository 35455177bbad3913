package services

import (
	"context"
	"fmt"

	"github.com/jcsoftlabs/Yeng-client/internal/client/api"
	"github.com/jcsoftlabs/Yeng-client/internal/client/models"
)

// InvoiceService drives the invoices page and PDF downloads.
type InvoiceService interface {
	List(ctx context.Context) ([]models.Invoice, error)
	Get(ctx context.Context, id string) (*models.Invoice, error)
	// DownloadPDF fetches the invoice's PDF and returns the payload together
	// with the portal's file name for it.
	DownloadPDF(ctx context.Context, id string) ([]byte, string, error)
}

type invoiceService struct {
	client api.Client
}

func NewInvoiceService(client api.Client) InvoiceService {
	return &invoiceService{client: client}
}

func (s *invoiceService) List(ctx context.Context) ([]models.Invoice, error) {
	return s.client.GetInvoices(ctx)
}

func (s *invoiceService) Get(ctx context.Context, id string) (*models.Invoice, error) {
	return s.client.GetInvoice(ctx, id)
}

func (s *invoiceService) DownloadPDF(ctx context.Context, id string) ([]byte, string, error) {
	invoice, err := s.client.GetInvoice(ctx, id)
	if err != nil {
		return nil, "", err
	}

	payload, err := s.client.DownloadInvoicePDF(ctx, id)
	if err != nil {
		return nil, "", err
	}

	return payload, fmt.Sprintf("facture-%s.pdf", invoice.InvoiceNumber), nil
}
