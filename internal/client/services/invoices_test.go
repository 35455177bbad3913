package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcsoftlabs/Yeng-client/internal/client/models"
)

func TestDownloadPDF_NamesFileAfterInvoice(t *testing.T) {
	client := &fakeAPI{
		invoice: &models.Invoice{ID: "inv-1", InvoiceNumber: "FAC-2026-0042"},
		pdf:     []byte("%PDF-1.4 payload"),
	}
	svc := NewInvoiceService(client)

	payload, name, err := svc.DownloadPDF(context.Background(), "inv-1")
	require.NoError(t, err)

	assert.Equal(t, []byte("%PDF-1.4 payload"), payload)
	assert.Equal(t, "facture-FAC-2026-0042.pdf", name)
}

func TestInvoiceList(t *testing.T) {
	client := &fakeAPI{invoices: []models.Invoice{{ID: "inv-1"}, {ID: "inv-2"}}}
	svc := NewInvoiceService(client)

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
