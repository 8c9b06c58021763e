package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoice_Render(t *testing.T) {
	inv := Invoice{
		OrderSN:       "OR20240115001",
		Name:          "Nguyen Van A",
		PaymentMethod: "vnpay",
		Lines: []InvoiceLine{
			{ProductName: "Cay kim tien", Quantity: 2, UnitPrice: 50000, TotalPrice: 100000},
			{ProductName: "Cay luoi ho", Quantity: 1, UnitPrice: 80000, TotalPrice: 80000},
		},
		Discount: 20000,
		Total:    160000,
	}
	body, err := inv.Render()
	require.NoError(t, err)

	html := string(body)
	assert.Contains(t, html, "OR20240115001")
	assert.Contains(t, html, "Nguyen Van A")
	assert.Contains(t, html, "Cay kim tien")
	assert.Contains(t, html, "Cay luoi ho")
	assert.Contains(t, html, "160000")
}

func TestInvoice_RenderEscapesHTML(t *testing.T) {
	inv := Invoice{
		OrderSN: "OR1",
		Name:    "<script>alert(1)</script>",
		Lines:   []InvoiceLine{{ProductName: "Cay", Quantity: 1, UnitPrice: 1000, TotalPrice: 1000}},
		Total:   1000,
	}
	body, err := inv.Render()
	require.NoError(t, err)
	assert.NotContains(t, string(body), "<script>")
}
