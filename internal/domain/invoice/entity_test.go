package invoice

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeTotals(t *testing.T) {
	inv := Invoice{
		Items: []Item{
			{Description: "Consulting", Quantity: decimal.NewFromInt(10), UnitPrice: decimal.RequireFromString("150.50")},
			{Description: "Hosting", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.RequireFromString("499.99")},
		},
		TaxRate: decimal.RequireFromString("0.12"),
	}

	inv.ComputeTotals()

	assert.True(t, inv.Subtotal.Equal(decimal.RequireFromString("2004.99")), "got %s", inv.Subtotal)
	assert.True(t, inv.TaxAmount.Equal(decimal.RequireFromString("240.60")), "got %s", inv.TaxAmount)
	assert.True(t, inv.Total.Equal(decimal.RequireFromString("2245.59")), "got %s", inv.Total)
}

func TestComputeTotals_ZeroTaxRate(t *testing.T) {
	inv := Invoice{
		Items: []Item{
			{Description: "One-off", Quantity: decimal.NewFromInt(3), UnitPrice: decimal.NewFromInt(200)},
		},
	}

	inv.ComputeTotals()

	assert.True(t, inv.Subtotal.Equal(decimal.NewFromInt(600)))
	assert.True(t, inv.TaxAmount.IsZero())
	assert.True(t, inv.Total.Equal(decimal.NewFromInt(600)))
}

func TestComputeTotals_NoItems(t *testing.T) {
	inv := Invoice{TaxRate: decimal.RequireFromString("0.12")}
	inv.ComputeTotals()

	assert.True(t, inv.Subtotal.IsZero())
	assert.True(t, inv.Total.IsZero())
}
