package domain

import (
	"github.com/shopspring/decimal"

	"github.com/dmehra2102/shop-backoffice/pkg/apperr"
)

var (
	ErrProductNotFound = apperr.NotFound("product_not_found", "product not found")
	ErrProductInactive = apperr.Conflict("product_inactive", "product is not sellable")
)

type Product struct {
	ID     string          `json:"id"`
	SKU    string          `json:"sku"`
	Name   string          `json:"name"`
	Price  decimal.Decimal `json:"price"`
	Active bool            `json:"active"`
}
