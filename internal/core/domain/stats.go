// internal/core/domain/stats.go
package domain

import "github.com/shopspring/decimal"

// CatalogStats holds catalog-wide aggregates. Money values are computed
// with decimals so sums stay exact regardless of how many float prices
// go into them.
type CatalogStats struct {
	ItemsCount      int             `json:"items_count"`
	TotalUnits      int             `json:"total_units"`
	InStockCount    int             `json:"in_stock_count"`
	OutOfStockCount int             `json:"out_of_stock_count"`
	TotalValue      decimal.Decimal `json:"total_value"`
	AveragePrice    decimal.Decimal `json:"average_price"`
}
