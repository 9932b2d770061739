package models

import "github.com/shopspring/decimal"

// MarketStats is an administrative snapshot of the marketplace.
type MarketStats struct {
	BalanceTotal    decimal.Decimal
	Accounts        int
	Leads           int
	LeadsInMarket   int
	LeadsArchived   int
	Purchases       int
	LedgerEntries   int
	LeadsLastDay    int
	LeadsLastWeek   int
	PurchasesDay    int
	PurchasesWeek   int
	NewAccountsWeek int
}
