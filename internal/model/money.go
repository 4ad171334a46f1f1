package model

import "github.com/shopspring/decimal"

// All monetary values use shopspring/decimal, never float64. Chip
// conservation checks rely on exact arithmetic, so there is no
// balancing tolerance anywhere in the engine.

// HouseFee is the fixed amount withheld from each player's buy-in
// before it converts to chips. Rebuys never pay this fee.
var HouseFee = decimal.NewFromInt(10)

// MinRebuy is the smallest rebuy amount the ledger accepts.
var MinRebuy = decimal.NewFromInt(1)
