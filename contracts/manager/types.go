package main

import (
	"treasury_suite/contracts/core"
	"treasury_suite/sdk"
)

// Config wires the manager to its treasury and admin. The treasury address
// doubles as the default holder for the adapter-capability queries.
type Config struct {
	Admin          sdk.Address `json:"admin"`
	AdminAuthority string      `json:"admin_authority,omitempty"`
	Treasury       sdk.Address `json:"treasury"`
	ViewingKey     string      `json:"viewing_key"`
	CodeHash       string      `json:"code_hash"`
}

// Allocation is one target slice of an asset routed into an adapter.
// Amount-kind entries claim a fixed quantity off the top; Portion-kind split
// what remains, scaled by core.OneHundredPercent.
type Allocation struct {
	Adapter   sdk.Address `json:"adapter"`
	Kind      core.Kind   `json:"kind"`
	Amount    core.Amount `json:"amount"`
	Tolerance uint64      `json:"tolerance"`
}

// Holding is one holder's book with this manager, kept per asset. Balances
// are funds credited to the holder; unbondings are amounts the holder asked
// back that have not been claimed yet.
type Holding struct {
	Balances   []core.Balance     `json:"balances"`
	Unbondings []core.Balance     `json:"unbondings"`
	Status     core.HoldingStatus `json:"status"`
}

func (h *Holding) balance(asset string) core.Amount {
	return findBalance(h.Balances, asset)
}

func (h *Holding) unbonding(asset string) core.Amount {
	return findBalance(h.Unbondings, asset)
}

func (h *Holding) setBalance(asset string, amount core.Amount) {
	h.Balances = putBalance(h.Balances, asset, amount)
}

func (h *Holding) setUnbonding(asset string, amount core.Amount) {
	h.Unbondings = putBalance(h.Unbondings, asset, amount)
}

func findBalance(list []core.Balance, asset string) core.Amount {
	for _, b := range list {
		if b.Token == asset {
			return b.Amount
		}
	}
	return 0
}

func putBalance(list []core.Balance, asset string, amount core.Amount) []core.Balance {
	for i, b := range list {
		if b.Token == asset {
			list[i].Amount = amount
			return list
		}
	}
	return append(list, core.Balance{Token: asset, Amount: amount})
}
