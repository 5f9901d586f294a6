package main

import (
	"treasury_suite/contracts/core"
	"treasury_suite/sdk"
)

// Config holds the treasury's admin wiring. The multisig is the evacuation
// target while the run level sits at migrating.
type Config struct {
	Admin          sdk.Address `json:"admin"`
	AdminAuthority string      `json:"admin_authority,omitempty"`
	Multisig       sdk.Address `json:"multisig"`
	ViewingKey     string      `json:"viewing_key"`
	CodeHash       string      `json:"code_hash"`
}

// AllowanceMeta is one spending rule the treasury grants a manager for one
// asset. Amount-kind entries hold a fixed token quantity; Portion-kind hold a
// fraction of total managed balance scaled by core.OneHundredPercent.
type AllowanceMeta struct {
	Spender     sdk.Address `json:"spender"`
	Amount      core.Amount `json:"amount"`
	Kind        core.Kind   `json:"kind"`
	Cycle       core.Cycle  `json:"cycle"`
	LastRefresh int64       `json:"last_refresh"`
	Tolerance   uint64      `json:"tolerance"`
}

// Manager is a registered treasury-manager contract. Managers answer the
// adapter capability queries split per holder, with the treasury as holder.
type Manager struct {
	Contract sdk.Address `json:"contract"`
}
