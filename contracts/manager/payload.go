package main

import "treasury_suite/contracts/core"

// admin- and query-facing payloads; decoded host-side with encoding/json

type InitPayload struct {
	Admin          string `json:"admin"`
	AdminAuthority string `json:"admin_authority,omitempty"`
	Treasury       string `json:"treasury"`
	ViewingKey     string `json:"viewing_key"`
	CodeHash       string `json:"code_hash"`
}

type UpdateConfigPayload struct {
	Admin          string `json:"admin,omitempty"`
	AdminAuthority string `json:"admin_authority,omitempty"`
	Treasury       string `json:"treasury,omitempty"`
}

type RegisterAssetPayload struct {
	TokenContract string `json:"token_contract"`
	CodeHash      string `json:"code_hash"`
	Symbol        string `json:"symbol"`
	Decimals      uint8  `json:"decimals"`
}

type AllocatePayload struct {
	Asset     string      `json:"asset"`
	Adapter   string      `json:"adapter"`
	Kind      string      `json:"kind"`
	Amount    core.Amount `json:"amount"`
	Tolerance uint64      `json:"tolerance"`
}

type HolderPayload struct {
	Holder string `json:"holder"`
}

type AssetQueryPayload struct {
	Asset string `json:"asset"`
}

type HoldingQueryPayload struct {
	Holder string `json:"holder"`
}

type MetricsQueryPayload struct {
	Asset string `json:"asset"`
	Date  string `json:"date,omitempty"`
}

type ConfigView struct {
	Admin          string `json:"admin"`
	AdminAuthority string `json:"admin_authority,omitempty"`
	Treasury       string `json:"treasury"`
}

type AllocationView struct {
	Adapter   string      `json:"adapter"`
	Kind      string      `json:"kind"`
	Amount    core.Amount `json:"amount"`
	Tolerance uint64      `json:"tolerance"`
}

type HoldingView struct {
	Holder     string         `json:"holder"`
	Balances   []core.Balance `json:"balances"`
	Unbondings []core.Balance `json:"unbondings"`
	Status     string         `json:"status"`
}
