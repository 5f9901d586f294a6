package main

import "treasury_suite/contracts/core"

// admin- and query-facing payloads; decoded host-side with encoding/json

type InitPayload struct {
	Admin          string `json:"admin"`
	AdminAuthority string `json:"admin_authority,omitempty"`
	Multisig       string `json:"multisig"`
	ViewingKey     string `json:"viewing_key"`
	CodeHash       string `json:"code_hash"`
}

type UpdateConfigPayload struct {
	Admin          string `json:"admin,omitempty"`
	AdminAuthority string `json:"admin_authority,omitempty"`
	Multisig       string `json:"multisig,omitempty"`
}

type RegisterAssetPayload struct {
	TokenContract string `json:"token_contract"`
	CodeHash      string `json:"code_hash"`
	Symbol        string `json:"symbol"`
	Decimals      uint8  `json:"decimals"`
}

type RegisterManagerPayload struct {
	Contract string `json:"contract"`
}

type AllowancePayload struct {
	Asset      string      `json:"asset"`
	Spender    string      `json:"spender"`
	Kind       string      `json:"kind"`
	Amount     core.Amount `json:"amount"`
	Cycle      string      `json:"cycle"`
	Tolerance  uint64      `json:"tolerance"`
	RefreshNow bool        `json:"refresh_now,omitempty"`
}

type RunLevelPayload struct {
	Level string `json:"level"`
}

type UpdatePayload struct {
	Asset string `json:"asset"`
}

type AssetQueryPayload struct {
	Asset string `json:"asset"`
}

type MetricsQueryPayload struct {
	Asset string `json:"asset"`
	Date  string `json:"date,omitempty"`
}

type ConfigView struct {
	Admin          string `json:"admin"`
	AdminAuthority string `json:"admin_authority,omitempty"`
	Multisig       string `json:"multisig"`
	RunLevel       string `json:"run_level"`
}

type AllowanceView struct {
	Spender     string      `json:"spender"`
	Kind        string      `json:"kind"`
	Amount      core.Amount `json:"amount"`
	Cycle       string      `json:"cycle"`
	LastRefresh int64       `json:"last_refresh"`
	Tolerance   uint64      `json:"tolerance"`
}

type BalanceView struct {
	Asset    string      `json:"asset"`
	Reserves core.Amount `json:"reserves"`
	Total    core.Amount `json:"total"`
}
