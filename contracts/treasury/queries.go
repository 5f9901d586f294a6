package main

import (
	"treasury_suite/contracts/core"
)

func QueryConfig(payload *string) *string {
	cfg := loadConfig()
	view := ConfigView{
		Admin:          cfg.Admin.String(),
		AdminAuthority: cfg.AdminAuthority,
		Multisig:       cfg.Multisig.String(),
		RunLevel:       loadRunLevel().String(),
	}
	return result(toJSON(view, "config query"))
}

func QueryAssets(payload *string) *string {
	var assets []core.Asset
	for _, token := range loadAssetIndex() {
		if a := loadAsset(token); a != nil {
			assets = append(assets, *a)
		}
	}
	return result(toJSON(assets, "assets query"))
}

func QueryAsset(payload *string) *string {
	var p AssetQueryPayload
	fromJSON(*payload, &p, "asset query")
	return result(toJSON(mustLoadAsset(p.Asset), "asset query"))
}

func QueryRunLevel(payload *string) *string {
	return result(loadRunLevel().String())
}

func QueryAllowances(payload *string) *string {
	var p AssetQueryPayload
	fromJSON(*payload, &p, "allowances query")
	mustLoadAsset(p.Asset)
	views := []AllowanceView{}
	for _, m := range loadAllowances(p.Asset) {
		views = append(views, AllowanceView{
			Spender:     m.Spender.String(),
			Kind:        m.Kind.String(),
			Amount:      m.Amount,
			Cycle:       m.Cycle.String(),
			LastRefresh: m.LastRefresh,
			Tolerance:   m.Tolerance,
		})
	}
	return result(toJSON(views, "allowances query"))
}

// QueryBalance reports reserves on hand plus everything outstanding with
// spenders, mirroring the total the update engine rebalances against.
func QueryBalance(payload *string) *string {
	var p AssetQueryPayload
	fromJSON(*payload, &p, "balance query")
	mustLoadAsset(p.Asset)
	self := core.SelfAddress()
	reserves := core.TokenBalance(p.Asset, self)
	total := reserves
	for _, m := range loadAllowances(p.Asset) {
		total += core.TokenAllowance(p.Asset, self, m.Spender)
		if isManager(m.Spender) {
			contract := m.Spender.String()
			holder := self.String()
			total += core.AdapterBalanceFor(contract, p.Asset, holder)
			total += core.AdapterUnbondingFor(contract, p.Asset, holder)
			total += core.AdapterClaimableFor(contract, p.Asset, holder)
		}
	}
	view := BalanceView{Asset: p.Asset, Reserves: reserves, Total: total}
	return result(toJSON(view, "balance query"))
}

func QueryManagers(payload *string) *string {
	managers := loadManagers()
	views := make([]string, 0, len(managers))
	for _, m := range managers {
		views = append(views, m.Contract.String())
	}
	return result(toJSON(views, "managers query"))
}

func QueryMetrics(payload *string) *string {
	var p MetricsQueryPayload
	fromJSON(*payload, &p, "metrics query")
	records := core.LoadMetrics(p.Asset, p.Date)
	return result(toJSON(records, "metrics query"))
}
