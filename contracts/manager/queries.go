package main

import (
	"treasury_suite/contracts/core"
)

// Adapter-capability queries, answered toward the treasury (or any caller
// passing an explicit holder). These cross contract boundaries, so request
// and response ride the tinyjson wire codec.

func holderQuery(payload *string) (core.AssetQuery, Holding) {
	var q core.AssetQuery
	core.UnmarshalMsg(*payload, &q)
	mustLoadAsset(q.Asset)
	holder := q.Holder
	if holder == "" {
		holder = loadConfig().Treasury.String()
	}
	return q, mustLoadHolding(holder)
}

func amountReply(a core.Amount) *string {
	return result(core.MarshalMsg(core.AmountResponse{Amount: a}))
}

// QueryBalance reports the holder's credited balance for the asset.
func QueryBalance(payload *string) *string {
	q, holding := holderQuery(payload)
	return amountReply(holding.balance(q.Asset))
}

// QueryUnbonding reports what the holder has asked back and not yet claimed.
func QueryUnbonding(payload *string) *string {
	q, holding := holderQuery(payload)
	return amountReply(holding.unbonding(q.Asset))
}

// QueryClaimable reports the part of the holder's unbonding book that
// reserves could pay out right now.
func QueryClaimable(payload *string) *string {
	q, holding := holderQuery(payload)
	reserves := core.TokenBalance(q.Asset, core.SelfAddress())
	return amountReply(core.MinAmount(holding.unbonding(q.Asset), reserves))
}

// QueryUnbondable reports how much the holder could still unbond, which is
// simply their remaining balance.
func QueryUnbondable(payload *string) *string {
	q, holding := holderQuery(payload)
	return amountReply(holding.balance(q.Asset))
}

// Host-facing views, plain JSON.

func QueryConfig(payload *string) *string {
	cfg := loadConfig()
	view := ConfigView{
		Admin:          cfg.Admin.String(),
		AdminAuthority: cfg.AdminAuthority,
		Treasury:       cfg.Treasury.String(),
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

func QueryAllocations(payload *string) *string {
	var p AssetQueryPayload
	fromJSON(*payload, &p, "allocations query")
	mustLoadAsset(p.Asset)
	views := []AllocationView{}
	for _, a := range loadAllocations(p.Asset) {
		views = append(views, AllocationView{
			Adapter:   a.Adapter.String(),
			Kind:      a.Kind.String(),
			Amount:    a.Amount,
			Tolerance: a.Tolerance,
		})
	}
	return result(toJSON(views, "allocations query"))
}

func QueryHolding(payload *string) *string {
	var p HoldingQueryPayload
	fromJSON(*payload, &p, "holding query")
	holding := mustLoadHolding(p.Holder)
	view := HoldingView{
		Holder:     p.Holder,
		Balances:   holding.Balances,
		Unbondings: holding.Unbondings,
		Status:     holding.Status.String(),
	}
	return result(toJSON(view, "holding query"))
}

func QueryHolders(payload *string) *string {
	holders := loadHolderIndex()
	if holders == nil {
		holders = []string{}
	}
	return result(toJSON(holders, "holders query"))
}

func QueryMetrics(payload *string) *string {
	var p MetricsQueryPayload
	fromJSON(*payload, &p, "metrics query")
	records := core.LoadMetrics(p.Asset, p.Date)
	return result(toJSON(records, "metrics query"))
}
