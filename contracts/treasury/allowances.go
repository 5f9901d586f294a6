package main

import (
	"sort"

	"treasury_suite/contracts/core"
	"treasury_suite/sdk"
)

// Allowance registers or replaces the spending rule for one spender on one
// asset. Replacing keeps the old refresh timestamp so the cycle does not
// restart, unless refresh_now forces the entry due on the next update.
func Allowance(payload *string) *string {
	cfg := loadConfig()
	requireAdmin(cfg)
	var p AllowancePayload
	fromJSON(*payload, &p, "allowance")
	mustLoadAsset(p.Asset)
	if p.Spender == "" {
		sdk.Abort("allowance: spender required")
	}
	if p.Tolerance >= core.OneHundredPercent {
		sdk.Abort("allowance: tolerance must be below 100%")
	}

	meta := AllowanceMeta{
		Spender:     sdk.Address(p.Spender),
		Amount:      p.Amount,
		Kind:        core.ParseKind(p.Kind),
		Cycle:       core.ParseCycle(p.Cycle),
		LastRefresh: core.RefreshEpoch,
		Tolerance:   p.Tolerance,
	}
	if meta.Kind == core.KindPortion && uint64(p.Amount) > core.OneHundredPercent {
		sdk.Abort("allowance: portion above 100%")
	}

	metas := loadAllowances(p.Asset)
	kept := metas[:0]
	for _, m := range metas {
		if m.Spender == meta.Spender {
			if !p.RefreshNow {
				meta.LastRefresh = m.LastRefresh
			}
			continue
		}
		kept = append(kept, m)
	}
	kept = append(kept, meta)

	var portionSum uint64
	for _, m := range kept {
		if m.Kind == core.KindPortion {
			portionSum += uint64(m.Amount)
		}
	}
	if portionSum > core.OneHundredPercent {
		sdk.Abort("allowance: portions exceed 100%")
	}

	// amount-kind entries consume from the pool before portions are sized
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Kind < kept[j].Kind
	})
	saveAllowances(p.Asset, kept)
	emitAllowanceSet(p.Asset, meta)
	return result("allowance set")
}
