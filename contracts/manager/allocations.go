package main

import (
	"sort"

	"treasury_suite/contracts/core"
	"treasury_suite/sdk"
)

// Allocate sets or replaces the target slice one adapter gets of an asset.
// An amount of zero removes the entry and recalls whatever the adapter will
// release; anything stuck unbonding comes home through later claims.
func Allocate(payload *string) *string {
	cfg := loadConfig()
	requireAdmin(cfg)
	var p AllocatePayload
	fromJSON(*payload, &p, "allocate")
	mustLoadAsset(p.Asset)
	if p.Adapter == "" {
		sdk.Abort("allocate: adapter required")
	}
	if p.Tolerance >= core.OneHundredPercent {
		sdk.Abort("allocate: tolerance must be below 100%")
	}

	alloc := Allocation{
		Adapter:   sdk.Address(p.Adapter),
		Kind:      core.ParseKind(p.Kind),
		Amount:    p.Amount,
		Tolerance: p.Tolerance,
	}
	if alloc.Kind == core.KindPortion && uint64(p.Amount) > core.OneHundredPercent {
		sdk.Abort("allocate: portion above 100%")
	}

	allocs := loadAllocations(p.Asset)
	kept := allocs[:0]
	for _, a := range allocs {
		if a.Adapter == alloc.Adapter {
			continue
		}
		kept = append(kept, a)
	}
	if p.Amount == 0 {
		saveAllocations(p.Asset, kept)
		if unbondable := core.AdapterUnbondable(p.Adapter, p.Asset); unbondable > 0 {
			core.AdapterUnbond(p.Adapter, p.Asset, unbondable)
		}
		emitAllocationRemoved(p.Asset, alloc.Adapter)
		return result("allocation removed")
	}
	kept = append(kept, alloc)

	var portionSum uint64
	for _, a := range kept {
		if a.Kind == core.KindPortion {
			portionSum += uint64(a.Amount)
		}
	}
	if portionSum > core.OneHundredPercent {
		sdk.Abort("allocate: portions exceed 100%")
	}

	// amount-kind entries consume from the pool before portions are sized
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Kind < kept[j].Kind
	})
	saveAllocations(p.Asset, kept)
	emitAllocated(p.Asset, alloc)
	return result("allocation set")
}
