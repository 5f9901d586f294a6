package main

import (
	"treasury_suite/contracts/core"
	"treasury_suite/sdk"
)

// AddHolder opens a holder book. A closed book is never reopened under the
// same address; the record would conflate the old balances with the new
// holder's.
func AddHolder(payload *string) *string {
	cfg := loadConfig()
	requireAdmin(cfg)
	var p HolderPayload
	fromJSON(*payload, &p, "add holder")
	if p.Holder == "" {
		sdk.Abort("add holder: holder required")
	}
	if loadHolding(p.Holder) != nil {
		sdk.Abort("holder record exists: " + p.Holder)
	}
	saveHolderIndex(append(loadHolderIndex(), p.Holder))
	saveHolding(p.Holder, Holding{Status: core.StatusActive})
	emitHolderAdded(p.Holder)
	return result("holder added")
}

// RemoveHolder closes a holder book. The holder can still unbond and claim
// what they are owed; fresh deposits route to the treasury instead.
func RemoveHolder(payload *string) *string {
	cfg := loadConfig()
	requireAdmin(cfg)
	var p HolderPayload
	fromJSON(*payload, &p, "remove holder")
	if p.Holder == cfg.Treasury.String() {
		sdk.Abort("cannot remove treasury holding")
	}
	holding := mustLoadHolding(p.Holder)
	holding.Status = core.StatusClosed
	saveHolding(p.Holder, holding)
	emitHolderClosed(p.Holder)
	return result("holder closed")
}
