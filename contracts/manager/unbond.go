package main

import (
	"sort"

	"treasury_suite/contracts/core"
	"treasury_suite/sdk"
)

// Unbond moves part of the holder's balance out and settles as much as
// reserves allow in the same call. Reserves already earmarked by other
// holders' unbondings are off limits; what they do cover is sent right away,
// and only the rest lands on the unbonding book while adapters are drained,
// emptiest first, so deep positions keep compounding. The admin may call this
// as a proxy for the treasury's own position.
func Unbond(payload *string) *string {
	var msg core.UnbondMsg
	core.UnmarshalMsg(*payload, &msg)
	mustLoadAsset(msg.Asset)
	if msg.Amount == 0 {
		sdk.Abort("unbond: amount required")
	}
	cfg := loadConfig()
	holder := core.Sender().String()
	if loadHolding(holder) == nil {
		// not a holder themselves: an admin exits the treasury's position
		requireAdmin(cfg)
		holder = cfg.Treasury.String()
	}
	holding := mustLoadHolding(holder)

	remaining := core.CheckedSub(holding.balance(msg.Asset), msg.Amount, "unbond: insufficient balance")
	holding.setBalance(msg.Asset, remaining)

	reserved := otherUnbondings(msg.Asset, holder)
	available := core.ClampSub(core.TokenBalance(msg.Asset, core.SelfAddress()), reserved)
	paid := core.MinAmount(msg.Amount, available)
	holding.setUnbonding(msg.Asset, holding.unbonding(msg.Asset)+msg.Amount-paid)
	saveHolding(holder, holding)

	if paid > 0 {
		core.SendTokens(msg.Asset, sdk.Address(holder), paid)
		core.AppendMetric(msg.Asset, core.MetricSend, "unbond", paid, holder)
	}
	if shortfall := msg.Amount - paid; shortfall > 0 {
		drainAdapters(msg.Asset, shortfall)
	}
	core.AppendMetric(msg.Asset, core.MetricUnbond, "holder", msg.Amount, holder)
	emitUnbond(msg.Asset, holder, msg.Amount)
	return result("unbonding")
}

// Claim pays out as much of the caller's unbonding book as reserves allow,
// pulling matured funds from adapters first. Partial payouts leave the rest
// unbonding; nothing is ever oversent.
func Claim(payload *string) *string {
	var msg core.ClaimMsg
	core.UnmarshalMsg(*payload, &msg)
	mustLoadAsset(msg.Asset)
	caller := core.Sender().String()
	holding := mustLoadHolding(caller)

	owed := holding.unbonding(msg.Asset)
	if owed == 0 {
		sdk.Abort("claim: nothing unbonding")
	}

	self := core.SelfAddress()
	reserves := core.TokenBalance(msg.Asset, self)
	if reserves < owed {
		for _, a := range loadAllocations(msg.Asset) {
			claimable := core.AdapterClaimable(a.Adapter.String(), msg.Asset)
			if claimable == 0 {
				continue
			}
			core.AdapterClaim(a.Adapter.String(), msg.Asset)
			reserves += claimable
			if reserves >= owed {
				break
			}
		}
	}

	pay := core.MinAmount(owed, reserves)
	if pay == 0 {
		return result("nothing claimable yet")
	}
	core.SendTokens(msg.Asset, sdk.Address(caller), pay)
	holding.setUnbonding(msg.Asset, owed-pay)
	saveHolding(caller, holding)
	core.AppendMetric(msg.Asset, core.MetricClaim, "holder", pay, caller)
	emitClaim(msg.Asset, caller, pay)
	return result("claimed " + pay.String())
}

// otherUnbondings sums unbonding obligations owed to every holder except the
// one given.
func otherUnbondings(asset, except string) core.Amount {
	var total core.Amount
	for _, addr := range loadHolderIndex() {
		if addr == except {
			continue
		}
		if h := loadHolding(addr); h != nil {
			total += h.unbonding(asset)
		}
	}
	return total
}

// drainAdapters recalls amount of asset from adapters in ascending order of
// held balance, bounded by what each reports unbondable.
func drainAdapters(asset string, amount core.Amount) {
	type view struct {
		contract   string
		balance    core.Amount
		unbondable core.Amount
	}
	allocs := loadAllocations(asset)
	views := make([]view, 0, len(allocs))
	for _, a := range allocs {
		contract := a.Adapter.String()
		views = append(views, view{
			contract:   contract,
			balance:    core.AdapterBalance(contract, asset),
			unbondable: core.AdapterUnbondable(contract, asset),
		})
	}
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].balance < views[j].balance
	})
	for _, v := range views {
		if amount == 0 {
			return
		}
		take := core.MinAmount(amount, v.unbondable)
		if take == 0 {
			continue
		}
		core.AdapterUnbond(v.contract, asset, take)
		amount -= take
	}
}
