package main

import (
	"treasury_suite/contracts/core"
)

// adapterView snapshots one allocation's adapter at the start of an update.
type adapterView struct {
	balance   core.Amount
	unbonding core.Amount
	claimable core.Amount
}

// Update marks the books to market and rebalances one asset across the
// configured adapters. The treasury's holding absorbs every gain and loss the
// adapters produced; other holders' books never move here. Outbound funding
// coalesces into at most one batch send from reserves and one from the
// treasury allowance.
func Update(payload *string) *string {
	var msg core.ClaimMsg
	core.UnmarshalMsg(*payload, &msg)
	token := msg.Asset
	mustLoadAsset(token)
	cfg := loadConfig()
	self := core.SelfAddress()
	allocs := loadAllocations(token)

	// snapshot adapters, claiming anything already matured
	reserves := core.TokenBalance(token, self)
	total := reserves
	views := make([]adapterView, len(allocs))
	for i, a := range allocs {
		contract := a.Adapter.String()
		v := adapterView{
			balance:   core.AdapterBalance(contract, token),
			unbonding: core.AdapterUnbonding(contract, token),
			claimable: core.AdapterClaimable(contract, token),
		}
		if v.claimable > 0 {
			core.AdapterClaim(contract, token)
			core.AppendMetric(token, core.MetricClaim, "update", v.claimable, contract)
		}
		total += v.balance + v.unbonding + v.claimable
		views[i] = v
	}
	reserves = core.TokenBalance(token, self)

	// mark to market: the treasury holding is what remains after every other
	// obligation, so adapter gains and losses land there in full
	treasury := cfg.Treasury.String()
	var othersHeld, owed core.Amount
	for _, addr := range loadHolderIndex() {
		h := loadHolding(addr)
		if h == nil {
			continue
		}
		owed += h.unbonding(token)
		if addr != treasury {
			othersHeld += h.balance(token)
		}
	}
	tHolding := mustLoadHolding(treasury)
	prev := tHolding.balance(token)
	mark := core.ClampSub(total, othersHeld+owed)
	switch {
	case mark > prev:
		gain := mark - prev
		core.AppendMetric(token, core.MetricRealizeGains, "update", gain, treasury)
		emitGain(token, gain)
	case mark < prev:
		loss := prev - mark
		core.AppendMetric(token, core.MetricRealizeLosses, "update", loss, treasury)
		emitLoss(token, loss)
	}
	tHolding.setBalance(token, mark)

	// rebalance: the undrawn treasury allowance counts toward the pool so
	// idle treasury capital gets deployed; shortfalls are funded from
	// reserves first, then from that allowance, and excesses recalled
	allowance := core.TokenAllowance(token, cfg.Treasury, self)
	allocatable := core.ClampSub(total, owed) + allowance
	var sends []core.SendAction
	var sendFroms []core.SendFromAction
	var sent, pulled core.Amount
	for i, a := range allocs {
		v := views[i]
		var desired core.Amount
		switch a.Kind {
		case core.KindAmount:
			desired = a.Amount
			allocatable = core.ClampSub(allocatable, desired)
		case core.KindPortion:
			desired = core.Portion(allocatable, uint64(a.Amount))
		}
		threshold := core.MulDiv(desired, a.Tolerance, core.OneHundredPercent)

		contract := a.Adapter.String()
		switch {
		case desired > v.balance:
			need := desired - v.balance
			if need <= threshold {
				break
			}
			if take := core.MinAmount(need, reserves); take > 0 {
				sends = append(sends, core.SendAction{To: contract, Amount: take})
				reserves -= take
				need -= take
				sent += take
			}
			if take := core.MinAmount(need, allowance); take > 0 {
				sendFroms = append(sendFroms, core.SendFromAction{
					Owner:  treasury,
					To:     contract,
					Amount: take,
				})
				allowance -= take
				pulled += take
			}
		case v.balance > desired:
			excess := v.balance - desired
			if excess <= threshold {
				break
			}
			core.AdapterUnbond(contract, token, excess)
			core.AppendMetric(token, core.MetricUnbond, "update", excess, contract)
		}
	}
	if len(sends) > 0 {
		core.BatchSend(token, sends)
		core.AppendMetric(token, core.MetricSend, "update", sent, self.String())
	}
	if len(sendFroms) > 0 {
		core.BatchSendFrom(token, sendFroms)
		// funds drawn on the allowance are fresh treasury deposits
		tHolding.setBalance(token, tHolding.balance(token)+pulled)
		core.AppendMetric(token, core.MetricReceive, "allowance", pulled, treasury)
	}
	saveHolding(treasury, tHolding)
	emitUpdated(token, sent, pulled)
	return result("updated")
}
