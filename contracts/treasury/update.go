package main

import (
	"treasury_suite/contracts/core"
	"treasury_suite/sdk"
)

// spenderView is the snapshot of one allowance entry's funds taken at the
// start of an update, before any allowance or unbond instruction is issued.
type spenderView struct {
	balance   core.Amount
	unbonding core.Amount
	claimable core.Amount
	allowance core.Amount
}

func (v spenderView) outstanding() core.Amount {
	return v.balance + v.allowance
}

// Update rebalances one asset across its allowance entries. Anyone may call
// it; the engine only ever moves funds along the configured rules, so there
// is nothing for a caller to steal by invoking it early or often.
func Update(payload *string) *string {
	var p UpdatePayload
	fromJSON(*payload, &p, "update")
	asset := mustLoadAsset(p.Asset)
	switch loadRunLevel() {
	case core.RunLevelDeactivated:
		sdk.Abort("treasury deactivated")
	case core.RunLevelMigrating:
		return runMigration(asset)
	}
	return runRebalance(asset)
}

func runRebalance(asset core.Asset) *string {
	token := asset.TokenContract
	self := core.SelfAddress()
	now := core.NowUnix()
	reserves := core.TokenBalance(token, self)
	metas := loadAllowances(token)

	// first pass: claim matured unbondings and total up every token the
	// treasury controls, directly or through spenders
	views := make([]spenderView, len(metas))
	total := reserves
	for i, m := range metas {
		v := spenderView{
			allowance: core.TokenAllowance(token, self, m.Spender),
		}
		if isManager(m.Spender) {
			contract := m.Spender.String()
			holder := self.String()
			v.balance = core.AdapterBalanceFor(contract, token, holder)
			v.unbonding = core.AdapterUnbondingFor(contract, token, holder)
			v.claimable = core.AdapterClaimableFor(contract, token, holder)
			if v.claimable > 0 {
				core.AdapterClaim(contract, token)
				core.AppendMetric(token, core.MetricClaim, "update", v.claimable, contract)
			}
		}
		total += v.allowance + v.balance + v.unbonding + v.claimable
		views[i] = v
	}
	reserves = core.TokenBalance(token, self)

	// second pass: refresh every entry whose cycle has elapsed. Amount-kind
	// entries come first in storage order and deduct their claim from the
	// pool so portions only split what remains.
	refreshed := 0
	spent := make([]bool, len(metas))
	for i := range metas {
		m := &metas[i]
		v := views[i]
		if !m.Cycle.Exceeded(now, m.LastRefresh) {
			continue
		}
		var desired core.Amount
		switch m.Kind {
		case core.KindAmount:
			desired = m.Amount
			total = core.ClampSub(total, desired)
		case core.KindPortion:
			desired = core.Portion(total, uint64(m.Amount))
		}
		threshold := core.MulDiv(desired, m.Tolerance, core.OneHundredPercent)

		outstanding := v.outstanding()
		switch {
		case desired < outstanding:
			decrease := outstanding - desired
			if decrease <= threshold {
				break
			}
			// cut the unspent allowance first; only then pull funds the
			// spender already moved out
			cut := core.MinAmount(decrease, v.allowance)
			if cut > 0 {
				core.DecreaseAllowance(token, m.Spender, cut)
				core.AppendMetric(token, core.MetricAllowance, "decrease", cut, m.Spender.String())
			}
			if rest := decrease - cut; rest > 0 && isManager(m.Spender) {
				core.AdapterUnbond(m.Spender.String(), token, rest)
				core.AppendMetric(token, core.MetricUnbond, "update", rest, m.Spender.String())
			}
		case desired > outstanding:
			increase := core.MinAmount(desired-outstanding, reserves)
			if increase <= threshold || increase == 0 {
				break
			}
			core.IncreaseAllowance(token, m.Spender, increase)
			reserves -= increase
			core.AppendMetric(token, core.MetricAllowance, "increase", increase, m.Spender.String())
		}
		m.LastRefresh = now
		if m.Cycle.Kind == core.CycleOnce {
			spent[i] = true
		}
		refreshed++
	}

	// drop entries that can never act again and entries drained to nothing
	kept := metas[:0]
	for i, m := range metas {
		v := views[i]
		dormant := m.Amount == 0 && v.balance == 0 && v.unbonding == 0 &&
			v.claimable == 0 && v.allowance == 0
		if spent[i] || dormant {
			emitAllowancePruned(token, m.Spender)
			continue
		}
		kept = append(kept, m)
	}
	saveAllowances(token, kept)
	emitUpdated(token, refreshed)
	return result("updated")
}

// runMigration evacuates one asset: recall every outstanding allowance,
// unbond and claim whatever managers can give back, then sweep the reserves
// to the multisig. Repeated calls converge as unbondings mature.
func runMigration(asset core.Asset) *string {
	token := asset.TokenContract
	self := core.SelfAddress()
	cfg := loadConfig()

	for _, m := range loadAllowances(token) {
		if cur := core.TokenAllowance(token, self, m.Spender); cur > 0 {
			core.DecreaseAllowance(token, m.Spender, cur)
		}
		if !isManager(m.Spender) {
			continue
		}
		contract := m.Spender.String()
		holder := self.String()
		if unbondable := core.AdapterUnbondableFor(contract, token, holder); unbondable > 0 {
			core.AdapterUnbond(contract, token, unbondable)
		}
		if claimable := core.AdapterClaimableFor(contract, token, holder); claimable > 0 {
			core.AdapterClaim(contract, token)
		}
	}

	reserves := core.TokenBalance(token, self)
	if reserves > 0 {
		core.SendTokens(token, cfg.Multisig, reserves)
		core.AppendMetric(token, core.MetricMigration, "evacuate", reserves, cfg.Multisig.String())
		emitEvacuated(token, reserves)
	}
	return result("migrating")
}
