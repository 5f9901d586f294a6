package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"treasury_suite/sdk"
)

func TestUpdateWithinToleranceIsNoop(t *testing.T) {
	setupTreasury(t)
	// 520 outstanding against a 500 target with 5% slack stays put
	Allowance(payload(`{"asset":"contract:token-a","spender":"hive:ops-team","kind":"amount","amount":"500","cycle":"86400","tolerance":50000000000000000}`))
	setReserves("1000")
	setSpenderAllowance(testOps, "520")
	sdk.MockClearCalls()

	Update(payload(`{"asset":"contract:token-a"}`))
	assert.Empty(t, callsTo(testToken, "decrease_allowance"))
	assert.Empty(t, callsTo(testToken, "increase_allowance"))
}

func TestUpdateIncreaseCappedByReserves(t *testing.T) {
	setupTreasury(t)
	Allowance(payload(`{"asset":"contract:token-a","spender":"hive:ops-team","kind":"amount","amount":"150","cycle":"86400","tolerance":0}`))
	setReserves("100")
	sdk.MockClearCalls()

	Update(payload(`{"asset":"contract:token-a"}`))
	calls := callsTo(testToken, "increase_allowance")
	require.Len(t, calls, 1)
	assert.Equal(t, `{"spender":"hive:ops-team","amount":"100"}`, calls[0].Payload)
}

func TestUpdateDecreasesAllowanceBeforeUnbonding(t *testing.T) {
	setupTreasury(t)
	registerTestManager(t)
	Allowance(payload(`{"asset":"contract:token-a","spender":"contract:manager-1","kind":"amount","amount":"100","cycle":"86400","tolerance":0}`))
	setReserves("50")
	setSpenderAllowance(testManager, "30")
	setManagerAmounts("120", "0", "0", "120")
	sdk.MockClearCalls()

	Update(payload(`{"asset":"contract:token-a"}`))

	// outstanding 150 against a 100 target: recall the unspent 30 first,
	// then pull the remaining 20 out of the manager
	decreases := callsTo(testToken, "decrease_allowance")
	require.Len(t, decreases, 1)
	assert.Equal(t, `{"spender":"contract:manager-1","amount":"30"}`, decreases[0].Payload)

	unbonds := callsTo(testManager, "unbond")
	require.Len(t, unbonds, 1)
	assert.Equal(t, `{"asset":"contract:token-a","amount":"20"}`, unbonds[0].Payload)
}

func TestUpdateClaimsMaturedFunds(t *testing.T) {
	setupTreasury(t)
	registerTestManager(t)
	Allowance(payload(`{"asset":"contract:token-a","spender":"contract:manager-1","kind":"amount","amount":"100","cycle":"86400","tolerance":0}`))
	setReserves("0")
	setManagerAmounts("100", "0", "40", "100")
	sdk.MockClearCalls()

	Update(payload(`{"asset":"contract:token-a"}`))
	assert.Len(t, callsTo(testManager, "claim"), 1)
}

func TestUpdatePortionSplitsRemainder(t *testing.T) {
	setupTreasury(t)
	registerTestManager(t)
	// fixed 300 off the top, then half of what remains
	Allowance(payload(`{"asset":"contract:token-a","spender":"hive:ops-team","kind":"amount","amount":"300","cycle":"86400","tolerance":0}`))
	Allowance(payload(`{"asset":"contract:token-a","spender":"contract:manager-1","kind":"portion","amount":"500000000000000000","cycle":"86400","tolerance":0}`))
	setReserves("1000")
	setManagerAmounts("0", "0", "0", "0")
	sdk.MockClearCalls()

	Update(payload(`{"asset":"contract:token-a"}`))
	calls := callsTo(testToken, "increase_allowance")
	require.Len(t, calls, 2)
	assert.Equal(t, `{"spender":"hive:ops-team","amount":"300"}`, calls[0].Payload)
	assert.Equal(t, `{"spender":"contract:manager-1","amount":"350"}`, calls[1].Payload)
}

func TestUpdateIsIdempotentWithinCycle(t *testing.T) {
	setupTreasury(t)
	Allowance(payload(`{"asset":"contract:token-a","spender":"hive:ops-team","kind":"amount","amount":"100","cycle":"86400","tolerance":0}`))
	setReserves("1000")
	Update(payload(`{"asset":"contract:token-a"}`))
	sdk.MockClearCalls()

	// same block, same state: the cycle gate holds everything still
	Update(payload(`{"asset":"contract:token-a"}`))
	assert.Empty(t, callsTo(testToken, "increase_allowance"))
	assert.Empty(t, callsTo(testToken, "decrease_allowance"))
}

func TestUpdatePrunesSpentOnceEntries(t *testing.T) {
	setupTreasury(t)
	Allowance(payload(`{"asset":"contract:token-a","spender":"hive:ops-team","kind":"amount","amount":"100","cycle":"once","tolerance":0}`))
	setReserves("1000")
	Update(payload(`{"asset":"contract:token-a"}`))
	assert.Empty(t, loadAllowances(testToken))
}

func TestUpdatePrunesDormantEntries(t *testing.T) {
	setupTreasury(t)
	Allowance(payload(`{"asset":"contract:token-a","spender":"hive:ops-team","kind":"amount","amount":"0","cycle":"86400","tolerance":0}`))
	setReserves("1000")
	Update(payload(`{"asset":"contract:token-a"}`))
	assert.Empty(t, loadAllowances(testToken))
}

func TestUpdateAbortsWhenDeactivated(t *testing.T) {
	setupTreasury(t)
	SetRunLevel(payload(`{"level":"deactivated"}`))
	expectAbort(t, "deactivated", func() {
		Update(payload(`{"asset":"contract:token-a"}`))
	})
}

func TestMigrationEvacuatesToMultisig(t *testing.T) {
	setupTreasury(t)
	registerTestManager(t)
	Allowance(payload(`{"asset":"contract:token-a","spender":"contract:manager-1","kind":"amount","amount":"100","cycle":"86400","tolerance":0}`))
	SetRunLevel(payload(`{"level":"migrating"}`))
	setReserves("500")
	setSpenderAllowance(testManager, "40")
	setManagerAmounts("25", "0", "10", "25")
	sdk.MockClearCalls()

	Update(payload(`{"asset":"contract:token-a"}`))

	decreases := callsTo(testToken, "decrease_allowance")
	require.Len(t, decreases, 1)
	assert.Equal(t, `{"spender":"contract:manager-1","amount":"40"}`, decreases[0].Payload)
	assert.Len(t, callsTo(testManager, "unbond"), 1)
	assert.Len(t, callsTo(testManager, "claim"), 1)

	sends := callsTo(testToken, "send")
	require.Len(t, sends, 1)
	assert.Equal(t, `{"to":"hive:multisig","amount":"500"}`, sends[0].Payload)
}

func TestMigrationConvergesToNoop(t *testing.T) {
	setupTreasury(t)
	SetRunLevel(payload(`{"level":"migrating"}`))
	// nothing outstanding anywhere: repeated calls do nothing
	Update(payload(`{"asset":"contract:token-a"}`))
	sdk.MockClearCalls()
	Update(payload(`{"asset":"contract:token-a"}`))
	assert.Empty(t, sdk.MockCalls())
}
