package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"treasury_suite/sdk"
)

const (
	testAdmin    = "hive:admin"
	testMultisig = "hive:multisig"
	testSelf     = "contract:self"
	testToken    = "contract:token-a"
	testManager  = "contract:manager-1"
	testOps      = "hive:ops-team"
)

func payload(s string) *string {
	return &s
}

func expectAbort(t *testing.T, contains string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected abort")
		abortErr, ok := r.(*sdk.AbortError)
		require.True(t, ok, "panic was not an abort: %v", r)
		assert.Contains(t, abortErr.Msg, contains)
	}()
	fn()
}

// setupTreasury initializes the contract and registers the test asset, then
// clears the journal so assertions only see the calls under test.
func setupTreasury(t *testing.T) {
	t.Helper()
	sdk.MockReset()
	sdk.MockBeginTx(testAdmin, 1756500000)
	Init(payload(`{"admin":"hive:admin","multisig":"hive:multisig","viewing_key":"vk-1","code_hash":"self-hash"}`))
	RegisterAsset(payload(`{"token_contract":"contract:token-a","code_hash":"token-hash","symbol":"TKA","decimals":6}`))
	sdk.MockClearCalls()
}

func registerTestManager(t *testing.T) {
	t.Helper()
	RegisterManager(payload(`{"contract":"contract:manager-1"}`))
	sdk.MockClearCalls()
}

func setReserves(amount string) {
	sdk.MockSetRead(testToken, "bal:"+testSelf, amount)
}

func setSpenderAllowance(spender, amount string) {
	sdk.MockSetRead(testToken, "alw:"+testSelf+":"+spender, amount)
}

func setManagerAmounts(balance, unbonding, claimable, unbondable string) {
	sdk.MockSetResponse(testManager, "balance", `{"amount":"`+balance+`"}`)
	sdk.MockSetResponse(testManager, "unbonding", `{"amount":"`+unbonding+`"}`)
	sdk.MockSetResponse(testManager, "claimable", `{"amount":"`+claimable+`"}`)
	sdk.MockSetResponse(testManager, "unbondable", `{"amount":"`+unbondable+`"}`)
}

// callsTo filters the journal down to one contract method.
func callsTo(contract, method string) []sdk.MockCall {
	var out []sdk.MockCall
	for _, c := range sdk.MockCalls() {
		if c.Contract == contract && c.Method == method {
			out = append(out, c)
		}
	}
	return out
}
