package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"treasury_suite/contracts/core"
	"treasury_suite/sdk"
)

const (
	testAdmin    = "hive:admin"
	testTreasury = "contract:treasury"
	testSelf     = "contract:self"
	testToken    = "contract:token-a"
	testAdapter1 = "contract:adapter-1"
	testAdapter2 = "contract:adapter-2"
	testAlice    = "hive:alice"
	testBob      = "hive:bob"
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

// setupManager initializes the contract against a test treasury and registers
// the test asset, leaving a clean call journal.
func setupManager(t *testing.T) {
	t.Helper()
	sdk.MockReset()
	sdk.MockBeginTx(testAdmin, 1756500000)
	Init(payload(`{"admin":"hive:admin","treasury":"contract:treasury","viewing_key":"vk-1","code_hash":"self-hash"}`))
	RegisterAsset(payload(`{"token_contract":"contract:token-a","code_hash":"token-hash","symbol":"TKA","decimals":6}`))
	sdk.MockClearCalls()
}

func beginAs(t *testing.T, sender string) {
	t.Helper()
	sdk.MockBeginTx(sender, 1756500000)
}

func addTestHolder(t *testing.T, holder string) {
	t.Helper()
	sdk.MockBeginTx(testAdmin, 1756500000)
	AddHolder(payload(`{"holder":"` + holder + `"}`))
	sdk.MockClearCalls()
}

// deposit simulates the token contract firing the receive hook.
func deposit(t *testing.T, from, amount string) {
	t.Helper()
	sdk.MockBeginTx(testToken, 1756500000)
	Receive(payload(`{"sender":"` + from + `","from":"` + from + `","amount":"` + amount + `"}`))
	sdk.MockClearCalls()
}

func allocate(t *testing.T, adapter, kind, amount string) {
	t.Helper()
	sdk.MockBeginTx(testAdmin, 1756500000)
	Allocate(payload(`{"asset":"contract:token-a","adapter":"` + adapter + `","kind":"` + kind + `","amount":"` + amount + `","tolerance":0}`))
	sdk.MockClearCalls()
}

func setReserves(amount string) {
	sdk.MockSetRead(testToken, "bal:"+testSelf, amount)
}

func setTreasuryAllowance(amount string) {
	sdk.MockSetRead(testToken, "alw:"+testTreasury+":"+testSelf, amount)
}

func setAdapterAmounts(adapter, balance, unbonding, claimable, unbondable string) {
	sdk.MockSetResponse(adapter, "balance", `{"amount":"`+balance+`"}`)
	sdk.MockSetResponse(adapter, "unbonding", `{"amount":"`+unbonding+`"}`)
	sdk.MockSetResponse(adapter, "claimable", `{"amount":"`+claimable+`"}`)
	sdk.MockSetResponse(adapter, "unbondable", `{"amount":"`+unbondable+`"}`)
}

func holderBalance(addr string) core.Amount {
	h := loadHolding(addr)
	if h == nil {
		return 0
	}
	return h.balance(testToken)
}

func holderUnbonding(addr string) core.Amount {
	h := loadHolding(addr)
	if h == nil {
		return 0
	}
	return h.unbonding(testToken)
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
