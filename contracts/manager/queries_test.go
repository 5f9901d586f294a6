package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapabilityQueriesDefaultToTreasury(t *testing.T) {
	setupManager(t)
	deposit(t, testBob, "80") // books to the treasury holding

	// no holder given: the treasury's book answers
	assert.Equal(t, `{"amount":"80"}`, *QueryBalance(payload(`{"asset":"contract:token-a"}`)))
	assert.Equal(t, `{"amount":"80"}`, *QueryUnbondable(payload(`{"asset":"contract:token-a"}`)))
	assert.Equal(t, `{"amount":"0"}`, *QueryUnbonding(payload(`{"asset":"contract:token-a"}`)))
}

func TestCapabilityQueriesPerHolder(t *testing.T) {
	setupManager(t)
	addTestHolder(t, testAlice)
	deposit(t, testAlice, "120")

	assert.Equal(t, `{"amount":"120"}`,
		*QueryBalance(payload(`{"asset":"contract:token-a","holder":"hive:alice"}`)))
	assert.Equal(t, `{"amount":"0"}`,
		*QueryBalance(payload(`{"asset":"contract:token-a"}`)))

	expectAbort(t, "not a holder", func() {
		QueryBalance(payload(`{"asset":"contract:token-a","holder":"hive:nobody"}`))
	})
}

func TestClaimableBoundedByReserves(t *testing.T) {
	setupManager(t)
	addTestHolder(t, testAlice)
	deposit(t, testAlice, "100")
	beginAs(t, testAlice)
	Unbond(payload(`{"asset":"contract:token-a","amount":"100"}`))

	setReserves("35")
	assert.Equal(t, `{"amount":"35"}`,
		*QueryClaimable(payload(`{"asset":"contract:token-a","holder":"hive:alice"}`)))
}

func TestHoldingView(t *testing.T) {
	setupManager(t)
	addTestHolder(t, testAlice)
	deposit(t, testAlice, "100")

	view := *QueryHolding(payload(`{"holder":"hive:alice"}`))
	assert.Contains(t, view, `"holder":"hive:alice"`)
	assert.Contains(t, view, `"status":"active"`)
	assert.Contains(t, view, `"100"`)
}
