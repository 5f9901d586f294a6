package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"treasury_suite/contracts/core"
)

func TestInitOpensTreasuryHolding(t *testing.T) {
	setupManager(t)
	h := loadHolding(testTreasury)
	assert.NotNil(t, h)
	assert.Equal(t, core.StatusActive, h.Status)
	assert.Equal(t, []string{testTreasury}, loadHolderIndex())
}

func TestAddHolderRejectsExistingRecords(t *testing.T) {
	setupManager(t)
	addTestHolder(t, testAlice)
	expectAbort(t, "holder record exists", func() {
		AddHolder(payload(`{"holder":"hive:alice"}`))
	})

	// a closed book blocks re-use of the address for good
	RemoveHolder(payload(`{"holder":"hive:alice"}`))
	expectAbort(t, "holder record exists", func() {
		AddHolder(payload(`{"holder":"hive:alice"}`))
	})
}

func TestRemoveHolderClosesNotDeletes(t *testing.T) {
	setupManager(t)
	addTestHolder(t, testAlice)
	deposit(t, testAlice, "100")

	beginAs(t, testAdmin)
	RemoveHolder(payload(`{"holder":"hive:alice"}`))
	h := loadHolding(testAlice)
	assert.NotNil(t, h)
	assert.Equal(t, core.StatusClosed, h.Status)
	assert.Equal(t, core.Amount(100), h.balance(testToken))
}

func TestTreasuryHoldingCannotBeRemoved(t *testing.T) {
	setupManager(t)
	expectAbort(t, "cannot remove treasury holding", func() {
		RemoveHolder(payload(`{"holder":"contract:treasury"}`))
	})
}

func TestReceiveRoutesDeposits(t *testing.T) {
	setupManager(t)
	addTestHolder(t, testAlice)

	// an active holder's deposit lands on their own book
	deposit(t, testAlice, "100")
	assert.Equal(t, core.Amount(100), holderBalance(testAlice))

	// a stranger's deposit accrues to the treasury
	deposit(t, testBob, "40")
	assert.Equal(t, core.Amount(40), holderBalance(testTreasury))

	// a closed holder's deposit does too
	beginAs(t, testAdmin)
	RemoveHolder(payload(`{"holder":"hive:alice"}`))
	deposit(t, testAlice, "25")
	assert.Equal(t, core.Amount(100), holderBalance(testAlice))
	assert.Equal(t, core.Amount(65), holderBalance(testTreasury))
}

func TestReceiveIgnoresAdapterReturns(t *testing.T) {
	setupManager(t)
	allocate(t, testAdapter1, "amount", "500")
	deposit(t, testAdapter1, "300")
	assert.Equal(t, core.Amount(0), holderBalance(testTreasury))
}

func TestReceiveRequiresRegisteredAsset(t *testing.T) {
	setupManager(t)
	beginAs(t, "contract:unknown-token")
	expectAbort(t, "asset not registered", func() {
		Receive(payload(`{"sender":"hive:alice","from":"hive:alice","amount":"10"}`))
	})
}
