package core

import (
	"strconv"
	"time"

	"treasury_suite/sdk"
)

// cachedEnv is scoped to the currently executing transaction. Whenever tx.id
// changes we refresh sdk.GetEnv() so repeated sender/timestamp reads inside
// one call all see the same snapshot.
var (
	cachedEnv       sdk.Env
	cachedEnvLoaded bool
)

// CurrentEnv caches the env per tx.id so we dont poke the host api every few
// lines.
func CurrentEnv() *sdk.Env {
	var currentTx string
	if txPtr := sdk.GetEnvKey("tx.id"); txPtr != nil {
		currentTx = *txPtr
	}
	if !cachedEnvLoaded || cachedEnv.TxId != currentTx {
		cachedEnv = sdk.GetEnv()
		cachedEnvLoaded = true
	}
	return &cachedEnv
}

// Sender returns the address of the current transaction sender.
func Sender() sdk.Address {
	return CurrentEnv().Sender.Address
}

// SelfAddress returns this contract's own address in the contract domain.
func SelfAddress() sdk.Address {
	if idPtr := sdk.GetEnvKey("contract.id"); idPtr != nil {
		return sdk.Address(*idPtr)
	}
	return sdk.Address(CurrentEnv().ContractId)
}

// NowUnix reads the chain timestamp, accepting integer seconds or RFC3339.
func NowUnix() int64 {
	if tsPtr := sdk.GetEnvKey("block.timestamp"); tsPtr != nil && *tsPtr != "" {
		if v, err := strconv.ParseInt(*tsPtr, 10, 64); err == nil {
			return v
		}
		if t, err := time.Parse(time.RFC3339, *tsPtr); err == nil {
			return t.Unix()
		}
	}
	return time.Now().Unix()
}
