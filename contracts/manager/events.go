package main

import (
	"fmt"

	"treasury_suite/contracts/core"
	"treasury_suite/sdk"
)

// pipe-delimited event lines, picked up from the host log stream

func emitAssetRegistered(token, symbol string) {
	sdk.Log(fmt.Sprintf("ra|t:%s|s:%s", token, symbol))
}

func emitAllocated(token string, a Allocation) {
	sdk.Log(fmt.Sprintf("ac|t:%s|ad:%s|k:%s|am:%s", token, a.Adapter, a.Kind, a.Amount))
}

func emitAllocationRemoved(token string, adapter sdk.Address) {
	sdk.Log(fmt.Sprintf("ax|t:%s|ad:%s", token, adapter))
}

func emitHolderAdded(holder string) {
	sdk.Log(fmt.Sprintf("ha|h:%s", holder))
}

func emitHolderClosed(holder string) {
	sdk.Log(fmt.Sprintf("hx|h:%s", holder))
}

func emitReceived(token, holder string, amount core.Amount) {
	sdk.Log(fmt.Sprintf("rc|t:%s|h:%s|am:%s", token, holder, amount))
}

func emitUnbond(token, holder string, amount core.Amount) {
	sdk.Log(fmt.Sprintf("ub|t:%s|h:%s|am:%s", token, holder, amount))
}

func emitClaim(token, holder string, amount core.Amount) {
	sdk.Log(fmt.Sprintf("cl|t:%s|h:%s|am:%s", token, holder, amount))
}

func emitGain(token string, amount core.Amount) {
	sdk.Log(fmt.Sprintf("gn|t:%s|am:%s", token, amount))
}

func emitLoss(token string, amount core.Amount) {
	sdk.Log(fmt.Sprintf("ls|t:%s|am:%s", token, amount))
}

func emitUpdated(token string, sent, pulled core.Amount) {
	sdk.Log(fmt.Sprintf("up|t:%s|sn:%s|pl:%s", token, sent, pulled))
}
