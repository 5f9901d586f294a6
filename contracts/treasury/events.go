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

func emitManagerRegistered(contract sdk.Address) {
	sdk.Log(fmt.Sprintf("rm|c:%s", contract))
}

func emitAllowanceSet(token string, m AllowanceMeta) {
	sdk.Log(fmt.Sprintf("al|t:%s|sp:%s|k:%s|am:%s", token, m.Spender, m.Kind, m.Amount))
}

func emitAllowancePruned(token string, spender sdk.Address) {
	sdk.Log(fmt.Sprintf("pr|t:%s|sp:%s", token, spender))
}

func emitRunLevel(l core.RunLevel) {
	sdk.Log(fmt.Sprintf("rl|l:%s", l))
}

func emitUpdated(token string, refreshed int) {
	sdk.Log(fmt.Sprintf("up|t:%s|n:%d", token, refreshed))
}

func emitReceived(token string, from sdk.Address, amount core.Amount) {
	sdk.Log(fmt.Sprintf("rc|t:%s|fr:%s|am:%s", token, from, amount))
}

func emitEvacuated(token string, amount core.Amount) {
	sdk.Log(fmt.Sprintf("mg|t:%s|am:%s", token, amount))
}
