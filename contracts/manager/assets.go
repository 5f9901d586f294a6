package main

import (
	"treasury_suite/contracts/core"
	"treasury_suite/sdk"
)

// RegisterAsset enrolls a token with the manager, mirroring the treasury's
// registration so the two books stay on the same denominations.
func RegisterAsset(payload *string) *string {
	cfg := loadConfig()
	requireAdmin(cfg)
	var p RegisterAssetPayload
	fromJSON(*payload, &p, "register asset")
	if p.TokenContract == "" {
		sdk.Abort("register asset: token contract required")
	}
	asset := core.Asset{
		TokenContract: p.TokenContract,
		CodeHash:      p.CodeHash,
		Symbol:        p.Symbol,
		Decimals:      p.Decimals,
	}
	if loadAsset(p.TokenContract) == nil {
		saveAssetIndex(append(loadAssetIndex(), p.TokenContract))
	}
	saveAsset(asset)
	core.RegisterReceive(p.TokenContract, cfg.CodeHash)
	core.SetViewingKey(p.TokenContract, cfg.ViewingKey)
	emitAssetRegistered(p.TokenContract, p.Symbol)
	return result("asset registered")
}

// Receive is the token-contract transfer hook. Transfers out of our own
// adapters are funds coming home, not deposits, and change no holder book.
// Everything else credits the sender's holding when they are an active
// holder, and the treasury's holding otherwise.
func Receive(payload *string) *string {
	cfg := loadConfig()
	var notice core.ReceiveNotice
	core.UnmarshalMsg(*payload, &notice)
	token := core.Sender().String()
	mustLoadAsset(token)

	from := sdk.Address(notice.From)
	for _, a := range loadAllocations(token) {
		if a.Adapter == from {
			return result("received")
		}
	}

	holder := cfg.Treasury.String()
	if h := loadHolding(notice.From); h != nil && h.Status == core.StatusActive {
		holder = notice.From
	}
	holding := mustLoadHolding(holder)
	holding.setBalance(token, holding.balance(token)+notice.Amount)
	saveHolding(holder, holding)
	core.AppendMetric(token, core.MetricReceive, "receive", notice.Amount, notice.From)
	emitReceived(token, holder, notice.Amount)
	return result("received")
}
