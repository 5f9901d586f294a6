package main

import (
	"treasury_suite/contracts/core"
	"treasury_suite/sdk"
)

// RegisterAsset enrolls a token contract with the treasury. Registering an
// already-known token refreshes its metadata in place. Either way the token
// is told to notify us on transfers and our viewing key is set so balances
// stay readable.
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
		index := append(loadAssetIndex(), p.TokenContract)
		saveAssetIndex(index)
	}
	saveAsset(asset)
	core.RegisterReceive(p.TokenContract, cfg.CodeHash)
	core.SetViewingKey(p.TokenContract, cfg.ViewingKey)
	emitAssetRegistered(p.TokenContract, p.Symbol)
	return result("asset registered")
}

// RegisterManager records a treasury-manager contract. Manager spenders get
// the full adapter treatment during updates: their held balance counts toward
// total managed funds and shortfalls can be unbonded back out of them.
func RegisterManager(payload *string) *string {
	cfg := loadConfig()
	requireAdmin(cfg)
	var p RegisterManagerPayload
	fromJSON(*payload, &p, "register manager")
	if p.Contract == "" {
		sdk.Abort("register manager: contract required")
	}
	addr := sdk.Address(p.Contract)
	managers := loadManagers()
	for _, m := range managers {
		if m.Contract == addr {
			return result("manager already registered")
		}
	}
	saveManagers(append(managers, Manager{Contract: addr}))
	emitManagerRegistered(addr)
	return result("manager registered")
}

// Receive is the token-contract transfer hook. The caller is the token
// contract itself, so the asset lookup doubles as sender validation. Funds
// simply accrue to reserves; only the metric trail is written here.
func Receive(payload *string) *string {
	var notice core.ReceiveNotice
	core.UnmarshalMsg(*payload, &notice)
	token := core.Sender().String()
	mustLoadAsset(token)
	core.AppendMetric(token, core.MetricReceive, "receive", notice.Amount, notice.From)
	emitReceived(token, sdk.Address(notice.From), notice.Amount)
	return result("received")
}
