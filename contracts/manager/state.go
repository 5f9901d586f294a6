package main

import (
	"treasury_suite/contracts/core"
	"treasury_suite/sdk"
)

func saveConfig(c Config) {
	sdk.StateSetObject(kConfig, toJSON(c, "config"))
}

func loadConfig() Config {
	raw := sdk.StateGetObject(kConfig)
	if raw == nil {
		sdk.Abort("manager not initialized")
	}
	var c Config
	fromJSON(*raw, &c, "config")
	return c
}

func saveAssetIndex(tokens []string) {
	sdk.StateSetObject(kAssets, toJSON(tokens, "asset index"))
}

func loadAssetIndex() []string {
	raw := sdk.StateGetObject(kAssets)
	if raw == nil {
		return nil
	}
	var tokens []string
	fromJSON(*raw, &tokens, "asset index")
	return tokens
}

func saveAsset(a core.Asset) {
	sdk.StateSetObject(assetKey(a.TokenContract), toJSON(a, "asset"))
}

func loadAsset(token string) *core.Asset {
	raw := sdk.StateGetObject(assetKey(token))
	if raw == nil {
		return nil
	}
	var a core.Asset
	fromJSON(*raw, &a, "asset")
	return &a
}

func mustLoadAsset(token string) core.Asset {
	a := loadAsset(token)
	if a == nil {
		sdk.Abort("asset not registered: " + token)
	}
	return *a
}

func saveAllocations(token string, allocs []Allocation) {
	if len(allocs) == 0 {
		sdk.StateDeleteObject(allocationKey(token))
		return
	}
	sdk.StateSetObject(allocationKey(token), toJSON(allocs, "allocations"))
}

func loadAllocations(token string) []Allocation {
	raw := sdk.StateGetObject(allocationKey(token))
	if raw == nil {
		return nil
	}
	var allocs []Allocation
	fromJSON(*raw, &allocs, "allocations")
	return allocs
}

func saveHolderIndex(addrs []string) {
	sdk.StateSetObject(kHolders, toJSON(addrs, "holder index"))
}

func loadHolderIndex() []string {
	raw := sdk.StateGetObject(kHolders)
	if raw == nil {
		return nil
	}
	var addrs []string
	fromJSON(*raw, &addrs, "holder index")
	return addrs
}

func saveHolding(addr string, h Holding) {
	sdk.StateSetObject(holdingKey(addr), toJSON(h, "holding"))
}

func loadHolding(addr string) *Holding {
	raw := sdk.StateGetObject(holdingKey(addr))
	if raw == nil {
		return nil
	}
	var h Holding
	fromJSON(*raw, &h, "holding")
	return &h
}

func mustLoadHolding(addr string) Holding {
	h := loadHolding(addr)
	if h == nil {
		sdk.Abort("not a holder: " + addr)
	}
	return *h
}
