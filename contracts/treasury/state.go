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
		sdk.Abort("treasury not initialized")
	}
	var c Config
	fromJSON(*raw, &c, "config")
	return c
}

func saveRunLevel(l core.RunLevel) {
	sdk.StateSetObject(kRunLevel, l.String())
}

func loadRunLevel() core.RunLevel {
	raw := sdk.StateGetObject(kRunLevel)
	if raw == nil {
		return core.RunLevelNormal
	}
	return core.ParseRunLevel(*raw)
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

func saveAllowances(token string, metas []AllowanceMeta) {
	if len(metas) == 0 {
		sdk.StateDeleteObject(allowanceKey(token))
		return
	}
	sdk.StateSetObject(allowanceKey(token), toJSON(metas, "allowances"))
}

func loadAllowances(token string) []AllowanceMeta {
	raw := sdk.StateGetObject(allowanceKey(token))
	if raw == nil {
		return nil
	}
	var metas []AllowanceMeta
	fromJSON(*raw, &metas, "allowances")
	return metas
}

func saveManagers(ms []Manager) {
	sdk.StateSetObject(kManagers, toJSON(ms, "managers"))
}

func loadManagers() []Manager {
	raw := sdk.StateGetObject(kManagers)
	if raw == nil {
		return nil
	}
	var ms []Manager
	fromJSON(*raw, &ms, "managers")
	return ms
}

func isManager(addr sdk.Address) bool {
	for _, m := range loadManagers() {
		if m.Contract == addr {
			return true
		}
	}
	return false
}
