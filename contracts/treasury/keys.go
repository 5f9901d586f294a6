package main

// state key layout
const (
	kConfig   = "cfg"
	kRunLevel = "runlvl"
	kAssets   = "assets"
	kManagers = "mgrs"
)

func assetKey(token string) string {
	return "asset:" + token
}

func allowanceKey(token string) string {
	return "alw:" + token
}
