package main

// state key layout
const (
	kConfig  = "cfg"
	kAssets  = "assets"
	kHolders = "holders"
)

func assetKey(token string) string {
	return "asset:" + token
}

func allocationKey(token string) string {
	return "alloc:" + token
}

func holdingKey(addr string) string {
	return "hold:" + addr
}
