//go:build wasm

package main

//go:wasmexport init
func exportInit(payload *string) *string { return Init(payload) }

//go:wasmexport update_config
func exportUpdateConfig(payload *string) *string { return UpdateConfig(payload) }

//go:wasmexport register_asset
func exportRegisterAsset(payload *string) *string { return RegisterAsset(payload) }

//go:wasmexport allocate
func exportAllocate(payload *string) *string { return Allocate(payload) }

//go:wasmexport add_holder
func exportAddHolder(payload *string) *string { return AddHolder(payload) }

//go:wasmexport remove_holder
func exportRemoveHolder(payload *string) *string { return RemoveHolder(payload) }

//go:wasmexport receive
func exportReceive(payload *string) *string { return Receive(payload) }

//go:wasmexport unbond
func exportUnbond(payload *string) *string { return Unbond(payload) }

//go:wasmexport claim
func exportClaim(payload *string) *string { return Claim(payload) }

//go:wasmexport update
func exportUpdate(payload *string) *string { return Update(payload) }

//go:wasmexport balance
func exportBalance(payload *string) *string { return QueryBalance(payload) }

//go:wasmexport unbonding
func exportUnbonding(payload *string) *string { return QueryUnbonding(payload) }

//go:wasmexport claimable
func exportClaimable(payload *string) *string { return QueryClaimable(payload) }

//go:wasmexport unbondable
func exportUnbondable(payload *string) *string { return QueryUnbondable(payload) }

//go:wasmexport config
func exportConfig(payload *string) *string { return QueryConfig(payload) }

//go:wasmexport assets
func exportAssets(payload *string) *string { return QueryAssets(payload) }

//go:wasmexport allocations
func exportAllocations(payload *string) *string { return QueryAllocations(payload) }

//go:wasmexport holding
func exportHolding(payload *string) *string { return QueryHolding(payload) }

//go:wasmexport holders
func exportHolders(payload *string) *string { return QueryHolders(payload) }

//go:wasmexport metrics
func exportMetrics(payload *string) *string { return QueryMetrics(payload) }
