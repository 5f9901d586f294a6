//go:build wasm

package main

//go:wasmexport init
func exportInit(payload *string) *string { return Init(payload) }

//go:wasmexport update_config
func exportUpdateConfig(payload *string) *string { return UpdateConfig(payload) }

//go:wasmexport set_run_level
func exportSetRunLevel(payload *string) *string { return SetRunLevel(payload) }

//go:wasmexport register_asset
func exportRegisterAsset(payload *string) *string { return RegisterAsset(payload) }

//go:wasmexport register_manager
func exportRegisterManager(payload *string) *string { return RegisterManager(payload) }

//go:wasmexport allowance
func exportAllowance(payload *string) *string { return Allowance(payload) }

//go:wasmexport update
func exportUpdate(payload *string) *string { return Update(payload) }

//go:wasmexport receive
func exportReceive(payload *string) *string { return Receive(payload) }

//go:wasmexport config
func exportConfig(payload *string) *string { return QueryConfig(payload) }

//go:wasmexport assets
func exportAssets(payload *string) *string { return QueryAssets(payload) }

//go:wasmexport asset
func exportAsset(payload *string) *string { return QueryAsset(payload) }

//go:wasmexport run_level
func exportRunLevel(payload *string) *string { return QueryRunLevel(payload) }

//go:wasmexport allowances
func exportAllowances(payload *string) *string { return QueryAllowances(payload) }

//go:wasmexport balance
func exportBalance(payload *string) *string { return QueryBalance(payload) }

//go:wasmexport managers
func exportManagers(payload *string) *string { return QueryManagers(payload) }

//go:wasmexport metrics
func exportMetrics(payload *string) *string { return QueryMetrics(payload) }
