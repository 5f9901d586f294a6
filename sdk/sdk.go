//go:build wasm

package sdk

//go:wasmimport sdk console.log
func log(s *string) *string

//go:wasmimport sdk db.set_object
func stateSetObject(key *string, value *string) *string

//go:wasmimport sdk db.get_object
func stateGetObject(key *string) *string

//go:wasmimport sdk db.rm_object
func stateDeleteObject(key *string) *string

//go:wasmimport sdk system.get_env
func getEnv(arg *string) *string

//go:wasmimport sdk system.get_env_key
func getEnvKey(arg *string) *string

//go:wasmimport sdk contracts.read
func contractRead(contractId *string, key *string) *string

//go:wasmimport sdk contracts.call
func contractCall(contractId *string, method *string, payload *string, options *string) *string

//go:wasmimport env abort
func abort(msg, file *string, line, column *int32)

//go:wasmimport env revert
func revert(msg, symbol *string)

// Log writes a message to the wasm console so we can trace contract steps.
func Log(s string) {
	log(&s)
}

// Abort stops execution immediately and surfaces the message to the chain.
// Every state write and emitted call of the transaction is rolled back.
func Abort(msg string) {
	ln := int32(0)
	abort(&msg, nil, &ln, &ln)
	panic(msg)
}

// Revert throws a named error back to the caller with a short symbol.
func Revert(msg string, symbol string) {
	revert(&msg, &symbol)
}

// StateSetObject stores a key/value string pair into contract kv storage.
func StateSetObject(key string, value string) {
	stateSetObject(&key, &value)
}

// StateGetObject fetches a key and returns nil when missing.
func StateGetObject(key string) *string {
	return stateGetObject(&key)
}

// StateDeleteObject removes the key entirely, handy for cleanup.
func StateDeleteObject(key string) {
	stateDeleteObject(&key)
}

// GetEnv pulls the JSON env blob from the chain and maps it to an Env struct.
func GetEnv() Env {
	return envFromJSON(*getEnv(nil))
}

// GetEnvKey pulls a single env key (like tx.id) to avoid parsing the whole struct.
func GetEnvKey(key string) *string {
	return getEnvKey(&key)
}

// ContractRead reads another contract's state key (view-only).
func ContractRead(contractId string, key string) *string {
	return contractRead(&contractId, &key)
}

// ContractCall performs a synchronous call into another contract. The callee
// runs inside the same transaction; a failure there aborts this call too.
func ContractCall(contractId string, method string, payload string) *string {
	optStr := ""
	return contractCall(&contractId, &method, &payload, &optStr)
}
