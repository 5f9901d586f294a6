//go:build !wasm

package sdk

import (
	"fmt"
	"strconv"
)

// Host-side stand-in for the wasm runtime. State lives in plain maps, env
// values are settable, and every outbound contract call is journaled so tests
// can assert on the exact instructions a handler emitted.

// AbortError carries the abort message through the panic that replaces the
// host-level rollback during tests.
type AbortError struct {
	Msg string
}

func (e *AbortError) Error() string { return e.Msg }

// MockCall is one journaled outbound contracts.call invocation.
type MockCall struct {
	Contract string
	Method   string
	Payload  string
}

var (
	mockState    map[string]string
	mockEnvKeys  map[string]string
	mockSender   string
	mockReads    map[string]map[string]string
	mockResps    map[string]map[string]string
	mockHandlers map[string]func(method, payload string) *string
	mockJournal  []MockCall
	mockTxSeq    int
)

func init() {
	MockReset()
}

// MockReset wipes state, env, canned responses and the call journal.
func MockReset() {
	mockState = map[string]string{}
	mockEnvKeys = map[string]string{}
	mockSender = "hive:someone"
	mockReads = map[string]map[string]string{}
	mockResps = map[string]map[string]string{}
	mockHandlers = map[string]func(method, payload string) *string{}
	mockJournal = nil
	mockTxSeq = 0
	MockBeginTx(mockSender, 1756500000)
}

// MockBeginTx starts a fresh transaction: new tx id, sender and block time.
// Per-tx caches keyed on tx.id refresh on the next env read.
func MockBeginTx(sender string, timestamp int64) {
	mockTxSeq++
	mockSender = sender
	mockEnvKeys["tx.id"] = fmt.Sprintf("mock-tx-%d", mockTxSeq)
	mockEnvKeys["block.id"] = "mock-block"
	mockEnvKeys["block.timestamp"] = strconv.FormatInt(timestamp, 10)
	mockEnvKeys["contract.id"] = "contract:self"
}

// MockSetRead seeds a contracts.read response for a contract state key.
func MockSetRead(contract, key, value string) {
	if mockReads[contract] == nil {
		mockReads[contract] = map[string]string{}
	}
	mockReads[contract][key] = value
}

// MockDeleteRead removes a seeded read so the key reads as missing again.
func MockDeleteRead(contract, key string) {
	if mockReads[contract] != nil {
		delete(mockReads[contract], key)
	}
}

// MockSetResponse seeds a canned contracts.call response per contract method.
func MockSetResponse(contract, method, response string) {
	if mockResps[contract] == nil {
		mockResps[contract] = map[string]string{}
	}
	mockResps[contract][method] = response
}

// MockHandle installs a full handler for a contract, taking precedence over
// canned responses when payload-dependent answers are needed.
func MockHandle(contract string, fn func(method, payload string) *string) {
	mockHandlers[contract] = fn
}

// MockCalls returns the journal of outbound calls made so far.
func MockCalls() []MockCall {
	return mockJournal
}

// MockClearCalls drops the journal without touching state or responses.
func MockClearCalls() {
	mockJournal = nil
}

// MockStateGet exposes raw state to tests without going through the contract.
func MockStateGet(key string) *string {
	val, ok := mockState[key]
	if !ok {
		return nil
	}
	return &val
}

// --- mirrored host API ---

func Log(s string) {
	fmt.Println("sdk log:", s)
}

func Abort(msg string) {
	panic(&AbortError{Msg: msg})
}

func Revert(msg string, symbol string) {
	panic(&AbortError{Msg: symbol + ": " + msg})
}

func StateSetObject(key string, value string) {
	mockState[key] = value
}

func StateGetObject(key string) *string {
	val, ok := mockState[key]
	if !ok {
		return nil
	}
	return &val
}

func StateDeleteObject(key string) {
	delete(mockState, key)
}

func GetEnv() Env {
	return Env{
		ContractId: mockEnvKeys["contract.id"],
		TxId:       mockEnvKeys["tx.id"],
		BlockId:    mockEnvKeys["block.id"],
		Timestamp:  mockEnvKeys["block.timestamp"],
		Sender: Sender{
			Address:              Address(mockSender),
			RequiredAuths:        []Address{Address(mockSender)},
			RequiredPostingAuths: []Address{},
		},
	}
}

func GetEnvKey(key string) *string {
	val, ok := mockEnvKeys[key]
	if !ok {
		return nil
	}
	return &val
}

func ContractRead(contractId string, key string) *string {
	if m := mockReads[contractId]; m != nil {
		if val, ok := m[key]; ok {
			return &val
		}
	}
	return nil
}

func ContractCall(contractId string, method string, payload string) *string {
	mockJournal = append(mockJournal, MockCall{Contract: contractId, Method: method, Payload: payload})
	if fn, ok := mockHandlers[contractId]; ok {
		return fn(method, payload)
	}
	if m := mockResps[contractId]; m != nil {
		if val, ok := m[method]; ok {
			return &val
		}
	}
	return nil
}
