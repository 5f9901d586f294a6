package core

import "treasury_suite/sdk"

// Client side of the token ledger. Each registered asset is a token contract;
// instructions go through contracts.call, balance and allowance reads through
// the view-only contracts.read interface.

const (
	ledgerBalancePrefix   = "bal:"
	ledgerAllowancePrefix = "alw:"
)

// TokenBalance reads an account balance off the token contract, zero when the
// account is unknown to the ledger.
func TokenBalance(token string, addr sdk.Address) Amount {
	ptr := sdk.ContractRead(token, ledgerBalancePrefix+addr.String())
	if ptr == nil || *ptr == "" {
		return 0
	}
	return MustParseAmount(*ptr)
}

// TokenAllowance reads the outstanding owner->spender allowance.
func TokenAllowance(token string, owner, spender sdk.Address) Amount {
	ptr := sdk.ContractRead(token, ledgerAllowancePrefix+owner.String()+":"+spender.String())
	if ptr == nil || *ptr == "" {
		return 0
	}
	return MustParseAmount(*ptr)
}

// SendTokens moves contract-owned tokens to a single recipient.
func SendTokens(token string, to sdk.Address, amount Amount) {
	sdk.ContractCall(token, "send", MarshalMsg(SendMsg{To: to.String(), Amount: amount}))
}

// BatchSend emits one coalesced send instruction, or nothing for an empty batch.
func BatchSend(token string, actions []SendAction) {
	if len(actions) == 0 {
		return
	}
	sdk.ContractCall(token, "batch_send", MarshalMsg(BatchSendMsg{Actions: actions}))
}

// BatchSendFrom is the allowance-funded counterpart of BatchSend.
func BatchSendFrom(token string, actions []SendFromAction) {
	if len(actions) == 0 {
		return
	}
	sdk.ContractCall(token, "batch_send_from", MarshalMsg(BatchSendFromMsg{Actions: actions}))
}

// IncreaseAllowance raises what spender may draw from this contract.
func IncreaseAllowance(token string, spender sdk.Address, amount Amount) {
	sdk.ContractCall(token, "increase_allowance", MarshalMsg(AllowanceMsg{Spender: spender.String(), Amount: amount}))
}

// DecreaseAllowance lowers the spender's draw, clamped by the ledger at zero.
func DecreaseAllowance(token string, spender sdk.Address, amount Amount) {
	sdk.ContractCall(token, "decrease_allowance", MarshalMsg(AllowanceMsg{Spender: spender.String(), Amount: amount}))
}

// RegisterReceive subscribes this contract to the token's transfer hook so
// inbound funds trigger the receive entry point.
func RegisterReceive(token string, codeHash string) {
	sdk.ContractCall(token, "register_receive", MarshalMsg(RegisterReceiveMsg{CodeHash: codeHash}))
}

// SetViewingKey sets the key backing this contract's balance reads.
func SetViewingKey(token string, key string) {
	sdk.ContractCall(token, "set_viewing_key", MarshalMsg(SetViewingKeyMsg{Key: key}))
}
