package core

import (
	"github.com/CosmWasm/tinyjson/jlexer"
	"github.com/CosmWasm/tinyjson/jwriter"
)

// Wire shapes shared between the treasury, the manager, adapters and the
// token ledger. Hand-written tinyjson marshalers keep the wasm artifact free
// of reflection; the field set mirrors the envelopes adapters expect.

// AmountResponse is the uniform answer of balance-style queries.
type AmountResponse struct {
	Amount Amount `json:"amount"`
}

func (v AmountResponse) MarshalTinyJSON(out *jwriter.Writer) {
	out.RawString(`{"amount":`)
	v.Amount.MarshalTinyJSON(out)
	out.RawByte('}')
}

func (v *AmountResponse) UnmarshalTinyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "amount":
			v.Amount.UnmarshalTinyJSON(in)
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}

// AssetQuery addresses one asset, optionally scoped to a single holder.
type AssetQuery struct {
	Asset  string `json:"asset"`
	Holder string `json:"holder,omitempty"`
}

func (v AssetQuery) MarshalTinyJSON(out *jwriter.Writer) {
	out.RawString(`{"asset":`)
	out.String(v.Asset)
	if v.Holder != "" {
		out.RawString(`,"holder":`)
		out.String(v.Holder)
	}
	out.RawByte('}')
}

func (v *AssetQuery) UnmarshalTinyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "asset":
			v.Asset = in.String()
		case "holder":
			v.Holder = in.String()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}

// UnbondMsg instructs an adapter (or the manager) to start releasing funds.
type UnbondMsg struct {
	Asset  string `json:"asset"`
	Amount Amount `json:"amount"`
}

func (v UnbondMsg) MarshalTinyJSON(out *jwriter.Writer) {
	out.RawString(`{"asset":`)
	out.String(v.Asset)
	out.RawString(`,"amount":`)
	v.Amount.MarshalTinyJSON(out)
	out.RawByte('}')
}

func (v *UnbondMsg) UnmarshalTinyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "asset":
			v.Asset = in.String()
		case "amount":
			v.Amount.UnmarshalTinyJSON(in)
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}

// ClaimMsg asks for everything claimable on the asset to be sent back.
type ClaimMsg struct {
	Asset string `json:"asset"`
}

func (v ClaimMsg) MarshalTinyJSON(out *jwriter.Writer) {
	out.RawString(`{"asset":`)
	out.String(v.Asset)
	out.RawByte('}')
}

func (v *ClaimMsg) UnmarshalTinyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "asset":
			v.Asset = in.String()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}

// SendMsg moves contract-owned tokens to a recipient.
type SendMsg struct {
	To     string `json:"to"`
	Amount Amount `json:"amount"`
	Memo   string `json:"memo,omitempty"`
}

func (v SendMsg) MarshalTinyJSON(out *jwriter.Writer) {
	out.RawString(`{"to":`)
	out.String(v.To)
	out.RawString(`,"amount":`)
	v.Amount.MarshalTinyJSON(out)
	if v.Memo != "" {
		out.RawString(`,"memo":`)
		out.String(v.Memo)
	}
	out.RawByte('}')
}

func (v *SendMsg) UnmarshalTinyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "to":
			v.To = in.String()
		case "amount":
			v.Amount.UnmarshalTinyJSON(in)
		case "memo":
			v.Memo = in.String()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}

// SendAction is one entry of a coalesced batch send.
type SendAction struct {
	To     string `json:"to"`
	Amount Amount `json:"amount"`
}

func (v SendAction) MarshalTinyJSON(out *jwriter.Writer) {
	out.RawString(`{"to":`)
	out.String(v.To)
	out.RawString(`,"amount":`)
	v.Amount.MarshalTinyJSON(out)
	out.RawByte('}')
}

func (v *SendAction) UnmarshalTinyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "to":
			v.To = in.String()
		case "amount":
			v.Amount.UnmarshalTinyJSON(in)
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}

// SendFromAction is one entry of a coalesced batch send drawing on an
// allowance granted by Owner.
type SendFromAction struct {
	Owner  string `json:"owner"`
	To     string `json:"to"`
	Amount Amount `json:"amount"`
}

func (v SendFromAction) MarshalTinyJSON(out *jwriter.Writer) {
	out.RawString(`{"owner":`)
	out.String(v.Owner)
	out.RawString(`,"to":`)
	out.String(v.To)
	out.RawString(`,"amount":`)
	v.Amount.MarshalTinyJSON(out)
	out.RawByte('}')
}

func (v *SendFromAction) UnmarshalTinyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "owner":
			v.Owner = in.String()
		case "to":
			v.To = in.String()
		case "amount":
			v.Amount.UnmarshalTinyJSON(in)
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}

// BatchSendMsg coalesces several sends into one token-ledger instruction.
type BatchSendMsg struct {
	Actions []SendAction `json:"actions"`
}

func (v BatchSendMsg) MarshalTinyJSON(out *jwriter.Writer) {
	out.RawString(`{"actions":[`)
	for i, action := range v.Actions {
		if i > 0 {
			out.RawByte(',')
		}
		action.MarshalTinyJSON(out)
	}
	out.RawString(`]}`)
}

func (v *BatchSendMsg) UnmarshalTinyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "actions":
			in.Delim('[')
			v.Actions = nil
			for !in.IsDelim(']') {
				var action SendAction
				action.UnmarshalTinyJSON(in)
				v.Actions = append(v.Actions, action)
				in.WantComma()
			}
			in.Delim(']')
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}

// BatchSendFromMsg is the allowance-funded counterpart of BatchSendMsg.
type BatchSendFromMsg struct {
	Actions []SendFromAction `json:"actions"`
}

func (v BatchSendFromMsg) MarshalTinyJSON(out *jwriter.Writer) {
	out.RawString(`{"actions":[`)
	for i, action := range v.Actions {
		if i > 0 {
			out.RawByte(',')
		}
		action.MarshalTinyJSON(out)
	}
	out.RawString(`]}`)
}

func (v *BatchSendFromMsg) UnmarshalTinyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "actions":
			in.Delim('[')
			v.Actions = nil
			for !in.IsDelim(']') {
				var action SendFromAction
				action.UnmarshalTinyJSON(in)
				v.Actions = append(v.Actions, action)
				in.WantComma()
			}
			in.Delim(']')
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}

// AllowanceMsg adjusts a spender's allowance on the token ledger.
type AllowanceMsg struct {
	Spender string `json:"spender"`
	Amount  Amount `json:"amount"`
}

func (v AllowanceMsg) MarshalTinyJSON(out *jwriter.Writer) {
	out.RawString(`{"spender":`)
	out.String(v.Spender)
	out.RawString(`,"amount":`)
	v.Amount.MarshalTinyJSON(out)
	out.RawByte('}')
}

func (v *AllowanceMsg) UnmarshalTinyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "spender":
			v.Spender = in.String()
		case "amount":
			v.Amount.UnmarshalTinyJSON(in)
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}

// RegisterReceiveMsg subscribes this contract to the token's transfer hook.
type RegisterReceiveMsg struct {
	CodeHash string `json:"code_hash"`
}

func (v RegisterReceiveMsg) MarshalTinyJSON(out *jwriter.Writer) {
	out.RawString(`{"code_hash":`)
	out.String(v.CodeHash)
	out.RawByte('}')
}

// SetViewingKeyMsg registers the key this contract uses for balance reads.
type SetViewingKeyMsg struct {
	Key string `json:"key"`
}

func (v SetViewingKeyMsg) MarshalTinyJSON(out *jwriter.Writer) {
	out.RawString(`{"key":`)
	out.String(v.Key)
	out.RawByte('}')
}

// ReceiveNotice is the token hook the ledger fires on inbound transfers.
// Sender is the tx initiator, From the debited account; Memo stays unused
// and is kept as an extension point.
type ReceiveNotice struct {
	Sender string  `json:"sender"`
	From   string  `json:"from"`
	Amount Amount  `json:"amount"`
	Memo   *string `json:"memo,omitempty"`
}

func (v ReceiveNotice) MarshalTinyJSON(out *jwriter.Writer) {
	out.RawString(`{"sender":`)
	out.String(v.Sender)
	out.RawString(`,"from":`)
	out.String(v.From)
	out.RawString(`,"amount":`)
	v.Amount.MarshalTinyJSON(out)
	if v.Memo != nil {
		out.RawString(`,"memo":`)
		out.String(*v.Memo)
	}
	out.RawByte('}')
}

func (v *ReceiveNotice) UnmarshalTinyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "sender":
			v.Sender = in.String()
		case "from":
			v.From = in.String()
		case "amount":
			v.Amount.UnmarshalTinyJSON(in)
		case "memo":
			memo := in.String()
			v.Memo = &memo
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}

// ValidateAdminQuery asks the admin-authority contract whether a user holds
// the named permission.
type ValidateAdminQuery struct {
	User       string `json:"user"`
	Permission string `json:"permission"`
}

func (v ValidateAdminQuery) MarshalTinyJSON(out *jwriter.Writer) {
	out.RawString(`{"user":`)
	out.String(v.User)
	out.RawString(`,"permission":`)
	out.String(v.Permission)
	out.RawByte('}')
}

// ValidateAdminResponse denies on any non-empty error message.
type ValidateAdminResponse struct {
	ErrorMsg string `json:"error_msg"`
}

func (v *ValidateAdminResponse) UnmarshalTinyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "error_msg":
			v.ErrorMsg = in.String()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}
