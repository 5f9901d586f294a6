package core

import (
	"github.com/CosmWasm/tinyjson"
	"github.com/CosmWasm/tinyjson/jlexer"
	"github.com/CosmWasm/tinyjson/jwriter"

	"treasury_suite/sdk"
)

// Payloads and cross-contract messages go through tinyjson; reflection-based
// encoding stays out of the wasm artifact. State blobs keep encoding/json
// (see the state files) since they never cross a contract boundary.

// MarshalMsg renders a message to its JSON wire form, aborting on failure.
func MarshalMsg(v tinyjson.Marshaler) string {
	data, err := tinyjson.Marshal(v)
	if err != nil {
		sdk.Abort("marshal failed: " + err.Error())
	}
	return string(data)
}

// UnmarshalMsg parses an inbound payload, aborting the call on junk input.
func UnmarshalMsg(data string, v tinyjson.Unmarshaler) {
	if err := tinyjson.Unmarshal([]byte(data), v); err != nil {
		sdk.Abort("invalid payload: " + err.Error())
	}
}

// UnmarshalResponse parses a cross-contract call result. A nil result means
// the callee had nothing to say where an answer was required.
func UnmarshalResponse(raw *string, v tinyjson.Unmarshaler, ctx string) {
	if raw == nil {
		sdk.Abort(ctx + ": empty response")
	}
	if err := tinyjson.Unmarshal([]byte(*raw), v); err != nil {
		sdk.Abort(ctx + ": " + err.Error())
	}
}

// Amounts travel as decimal strings so 64-bit values survive JSON number
// handling on every host.

func (a Amount) MarshalTinyJSON(out *jwriter.Writer) {
	out.String(a.String())
}

func (a *Amount) UnmarshalTinyJSON(in *jlexer.Lexer) {
	v, err := ParseAmount(in.String())
	if err != nil {
		in.AddError(err)
		return
	}
	*a = v
}
