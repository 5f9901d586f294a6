package main

import (
	"encoding/json"

	"treasury_suite/sdk"
)

func toJSON(v any, ctx string) string {
	raw, err := json.Marshal(v)
	if err != nil {
		sdk.Abort(ctx + ": encode failed")
	}
	return string(raw)
}

func fromJSON(data string, v any, ctx string) {
	if err := json.Unmarshal([]byte(data), v); err != nil {
		sdk.Abort(ctx + ": invalid payload")
	}
}

func result(s string) *string {
	return &s
}
