package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"treasury_suite/sdk"
)

func TestAmountTravelsAsString(t *testing.T) {
	out := MarshalMsg(AmountResponse{Amount: 18446744073709551615})
	assert.Equal(t, `{"amount":"18446744073709551615"}`, out)

	var resp AmountResponse
	UnmarshalMsg(`{"amount":"250"}`, &resp)
	assert.Equal(t, Amount(250), resp.Amount)
}

func TestAmountRejectsJSONNumbers(t *testing.T) {
	var resp AmountResponse
	expectAbort(t, "invalid payload", func() {
		UnmarshalMsg(`{"amount":250}`, &resp)
	})
}

func TestAssetQueryOmitsEmptyHolder(t *testing.T) {
	assert.Equal(t, `{"asset":"contract:token"}`,
		MarshalMsg(AssetQuery{Asset: "contract:token"}))
	assert.Equal(t, `{"asset":"contract:token","holder":"contract:self"}`,
		MarshalMsg(AssetQuery{Asset: "contract:token", Holder: "contract:self"}))
}

func TestReceiveNoticeDecode(t *testing.T) {
	var n ReceiveNotice
	UnmarshalMsg(`{"sender":"hive:alice","from":"hive:alice","amount":"42","memo":null}`, &n)
	assert.Equal(t, "hive:alice", n.From)
	assert.Equal(t, Amount(42), n.Amount)
	assert.Nil(t, n.Memo)

	// unknown fields skip cleanly
	UnmarshalMsg(`{"sender":"hive:bob","from":"hive:bob","amount":"7","msg":{"nested":true}}`, &n)
	assert.Equal(t, Amount(7), n.Amount)
}

func TestUnmarshalResponseNilAborts(t *testing.T) {
	var resp AmountResponse
	expectAbort(t, "adapter balance: empty response", func() {
		UnmarshalResponse(nil, &resp, "adapter balance")
	})
}

func TestTokenReadsDefaultToZero(t *testing.T) {
	sdk.MockReset()
	assert.Equal(t, Amount(0), TokenBalance("contract:token", "contract:self"))
	sdk.MockSetRead("contract:token", "bal:contract:self", "1500")
	assert.Equal(t, Amount(1500), TokenBalance("contract:token", "contract:self"))

	sdk.MockSetRead("contract:token", "alw:contract:a:contract:b", "77")
	assert.Equal(t, Amount(77), TokenAllowance("contract:token", "contract:a", "contract:b"))
}

func TestBatchSendSkipsEmpty(t *testing.T) {
	sdk.MockReset()
	BatchSend("contract:token", nil)
	BatchSendFrom("contract:token", nil)
	assert.Empty(t, sdk.MockCalls())

	BatchSend("contract:token", []SendAction{{To: "contract:a", Amount: 5}})
	calls := sdk.MockCalls()
	assert.Len(t, calls, 1)
	assert.Equal(t, "batch_send", calls[0].Method)
	assert.Equal(t, `{"actions":[{"to":"contract:a","amount":"5"}]}`, calls[0].Payload)
}
