package core

import (
	"encoding/json"
	"time"

	"treasury_suite/sdk"
)

// Append-only audit log of fund movements, bucketed per asset and day.
// Records are only ever appended; nothing in the suite mutates or prunes
// them.

const (
	MetricReceive       = "receive"
	MetricSend          = "send"
	MetricUnbond        = "unbond"
	MetricClaim         = "claim"
	MetricAllowance     = "allowance"
	MetricRealizeGains  = "realize_gains"
	MetricRealizeLosses = "realize_losses"
	MetricMigration     = "migration"
)

type MetricsRecord struct {
	Action    string `json:"action"`
	Context   string `json:"context"`
	Timestamp int64  `json:"timestamp"`
	Token     string `json:"token"`
	Amount    Amount `json:"amount"`
	User      string `json:"user"`
}

func metricsKey(token, date string) string {
	return "m:" + token + ":" + date
}

// DayBucket maps a unix timestamp to its UTC day key.
func DayBucket(ts int64) string {
	return time.Unix(ts, 0).UTC().Format("2006-01-02")
}

// AppendMetric records one fund movement under the current block's day.
func AppendMetric(token, action, context string, amount Amount, user string) {
	now := NowUnix()
	key := metricsKey(token, DayBucket(now))
	records := loadMetricsKey(key)
	records = append(records, MetricsRecord{
		Action:    action,
		Context:   context,
		Timestamp: now,
		Token:     token,
		Amount:    amount,
		User:      user,
	})
	b, err := json.Marshal(records)
	if err != nil {
		sdk.Abort("failed to marshal metrics")
	}
	sdk.StateSetObject(key, string(b))
}

// LoadMetrics returns the day's records for an asset; empty date means the
// current block's day.
func LoadMetrics(token, date string) []MetricsRecord {
	if date == "" {
		date = DayBucket(NowUnix())
	}
	return loadMetricsKey(metricsKey(token, date))
}

func loadMetricsKey(key string) []MetricsRecord {
	ptr := sdk.StateGetObject(key)
	if ptr == nil || *ptr == "" {
		return []MetricsRecord{}
	}
	var records []MetricsRecord
	if err := json.Unmarshal([]byte(*ptr), &records); err != nil {
		return []MetricsRecord{}
	}
	return records
}
