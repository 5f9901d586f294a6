package core

import (
	"strconv"

	"treasury_suite/sdk"
)

// Amount is a raw token quantity in the token's smallest unit.
type Amount uint64

// OneHundredPercent is the scale for portions and tolerances: a Portion-kind
// amount of 1e18 means 100% of the managed total.
const OneHundredPercent uint64 = 1_000_000_000_000_000_000

// String renders the amount as plain decimal digits for payloads and events.
func (a Amount) String() string {
	return strconv.FormatUint(uint64(a), 10)
}

// ParseAmount reads decimal digits back into an Amount.
func ParseAmount(s string) (Amount, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	return Amount(v), err
}

// MustParseAmount aborts the call on malformed digits, used on payload edges.
func MustParseAmount(s string) Amount {
	v, err := ParseAmount(s)
	if err != nil {
		sdk.Abort("invalid amount: " + s)
	}
	return v
}

// Amounts are decimal strings in every JSON form so 64-bit values survive
// hosts that read numbers as float64.

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.String() + `"`), nil
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	v, err := ParseAmount(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Balance pairs a token contract id with an amount held in it.
type Balance struct {
	Token  string `json:"token"`
	Amount Amount `json:"amount"`
}

// Kind discriminates fixed-quantity targets from percentage-of-total targets.
// The same dual-type structure applies to treasury allowances and manager
// allocations.
type Kind uint8

const (
	KindAmount  Kind = 0
	KindPortion Kind = 1
)

func (k Kind) String() string {
	if k == KindPortion {
		return "portion"
	}
	return "amount"
}

// ParseKind maps the payload string onto the enum, aborting on junk.
func ParseKind(s string) Kind {
	switch s {
	case "amount":
		return KindAmount
	case "portion":
		return KindPortion
	}
	sdk.Abort("invalid kind: " + s)
	return KindAmount
}

// CycleKind selects the refresh schedule of an allowance entry.
type CycleKind uint8

const (
	// CycleOnce refreshes exactly one time, while LastRefresh still holds
	// the zero sentinel, then the entry goes stale.
	CycleOnce CycleKind = 0
	// CycleConstant refreshes whenever at least Seconds have elapsed.
	CycleConstant CycleKind = 1
)

type Cycle struct {
	Kind    CycleKind `json:"kind"`
	Seconds uint64    `json:"seconds,omitempty"`
}

// RefreshEpoch is the LastRefresh sentinel forcing an immediate refresh.
const RefreshEpoch int64 = 0

// Exceeded reports whether an entry refreshed at last is due again at now.
func (c Cycle) Exceeded(now, last int64) bool {
	switch c.Kind {
	case CycleOnce:
		return last == RefreshEpoch
	case CycleConstant:
		return now-last >= int64(c.Seconds)
	}
	return false
}

// String is the payload form of the cycle: "once" or the period in seconds.
func (c Cycle) String() string {
	if c.Kind == CycleOnce {
		return "once"
	}
	return strconv.FormatUint(c.Seconds, 10)
}

// ParseCycle reads the payload form back. Periods must be positive.
func ParseCycle(s string) Cycle {
	if s == "once" {
		return Cycle{Kind: CycleOnce}
	}
	secs, err := strconv.ParseUint(s, 10, 64)
	if err != nil || secs == 0 {
		sdk.Abort("invalid cycle: " + s)
	}
	return Cycle{Kind: CycleConstant, Seconds: secs}
}

// RunLevel is the treasury-wide operating mode gating update.
type RunLevel uint8

const (
	RunLevelNormal      RunLevel = 0
	RunLevelMigrating   RunLevel = 1
	RunLevelDeactivated RunLevel = 2
)

func (r RunLevel) String() string {
	switch r {
	case RunLevelMigrating:
		return "migrating"
	case RunLevelDeactivated:
		return "deactivated"
	default:
		return "normal"
	}
}

// ParseRunLevel maps the payload string onto the enum, aborting on junk.
func ParseRunLevel(s string) RunLevel {
	switch s {
	case "normal":
		return RunLevelNormal
	case "migrating":
		return RunLevelMigrating
	case "deactivated":
		return RunLevelDeactivated
	}
	sdk.Abort("invalid run level: " + s)
	return RunLevelNormal
}

// HoldingStatus is the soft-delete flag on a holder record.
type HoldingStatus uint8

const (
	StatusActive HoldingStatus = 0
	StatusClosed HoldingStatus = 1
)

func (s HoldingStatus) String() string {
	if s == StatusClosed {
		return "closed"
	}
	return "active"
}

// Asset is a registered fungible token. Identity is the token contract id;
// records are never deleted, only the metadata fields may be refreshed.
type Asset struct {
	TokenContract string `json:"token_contract"`
	CodeHash      string `json:"code_hash"`
	Symbol        string `json:"symbol"`
	Decimals      uint8  `json:"decimals"`
}
