package ledger

import (
	"fmt"
	"math/rand"
	"time"
)

// Order number prefixes, one per ledger
const (
	PrefixInbound   = "RK"
	PrefixOutbound  = "CK"
	PrefixReturn    = "TH"
	PrefixWholesale = "WS"
)

// GenerateOrderNo builds a document number from a ledger prefix and a
// second-resolution timestamp, e.g. RK20240115093042.
func GenerateOrderNo(prefix string, at time.Time) string {
	return prefix + at.Format("20060102150405")
}

// GenerateWholesaleOrderNo builds a wholesale document number with a
// date prefix and a random 4-digit suffix, e.g. WS202401150042.
// Wholesale orders can be entered in bursts, so the second-resolution
// format used by the other ledgers would collide.
func GenerateWholesaleOrderNo(at time.Time) string {
	return fmt.Sprintf("%s%s%04d", PrefixWholesale, at.Format("20060102"), rand.Intn(10000))
}
