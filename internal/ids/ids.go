// Package ids builds the human-readable references handed out for orders,
// payment transactions and refunds, e.g. TXN-20240131-9F2C41AB.
package ids

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	PrefixOrder       = "ORD"
	PrefixTransaction = "TXN"
	PrefixRefund      = "REF"
)

// Reference returns <prefix>-<yyyyMMdd in UTC>-<8 uppercase hex chars>.
func Reference(prefix string, now time.Time) string {
	return prefix + "-" + now.UTC().Format("20060102") + "-" + Short()
}

// Short returns the first 8 hex characters of a fresh random UUID, uppercased.
func Short() string {
	return strings.ToUpper(uuid.NewString()[:8])
}
