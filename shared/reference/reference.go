// Package reference generates human-meaningful booking references.
package reference

import (
	"fmt"
	"strings"

	"innkeep/shared/timezone"

	"github.com/google/uuid"
)

const (
	BookingPrefix = "BK"

	suffixLength = 8
	datePattern  = "20060102"
)

// New returns a date-stamped reference like BK-20260115-3F7A91C2. Collisions
// are negligible but the reference is not what keeps bookings safe; the
// per-room lock is. Uniqueness is still enforced by a DB constraint.
func New(prefix string) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:suffixLength]

	return fmt.Sprintf("%s-%s-%s", prefix, timezone.Now().Format(datePattern), suffix)
}
