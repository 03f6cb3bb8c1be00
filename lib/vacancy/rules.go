package vacancyhandler

import (
	"attachment-hub-backend/lib/utils/helpers"
	"fmt"
	"time"
)

// CheckDeadline enforces base <= deadline <= base+maxDays on calendar dates.
// An empty result means the deadline is acceptable.
func CheckDeadline(base, deadline time.Time, maxDays int) string {
	base = helpers.DateOnly(base)
	deadline = helpers.DateOnly(deadline)
	if deadline.Before(base) {
		return "deadline: cannot be earlier than the posting date"
	}
	if deadline.After(base.AddDate(0, 0, maxDays)) {
		return fmt.Sprintf("deadline: must be within %d days of the posting date", maxDays)
	}
	return ""
}
