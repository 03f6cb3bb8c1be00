package jobapimodels

import (
	"attachment-hub-backend/models"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// SalaryDisplay renders a salary range. Zero bounds count as unset.
func SalaryDisplay(currency models.Currency, salaryMin, salaryMax *float64) string {
	hasMin := salaryMin != nil && *salaryMin != 0
	hasMax := salaryMax != nil && *salaryMax != 0
	switch {
	case hasMin && hasMax:
		return fmt.Sprintf("%s %s – %s", currency, Money(*salaryMin), Money(*salaryMax))
	case hasMin:
		return fmt.Sprintf("%s %s+", currency, Money(*salaryMin))
	case hasMax:
		return fmt.Sprintf("Up to %s %s", currency, Money(*salaryMax))
	}
	return "Salary undisclosed"
}

// Money groups thousands and keeps two decimals only for non-integer values.
func Money(value float64) string {
	if value == math.Trunc(value) {
		return groupThousands(strconv.FormatInt(int64(value), 10))
	}
	formatted := strconv.FormatFloat(value, 'f', 2, 64)
	intPart, fracPart, _ := strings.Cut(formatted, ".")
	return groupThousands(intPart) + "." + fracPart
}

func groupThousands(digits string) string {
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign = "-"
		digits = digits[1:]
	}
	if len(digits) <= 3 {
		return sign + digits
	}
	sb := strings.Builder{}
	head := len(digits) % 3
	if head > 0 {
		sb.WriteString(digits[:head])
	}
	for idx := head; idx < len(digits); idx += 3 {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(digits[idx : idx+3])
	}
	return sign + sb.String()
}
