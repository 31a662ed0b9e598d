package jobs

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

var employmentTypes = map[string]string{
	"FULLTIME":   "Full-time",
	"PARTTIME":   "Part-time",
	"CONTRACTOR": "Contract",
	"INTERN":     "Internship",
}

func FormatEmploymentType(t string) string {
	if label, ok := employmentTypes[t]; ok {
		return label
	}
	if t != "" {
		return t
	}
	return "Full-time"
}

// FormatSalary renders a range like "$120k - $160k". Zero or nil bounds count
// as absent.
func FormatSalary(min, max *float64, currency string) string {
	lo, hi := amount(min), amount(max)
	if lo == 0 && hi == 0 {
		return "Salary not disclosed"
	}
	sym := currencySymbol(currency)
	switch {
	case lo != 0 && hi != 0:
		return sym + shortAmount(lo) + " - " + sym + shortAmount(hi)
	case lo != 0:
		return sym + shortAmount(lo) + "+"
	default:
		return "Up to " + sym + shortAmount(hi)
	}
}

func amount(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func currencySymbol(currency string) string {
	switch currency {
	case "", "USD":
		return "$"
	case "INR":
		return "₹"
	default:
		return currency
	}
}

func shortAmount(n float64) string {
	if n >= 1000 {
		return strconv.FormatFloat(math.Floor(n/1000+0.5), 'f', -1, 64) + "k"
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// FormatPosted describes how long ago a listing was posted. Unknown or
// unparsable dates read as "Recently".
func FormatPosted(postedAt string, now time.Time) string {
	if postedAt == "" {
		return "Recently"
	}
	t, err := time.Parse(time.RFC3339, postedAt)
	if err != nil {
		return "Recently"
	}
	days := int(math.Floor(now.Sub(t).Hours() / 24))
	if days < 0 {
		days = 0
	}
	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	case days < 30:
		return fmt.Sprintf("%d weeks ago", days/7)
	default:
		return fmt.Sprintf("%d months ago", days/30)
	}
}

func formatLocation(city, state, country string) string {
	if city != "" && state != "" {
		return city + ", " + state
	}
	if country != "" {
		return country
	}
	return "Remote"
}
