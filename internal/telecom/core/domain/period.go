package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// QuarterPeriod is a three-month reporting interval. The zero value is not a
// valid period; build one with NewQuarterPeriod or ParseQuarterLabel.
type QuarterPeriod struct {
	Year    int
	Quarter int
}

func NewQuarterPeriod(year, quarter int) (QuarterPeriod, error) {
	if quarter < 1 || quarter > 4 {
		return QuarterPeriod{}, fmt.Errorf("%w: %d", ErrInvalidQuarter, quarter)
	}
	if year <= 0 {
		return QuarterPeriod{}, fmt.Errorf("%w: year %d", ErrInvalidQuarter, year)
	}
	return QuarterPeriod{Year: year, Quarter: quarter}, nil
}

// ParseQuarterLabel parses the "Q{quarter}-{year}" form returned by Label.
func ParseQuarterLabel(s string) (QuarterPeriod, error) {
	s = strings.TrimSpace(s)
	if len(s) < 4 || (s[0] != 'Q' && s[0] != 'q') {
		return QuarterPeriod{}, fmt.Errorf("%w: label %q", ErrInvalidQuarter, s)
	}
	qStr, yStr, ok := strings.Cut(s[1:], "-")
	if !ok {
		return QuarterPeriod{}, fmt.Errorf("%w: label %q", ErrInvalidQuarter, s)
	}
	q, err := strconv.Atoi(qStr)
	if err != nil {
		return QuarterPeriod{}, fmt.Errorf("%w: label %q", ErrInvalidQuarter, s)
	}
	y, err := strconv.Atoi(yStr)
	if err != nil {
		return QuarterPeriod{}, fmt.Errorf("%w: label %q", ErrInvalidQuarter, s)
	}
	return NewQuarterPeriod(y, q)
}

func (p QuarterPeriod) Label() string {
	return fmt.Sprintf("Q%d-%d", p.Quarter, p.Year)
}

func (p QuarterPeriod) String() string {
	return p.Label()
}

// Compare returns -1, 0 or +1 ordering by (Year, Quarter).
func (p QuarterPeriod) Compare(o QuarterPeriod) int {
	switch {
	case p.Year < o.Year:
		return -1
	case p.Year > o.Year:
		return 1
	case p.Quarter < o.Quarter:
		return -1
	case p.Quarter > o.Quarter:
		return 1
	}
	return 0
}

func (p QuarterPeriod) Before(o QuarterPeriod) bool { return p.Compare(o) < 0 }

func (p QuarterPeriod) After(o QuarterPeriod) bool { return p.Compare(o) > 0 }

func (p QuarterPeriod) Next() QuarterPeriod {
	if p.Quarter == 4 {
		return QuarterPeriod{Year: p.Year + 1, Quarter: 1}
	}
	return QuarterPeriod{Year: p.Year, Quarter: p.Quarter + 1}
}
