package entities

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	orderCodePrefix = "ORD-"
	orderCodeDay    = "20060102"
)

// OrderCodePrefix returns "ORD-<YYYYMMDD>-" for the UTC date of day.
func OrderCodePrefix(day time.Time) string {
	return orderCodePrefix + day.UTC().Format(orderCodeDay) + "-"
}

func FormatOrderCode(day time.Time, seq int) string {
	return fmt.Sprintf("%s%04d", OrderCodePrefix(day), seq)
}

// ParseOrderCodeSeq extracts the sequence number from the last dash-separated segment.
func ParseOrderCodeSeq(code string) (int, error) {
	i := strings.LastIndexByte(code, '-')
	if i < 0 || !strings.HasPrefix(code, orderCodePrefix) {
		return 0, fmt.Errorf("malformed order code %q", code)
	}
	seg := code[i+1:]
	if len(seg) < 4 {
		return 0, fmt.Errorf("malformed order code %q", code)
	}
	seq, err := strconv.Atoi(seg)
	if err != nil || seq <= 0 {
		return 0, fmt.Errorf("malformed order code %q", code)
	}
	return seq, nil
}
