// Package timeutil keeps datetime representations consistent across the
// storage, API and display boundaries: storage uses UTC wall-clock strings,
// the API uses seconds-precision ISO 8601, and display strings follow the
// viewer's timezone and locale.
package timeutil

import (
	"fmt"
	"strings"
	"time"
)

const (
	// DBLayout is the UTC storage representation.
	DBLayout = "2006-01-02 15:04:05"
	// APILayout is the ISO 8601 representation exchanged with clients.
	APILayout = "2006-01-02T15:04:05"
	// DisplayLayout is the default display representation.
	DisplayLayout = "2006/01/02 15:04"

	displayLayoutJapanese = "2006年01月02日 15:04"

	// datetime-local inputs arrive without seconds.
	inputLayout = "2006-01-02T15:04"
)

// ToDB converts a datetime string in API or storage layout into the UTC
// storage representation. Values without timezone information are
// interpreted in the user's timezone; a trailing "Z" is stripped and the
// remainder treated the same way.
func ToDB(value, userTimezone string) (string, error) {
	t, err := parseFlexible(value, userTimezone)
	if err != nil {
		return "", err
	}
	return t.UTC().Format(DBLayout), nil
}

// ToAPI renders a time in the API representation.
func ToAPI(t time.Time) string {
	return t.Format(APILayout)
}

// ToAPIFromDB converts a storage-layout string into the API representation.
func ToAPIFromDB(value string) (string, error) {
	t, err := time.ParseInLocation(DBLayout, value, time.UTC)
	if err != nil {
		return "", fmt.Errorf("parse db datetime: %w", err)
	}
	return t.Format(APILayout), nil
}

// ToDisplay converts a storage-layout string into the viewer's timezone and
// renders it for display. Japanese locale tags (ja, ja-JP) use the
// era-style layout; everything else uses the slash layout.
func ToDisplay(value, userTimezone, localeTag string) (string, error) {
	t, err := time.ParseInLocation(DBLayout, value, time.UTC)
	if err != nil {
		return "", fmt.Errorf("parse db datetime: %w", err)
	}

	loc, err := time.LoadLocation(userTimezone)
	if err != nil {
		return "", fmt.Errorf("load timezone %q: %w", userTimezone, err)
	}

	local := t.In(loc)
	if strings.HasPrefix(localeTag, "ja") {
		return local.Format(displayLayoutJapanese), nil
	}
	return local.Format(DisplayLayout), nil
}

// NowLocal returns the current time in the user's timezone in API layout.
func NowLocal(userTimezone string) (string, error) {
	loc, err := time.LoadLocation(userTimezone)
	if err != nil {
		return "", fmt.Errorf("load timezone %q: %w", userTimezone, err)
	}
	return time.Now().In(loc).Format(APILayout), nil
}

// ParseUserInput normalizes a datetime-local input (with or without
// seconds) into the API representation, interpreting it in the user's
// timezone.
func ParseUserInput(input, userTimezone string) (string, error) {
	loc, err := time.LoadLocation(userTimezone)
	if err != nil {
		return "", fmt.Errorf("load timezone %q: %w", userTimezone, err)
	}

	t, err := time.ParseInLocation(APILayout, input, loc)
	if err != nil {
		t, err = time.ParseInLocation(inputLayout, input, loc)
	}
	if err != nil {
		return "", fmt.Errorf("parse user datetime: %w", err)
	}
	return t.Format(APILayout), nil
}

// parseFlexible accepts ISO layout with or without seconds, an optional
// trailing "Z", or the storage layout, interpreted in the user's timezone.
func parseFlexible(value, userTimezone string) (time.Time, error) {
	loc, err := time.LoadLocation(userTimezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("load timezone %q: %w", userTimezone, err)
	}

	if strings.Contains(value, "T") {
		v := strings.TrimSuffix(value, "Z")
		if strings.Count(v, ":") == 1 {
			v += ":00"
		}
		t, err := time.ParseInLocation(APILayout, v, loc)
		if err != nil {
			return time.Time{}, fmt.Errorf("parse iso datetime: %w", err)
		}
		return t, nil
	}

	t, err := time.ParseInLocation(DBLayout, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse datetime: %w", err)
	}
	return t, nil
}
