// Package format renders values for display according to a user's locale
// preferences. All functions are pure; only datetime parsing elsewhere in
// the pipeline can fail.
package format

import (
	"time"

	"github.com/carebridge/healthcore/pkg/locale"
)

// Go layouts for the supported date format x time format grid.
const (
	layoutISO24   = "2006-01-02 15:04"
	layoutISO12   = "2006-01-02 03:04 PM"
	layoutUS24    = "01/02/2006 15:04"
	layoutUS12    = "01/02/2006 03:04 PM"
	layoutEU24    = "02/01/2006 15:04"
	layoutEU12    = "02/01/2006 03:04 PM"
	layoutJapan   = "2006年01月02日 15:04"
	layoutDateISO = "2006-01-02"
	layoutDateUS  = "01/02/2006"
	layoutDateEU  = "02/01/2006"
	layoutClock24 = "15:04"
	layoutClock12 = "03:04 PM"
)

// DateTime renders t in the locale timezone using one of the four supported
// templates. The Japan template is always 24-hour; an unrecognized date
// format falls back to the ISO template.
func DateTime(t time.Time, prefs locale.Preferences) string {
	t = inLocaleZone(t, prefs)

	twelveHour := prefs.TimeFormat == locale.TimeFormat12h
	switch prefs.DateFormat {
	case locale.DateFormatUS:
		if twelveHour {
			return t.Format(layoutUS12)
		}
		return t.Format(layoutUS24)
	case locale.DateFormatEU:
		if twelveHour {
			return t.Format(layoutEU12)
		}
		return t.Format(layoutEU24)
	case locale.DateFormatJapan:
		return t.Format(layoutJapan)
	default:
		if twelveHour {
			return t.Format(layoutISO12)
		}
		return t.Format(layoutISO24)
	}
}

// Date renders the date portion of t using the locale date format.
func Date(t time.Time, prefs locale.Preferences) string {
	switch prefs.DateFormat {
	case locale.DateFormatUS:
		return t.Format(layoutDateUS)
	case locale.DateFormatEU:
		return t.Format(layoutDateEU)
	default:
		return t.Format(layoutDateISO)
	}
}

// Clock renders the time portion of t using the locale clock format.
func Clock(t time.Time, prefs locale.Preferences) string {
	if prefs.TimeFormat == locale.TimeFormat12h {
		return t.Format(layoutClock12)
	}
	return t.Format(layoutClock24)
}

// inLocaleZone converts t into the locale timezone. UTC locales keep the
// value untouched, and an unloadable zone leaves t as-is rather than fail.
func inLocaleZone(t time.Time, prefs locale.Preferences) time.Time {
	if prefs.Timezone == locale.TimezoneUTC {
		return t
	}
	if loc, err := time.LoadLocation(string(prefs.Timezone)); err == nil {
		return t.In(loc)
	}
	return t
}
