package rfc9110

import (
	"regexp"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// §  5.6.7.  Date/Time Formats
// §
// §     Prior to 1995, there were three different formats commonly used by
// §     servers to communicate timestamps.  For compatibility with old
// §     implementations, all three are defined here.  The preferred format is
// §     a fixed-length and single-zone subset of the date and time
// §     specification used by the Internet Message Format [RFC5322].
// §
// §       HTTP-date    = IMF-fixdate / obs-date
// §
// §     An example of the preferred format is
// §
// §       Sun, 06 Nov 1994 08:49:37 GMT    ; IMF-fixdate
// §
// §     Examples of the two obsolete formats are
// §
// §       Sunday, 06-Nov-94 08:49:37 GMT   ; obsolete RFC 850 format
// §       Sun Nov  6 08:49:37 1994         ; ANSI C's asctime() format

// ErrInvalidDate is returned when a value matches none of the accepted
// date layouts.
var ErrInvalidDate = errors.New("invalid HTTP date")

const (
	imfFixdateLayout = "Mon, 02 Jan 2006 15:04:05 GMT"
	// The obsolete layouts take the month as a number, and the asctime
	// one has a tab between month and day. Existing clients depend on it.
	rfc850Layout  = "Mon, 02-01-06 15:04:05 GMT"
	asctimeLayout = "Mon 01\t02 15:04:05 2006"
)

var dateLayouts = []string{imfFixdateLayout, rfc850Layout, asctimeLayout}

// time.Parse silently accepts a fractional second after the seconds
// field and folds runs of spaces; none of the layouts allow either.
var fractionalSeconds = regexp.MustCompile(`\d:\d\d[.,]\d`)

func looseShape(dateStr string) bool {
	return strings.Contains(dateStr, "  ") || fractionalSeconds.MatchString(dateStr)
}

// HttpDate parses an HTTP-date.
// The layouts are tried in order and the first match wins. The result is
// in UTC with whole-second precision. Any mismatch yields ErrInvalidDate.
func HttpDate(dateStr string) (time.Time, error) {
	if looseShape(dateStr) {
		return time.Time{}, ErrInvalidDate
	}
	for _, layout := range dateLayouts {
		if date, err := time.Parse(layout, dateStr); err == nil {
			return date.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

// ToHttpDate formats t as an IMF-fixdate, e.g. for Last-Modified.
func ToHttpDate(t time.Time) string {
	return t.UTC().Format(imfFixdateLayout)
}
