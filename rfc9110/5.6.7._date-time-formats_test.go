package rfc9110

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sunday = time.Date(1994, time.November, 6, 8, 49, 37, 0, time.UTC)

func TestHttpDateIMFFixdate(t *testing.T) {
	date, err := HttpDate("Sun, 06 Nov 1994 08:49:37 GMT")
	require.NoError(t, err)
	assert.True(t, sunday.Equal(date), "parsed %s", date)
	assert.Equal(t, time.UTC, date.Location())
}

func TestHttpDateRFC850NumericMonth(t *testing.T) {
	date, err := HttpDate("Sun, 06-11-94 08:49:37 GMT")
	require.NoError(t, err)
	assert.True(t, sunday.Equal(date), "parsed %s", date)
}

func TestHttpDateAsctimeTab(t *testing.T) {
	date, err := HttpDate("Sun 11\t06 08:49:37 1994")
	require.NoError(t, err)
	assert.True(t, sunday.Equal(date), "parsed %s", date)
}

func TestHttpDateLenientNames(t *testing.T) {
	for _, dateStr := range []string{
		// names are matched without regard to case
		"sun, 06 nov 1994 08:49:37 GMT",
		"SUN, 06 NOV 1994 08:49:37 GMT",
		// the weekday is not checked against the date
		"Mon, 06 Nov 1994 08:49:37 GMT",
		"Fri, 06-11-94 08:49:37 GMT",
		"Tue 11\t06 08:49:37 1994",
	} {
		date, err := HttpDate(dateStr)
		if assert.NoError(t, err, "date %q", dateStr) {
			assert.True(t, sunday.Equal(date), "date %q parsed %s", dateStr, date)
		}
	}
}

func TestHttpDateRejected(t *testing.T) {
	for _, dateStr := range []string{
		"",
		"Sunday, 06-Nov-94 08:49:37 GMT",
		"Sun Nov  6 08:49:37 1994",
		"Sun, 06 Nov 1994 08:49:37 gmt",
		"Sun, 06 Nov 1994 08:49:37 +0000",
		"Sun, 06 Nov 1994 08:49:37.123 GMT",
		"Sun, 06-11-94 08:49:37,5 GMT",
		"1994-11-06 08:49:37 +0000",
		" Sun, 06 Nov 1994 08:49:37 GMT",
		"Sun, 06 Nov 1994 08:49:37 GMT trailing",
		"Sun,  06 Nov 1994 08:49:37 GMT",
		"Sun, 06 Nov 1994 08:49:37  GMT",
		"Sun, 31 Nov 1994 08:49:37 GMT",
	} {
		_, err := HttpDate(dateStr)
		assert.ErrorIs(t, err, ErrInvalidDate, "date %q", dateStr)
	}
}

func TestToHttpDate(t *testing.T) {
	local := time.FixedZone("EET", 2*60*60)
	assert.Equal(t, "Sun, 06 Nov 1994 08:49:37 GMT", ToHttpDate(sunday.In(local)))
}

func TestHttpDateRoundTripTruncatesToSeconds(t *testing.T) {
	now := time.Now()
	date, err := HttpDate(ToHttpDate(now))
	require.NoError(t, err)
	assert.Equal(t, now.Unix(), date.Unix())
	assert.Zero(t, date.Nanosecond())
}
