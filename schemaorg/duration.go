package schemaorg

import (
	"context"
	"math"
	"time"

	"github.com/hako/durafmt"
	"github.com/sosodev/duration"

	"github.com/reoring/recipeld/codec"
)

var durationCodec = codec.ISO8601Duration()

// MaybeDuration is an optional ISO-8601 duration. Decoding never fails: a
// value that is not a string, or a string the grammar rejects ("PTnullH",
// "15 mins"), becomes an absent duration and the reason is not kept.
type MaybeDuration struct {
	d  duration.Duration
	ok bool
	// raw is the undecodable input, kept so re-encoding preserves the member.
	raw any
}

// SomeDuration wraps a parsed duration.
func SomeDuration(d duration.Duration) MaybeDuration { return MaybeDuration{d: d, ok: true} }

// DecodeMaybeDuration decodes a generic JSON value; it has no error return.
func DecodeMaybeDuration(v any) MaybeDuration {
	s, ok := asString(v)
	if !ok {
		return MaybeDuration{raw: v}
	}
	d, err := durationCodec.Decode(context.Background(), s)
	if err != nil {
		return MaybeDuration{raw: v}
	}
	return SomeDuration(d)
}

func (m MaybeDuration) Present() bool { return m.ok }

// Duration returns the parsed ISO-8601 duration.
func (m MaybeDuration) Duration() (duration.Duration, bool) { return m.d, m.ok }

// TimeDuration converts to a time.Duration. Durations with years or months
// have no fixed length and report false, as do negative durations and
// durations too long for time.Duration.
func (m MaybeDuration) TimeDuration() (time.Duration, bool) {
	if !m.ok || m.d.Negative || m.d.Years != 0 || m.d.Months != 0 {
		return 0, false
	}
	secs := ((m.d.Weeks*7+m.d.Days)*24+m.d.Hours)*3600 + m.d.Minutes*60 + m.d.Seconds
	if math.IsNaN(secs) || secs < 0 || secs*float64(time.Second) >= math.MaxInt64 {
		return 0, false
	}
	return m.d.ToTimeDuration(), true
}

// HumanReadable renders the duration as "1 day 2 hours 30 minutes", or reports
// false when no duration is present or TimeDuration reports false.
func (m MaybeDuration) HumanReadable() (string, bool) {
	td, ok := m.TimeDuration()
	if !ok {
		return "", false
	}
	return durafmt.Parse(td).String(), true
}

func (m MaybeDuration) String() string {
	if !m.ok {
		return ""
	}
	return m.d.String()
}

func (m MaybeDuration) wire() any {
	if !m.ok {
		return m.raw
	}
	return m.d.String()
}
