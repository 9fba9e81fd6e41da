// Package codec holds wire <-> domain codecs for scalar schema.org values.
package codec

import (
	"context"
	"regexp"
	"strings"

	"github.com/sosodev/duration"

	"github.com/reoring/recipeld"
)

// ISO8601Duration returns a Codec that converts between ISO-8601 duration
// strings ("PT1H30M", "P1DT2H") and duration.Duration.
func ISO8601Duration() recipeld.Codec[string, duration.Duration] {
	return iso8601Codec{}
}

type iso8601Codec struct{}

// iso8601Token admits designators only in order, each with a number.
// duration.Parse alone also takes "P", "PT" and trailing numbers with no unit.
var (
	durationNum  = `\d+(?:\.\d+)?`
	iso8601Token = regexp.MustCompile(`^P(?:` + durationNum + `Y)?(?:` + durationNum + `M)?(?:` + durationNum + `W)?(?:` + durationNum + `D)?` +
		`(?:T(?:` + durationNum + `H)?(?:` + durationNum + `M)?(?:` + durationNum + `S)?)?$`)
)

func (c iso8601Codec) Decode(ctx context.Context, a string) (duration.Duration, error) {
	if a == "P" || strings.HasSuffix(a, "T") || !iso8601Token.MatchString(a) {
		return duration.Duration{}, recipeld.SingleIssue(recipeld.Root(), recipeld.CodeInvalidFormat, "invalid ISO-8601 duration")
	}
	d, err := duration.Parse(a)
	if err != nil {
		iss := recipeld.IssueAt(recipeld.Root(), recipeld.CodeInvalidFormat, "invalid ISO-8601 duration")
		iss.Cause = err
		return duration.Duration{}, recipeld.Issues{iss}
	}
	if err := validateDuration(*d); err != nil {
		return duration.Duration{}, err
	}
	return *d, nil
}

func (c iso8601Codec) Encode(ctx context.Context, b duration.Duration) (string, error) {
	if err := validateDuration(b); err != nil {
		return "", err
	}
	s := b.String()
	// re-validate the wire form
	if _, err := c.Decode(ctx, s); err != nil {
		return "", err
	}
	return s, nil
}

func validateDuration(d duration.Duration) error {
	if d.Negative {
		return recipeld.SingleIssue(recipeld.Root(), recipeld.CodeInvalidFormat, "negative durations are not accepted")
	}
	for _, f := range []float64{d.Years, d.Months, d.Weeks, d.Days, d.Hours, d.Minutes, d.Seconds} {
		if f < 0 || f != f {
			return recipeld.SingleIssue(recipeld.Root(), recipeld.CodeInvalidFormat, "duration components must be non-negative numbers")
		}
	}
	return nil
}
