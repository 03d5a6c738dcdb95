package config

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/cptaffe/tintrc/style"
)

var errNoNumber = errors.New("not a number")

// values splits a composite directive value into at most three sub-tokens
// separated by spaces and/or commas. Tokens past the third are dropped.
type values []string

func splitValues(v string) values {
	f := strings.FieldsFunc(v, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(f) > 3 {
		f = f[:3]
	}
	return values(f)
}

// at returns sub-token i and whether it was present.
func (vs values) at(i int) (string, bool) {
	if i < len(vs) {
		return vs[i], true
	}
	return "", false
}

var (
	intPrefix   = regexp.MustCompile(`^[+-]?\d+`)
	floatPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
)

// parseInt decodes the leading integer of s, ignoring any suffix such as
// "%" or "px". A string without a leading integer decodes to 0 with an
// error.
func parseInt(s string) (int, error) {
	m := intPrefix.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0, errNoNumber
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, err
	}
	return n, nil
}

// parseFloat is parseInt for decimal numbers.
func parseFloat(s string) (float64, error) {
	m := floatPrefix.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0, errNoNumber
	}
	return strconv.ParseFloat(m, 64)
}

// parseColor decodes "color[ alpha]" where alpha is an integer percentage.
// defAlpha applies when the alpha sub-token is absent.
func parseColor(v string, defAlpha float64) (style.Color, error) {
	vs := splitValues(v)
	s, _ := vs.at(0)
	c, err := style.ParseColor(s)
	if err != nil {
		return style.Color{}, err
	}
	c.Alpha = defAlpha
	if a, ok := vs.at(1); ok {
		n, err := parseInt(a)
		if err != nil {
			return style.Color{}, err
		}
		c.Alpha = float64(n) / 100
	}
	return c, nil
}

// parseSize decodes one component of a size, returning whether it carried a
// "%" suffix.
func parseSize(s string) (int, bool, error) {
	pct := strings.Contains(s, "%")
	n, err := parseInt(strings.Replace(s, "%", "", 1))
	return n, pct, err
}

func clamp(f, lo, hi float64) float64 {
	return max(lo, min(hi, f))
}
