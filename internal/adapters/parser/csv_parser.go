package parser

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/cp25sy5-modjot/market-proxy-service/internal/domain"
)

// Column positions in the stooq daily layout: Date,Open,High,Low,Close,Volume
const (
	dateCol  = 0
	closeCol = 4
)

type CSVParser struct{}

func NewCSVParser() *CSVParser { return &CSVParser{} }

var leadingFloatRe = regexp.MustCompile(`^[+-]?(?:Infinity|(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)`)

// Parse drops the header line and maps every remaining non-empty line to a
// price point. Short lines are kept: the missing close becomes NaN.
func (p *CSVParser) Parse(csv string) []domain.PricePoint {
	lines := nonEmptyLines(strings.TrimSpace(csv))
	if len(lines) <= 1 {
		return []domain.PricePoint{}
	}

	out := make([]domain.PricePoint, 0, len(lines)-1)
	for _, l := range lines[1:] {
		fields := strings.Split(l, ",")
		pt := domain.PricePoint{
			Date:  fields[dateCol],
			Close: domain.Price(math.NaN()),
		}
		if len(fields) > closeCol {
			pt.Close = domain.Price(parseFloat(fields[closeCol]))
		}
		out = append(out, pt)
	}
	return out
}

func nonEmptyLines(s string) []string {
	raw := strings.Split(s, "\n")
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		t := strings.TrimSuffix(r, "\r")
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// lenient parse: reads the longest numeric prefix after leading whitespace,
// NaN when there is none ("100.5\r" -> 100.5, "n/a" -> NaN)
func parseFloat(s string) float64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	m := leadingFloatRe.FindString(s)
	if m == "" {
		return math.NaN()
	}
	switch m {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
