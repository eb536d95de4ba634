package domain

import (
	"encoding/json"
	"math"
	"strconv"
)

// Price is a closing price. NaN marks a value the feed did not provide and is
// encoded as JSON null.
type Price float64

func (p Price) MarshalJSON() ([]byte, error) {
	f := float64(p)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, f, 'f', -1, 64), nil
}

type PricePoint struct {
	Date  string `json:"date"`
	Close Price  `json:"close"`
}

type NewsArticle struct {
	Title  string          `json:"title"`
	Source json.RawMessage `json:"source"` // provider value, passed through as-is
	Link   string          `json:"link"`
	Date   string          `json:"date"`
}

type NewsResult struct {
	Stock   string        `json:"stock"`
	Results []NewsArticle `json:"results"`
}

type SummaryReply struct {
	Reply string `json:"reply"`
}
