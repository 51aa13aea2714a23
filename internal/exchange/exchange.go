package exchange

import (
	"encoding/json"
	"net/http"

	"github.com/codematch/marketplace/pkg/clients"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// FallbackRate is used whenever the rate source cannot be reached or
// returns something unusable. EUR to RON, reviewed quarterly.
var FallbackRate = decimal.NewFromFloat(4.9750)

type Response struct {
	From string  `json:"from"`
	To   string  `json:"to"`
	Rate float64 `json:"rate"`
}

type Source struct {
	url    string
	client clients.HTTPClientI
}

func New(url string, client clients.HTTPClientI) *Source {
	return &Source{
		url:    url,
		client: client,
	}
}

// Rate returns the current exchange rate between two currencies. It never
// fails: any transport or decoding problem yields FallbackRate.
func (s *Source) Rate(from, to string) decimal.Decimal {
	if from == to {
		return decimal.NewFromInt(1)
	}

	url := s.url + "/api/rates?from=" + from + "&to=" + to
	statusCode, respBody, _, err := s.client.Get(url, nil)
	if err != nil {
		zap.L().Warn("rate source unreachable, using fallback", zap.Error(err))
		return FallbackRate
	}
	if statusCode != http.StatusOK {
		zap.L().Warn("rate source returned unexpected status, using fallback", zap.Int("status", statusCode))
		return FallbackRate
	}

	var response Response
	if err := json.Unmarshal(respBody, &response); err != nil {
		zap.L().Warn("rate source returned malformed body, using fallback", zap.Error(err))
		return FallbackRate
	}
	if response.Rate <= 0 {
		zap.L().Warn("rate source returned non-positive rate, using fallback", zap.Float64("rate", response.Rate))
		return FallbackRate
	}

	return decimal.NewFromFloat(response.Rate)
}
