package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
	_ "time/tzdata"

	"commodities-etl/internal/application"
	"commodities-etl/internal/domain"
	"commodities-etl/internal/infrastructure/httpx"

	"github.com/guregu/null/v6"
)

const (
	yahooChartPath = "/v8/finance/chart/"
)

var (
	ErrUnexpectedShape = errors.New("yahoo: unexpected response shape")
	ErrUnknownSymbol   = errors.New("yahoo: unknown symbol")
)

type YahooChartProvider struct {
	BaseURL string
	Client  *httpx.Client
}

var _ application.QuoteSource = (*YahooChartProvider)(nil)

type chartResp struct {
	Chart struct {
		Result []chartResult `json:"result"`
		Error  *chartError   `json:"error"`
	} `json:"chart"`
}

type chartError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type chartResult struct {
	Meta struct {
		Symbol               string `json:"symbol"`
		ExchangeTimezoneName string `json:"exchangeTimezoneName"`
		GMTOffset            int    `json:"gmtoffset"`
	} `json:"meta"`
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote []struct {
			Close []null.Float `json:"close"`
		} `json:"quote"`
	} `json:"indicators"`
}

func (p *YahooChartProvider) History(ctx context.Context, symbol string, period domain.Period, interval domain.Interval) ([]domain.Quote, error) {
	if p.BaseURL == "" {
		return nil, errors.New("yahoo: missing base url")
	}
	u, err := url.Parse(p.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("yahoo: invalid base url: %w", err)
	}
	u = u.JoinPath(yahooChartPath, symbol)
	q := u.Query()
	q.Set("range", string(period))
	q.Set("interval", string(interval))
	q.Set("includePrePost", "false")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("yahoo: create request: %w", err)
	}

	client := p.Client
	if client == nil {
		client = &httpx.Client{}
	}
	var body chartResp
	if err := client.DoJSON(ctx, req, &body); err != nil {
		var serr *httpx.StatusError
		if errors.As(err, &serr) {
			if cerr := decodeChartError(serr.Body); cerr != nil {
				return nil, chartErr(symbol, cerr)
			}
		}
		return nil, fmt.Errorf("yahoo: %s: %w", symbol, err)
	}
	if body.Chart.Error != nil {
		return nil, chartErr(symbol, body.Chart.Error)
	}
	return toQuotes(symbol, interval, body)
}

func decodeChartError(raw []byte) *chartError {
	var body chartResp
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil
	}
	return body.Chart.Error
}

func chartErr(symbol string, e *chartError) error {
	if e.Code == "Not Found" {
		return fmt.Errorf("%w: %s: %s", ErrUnknownSymbol, symbol, e.Description)
	}
	return fmt.Errorf("yahoo: %s: %s %s", symbol, e.Code, e.Description)
}

func toQuotes(symbol string, interval domain.Interval, body chartResp) ([]domain.Quote, error) {
	if len(body.Chart.Result) == 0 {
		return nil, fmt.Errorf("%w: %s: empty chart.result", ErrUnexpectedShape, symbol)
	}
	res := body.Chart.Result[0]
	if len(res.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("%w: %s: missing indicators.quote", ErrUnexpectedShape, symbol)
	}
	closes := res.Indicators.Quote[0].Close
	if closes == nil && len(res.Timestamp) > 0 {
		return nil, fmt.Errorf("%w: %s: missing close series", ErrUnexpectedShape, symbol)
	}
	if len(closes) != len(res.Timestamp) {
		return nil, fmt.Errorf("%w: %s: %d closes for %d timestamps", ErrUnexpectedShape, symbol, len(closes), len(res.Timestamp))
	}

	loc := exchangeLocation(res.Meta.ExchangeTimezoneName, res.Meta.GMTOffset)
	out := make([]domain.Quote, 0, len(res.Timestamp))
	for i, ts := range res.Timestamp {
		out = append(out, domain.Quote{
			Date:   barDate(ts, loc, interval),
			Symbol: symbol,
			Close:  closes[i],
		})
	}
	return out, nil
}

func exchangeLocation(name string, gmtOffset int) *time.Location {
	if name != "" {
		if loc, err := time.LoadLocation(name); err == nil {
			return loc
		}
	}
	return time.FixedZone("", gmtOffset)
}

// barDate indexes daily-or-coarser bars by their session date at midnight
// exchange time; intraday bars keep their timestamp.
func barDate(ts int64, loc *time.Location, interval domain.Interval) time.Time {
	t := time.Unix(ts, 0).In(loc)
	if interval.Daily() {
		y, m, d := t.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, loc)
	}
	return t
}
