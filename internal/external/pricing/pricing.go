package pricing

//go:generate go run go.uber.org/mock/mockgen -source=./pricing.go -destination=./mocks/pricing_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/config"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/infras/otel"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/shared/constant"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/shared/failure"
)

// Quote is the price the pricing service computed for one booking at
// creation time. It is stored on the booking as an immutable snapshot.
type Quote struct {
	BasePrice  int64 `json:"base_price"`
	Discount   int64 `json:"discount"`
	FinalPrice int64 `json:"final_price"`
}

// Service quotes a final price for a service and customer. Pricing rules
// (VIP discounts included) live entirely in the pricing collaborator; this
// core only snapshots the result.
type Service interface {
	Quote(ctx context.Context, serviceID, customerID string) (Quote, error)
}

type httpClient struct {
	baseURL string
	client  *http.Client
	otel    otel.Otel
}

func New(cfg *config.Config, otl otel.Otel) Service {
	return &httpClient{
		baseURL: cfg.External.Pricing.BaseURL,
		client: &http.Client{
			Timeout: time.Duration(cfg.External.Pricing.TimeoutSeconds) * time.Second,
		},
		otel: otl,
	}
}

func (c *httpClient) Quote(ctx context.Context, serviceID, customerID string) (quote Quote, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".pricing.Quote")
	defer scope.End()
	defer scope.TraceIfError(err)

	endpoint := fmt.Sprintf("%s/v1/quotes?service_id=%s&customer_id=%s",
		c.baseURL, url.QueryEscape(serviceID), url.QueryEscape(customerID))

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return quote, fmt.Errorf("failed to build pricing request: %w", err)
	}

	resp, err := c.client.Do(request)
	if err != nil {
		log.Error().Err(err).Str("serviceId", serviceID).Msg("pricing service unreachable")

		return quote, fmt.Errorf("failed to call pricing service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return quote, failure.NotFound("service") //nolint:wrapcheck
	}

	if resp.StatusCode != http.StatusOK {
		return quote, fmt.Errorf("pricing service returned status %d", resp.StatusCode)
	}

	if err = json.NewDecoder(resp.Body).Decode(&quote); err != nil {
		return quote, fmt.Errorf("failed to decode pricing response: %w", err)
	}

	return quote, nil
}
