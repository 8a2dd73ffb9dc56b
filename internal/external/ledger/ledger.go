package ledger

//go:generate go run go.uber.org/mock/mockgen -source=./ledger.go -destination=./mocks/ledger_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/config"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/infras/otel"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/shared/constant"
)

// Service deducts the platform fee from a worker's ledger when a booking
// completes. Failures here are logged and swallowed by the caller: a fee
// that could not be deducted never rolls back a finished job.
type Service interface {
	DeductPlatformFee(ctx context.Context, workerID, bookingID string, amount int64) error
}

type feeRequest struct {
	WorkerID  string `json:"worker_id"`
	BookingID string `json:"booking_id"`
	Amount    int64  `json:"amount"`
	Reason    string `json:"reason"`
}

type httpClient struct {
	baseURL string
	client  *http.Client
	otel    otel.Otel
}

func New(cfg *config.Config, otl otel.Otel) Service {
	return &httpClient{
		baseURL: cfg.External.Ledger.BaseURL,
		client: &http.Client{
			Timeout: time.Duration(cfg.External.Ledger.TimeoutSeconds) * time.Second,
		},
		otel: otl,
	}
}

func (c *httpClient) DeductPlatformFee(ctx context.Context, workerID, bookingID string, amount int64) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".ledger.DeductPlatformFee")
	defer scope.End()
	defer scope.TraceIfError(err)

	payload, err := json.Marshal(feeRequest{
		WorkerID:  workerID,
		BookingID: bookingID,
		Amount:    amount,
		Reason:    "platform_fee",
	})
	if err != nil {
		return fmt.Errorf("failed to marshal fee request: %w", err)
	}

	endpoint := c.baseURL + "/v1/transactions"

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build fee request: %w", err)
	}

	request.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	resp, err := c.client.Do(request)
	if err != nil {
		log.Error().Err(err).Str("workerId", workerID).Str("bookingId", bookingID).Msg("ledger service unreachable")

		return fmt.Errorf("failed to call ledger service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("ledger service returned status %d", resp.StatusCode)
	}

	return nil
}
