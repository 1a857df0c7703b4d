package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// SettlementGateway implements ports.SettlementGateway against the
// external settlement service's HTTP API. Both calls are synchronous and
// all-or-nothing: a non-200 response means no external value moved.
type SettlementGateway struct {
	baseURL    string
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewSettlementGateway creates a new SettlementGateway.
func NewSettlementGateway(baseURL string, httpClient HTTPClient, log zerolog.Logger) *SettlementGateway {
	return &SettlementGateway{
		baseURL:    baseURL,
		httpClient: httpClient,
		log:        log,
	}
}

type collectRequest struct {
	Account   string `json:"account"`
	Amount    int64  `json:"amount"`
	Reference string `json:"reference"`
}

type payoutRequest struct {
	Account string `json:"account"`
	Amount  int64  `json:"amount"`
}

// CollectDeposit confirms with the settlement service that the externally
// supplied matching value for a deposit has arrived.
func (g *SettlementGateway) CollectDeposit(ctx context.Context, from uuid.UUID, amount int64, reference string) error {
	body := collectRequest{Account: from.String(), Amount: amount, Reference: reference}
	if err := g.post(ctx, "/v1/collect", body); err != nil {
		return fmt.Errorf("collect deposit: %w", err)
	}
	g.log.Debug().
		Str("account", from.String()).
		Int64("amount", amount).
		Str("reference", reference).
		Msg("external deposit collected")
	return nil
}

// Payout transfers settlement value out to the account's owner.
func (g *SettlementGateway) Payout(ctx context.Context, to uuid.UUID, amount int64) error {
	body := payoutRequest{Account: to.String(), Amount: amount}
	if err := g.post(ctx, "/v1/payout", body); err != nil {
		return fmt.Errorf("payout: %w", err)
	}
	g.log.Debug().
		Str("account", to.String()).
		Int64("amount", amount).
		Msg("external payout sent")
	return nil
}

func (g *SettlementGateway) post(ctx context.Context, path string, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("settlement service returned %d: %s", resp.StatusCode, msg)
	}
	return nil
}
