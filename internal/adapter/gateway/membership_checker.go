package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// MembershipChecker implements ports.MembershipChecker against the
// membership registry's HTTP API: whether an account holds a non-zero
// membership-token balance.
type MembershipChecker struct {
	baseURL    string
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewMembershipChecker creates a new MembershipChecker.
func NewMembershipChecker(baseURL string, httpClient HTTPClient, log zerolog.Logger) *MembershipChecker {
	return &MembershipChecker{
		baseURL:    baseURL,
		httpClient: httpClient,
		log:        log,
	}
}

type membershipResponse struct {
	Member bool `json:"member"`
}

// HasMembership asks the registry whether the account is a member.
func (c *MembershipChecker) HasMembership(ctx context.Context, account uuid.UUID) (bool, error) {
	url := fmt.Sprintf("%s/v1/members/%s", c.baseURL, account)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("membership lookup: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	switch resp.StatusCode {
	case http.StatusOK:
		var out membershipResponse
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			return false, fmt.Errorf("decode membership response: %w", err)
		}
		return out.Member, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("membership registry returned %d", resp.StatusCode)
	}
}
