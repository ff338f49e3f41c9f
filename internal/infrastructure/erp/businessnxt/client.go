// Package businessnxt implements the ERP connector against the Visma
// Business NXT GraphQL API.
package businessnxt

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/atelier/backend/internal/domain/integration"
	"github.com/atelier/backend/internal/domain/partner"
	"github.com/atelier/backend/internal/domain/trade"
	"github.com/atelier/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// tokenExpiryMargin is subtracted from the reported token lifetime so
// a token is never used right at its expiry boundary
const tokenExpiryMargin = 30 * time.Second

// Client talks to the Business NXT GraphQL API using OAuth2
// client-credentials authentication. Access tokens are cached until
// shortly before expiry.
type Client struct {
	cfg        config.BusinessNXTConfig
	httpClient *http.Client
	suppliers  partner.SupplierRepository
	logger     *zap.Logger

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

// NewClient creates a new Business NXT client
func NewClient(cfg config.BusinessNXTConfig, suppliers partner.SupplierRepository, logger *zap.Logger) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		suppliers:  suppliers,
		logger:     logger,
	}
}

// Enabled reports whether the connector is configured and active
func (c *Client) Enabled() bool {
	return c.cfg.Enabled
}

// SubmitPurchaseOrder pushes a purchase order to Business NXT and
// returns the external order id
func (c *Client) SubmitPurchaseOrder(ctx context.Context, order *trade.PurchaseOrder) (string, error) {
	if !c.Enabled() {
		return "", fmt.Errorf("business nxt integration is disabled")
	}

	supplier, err := c.suppliers.FindByID(ctx, order.SupplierID)
	if err != nil {
		return "", fmt.Errorf("failed to resolve supplier %s: %w", order.SupplierID, err)
	}

	items := make([]map[string]any, 0, len(order.Items))
	for i := range order.Items {
		item := &order.Items[i]
		items = append(items, map[string]any{
			"productNumber": item.SKU,
			"quantity":      item.Quantity,
			"unitPrice":     item.PurchasePrice.InexactFloat64(),
		})
	}

	input := map[string]any{
		"orderNumber":    order.OrderNumber,
		"orderDate":      order.OrderDate.Format("2006-01-02"),
		"supplierNumber": supplier.SupplierNumber,
		"notes":          order.Notes,
		"items":          items,
	}
	if order.ExpectedDelivery != nil {
		input["expectedDeliveryDate"] = order.ExpectedDelivery.Format("2006-01-02")
	}

	const mutation = `
		mutation CreatePurchaseOrder($input: CreatePurchaseOrderInput!) {
			createPurchaseOrder(input: $input) {
				purchaseOrder {
					id
					orderNumber
					status
				}
			}
		}`

	var result struct {
		CreatePurchaseOrder struct {
			PurchaseOrder struct {
				ID          string `json:"id"`
				OrderNumber string `json:"orderNumber"`
				Status      string `json:"status"`
			} `json:"purchaseOrder"`
		} `json:"createPurchaseOrder"`
	}

	if err := c.graphql(ctx, mutation, map[string]any{"input": input}, &result); err != nil {
		return "", err
	}

	externalRef := result.CreatePurchaseOrder.PurchaseOrder.ID
	c.logger.Info("purchase order submitted to business nxt",
		zap.String("order_number", order.OrderNumber),
		zap.String("external_ref", externalRef),
	)
	return externalRef, nil
}

// GetOrderStatus fetches the current status of a previously submitted order
func (c *Client) GetOrderStatus(ctx context.Context, externalRef string) (*integration.OrderStatus, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("business nxt integration is disabled")
	}

	const query = `
		query GetPurchaseOrder($id: ID!) {
			purchaseOrder(id: $id) {
				id
				status
				updatedAt
			}
		}`

	var result struct {
		PurchaseOrder struct {
			ID        string `json:"id"`
			Status    string `json:"status"`
			UpdatedAt string `json:"updatedAt"`
		} `json:"purchaseOrder"`
	}

	if err := c.graphql(ctx, query, map[string]any{"id": externalRef}, &result); err != nil {
		return nil, err
	}

	status := &integration.OrderStatus{
		ExternalRef: externalRef,
		Status:      result.PurchaseOrder.Status,
	}
	if ts, err := time.Parse(time.RFC3339, result.PurchaseOrder.UpdatedAt); err == nil {
		status.UpdatedAt = ts
	}
	return status, nil
}

// TestConnection verifies credentials and API reachability by running
// an introspection query
func (c *Client) TestConnection(ctx context.Context) error {
	const query = `
		query {
			__schema {
				types {
					name
				}
			}
		}`

	var result struct {
		Schema struct {
			Types []struct {
				Name string `json:"name"`
			} `json:"types"`
		} `json:"__schema"`
	}

	if err := c.graphql(ctx, query, nil, &result); err != nil {
		return fmt.Errorf("failed to connect to business nxt: %w", err)
	}
	return nil
}

// getAccessToken returns a cached token or fetches a fresh one via the
// client-credentials grant
func (c *Client) getAccessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiry) {
		return c.accessToken, nil
	}

	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {c.cfg.ClientID},
		"client_secret": {c.cfg.ClientSecret},
		"scope":         {c.cfg.Scope},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token request failed with status %d", resp.StatusCode)
	}

	var token struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int64  `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}
	if token.AccessToken == "" {
		return "", fmt.Errorf("token response contained no access token")
	}

	c.accessToken = token.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(token.ExpiresIn)*time.Second - tokenExpiryMargin)
	return c.accessToken, nil
}

// graphqlError is a single error entry in a GraphQL response
type graphqlError struct {
	Message string `json:"message"`
}

// graphql executes a query against the API and decodes the data
// payload into out
func (c *Client) graphql(ctx context.Context, query string, variables map[string]any, out any) error {
	token, err := c.getAccessToken(ctx)
	if err != nil {
		return err
	}

	body, err := json.Marshal(map[string]any{
		"query":     query,
		"variables": variables,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.APIURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Tenant-ID", c.cfg.TenantID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("api request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("api request failed with status %d", resp.StatusCode)
	}

	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Errors []graphqlError  `json:"errors"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("failed to decode api response: %w", err)
	}
	if len(envelope.Errors) > 0 {
		return fmt.Errorf("business nxt: %s", envelope.Errors[0].Message)
	}

	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("failed to decode api response data: %w", err)
		}
	}
	return nil
}

// Ensure Client implements the ERP connector port
var _ integration.Connector = (*Client)(nil)
