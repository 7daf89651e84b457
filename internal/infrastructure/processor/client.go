// Package processor is the HTTP binding for the external payment
// processor's checkout API.
package processor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/openpays/checkout-orchestrator/internal/application"
	"github.com/openpays/checkout-orchestrator/internal/config"
)

type HTTPProcessorClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewProcessorClient(cfg config.ProcessorConfig) application.ProcessorClient {
	return &HTTPProcessorClient{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

func (c *HTTPProcessorClient) PaymentMethods(ctx context.Context, req application.PaymentMethodsRequest) (*application.PaymentMethodsResponse, error) {
	u := fmt.Sprintf("%s/paymentMethods", c.baseURL)
	return sendRequest[application.PaymentMethodsRequest, application.PaymentMethodsResponse](c, ctx, u, &req, "")
}

func (c *HTTPProcessorClient) SubmitPayment(ctx context.Context, req application.PaymentRequest, idempotencyKey string) (*application.PaymentResponse, error) {
	u := fmt.Sprintf("%s/payments", c.baseURL)
	return sendRequest[application.PaymentRequest, application.PaymentResponse](c, ctx, u, &req, idempotencyKey)
}

func (c *HTTPProcessorClient) SubmitPaymentDetails(ctx context.Context, req application.PaymentDetailsRequest) (*application.PaymentDetailsResponse, error) {
	u := fmt.Sprintf("%s/payments/details", c.baseURL)
	return sendRequest[application.PaymentDetailsRequest, application.PaymentDetailsResponse](c, ctx, u, &req, "")
}

func (c *HTTPProcessorClient) RefundPayment(ctx context.Context, paymentPspReference string, req application.RefundRequest) (*application.RefundResponse, error) {
	u := fmt.Sprintf("%s/payments/%s/refunds", c.baseURL, url.PathEscape(paymentPspReference))
	return sendRequest[application.RefundRequest, application.RefundResponse](c, ctx, u, &req, "")
}

func sendRequest[Req any, Resp any](c *HTTPProcessorClient, ctx context.Context, url string, reqBody *Req, idempotencyKey string) (*Resp, error) {
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("error marshalling json: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-API-Key", c.apiKey)

	if idempotencyKey != "" {
		httpReq.Header.Set("Idempotency-Key", idempotencyKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		var procErrResp processorErrorResponse
		if err := json.Unmarshal(body, &procErrResp); err != nil {
			return nil, fmt.Errorf("processor returned status %d: %s", resp.StatusCode, string(body))
		}
		return nil, &ProcessorError{
			Code:       procErrResp.ErrorCode,
			Message:    procErrResp.Message,
			StatusCode: resp.StatusCode,
		}
	}

	var procResp Resp
	if err := json.NewDecoder(resp.Body).Decode(&procResp); err != nil {
		return nil, fmt.Errorf("error decoding json response: %w", err)
	}

	return &procResp, nil
}
