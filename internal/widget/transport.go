package widget

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/soulnest/soulnest/pkg/logger"
)

// ErrNullResponse is returned for a body that is the JSON literal null.
var ErrNullResponse = errors.New("response body is null")

// ChatRequest is the body sent for every exchange. ConversationID is
// serialized as null when absent.
type ChatRequest struct {
	Message        string  `json:"message"`
	ConversationID *string `json:"conversation_id"`
	UserID         string  `json:"user_id"`
}

// ChatResponse holds the fields the widget reads from a response. Message is
// empty when the response carried no usable reply.
type ChatResponse struct {
	Message        string
	ConversationID string
}

// Transport carries one request to the server and returns its decoded
// response.
type Transport interface {
	Exchange(ctx context.Context, req ChatRequest) (*ChatResponse, error)
}

// DecodeResponse turns a response body into a ChatResponse. Any JSON value
// decodes. Only a non-empty string "message" counts as a reply and only a
// string "conversation_id" counts as an identifier.
func DecodeResponse(body []byte) (*ChatResponse, error) {
	var raw interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if raw == nil {
		return nil, ErrNullResponse
	}

	resp := &ChatResponse{}
	obj, ok := raw.(map[string]interface{})
	if !ok {
		return resp, nil
	}
	if msg, ok := obj["message"].(string); ok {
		resp.Message = msg
	}
	if id, ok := obj["conversation_id"].(string); ok {
		resp.ConversationID = id
	}
	return resp, nil
}

// HTTPTransport posts each request to a fixed URL. The status code is not
// inspected: error bodies that decode are treated like any other response.
type HTTPTransport struct {
	url    string
	client *http.Client
}

func NewHTTPTransport(url string) *HTTPTransport {
	return NewHTTPTransportWithClient(url, &http.Client{})
}

func NewHTTPTransportWithClient(url string, client *http.Client) *HTTPTransport {
	return &HTTPTransport{url: url, client: client}
}

func (t *HTTPTransport) URL() string {
	return t.url
}

func (t *HTTPTransport) Exchange(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	jsonData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, t.url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	logger.Debug(logger.WIDGET, "Chat endpoint answered %d with %d bytes", resp.StatusCode, len(body))

	return DecodeResponse(body)
}
