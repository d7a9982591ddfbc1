package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/calebms7/shepherd-backend/internal/workflow"
)

// Client talks to an SMS gateway over HTTP.
type Client struct {
	accessToken string
	baseURL     string
	httpClient  *http.Client
}

func NewClient(baseURL, accessToken string) *Client {
	return &Client{
		accessToken: accessToken,
		baseURL:     baseURL,
		httpClient:  http.DefaultClient,
	}
}

type sendRequest struct {
	To   string `json:"to"`
	Body string `json:"body"`
}

type sendResponse struct {
	MessageID string `json:"message_id"`
	Error     *struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error,omitempty"`
}

func (c *Client) Send(ctx context.Context, msg workflow.Message) (string, error) {
	if msg.Channel != workflow.ChannelSMS {
		return "", fmt.Errorf("sms client cannot deliver %q messages", msg.Channel)
	}
	if c.accessToken == "" || c.baseURL == "" {
		log.Println("sms: gateway not configured")
		return "", fmt.Errorf("sms gateway not configured")
	}

	body, err := json.Marshal(sendRequest{To: msg.To, Body: msg.Body})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/messages", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("sms gateway returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var result sendResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", err
	}
	if result.Error != nil {
		return "", fmt.Errorf("sms gateway: %s (code %d)", result.Error.Message, result.Error.Code)
	}

	return result.MessageID, nil
}
