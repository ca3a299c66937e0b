package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// RetellClient registers web calls against the Retell API.
type RetellClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewRetellClient(apiKey, baseURL string) *RetellClient {
	return &RetellClient{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

type registerWebCallRequest struct {
	InterviewerID string            `json:"interviewer_id"`
	DynamicData   map[string]string `json:"dynamic_data"`
}

// RegisterCallResponse carries the credential the browser SDK needs to
// join the call.
type RegisterCallResponse struct {
	AccessToken string `json:"access_token"`
	CallID      string `json:"call_id"`
}

// RegisterWebCall requests a call-access credential for a browser call.
// dynamicData is injected into the agent prompt (the joined question
// list lives under the "questions" key).
func (c *RetellClient) RegisterWebCall(ctx context.Context, interviewerID string, dynamicData map[string]string) (RegisterCallResponse, error) {
	reqBody := registerWebCallRequest{
		InterviewerID: interviewerID,
		DynamicData:   dynamicData,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return RegisterCallResponse{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v2/create-web-call", bytes.NewBuffer(payload))
	if err != nil {
		return RegisterCallResponse{}, err
	}
	req.Header.Add("Authorization", "Bearer "+c.apiKey)
	req.Header.Add("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return RegisterCallResponse{}, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return RegisterCallResponse{}, err
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return RegisterCallResponse{}, fmt.Errorf("register call failed with status %d: %s", res.StatusCode, body)
	}

	var response RegisterCallResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return RegisterCallResponse{}, fmt.Errorf("decoding register call response: %w", err)
	}
	if response.AccessToken == "" || response.CallID == "" {
		return RegisterCallResponse{}, fmt.Errorf("register call response missing access token or call id")
	}

	return response, nil
}
