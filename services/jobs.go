package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/Aman-parjapati/Ai-interview-platform/models"
)

// JobsClient proxies searches to the external job-scraping API.
type JobsClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewJobsClient(baseURL string) *JobsClient {
	return &JobsClient{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

// Search fetches job listings for a position in a country/location.
func (c *JobsClient) Search(ctx context.Context, position, country, location string) ([]models.Job, error) {
	query := url.Values{}
	query.Set("position", position)
	query.Set("country", country)
	query.Set("location", location)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/jobs?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("job search failed with status %d", res.StatusCode)
	}

	var jobs []models.Job
	if err := json.Unmarshal(body, &jobs); err != nil {
		return nil, fmt.Errorf("decoding job search response: %w", err)
	}

	return jobs, nil
}
