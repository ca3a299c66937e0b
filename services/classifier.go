package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Aman-parjapati/Ai-interview-platform/models"
)

// ExpressionClassifier calls the external face-detection plus
// expression-classification service with a single JPEG frame.
type ExpressionClassifier struct {
	baseURL    string
	httpClient *http.Client
}

func NewExpressionClassifier(baseURL string) *ExpressionClassifier {
	return &ExpressionClassifier{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

type classifyResponse struct {
	FaceDetected bool               `json:"face_detected"`
	Expressions  models.Expressions `json:"expressions"`
}

// Classify runs the pipeline on one frame. ok is false when the service
// found no face in the frame.
func (c *ExpressionClassifier) Classify(ctx context.Context, frame []byte) (models.Expressions, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/classify", bytes.NewReader(frame))
	if err != nil {
		return models.Expressions{}, false, err
	}
	req.Header.Add("Content-Type", "image/jpeg")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return models.Expressions{}, false, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return models.Expressions{}, false, err
	}
	if res.StatusCode != http.StatusOK {
		return models.Expressions{}, false, fmt.Errorf("classifier returned status %d", res.StatusCode)
	}

	var decoded classifyResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return models.Expressions{}, false, fmt.Errorf("decoding classifier response: %w", err)
	}

	return decoded.Expressions, decoded.FaceDetected, nil
}
