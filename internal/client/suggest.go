package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/forkful/forkful-client/internal/types"
)

// Suggester calls the auxiliary AI-suggestion backend. Suggestion calls are
// expensive upstream, so they are rate limited client-side.
type Suggester struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

// NewSuggester creates a Suggester for the backend at baseURL, allowing at
// most one request per interval with a burst of one.
func NewSuggester(baseURL string, timeout, interval time.Duration) *Suggester {
	return &Suggester{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Every(interval), 1),
	}
}

// SuggestRecipes asks the backend for recipe suggestions matching a free-
// form description. Results already arrive in the client's domain shape;
// suggestions missing an id get a freshly generated one so they can live in
// the store alongside fetched recipes.
func (s *Suggester) SuggestRecipes(ctx context.Context, input string) ([]types.Recipe, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	body, err := json.Marshal(map[string]string{"input": input})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/api/chatgpt/suggest-recipes", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: errorMessage(data)}
	}

	var out struct {
		Recipes []types.Recipe `json:"recipes"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	for i := range out.Recipes {
		if out.Recipes[i].ID == "" {
			out.Recipes[i].ID = uuid.New().String()
		}
		if out.Recipes[i].Servings == 0 {
			out.Recipes[i].Servings = 1
		}
		if out.Recipes[i].Creator.Name == "" {
			out.Recipes[i].Creator.Name = "Unknown"
		}
	}
	return out.Recipes, nil
}
