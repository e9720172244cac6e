package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultRecipeAPIURL = "https://api.spoonacular.com"

// RecipeAPI is the contract for the external recipe data source. Responses
// are the upstream JSON, forwarded to the caller unmodified.
type RecipeAPI interface {
	GetRandom(ctx context.Context, count int) (json.RawMessage, error)
	GetByID(ctx context.Context, id int) (json.RawMessage, error)
	Search(ctx context.Context, query string) (json.RawMessage, error)
}

// SpoonacularService calls the Spoonacular recipe API with an API key.
type SpoonacularService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewSpoonacularService initializes the client. An empty baseURL falls back
// to the public API endpoint; tests point it at a local server.
func NewSpoonacularService(apiKey, baseURL string) *SpoonacularService {
	if baseURL == "" {
		baseURL = defaultRecipeAPIURL
	}
	return &SpoonacularService{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// GetRandom fetches count random recipes.
func (s *SpoonacularService) GetRandom(ctx context.Context, count int) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("number", strconv.Itoa(count))
	return s.get(ctx, "/recipes/random", params)
}

// GetByID fetches the detail document for a single recipe.
func (s *SpoonacularService) GetByID(ctx context.Context, id int) (json.RawMessage, error) {
	return s.get(ctx, fmt.Sprintf("/recipes/%d/information", id), url.Values{})
}

// Search runs a free-text recipe search. The query is forwarded verbatim as
// a query parameter.
func (s *SpoonacularService) Search(ctx context.Context, query string) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("query", query)
	return s.get(ctx, "/recipes/complexSearch", params)
}

func (s *SpoonacularService) get(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	params.Set("apiKey", s.apiKey)
	u := s.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create recipe API request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call recipe API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read recipe API response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("recipe API error %d: %s", resp.StatusCode, string(body))
	}

	return json.RawMessage(body), nil
}
