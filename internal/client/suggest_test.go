package client

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forkful/forkful-client/internal/testhelpers"
)

func TestSuggestRecipes(t *testing.T) {
	server := testhelpers.NewServer()
	defer server.Close()

	suggester := NewSuggester(server.URL, 5*time.Second, time.Millisecond)

	recipes, err := suggester.SuggestRecipes(context.Background(), "mushroom risotto")
	require.NoError(t, err)
	require.Len(t, recipes, 2)

	for _, r := range recipes {
		assert.NotEmpty(t, r.ID)
		assert.NotZero(t, r.Servings)
		assert.Equal(t, "Chef AI", r.Creator.Name)
	}
	assert.Contains(t, recipes[0].Title, "mushroom risotto")
}

func TestSuggestRecipesEmptyInputRejected(t *testing.T) {
	server := testhelpers.NewServer()
	defer server.Close()

	suggester := NewSuggester(server.URL, 5*time.Second, time.Millisecond)

	_, err := suggester.SuggestRecipes(context.Background(), "")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.StatusCode)
}

func TestSuggestRecipesRateLimited(t *testing.T) {
	server := testhelpers.NewServer()
	defer server.Close()

	interval := 50 * time.Millisecond
	suggester := NewSuggester(server.URL, 5*time.Second, interval)

	start := time.Now()
	_, err := suggester.SuggestRecipes(context.Background(), "soup")
	require.NoError(t, err)
	_, err = suggester.SuggestRecipes(context.Background(), "soup")
	require.NoError(t, err)

	assert.GreaterOrEqual(t, time.Since(start), interval, "second call waits out the interval")
}

func TestSuggestRecipesCancelledWhileWaiting(t *testing.T) {
	server := testhelpers.NewServer()
	defer server.Close()

	suggester := NewSuggester(server.URL, 5*time.Second, time.Hour)

	_, err := suggester.SuggestRecipes(context.Background(), "soup")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = suggester.SuggestRecipes(ctx, "soup")
	assert.Error(t, err)
}
