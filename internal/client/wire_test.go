package client

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forkful/forkful-client/internal/types"
)

func strptr(s string) *string { return &s }

func TestCreatorNamePrecedence(t *testing.T) {
	author := func(name, username string) *flexAuthor {
		return &flexAuthor{wireAuthor{Name: name, Username: username}}
	}

	cases := []struct {
		name string
		wire wireRecipe
		want string
	}{
		{"author name wins", wireRecipe{Author: author("Alice", "alice99"), UserID: author("Bob", "bob1")}, "Alice"},
		{"author username next", wireRecipe{Author: author("", "alice99"), UserID: author("Bob", "bob1")}, "alice99"},
		{"userId name next", wireRecipe{UserID: author("Bob", "bob1")}, "Bob"},
		{"userId username next", wireRecipe{UserID: author("", "bob1")}, "bob1"},
		{"nothing populated", wireRecipe{}, "Unknown"},
		{"bare id only", wireRecipe{UserID: &flexAuthor{wireAuthor{ID: "u1"}}}, "Unknown"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, creatorName(tc.wire))
		})
	}
}

func TestToRecipeDefaults(t *testing.T) {
	r := toRecipe(wireRecipe{ID: "r1", Title: "Toast"})

	assert.Equal(t, "", r.ImageURL)
	assert.Equal(t, 1, r.Servings)
	assert.Equal(t, "Unknown", r.Creator.Name)
	assert.NotNil(t, r.Steps)
	assert.Empty(t, r.Steps)
	assert.NotNil(t, r.Ingredients)
}

func TestToRecipeFieldMapping(t *testing.T) {
	r := toRecipe(wireRecipe{
		ID:            "r1",
		Title:         "Pasta",
		Description:   "Quick dinner",
		Image:         strptr("https://img.example.com/p.jpg"),
		PrepTime:      10,
		CookTime:      20,
		Servings:      4,
		Ingredients:   []wireIngredient{{Amount: "200g", Name: "spaghetti"}},
		Instructions:  []string{"boil", "drain"},
		Author:        &flexAuthor{wireAuthor{Name: "Alice"}},
		LikesCount:    7,
		CommentsCount: 3,
	})

	assert.Equal(t, "https://img.example.com/p.jpg", r.ImageURL)
	assert.Equal(t, 10, r.PrepMinutes)
	assert.Equal(t, 20, r.CookMinutes)
	assert.Equal(t, 7, r.Likes)
	assert.Equal(t, 3, r.CommentsCount)
	assert.Equal(t, []string{"boil", "drain"}, r.Steps)
	require.Len(t, r.Ingredients, 1)
	assert.Equal(t, "spaghetti", r.Ingredients[0].Name)
}

func TestFlexAuthorAcceptsStringAndObject(t *testing.T) {
	var fromString flexAuthor
	require.NoError(t, json.Unmarshal([]byte(`"u1"`), &fromString))
	assert.Equal(t, "u1", fromString.ID)
	assert.Equal(t, "", fromString.Name)

	var fromObject flexAuthor
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"u2","name":"Bob","username":"bob1"}`), &fromObject))
	assert.Equal(t, "u2", fromObject.ID)
	assert.Equal(t, "Bob", fromObject.Name)
}

func TestToPatchPayloadOmitsUnsetFields(t *testing.T) {
	data, err := json.Marshal(toPatchPayload(types.RecipePatch{Title: "Pasta al dente"}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"Pasta al dente"}`, string(data))

	data, err = json.Marshal(toPatchPayload(types.RecipePatch{
		CookMinutes: 18,
		Ingredients: []types.Ingredient{{Amount: "200g", Name: "spaghetti"}},
	}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"cookTime":18,"ingredients":[{"amount":"200g","name":"spaghetti"}]}`, string(data))
}

func TestUnwrapComment(t *testing.T) {
	wrapped, err := unwrapComment(json.RawMessage(`{"comment":{"_id":"c1","text":"nice"}}`))
	require.NoError(t, err)
	assert.Equal(t, "c1", wrapped.ID)
	assert.Equal(t, "nice", wrapped.Text)

	bare, err := unwrapComment(json.RawMessage(`{"_id":"c2","text":"tasty"}`))
	require.NoError(t, err)
	assert.Equal(t, "c2", bare.ID)

	_, err = unwrapComment(json.RawMessage(`"not a comment"`))
	assert.Error(t, err)
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "boom", errorMessage([]byte(`{"error":"boom"}`)))
	assert.Equal(t, "gone", errorMessage([]byte(`{"message":"gone"}`)))
	assert.Equal(t, "plain text", errorMessage([]byte("plain text")))
	assert.Equal(t, "request failed", errorMessage([]byte("  ")))
}
