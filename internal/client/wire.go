package client

import (
	"encoding/json"

	"github.com/forkful/forkful-client/internal/types"
)

// wireAuthor is a user reference on a recipe. The server sometimes sends a
// bare id string and sometimes a populated object; flexAuthor accepts both.
type wireAuthor struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

type flexAuthor struct {
	wireAuthor
}

func (a *flexAuthor) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &a.ID)
	}
	return json.Unmarshal(data, &a.wireAuthor)
}

type wireIngredient struct {
	Amount string `json:"amount"`
	Name   string `json:"name"`
}

// wireRecipe is the server's representation of a recipe
type wireRecipe struct {
	ID            string           `json:"_id"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	Image         *string          `json:"image"`
	PrepTime      int              `json:"prepTime"`
	CookTime      int              `json:"cookTime"`
	Servings      int              `json:"servings"`
	Ingredients   []wireIngredient `json:"ingredients"`
	Instructions  []string         `json:"instructions"`
	UserID        *flexAuthor      `json:"userId"`
	Author        *flexAuthor      `json:"author"`
	Tags          []string         `json:"tags"`
	LikesCount    int              `json:"likesCount"`
	CommentsCount int              `json:"commentsCount"`
}

// creatorName resolves the display name of a recipe's author. Precedence:
// author.name, author.username, userId.name, userId.username, "Unknown".
func creatorName(w wireRecipe) string {
	if w.Author != nil {
		if w.Author.Name != "" {
			return w.Author.Name
		}
		if w.Author.Username != "" {
			return w.Author.Username
		}
	}
	if w.UserID != nil {
		if w.UserID.Name != "" {
			return w.UserID.Name
		}
		if w.UserID.Username != "" {
			return w.UserID.Username
		}
	}
	return "Unknown"
}

// toRecipe normalizes a wire recipe to the domain shape, supplying defaults
// for every optional field
func toRecipe(w wireRecipe) types.Recipe {
	r := types.Recipe{
		ID:            w.ID,
		Title:         w.Title,
		Description:   w.Description,
		Creator:       types.Creator{Name: creatorName(w)},
		PrepMinutes:   w.PrepTime,
		CookMinutes:   w.CookTime,
		Servings:      w.Servings,
		Likes:         w.LikesCount,
		Tags:          w.Tags,
		CommentsCount: w.CommentsCount,
		Ingredients:   make([]types.Ingredient, 0, len(w.Ingredients)),
		Steps:         w.Instructions,
	}
	if w.Image != nil {
		r.ImageURL = *w.Image
	}
	if r.Servings == 0 {
		r.Servings = 1
	}
	for _, i := range w.Ingredients {
		r.Ingredients = append(r.Ingredients, types.Ingredient{Amount: i.Amount, Name: i.Name})
	}
	if r.Steps == nil {
		r.Steps = []string{}
	}
	return r
}

func toRecipes(ws []wireRecipe) []types.Recipe {
	recipes := make([]types.Recipe, 0, len(ws))
	for _, w := range ws {
		recipes = append(recipes, toRecipe(w))
	}
	return recipes
}

// recipePayload is the client-to-server field-name translation used by
// create and update
type recipePayload struct {
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	Image        string           `json:"image,omitempty"`
	PrepTime     int              `json:"prepTime"`
	CookTime     int              `json:"cookTime"`
	Servings     int              `json:"servings"`
	Ingredients  []wireIngredient `json:"ingredients"`
	Instructions []string         `json:"instructions"`
}

// recipePatchPayload carries an edit. Every field is omitempty so a partial
// patch leaves the server-side recipe's other fields untouched.
type recipePatchPayload struct {
	Title        string           `json:"title,omitempty"`
	Description  string           `json:"description,omitempty"`
	Image        string           `json:"image,omitempty"`
	PrepTime     int              `json:"prepTime,omitempty"`
	CookTime     int              `json:"cookTime,omitempty"`
	Servings     int              `json:"servings,omitempty"`
	Ingredients  []wireIngredient `json:"ingredients,omitempty"`
	Instructions []string         `json:"instructions,omitempty"`
}

func toPatchPayload(patch types.RecipePatch) recipePatchPayload {
	p := recipePatchPayload{
		Title:        patch.Title,
		Description:  patch.Description,
		Image:        patch.ImageURL,
		PrepTime:     patch.PrepMinutes,
		CookTime:     patch.CookMinutes,
		Servings:     patch.Servings,
		Instructions: patch.Steps,
	}
	for _, i := range patch.Ingredients {
		p.Ingredients = append(p.Ingredients, wireIngredient{Amount: i.Amount, Name: i.Name})
	}
	return p
}

func toPayload(title, description, image string, prep, cook, servings int, ingredients []types.Ingredient, steps []string) recipePayload {
	p := recipePayload{
		Title:        title,
		Description:  description,
		Image:        image,
		PrepTime:     prep,
		CookTime:     cook,
		Servings:     servings,
		Ingredients:  make([]wireIngredient, 0, len(ingredients)),
		Instructions: steps,
	}
	for _, i := range ingredients {
		p.Ingredients = append(p.Ingredients, wireIngredient{Amount: i.Amount, Name: i.Name})
	}
	return p
}
