package types

// Creator identifies the author of a recipe as shown on cards and detail views
type Creator struct {
	Name string `json:"name"`
}

// Ingredient is a single recipe ingredient, e.g. {Amount: "2 cups", Name: "Flour"}
type Ingredient struct {
	Amount string `json:"amount"`
	Name   string `json:"name"`
}

// Recipe represents a recipe in its client-facing shape
type Recipe struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl,omitempty"`

	Creator Creator `json:"creator"`

	PrepMinutes int `json:"prepMinutes"`
	CookMinutes int `json:"cookMinutes"`
	Servings    int `json:"servings"`

	Likes         int      `json:"likes"`
	Tags          []string `json:"tags,omitempty"`
	CommentsCount int      `json:"commentsCount,omitempty"`

	Ingredients []Ingredient `json:"ingredients"`
	Steps       []string     `json:"steps"`
}

// NewRecipeInput is the payload for creating a recipe
type NewRecipeInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl,omitempty"`

	PrepMinutes int `json:"prepMinutes"`
	CookMinutes int `json:"cookMinutes"`
	Servings    int `json:"servings"`

	Ingredients []Ingredient `json:"ingredients"`
	Steps       []string     `json:"steps"`
}

// RecipePatch carries the fields of an edit. The server treats the payload
// as a partial update, so omitted fields are left untouched.
type RecipePatch struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	ImageURL    string       `json:"imageUrl,omitempty"`
	PrepMinutes int          `json:"prepMinutes,omitempty"`
	CookMinutes int          `json:"cookMinutes,omitempty"`
	Servings    int          `json:"servings,omitempty"`
	Ingredients []Ingredient `json:"ingredients,omitempty"`
	Steps       []string     `json:"steps,omitempty"`
}
