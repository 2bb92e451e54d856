package model

// RecipeResponse is the wire shape of a recipe. Field order is the order the
// JSON object is written in.
type RecipeResponse struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	ImageURL     *string  `json:"image_url"`
	IsFavorite   bool     `json:"isFavorite"`
}

// NewRecipeResponse maps one entity onto its wire record.
func NewRecipeResponse(r *Recipe) *RecipeResponse {
	return &RecipeResponse{
		ID:           r.ID,
		Name:         r.Name,
		Description:  r.Description,
		Ingredients:  nonNil(r.Ingredients),
		Instructions: nonNil(r.Instructions),
		ImageURL:     r.ImageURL,
		IsFavorite:   r.IsFavorite,
	}
}

// NewRecipeResponses maps a collection. The result is never nil so an empty
// collection encodes as [].
func NewRecipeResponses(recipes []Recipe) []RecipeResponse {
	out := make([]RecipeResponse, 0, len(recipes))
	for i := range recipes {
		out = append(out, *NewRecipeResponse(&recipes[i]))
	}
	return out
}
