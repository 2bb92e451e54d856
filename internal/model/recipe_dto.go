package model

// ------------------------------------------------------------

// CreateRecipePayload is the body of POST /api/recipes.
//
// Absent ingredients/instructions are stored as empty lists and an absent
// isFavorite as false.
type CreateRecipePayload struct {
	Name         string   `json:"name" validate:"required,max=200"`
	Description  string   `json:"description" validate:"required"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	ImageURL     *string  `json:"imageUrl"`
	IsFavorite   bool     `json:"isFavorite"`
}

func (p *CreateRecipePayload) Validate() error {
	return validate.Struct(p)
}

// ToRecipe builds the entity to insert.
func (p *CreateRecipePayload) ToRecipe() *Recipe {
	return &Recipe{
		Name:         p.Name,
		Description:  p.Description,
		Ingredients:  nonNil(p.Ingredients),
		Instructions: nonNil(p.Instructions),
		ImageURL:     p.ImageURL,
		IsFavorite:   p.IsFavorite,
	}
}

// ------------------------------------------------------------

// GetRecipesPayload has no input; GET /api/recipes and
// GET /api/recipes/favorites take none.
type GetRecipesPayload struct{}

func (p *GetRecipesPayload) Validate() error {
	return nil
}

// ------------------------------------------------------------

// GetRecipeByIDPayload binds the {id} path segment.
type GetRecipeByIDPayload struct {
	ID int64 `param:"id"`
}

func (p *GetRecipeByIDPayload) Validate() error {
	return validate.Struct(p)
}

// ------------------------------------------------------------

// ToggleFavoritePayload binds the {id} path segment of
// PATCH /api/recipes/{id}/favorite.
type ToggleFavoritePayload struct {
	ID int64 `param:"id"`
}

func (p *ToggleFavoritePayload) Validate() error {
	return validate.Struct(p)
}

// ------------------------------------------------------------

// SearchRecipesPayload binds the optional query filters of
// GET /api/recipes/search. Empty values are treated as absent.
type SearchRecipesPayload struct {
	Name       string `query:"name"`
	Ingredient string `query:"ingredient"`
}

func (p *SearchRecipesPayload) Validate() error {
	return validate.Struct(p)
}

func nonNil(list []string) StringList {
	if list == nil {
		return StringList{}
	}
	return list
}
