package model

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipeResponseFieldOrder(t *testing.T) {
	url := "https://example.com/pasta.jpg"
	r := &Recipe{
		ID:           1,
		Name:         "Pasta",
		Description:  "Simple pasta",
		Ingredients:  StringList{"pasta", "salt"},
		Instructions: StringList{"boil"},
		ImageURL:     &url,
		IsFavorite:   true,
	}

	body, err := json.Marshal(NewRecipeResponse(r))
	require.NoError(t, err)

	assert.Equal(t,
		`{"id":1,"name":"Pasta","description":"Simple pasta","ingredients":["pasta","salt"],`+
			`"instructions":["boil"],"image_url":"https://example.com/pasta.jpg","isFavorite":true}`,
		string(body))
}

func TestRecipeResponseNullsAndEmptyLists(t *testing.T) {
	body, err := json.Marshal(NewRecipeResponse(&Recipe{ID: 2, Name: "Toast", Description: "Bread"}))
	require.NoError(t, err)

	assert.Equal(t,
		`{"id":2,"name":"Toast","description":"Bread","ingredients":[],"instructions":[],"image_url":null,"isFavorite":false}`,
		string(body))
}

func TestNewRecipeResponses(t *testing.T) {
	body, err := json.Marshal(NewRecipeResponses(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(body))

	out := NewRecipeResponses([]Recipe{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}})
	require.Len(t, out, 2)
	assert.Equal(t, int64(1), out[0].ID)
	assert.Equal(t, int64(2), out[1].ID)
}

func TestCreateRecipePayloadValidate(t *testing.T) {
	tests := []struct {
		name    string
		payload CreateRecipePayload
		fields  []string
	}{
		{
			name:    "valid",
			payload: CreateRecipePayload{Name: "Pasta", Description: "Simple pasta"},
		},
		{
			name:    "missing name",
			payload: CreateRecipePayload{Description: "Simple pasta"},
			fields:  []string{"Name"},
		},
		{
			name:    "missing both",
			payload: CreateRecipePayload{},
			fields:  []string{"Name", "Description"},
		},
		{
			name: "name too long",
			payload: CreateRecipePayload{
				Name:        string(make([]byte, 201)),
				Description: "x",
			},
			fields: []string{"Name"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.payload.Validate()
			if tt.fields == nil {
				assert.NoError(t, err)
				return
			}

			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)

			var got []string
			for _, fe := range verrs {
				got = append(got, fe.Field())
			}
			assert.Equal(t, tt.fields, got)
		})
	}
}

func TestCreateRecipePayloadToRecipe(t *testing.T) {
	p := CreateRecipePayload{Name: "Pasta", Description: "Simple pasta"}
	r := p.ToRecipe()

	assert.Equal(t, StringList{}, r.Ingredients)
	assert.Equal(t, StringList{}, r.Instructions)
	assert.Nil(t, r.ImageURL)
	assert.False(t, r.IsFavorite)
}
