package handler

import (
	"testing"

	"github.com/deppfellow/cookbook/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestNewRequestAllocatesFreshPayload(t *testing.T) {
	template := &model.SearchRecipesPayload{Name: "stale"}

	first := newRequest(template)
	second := newRequest(template)

	assert.NotSame(t, template, first)
	assert.NotSame(t, first, second)
	assert.Equal(t, &model.SearchRecipesPayload{}, first)
}
