package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayNameKnownModels(t *testing.T) {
	c := Default()
	assert.Equal(t, "Llama 3.1 405B", c.DisplayName("meta-llama/llama-3.1-405b-instruct"))
	assert.Equal(t, "Qwen2.5 Coder 32B", c.DisplayName("qwen/qwen-2.5-coder-32b-instruct"))
	assert.Equal(t, "Qwen2.5 72B", c.DisplayName("qwen/qwen-2.5-72b-instruct"))
	assert.Equal(t, "Qwen2.5 VL 32B", c.DisplayName("qwen/qwen2.5-vl-32b-instruct"))
}

func TestDisplayNameUnknownEchoesID(t *testing.T) {
	c := Default()
	assert.Equal(t, "openai/gpt-4o", c.DisplayName("openai/gpt-4o"))
	assert.Equal(t, "", c.DisplayName(""))
	// exact match only
	assert.Equal(t, "QWEN/qwen-2.5-72b-instruct", c.DisplayName("QWEN/qwen-2.5-72b-instruct"))
	assert.False(t, c.Has("QWEN/qwen-2.5-72b-instruct"))
}

func TestCatalogOrderAndCopies(t *testing.T) {
	c := NewCatalog([]Model{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}, {ID: "a", Name: "dup"}})
	require.Equal(t, []Model{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}}, c.Models())
	assert.Equal(t, "A", c.DisplayName("a"))
	assert.True(t, c.Has("b"))
	assert.False(t, c.Has("zz"))
	assert.Equal(t, "a", c.First())

	ms := c.Models()
	ms[0].Name = "mutated"
	assert.Equal(t, "A", c.DisplayName("a"))
	assert.Equal(t, "", NewCatalog(nil).First())
}
