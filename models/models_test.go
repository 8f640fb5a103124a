package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDetailField(t *testing.T) {
	for _, f := range DetailFields {
		got, ok := ParseDetailField(string(f))
		assert.True(t, ok, f)
		assert.Equal(t, f, got)
		assert.NotEmpty(t, got.Column())
		assert.Equal(t, "details."+string(f), got.DocumentPath())
	}

	for _, name := range []string{"", "password", "FullName", "details_location"} {
		_, ok := ParseDetailField(name)
		assert.False(t, ok, name)
	}
	assert.Len(t, DetailFields, 22)
}

func TestDetails_SetGet(t *testing.T) {
	var d Details
	for i, f := range DetailFields {
		require.True(t, d.Set(f, string(rune('a'+i))))
	}
	for i, f := range DetailFields {
		assert.Equal(t, string(rune('a'+i)), d.Get(f))
	}

	assert.False(t, d.Set("shoeSize", "9"))
	assert.Empty(t, d.Get("shoeSize"))

	cols := d.Columns()
	assert.Len(t, cols, 22)
	assert.Equal(t, "a", cols["details_full_name"])
	assert.Equal(t, "v", cols["details_additional"])
}

func TestFindQuestionsByText(t *testing.T) {
	c, err := NewCollege("MIT")
	require.NoError(t, err)

	for _, text := range []string{"Why MIT?", "Describe a challenge.", "Why MIT?"} {
		q, err := NewQuestion(text)
		require.NoError(t, err)
		c.Questions = append(c.Questions, q)
	}

	assert.Len(t, c.FindQuestionsByText("Why MIT?"), 2)
	assert.Equal(t, []string{c.Questions[1].ID}, c.FindQuestionsByText("Describe a challenge."))
	assert.Empty(t, c.FindQuestionsByText("why mit?"))
}

func TestNewUser(t *testing.T) {
	a, err := NewUser("Ada", "Lovelace", "ada@example.com", "hash")
	require.NoError(t, err)
	b, err := NewUser("Ada", "Lovelace", "ada@example.com", "hash")
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.NotNil(t, a.Colleges)
	assert.Equal(t, "Ada", a.DisplayName())
}

func TestRequestNormalize(t *testing.T) {
	r := RegisterRequest{FName: " Ada ", LName: "Lovelace ", Email: "  ADA@Example.COM "}
	r.Normalize()
	assert.Equal(t, "Ada", r.FName)
	assert.Equal(t, "Lovelace", r.LName)
	assert.Equal(t, "ada@example.com", r.Email)
}
