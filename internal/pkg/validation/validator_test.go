package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `json:"name" validate:"required,max=5"`
	Count int    `json:"count" validate:"gte=0"`
	Skip  string `json:"-" validate:"omitempty,max=1"`
}

func TestStructValid(t *testing.T) {
	errs, err := Struct(sample{Name: "ok", Count: 1})
	require.NoError(t, err)
	assert.Nil(t, errs)
}

func TestStructFieldErrorsUseJsonNames(t *testing.T) {
	errs, err := Struct(sample{Name: "", Count: -1})
	require.NoError(t, err)
	require.NotNil(t, errs)
	assert.Equal(t, []string{"name is required"}, errs["name"])
	assert.Len(t, errs["count"], 1)
}

func TestStructMaxLength(t *testing.T) {
	errs, err := Struct(&sample{Name: "too long"})
	require.NoError(t, err)
	assert.Contains(t, errs["name"][0], "at most 5")
}

func TestStructInvalidInput(t *testing.T) {
	_, err := Struct(nil)
	assert.Error(t, err)
}
