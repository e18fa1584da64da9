package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResult_Ok(t *testing.T) {
	r := Ok(42)
	assert.False(t, r.Failed())
	assert.NoError(t, r.Err())
	assert.Equal(t, 42, r.OrElse(7))
}

func TestResult_Fail(t *testing.T) {
	r := Fail[int](ErrStoreRead)
	assert.True(t, r.Failed())
	assert.True(t, errors.Is(r.Err(), ErrStoreRead))
	assert.Equal(t, 7, r.OrElse(7))

	v, err := r.Value()
	assert.Equal(t, 0, v)
	assert.Error(t, err)
}
