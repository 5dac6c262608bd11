package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsHTTPError(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", NewHTTPError(http.StatusConflict, "email already registered"))

	he, ok := AsHTTPError(wrapped)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, he.StatusCode)
	assert.Equal(t, "email already registered", he.Error())

	_, ok = AsHTTPError(fmt.Errorf("plain"))
	assert.False(t, ok)
}
