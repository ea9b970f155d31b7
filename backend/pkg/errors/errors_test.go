package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WrapsCause(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := NewMirrorSync("clear", cause)

	assert.Contains(t, err.Error(), "mirror")
	assert.Contains(t, err.Error(), "clear")
	assert.Contains(t, err.Error(), "connection refused")
	require.ErrorIs(t, err, cause)
	assert.Equal(t, "clear", err.Phase)
}

func TestBaseError_NoCause(t *testing.T) {
	assert.Equal(t, "[mirror] Neo4j mirror not available", ErrMirrorUnavailable.Error())
	assert.Nil(t, ErrMirrorUnavailable.Unwrap())
}

func TestSeedStructure_CarriesKey(t *testing.T) {
	err := NewSeedStructure("locations")
	assert.Equal(t, "locations", err.Key)
	assert.Equal(t, ErrorTypeConfig, err.Type)
	assert.Contains(t, err.Error(), "locations")
}
