package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/ba-raid-api/internal/errors"
)

func TestCallError_ValidationFields(t *testing.T) {
	vb := errors.NewValidationBuilder()
	vb.Field("page_size", "must be between 0 and 100")
	status := errors.ToGRPCError(vb.Build())

	err := callError("list parties", status)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list parties")
	assert.Contains(t, err.Error(), "page_size")
}

func TestCallError_KeepsCode(t *testing.T) {
	status := errors.ToGRPCError(errors.NotFound("no saved filter state"))

	err := callError("get filter state", status)

	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
	assert.Contains(t, err.Error(), "no saved filter state")
}
