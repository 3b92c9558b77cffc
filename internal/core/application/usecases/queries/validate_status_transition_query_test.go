package queries_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidateStatusTransitionQuery_Valid(t *testing.T) {
	query, err := queries.NewValidateStatusTransitionQuery(kernel.NewUUID(), "OnRoute")
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, "OnRoute", query.NewStatus())
}

func TestNewValidateStatusTransitionQuery_EmptyStatus(t *testing.T) {
	_, err := queries.NewValidateStatusTransitionQuery(kernel.NewUUID(), "")
	require.Error(t, err)
}

func TestNewValidateStatusTransitionQuery_InvalidOrderID(t *testing.T) {
	_, err := queries.NewValidateStatusTransitionQuery(kernel.UUID{}, "OnRoute")
	require.Error(t, err)
}

func TestValidateStatusTransitionQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.ValidateStatusTransitionQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrValidateStatusTransitionQueryIsNotConstructed)
}
