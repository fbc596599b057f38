package queries_test

import (
	"testing"

	"shopfloor/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetTransportBoardQuery_Valid(t *testing.T) {
	query, err := queries.NewGetTransportBoardQuery(1, 50)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, 1, query.Page())
	assert.Equal(t, 50, query.PageSize())
}

func TestNewGetTransportBoardQuery_RejectsBadPaging(t *testing.T) {
	_, err := queries.NewGetTransportBoardQuery(0, 50)
	require.Error(t, err)

	_, err = queries.NewGetTransportBoardQuery(1, 0)
	require.Error(t, err)

	_, err = queries.NewGetTransportBoardQuery(1, 10000)
	require.Error(t, err)
}

func TestGetTransportBoardQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetTransportBoardQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetTransportBoardQueryIsNotConstructed)
}
