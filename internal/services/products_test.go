package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchProducts(t *testing.T) {
	svc := newTestService(t)

	res, err := svc.FetchProducts()
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Len(t, res.Data, 6)
}

func TestFetchProductByID(t *testing.T) {
	svc := newTestService(t)

	res, err := svc.FetchProductByID("p3")
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, "Noise Cancelling Headphones", res.Data.Name)

	miss, err := svc.FetchProductByID("p999")
	require.NoError(t, err)
	assert.False(t, miss.Success)
	assert.Equal(t, MsgProductNotFound, miss.Message)
}
