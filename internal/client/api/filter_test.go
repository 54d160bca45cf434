package api

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/servermanager/internal/models"
	"github.com/iudanet/servermanager/pkg/api"
)

func testSnapshot() *api.Response {
	return &api.Response{
		StatusCode: 200,
		Message:    "Servers retrieved",
		Data: api.Data{Servers: []api.Server{
			{ID: 4, Name: "delta", Status: api.StatusUp},
			{ID: 3, Name: "charlie", Status: api.StatusDown},
			{ID: 2, Name: "bravo", Status: api.StatusUp},
			{ID: 1, Name: "alpha", Status: api.StatusUp},
		}},
	}
}

func TestFilterSnapshot_All(t *testing.T) {
	snapshot := testSnapshot()

	first, err := FilterSnapshot(models.FilterAll, snapshot)
	require.NoError(t, err)
	second, err := FilterSnapshot(models.FilterAll, first)
	require.NoError(t, err)

	assert.Equal(t, "Servers filtered by ALL status", first.Message)
	assert.Equal(t, snapshot.Data.Servers, first.Data.Servers)
	assert.Equal(t, snapshot.Data.Servers, second.Data.Servers)

	// Снимок не изменился
	assert.Equal(t, testSnapshot(), snapshot)
}

func TestFilterSnapshot_ByStatus(t *testing.T) {
	tests := []struct {
		name        string
		filter      models.Filter
		expectedMsg string
		expectedIDs []int64
	}{
		{
			name:        "up",
			filter:      models.FilterUp,
			expectedIDs: []int64{4, 2, 1},
			expectedMsg: "Servers filtered by SERVER UP status",
		},
		{
			name:        "down",
			filter:      models.FilterDown,
			expectedIDs: []int64{3},
			expectedMsg: "Servers filtered by SERVER DOWN status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot := testSnapshot()

			resp, err := FilterSnapshot(tt.filter, snapshot)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedMsg, resp.Message)

			ids := make([]int64, 0, len(resp.Data.Servers))
			for _, s := range resp.Data.Servers {
				assert.Equal(t, api.Status(tt.filter), s.Status)
				ids = append(ids, s.ID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
			assert.Equal(t, testSnapshot(), snapshot)
		})
	}
}

func TestFilterSnapshot_NoneMatch(t *testing.T) {
	snapshot := &api.Response{
		Message: "Servers retrieved",
		Data: api.Data{Servers: []api.Server{
			{ID: 1, Status: api.StatusUp},
			{ID: 2, Status: api.StatusUp},
		}},
	}

	resp, err := FilterSnapshot(models.FilterDown, snapshot)

	require.NoError(t, err)
	assert.Empty(t, resp.Data.Servers)
	assert.Equal(t, "No servers of SERVER_DOWN found", resp.Message)
	assert.Len(t, snapshot.Data.Servers, 2)
}

func TestFilterSnapshot_Nil(t *testing.T) {
	resp, err := FilterSnapshot(models.FilterUp, nil)

	assert.ErrorIs(t, err, ErrNilSnapshot)
	assert.Nil(t, resp)
}

func TestClient_Filter_NoRemoteCall(t *testing.T) {
	// Клиент указывает на несуществующий адрес: фильтр не должен ходить в сеть
	client := NewClient("http://127.0.0.1:1/api/server/")

	resp, err := client.Filter(context.Background(), models.FilterDown, testSnapshot())

	require.NoError(t, err)
	require.Len(t, resp.Data.Servers, 1)
	assert.Equal(t, int64(3), resp.Data.Servers[0].ID)
}

func TestOperationError_Kind(t *testing.T) {
	tests := []struct {
		expected ErrorKind
		code     int
	}{
		{code: 0, expected: KindUnreachable},
		{code: 404, expected: KindNotFound},
		{code: 409, expected: KindConflict},
		{code: 422, expected: KindClient},
		{code: 503, expected: KindServer},
	}

	for _, tt := range tests {
		t.Run(tt.expected.String(), func(t *testing.T) {
			err := &OperationError{StatusCode: tt.code}
			assert.Equal(t, tt.expected, err.Kind())
		})
	}
}
