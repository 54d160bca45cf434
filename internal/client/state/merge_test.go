package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/servermanager/pkg/api"
)

func snapshotOf(ids ...int64) *api.Response {
	servers := make([]api.Server, 0, len(ids))
	for _, id := range ids {
		servers = append(servers, api.Server{ID: id, Status: api.StatusDown})
	}
	return &api.Response{
		StatusCode: 200,
		Message:    "Servers retrieved",
		Data:       api.Data{Servers: servers},
	}
}

func idsOf(resp *api.Response) []int64 {
	ids := make([]int64, 0, len(resp.Data.Servers))
	for _, s := range resp.Data.Servers {
		ids = append(ids, s.ID)
	}
	return ids
}

func TestMergeList_Reverses(t *testing.T) {
	resp := snapshotOf(1, 2, 3)

	next := mergeList(resp)

	assert.Equal(t, []int64{3, 2, 1}, idsOf(next))
	assert.Equal(t, []int64{1, 2, 3}, idsOf(resp), "response must not be modified")
	assert.Equal(t, "Servers retrieved", next.Message)
}

func TestMergeList_Empty(t *testing.T) {
	next := mergeList(&api.Response{Message: "No servers"})

	assert.Empty(t, next.Data.Servers)
	assert.Equal(t, "No servers", next.Message)
}

func TestMergePing_ReplacesAtIndex(t *testing.T) {
	snapshot := snapshotOf(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	resp := &api.Response{
		Message: "Ping success",
		Data:    api.Data{Server: &api.Server{ID: 5, Name: "pinged", Status: api.StatusUp}},
	}

	next, err := mergePing(snapshot, resp)

	require.NoError(t, err)
	require.Len(t, next.Data.Servers, 10)
	assert.Equal(t, "pinged", next.Data.Servers[4].Name)
	assert.Equal(t, api.StatusUp, next.Data.Servers[4].Status)
	// Сообщение конверта остаётся от снимка
	assert.Equal(t, "Servers retrieved", next.Message)
	assert.Equal(t, api.StatusDown, snapshot.Data.Servers[4].Status)

	for i, s := range next.Data.Servers {
		if i != 4 {
			assert.Equal(t, snapshot.Data.Servers[i], s)
		}
	}
}

func TestMergePing_Errors(t *testing.T) {
	snapshot := snapshotOf(1, 2)

	_, err := mergePing(snapshot, &api.Response{})
	assert.ErrorIs(t, err, ErrMissingRecord)

	_, err = mergePing(snapshot, &api.Response{Data: api.Data{Server: &api.Server{ID: 99}}})
	assert.ErrorIs(t, err, ErrServerNotInSnapshot)
	assert.Contains(t, err.Error(), "99")
}

func TestMergeSave_Appends(t *testing.T) {
	snapshot := snapshotOf(3, 2, 1)
	resp := &api.Response{
		Message: "Server created",
		Data:    api.Data{Server: &api.Server{ID: 4, Name: "new"}},
	}

	next, err := mergeSave(snapshot, resp)

	require.NoError(t, err)
	assert.Equal(t, []int64{3, 2, 1, 4}, idsOf(next))
	assert.Len(t, snapshot.Data.Servers, 3)

	_, err = mergeSave(snapshot, &api.Response{})
	assert.ErrorIs(t, err, ErrMissingRecord)
}

func TestMergeDelete(t *testing.T) {
	tests := []struct {
		name     string
		expected []int64
		id       int64
	}{
		{name: "present", id: 3, expected: []int64{1, 2, 4}},
		{name: "absent", id: 42, expected: []int64{1, 2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot := snapshotOf(1, 2, 3, 4)
			resp := &api.Response{StatusCode: 200, Message: "Server deleted", Data: api.Data{Server: &api.Server{ID: tt.id}}}

			next := mergeDelete(snapshot, resp, tt.id)

			assert.Equal(t, tt.expected, idsOf(next))
			assert.Equal(t, "Server deleted", next.Message)
			assert.Nil(t, next.Data.Server)
			assert.Equal(t, []int64{1, 2, 3, 4}, idsOf(snapshot))
		})
	}
}
