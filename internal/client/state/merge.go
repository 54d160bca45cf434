package state

import (
	"fmt"

	"github.com/iudanet/servermanager/pkg/api"
)

// Merge rules. Each returns a new envelope and never modifies its inputs, so
// states emitted earlier keep rendering the rows they were built from.

// mergeList makes the list response the new snapshot, most recent server first.
func mergeList(resp *api.Response) *api.Response {
	next := resp.Clone()
	servers := next.Data.Servers
	for i, j := 0, len(servers)-1; i < j; i, j = i+1, j-1 {
		servers[i], servers[j] = servers[j], servers[i]
	}
	return next
}

// mergePing replaces the pinged server in place, keeping the envelope message.
func mergePing(snapshot, resp *api.Response) (*api.Response, error) {
	if resp.Data.Server == nil {
		return nil, ErrMissingRecord
	}
	updated := *resp.Data.Server

	index := indexOf(snapshot.Data.Servers, updated.ID)
	if index < 0 {
		return nil, fmt.Errorf("ping server %d: %w", updated.ID, ErrServerNotInSnapshot)
	}

	next := snapshot.Clone()
	next.Data.Servers[index] = updated
	return next, nil
}

// mergeSave appends the created server. Ids are assigned by the backend and
// are not checked for collisions.
func mergeSave(snapshot, resp *api.Response) (*api.Response, error) {
	if resp.Data.Server == nil {
		return nil, ErrMissingRecord
	}

	next := snapshot.Clone()
	next.Data.Servers = append(next.Data.Servers, *resp.Data.Server)
	return next, nil
}

// mergeDelete takes the delete response as the new envelope and drops the
// deleted server from the previous list. A missing id leaves the list as is.
func mergeDelete(snapshot, resp *api.Response, serverID int64) *api.Response {
	servers := make([]api.Server, 0, len(snapshot.Data.Servers))
	for _, s := range snapshot.Data.Servers {
		if s.ID != serverID {
			servers = append(servers, s)
		}
	}

	next := resp.Clone()
	next.Data = api.Data{Servers: servers}
	return next
}

func indexOf(servers []api.Server, id int64) int {
	for i, s := range servers {
		if s.ID == id {
			return i
		}
	}
	return -1
}
