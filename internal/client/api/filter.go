package api

import (
	"errors"
	"fmt"

	"github.com/iudanet/servermanager/internal/models"
	"github.com/iudanet/servermanager/pkg/api"
)

// ErrNilSnapshot is returned when filtering without a loaded collection.
var ErrNilSnapshot = errors.New("no server snapshot to filter")

// FilterSnapshot returns the envelope to render for filter. It never mutates
// snapshot: ALL yields a copy with an updated message, any other criterion
// yields a copy whose servers are the matching subsequence in original order.
func FilterSnapshot(filter models.Filter, snapshot *api.Response) (*api.Response, error) {
	if snapshot == nil {
		return nil, ErrNilSnapshot
	}

	out := snapshot.Clone()
	if filter == models.FilterAll {
		out.Message = fmt.Sprintf("Servers filtered by %s status", models.FilterAll)
		return out, nil
	}

	matched := make([]api.Server, 0, len(snapshot.Data.Servers))
	for _, server := range snapshot.Data.Servers {
		if filter.Matches(server) {
			matched = append(matched, server)
		}
	}

	out.Data = api.Data{Servers: matched}
	if len(matched) > 0 {
		out.Message = fmt.Sprintf("Servers filtered by %s status", filter.Label())
	} else {
		out.Message = fmt.Sprintf("No servers of %s found", filter)
	}

	return out, nil
}
