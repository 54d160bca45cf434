package models

import (
	"fmt"
	"strings"

	"github.com/iudanet/servermanager/pkg/api"
)

// Filter представляет критерий фильтрации таблицы серверов.
// Это параметр представления, он никогда не сохраняется на backend.
type Filter string

const (
	FilterAll  Filter = "ALL"
	FilterUp   Filter = Filter(api.StatusUp)
	FilterDown Filter = Filter(api.StatusDown)
)

// ParseFilter parses a criterion case-insensitively. An empty string means ALL.
func ParseFilter(raw string) (Filter, error) {
	switch f := Filter(strings.ToUpper(strings.TrimSpace(raw))); f {
	case "", FilterAll:
		return FilterAll, nil
	case FilterUp, FilterDown:
		return f, nil
	default:
		return "", fmt.Errorf("unknown filter %q, use ALL, SERVER_UP or SERVER_DOWN", raw)
	}
}

// Matches reports whether the server passes the criterion.
func (f Filter) Matches(s api.Server) bool {
	return f == FilterAll || api.Status(f) == s.Status
}

// Label returns the text used in filter messages.
func (f Filter) Label() string {
	if f == FilterAll {
		return string(FilterAll)
	}
	return api.Status(f).Label()
}
