package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/servermanager/pkg/api"
)

func TestParseFilter(t *testing.T) {
	tests := []struct {
		input    string
		expected Filter
		wantErr  bool
	}{
		{input: "", expected: FilterAll},
		{input: "all", expected: FilterAll},
		{input: "ALL", expected: FilterAll},
		{input: "server_up", expected: FilterUp},
		{input: " SERVER_DOWN ", expected: FilterDown},
		{input: "up", wantErr: true},
		{input: "SERVER_UNKNOWN", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			f, err := ParseFilter(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, f)
		})
	}
}

func TestFilter_Matches(t *testing.T) {
	up := api.Server{ID: 1, Status: api.StatusUp}
	down := api.Server{ID: 2, Status: api.StatusDown}

	assert.True(t, FilterAll.Matches(up))
	assert.True(t, FilterAll.Matches(down))
	assert.True(t, FilterUp.Matches(up))
	assert.False(t, FilterUp.Matches(down))
	assert.True(t, FilterDown.Matches(down))
	assert.False(t, FilterDown.Matches(up))
}

func TestFilter_Label(t *testing.T) {
	assert.Equal(t, "ALL", FilterAll.Label())
	assert.Equal(t, "SERVER UP", FilterUp.Label())
	assert.Equal(t, "SERVER DOWN", FilterDown.Label())
}
