package timex

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{"string form", `"3s"`, 3 * time.Second, false},
		{"string with units", `"1m30s"`, 90 * time.Second, false},
		{"integer nanoseconds", `2000000000`, 2 * time.Second, false},
		{"bad string", `"abc"`, 0, true},
		{"wrong type", `true`, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tc.input), &d)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, d.Duration)
		})
	}
}

func TestDuration_MarshalJSON_RoundTrip(t *testing.T) {
	d := Duration{Duration: 90 * time.Second}

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))

	var back Duration
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, d.Duration, back.Duration)
}
