package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAndValidate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "adapter.json")

	content := `{
		"adapter_id": "sn1",
		"listen_addr": ":8090",
		"poll_interval": "45s",
		"servicenow": {
			"service_url": "https://dev1234.service-now.com",
			"credentials": {"username": "admin", "password": "secret"},
			"table_name": "change_request"
		}
	}`

	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	var cfg AdapterConfig
	require.NoError(t, LoadAndValidate(path, &cfg))

	assert.Equal(t, "sn1", cfg.AdapterID)
	assert.Equal(t, 45*time.Second, time.Duration(cfg.PollInterval))
	assert.Equal(t, "change_request", cfg.ServiceNow.TableName)
}

func TestLoadAndValidate_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "missing adapter id",
			content: `{"servicenow": {"service_url": "https://x", "credentials": {"username": "u", "password": "p"}, "table_name": "t"}}`,
		},
		{
			name:    "missing servicenow block",
			content: `{"adapter_id": "sn1"}`,
		},
		{
			name:    "missing credentials",
			content: `{"adapter_id": "sn1", "servicenow": {"service_url": "https://x", "table_name": "t"}}`,
		},
		{
			name:    "not json",
			content: `adapter_id = sn1`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "adapter.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			var cfg AdapterConfig
			assert.Error(t, LoadAndValidate(path, &cfg))
		})
	}
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      time.Duration
		wantError bool
	}{
		{name: "string duration", input: `"30s"`, want: 30 * time.Second},
		{name: "numeric nanoseconds", input: `1000000000`, want: time.Second},
		{name: "bad string", input: `"thirty"`, wantError: true},
		{name: "bad type", input: `true`, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration

			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantError {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}
