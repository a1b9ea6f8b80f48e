package servicenow

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsbridge/snbridge/pkg/models"
)

func testConfig(url string) *models.ConnectionConfig {
	return &models.ConnectionConfig{
		ServiceURL: url,
		Credentials: models.Credentials{
			Username: "admin",
			Password: "secret",
		},
		TableName: "change_request",
	}
}

func TestClient_Get(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/now/table/change_request", r.URL.Path)
		assert.Equal(t, "100", r.URL.Query().Get("sysparm_limit"))

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "admin", user)
		assert.Equal(t, "secret", pass)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":[{"number":"CHG1","sys_id":"abc"}]}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))

	env, err := client.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, env.StatusCode)

	var resp TableResponse
	require.NoError(t, json.Unmarshal(env.Body, &resp))
	require.Len(t, resp.Result, 1)
	assert.Equal(t, "CHG1", resp.Result[0]["number"])
}

func TestClient_GetReturnsHibernationBody(t *testing.T) {
	// A hibernating instance answers 200 with an HTML placeholder;
	// the client must hand the body through untouched.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html>Instance Hibernating page</html>"))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))

	env, err := client.Get(context.Background())
	require.NoError(t, err)
	assert.Contains(t, string(env.Body), "Instance Hibernating page")
}

func TestClient_Post(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/now/table/change_request", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var fields Record
		require.NoError(t, json.NewDecoder(r.Body).Decode(&fields))
		assert.Equal(t, "urgent fix", fields["description"])

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"result":{"number":"CHG9","sys_id":"zzz"}}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))

	env, err := client.Post(context.Background(), Record{"description": "urgent fix"})
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, env.StatusCode)

	var resp RecordResponse
	require.NoError(t, json.Unmarshal(env.Body, &resp))
	assert.Equal(t, "CHG9", resp.Result["number"])
}

func TestClient_AuthFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))

	env, err := client.Get(context.Background())
	require.Error(t, err)
	assert.Nil(t, env)
	assert.Contains(t, err.Error(), "authentication failed")
}

func TestClient_ServerErrorWithAPIBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"table not found","detail":""}}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))

	_, err := client.Get(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "table not found")
}

func TestClient_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // connection refused from here on

	client := NewClient(testConfig(srv.URL))

	env, err := client.Get(context.Background())
	require.Error(t, err)
	assert.Nil(t, env)
}
