package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/octofit/pkg/types"
)

func newUpstream(t *testing.T, status int, body string) (*httptest.Server, *http.Request) {
	t.Helper()
	var seen http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = *r.Clone(context.Background())
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &seen
}

func TestEndpoint(t *testing.T) {
	c := New("http://api.test/", 0)
	assert.Equal(t, "http://api.test/api/activities/", c.Endpoint("activities"))
	assert.Equal(t, "http://api.test/api/leaderboards/", c.Endpoint("/leaderboards/"))
}

func TestFetchCollectionEnvelope(t *testing.T) {
	srv, seen := newUpstream(t, http.StatusOK,
		`{"count":1,"results":[{"id":1,"user":"alice","activity_type":"run","duration":30,"date":"2024-01-05"}]}`)

	entities, err := New(srv.URL, 0).FetchCollection(context.Background(), "activities")
	require.NoError(t, err)
	require.Len(t, entities, 1)
	assert.Equal(t, "1", entities[0].Text("id"))
	assert.Equal(t, "alice", entities[0].Text("user"))

	assert.Equal(t, "/api/activities/", seen.URL.Path)
	assert.Equal(t, "application/json", seen.Header.Get("Accept"))
	_, err = uuid.Parse(seen.Header.Get("X-Request-ID"))
	assert.NoError(t, err, "request id should be a uuid")
}

func TestFetchCollectionBareArray(t *testing.T) {
	srv, _ := newUpstream(t, http.StatusOK, `[{"user":"bob","score":50},{"user":"amy","score":90}]`)

	entities, err := New(srv.URL, 0).FetchCollection(context.Background(), "leaderboards")
	require.NoError(t, err)
	require.Len(t, entities, 2)
	assert.Equal(t, "bob", entities[0].Text("user"))
	assert.Equal(t, "amy", entities[1].Text("user"))
}

func TestFetchCollectionStatusError(t *testing.T) {
	srv, _ := newUpstream(t, http.StatusInternalServerError, `{"detail":"boom"}`)
	before := testutil.ToFloat64(fetchCounter.WithLabelValues("users", "status"))

	entities, err := New(srv.URL, 0).FetchCollection(context.Background(), "users")
	require.Error(t, err)
	assert.Nil(t, entities)
	assert.True(t, errors.Is(err, types.ErrStatus))
	assert.Contains(t, err.Error(), "500")

	after := testutil.ToFloat64(fetchCounter.WithLabelValues("users", "status"))
	assert.Equal(t, before+1, after)
}

func TestFetchCollectionDecodeError(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"html", `<html>not json</html>`},
		{"trailing garbage", `[{"id":1}] garbage`},
		{"extra bracket", `[{"id":1}]]`},
		{"second value started", `{"results":[]}{`},
		{"two values", `[] []`},
		{"truncated", `[{"id":1}`},
		{"empty", ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newUpstream(t, http.StatusOK, tt.body)

			entities, err := New(srv.URL, 0).FetchCollection(context.Background(), "teams")
			require.Error(t, err)
			assert.Nil(t, entities)
			assert.True(t, errors.Is(err, types.ErrDecode))
		})
	}
}

func TestDecodeAllowsTrailingWhitespace(t *testing.T) {
	entities, err := Decode(strings.NewReader("[{\"id\":1}]\n  \n"))
	require.NoError(t, err)
	assert.Len(t, entities, 1)
}

func TestFetchCollectionTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := New(url, 0).FetchCollection(context.Background(), "workouts")
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrTransport))
	assert.False(t, errors.Is(err, types.ErrStatus))
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantLen int
	}{
		{"bare array", `[{"id":1},{"id":2}]`, 2},
		{"envelope", `{"results":[{"id":1}]}`, 1},
		{"empty envelope", `{"results":[]}`, 0},
		{"null results falls back to body object", `{"results":null}`, 0},
		{"number", `42`, 0},
		{"null", `null`, 0},
		{"string", `"hello"`, 0},
		{"object without results", `{"id":1}`, 0},
		{"envelope with non-array results", `{"results":{"id":1}}`, 0},
		{"array of scalars", `[1,"x",null]`, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entities, err := Decode(strings.NewReader(tt.body))
			require.NoError(t, err)
			require.NotNil(t, entities)
			assert.Len(t, entities, tt.wantLen)
		})
	}
}

func TestNormalizeKeepsNumbersExact(t *testing.T) {
	entities, err := Decode(strings.NewReader(`[{"id":12345678901234567890}]`))
	require.NoError(t, err)
	assert.Equal(t, json.Number("12345678901234567890"), entities[0]["id"])
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, "ok", outcome(nil))
	assert.Equal(t, "status", outcome(&types.StatusError{Code: 404}))
	assert.Equal(t, "decode", outcome(types.ErrDecode))
	assert.Equal(t, "transport", outcome(types.ErrTransport))
}
