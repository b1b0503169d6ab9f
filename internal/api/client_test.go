package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/powertrack/powertrack/internal/errors"
	"github.com/powertrack/powertrack/internal/session"
)

func testToken(t *testing.T) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":  "3",
		"role": "Manager",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

// newTestClient returns a Client pointing at server, with a logged-in
// session stored under a temp dir.
func newTestClient(t *testing.T, server *httptest.Server) (*Client, *session.Session) {
	t.Helper()
	store := session.NewStore(filepath.Join(t.TempDir(), "token"))
	sess := session.New(store)
	require.NoError(t, sess.Login(testToken(t)))
	return New(server.URL, 5*time.Second, sess, nil), sess
}

func TestRequestCarriesDefaultHeaders(t *testing.T) {
	var gotAuth, gotContentType, gotCustom string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		gotCustom = r.Header.Get("X-Request-Source")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client, _ := newTestClient(t, server)
	err := client.doJSON(context.Background(), requestSpec{
		method:  http.MethodGet,
		path:    "/api/staff",
		headers: http.Header{"X-Request-Source": []string{"tui"}},
	}, &[]StaffMember{})
	require.NoError(t, err)

	assert.Contains(t, gotAuth, "Bearer ", "Authorization header must carry the bearer token")
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "tui", gotCustom, "caller headers must be merged, not dropped")
}

func TestAuthRejectionClearsSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client, sess := newTestClient(t, server)
	_, err := client.ListStaff(context.Background())

	require.Error(t, err)
	assert.True(t, errors.IsAuthFailure(err), "401 must classify as an auth failure")
	assert.False(t, sess.IsAuthenticated(), "401 must tear the session down")
}

func TestUnprocessableEntityClearsSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	client, sess := newTestClient(t, server)
	_, err := client.ListPlans(context.Background())

	require.Error(t, err)
	assert.True(t, errors.IsAuthFailure(err))
	assert.False(t, sess.IsAuthenticated())
}

func TestFailedLoginKeepsStoredToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"), "/login must not carry a bearer token")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"msg": "bad credentials"})
	}))
	defer server.Close()

	client, sess := newTestClient(t, server)
	_, err := client.Login(context.Background(), "user", "wrong")

	require.Error(t, err)
	var ae *errors.APIError
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, http.StatusUnauthorized, ae.Status)
	assert.True(t, sess.IsAuthenticated(),
		"a failed login attempt must not tear down an existing session")
}

func TestNonOKBecomesAPIErrorWithBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"msg": "passwords do not match"})
	}))
	defer server.Close()

	client, _ := newTestClient(t, server)
	_, err := client.CreateStaff(context.Background(), CreateStaffRequest{})

	var ae *errors.APIError
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, http.StatusBadRequest, ae.Status)
	assert.Equal(t, "passwords do not match", ae.Message())
}

func TestTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // Closed on purpose: every request now fails at dial time

	store := session.NewStore(filepath.Join(t.TempDir(), "token"))
	sess := session.New(store)
	require.NoError(t, sess.Login(testToken(t)))
	client := New(server.URL, time.Second, sess, nil)

	_, err := client.ListVehicleCategories(context.Background())
	var te *errors.TransportError
	require.True(t, errors.As(err, &te))
	assert.True(t, sess.IsAuthenticated(), "transport failures must not log the user out")
}
