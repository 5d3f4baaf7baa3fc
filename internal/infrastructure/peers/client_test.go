package peers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hospital-manager-api/config"
	"hospital-manager-api/internal/apperr"
	"hospital-manager-api/internal/application/ports"
	"hospital-manager-api/pkg/breaker"
)

func testPeerConfig(baseURL string) config.Peer {
	return config.Peer{
		BaseURL:          baseURL,
		Timeout:          time.Second,
		Retries:          2,
		BreakerThreshold: 100,
		BreakerCooldown:  time.Minute,
	}
}

func TestClient_RetriesServerErrorsThenSucceeds(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":7,"username":"12345678A","enabled":true}`))
	}))
	defer srv.Close()

	identity := NewIdentity(testPeerConfig(srv.URL), zap.NewNop())

	u, err := identity.GetUserByID(context.Background(), 7, false)

	require.NoError(t, err)
	assert.Equal(t, uint64(7), u.ID)
	assert.Equal(t, int32(3), hits.Load())
}

func TestClient_DoesNotRetryDeliberateAnswers(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"username already in use"}`))
	}))
	defer srv.Close()

	identity := NewIdentity(testPeerConfig(srv.URL), zap.NewNop())

	_, err := identity.Register(context.Background(), ports.RegisterUserRequest{Username: "12345678A"})

	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	assert.Equal(t, "username already in use", apperr.MessageOf(err))
	assert.Equal(t, int32(1), hits.Load(), "4xx answers must not be retried")
}

func TestClient_ExhaustedRetriesReadAsUnavailable(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	identity := NewIdentity(testPeerConfig(srv.URL), zap.NewNop())

	_, err := identity.GetUserByID(context.Background(), 7, false)

	require.Error(t, err)
	assert.Equal(t, apperr.KindRemoteUnavailable, apperr.KindOf(err))
	assert.Equal(t, int32(3), hits.Load(), "initial attempt plus two retries")
}

func TestClient_OpenBreakerShortCircuits(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	cfg := testPeerConfig(srv.URL)
	cfg.Retries = 0
	cfg.BreakerThreshold = 2
	identity := NewIdentity(cfg, zap.NewNop())

	for i := 0; i < 2; i++ {
		_, err := identity.GetUserByID(context.Background(), 7, false)
		require.Error(t, err)
	}
	before := hits.Load()

	_, err := identity.GetUserByID(context.Background(), 7, false)

	require.Error(t, err)
	assert.Equal(t, apperr.KindRemoteUnavailable, apperr.KindOf(err))
	assert.True(t, errors.Is(err, breaker.ErrOpen))
	assert.Equal(t, before, hits.Load(), "open circuit must not reach the wire")
}

func TestClient_CallerCancellationDoesNotTripTheBreaker(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":7,"enabled":true}`))
	}))
	defer srv.Close()

	cfg := testPeerConfig(srv.URL)
	cfg.BreakerThreshold = 1
	identity := NewIdentity(cfg, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := identity.GetUserByID(ctx, 7, false)

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, int32(0), hits.Load(), "a dead context never reaches the wire")

	// the circuit stayed closed: a live caller still gets through
	_, err = identity.GetUserByID(context.Background(), 7, false)
	require.NoError(t, err)
	assert.Equal(t, int32(1), hits.Load())
}

func TestIdentity_DeleteUserTreats404AsSuccess(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		hard    bool
		wantErr bool
		wantURI string
	}{
		{"deleted", http.StatusNoContent, false, false, "/api/v1/users/42"},
		{"hard delete already gone", http.StatusNotFound, true, false, "/api/v1/users/42?hard=true"},
		{"remote conflict surfaces", http.StatusConflict, false, true, "/api/v1/users/42"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var gotURI string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotURI = r.URL.RequestURI()
				require.Equal(t, http.MethodDelete, r.Method)
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			identity := NewIdentity(testPeerConfig(srv.URL), zap.NewNop())

			err := identity.DeleteUser(context.Background(), 42, tt.hard)

			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantURI, gotURI)
		})
	}
}

func TestIdentity_ExistsUserByID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/v1/users/7" {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":7,"enabled":true}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	identity := NewIdentity(testPeerConfig(srv.URL), zap.NewNop())

	exists, err := identity.ExistsUserByID(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = identity.ExistsUserByID(context.Background(), 99)
	require.NoError(t, err)
	assert.False(t, exists, "a 404 is a definitive no, not a failure")
}

func TestIdentity_ActiveUsersProbe(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		want     bool
		wantPath string
	}{
		{"center has users", http.StatusOK, `{"value":true}`, true, "/api/v1/centers/3/active-users"},
		{"center is empty", http.StatusOK, `{"value":false}`, false, "/api/v1/centers/3/active-users"},
		{"center unknown to the peer", http.StatusNotFound, `{"error":"center not found"}`, false, "/api/v1/centers/3/active-users"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var gotPath string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			identity := NewIdentity(testPeerConfig(srv.URL), zap.NewNop())

			got, err := identity.HasActiveUsersInCenter(context.Background(), 3)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantPath, gotPath)
		})
	}
}

func TestClient_RemoteRejectionCarriesDetails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"validation failed","details":{"email":"email already in use"}}`))
	}))
	defer srv.Close()

	identity := NewIdentity(testPeerConfig(srv.URL), zap.NewNop())

	_, err := identity.Register(context.Background(), ports.RegisterUserRequest{Username: "12345678A"})

	require.Error(t, err)
	assert.Equal(t, apperr.KindRemoteRejected, apperr.KindOf(err))
	assert.Equal(t, "validation failed", apperr.MessageOf(err))
	assert.Equal(t, "email already in use", apperr.FieldsOf(err)["email"])
}
