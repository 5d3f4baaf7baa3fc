package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"validation", Validation(map[string]string{"name": "required"}), KindValidation},
		{"not found", NotFound("center not found"), KindNotFound},
		{"conflict", Conflict("center has active users"), KindConflict},
		{"unauthorized", Unauthorized("invalid credentials"), KindUnauthorized},
		{"forbidden", Forbidden("requires role ADMIN"), KindForbidden},
		{"remote unavailable", RemoteUnavailable("identity down", errors.New("dial tcp")), KindRemoteUnavailable},
		{"remote rejected", RemoteRejected("invalid request body", map[string]string{"email": "taken"}), KindRemoteRejected},
		{"internal", Internal("boom", errors.New("pg down")), KindInternal},
		{"plain error", errors.New("plain"), KindUnknown},
		{"nil", nil, KindUnknown},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestKindOf_Wrapped(t *testing.T) {
	err := fmt.Errorf("outer: %w", Conflict("version mismatch"))

	assert.Equal(t, KindConflict, KindOf(err))
	assert.True(t, IsKind(err, KindConflict))
	assert.False(t, IsKind(err, KindNotFound))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := RemoteUnavailable("identity service is unavailable", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "remote_unavailable")
	assert.Contains(t, err.Error(), cause.Error())
}

func TestFieldsOf(t *testing.T) {
	fields := map[string]string{"email": "invalid email format"}
	err := Validation(fields)

	require.Equal(t, fields, FieldsOf(err))
	assert.Nil(t, FieldsOf(errors.New("plain")))
	assert.Nil(t, FieldsOf(NotFound("nope")))
}

func TestMessageOf(t *testing.T) {
	assert.Equal(t, "center not found", MessageOf(NotFound("center not found")))
	// unclassified errors must not leak their text to callers
	assert.Equal(t, "internal server error", MessageOf(errors.New("pq: secret dsn")))
}
