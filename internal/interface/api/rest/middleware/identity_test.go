package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestIdentity_MalformedIDHeadersAreLogged(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		wantUserID uint64
		wantLogs   int
	}{
		{
			name:       "well formed headers log nothing",
			headers:    map[string]string{HeaderUserID: "42", HeaderCenterID: "3"},
			wantUserID: 42,
			wantLogs:   0,
		},
		{
			name:       "garbage user id falls back to zero and logs",
			headers:    map[string]string{HeaderUserID: "abc", HeaderCenterID: "3"},
			wantUserID: 0,
			wantLogs:   1,
		},
		{
			name:     "both headers garbage logs both",
			headers:  map[string]string{HeaderUserID: "-1", HeaderCenterID: "x"},
			wantLogs: 2,
		},
		{
			name:     "absent headers log nothing",
			headers:  nil,
			wantLogs: 0,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			core, logs := observer.New(zap.WarnLevel)

			r := gin.New()
			r.Use(Identity(zap.New(core)))

			var got RequestIdentity
			r.GET("/probe", func(c *gin.Context) {
				got = IdentityFrom(c)
				c.Status(http.StatusOK)
			})

			req, err := http.NewRequest(http.MethodGet, "/probe", nil)
			require.NoError(t, err)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code, "identity parsing never rejects")
			assert.Equal(t, tt.wantUserID, got.UserID)
			assert.Equal(t, tt.wantLogs, logs.Len())
			if tt.wantLogs > 0 {
				entry := logs.All()[0]
				assert.Equal(t, "malformed identity header", entry.Message)
				assert.Equal(t, HeaderUserID, entry.ContextMap()["header"])
			}
		})
	}
}
