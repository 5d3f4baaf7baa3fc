package middleware

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Identity headers minted by the API gateway after it verified the JWT.
// The services never see the token itself; the gateway is the trust
// boundary and these headers must not be reachable from outside it.
const (
	HeaderUserID   = "X-User-Id"
	HeaderRoles    = "X-Roles"
	HeaderCenterID = "X-Center-Id"

	ctxIdentity = "requestIdentity"
)

type RequestIdentity struct {
	UserID   uint64
	Roles    []string
	CenterID uint64
	// RolesPresent distinguishes "no header" (anonymous, 401) from an
	// empty roles list (authenticated, 403 on any role requirement).
	RolesPresent bool
}

func (ri RequestIdentity) HasRole(role string) bool {
	for _, r := range ri.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Identity parses the trusted headers into a RequestIdentity. It never
// rejects; the role middlewares decide what a missing identity means for
// a given route. The id headers are gateway-minted, so a value that does
// not parse is a contract breach and gets logged.
func Identity(logger *zap.Logger) gin.HandlerFunc {
	parseID := func(c *gin.Context, header string) uint64 {
		v := c.GetHeader(header)
		if v == "" {
			return 0
		}
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			logger.Warn("malformed identity header",
				zap.String("header", header),
				zap.String("value", v),
				zap.String("path", c.Request.URL.Path),
			)
			return 0
		}
		return id
	}

	return func(c *gin.Context) {
		var ri RequestIdentity

		ri.UserID = parseID(c, HeaderUserID)
		ri.CenterID = parseID(c, HeaderCenterID)
		if values := c.Request.Header.Values(HeaderRoles); len(values) > 0 {
			ri.RolesPresent = true
			for _, v := range values {
				for _, role := range strings.Split(v, ",") {
					if role = strings.TrimSpace(role); role != "" {
						ri.Roles = append(ri.Roles, role)
					}
				}
			}
		}

		c.Set(ctxIdentity, ri)
		c.Next()
	}
}

// IdentityFrom returns the identity parsed by Identity, zero if absent.
func IdentityFrom(c *gin.Context) RequestIdentity {
	v, ok := c.Get(ctxIdentity)
	if !ok {
		return RequestIdentity{}
	}
	ri, _ := v.(RequestIdentity)
	return ri
}
