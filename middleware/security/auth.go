package security

import (
	"net/http"
	"strings"

	"DreamMMO/global"
	"DreamMMO/tools/errs"
	jwtlib "DreamMMO/tools/security"

	"github.com/gin-gonic/gin"
)

// —— context key ——
// 后续模块统一用这个 key 读取当前用户。
const CtxUserIDKey = "userId"

type Options struct {
	// 读取哪个请求头
	HeaderToken               string // 默认 "Authorization"
	EnableAuthorizationBearer bool   // 默认 true

	JWT jwtlib.Options
}

func DefaultOptions() *Options {
	return &Options{
		HeaderToken:               "Authorization",
		EnableAuthorizationBearer: true,
		JWT:                       jwtlib.DefaultOptions(global.GetJwtSecret()),
	}
}

// Middleware 校验 Bearer 令牌并把用户ID写入 gin context。
func Middleware(opts *Options) gin.HandlerFunc {
	if opts == nil {
		opts = DefaultOptions()
	}
	return func(c *gin.Context) {
		token := strings.TrimSpace(c.GetHeader(opts.HeaderToken))

		// 兼容 Authorization: Bearer xxx
		if opts.EnableAuthorizationBearer {
			if strings.HasPrefix(strings.ToLower(token), "bearer ") {
				token = strings.TrimSpace(token[len("bearer "):])
			}
		}

		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errs.ErrTokenInvalid)
			return
		}

		userID, err := jwtlib.Verify(opts.JWT, token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errs.ErrTokenInvalid)
			return
		}

		c.Set(CtxUserIDKey, userID)
		c.Next()
	}
}

// UserID 读取中间件写入的当前用户ID。
func UserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(CtxUserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
