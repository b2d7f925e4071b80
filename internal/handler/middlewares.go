package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"

	"github.com/carehome-dev/care-journal/backend/internal/domain"
)

type ResponseWriter struct {
	http.ResponseWriter
	StatusCode int
}

func (rw *ResponseWriter) WriteHeader(statusCode int) {
	rw.StatusCode = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
}

func (h *Handler) logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &ResponseWriter{ResponseWriter: w}
		next.ServeHTTP(rw, r)
		duration := time.Since(start)
		slog.Info("已处理请求", "status", rw.StatusCode, "ip", r.RemoteAddr, "method", r.Method, "path", r.URL.Path, "duration", duration)
	})
}

func (h *Handler) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				h.internalServerError(w, r, fmt.Errorf("panic: %v", err))
				stackTrace := string(debug.Stack())
				fmt.Print(stackTrace) // 这里如果用 slog 的话会很乱
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 从 cookie 中获取 token
		cookie, err := r.Cookie(sessionCookieName)
		if err != nil {
			switch {
			case err == http.ErrNoCookie:
				h.errorResponse(w, r, "用户未登录")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		// 验证 token
		tokenString := cookie.Value
		claims := &AuthClaims{}
		_, err = jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			return []byte(h.config.JWT.Secret), nil
		})
		if err != nil {
			h.errorResponse(w, r, "无效的令牌")
			return
		}

		// 登出过的 token 在黑名单中，拒绝访问
		ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.Redis.OperationExpiration)*time.Second)
		defer cancel()

		if _, err := h.redisClient.Get(ctx, blacklistKey(claims.ID)).Result(); err == nil {
			h.errorResponse(w, r, "登录已失效，请重新登录")
			return
		} else if err != redis.Nil {
			h.internalServerError(w, r, err)
			return
		}

		// 将 claims 中的 role 和 sub 附在 context 中
		reqCtx := r.Context()
		reqCtx = context.WithValue(reqCtx, RoleCtxKey, claims.Role)
		reqCtx = context.WithValue(reqCtx, SubCtxKey, claims.Subject)

		next.ServeHTTP(w, r.WithContext(reqCtx))
	})
}

// currentUser 根据 token 中的 sub 从员工集合中找到当前用户。
// 找不到（例如已被管理员删除）时拒绝请求。
func (h *Handler) currentUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sub := r.Context().Value(SubCtxKey).(string)

		users, err := h.repository.GetUsers()
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}

		var me *domain.User
		for i := range users {
			if users[i].ID == sub {
				me = &users[i]
				break
			}
		}
		if me == nil {
			h.errorResponse(w, r, "账号不存在或已被删除")
			return
		}

		ctx := context.WithValue(r.Context(), CurrentUserCtx, me)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) RequiredRole(roles []domain.Role) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			roleCtx := r.Context().Value(RoleCtxKey).(string)
			role := domain.Role(roleCtx)
			if !slices.Contains(roles, role) {
				h.errorResponse(w, r, "权限不足")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// preventInactiveStaff 拦截已停用账号的打卡和替班操作。
func (h *Handler) preventInactiveStaff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		me := r.Context().Value(CurrentUserCtx).(*domain.User)
		if !me.Active {
			h.errorResponse(w, r, "账号已停用")
			return
		}
		next.ServeHTTP(w, r)
	})
}
