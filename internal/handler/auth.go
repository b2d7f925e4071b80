package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/carehome-dev/care-journal/backend/internal/domain"
)

const sessionCookieName = "__care_journal_token"

type AuthClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func blacklistKey(jti string) string {
	return "jwt_blacklist_" + jti
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username" validate:"required"`
		PIN      string `json:"pin" validate:"required,len=4,numeric"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	users, err := h.repository.GetUsers()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// PIN 按产品设计明文存储，直接比较
	var user *domain.User
	for i := range users {
		if users[i].Username == req.Username && users[i].PIN == req.PIN {
			user = &users[i]
			break
		}
	}
	if user == nil {
		h.errorResponse(w, r, "用户不存在或 PIN 错误")
		return
	}
	if !user.Active {
		h.errorResponse(w, r, "账号已停用")
		return
	}

	// 生成 JWT
	expiration := time.Now().Add(time.Duration(h.config.JWT.Expiration) * time.Second)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, AuthClaims{
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiration),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Subject:   user.ID,
			ID:        domain.NewID(), // jti，登出时用于拉黑
		},
	})
	ss, err := token.SignedString([]byte(h.config.JWT.Secret))
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// 通过 http-only 的 cookie 返回给客户端
	cookie := &http.Cookie{
		Name:     sessionCookieName,
		Value:    ss,
		Expires:  expiration,
		Path:     "/",
		HttpOnly: true,
		Secure:   false,
	}

	if h.config.Environment == "production" {
		cookie.Secure = true
		cookie.SameSite = http.SameSiteStrictMode
	}

	http.SetCookie(w, cookie)

	h.successResponse(w, r, "登录成功", user)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	// 如果带着有效 token，把它的 jti 拉黑到过期为止
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		claims := &AuthClaims{}
		if _, err := jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (interface{}, error) {
			return []byte(h.config.JWT.Secret), nil
		}); err == nil && claims.ExpiresAt != nil {
			ttl := time.Until(claims.ExpiresAt.Time)
			if ttl > 0 {
				ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.Redis.OperationExpiration)*time.Second)
				defer cancel()

				if err := h.redisClient.Set(ctx, blacklistKey(claims.ID), 1, ttl).Err(); err != nil {
					h.internalServerError(w, r, err)
					return
				}
			}
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:    sessionCookieName,
		Value:   "",
		Expires: time.Now().Add(-time.Hour),
		Path:    "/",
	})

	h.successResponse(w, r, "登出成功", nil)
}

func (h *Handler) GetMyInfo(w http.ResponseWriter, r *http.Request) {
	me := r.Context().Value(CurrentUserCtx).(*domain.User)
	h.successResponse(w, r, "获取个人信息成功", me)
}
