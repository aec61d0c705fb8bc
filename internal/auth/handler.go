package auth

import (
	"context"
	"net/http"

	"github.com/frahmantamala/expense-insights/internal"
	"github.com/frahmantamala/expense-insights/internal/transport"
	"github.com/frahmantamala/expense-insights/pkg/logger"
)

type TokenParser interface {
	Parse(tokenString string) (*Claims, error)
}

type claimsKey struct{}

type Handler struct {
	*transport.BaseHandler
	Tokens TokenParser
}

func NewHandler(baseHandler *transport.BaseHandler, tokens TokenParser) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Tokens:      tokens,
	}
}

// AuthMiddleware rejects requests without a valid Bearer token and stores the
// token's identity on the request context.
func (h *Handler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := h.ExtractTokenFromHeader(r)
		if token == "" {
			h.Logger.Error("auth middleware: missing authorization token")
			h.WriteError(w, http.StatusUnauthorized, "missing authorization token")
			return
		}

		claims, err := h.Tokens.Parse(token)
		if err != nil {
			h.Logger.Error("token validation failed", "error", err)
			h.HandleServiceError(w, err)
			return
		}

		ctx := internal.ContextWithUserID(r.Context(), claims.ID)
		ctx = context.WithValue(ctx, claimsKey{}, claims)
		ctx = logger.With(ctx, "user_id", claims.ID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Me echoes the identity carried by the caller's token.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(claimsKey{}).(*Claims)
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	h.WriteJSON(w, http.StatusOK, claims.ToIdentity())
}
