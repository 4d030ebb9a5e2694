package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pr-poehali-dev/kedoo-music-distribution-2/internal/jwt"
	"github.com/pr-poehali-dev/kedoo-music-distribution-2/internal/middlewares"
)

// withClaims attaches verified claims to the request context, the way
// AuthMiddleware does for real requests.
func withClaims(req *http.Request, userID int64, role string) *http.Request {
	ctx := middlewares.SetClaimsToContext(req.Context(), &jwt.Claims{UserID: userID, Role: role})
	return req.WithContext(ctx)
}

// withChiParam attaches a chi route parameter to the request context.
func withChiParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}
