package auth

import (
	"context"
	"net/http"
	"strings"
)

// Perfis de acesso dos usuários do sistema.
const (
	PerfilAdministrador = "ADMINISTRADOR"
	PerfilAgendamento   = "AGENDAMENTO"
)

type ctxKey string

const (
	CtxUserID ctxKey = "usuarioID"
	CtxPerfil ctxKey = "perfil"
)

func MiddlewareAutenticacao(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}
		h := r.Header.Get("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			http.Error(w, "Token ausente", http.StatusUnauthorized)
			return
		}
		raw := strings.TrimPrefix(h, "Bearer ")
		claims, err := ParseAndValidate(raw)
		if err != nil {
			http.Error(w, "Token inválido", http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), CtxUserID, claims.UserID)
		ctx = context.WithValue(ctx, CtxPerfil, claims.Perfil)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		perfil, _ := r.Context().Value(CtxPerfil).(string)
		if perfil != PerfilAdministrador {
			http.Error(w, "Forbidden (admin only)", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
