package middleware

import (
	"context"
	"net/http"

	"github.com/SergeyBogomolovv/restaurant-pos/internal/entities"
	"github.com/SergeyBogomolovv/restaurant-pos/pkg/utils"
	"github.com/google/uuid"
)

const EmployeeIDHeader = "X-Employee-ID"

type actorKey struct{}

// Identity puts the employee from X-Employee-ID into the request context.
// A request without the header passes through with no actor; use cases that
// need one reject it. A malformed header is rejected here.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(EmployeeIDHeader)
		if raw == "" {
			next.ServeHTTP(w, r)
			return
		}

		id, err := uuid.Parse(raw)
		if err != nil || id == uuid.Nil {
			utils.WriteError(w, "auth.invalid_employee", "invalid "+EmployeeIDHeader+" header", http.StatusUnauthorized)
			return
		}

		ctx := WithActor(r.Context(), entities.Actor{EmployeeID: id})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func WithActor(ctx context.Context, actor entities.Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFromContext returns the zero Actor when the request carried no identity.
func ActorFromContext(ctx context.Context) entities.Actor {
	actor, _ := ctx.Value(actorKey{}).(entities.Actor)
	return actor
}
