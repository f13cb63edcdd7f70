package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/jwtauth/v5"
	"go.opentelemetry.io/otel"
)

type userContextKey struct{ name string }

var userCtxKey = &userContextKey{"user"}

var tracer = otel.Tracer("plant-mgmt/authz")

// UserClaim is the token claim that carries the numeric user id.
const UserClaim string = "ID"

var ErrNoUser = errors.New("token carries no user id")

// NewAuthenticator returns a middleware that verifies HS256 bearer tokens signed
// with secret and stores the user id from the token in the request context.
func NewAuthenticator(secret string) func(http.Handler) http.Handler {
	tokenAuth := jwtauth.New("HS256", []byte(secret), nil)
	verifier := jwtauth.Verifier(tokenAuth)

	return func(next http.Handler) http.Handler {
		return verifier(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var err error

			ctx, span := tracer.Start(r.Context(), "check-auth")
			defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

			logger := logging.GetFromContext(ctx)

			token, claims, err := jwtauth.FromContext(ctx)
			if err != nil || token == nil {
				if err == nil {
					err = jwtauth.ErrNoTokenFound
				}
				logger.Info().Err(err).Msg("request not authenticated")
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			userID, err := userFromClaims(claims)
			if err != nil {
				logger.Info().Err(err).Msg("token rejected")
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		}))
	}
}

func WithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userCtxKey, userID)
}

func UserFromContext(ctx context.Context) (int, bool) {
	userID, ok := ctx.Value(userCtxKey).(int)
	return userID, ok
}

func userFromClaims(claims map[string]any) (int, error) {
	v, ok := claims[UserClaim]
	if !ok {
		return 0, ErrNoUser
	}

	var id int

	switch t := v.(type) {
	case float64:
		if t != float64(int(t)) {
			return 0, fmt.Errorf("user id %v is not an integer", t)
		}
		id = int(t)
	case int:
		id = t
	case int64:
		id = int(t)
	case json.Number:
		n, err := t.Int64()
		if err != nil {
			return 0, err
		}
		id = int(n)
	case string:
		n, err := strconv.Atoi(t)
		if err != nil {
			return 0, err
		}
		id = n
	default:
		return 0, fmt.Errorf("unexpected user id type %T", v)
	}

	if id <= 0 {
		return 0, ErrNoUser
	}

	return id, nil
}
