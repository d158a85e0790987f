package httptransport

import (
	"context"
	"log/slog"
	"net/http"

	"filmgate/internal/platform/middleware"
	regModel "filmgate/internal/registration/models"
	"filmgate/pkg/platform/httputil"
)

// IdentityResolver turns an Authorization header value into a registration.
type IdentityResolver interface {
	ResolveIdentity(ctx context.Context, authorization string) (regModel.Registration, error)
}

type contextKeyRegistration struct{}

// ContextKeyRegistration is exported for use in handlers.
var ContextKeyRegistration = contextKeyRegistration{}

// RegistrationFrom retrieves the authenticated registration from the
// context, or nil when the request carried no valid identity.
func RegistrationFrom(ctx context.Context) *regModel.Registration {
	reg, ok := ctx.Value(ContextKeyRegistration).(*regModel.Registration)
	if !ok {
		return nil
	}
	return reg
}

// WithIdentity annotates the context with a registration when a valid bearer
// token is present. It never rejects: endpoints using it treat identity as
// optional.
func WithIdentity(resolver IdentityResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if reg, err := resolver.ResolveIdentity(ctx, r.Header.Get("Authorization")); err == nil {
				ctx = context.WithValue(ctx, ContextKeyRegistration, &reg)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireIdentity rejects requests without a resolvable bearer token and
// stores the registration in the context otherwise.
func RequireIdentity(resolver IdentityResolver, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			reg, err := resolver.ResolveIdentity(ctx, r.Header.Get("Authorization"))
			if err != nil {
				logger.WarnContext(ctx, "unauthorized access",
					"request_id", middleware.GetRequestID(ctx),
					"path", r.URL.Path,
				)
				httputil.WriteError(w, err)
				return
			}

			ctx = context.WithValue(ctx, ContextKeyRegistration, &reg)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
