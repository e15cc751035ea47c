package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medcamphq/medcamp-api/internal/api/middleware"
	"github.com/medcamphq/medcamp-api/internal/api/shared"
	"github.com/medcamphq/medcamp-api/internal/domain"
	"github.com/medcamphq/medcamp-api/internal/mocks"
	"github.com/medcamphq/medcamp-api/internal/service/auth"
)

func okHandler(hit *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*hit = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireIdentity(t *testing.T) {
	t.Parallel()

	claims := &auth.Claims{Email: "alice@example.com", Name: "Alice"}

	tests := []struct {
		name        string
		authHeader  string
		validateErr error
		wantStatus  int
		wantBody    string
		wantNext    bool
	}{
		{
			name:       "missing header",
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"message":"Unauthorized Access"}`,
		},
		{
			name:       "malformed header",
			authHeader: "Token abc",
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"message":"Unauthorized Access"}`,
		},
		{
			name:        "invalid token",
			authHeader:  "Bearer bad",
			validateErr: auth.ErrInvalidToken,
			wantStatus:  http.StatusUnauthorized,
			wantBody:    `{"message":"Unauthorized Access"}`,
		},
		{
			name:        "expired token",
			authHeader:  "Bearer expired",
			validateErr: auth.ErrExpiredToken,
			wantStatus:  http.StatusUnauthorized,
			wantBody:    `{"message":"Unauthorized Access"}`,
		},
		{
			name:       "valid token",
			authHeader: "Bearer good",
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			jwtService := &mocks.MockJWTService{
				Claims:      claims,
				ValidateErr: tc.validateErr,
			}
			m := middleware.NewAuthMiddleware(jwtService, mocks.NewMockUserStore())

			var hit bool
			handler := m.RequireIdentity(okHandler(&hit))

			req := httptest.NewRequest(http.MethodGet, "/camps", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantNext, hit)
			if tc.wantBody != "" {
				assert.JSONEq(t, tc.wantBody, rec.Body.String())
			}
		})
	}
}

func TestRequireIdentityAddsClaimsToContext(t *testing.T) {
	t.Parallel()

	claims := &auth.Claims{Email: "alice@example.com", Name: "Alice"}
	jwtService := &mocks.MockJWTService{Claims: claims}
	m := middleware.NewAuthMiddleware(jwtService, mocks.NewMockUserStore())

	handler := m.RequireIdentity(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok := middleware.GetClaims(r)
		require.True(t, ok)
		assert.Equal(t, "alice@example.com", got.Email)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/camps", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

// serveWithParam runs the handler through a chi router so URL parameters
// resolve the way they do in production.
func serveWithParam(
	t *testing.T,
	mw func(http.Handler) http.Handler,
	claims *auth.Claims,
	target string,
	hit *bool,
) *httptest.ResponseRecorder {
	t.Helper()

	r := chi.NewRouter()
	r.With(mw).Get("/registrations/{email}", func(w http.ResponseWriter, req *http.Request) {
		*hit = true
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, target, nil)
	if claims != nil {
		req = req.WithContext(withClaims(req.Context(), claims))
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func withClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, shared.ClaimsContextKey, claims)
}

func TestRequireSelf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		claims     *auth.Claims
		target     string
		wantStatus int
		wantBody   string
		wantNext   bool
	}{
		{
			name:       "matching email",
			claims:     &auth.Claims{Email: "alice@example.com"},
			target:     "/registrations/alice@example.com",
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:       "matching email different case",
			claims:     &auth.Claims{Email: "Alice@Example.com"},
			target:     "/registrations/alice@example.com",
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:       "mismatched email",
			claims:     &auth.Claims{Email: "mallory@example.com"},
			target:     "/registrations/alice@example.com",
			wantStatus: http.StatusForbidden,
			wantBody:   `{"message":"forbidden access"}`,
		},
		{
			name:       "no claims in context",
			claims:     nil,
			target:     "/registrations/alice@example.com",
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"message":"Unauthorized Access"}`,
		},
	}

	m := middleware.NewAuthMiddleware(&mocks.MockJWTService{}, mocks.NewMockUserStore())

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var hit bool
			rec := serveWithParam(t, m.RequireSelf("email"), tc.claims, tc.target, &hit)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantNext, hit)
			if tc.wantBody != "" {
				assert.JSONEq(t, tc.wantBody, rec.Body.String())
			}
		})
	}
}

func TestRequireOrganizer(t *testing.T) {
	t.Parallel()

	organizer, err := domain.NewUser("org@example.com", "Org")
	require.NoError(t, err)
	organizer.Role = domain.RoleOrganizer

	participant, err := domain.NewUser("part@example.com", "Part")
	require.NoError(t, err)

	tests := []struct {
		name       string
		claims     *auth.Claims
		wantStatus int
		wantBody   string
		wantNext   bool
	}{
		{
			name:       "organizer allowed",
			claims:     &auth.Claims{Email: "org@example.com"},
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:       "participant forbidden",
			claims:     &auth.Claims{Email: "part@example.com"},
			wantStatus: http.StatusForbidden,
			wantBody:   `{"message":"forbidden access"}`,
		},
		{
			name:       "unknown user forbidden",
			claims:     &auth.Claims{Email: "ghost@example.com"},
			wantStatus: http.StatusForbidden,
			wantBody:   `{"message":"forbidden access"}`,
		},
		{
			name:       "no claims in context",
			claims:     nil,
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"message":"Unauthorized Access"}`,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			userStore := mocks.NewMockUserStore()
			userStore.Users[organizer.Email] = organizer
			userStore.Users[participant.Email] = participant

			m := middleware.NewAuthMiddleware(&mocks.MockJWTService{}, userStore)

			var hit bool
			handler := m.RequireOrganizer(okHandler(&hit))

			req := httptest.NewRequest(http.MethodPost, "/camps", nil)
			if tc.claims != nil {
				req = req.WithContext(withClaims(req.Context(), tc.claims))
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantNext, hit)
			if tc.wantBody != "" {
				assert.JSONEq(t, tc.wantBody, rec.Body.String())
			}
		})
	}
}
