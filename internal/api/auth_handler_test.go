package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medcamphq/medcamp-api/internal/mocks"
	"github.com/medcamphq/medcamp-api/internal/service/auth"
)

func TestIssueToken(t *testing.T) {
	var captured auth.Identity
	jwtService := &mocks.MockJWTService{
		GenerateTokenFn: func(ctx context.Context, identity auth.Identity) (string, error) {
			captured = identity
			return "signed.jwt.token", nil
		},
	}
	handler := NewAuthHandler(jwtService)

	body := `{"email":"Alice@Example.com","name":"Alice"}`
	req := httptest.NewRequest(http.MethodPost, "/jwt", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	handler.IssueToken(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "signed.jwt.token", resp.Token)

	// Email is normalized before it enters the token.
	assert.Equal(t, "alice@example.com", captured.Email)
	assert.Equal(t, "Alice", captured.Name)
}

func TestIssueTokenRejectsBadEmail(t *testing.T) {
	jwtService := &mocks.MockJWTService{}
	handler := NewAuthHandler(jwtService)

	for _, body := range []string{`{}`, `{"email":"not-an-email"}`, `{`} {
		req := httptest.NewRequest(http.MethodPost, "/jwt", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()
		handler.IssueToken(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}

func TestIssueTokenSigningFailure(t *testing.T) {
	jwtService := &mocks.MockJWTService{Err: errors.New("hmac: key unavailable")}
	handler := NewAuthHandler(jwtService)

	req := httptest.NewRequest(http.MethodPost, "/jwt",
		bytes.NewBufferString(`{"email":"alice@example.com"}`))
	rec := httptest.NewRecorder()
	handler.IssueToken(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "hmac")
}
