package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/matryer/is"
)

const secret string = "s3cr3t-for-tests"

func TestValidTokenYieldsUser(t *testing.T) {
	is, handler, seen := testSetup(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token(is, secret, map[string]any{"ID": 7, "Email": "ana@example.org"}))
	res := httptest.NewRecorder()

	handler.ServeHTTP(res, req)

	is.Equal(http.StatusOK, res.Code)
	is.Equal(7, *seen)
}

func TestMissingTokenIsUnauthorized(t *testing.T) {
	is, handler, seen := testSetup(t)

	res := httptest.NewRecorder()
	handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/", nil))

	is.Equal(http.StatusUnauthorized, res.Code)
	is.Equal(0, *seen)
}

func TestTokenWithWrongSecretIsUnauthorized(t *testing.T) {
	is, handler, _ := testSetup(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token(is, "another-secret", map[string]any{"ID": 7}))
	res := httptest.NewRecorder()

	handler.ServeHTTP(res, req)

	is.Equal(http.StatusUnauthorized, res.Code)
}

func TestTokenWithoutUserIsUnauthorized(t *testing.T) {
	is, handler, _ := testSetup(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token(is, secret, map[string]any{"Email": "ana@example.org"}))
	res := httptest.NewRecorder()

	handler.ServeHTTP(res, req)

	is.Equal(http.StatusUnauthorized, res.Code)
}

func TestUserFromClaims(t *testing.T) {
	is := is.New(t)

	id, err := userFromClaims(map[string]any{"ID": float64(12)})
	is.NoErr(err)
	is.Equal(12, id)

	id, err = userFromClaims(map[string]any{"ID": "13"})
	is.NoErr(err)
	is.Equal(13, id)

	_, err = userFromClaims(map[string]any{"ID": 1.5})
	is.True(err != nil)

	_, err = userFromClaims(map[string]any{"ID": float64(0)})
	is.True(err != nil)
}

func token(is *is.I, key string, claims map[string]any) string {
	_, tokenString, err := jwtauth.New("HS256", []byte(key), nil).Encode(claims)
	is.NoErr(err)
	return tokenString
}

func testSetup(t *testing.T) (*is.I, http.Handler, *int) {
	is := is.New(t)

	seen := new(int)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if userID, ok := UserFromContext(r.Context()); ok {
			*seen = userID
		}
		w.WriteHeader(http.StatusOK)
	})

	return is, NewAuthenticator(secret)(next), seen
}
