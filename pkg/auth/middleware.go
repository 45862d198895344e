package auth

import (
	"net/http"

	"golang.org/x/crypto/bcrypt"
)

// TokenHeader carries the static API token.
const TokenHeader = "X-API-Token"

// HashToken returns the bcrypt hash to configure as API_TOKEN_HASH.
func HashToken(token string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckToken reports whether token matches the bcrypt hash.
func CheckToken(hash, token string) bool {
	if hash == "" || token == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(token)) == nil
}

// TokenMiddleware enforces a token in header X-API-Token matching expectedHash.
func TokenMiddleware(expectedHash string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if expectedHash == "" {
				http.Error(w, "api token not configured", http.StatusUnauthorized)
				return
			}
			if !CheckToken(expectedHash, r.Header.Get(TokenHeader)) {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
