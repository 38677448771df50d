package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"naukrivacancy/internal/models"
	"naukrivacancy/internal/utility"
	utilhttp "naukrivacancy/internal/utility/http"
)

type contextKey string

const userContextKey contextKey = "user"

// Authentication resolves the caller from the Authorization header or
// the accessToken cookie and stores the matching user on the request
// context. Requests without a usable token are rejected with 401.
func Authentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("Authorization")
		token = strings.TrimPrefix(token, "Bearer ")
		if token == "" {
			if cookie, err := r.Cookie("accessToken"); err == nil {
				token = cookie.Value
			}
		}
		if token == "" || token == "null" {
			utilhttp.RespondError(w, http.StatusUnauthorized, "Unauthorized request")
			return
		}

		claims, errMsg := utility.ValidateToken(token)
		if errMsg != "" {
			utilhttp.RespondError(w, http.StatusUnauthorized, errMsg)
			return
		}

		uid, err := primitive.ObjectIDFromHex(claims.Uid)
		if err != nil {
			utilhttp.RespondError(w, http.StatusUnauthorized, "Invalid Access Token")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
		defer cancel()

		var user models.User
		if err := userCollection.FindOne(ctx, bson.M{"_id": uid}).Decode(&user); err != nil {
			utilhttp.RespondError(w, http.StatusUnauthorized, "Invalid Access Token")
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userContextKey, &user)))
	})
}

func currentUser(r *http.Request) *models.User {
	user, _ := r.Context().Value(userContextKey).(*models.User)
	return user
}

// requireAdmin writes the error response itself and reports whether
// the handler may proceed.
func requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	user := currentUser(r)
	if user == nil {
		utilhttp.RespondError(w, http.StatusUnauthorized, "Unauthorized access")
		return false
	}
	if user.Role != models.RoleAdmin {
		utilhttp.RespondError(w, http.StatusForbidden, "Forbidden: Admin access required")
		return false
	}
	return true
}
