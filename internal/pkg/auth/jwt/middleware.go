package jwt

import (
	"context"
	"net/http"
	"time"

	"interviewbot/internal/pkg/logx"
	"interviewbot/internal/pkg/randx"
)

// Define Context Key for storing the session ID, preventing key collisions with other packages.
type contextKey string

const (
	// ContextSessionIDKey is the key used to store the browser session ID in the request Context.
	ContextSessionIDKey contextKey = "session_id"

	// CookieName is the name of the cookie holding the session token.
	CookieName = "interview_session"
)

// SessionIssuer creates and recognizes browser sessions.
type SessionIssuer interface {
	Create() string
	Exists(id string) bool
}

// CookieOptions configures the session cookie.
type CookieOptions struct {
	Secret string
	TTL    time.Duration
	Secure bool
}

// SessionMiddleware resolves the browser session from the session cookie and injects its ID
// into the Context. A missing, invalid or expired token, or one naming an evicted session,
// starts a new session. The cookie is re-issued on every request so its expiry slides.
func SessionMiddleware(sessions SessionIssuer, opts CookieOptions) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := sessionFromCookie(r, sessions, opts.Secret)
			if sessionID == "" {
				sessionID = sessions.Create()
			}

			token, err := GenerateToken(&Payload{SessionID: sessionID}, opts.Secret, opts.TTL)
			if err != nil {
				logx.Error(err, "Failed to sign session token")
			} else {
				http.SetCookie(w, &http.Cookie{
					Name:     CookieName,
					Value:    token,
					Path:     "/",
					MaxAge:   int(opts.TTL.Seconds()),
					HttpOnly: true,
					Secure:   opts.Secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), ContextSessionIDKey, sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// sessionFromCookie returns the live session named by the request cookie, or "".
func sessionFromCookie(r *http.Request, sessions SessionIssuer, secret string) string {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return ""
	}

	payload, err := ParseToken(cookie.Value, secret)
	if err != nil {
		logx.Warn("Invalid or expired session token, starting a new session", "error", err.Error())
		return ""
	}

	if !randx.IsValidSessionID(payload.SessionID) || !sessions.Exists(payload.SessionID) {
		return ""
	}

	return payload.SessionID
}

// GetSessionID extracts the session ID injected by SessionMiddleware, or "" when absent.
func GetSessionID(r *http.Request) string {
	id, _ := r.Context().Value(ContextSessionIDKey).(string)
	return id
}
