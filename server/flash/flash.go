// Package flash keeps one-shot user notices in a signed cookie, so they
// survive a redirect & are shown on the next rendered page only.
package flash

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt"
)

const (
	COOKIE_NAME = "dogcare_flash"
	MAX_AGE     = 5 * time.Minute
)

const (
	SUCCESS Kind = "success"
	ERROR   Kind = "error"
	INFO    Kind = "info"
)

type Kind string

type Message struct {
	Kind Kind   `json:"kind"`
	Text string `json:"text"`
}

type flashClaims struct {
	Messages []Message `json:"messages"`
	jwt.StandardClaims
}

type Store struct {
	secret []byte
	now    func() time.Time
}

func NewStore(secretKey string) *Store {
	return &Store{secret: []byte(secretKey), now: time.Now}
}

func Success(text string) Message { return Message{Kind: SUCCESS, Text: text} }
func Error(text string) Message   { return Message{Kind: ERROR, Text: text} }
func Info(text string) Message    { return Message{Kind: INFO, Text: text} }

// Add queues 'msg' behind any message already pending for the client
func (s *Store) Add(rw http.ResponseWriter, r *http.Request, msg Message) error {
	messages := append(s.pending(r), msg)

	claims := flashClaims{
		Messages: messages,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  s.now().Unix(),
			ExpiresAt: s.now().Add(MAX_AGE).Unix(),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return fmt.Errorf("flash.Add: %v", err)
	}

	http.SetCookie(rw, &http.Cookie{
		Name:     COOKIE_NAME,
		Value:    token,
		Path:     "/",
		MaxAge:   int(MAX_AGE.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	// Make the message visible to the rest of this request too
	r.AddCookie(&http.Cookie{Name: COOKIE_NAME, Value: token})

	return nil
}

// Pop returns the pending messages & clears them from the client
func (s *Store) Pop(rw http.ResponseWriter, r *http.Request) []Message {
	messages := s.pending(r)

	if _, err := r.Cookie(COOKIE_NAME); err == nil {
		http.SetCookie(rw, &http.Cookie{
			Name:     COOKIE_NAME,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}

	return messages
}

// pending decodes the flash cookie. A missing, expired or tampered with cookie
// holds no messages.
func (s *Store) pending(r *http.Request) []Message {
	cookie, err := lastCookie(r)
	if err != nil {
		return nil
	}

	claims := &flashClaims{}
	parser := jwt.Parser{}
	token, err := parser.ParseWithClaims(cookie.Value, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil
	}

	if !claims.VerifyExpiresAt(s.now().Unix(), true) {
		return nil
	}

	return claims.Messages
}

// lastCookie picks the newest flash cookie, since Add may append one to the request
func lastCookie(r *http.Request) (*http.Cookie, error) {
	var found *http.Cookie
	for _, cookie := range r.Cookies() {
		if cookie.Name == COOKIE_NAME {
			found = cookie
		}
	}

	if found == nil {
		return nil, http.ErrNoCookie
	}
	return found, nil
}
