// Package flash carries one-shot notices across redirects using a cookie
// session. The remote API owns identity; this cookie holds nothing but
// pending notices.
package flash

import (
	"encoding/gob"
	"net/http"

	"github.com/gorilla/sessions"
)

// Notice kinds, matched by template styling.
const (
	KindSuccess = "success"
	KindError   = "error"
	KindInfo    = "info"
)

// Notice is a single message queued for the next rendered page.
type Notice struct {
	Kind    string
	Message string
}

const noticesKey = "notices"

// Store is initialised once via Init.
var (
	store       *sessions.CookieStore
	sessionName string
)

func init() {
	gob.Register([]Notice{})
}

// Init configures the flash cookie store. Call once at startup.
func Init(name string, key []byte, secure bool) {
	s := sessions.NewCookieStore(key)
	s.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   300,
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	store = s
	sessionName = name
}

// Add queues a notice for the next page render.
func Add(w http.ResponseWriter, r *http.Request, kind, message string) {
	if store == nil {
		return
	}
	sess, _ := store.Get(r, sessionName)
	existing, _ := sess.Values[noticesKey].([]Notice)
	sess.Values[noticesKey] = append(existing, Notice{Kind: kind, Message: message})
	_ = sess.Save(r, w)
}

// Success queues a success notice.
func Success(w http.ResponseWriter, r *http.Request, message string) {
	Add(w, r, KindSuccess, message)
}

// Error queues an error notice.
func Error(w http.ResponseWriter, r *http.Request, message string) {
	Add(w, r, KindError, message)
}

// Pop returns and clears all queued notices.
func Pop(w http.ResponseWriter, r *http.Request) []Notice {
	if store == nil {
		return nil
	}
	sess, _ := store.Get(r, sessionName)
	notices, _ := sess.Values[noticesKey].([]Notice)
	if len(notices) > 0 {
		delete(sess.Values, noticesKey)
		_ = sess.Save(r, w)
	}
	return notices
}
