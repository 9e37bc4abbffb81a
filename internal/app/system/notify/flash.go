package notify

import (
	"encoding/gob"
	"fmt"
	"net/http"

	"github.com/dalemusser/liftadmin/internal/app/system/metrics"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const flashKey = "_toasts"

func init() {
	// Cookie sessions are gob-encoded.
	gob.Register(Toast{})
}

// FlashStore keeps toasts in a signed session cookie between requests.
type FlashStore struct {
	store   *sessions.CookieStore
	name    string
	metrics *metrics.Metrics
	log     *zap.Logger
}

// NewFlashStore builds a cookie-backed flash store.
//
// In production (secure=true) cookies are Secure + SameSite=None; in local dev
// over http://localhost use secure=false so cookies are accepted.
func NewFlashStore(sessionKey, name, domain string, secure bool, m *metrics.Metrics, logger *zap.Logger) (*FlashStore, error) {
	if sessionKey == "" {
		return nil, fmt.Errorf("session key is empty; provide ≥32 random chars")
	}
	if len(sessionKey) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(sessionKey)))
	}

	store := sessions.NewCookieStore([]byte(sessionKey))
	opts := &sessions.Options{
		Domain:   domain,
		Path:     "/",
		MaxAge:   3600,
		Secure:   secure,
		HttpOnly: true,
	}
	if secure {
		opts.SameSite = http.SameSiteNoneMode
	} else {
		opts.SameSite = http.SameSiteLaxMode
	}
	store.Options = opts

	logger.Info("flash store initialized",
		zap.Bool("secure", secure),
		zap.String("domain", domain))

	return &FlashStore{store: store, name: name, metrics: m, log: logger}, nil
}

// Add appends a toast to the session and saves it. Call before writing the
// response body or redirect.
func (f *FlashStore) Add(w http.ResponseWriter, r *http.Request, t Toast) error {
	sess, err := f.store.Get(r, f.name)
	if err != nil {
		// A cookie signed with an old key decodes as an error but still
		// yields a fresh session we can write to.
		f.log.Debug("flash: discarding unreadable session", zap.Error(err))
	}
	sess.AddFlash(t, flashKey)
	f.metrics.ObserveNotification(string(t.Level))
	return sess.Save(r, w)
}

// Pop returns and clears every pending toast.
func (f *FlashStore) Pop(w http.ResponseWriter, r *http.Request) []Toast {
	sess, err := f.store.Get(r, f.name)
	if err != nil {
		return nil
	}
	raw := sess.Flashes(flashKey)
	if len(raw) == 0 {
		return nil
	}
	if err := sess.Save(r, w); err != nil {
		f.log.Warn("flash: save after pop failed", zap.Error(err))
	}
	out := make([]Toast, 0, len(raw))
	for _, v := range raw {
		if t, ok := v.(Toast); ok {
			out = append(out, t)
		}
	}
	return out
}

// For returns a Notifier that writes flashes for this request/response pair.
func (f *FlashStore) For(w http.ResponseWriter, r *http.Request) Notifier {
	return &requestFlash{f: f, w: w, r: r}
}

type requestFlash struct {
	f *FlashStore
	w http.ResponseWriter
	r *http.Request
}

func (n *requestFlash) Success(msg string) { n.add(LevelSuccess, msg) }
func (n *requestFlash) Warning(msg string) { n.add(LevelWarning, msg) }
func (n *requestFlash) Error(msg string)   { n.add(LevelError, msg) }

func (n *requestFlash) add(level Level, msg string) {
	if err := n.f.Add(n.w, n.r, Toast{Level: level, Message: msg}); err != nil {
		n.f.log.Warn("flash: save failed", zap.Error(err))
	}
}
