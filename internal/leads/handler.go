package leads

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/oklog/ulid/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/development-sample/eceta.com/internal/forms"
	"github.com/development-sample/eceta.com/internal/httpx"
	"github.com/development-sample/eceta.com/internal/i18n"
	"github.com/development-sample/eceta.com/internal/observability"
)

const maxLeadRequestBody = 64 << 10

// Handler serves the lead intake endpoints.
type Handler struct {
	store    Store
	notifier Notifier
	now      func() time.Time
	newID    func() string
	accepted metric.Int64Counter
}

// Option customises a Handler.
type Option func(*Handler)

// WithClock overrides the receive timestamp source.
func WithClock(now func() time.Time) Option {
	return func(h *Handler) {
		if now != nil {
			h.now = now
		}
	}
}

// WithIDGenerator overrides lead id generation.
func WithIDGenerator(fn func() string) Option {
	return func(h *Handler) {
		if fn != nil {
			h.newID = fn
		}
	}
}

// NewHandler builds the intake handler. A nil notifier is replaced by NopNotifier.
func NewHandler(store Store, notifier Notifier, opts ...Option) *Handler {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	h := &Handler{
		store:    store,
		notifier: notifier,
		now:      time.Now,
		newID:    func() string { return ulid.Make().String() },
		accepted: observability.Counter("eceta.leads.accepted", "Leads accepted by kind."),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes mounts the endpoints relative to the /api prefix.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/brands/apply", accept[forms.BrandApplication](h))
	r.Post("/contact", accept[forms.Contact](h))
	r.Post("/newsletter/subscribe", accept[forms.Newsletter](h))
}

type acceptedResponse struct {
	ID string `json:"id"`
}

func accept[T forms.Values](h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if h.store == nil {
			httpx.WriteError(ctx, w, httpx.NewError("service_unavailable", "lead store unavailable", http.StatusServiceUnavailable))
			return
		}

		reader := http.MaxBytesReader(w, r.Body, maxLeadRequestBody)
		defer reader.Close()

		decoder := json.NewDecoder(reader)
		decoder.DisallowUnknownFields()

		var values T
		if err := decoder.Decode(&values); err != nil {
			httpx.WriteError(ctx, w, httpx.NewError("invalid_request", fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest))
			return
		}
		if decoder.More() {
			httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "invalid request body: extraneous data", http.StatusBadRequest))
			return
		}

		values = forms.Normalize(values)
		if fe := forms.Validate(values); len(fe) > 0 {
			httpx.WriteError(ctx, w, httpx.NewError("validation_failed", "one or more fields are invalid", http.StatusUnprocessableEntity).WithFields(fe))
			return
		}

		lead := Lead{
			ID:           h.newID(),
			Kind:         values.Kind(),
			Locale:       requestLocale(r).String(),
			Payload:      payloadOf(values),
			SubmissionID: strings.TrimSpace(r.Header.Get(forms.SubmissionIDHeader)),
			ReceivedAt:   h.now().UTC(),
			RemoteIP:     visitorIP(r),
			UserAgent:    visitorUserAgent(r),
		}

		logger := observability.FromContext(ctx).With(
			zap.String("lead_id", lead.ID),
			zap.String("lead_kind", string(lead.Kind)),
		)
		if err := h.store.Save(ctx, lead); err != nil {
			if errors.Is(err, ErrDuplicate) {
				httpx.WriteError(ctx, w, httpx.NewError("conflict", "lead already recorded", http.StatusConflict))
				return
			}
			logger.Error("lead store failed", zap.Error(err))
			httpx.WriteError(ctx, w, httpx.NewError("store_unavailable", "could not record lead", http.StatusServiceUnavailable))
			return
		}
		if err := h.notifier.Notify(ctx, lead); err != nil {
			logger.Warn("lead notification failed", zap.Error(err))
		}

		h.accepted.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", string(lead.Kind))))
		logger.Info("lead accepted", zap.String("locale", lead.Locale))
		httpx.WriteJSON(w, http.StatusAccepted, acceptedResponse{ID: lead.ID})
	}
}

func requestLocale(r *http.Request) i18n.Locale {
	for _, part := range strings.Split(r.Header.Get("Content-Language"), ",") {
		if l, ok := i18n.Parse(part); ok {
			return l
		}
	}
	return i18n.Default
}

// payloadOf flattens the values record into its JSON field names.
func payloadOf(v forms.Values) map[string]string {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var payload map[string]string
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil
	}
	return payload
}

// visitorIP prefers the browser address forwarded by the site's form relay.
func visitorIP(r *http.Request) string {
	if ip := strings.TrimSpace(r.Header.Get(forms.VisitorIPHeader)); ip != "" && net.ParseIP(ip) != nil {
		return ip
	}
	return clientIP(r)
}

func visitorUserAgent(r *http.Request) string {
	if ua := strings.TrimSpace(r.Header.Get(forms.VisitorUserAgentHeader)); ua != "" {
		return ua
	}
	return r.UserAgent()
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
