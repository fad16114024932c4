package leads

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/development-sample/eceta.com/internal/forms"
	"github.com/development-sample/eceta.com/internal/i18n"
)

type recordingNotifier struct {
	mu    sync.Mutex
	leads []Lead
	err   error
}

func (n *recordingNotifier) Notify(_ context.Context, lead Lead) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.leads = append(n.leads, lead)
	return n.err
}

type failingStore struct{ err error }

func (s failingStore) Save(context.Context, Lead) error { return s.err }

var fixedTime = time.Date(2025, 3, 18, 9, 30, 0, 0, time.UTC)

func newTestServer(t *testing.T, store Store, notifier Notifier) *httptest.Server {
	t.Helper()
	n := 0
	h := NewHandler(store, notifier,
		WithClock(func() time.Time { return fixedTime }),
		WithIDGenerator(func() string {
			n++
			return []string{"01HLEAD0000000000000000001", "01HLEAD0000000000000000002", "01HLEAD0000000000000000003"}[n-1]
		}),
	)
	r := chi.NewRouter()
	r.Route("/api", h.Routes)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, srv *httptest.Server, path, body string, header http.Header) (*http.Response, map[string]any) {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, srv.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header[k] = v
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	var payload map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return resp, payload
}

func TestAcceptsValidContact(t *testing.T) {
	store := NewMemoryStore()
	notifier := &recordingNotifier{}
	srv := newTestServer(t, store, notifier)

	resp, payload := post(t, srv, "/api/contact",
		`{"name":" Alex Kim ","email":"alex@example.com","subject":"Press","message":"Hello"}`,
		http.Header{"Content-Language": {"en"}, forms.SubmissionIDHeader: {"sub-1"}})
	require.Equal(t, http.StatusAccepted, resp.StatusCode)
	require.Equal(t, "01HLEAD0000000000000000001", payload["id"])

	lead, ok := store.Get("01HLEAD0000000000000000001")
	require.True(t, ok)
	require.Equal(t, forms.KindContact, lead.Kind)
	require.Equal(t, "en", lead.Locale)
	require.Equal(t, "Alex Kim", lead.Payload["name"])
	require.Equal(t, "sub-1", lead.SubmissionID)
	require.Equal(t, fixedTime, lead.ReceivedAt)
	require.Len(t, notifier.leads, 1)
}

func TestInvalidPayloadReturnsFieldErrors(t *testing.T) {
	store := NewMemoryStore()
	srv := newTestServer(t, store, nil)

	resp, payload := post(t, srv, "/api/brands/apply",
		`{"company":"ECeta","name":"Jane","email":"nope","category":"Apparel","url":"brand","sku":"120","timeline":""}`, nil)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	require.Equal(t, "validation_failed", payload["error"])
	require.Equal(t, map[string]any{"email": "email", "url": "url", "timeline": "required"}, payload["fields"])
	require.Empty(t, store.List())
}

func TestMalformedBodies(t *testing.T) {
	srv := newTestServer(t, NewMemoryStore(), nil)
	cases := map[string]string{
		"syntax":        `{"email":`,
		"unknown field": `{"email":"me@example.com","phone":"1"}`,
		"trailing":      `{"email":"me@example.com"}{"email":"x@example.com"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			resp, payload := post(t, srv, "/api/newsletter/subscribe", body, nil)
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)
			require.Equal(t, "invalid_request", payload["error"])
		})
	}
}

func TestNotifierFailureIsNotSurfaced(t *testing.T) {
	store := NewMemoryStore()
	srv := newTestServer(t, store, &recordingNotifier{err: errors.New("pubsub down")})

	resp, _ := post(t, srv, "/api/newsletter/subscribe", `{"email":"me@example.com"}`, nil)
	require.Equal(t, http.StatusAccepted, resp.StatusCode)

	leads := store.List()
	require.Len(t, leads, 1)
	require.Equal(t, string(i18n.Default), leads[0].Locale)
}

func TestStoreFailures(t *testing.T) {
	srv := newTestServer(t, failingStore{err: errors.New("firestore unavailable")}, nil)
	resp, payload := post(t, srv, "/api/newsletter/subscribe", `{"email":"me@example.com"}`, nil)
	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	require.Equal(t, "store_unavailable", payload["error"])

	srv = newTestServer(t, failingStore{err: ErrDuplicate}, nil)
	resp, _ = post(t, srv, "/api/newsletter/subscribe", `{"email":"me@example.com"}`, nil)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestClientAgainstHandler(t *testing.T) {
	store := NewMemoryStore()
	srv := newTestServer(t, store, nil)

	c := forms.NewController[forms.Newsletter](forms.NewClient(srv.URL, srv.Client()))
	for i := 0; i < 2; i++ {
		c.Edit(forms.Newsletter{Email: "me@example.com"})
		require.NoError(t, c.Submit(forms.ContextWithLocale(context.Background(), i18n.En)))
	}
	leads := store.List()
	require.Len(t, leads, 2)
	require.Equal(t, "en", leads[1].Locale)
	require.NotEqual(t, leads[0].SubmissionID, leads[1].SubmissionID)
}

func TestLeadRecordsRelayedVisitor(t *testing.T) {
	store := NewMemoryStore()
	srv := newTestServer(t, store, nil)
	client := forms.NewClient(srv.URL, srv.Client())

	ctx := forms.ContextWithVisitor(context.Background(), forms.Visitor{IP: "203.0.113.9", UserAgent: "Mozilla/5.0 (Macintosh)"})
	require.NoError(t, client.Submit(ctx, forms.Newsletter{Email: "me@example.com"}))
	require.NoError(t, client.Submit(context.Background(), forms.Newsletter{Email: "me@example.com"}))

	leads := store.List()
	require.Len(t, leads, 2)
	require.Equal(t, "203.0.113.9", leads[0].RemoteIP)
	require.Equal(t, "Mozilla/5.0 (Macintosh)", leads[0].UserAgent)
	require.Equal(t, "127.0.0.1", leads[1].RemoteIP)
	require.Contains(t, leads[1].UserAgent, "Go-http-client")

	resp, _ := post(t, srv, "/api/newsletter/subscribe", `{"email":"me@example.com"}`,
		http.Header{forms.VisitorIPHeader: {"not-an-ip"}})
	require.Equal(t, http.StatusAccepted, resp.StatusCode)
	require.Equal(t, "127.0.0.1", store.List()[2].RemoteIP)
}

func TestMemoryStoreRejectsDuplicates(t *testing.T) {
	store := NewMemoryStore()
	lead := Lead{ID: "a", Payload: map[string]string{"email": "me@example.com"}}
	require.NoError(t, store.Save(context.Background(), lead))
	require.ErrorIs(t, store.Save(context.Background(), lead), ErrDuplicate)

	lead.Payload["email"] = "changed"
	got, _ := store.Get("a")
	require.Equal(t, "me@example.com", got.Payload["email"])
}
