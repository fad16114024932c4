package forms

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

type recordingSubmitter struct {
	mu    sync.Mutex
	calls []Values
	err   error
}

func (r *recordingSubmitter) Submit(_ context.Context, v Values) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, v)
	return r.err
}

func validContact() Contact {
	return Contact{Name: "Alex Kim", Email: "alex@example.com", Subject: "Press inquiry", Message: "Hello"}
}

func TestNewsletterWithEmptyEmailNeverSubmits(t *testing.T) {
	sub := &recordingSubmitter{}
	c := NewController[Newsletter](sub)
	c.Edit(Newsletter{Email: "   "})

	err := c.Submit(context.Background())
	require.ErrorIs(t, err, ErrInvalid)
	require.Empty(t, sub.calls)

	state := c.Snapshot()
	require.Equal(t, StatusIdle, state.Status)
	require.Equal(t, FieldErrors{"email": "required"}, state.Errors)
}

func TestInvalidEmailAndURLAreReportedPerField(t *testing.T) {
	fe := Validate(BrandApplication{
		Company:  "ECeta Inc.",
		Name:     "Jane Doe",
		Email:    "not-an-email",
		Category: "Apparel",
		URL:      "brand",
		SKU:      "120",
		Timeline: "Q1 2025",
	})
	require.Equal(t, FieldErrors{"email": "email", "url": "url"}, fe)
	require.Equal(t, []string{"email", "url"}, fe.Fields())
}

func TestBrandMessageIsOptional(t *testing.T) {
	fe := Validate(BrandApplication{
		Company:  "ECeta Inc.",
		Name:     "Jane Doe",
		Email:    "team@brand.co",
		Category: "Apparel",
		URL:      "https://brand.co",
		SKU:      "120",
		Timeline: "Q1 2025",
	})
	require.Nil(t, fe)
}

func TestContactRejectedKeepsValues(t *testing.T) {
	sub := &recordingSubmitter{err: &RejectedError{Kind: KindContact, Status: http.StatusBadGateway}}
	c := NewController[Contact](sub)
	c.Edit(validContact())

	err := c.Submit(context.Background())
	require.Error(t, err)
	var rejected *RejectedError
	require.True(t, errors.As(err, &rejected))
	require.Len(t, sub.calls, 1)

	state := c.Snapshot()
	require.Equal(t, StatusError, state.Status)
	require.Equal(t, validContact(), state.Values)

	c.Edit(state.Values)
	require.Equal(t, StatusIdle, c.Snapshot().Status)
}

func TestSuccessClearsValues(t *testing.T) {
	sub := &recordingSubmitter{}
	c := NewController[Contact](sub)
	c.Edit(validContact())

	require.NoError(t, c.Submit(context.Background()))
	state := c.Snapshot()
	require.Equal(t, StatusSuccess, state.Status)
	require.Equal(t, Contact{}, state.Values)
}

func TestIdenticalSubmissionsAreNotDeduplicated(t *testing.T) {
	sub := &recordingSubmitter{}
	c := NewController[Contact](sub)

	for i := 0; i < 2; i++ {
		c.Edit(validContact())
		require.NoError(t, c.Submit(context.Background()))
	}
	require.Len(t, sub.calls, 2)
	require.Equal(t, sub.calls[0], sub.calls[1])
}

func TestSubmitWhileInFlight(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32
	c := NewController[Newsletter](SubmitterFunc(func(context.Context, Values) error {
		calls.Add(1)
		close(entered)
		<-release
		return nil
	}))
	c.Edit(Newsletter{Email: "me@example.com"})

	done := make(chan error, 1)
	go func() { done <- c.Submit(context.Background()) }()
	<-entered

	require.True(t, c.Snapshot().Submitting())
	require.ErrorIs(t, c.Submit(context.Background()), ErrInFlight)

	close(release)
	require.NoError(t, <-done)
	require.Equal(t, int32(1), calls.Load())
	require.Equal(t, StatusSuccess, c.Snapshot().Status)
}

func TestFromFormTrimsAndIgnoresUnknownKeys(t *testing.T) {
	form := url.Values{
		"name":    {"  Alex  "},
		"email":   {"alex@example.com"},
		"subject": {"Hi"},
		"message": {"Body"},
		"_csrf":   {"token"},
	}
	got := FromForm[Contact](form)
	require.Equal(t, Contact{Name: "Alex", Email: "alex@example.com", Subject: "Hi", Message: "Body"}, got)
}

func TestParseKind(t *testing.T) {
	k, ok := ParseKind("Newsletter")
	require.True(t, ok)
	require.Equal(t, KindNewsletter, k)
	require.Equal(t, "/api/newsletter/subscribe", k.Endpoint())

	_, ok = ParseKind("careers")
	require.False(t, ok)
}

func TestClientPostsJSONToEndpoint(t *testing.T) {
	var (
		mu    sync.Mutex
		paths []string
		ids   []string
		body  map[string]string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		paths = append(paths, r.URL.Path)
		ids = append(ids, r.Header.Get(SubmissionIDHeader))
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	n := 0
	client := NewClient(srv.URL+"/", srv.Client(), WithIDGenerator(func() string {
		n++
		return []string{"first", "second"}[n-1]
	}))
	require.NoError(t, client.Submit(context.Background(), Newsletter{Email: "me@example.com"}))
	require.NoError(t, client.Submit(context.Background(), validContact()))

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, []string{"/api/newsletter/subscribe", "/api/contact"}, paths)
	require.Equal(t, []string{"first", "second"}, ids)
	require.Equal(t, "Alex Kim", body["name"])
}

func TestClientReportsRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	err := NewClient(srv.URL, srv.Client()).Submit(context.Background(), validContact())
	var rejected *RejectedError
	require.ErrorAs(t, err, &rejected)
	require.Equal(t, http.StatusUnprocessableEntity, rejected.Status)
	require.Equal(t, "nope", rejected.Body)
}

func TestControllerWithRejectingEndpoint(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewController[Contact](NewClient(srv.URL, srv.Client()))
	c.Edit(validContact())
	require.Error(t, c.Submit(context.Background()))

	state := c.Snapshot()
	require.Equal(t, StatusError, state.Status)
	require.Equal(t, validContact(), state.Values)
	require.Equal(t, int32(1), hits.Load())
}
