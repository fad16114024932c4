package leads

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/development-sample/eceta.com/internal/forms"
)

// ErrDuplicate is returned when a lead with the same ID already exists.
var ErrDuplicate = errors.New("leads: duplicate lead")

// Lead is one accepted form submission.
type Lead struct {
	ID           string            `firestore:"id" json:"id"`
	Kind         forms.Kind        `firestore:"kind" json:"kind"`
	Locale       string            `firestore:"locale" json:"locale"`
	Payload      map[string]string `firestore:"payload" json:"payload"`
	SubmissionID string            `firestore:"submission_id,omitempty" json:"submissionId,omitempty"`
	ReceivedAt   time.Time         `firestore:"received_at" json:"receivedAt"`
	RemoteIP     string            `firestore:"remote_ip,omitempty" json:"-"`
	UserAgent    string            `firestore:"user_agent,omitempty" json:"-"`
}

// Store persists leads.
type Store interface {
	Save(ctx context.Context, lead Lead) error
}

// MemoryStore keeps leads in process memory. Used locally and in tests.
type MemoryStore struct {
	mu    sync.Mutex
	leads map[string]Lead
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{leads: make(map[string]Lead)}
}

// Save implements Store.
func (s *MemoryStore) Save(ctx context.Context, lead Lead) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.leads[lead.ID]; ok {
		return ErrDuplicate
	}
	s.leads[lead.ID] = cloneLead(lead)
	return nil
}

// Get returns the lead with the given id.
func (s *MemoryStore) Get(id string) (Lead, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lead, ok := s.leads[id]
	if !ok {
		return Lead{}, false
	}
	return cloneLead(lead), true
}

// List returns every lead, oldest first.
func (s *MemoryStore) List() []Lead {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Lead, 0, len(s.leads))
	for _, lead := range s.leads {
		out = append(out, cloneLead(lead))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func cloneLead(lead Lead) Lead {
	if lead.Payload != nil {
		payload := make(map[string]string, len(lead.Payload))
		for k, v := range lead.Payload {
			payload[k] = v
		}
		lead.Payload = payload
	}
	return lead
}
