package web

import (
	"context"
	"sync"
	"time"

	"offer-agent/internal/core"
)

// chatLine is one message of a chat transcript.
type chatLine struct {
	Role string `json:"role"` // "user" or "assistant"
	Text string `json:"text"`
}

// draft is one user's in-progress offer built up across chat messages. The
// defaults snapshot is taken when the draft is created; merging only adopts
// extracted values that differ from it, so a later message cannot silently
// reset fields the user already stated.
type draft struct {
	Attrs     core.OfferAttributes
	defaults  core.OfferAttributes
	Messages  []chatLine
	UpdatedAt time.Time
}

const draftTTL = 2 * time.Hour

// draftStore is a thread-safe in-memory store of chat drafts keyed by user ID,
// with TTL expiry.
type draftStore struct {
	mu     sync.Mutex
	drafts map[int]*draft
	now    func() time.Time
}

func newDraftStore() *draftStore {
	return &draftStore{drafts: make(map[int]*draft), now: time.Now}
}

// get returns the user's live draft, creating a fresh one when none exists or
// the previous one expired. The returned copy is safe to read without the lock.
func (s *draftStore) get(userID int) draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.liveLocked(userID)
}

// update applies fn to the user's live draft under the lock and returns the
// resulting state.
func (s *draftStore) update(userID int, fn func(*draft)) draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.liveLocked(userID)
	fn(d)
	d.UpdatedAt = s.now()
	return *d
}

// clear discards the user's draft.
func (s *draftStore) clear(userID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, userID)
}

func (s *draftStore) liveLocked(userID int) *draft {
	now := s.now()
	d, ok := s.drafts[userID]
	if !ok || now.Sub(d.UpdatedAt) > draftTTL {
		attrs := core.NewOfferAttributes(now)
		d = &draft{Attrs: attrs, defaults: attrs, UpdatedAt: now}
		s.drafts[userID] = d
	}
	return d
}

// startPurge starts a background goroutine that evicts expired drafts every
// 15 minutes.
func (s *draftStore) startPurge(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(15 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.mu.Lock()
				for id, d := range s.drafts {
					if s.now().Sub(d.UpdatedAt) > draftTTL {
						delete(s.drafts, id)
					}
				}
				s.mu.Unlock()
			}
		}
	}()
}

// merge folds freshly extracted attributes into the draft. A field is adopted
// only when the extracted value differs from the draft's defaults snapshot,
// i.e. when the user actually stated it in this message.
func (d *draft) merge(extracted *core.OfferAttributes) {
	if extracted.ClientCompany != d.defaults.ClientCompany {
		d.Attrs.ClientCompany = extracted.ClientCompany
	}
	if extracted.ClientVATID != d.defaults.ClientVATID {
		d.Attrs.ClientVATID = extracted.ClientVATID
	}
	if extracted.ClientAddress != d.defaults.ClientAddress {
		d.Attrs.ClientAddress = extracted.ClientAddress
	}
	if extracted.ClientTK != d.defaults.ClientTK {
		d.Attrs.ClientTK = extracted.ClientTK
	}
	if extracted.ClientArea != d.defaults.ClientArea {
		d.Attrs.ClientArea = extracted.ClientArea
	}
	if extracted.ClientPhone != d.defaults.ClientPhone {
		d.Attrs.ClientPhone = extracted.ClientPhone
	}
	if extracted.Installations != d.defaults.Installations {
		d.Attrs.Installations = extracted.Installations
	}
	if !extracted.UnitPrice.Equal(d.defaults.UnitPrice) {
		d.Attrs.UnitPrice = extracted.UnitPrice
	}
	if extracted.OfferValidUntil != d.defaults.OfferValidUntil {
		d.Attrs.OfferValidUntil = extracted.OfferValidUntil
	}
	if extracted.IncludeTechDescription != d.defaults.IncludeTechDescription {
		d.Attrs.IncludeTechDescription = extracted.IncludeTechDescription
	}
	if extracted.IncludeTaxSolutions != d.defaults.IncludeTaxSolutions {
		d.Attrs.IncludeTaxSolutions = extracted.IncludeTaxSolutions
	}
	if extracted.CustomTitle != d.defaults.CustomTitle {
		d.Attrs.CustomTitle = extracted.CustomTitle
	}
	if extracted.CustomContent != d.defaults.CustomContent {
		d.Attrs.CustomContent = extracted.CustomContent
	}
}
