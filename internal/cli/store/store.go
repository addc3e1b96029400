package store

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"OutfitLab/internal/outfit"
)

// StorageKey is the single key the whole store state is persisted under.
const StorageKey = "outfit-combinations-storage"

// persistedState is the JSON blob written to the KV backend.
type persistedState struct {
	UserUploads       []outfit.UserUpload       `json:"user_uploads"`
	SavedCombinations []outfit.SavedCombination `json:"saved_combinations"`
}

// CombinationStore is the single source of truth for known uploads and
// saved combinations. All mutations are atomic with respect to the
// in-memory maps; the durable persist after each mutation is asynchronous
// and fire-and-forget relative to the caller. A failed persist leaves the
// in-memory state authoritative and is reported via LastPersistErr and
// the optional error handler.
type CombinationStore struct {
	mu          sync.Mutex
	uploads     map[string]outfit.UserUpload
	uploadOrder []string
	saved       []outfit.SavedCombination

	kv  KV
	now func() time.Time

	dirty chan struct{}
	quit  chan struct{}
	done  chan struct{}
	once  sync.Once

	errMu        sync.Mutex
	lastErr      error
	onPersistErr func(error)
}

// Option customizes a CombinationStore.
type Option func(*CombinationStore)

// WithClock injects the timestamp source for saved entries.
func WithClock(now func() time.Time) Option {
	return func(s *CombinationStore) { s.now = now }
}

// WithPersistErrHandler registers a callback invoked from the persist
// goroutine whenever a durable write fails.
func WithPersistErrHandler(fn func(error)) Option {
	return func(s *CombinationStore) { s.onPersistErr = fn }
}

// New creates an empty store over the KV backend and starts its persist
// goroutine. Call Load to rehydrate and Close when done.
func New(kv KV, opts ...Option) *CombinationStore {
	s := &CombinationStore{
		uploads: make(map[string]outfit.UserUpload),
		kv:      kv,
		now:     time.Now,
		dirty:   make(chan struct{}, 1),
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	for _, o := range opts {
		o(s)
	}
	go s.persistLoop()
	return s
}

// Load rehydrates the store from durable storage. A missing blob leaves
// the store empty; a corrupt one is an error so the caller can decide.
func (s *CombinationStore) Load() error {
	raw, ok, err := s.kv.Get(StorageKey)
	if err != nil {
		return fmt.Errorf("load combinations: %w", err)
	}
	if !ok {
		return nil
	}
	var st persistedState
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		return fmt.Errorf("load combinations: decode: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.uploads = make(map[string]outfit.UserUpload, len(st.UserUploads))
	s.uploadOrder = s.uploadOrder[:0]
	for _, u := range st.UserUploads {
		if _, exists := s.uploads[u.ID]; exists {
			continue
		}
		s.uploads[u.ID] = u
		s.uploadOrder = append(s.uploadOrder, u.ID)
	}
	s.saved = st.SavedCombinations
	return nil
}

// AddUserUpload inserts the upload if its ID is unknown and returns the
// stored record. Re-adding an existing ID is a no-op that returns the
// pre-existing record unchanged (first-write-wins).
func (s *CombinationStore) AddUserUpload(u outfit.UserUpload) outfit.UserUpload {
	s.mu.Lock()
	if existing, ok := s.uploads[u.ID]; ok {
		s.mu.Unlock()
		return existing
	}
	s.uploads[u.ID] = u
	s.uploadOrder = append(s.uploadOrder, u.ID)
	s.mu.Unlock()

	s.requestPersist()
	return u
}

// UserUpload returns the upload with the given ID, if known.
func (s *CombinationStore) UserUpload(id string) (outfit.UserUpload, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.uploads[id]
	return u, ok
}

// UserUploads returns all known uploads in insertion order.
func (s *CombinationStore) UserUploads() []outfit.UserUpload {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]outfit.UserUpload, 0, len(s.uploadOrder))
	for _, id := range s.uploadOrder {
		out = append(out, s.uploads[id])
	}
	return out
}

// CombinationsForUpload returns saved entries for the upload in save order.
func (s *CombinationStore) CombinationsForUpload(uploadID string) []outfit.SavedCombination {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []outfit.SavedCombination
	for _, sc := range s.saved {
		if sc.UploadID == uploadID {
			out = append(out, sc)
		}
	}
	return out
}

// SavedCombinations returns every saved entry in save order.
func (s *CombinationStore) SavedCombinations() []outfit.SavedCombination {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]outfit.SavedCombination, len(s.saved))
	copy(out, s.saved)
	return out
}

// AddCombination saves the combination for the upload. Saving an already
// saved (combo.ID, uploadID) pair is a no-op.
func (s *CombinationStore) AddCombination(combo outfit.Combination, uploadID string) {
	s.mu.Lock()
	if s.findLocked(combo.ID, uploadID) >= 0 {
		s.mu.Unlock()
		return
	}
	s.saved = append(s.saved, outfit.SavedCombination{
		Combo:    combo,
		UploadID: uploadID,
		SavedAt:  s.now(),
	})
	s.mu.Unlock()

	s.requestPersist()
}

// RemoveCombination unsaves the matching entry; absent pairs are a no-op.
func (s *CombinationStore) RemoveCombination(comboID, uploadID string) {
	s.mu.Lock()
	i := s.findLocked(comboID, uploadID)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	s.saved = append(s.saved[:i], s.saved[i+1:]...)
	s.mu.Unlock()

	s.requestPersist()
}

// ClearCombinationsForUpload drops every saved entry for the upload.
func (s *CombinationStore) ClearCombinationsForUpload(uploadID string) {
	s.mu.Lock()
	kept := s.saved[:0]
	for _, sc := range s.saved {
		if sc.UploadID != uploadID {
			kept = append(kept, sc)
		}
	}
	changed := len(kept) != len(s.saved)
	s.saved = kept
	s.mu.Unlock()

	if changed {
		s.requestPersist()
	}
}

// IsCombinationSaved reports whether the (comboID, uploadID) pair is saved.
func (s *CombinationStore) IsCombinationSaved(comboID, uploadID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findLocked(comboID, uploadID) >= 0
}

// LastPersistErr returns the error of the most recent durable write, or
// nil when it succeeded.
func (s *CombinationStore) LastPersistErr() error {
	s.errMu.Lock()
	defer s.errMu.Unlock()
	return s.lastErr
}

// Close flushes the current state to durable storage, stops the persist
// goroutine and returns the final persist error, if any.
func (s *CombinationStore) Close() error {
	s.once.Do(func() {
		close(s.quit)
		<-s.done
	})
	return s.LastPersistErr()
}

func (s *CombinationStore) findLocked(comboID, uploadID string) int {
	for i, sc := range s.saved {
		if sc.Combo.ID == comboID && sc.UploadID == uploadID {
			return i
		}
	}
	return -1
}

// requestPersist signals the persist goroutine. The channel holds one
// pending signal; the loop always writes the latest state, so coalescing
// is safe.
func (s *CombinationStore) requestPersist() {
	select {
	case s.dirty <- struct{}{}:
	default:
	}
}

func (s *CombinationStore) persistLoop() {
	for {
		select {
		case <-s.dirty:
			s.persistNow()
		case <-s.quit:
			// final flush so a coalesced signal is not lost on shutdown;
			// a store that never mutated must not overwrite the stored blob
			select {
			case <-s.dirty:
				s.persistNow()
			default:
			}
			close(s.done)
			return
		}
	}
}

func (s *CombinationStore) persistNow() {
	s.mu.Lock()
	st := persistedState{
		UserUploads:       make([]outfit.UserUpload, 0, len(s.uploadOrder)),
		SavedCombinations: make([]outfit.SavedCombination, len(s.saved)),
	}
	for _, id := range s.uploadOrder {
		st.UserUploads = append(st.UserUploads, s.uploads[id])
	}
	copy(st.SavedCombinations, s.saved)
	s.mu.Unlock()

	b, err := json.Marshal(st)
	if err == nil {
		err = s.kv.Set(StorageKey, string(b))
	}
	if err != nil {
		err = fmt.Errorf("persist combinations: %w", err)
	}

	s.errMu.Lock()
	s.lastErr = err
	s.errMu.Unlock()

	if err != nil && s.onPersistErr != nil {
		s.onPersistErr(err)
	}
}
