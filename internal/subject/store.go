package subject

import "sync"

// Store holds the session's subjects in insertion order.
// It lives for one session and is only ever appended to.
type Store struct {
	mu       sync.RWMutex
	subjects []Subject
}

// NewStore creates an empty store. Call Initialize once at session start
// to load the seed subjects.
func NewStore() *Store {
	return &Store{}
}

// Initialize replaces the store contents with the seed subjects.
func (s *Store) Initialize() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subjects = SeedSubjects()
}

// Append adds a subject to the end of the store.
func (s *Store) Append(subj Subject) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subjects = append(s.subjects, subj.clone())
}

// Subjects returns a copy of all subjects in insertion order.
func (s *Store) Subjects() []Subject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Subject, len(s.subjects))
	for i, subj := range s.subjects {
		out[i] = subj.clone()
	}
	return out
}

// Get returns the subject with the given id.
func (s *Store) Get(id string) (Subject, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, subj := range s.subjects {
		if subj.ID == id {
			return subj.clone(), true
		}
	}
	return Subject{}, false
}

// Len returns the number of subjects.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subjects)
}

// Aggregate folds over the current subjects.
func (s *Store) Aggregate() Aggregate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ComputeAggregate(s.subjects)
}
