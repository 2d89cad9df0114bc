package catalogs

import (
	"fmt"
	"maps"
	"sync"
)

// Publications is a concurrent safe map of publications.
type Publications struct {
	mu           sync.RWMutex
	publications map[PublicationID]*Publication
}

// PublicationsOption defines a function that configures a Publications instance.
type PublicationsOption func(*Publications)

// WithPublicationsCapacity sets the initial capacity of the publications map.
func WithPublicationsCapacity(capacity int) PublicationsOption {
	return func(p *Publications) {
		p.publications = make(map[PublicationID]*Publication, capacity)
	}
}

// NewPublications creates a new Publications map with optional configuration.
func NewPublications(opts ...PublicationsOption) *Publications {
	p := &Publications{
		publications: make(map[PublicationID]*Publication),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Get returns a publication by id and whether it exists.
func (p *Publications) Get(id PublicationID) (*Publication, bool) {
	p.mu.RLock()
	pub, ok := p.publications[id]
	p.mu.RUnlock()
	return pub, ok
}

// Set sets a publication by id. Returns an error if the publication is nil.
func (p *Publications) Set(id PublicationID, pub *Publication) error {
	if pub == nil {
		return fmt.Errorf("publication cannot be nil")
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.publications[id] = pub
	return nil
}

// Add adds a publication, returning an error if it already exists.
func (p *Publications) Add(pub *Publication) error {
	if pub == nil {
		return fmt.Errorf("publication cannot be nil")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.publications[pub.ID]; exists {
		return fmt.Errorf("publication with ID %s already exists", pub.ID)
	}

	p.publications[pub.ID] = pub
	return nil
}

// Exists checks if a publication exists without returning it.
func (p *Publications) Exists(id PublicationID) bool {
	p.mu.RLock()
	_, exists := p.publications[id]
	p.mu.RUnlock()
	return exists
}

// Len returns the number of publications.
func (p *Publications) Len() int {
	p.mu.RLock()
	length := len(p.publications)
	p.mu.RUnlock()
	return length
}

// List returns a slice of all publications.
func (p *Publications) List() []*Publication {
	p.mu.RLock()
	pubs := make([]*Publication, 0, len(p.publications))
	for _, pub := range p.publications {
		pubs = append(pubs, pub)
	}
	p.mu.RUnlock()
	return pubs
}

// Map returns a copy of all publications.
func (p *Publications) Map() map[PublicationID]*Publication {
	p.mu.RLock()
	defer p.mu.RUnlock()

	result := make(map[PublicationID]*Publication, len(p.publications))
	maps.Copy(result, p.publications)
	return result
}

// ForEach applies a function to each publication. The function should not
// modify the publication. If the function returns false, iteration stops early.
func (p *Publications) ForEach(fn func(id PublicationID, pub *Publication) bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	for id, pub := range p.publications {
		if !fn(id, pub) {
			break
		}
	}
}

// Clear removes all publications.
func (p *Publications) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for k := range p.publications {
		delete(p.publications, k)
	}
}
