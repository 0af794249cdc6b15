// Package memory implementa los puertos de persistencia en memoria (tests y STORE_DRIVER=memory).
// Cada lectura devuelve copias; nada de lo que recibe el llamador comparte estado con el store.
package memory

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
)

// Store agrupa las colecciones bajo un único mutex.
type Store struct {
	mu           sync.RWMutex
	seq          int64
	users        map[string]record[entity.User]
	companies    map[string]record[entity.Company]
	cards        map[string]record[entity.Card]
	transactions map[string]record[entity.Transaction]
	invoices     map[string]record[entity.Invoice]
}

// record guarda el orden de inserción para listar de forma estable.
type record[T any] struct {
	seq int64
	doc T
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{
		users:        make(map[string]record[entity.User]),
		companies:    make(map[string]record[entity.Company]),
		cards:        make(map[string]record[entity.Card]),
		transactions: make(map[string]record[entity.Transaction]),
		invoices:     make(map[string]record[entity.Invoice]),
	}
}

// nextID debe llamarse con el mutex tomado.
func (s *Store) nextID() (string, int64) {
	s.seq++
	return uuid.NewString(), s.seq
}

// filter devuelve copias ordenadas por inserción de los docs que cumplen keep.
func filter[T any](m map[string]record[T], keep func(*T) bool) []*T {
	recs := make([]record[T], 0, len(m))
	for _, r := range m {
		if keep == nil || keep(&r.doc) {
			recs = append(recs, r)
		}
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].seq < recs[j].seq })
	out := make([]*T, 0, len(recs))
	for _, r := range recs {
		doc := r.doc
		out = append(out, &doc)
	}
	return out
}

func get[T any](m map[string]record[T], id string) *T {
	r, ok := m[id]
	if !ok {
		return nil
	}
	doc := r.doc
	return &doc
}
