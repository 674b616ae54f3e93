// Package memory implementa los puertos de persistencia en memoria del proceso.
// Se usa con DB_DRIVER=memory (demos locales) y como doble de prueba en los tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/golden-store/internal/domain/entity"
)

// DB estado compartido por los repositorios en memoria.
type DB struct {
	mu sync.RWMutex
	st *state
}

type state struct {
	seq      int64
	admins   map[string]*entity.Admin
	products map[string]*product
	settings *entity.StoreSettings
	nav      map[string]*entity.NavigationItem
}

// product guarda además el orden de inserción para desempatar CreatedAt iguales.
type product struct {
	entity.Product
	seq int64
}

// New crea una base vacía.
func New() *DB {
	return &DB{st: &state{
		admins:   map[string]*entity.Admin{},
		products: map[string]*product{},
		nav:      map[string]*entity.NavigationItem{},
	}}
}

// Ping siempre responde salvo contexto cancelado.
func (db *DB) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (db *DB) read(fn func(st *state)) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	fn(db.st)
}

func (db *DB) write(fn func(st *state) error) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	return fn(db.st)
}

func (s *state) clone() *state {
	c := &state{
		seq:      s.seq,
		admins:   make(map[string]*entity.Admin, len(s.admins)),
		products: make(map[string]*product, len(s.products)),
		nav:      make(map[string]*entity.NavigationItem, len(s.nav)),
	}
	for k, v := range s.admins {
		a := *v
		c.admins[k] = &a
	}
	for k, v := range s.products {
		p := *v
		p.Tags = append([]string(nil), v.Tags...)
		c.products[k] = &p
	}
	if s.settings != nil {
		st := *s.settings
		c.settings = &st
	}
	for k, v := range s.nav {
		n := *v
		c.nav[k] = &n
	}
	return c
}

func (s *state) navigationOf(storeID string) []*entity.NavigationItem {
	list := make([]*entity.NavigationItem, 0)
	for _, n := range s.nav {
		if n.StoreID == storeID {
			c := *n
			list = append(list, &c)
		}
	}
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Order != list[j].Order {
			return list[i].Order < list[j].Order
		}
		return list[i].ID < list[j].ID
	})
	return list
}
