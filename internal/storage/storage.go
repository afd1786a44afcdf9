// Package storage provides the file-backed cart store.
//
// The whole collection lives in one JSON file. Every operation reads the
// full file, and every mutation rewrites it in full. A Store serializes its
// own operations with a mutex; separate processes (or separate Store values
// on the same path) are not coordinated and the last writer wins.
package storage

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/jacksmith/carts/internal/logger"
	"github.com/jacksmith/carts/internal/model"
	"go.uber.org/zap"
)

// DefaultFileMode is the permission used when the store file is written.
const DefaultFileMode os.FileMode = 0644

// LoadState classifies the content of the store file.
type LoadState string

const (
	LoadOK         LoadState = "ok"
	LoadMissing    LoadState = "missing"
	LoadEmpty      LoadState = "empty"
	LoadCorrupt    LoadState = "corrupt"
	LoadUnreadable LoadState = "unreadable"
)

// LoadResult is the outcome of reading the store file.
// Carts is never nil. Err is set for LoadCorrupt and LoadUnreadable.
type LoadResult struct {
	State LoadState
	Carts []model.Cart
	Err   error
}

// Store provides access to a cart collection stored in a single file.
type Store struct {
	path   string
	indent bool
	perm   os.FileMode
	log    *zap.Logger
	write  func(path string, data []byte, perm os.FileMode) error

	mu sync.Mutex // serializes every read and read-modify-write cycle
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger for store diagnostics.
func WithLogger(log *zap.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// WithIndent makes the store write indented JSON.
func WithIndent(indent bool) Option {
	return func(s *Store) {
		s.indent = indent
	}
}

// WithFileMode sets the permission of the store file.
func WithFileMode(perm os.FileMode) Option {
	return func(s *Store) {
		s.perm = perm
	}
}

// Open returns a Store for the file at path.
// The file is not touched until the first write; a missing file is an
// empty store.
func Open(path string, opts ...Option) *Store {
	s := &Store{
		path:  path,
		perm:  DefaultFileMode,
		log:   logger.Nop(),
		write: writeFileAtomic,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the path of the store file.
func (s *Store) Path() string {
	return s.path
}

// Load reads the store file and reports what it found.
func (s *Store) Load() LoadResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) load() LoadResult {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return LoadResult{State: LoadMissing, Carts: []model.Cart{}}
		}
		return LoadResult{State: LoadUnreadable, Carts: []model.Cart{}, Err: err}
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return LoadResult{State: LoadEmpty, Carts: []model.Cart{}}
	}

	carts, err := model.DecodeCarts(data)
	if err != nil {
		return LoadResult{State: LoadCorrupt, Carts: []model.Cart{}, Err: err}
	}
	return LoadResult{State: LoadOK, Carts: carts}
}

// LoadAll returns every stored cart in insertion order.
// A missing, empty, unreadable or corrupt file yields an empty collection;
// the last two are logged as warnings.
func (s *Store) LoadAll() []model.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadAll()
}

func (s *Store) loadAll() []model.Cart {
	res := s.load()
	switch res.State {
	case LoadMissing, LoadEmpty:
		s.log.Debug("cart store has no data",
			zap.String("path", s.path),
			zap.String("state", string(res.State)))
	case LoadCorrupt, LoadUnreadable:
		s.log.Warn("cart store could not be loaded, treating as empty",
			zap.String("path", s.path),
			zap.String("state", string(res.State)),
			zap.Error(res.Err))
	}
	return res.Carts
}

// CreateCart stores a new empty cart and returns it.
// The new ID is one more than the largest stored ID, or 1.
// Returns an error wrapping model.ErrIDsExhausted, without writing, if no
// further ID can be assigned, and *PersistenceError if the collection
// cannot be written.
func (s *Store) CreateCart() (model.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	carts := s.loadAll()
	id, err := model.NextID(carts)
	if err != nil {
		return model.Cart{}, fmt.Errorf("create cart: %w", err)
	}
	cart := model.NewCart(id)
	carts = append(carts, cart)

	if err := s.persist(carts); err != nil {
		return model.Cart{}, &PersistenceError{Op: "create cart", Path: s.path, Err: err}
	}

	s.log.Info("cart created", zap.Int("cart_id", cart.ID))
	return cart, nil
}

// GetCartByID returns the first cart with the given ID.
// If there is none the error is a *model.NotFound carrying the ID.
func (s *Store) GetCartByID(id int) (model.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := model.FindCart(s.loadAll(), id)
	if !ok {
		return model.Cart{}, model.NewNotFound(id)
	}
	return cart, nil
}

// AddProductToCart adds one unit of productID to the cart with cartID and
// returns the full updated collection.
// An unknown cartID leaves the collection unchanged and is not an error;
// nothing is written in that case.
// Returns *MutationError if the collection cannot be written.
func (s *Store) AddProductToCart(cartID, productID int) ([]model.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	carts, matched := model.AddProductToCarts(s.loadAll(), cartID, productID)
	if !matched {
		s.log.Debug("add product: cart not found, collection unchanged",
			zap.Int("cart_id", cartID),
			zap.Int("product_id", productID))
		return carts, nil
	}

	if err := s.persist(carts); err != nil {
		return nil, &MutationError{CartID: cartID, ProductID: productID, Path: s.path, Err: err}
	}

	cart, _ := model.FindCart(carts, cartID)
	s.log.Info("product added to cart",
		zap.Int("cart_id", cartID),
		zap.Int("product_id", productID),
		zap.Int("quantity", cart.Quantity(productID)))
	return carts, nil
}

// persist replaces the store file with the full collection.
// Must be called with s.mu held.
func (s *Store) persist(carts []model.Cart) error {
	data, err := model.EncodeCarts(carts, s.indent)
	if err != nil {
		return err
	}
	return s.write(s.path, data, s.perm)
}
