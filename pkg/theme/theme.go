// Package theme keeps the console's mode and palette selection persisted
// alongside the session.
package theme

import (
	"context"
	"sync"

	"github.com/example/martadmin/pkg/store"
)

const (
	ModeLight = "light"
	ModeDark  = "dark"

	DefaultPalette = "emerald"
)

type Store struct {
	mu      sync.Mutex
	kv      store.KV
	mode    string
	palette string
}

func New(kv store.KV) *Store {
	return &Store{kv: kv, mode: ModeLight, palette: DefaultPalette}
}

// Restore loads the persisted selection, keeping defaults for missing or
// unrecognised values.
func (s *Store) Restore(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if mode, err := s.kv.Get(ctx, store.KeyTheme); err == nil {
		if mode == ModeLight || mode == ModeDark {
			s.mode = mode
		}
	}
	if palette, err := s.kv.Get(ctx, store.KeyPalette); err == nil && palette != "" {
		s.palette = palette
	}
}

func (s *Store) Mode() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

func (s *Store) Palette() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.palette
}

func (s *Store) SetMode(ctx context.Context, mode string) error {
	if mode != ModeLight && mode != ModeDark {
		mode = ModeLight
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = mode
	return s.kv.Set(ctx, store.KeyTheme, mode)
}

func (s *Store) SetPalette(ctx context.Context, palette string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.palette = palette
	return s.kv.Set(ctx, store.KeyPalette, palette)
}
