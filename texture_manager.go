package phaser

import (
	"errors"

	"github.com/sshyran/phaser/cache"
)

// ErrEmptyKey is returned when registering a texture under an empty key.
var ErrEmptyKey = errors.New("phaser: empty texture key")

// TextureManager stores baked render textures under string keys for later
// lookup. Registration is always explicit: the render-to-texture core
// carries a texture's key as opaque metadata and never registers anything
// itself.
//
// TextureManager is safe for concurrent use.
type TextureManager struct {
	store *cache.Store[string, *RenderTexture]
}

// NewTextureManager creates an empty manager.
func NewTextureManager() *TextureManager {
	return &TextureManager{store: cache.NewStringKeyed[*RenderTexture]()}
}

// Add registers rt under key, replacing any previous entry. When key is
// empty, rt's own key is used; if both are empty Add returns ErrEmptyKey.
func (m *TextureManager) Add(key string, rt *RenderTexture) error {
	if key == "" && rt != nil {
		key = rt.Key()
	}
	if key == "" {
		return ErrEmptyKey
	}
	m.store.Put(key, rt)
	Logger().Debug("texture registered", "key", key)
	return nil
}

// Get returns the texture registered under key, or nil.
func (m *TextureManager) Get(key string) *RenderTexture {
	rt, _ := m.store.Get(key)
	return rt
}

// Remove unregisters key, reporting whether it was present. The texture is
// not destroyed; its owner decides that.
func (m *TextureManager) Remove(key string) bool {
	return m.store.Delete(key)
}

// Len returns the number of registered textures.
func (m *TextureManager) Len() int { return m.store.Len() }

// Stats returns cumulative lookup statistics.
func (m *TextureManager) Stats() cache.Stats { return m.store.Stats() }
