package codec

import (
	"sync"

	"github.com/stackcanvas/image-editor/internal/editor"
)

// BufferCache provides thread-safe caching of decoded raster buffers to
// avoid redundant disk reads when the same source image backs several
// edit sessions or preview listings.
//
// Buffers are keyed by the exact path string passed to Load; different
// spellings of the same path produce separate entries. Cached buffers
// stay in memory until Evict or Clear is called. Because the editor
// treats buffers as immutable, handing the same cached buffer to
// multiple sessions is safe.
type BufferCache struct {
	mu      sync.RWMutex
	buffers map[string]*editor.RasterBuffer
}

// NewBufferCache creates an empty cache ready for concurrent use.
func NewBufferCache() *BufferCache {
	return &BufferCache{
		buffers: make(map[string]*editor.RasterBuffer),
	}
}

// Load returns the cached buffer for path, decoding it from disk on the
// first request.
func (c *BufferCache) Load(path string) (*editor.RasterBuffer, error) {
	c.mu.RLock()
	if buf, ok := c.buffers[path]; ok {
		c.mu.RUnlock()
		return buf, nil
	}
	c.mu.RUnlock()

	buf, err := Open(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.buffers[path] = buf
	c.mu.Unlock()

	return buf, nil
}

// Evict removes a single entry; a missing path is a no-op.
func (c *BufferCache) Evict(path string) {
	c.mu.Lock()
	delete(c.buffers, path)
	c.mu.Unlock()
}

// Clear drops every cached buffer, freeing the associated memory.
func (c *BufferCache) Clear() {
	c.mu.Lock()
	c.buffers = make(map[string]*editor.RasterBuffer)
	c.mu.Unlock()
}
