package canvas

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"sync"
)

// Cache provides thread-safe caching of decoded background images so
// repeated tool calls against the same canvas avoid redundant disk reads.
//
// Images are keyed by the exact path string; they stay cached until Evict or
// Clear. All methods are safe for concurrent use.
type Cache struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewCache creates an empty, ready-to-use cache.
func NewCache() *Cache {
	return &Cache{images: make(map[string]image.Image)}
}

// Load returns the decoded image at path, reading from disk only on the
// first request. Supported formats are PNG, JPEG, and GIF.
func (c *Cache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()

	return img, nil
}

// Evict removes a single image from the cache.
func (c *Cache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// Clear removes all cached images.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]image.Image)
	c.mu.Unlock()
}

// Info describes a loaded background canvas.
type Info struct {
	Path   string `json:"path"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// LoadInfo loads (or fetches from cache) the image at path and reports its
// dimensions. The editor uses this to establish the layer coordinate space.
func LoadInfo(c *Cache, path string) (*Info, error) {
	img, err := c.Load(path)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	return &Info{Path: path, Width: b.Dx(), Height: b.Dy()}, nil
}
