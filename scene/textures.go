package scene

import (
	"log"

	"github.com/pkg/errors"

	"github.com/cs330/deskscene/config"
)

// TextureBackend owns GPU texture objects.
type TextureBackend interface {
	// Upload creates a 2d texture with repeat wrapping, linear filtering and mipmaps.
	Upload(img *TextureImage) (handle uint32, err error)
	// Bind attaches handle to texture unit.
	Bind(unit int, handle uint32)
	Delete(handle uint32)
}

type TextureEntry struct {
	Tag    string
	Handle uint32
}

// TextureRegistry keeps loaded textures in load order.
// The position of an entry is its slot and the texture unit it is bound to.
type TextureRegistry struct {
	backend  TextureBackend
	capacity int
	entries  []TextureEntry
}

func NewTextureRegistry(backend TextureBackend, capacity int) *TextureRegistry {
	if capacity < 0 {
		capacity = 0
	}
	return &TextureRegistry{
		backend:  backend,
		capacity: capacity,
		entries:  make([]TextureEntry, 0, capacity),
	}
}

// Load decodes the image at path, uploads it and registers it under tag.
// On failure nothing is registered.
func (r *TextureRegistry) Load(path, tag string) error {
	if len(r.entries) >= r.capacity {
		return errors.Wrapf(ErrCapacityExceeded, "texture %q: all %d slots used", tag, r.capacity)
	}

	img, err := DecodeTexture(path)
	if err != nil {
		return errors.Wrapf(err, "texture %q", tag)
	}

	handle, err := r.backend.Upload(img)
	if err != nil {
		return errors.Wrapf(err, "upload texture %q", tag)
	}

	r.entries = append(r.entries, TextureEntry{Tag: tag, Handle: handle})
	log.Printf("Loaded texture %q from %q: %dx%d, %d channels", tag, path, img.Width, img.Height, img.Channels)
	return nil
}

// LoadAll loads every texture of the scene, logging and skipping failures.
// Returns the number of textures loaded.
func (r *TextureRegistry) LoadAll(desc *config.Scene) int {
	loaded := 0
	for _, t := range desc.Textures {
		if err := r.Load(desc.TexturePath(t), t.Tag); err != nil {
			log.Printf("ERROR: %v", err)
			continue
		}
		loaded++
	}
	return loaded
}

// BindAll binds entry i to texture unit i.
func (r *TextureRegistry) BindAll() {
	for i, e := range r.entries {
		r.backend.Bind(i, e.Handle)
	}
}

// FindSlot returns the slot of the first entry tagged tag, or -1.
func (r *TextureRegistry) FindSlot(tag string) int {
	for i, e := range r.entries {
		if e.Tag == tag {
			return i
		}
	}
	return -1
}

// FindHandle returns the GPU handle of the first entry tagged tag, or -1.
func (r *TextureRegistry) FindHandle(tag string) int64 {
	if slot := r.FindSlot(tag); slot >= 0 {
		return int64(r.entries[slot].Handle)
	}
	return -1
}

func (r *TextureRegistry) Lookup(tag string) (slot int, err error) {
	if slot = r.FindSlot(tag); slot < 0 {
		return -1, errors.Wrapf(ErrNotFound, "texture %q", tag)
	}
	return slot, nil
}

func (r *TextureRegistry) Len() int      { return len(r.entries) }
func (r *TextureRegistry) Capacity() int { return r.capacity }

func (r *TextureRegistry) Entries() []TextureEntry {
	return append([]TextureEntry(nil), r.entries...)
}

// Destroy releases every GPU texture. The registry is empty afterwards.
func (r *TextureRegistry) Destroy() {
	for _, e := range r.entries {
		r.backend.Delete(e.Handle)
	}
	r.entries = r.entries[:0]
}
