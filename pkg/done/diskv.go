package done

import (
	"encoding/json"
	"errors"
	"io/fs"

	"github.com/peterbourgon/diskv/v3"
)

// overlayKey is the single storage key holding the serialized mapping.
const overlayKey = "completed"

// DiskvStore persists the overlay mapping as one JSON document under a
// single diskv key. Every Save rewrites the whole mapping.
type DiskvStore struct {
	d        *diskv.Diskv
	basePath string
}

// NewDiskvStore opens (or creates on first write) the overlay database
// rooted at basePath.
func NewDiskvStore(basePath string) *DiskvStore {
	return &DiskvStore{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		basePath: basePath,
	}
}

// BasePath exposes the database root, used by the watcher.
func (s *DiskvStore) BasePath() string { return s.basePath }

// Load reads the stored mapping. A missing key is an empty mapping, not
// an error; malformed content is reported so the caller can degrade.
func (s *DiskvStore) Load() (map[string]bool, error) {
	data, err := s.d.Read(overlayKey)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return make(map[string]bool), nil
		}
		return nil, err
	}
	flags := make(map[string]bool)
	if err := json.Unmarshal(data, &flags); err != nil {
		return nil, err
	}
	return flags, nil
}

// Save rewrites the full mapping.
func (s *DiskvStore) Save(flags map[string]bool) error {
	data, err := json.Marshal(flags)
	if err != nil {
		return err
	}
	return s.d.Write(overlayKey, data)
}

var _ Store = (*DiskvStore)(nil)
