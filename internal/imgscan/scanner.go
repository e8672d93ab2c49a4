// Package imgscan walks folders for images and computes their perceptual
// hashes, optionally caching results in sqlite so unchanged files are not
// decoded twice.
package imgscan

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/corona10/goimagehash"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Image holds the perceptual hash and file metadata for one scanned image.
type Image struct {
	Path     string
	Hash     uint64
	FileSize int64
	ModTime  time.Time
}

// Scanner scans folders for images and computes hashes
type Scanner struct {
	workers    int
	cache      *HashCache
	progressFn func(scanned, total int, current string)
}

// Option configures a Scanner
type Option func(*Scanner)

// WithWorkers sets the number of parallel workers
func WithWorkers(n int) Option {
	return func(s *Scanner) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithCache sets a hash cache consulted before decoding each file
func WithCache(c *HashCache) Option {
	return func(s *Scanner) {
		s.cache = c
	}
}

// WithProgress sets a progress callback
func WithProgress(fn func(scanned, total int, current string)) Option {
	return func(s *Scanner) {
		s.progressFn = fn
	}
}

// NewScanner creates a new Scanner
func NewScanner(opts ...Option) *Scanner {
	s := &Scanner{
		workers: 8,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ScanFolder recursively scans a folder and returns hashes for every image
// it could decode. Unreadable or undecodable files are skipped.
func (s *Scanner) ScanFolder(folder string) ([]*Image, error) {
	var paths []string
	err := filepath.Walk(folder, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // Skip errors
		}
		if info.IsDir() {
			return nil
		}
		if IsSupportedImage(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk folder: %w", err)
	}

	if len(paths) == 0 {
		return nil, nil
	}

	var (
		results   []*Image
		resultsMu sync.Mutex
		wg        sync.WaitGroup
		scanned   int64
		total     = len(paths)
	)

	work := make(chan string, len(paths))
	for _, p := range paths {
		work <- p
	}
	close(work)

	for i := 0; i < s.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range work {
				img, err := s.hashImage(path)
				if err != nil {
					// Skip failed images silently
					atomic.AddInt64(&scanned, 1)
					continue
				}

				resultsMu.Lock()
				results = append(results, img)
				resultsMu.Unlock()

				n := atomic.AddInt64(&scanned, 1)
				if s.progressFn != nil {
					s.progressFn(int(n), total, path)
				}
			}
		}()
	}

	wg.Wait()

	return results, nil
}

// hashImage returns the perceptual hash for one file, via the cache when
// the file's size and mtime still match the cached row.
func (s *Scanner) hashImage(path string) (*Image, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	img := &Image{
		Path:     path,
		FileSize: stat.Size(),
		ModTime:  stat.ModTime(),
	}

	if s.cache != nil {
		if hash, ok := s.cache.Get(path, img.FileSize, img.ModTime); ok {
			img.Hash = hash
			return img, nil
		}
	}

	hash, err := hashFile(path)
	if err != nil {
		return nil, err
	}
	img.Hash = hash

	if s.cache != nil {
		// Cache failures only cost a re-hash next run.
		_ = s.cache.Put(path, img.FileSize, img.ModTime, hash)
	}

	return img, nil
}

// hashFile decodes an image file and computes its perceptual hash
func hashFile(path string) (uint64, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return 0, fmt.Errorf("failed to decode image: %w", err)
	}

	hash, err := goimagehash.PerceptionHash(img)
	if err != nil {
		return 0, fmt.Errorf("failed to compute hash: %w", err)
	}

	return hash.GetHash(), nil
}

// IsSupportedImage checks if a file is a supported image format
func IsSupportedImage(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp", ".tiff", ".tif":
		return true
	default:
		return false
	}
}
