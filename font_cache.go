package simplesvg

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// FontCache loads TrueType/OpenType fonts and caches the parsed fonts.
// Families that cannot be found are measured with the embedded Go Regular
// font, so measurement always succeeds. FontCache may be shared between
// goroutines; the faces it returns may not.
type FontCache struct {
	mu       sync.RWMutex
	dirs     []string                  // directories to search for fonts
	fonts    map[string]*opentype.Font // lowercase font name -> parsed font
	fallback *opentype.Font
	scanned  bool
}

// NewFontCache creates a FontCache that searches the OS font directories
// plus extraDirs.
func NewFontCache(extraDirs ...string) *FontCache {
	return NewFontCacheFromDirs(append(systemFontDirs(), extraDirs...)...)
}

// NewFontCacheFromDirs creates a FontCache that searches only dirs.
func NewFontCacheFromDirs(dirs ...string) *FontCache {
	return &FontCache{
		dirs:  dirs,
		fonts: make(map[string]*opentype.Font),
	}
}

var (
	defaultFontCacheOnce sync.Once
	defaultFontCache     *FontCache
)

// DefaultFontCache returns the shared cache over the OS font directories.
func DefaultFontCache() *FontCache {
	defaultFontCacheOnce.Do(func() {
		defaultFontCache = NewFontCache()
	})
	return defaultFontCache
}

// GetMeasureFace returns a new unhinted face for the family at size user
// units. Unknown families resolve to the fallback font. Faces keep glyph
// buffers, so each caller gets its own.
func (fc *FontCache) GetMeasureFace(name string, size float64) (font.Face, error) {
	fc.ensureScanned()

	fc.mu.RLock()
	f := fc.fonts[strings.ToLower(name)]
	fc.mu.RUnlock()

	if f == nil {
		var err error
		if f, err = fc.fallbackFont(); err != nil {
			return nil, err
		}
	}

	// At 72 DPI one point is one pixel, so face units are user units.
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("create face for %q: %w", name, err)
	}
	return face, nil
}

// HasFont reports whether a family was found on disk or loaded explicitly.
func (fc *FontCache) HasFont(name string) bool {
	fc.ensureScanned()
	fc.mu.RLock()
	defer fc.mu.RUnlock()
	_, ok := fc.fonts[strings.ToLower(name)]
	return ok
}

// MeasureString returns the advance width of s in f, in user units.
func (fc *FontCache) MeasureString(s string, f Font) (float64, error) {
	if s == "" || f.Size <= 0 {
		return 0, nil
	}
	face, err := fc.GetMeasureFace(f.Family, f.Size)
	if err != nil {
		return 0, err
	}
	defer face.Close()
	return fixedToFloat(font.MeasureString(face, s)), nil
}

// LoadFontData registers a TrueType/OpenType font from raw bytes.
func (fc *FontCache) LoadFontData(name string, data []byte) error {
	f, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("parse font %q: %w", name, err)
	}
	fc.mu.Lock()
	fc.fonts[strings.ToLower(name)] = f
	fc.registerByFamilyName(f)
	fc.mu.Unlock()
	return nil
}

// LoadFont registers a font file under the given name.
func (fc *FontCache) LoadFont(name, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.Size() > maxFontFileSize {
		return fmt.Errorf("font file too large: %d bytes (max %d)", info.Size(), maxFontFileSize)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return fc.LoadFontData(name, data)
}

func (fc *FontCache) fallbackFont() (*opentype.Font, error) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	if fc.fallback == nil {
		f, err := opentype.Parse(goregular.TTF)
		if err != nil {
			return nil, fmt.Errorf("parse fallback font: %w", err)
		}
		fc.fallback = f
	}
	return fc.fallback, nil
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func (fc *FontCache) ensureScanned() {
	fc.mu.RLock()
	scanned := fc.scanned
	fc.mu.RUnlock()
	if scanned {
		return
	}

	fc.mu.Lock()
	defer fc.mu.Unlock()
	if fc.scanned {
		return
	}
	fc.scanned = true
	for _, dir := range fc.dirs {
		fc.scanDir(dir, 0)
	}
}

// maxFontScanDepth limits recursive directory traversal when scanning for fonts.
const maxFontScanDepth = 3

// maxFontFileSize limits the size of individual font files loaded into memory.
const maxFontFileSize = 20 << 20 // 20 MB

func (fc *FontCache) scanDir(dir string, depth int) {
	if depth > maxFontScanDepth {
		return
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		if entry.IsDir() {
			fc.scanDir(filepath.Join(dir, entry.Name()), depth+1)
			continue
		}
		lower := strings.ToLower(entry.Name())
		ext := filepath.Ext(lower)
		if ext != ".ttf" && ext != ".otf" {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.Size() > maxFontFileSize {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}
		f, err := opentype.Parse(data)
		if err != nil {
			Logger().Debug("skip unreadable font", "path", filepath.Join(dir, entry.Name()), "error", err)
			continue
		}
		fc.fonts[strings.TrimSuffix(lower, ext)] = f
		fc.registerByFamilyName(f)
	}
}

// registerByFamilyName registers f under its family name from the name
// table. Caller holds fc.mu.
func (fc *FontCache) registerByFamilyName(f *opentype.Font) {
	familyName, err := f.Name(nil, sfnt.NameIDFamily)
	if err == nil && familyName != "" {
		fc.fonts[strings.ToLower(familyName)] = f
	}
}

// systemFontDirs returns OS-specific font directories.
func systemFontDirs() []string {
	home, _ := os.UserHomeDir()
	switch runtime.GOOS {
	case "windows":
		windir := os.Getenv("WINDIR")
		if windir == "" {
			windir = `C:\Windows`
		}
		return []string{filepath.Join(windir, "Fonts")}
	case "darwin":
		dirs := []string{"/System/Library/Fonts", "/Library/Fonts"}
		if home != "" {
			dirs = append(dirs, filepath.Join(home, "Library", "Fonts"))
		}
		return dirs
	default: // linux, freebsd, etc.
		dirs := []string{"/usr/share/fonts", "/usr/local/share/fonts"}
		if home != "" {
			dirs = append(dirs, filepath.Join(home, ".local", "share", "fonts"))
		}
		return dirs
	}
}
