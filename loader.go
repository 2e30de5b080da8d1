package altsplice

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/riverfjs/altsplice-go/internal/parser"
)

var (
	// ErrPathEscapesBase reports a source path resolving outside the base
	// directory while the safe mode forbids that.
	ErrPathEscapesBase = errors.New("alternative example path escapes base directory")
	// ErrUnreadableSource reports a source file that could not be read.
	ErrUnreadableSource = errors.New("unreadable alternative example source")
)

// attribute references like {product-version}
var attrRef = regexp.MustCompile(`\{([A-Za-z][A-Za-z0-9_-]*)\}`)

// Load reads and parses the external file as a standalone document under the
// inherited config. It performs no shape checks; that is Validate's job.
func Load(sourcePath string, cfg *InheritedConfig) (*Document, error) {
	return load(sourcePath, cfg, defaultBuildOptions())
}

func load(sourcePath string, cfg *InheritedConfig, opts *BuildOptions) (*Document, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	raw, err := readSource(sourcePath, cfg, opts)
	if err != nil {
		return nil, err
	}
	src := substituteAttributes(string(raw), cfg.Attributes)
	return parser.Parse([]byte(src), sourcePath, cfg.Sourcemap), nil
}

func readSource(sourcePath string, cfg *InheritedConfig, opts *BuildOptions) ([]byte, error) {
	if opts.FS != nil {
		resolved, err := resolveFSPath(sourcePath, cfg)
		if err != nil {
			return nil, err
		}
		data, err := fs.ReadFile(opts.FS, resolved)
		if err != nil {
			return nil, fmt.Errorf("%w %s: %v", ErrUnreadableSource, sourcePath, err)
		}
		return data, nil
	}

	resolved, err := resolveOSPath(sourcePath, cfg)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrUnreadableSource, sourcePath, err)
	}
	return data, nil
}

// resolveOSPath anchors relative paths at the base directory and, at
// SafeModeSafe and above, refuses results outside it.
func resolveOSPath(sourcePath string, cfg *InheritedConfig) (string, error) {
	resolved := sourcePath
	if !filepath.IsAbs(resolved) {
		resolved = filepath.Join(cfg.BaseDir, resolved)
	}
	resolved = filepath.Clean(resolved)

	if cfg.SafeMode >= SafeModeSafe {
		base := filepath.Clean(cfg.BaseDir)
		rel, err := filepath.Rel(base, resolved)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return "", fmt.Errorf("%w: %s", ErrPathEscapesBase, sourcePath)
		}
	}
	return resolved, nil
}

// resolveFSPath is the fs.FS variant: slash paths rooted inside the
// filesystem, never absolute.
func resolveFSPath(sourcePath string, cfg *InheritedConfig) (string, error) {
	p := filepath.ToSlash(sourcePath)
	if path.IsAbs(p) {
		return "", fmt.Errorf("%w: %s", ErrPathEscapesBase, sourcePath)
	}
	base := path.Clean(filepath.ToSlash(cfg.BaseDir))
	resolved := path.Join(base, p)
	if cfg.SafeMode >= SafeModeSafe && escapesFSBase(base, resolved) {
		return "", fmt.Errorf("%w: %s", ErrPathEscapesBase, sourcePath)
	}
	return resolved, nil
}

func escapesFSBase(base, resolved string) bool {
	if base == "." || base == "" {
		return resolved == ".." || strings.HasPrefix(resolved, "../")
	}
	return resolved != base && !strings.HasPrefix(resolved, base+"/")
}

// substituteAttributes replaces {name} references from the inherited
// attribute map. Unknown names are left as written.
func substituteAttributes(src string, attrs map[string]string) string {
	if len(attrs) == 0 {
		return src
	}
	return attrRef.ReplaceAllStringFunc(src, func(ref string) string {
		name := ref[1 : len(ref)-1]
		if v, ok := attrs[name]; ok {
			return v
		}
		return ref
	})
}
