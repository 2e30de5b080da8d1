package altsplice

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SafeMode restricts what the loader may read, ascending in strictness.
type SafeMode int

const (
	// SafeModeUnsafe places no restriction on source paths.
	SafeModeUnsafe SafeMode = iota
	// SafeModeSafe confines source paths to the primary document's base
	// directory. Server and Secure inherit the same loader policy.
	SafeModeSafe
	SafeModeServer
	SafeModeSecure
)

// String returns the string representation of SafeMode.
func (m SafeMode) String() string {
	switch m {
	case SafeModeUnsafe:
		return "unsafe"
	case SafeModeSafe:
		return "safe"
	case SafeModeServer:
		return "server"
	case SafeModeSecure:
		return "secure"
	default:
		return "unknown"
	}
}

// ParseSafeMode converts a config-file safe mode name to its SafeMode.
func ParseSafeMode(s string) (SafeMode, error) {
	switch s {
	case "", "unsafe":
		return SafeModeUnsafe, nil
	case "safe":
		return SafeModeSafe, nil
	case "server":
		return SafeModeServer, nil
	case "secure":
		return SafeModeSecure, nil
	default:
		return SafeModeUnsafe, fmt.Errorf("unknown safe mode %q", s)
	}
}

// InheritedConfig is the snapshot of the primary document's parse settings
// handed to every alternative example, so the external file parses under the
// same semantic rules as the primary document.
type InheritedConfig struct {
	// Attributes substitutes `{name}` occurrences in the external source
	// before parsing. Undefined names pass through untouched.
	Attributes map[string]string
	SafeMode   SafeMode
	// Backend selects the fragment renderer: "html5" or "markdown".
	// Empty means html5.
	Backend string
	DocType string
	// Sourcemap controls whether loaded blocks carry source line numbers.
	Sourcemap bool
	// BaseDir anchors relative source paths and bounds them at
	// SafeModeSafe and above.
	BaseDir string
	OutDir  string
}

// DefaultConfig returns a fresh config snapshot with safe-mode loading, the
// html5 backend and sourcemap enabled.
func DefaultConfig() *InheritedConfig {
	return &InheritedConfig{
		Attributes: map[string]string{},
		SafeMode:   SafeModeSafe,
		Backend:    "html5",
		DocType:    "article",
		Sourcemap:  true,
		BaseDir:    ".",
	}
}

type configFile struct {
	Attributes map[string]string `yaml:"attributes"`
	SafeMode   string            `yaml:"safe_mode"`
	Backend    string            `yaml:"backend"`
	DocType    string            `yaml:"doctype"`
	Sourcemap  *bool             `yaml:"sourcemap"`
	BaseDir    string            `yaml:"base_dir"`
	OutDir     string            `yaml:"out_dir"`
}

// LoadConfig reads an InheritedConfig snapshot from a YAML file. Missing
// keys keep their DefaultConfig values.
func LoadConfig(path string) (*InheritedConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var raw configFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	for k, v := range raw.Attributes {
		cfg.Attributes[k] = v
	}
	if raw.SafeMode != "" {
		mode, err := ParseSafeMode(raw.SafeMode)
		if err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
		cfg.SafeMode = mode
	}
	if raw.Backend != "" {
		cfg.Backend = raw.Backend
	}
	if raw.DocType != "" {
		cfg.DocType = raw.DocType
	}
	if raw.Sourcemap != nil {
		cfg.Sourcemap = *raw.Sourcemap
	}
	if raw.BaseDir != "" {
		cfg.BaseDir = raw.BaseDir
	}
	if raw.OutDir != "" {
		cfg.OutDir = raw.OutDir
	}
	return cfg, nil
}
