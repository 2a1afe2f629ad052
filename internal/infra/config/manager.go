package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/runoshun/stackq/internal/domain"
)

var _ domain.ConfigManager = (*Manager)(nil)

// Manager reads and creates the two stackq config files.
//
// The local file (.stackq.toml) sits in the working directory and overrides
// the global one for a single project. The global file lives under the XDG
// config directory and may be unavailable when no home directory can be
// resolved, in which case its path is empty.
type Manager struct {
	localDir  string
	globalDir string
}

// NewManager returns a Manager for localDir and the default global directory.
func NewManager(localDir string) *Manager {
	return NewManagerWithGlobalDir(localDir, DefaultGlobalConfigDir())
}

// NewManagerWithGlobalDir returns a Manager with an explicit global directory.
func NewManagerWithGlobalDir(localDir, globalDir string) *Manager {
	return &Manager{localDir: localDir, globalDir: globalDir}
}

func (m *Manager) localPath() string {
	return filepath.Join(m.localDir, domain.LocalConfigFileName)
}

func (m *Manager) globalPath() string {
	if m.globalDir == "" {
		return ""
	}
	return filepath.Join(m.globalDir, domain.ConfigFileName)
}

// GetGlobalConfigInfo describes the global file. Path is empty without a global directory.
func (m *Manager) GetGlobalConfigInfo() domain.ConfigInfo {
	path := m.globalPath()
	if path == "" {
		return domain.ConfigInfo{}
	}
	return readInfo(path)
}

// GetLocalConfigInfo describes the local file.
func (m *Manager) GetLocalConfigInfo() domain.ConfigInfo {
	return readInfo(m.localPath())
}

// InitLocalConfig writes the rendered template to the local file.
func (m *Manager) InitLocalConfig(cfg *domain.Config) error {
	return writeTemplate(m.localPath(), cfg)
}

// InitGlobalConfig writes the rendered template to the global file,
// creating its directory first.
func (m *Manager) InitGlobalConfig(cfg *domain.Config) error {
	path := m.globalPath()
	if path == "" {
		return domain.ErrNoConfigDir
	}
	if err := os.MkdirAll(m.globalDir, 0o700); err != nil {
		return err
	}
	return writeTemplate(path, cfg)
}

// readInfo never fails: an unreadable file is reported as missing.
func readInfo(path string) domain.ConfigInfo {
	info := domain.ConfigInfo{Path: path}
	if content, err := os.ReadFile(path); err == nil {
		info.Content = string(content)
		info.Exists = true
	}
	return info
}

func writeTemplate(path string, cfg *domain.Config) error {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return domain.ErrConfigExists
	case !errors.Is(err, fs.ErrNotExist):
		return err
	}
	return os.WriteFile(path, []byte(domain.RenderConfigTemplate(cfg)), 0o600)
}
