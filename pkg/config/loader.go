package config

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// DefaultDebounce is the delay between the last file event and a reload.
const DefaultDebounce = 100 * time.Millisecond

// Loader loads a settings file and reloads it when it changes.
type Loader struct {
	path     string
	logger   *slog.Logger
	debounce time.Duration

	mu       sync.RWMutex
	settings Settings
	onChange []func(Settings)

	watcher *fsnotify.Watcher
	ctx     context.Context
	cancel  context.CancelFunc
	done    chan struct{}
	errChan chan error
}

// NewLoader creates a loader for path. A nil logger disables logging.
func NewLoader(path string, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Loader{
		path:     path,
		logger:   logger,
		debounce: DefaultDebounce,
		settings: Default(),
		ctx:      ctx,
		cancel:   cancel,
		errChan:  make(chan error, 1),
	}
}

// SetDebounce changes the reload delay. It must be called before Watch.
func (l *Loader) SetDebounce(d time.Duration) {
	l.debounce = d
}

// Load reads, decodes and validates the settings file. A missing file
// yields the defaults.
func (l *Loader) Load() (Settings, error) {
	s, err := LoadFile(l.path)
	if err != nil {
		return Settings{}, err
	}
	l.mu.Lock()
	l.settings = s
	l.mu.Unlock()
	return s.Clone(), nil
}

// Settings returns the last successfully loaded settings.
func (l *Loader) Settings() Settings {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.settings.Clone()
}

// OnChange registers a callback invoked with every reloaded settings value.
func (l *Loader) OnChange(cb func(Settings)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onChange = append(l.onChange, cb)
}

// Errors returns reload errors. Errors are dropped while the channel is full.
func (l *Loader) Errors() <-chan error {
	return l.errChan
}

// Watch starts reloading the settings when the file is written or
// replaced. The containing directory is watched so that editors that
// rename over the file are handled.
func (l *Loader) Watch() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(l.path)); err != nil {
		watcher.Close()
		return fmt.Errorf("watch directory: %w", err)
	}
	l.watcher = watcher
	l.done = make(chan struct{})

	go l.watchLoop()
	return nil
}

func (l *Loader) watchLoop() {
	defer close(l.done)

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-l.ctx.Done():
			return

		case event, ok := <-l.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != filepath.Base(l.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(l.debounce, l.reload)

		case err, ok := <-l.watcher.Errors:
			if !ok {
				return
			}
			l.report(err)
		}
	}
}

func (l *Loader) reload() {
	if l.ctx.Err() != nil {
		return
	}
	s, err := LoadFile(l.path)
	if err != nil {
		l.logger.Warn("settings reload failed", "path", l.path, "error", err)
		l.report(fmt.Errorf("reload settings: %w", err))
		return
	}

	l.mu.Lock()
	l.settings = s
	callbacks := append([]func(Settings){}, l.onChange...)
	l.mu.Unlock()

	l.logger.Info("settings reloaded", "path", l.path)
	for _, cb := range callbacks {
		cb(s.Clone())
	}
}

func (l *Loader) report(err error) {
	select {
	case l.errChan <- err:
	default:
	}
}

// Close stops watching.
func (l *Loader) Close() error {
	l.cancel()
	if l.watcher == nil {
		return nil
	}
	err := l.watcher.Close()
	<-l.done
	return err
}

// LoadFile decodes and validates the settings file at path. The format is
// chosen by extension: .yaml/.yml, .toml or .json. A missing file yields
// the defaults.
func LoadFile(path string) (Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}

	if err := Decode(data, formatOf(path), &s); err != nil {
		return Settings{}, err
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	if err := ValidateSchema(&s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Format is a settings file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

func formatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return ""
	}
}

// Decode decodes data over s. Fields absent from data keep their value.
func Decode(data []byte, format Format, s *Settings) error {
	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(data), s); err != nil {
			return fmt.Errorf("decode TOML: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, s); err != nil {
			return fmt.Errorf("decode JSON: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, s); err != nil {
			return fmt.Errorf("decode YAML: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return nil
}

// Encode encodes s in the given format.
func Encode(s *Settings, format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(s); err != nil {
			return nil, fmt.Errorf("encode TOML: %w", err)
		}
		return buf.Bytes(), nil
	case FormatJSON:
		return json.MarshalIndent(s, "", "  ")
	case FormatYAML:
		return yaml.Marshal(s)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// SaveFile writes s to path in the format given by its extension.
func SaveFile(s *Settings, path string) error {
	data, err := Encode(s, formatOf(path))
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}
