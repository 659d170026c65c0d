// Package watch keeps a catalog current while font directories change on
// disk. Change events are debounced and coalesced into one wholesale
// rebuild; readers always observe either the old or the new catalog, never
// a partially built one.
package watch

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/solarbyte-dev/fuzzyfont/internal/catalog"
	"github.com/solarbyte-dev/fuzzyfont/internal/classify"
	"github.com/solarbyte-dev/fuzzyfont/internal/log"
	"github.com/solarbyte-dev/fuzzyfont/pkg/types"
)

// RecordSource produces the raw records a rebuild starts from. The
// discovery scanner satisfies this.
type RecordSource interface {
	Records() ([]types.FontRecord, error)
}

// CatalogUpdate is one completed rebuild delivered to the consumer.
type CatalogUpdate struct {
	Catalog   *catalog.Catalog
	Trigger   string
	Timestamp time.Time
}

// Watcher monitors font directories and rebuilds the catalog when font
// files change.
type Watcher struct {
	source     RecordSource
	classifier *classify.Classifier
	debounce   time.Duration

	directories []string
	updates     chan CatalogUpdate
	stopChan    chan struct{}
	fsWatcher   *fsnotify.Watcher

	mutex   sync.RWMutex
	running bool
}

// New creates a watcher that rebuilds from source after changes settle for
// the debounce period.
func New(source RecordSource, classifier *classify.Classifier, debounce time.Duration) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if debounce <= 0 {
		debounce = 2 * time.Second
	}
	return &Watcher{
		source:     source,
		classifier: classifier,
		debounce:   debounce,
		updates:    make(chan CatalogUpdate, 4),
		stopChan:   make(chan struct{}),
		fsWatcher:  fsWatcher,
	}, nil
}

// AddDirectory registers a directory with the underlying fsnotify watcher.
func (w *Watcher) AddDirectory(dir string) error {
	if err := w.fsWatcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}

	w.mutex.Lock()
	found := false
	for _, existing := range w.directories {
		if existing == dir {
			found = true
			break
		}
	}
	if !found {
		w.directories = append(w.directories, dir)
	}
	w.mutex.Unlock()

	log.LogWithFields(log.F("directory", dir)).Info("Watching directory")
	return nil
}

// Directories returns the watched directories.
func (w *Watcher) Directories() []string {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	out := make([]string, len(w.directories))
	copy(out, w.directories)
	return out
}

// Updates delivers completed catalog rebuilds.
func (w *Watcher) Updates() <-chan CatalogUpdate {
	return w.updates
}

// Start begins watching. Events for non-font files are ignored; bursts of
// font changes collapse into a single rebuild after the debounce period.
func (w *Watcher) Start() error {
	w.mutex.Lock()
	if w.running {
		w.mutex.Unlock()
		return fmt.Errorf("watcher already running")
	}
	w.running = true
	w.mutex.Unlock()

	go w.loop()
	return nil
}

func (w *Watcher) loop() {
	var timer *time.Timer
	var timerC <-chan time.Time
	var trigger string

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !relevantEvent(event) {
				continue
			}
			log.LogWithFields(log.F("file", event.Name), log.F("op", event.Op.String())).Debugf("Font change detected")
			trigger = event.Name
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}

		case <-timerC:
			timer = nil
			timerC = nil
			w.rebuild(trigger)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.LogWithFields(log.F("error", err)).Error("fsnotify watcher error")

		case <-w.stopChan:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

func (w *Watcher) rebuild(trigger string) {
	records, err := w.source.Records()
	if err != nil {
		log.LogWithError(err).Error("Rebuild discovery failed")
		return
	}
	built, err := catalog.Build(records, w.classifier)
	if err != nil {
		log.LogWithError(err).Error("Catalog rebuild failed")
		return
	}

	update := CatalogUpdate{Catalog: built, Trigger: trigger, Timestamp: time.Now()}
	select {
	case w.updates <- update:
	default:
		log.LogWithFields(log.F("trigger", trigger)).Warn("Update channel is full, dropped rebuild")
	}
}

// Stop halts watching and releases the fsnotify watcher.
func (w *Watcher) Stop() {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if !w.running {
		return
	}
	w.running = false
	close(w.stopChan)
	if err := w.fsWatcher.Close(); err != nil {
		log.LogWithFields(log.F("error", err)).Error("Error closing fsnotify watcher")
	}
}

// relevantEvent filters to create/write/remove/rename of font files.
func relevantEvent(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	switch strings.ToLower(filepath.Ext(event.Name)) {
	case ".ttf", ".otf", ".ttc", ".otc":
		return true
	}
	return false
}
