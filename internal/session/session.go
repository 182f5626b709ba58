// Package session holds the single-window UI state and the event dispatch
// that drives it. All events arrive sequentially from the Fyne event loop;
// the only deferred work is the one-shot status-clear timer.
package session

import (
	"os"
	"time"

	"github.com/rs/zerolog"

	"BF2SaveSwitcher/internal/config"
	"BF2SaveSwitcher/internal/savefile"
)

const statusClearDelay = 2500 * time.Millisecond

// View is what the session needs from the widget layer. Implementations
// must tolerate ClearStatus arriving from a timer goroutine.
type View interface {
	SetFolderText(path string)
	SetFiles(files []string, selected string)
	SetPin(on bool)
	SetStatus(text string, ok bool)
	ClearStatus()
}

// Event is the closed set of UI inputs consumed by Dispatch.
type Event interface{ isEvent() }

type Started struct{}                  // window shown, restore config
type FolderTyped struct{ Path string } // user edited the folder entry
type FolderPicked struct{ Path string }
type FileSelected struct{ Name string }
type PinToggled struct{ On bool }
type ConfirmPressed struct{}

func (Started) isEvent()        {}
func (FolderTyped) isEvent()    {}
func (FolderPicked) isEvent()   {}
func (FileSelected) isEvent()   {}
func (PinToggled) isEvent()     {}
func (ConfirmPressed) isEvent() {}

// Session owns the mutable UI state for one window, from startup to close.
type Session struct {
	view     View
	files    *savefile.Manager
	store    *config.Store
	applyPin func(on bool)
	log      zerolog.Logger

	folder   string
	selected string
	pin      bool

	statusDelay time.Duration
	clearTimer  *time.Timer
}

func New(view View, files *savefile.Manager, store *config.Store, applyPin func(bool), log zerolog.Logger) *Session {
	return &Session{
		view:        view,
		files:       files,
		store:       store,
		applyPin:    applyPin,
		log:         log,
		statusDelay: statusClearDelay,
	}
}

// Dispatch handles one UI event. Events are never concurrent; the Fyne
// loop delivers them one at a time.
func (s *Session) Dispatch(ev Event) {
	switch ev := ev.(type) {
	case Started:
		s.start()
	case FolderTyped:
		s.folder = ev.Path
		s.populate()
	case FolderPicked:
		s.folder = ev.Path
		s.view.SetFolderText(ev.Path)
		s.populate()
	case FileSelected:
		s.selected = ev.Name
	case PinToggled:
		s.pin = ev.On
		s.applyPin(ev.On)
	case ConfirmPressed:
		s.confirm()
	}
}

func (s *Session) start() {
	if wd, err := os.Getwd(); err == nil {
		s.folder = wd
	}

	cfg, ok := s.store.Load()
	if ok {
		if cfg.Directory != "" {
			s.folder = cfg.Directory
		}
		s.selected = cfg.File
	}

	s.view.SetFolderText(s.folder)
	s.populate()

	s.pin = cfg.Pin
	s.view.SetPin(s.pin)
	s.applyPin(s.pin)

	s.log.Info().Str("folder", s.folder).Bool("pin", s.pin).Msg("session started")
}

// populate rebuilds the dropdown for the current folder. The previous
// selection survives only if it is still listed; otherwise the first
// entry is selected.
func (s *Session) populate() {
	files := s.files.SortedList(s.folder)

	selected := ""
	if len(files) > 0 {
		selected = files[0]
		for _, f := range files {
			if f == s.selected {
				selected = f
				break
			}
		}
	}
	s.selected = selected
	s.view.SetFiles(files, selected)
}

// confirm runs the overwrite, saves the config regardless of outcome, and
// shows a transient status. A confirm arriving before the previous status
// cleared resets the pending timer instead of stacking another one.
func (s *Session) confirm() {
	err := s.files.Overwrite(s.folder, s.selected)

	s.store.Save(config.Config{Directory: s.folder, File: s.selected, Pin: s.pin})

	if err != nil {
		s.log.Warn().Err(err).Str("folder", s.folder).Str("file", s.selected).Msg("overwrite failed")
		s.view.SetStatus("Failed", false)
	} else {
		s.view.SetStatus("Success!", true)
	}

	if s.clearTimer != nil {
		s.clearTimer.Stop()
	}
	s.clearTimer = time.AfterFunc(s.statusDelay, s.view.ClearStatus)
}

// Close invalidates any pending status clear. Called when the window goes
// away.
func (s *Session) Close() {
	if s.clearTimer != nil {
		s.clearTimer.Stop()
	}
}
