// Package savefile lists candidate save files in a folder and copies the
// chosen one over the fixed target slot.
package savefile

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"BF2SaveSwitcher/internal/natsort"
)

const (
	// Prefix is the literal filename prefix a save must carry to be listed.
	Prefix = "bf2savefile"

	// TargetName is the fixed slot the game loads from.
	TargetName = "bf2savefile.sav"
)

type Manager struct {
	log zerolog.Logger
}

func New(log zerolog.Logger) *Manager {
	return &Manager{log: log}
}

// List returns the names of regular files in folder whose name starts with
// Prefix. A missing, unreadable or non-directory folder yields an empty
// list; directories and symlinks inside it are skipped.
func (m *Manager) List(folder string) []string {
	info, err := os.Stat(folder)
	if err != nil || !info.IsDir() {
		return nil
	}

	entries, err := os.ReadDir(folder)
	if err != nil {
		m.log.Debug().Err(err).Str("folder", folder).Msg("folder unreadable")
		return nil
	}

	var files []string
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		if !strings.HasPrefix(e.Name(), Prefix) {
			continue
		}
		files = append(files, e.Name())
	}
	return files
}

// SortedList is List in natural order, recomputed from scratch on every
// call.
func (m *Manager) SortedList(folder string) []string {
	files := m.List(folder)
	sort.SliceStable(files, func(i, j int) bool {
		return natsort.Less(files[i], files[j])
	})
	return files
}

// Overwrite copies folder/selected over folder/TargetName. An empty
// selection or a missing source fails with an error satisfying
// errors.Is(err, fs.ErrNotExist) and leaves the target untouched. The copy
// is a plain truncate-and-write; there is no temp-file rename step.
func (m *Manager) Overwrite(folder, selected string) error {
	if selected == "" {
		return fmt.Errorf("no save selected: %w", fs.ErrNotExist)
	}

	src := filepath.Join(folder, selected)
	dst := filepath.Join(folder, TargetName)

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer in.Close()

	// The target slot itself carries the prefix and shows up in the list;
	// creating dst would truncate the source we just opened.
	srcInfo, err := in.Stat()
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}
	if dstInfo, serr := os.Stat(dst); serr == nil && os.SameFile(srcInfo, dstInfo) {
		return fmt.Errorf("%q is already the target slot", selected)
	}

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create target: %w", err)
	}

	_, err = io.Copy(out, in)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("copy %q: %w", selected, err)
	}

	m.log.Info().Str("source", selected).Str("target", dst).Msg("save overwritten")
	return nil
}
