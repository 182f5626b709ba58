package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	return NewStoreAt(filepath.Join(t.TempDir(), "config.txt"), zerolog.Nop())
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{
			name: "plain ascii",
			cfg:  Config{Directory: `C:\Games\BF2\saves`, File: "bf2savefile3.sav", Pin: true},
		},
		{
			name: "non ascii text",
			cfg:  Config{Directory: "/home/björn/spielstände", File: "bf2savefile_übung.sav", Pin: false},
		},
		{
			name: "zero values",
			cfg:  Config{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStore(t)
			s.Save(tt.cfg)

			got, ok := s.Load()
			require.True(t, ok)
			assert.Equal(t, tt.cfg, got)
		})
	}
}

func TestLoadAbsentFile(t *testing.T) {
	_, ok := newStore(t).Load()
	assert.False(t, ok)
}

func TestLoadIgnoresUnknownAndMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.txt")
	content := "junk line\n" +
		"directory=/saves\n" +
		"color=blue\n" +
		"pin=yes\n" + // anything but "1" means false
		"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, ok := NewStoreAt(path, zerolog.Nop()).Load()
	require.True(t, ok)
	assert.Equal(t, Config{Directory: "/saves"}, cfg)
}

func TestSaveOverwritesWholesale(t *testing.T) {
	s := newStore(t)
	s.Save(Config{Directory: "/old", File: "bf2savefile9", Pin: true})
	s.Save(Config{Directory: "/new"})

	cfg, ok := s.Load()
	require.True(t, ok)
	assert.Equal(t, Config{Directory: "/new"}, cfg)
}

func TestSaveFailureIsSilent(t *testing.T) {
	dir := t.TempDir()
	// A path whose parent is a regular file cannot be written.
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	s := NewStoreAt(filepath.Join(blocker, "config.txt"), zerolog.Nop())
	assert.NotPanics(t, func() { s.Save(Config{Directory: "/saves"}) })
}

func TestNewStoreHonorsEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "elsewhere.txt")
	t.Setenv("BF2SWITCH_CONFIG", path)

	s := NewStore(zerolog.Nop())
	s.Save(Config{File: "bf2savefile1"})

	cfg, ok := NewStoreAt(path, zerolog.Nop()).Load()
	require.True(t, ok)
	assert.Equal(t, "bf2savefile1", cfg.File)
}
