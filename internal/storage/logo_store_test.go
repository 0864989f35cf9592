package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogoStore_SaveAcceptedFormat(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLogoStore(dir)
	require.NoError(t, err)

	ref, err := store.Save(7, "sigla atelier.PNG", strings.NewReader("fake-png-bytes"))
	require.NoError(t, err)
	require.Equal(t, "logos/ws_7.png", ref)

	data, err := os.ReadFile(filepath.Join(dir, "ws_7.png"))
	require.NoError(t, err)
	require.Equal(t, "fake-png-bytes", string(data))
}

func TestLogoStore_RejectsUnknownExtension(t *testing.T) {
	store, err := NewLogoStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Save(7, "virus.exe", strings.NewReader("x"))
	require.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = store.Save(7, "fara-extensie", strings.NewReader("x"))
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}
