package storage_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/control-horario/internal/infrastructure/storage"
)

// ──────────────────────────────────────────────────────────────────────────────
// Perfil activo
// ──────────────────────────────────────────────────────────────────────────────

func TestProfileFile_AusenteDevuelveVacio(t *testing.T) {
	f := storage.NewProfileFile(t.TempDir())

	id, err := f.Load()

	require.NoError(t, err, "la clave ausente es el estado inicial, no un error")
	assert.Empty(t, id)
}

func TestProfileFile_GuardaYRecupera(t *testing.T) {
	f := storage.NewProfileFile(t.TempDir())

	require.NoError(t, f.Save("p-1"))
	id, err := f.Load()

	require.NoError(t, err)
	assert.Equal(t, "p-1", id)
}

func TestProfileFile_CorruptoSeTrataComoAusencia(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "active_profile.json"), []byte("{basura"), 0o600))
	f := storage.NewProfileFile(dir)

	id, err := f.Load()

	require.NoError(t, err)
	assert.Empty(t, id)
}

func TestProfileFile_ClearEsIdempotente(t *testing.T) {
	f := storage.NewProfileFile(t.TempDir())
	require.NoError(t, f.Save("p-1"))

	require.NoError(t, f.Clear())
	require.NoError(t, f.Clear(), "borrar lo ya borrado no falla")

	id, err := f.Load()
	require.NoError(t, err)
	assert.Empty(t, id)
}

// ──────────────────────────────────────────────────────────────────────────────
// Sesión persistida
// ──────────────────────────────────────────────────────────────────────────────

func TestSessionFile_AusenteDevuelveNil(t *testing.T) {
	f := storage.NewSessionFile(t.TempDir())

	rec, err := f.Load()

	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestSessionFile_GuardaYRecupera(t *testing.T) {
	dir := t.TempDir()
	f := storage.NewSessionFile(dir)
	in := &storage.SessionRecord{
		AccessToken:  "at-1",
		RefreshToken: "rt-1",
		ExpiresAt:    time.Now().Add(time.Hour).Truncate(time.Second),
		UserID:       "u-1",
		Email:        "ana@acme.es",
	}

	require.NoError(t, f.Save(in))
	rec, err := f.Load()

	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "rt-1", rec.RefreshToken)
	assert.Equal(t, "ana@acme.es", rec.Email)

	// El fichero contiene el refresh token: solo legible por el propietario.
	info, err := os.Stat(filepath.Join(dir, "session.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestSessionFile_CorruptaSeDescartaSinError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "session.json"), []byte("no-json"), 0o600))
	f := storage.NewSessionFile(dir)

	rec, err := f.Load()

	require.NoError(t, err, "sesión corrupta: mejor pedir login de nuevo que fallar")
	assert.Nil(t, rec)
}
