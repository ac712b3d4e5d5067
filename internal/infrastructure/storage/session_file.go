package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// SessionRecord sesión del proveedor persistida entre invocaciones del CLI.
type SessionRecord struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
	UserID       string    `json:"userId"`
	Email        string    `json:"email"`
}

// SessionFile guarda la sesión del proveedor de identidad en disco para que
// sobreviva entre ejecuciones. Contiene el refresh token, por eso 0600.
type SessionFile struct {
	path string
}

// NewSessionFile construye el almacén sobre dir.
func NewSessionFile(dir string) *SessionFile {
	return &SessionFile{path: filepath.Join(dir, "session.json")}
}

// Load devuelve la sesión guardada o (nil, nil) si no hay ninguna.
func (f *SessionFile) Load() (*SessionRecord, error) {
	raw, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: leer sesión: %w", err)
	}
	var rec SessionRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		// Sesión corrupta: mejor pedir login de nuevo que fallar.
		return nil, nil
	}
	return &rec, nil
}

// Save persiste la sesión.
func (f *SessionFile) Save(rec *SessionRecord) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("storage: serializar sesión: %w", err)
	}
	if err := os.WriteFile(f.path, raw, 0o600); err != nil {
		return fmt.Errorf("storage: escribir sesión: %w", err)
	}
	return nil
}

// Clear descarta la sesión guardada.
func (f *SessionFile) Clear() error {
	err := os.Remove(f.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("storage: borrar sesión: %w", err)
	}
	return nil
}
