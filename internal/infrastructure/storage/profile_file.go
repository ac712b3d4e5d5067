// Package storage implementa el almacenamiento local duradero del cliente:
// el id del perfil activo y la sesión del proveedor de identidad, cada uno en
// un fichero JSON bajo el directorio de configuración del usuario.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tu-usuario/control-horario/internal/application/ports"
)

// Verificación en tiempo de compilación del puerto.
var _ ports.ProfileStore = (*ProfileFile)(nil)

// ProfileFile guarda el id del perfil activo. Se lee en cada petición
// autenticada; las escrituras son idempotentes (misma acción de usuario,
// mismo id), así que no hace falta bloqueo entre procesos.
type ProfileFile struct {
	path string
}

// NewProfileFile construye el almacén sobre dir.
func NewProfileFile(dir string) *ProfileFile {
	return &ProfileFile{path: filepath.Join(dir, "active_profile.json")}
}

type profileRecord struct {
	ProfileID string `json:"profileId"`
}

// Load devuelve el id guardado, o cadena vacía si no hay selección: la clave
// ausente no es un error, es el estado inicial.
func (f *ProfileFile) Load() (string, error) {
	raw, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("storage: leer perfil activo: %w", err)
	}
	var rec profileRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		// Fichero corrupto: se trata como ausencia de selección.
		return "", nil
	}
	return rec.ProfileID, nil
}

// Save persiste el id del perfil activo.
func (f *ProfileFile) Save(profileID string) error {
	raw, err := json.Marshal(profileRecord{ProfileID: profileID})
	if err != nil {
		return fmt.Errorf("storage: serializar perfil activo: %w", err)
	}
	if err := os.WriteFile(f.path, raw, 0o600); err != nil {
		return fmt.Errorf("storage: escribir perfil activo: %w", err)
	}
	return nil
}

// Clear elimina la selección guardada.
func (f *ProfileFile) Clear() error {
	err := os.Remove(f.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("storage: borrar perfil activo: %w", err)
	}
	return nil
}
