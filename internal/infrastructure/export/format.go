// Package export genera los ficheros descargables del cliente: hojas de
// cálculo de fichajes y ausencias, y el informe mensual en PDF.
package export

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// monthNames nombres de mes en castellano para etiquetas y nombres de fichero.
var monthNames = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// MonthLabel devuelve "Enero 2026".
func MonthLabel(year int, month time.Month) string {
	return fmt.Sprintf("%s %d", monthNames[month-1], year)
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9_-]`)
var repeatedUnderscore = regexp.MustCompile(`_+`)

// Sanitize normaliza un texto para usarlo en nombres de fichero: elimina
// diacríticos, sustituye lo no alfanumérico por guión bajo y pasa a
// minúsculas.
func Sanitize(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(t, text)
	if err != nil {
		plain = text
	}
	plain = unsafeChars.ReplaceAllString(plain, "_")
	plain = repeatedUnderscore.ReplaceAllString(plain, "_")
	plain = strings.Trim(plain, "_")
	return strings.ToLower(plain)
}

// Filename construye "<prefijo>_<empresa>_<usuario>_<mm>_<aaaa>.<ext>".
func Filename(prefix, companyName, userName string, year int, month time.Month, ext string) string {
	return fmt.Sprintf("%s_%s_%s_%02d_%d.%s",
		prefix, Sanitize(companyName), Sanitize(userName), int(month), year, ext)
}

// FormatDuration convierte minutos en "3h 25m", "3h" o "25m".
func FormatDuration(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}

// parseISO interpreta los timestamps del backend; devuelve el cero de time
// si no se pueden interpretar.
func parseISO(value string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}

func fmtDate(value string) string {
	t := parseISO(value)
	if t.IsZero() {
		return value
	}
	return t.Format("02/01/2006")
}

func fmtTime(value string) string {
	t := parseISO(value)
	if t.IsZero() {
		return ""
	}
	return t.Format("15:04")
}

func officeLabel(isOffice bool) string {
	if isOffice {
		return "Oficina"
	}
	return "Remoto"
}
