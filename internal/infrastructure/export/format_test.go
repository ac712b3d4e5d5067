package export_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/control-horario/internal/infrastructure/export"
)

func TestSanitize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Construcción Árbol S.L.", "construccion_arbol_s_l"},
		{"José María Ñoño", "jose_maria_nono"},
		{"  ya--limpio  ", "ya-limpio"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, export.Sanitize(tc.in), "entrada %q", tc.in)
	}
}

func TestFilename(t *testing.T) {
	got := export.Filename("fichajes", "Construcción Árbol", "José López", 2026, time.March, "xlsx")

	assert.Equal(t, "fichajes_construccion_arbol_jose_lopez_03_2026.xlsx", got)
}

func TestMonthLabel(t *testing.T) {
	assert.Equal(t, "Enero 2026", export.MonthLabel(2026, time.January))
	assert.Equal(t, "Diciembre 2025", export.MonthLabel(2025, time.December))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "3h 25m", export.FormatDuration(205))
	assert.Equal(t, "3h", export.FormatDuration(180))
	assert.Equal(t, "25m", export.FormatDuration(25))
	assert.Equal(t, "0m", export.FormatDuration(0))
}
