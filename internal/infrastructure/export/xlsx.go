package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/tu-usuario/control-horario/internal/application/dto"
)

// WriteTimeEntriesXLSX vuelca los fichajes de un mes a una hoja de cálculo.
func WriteTimeEntriesXLSX(w io.Writer, entries []dto.TimeEntry, year int, month time.Month) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Fichajes"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("export: renombrar hoja: %w", err)
	}

	headers := []string{"Fecha", "Proyecto", "Tipo", "Inicio", "Fin", "Duración", "Lugar"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("export: escribir cabecera: %w", err)
		}
	}

	totalMinutes := 0
	for row, e := range entries {
		values := []any{
			fmtDate(e.StartedAt),
			projectLabel(e.Project, e.ProjectID),
			entryTypeLabel(e.EntryType, e.TypeID),
			fmtTime(e.StartedAt),
			fmtTime(e.EndedAt),
			FormatDuration(e.Minutes),
			officeLabel(e.IsOffice),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("export: escribir fila: %w", err)
			}
		}
		totalMinutes += e.Minutes
	}

	// Fila de total y etiqueta del mes al pie.
	totalRow := len(entries) + 3
	cell, _ := excelize.CoordinatesToCellName(1, totalRow)
	_ = f.SetCellValue(sheet, cell, "Total "+MonthLabel(year, month))
	cell, _ = excelize.CoordinatesToCellName(6, totalRow)
	_ = f.SetCellValue(sheet, cell, FormatDuration(totalMinutes))

	if err := f.SetColWidth(sheet, "A", "G", 16); err != nil {
		return fmt.Errorf("export: ancho de columnas: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("export: escribir xlsx: %w", err)
	}
	return nil
}

// WriteAbsencesXLSX vuelca las ausencias de un año a una hoja de cálculo.
func WriteAbsencesXLSX(w io.Writer, absences []dto.AbsenceResponse, typeLabels map[dto.AbsenceType]string) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Ausencias"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("export: renombrar hoja: %w", err)
	}

	headers := []string{"Empleado", "Desde", "Hasta", "Tipo", "Días laborables", "Estado", "Notas"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("export: escribir cabecera: %w", err)
		}
	}

	for row, a := range absences {
		name := ""
		if a.User != nil {
			name = a.User.Name
		}
		label := typeLabels[a.Type]
		if label == "" {
			label = string(a.Type)
		}
		values := []any{
			name,
			fmtDate(a.StartDate),
			fmtDate(a.EndDate),
			label,
			a.WorkdaysCount,
			statusLabel(a.Status),
			a.Notes,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("export: escribir fila: %w", err)
			}
		}
	}

	if err := f.SetColWidth(sheet, "A", "G", 18); err != nil {
		return fmt.Errorf("export: ancho de columnas: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("export: escribir xlsx: %w", err)
	}
	return nil
}

func projectLabel(p *dto.ProjectBrief, fallback string) string {
	if p != nil && p.Name != "" {
		return p.Name
	}
	return fallback
}

func entryTypeLabel(t *dto.TimeEntryType, fallback string) string {
	if t != nil && t.Name != "" {
		return t.Name
	}
	return fallback
}

func statusLabel(s dto.AbsenceStatus) string {
	switch s {
	case dto.AbsencePending:
		return "Pendiente"
	case dto.AbsenceApproved:
		return "Aprobada"
	case dto.AbsenceRejected:
		return "Rechazada"
	case dto.AbsenceCancelled:
		return "Cancelada"
	}
	return string(s)
}
