package export

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/control-horario/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 30, Green: 64, Blue: 175}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MonthlyReport datos de entrada del informe mensual de fichajes.
type MonthlyReport struct {
	CompanyName string
	UserName    string
	Year        int
	Month       int
	Entries     []dto.TimeEntry
}

// GenerateMonthlyPDF genera el informe mensual de fichajes y devuelve sus
// bytes.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa  │  "Informe de horas" + Mes Año           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  EMPLEADO: nombre                                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Proyecto | Inicio | Fin | Duración | Lugar  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL DEL MES                                              │
//	└─────────────────────────────────────────────────────────────┘
func GenerateMonthlyPDF(report MonthlyReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Informe de horas", true).
		WithAuthor(report.CompanyName, true).
		Build()

	m := maroto.New(cfg)

	monthLabel := MonthLabel(report.Year, time.Month(report.Month))

	m.AddRows(reportHeaderRow(report.CompanyName, monthLabel))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(employeeRow(report.UserName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(entriesHeaderRow())
	for _, r := range entryRows(report.Entries) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(report.Entries, monthLabel))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("export: generar PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func reportHeaderRow(companyName, monthLabel string) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(companyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("INFORME DE HORAS", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(monthLabel, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
		),
	)
}

func employeeRow(userName string) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New("EMPLEADO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(userName, props.Text{Size: 10, Top: 6}),
		),
	)
}

func entriesHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Proyecto", 4, align.Left),
		h("Inicio", 1, align.Center),
		h("Fin", 1, align.Center),
		h("Duración", 2, align.Right),
		h("Lugar", 2, align.Center),
	)
}

func entryRows(entries []dto.TimeEntry) []core.Row {
	result := make([]core.Row, 0, len(entries))
	for _, e := range entries {
		result = append(result, row.New(6).Add(
			col.New(2).Add(text.New(
				fmtDate(e.StartedAt),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(4).Add(text.New(
				projectLabel(e.Project, e.ProjectID),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				fmtTime(e.StartedAt),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(1).Add(text.New(
				fmtTime(e.EndedAt),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				FormatDuration(e.Minutes),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				officeLabel(e.IsOffice),
				props.Text{Size: 8, Align: align.Center, Top: 1, Color: colorGray},
			)),
		))
	}
	return result
}

func totalRow(entries []dto.TimeEntry, monthLabel string) core.Row {
	total := 0
	for _, e := range entries {
		total += e.Minutes
	}
	return row.New(12).Add(
		col.New(8).Add(
			text.New("TOTAL "+monthLabel, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 2, Right: 2,
			}),
		),
		col.New(4).Add(
			text.New(FormatDuration(total), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 2, Right: 1,
			}),
		),
	)
}
