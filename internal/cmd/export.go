package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/tu-usuario/control-horario/internal/application/dto"
	"github.com/tu-usuario/control-horario/internal/infrastructure/export"
)

var (
	exportYear  int
	exportMonth int
	exportOut   string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Exporta informes mensuales de fichajes",
}

var exportXLSXCmd = &cobra.Command{
	Use:   "xlsx",
	Short: "Exporta los fichajes del mes a hoja de cálculo",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(cmd, "xlsx")
	},
}

var exportPDFCmd = &cobra.Command{
	Use:   "pdf",
	Short: "Exporta el informe mensual de fichajes a PDF",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(cmd, "pdf")
	},
}

func runExport(cmd *cobra.Command, format string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if err := a.requireActive(ctx); err != nil {
		return err
	}

	year, month := exportYear, exportMonth
	if year == 0 || month == 0 {
		now := time.Now()
		year, month = now.Year(), int(now.Month())
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)
	entries, err := a.api.TimeEntries(ctx, dto.TimeEntryFilters{
		From: from.Format("2006-01-02"),
		To:   to.Format("2006-01-02"),
	})
	if err != nil {
		return err
	}

	state := a.store.Snapshot()
	name := export.Filename("fichajes", state.User.CompanyName, state.User.Name, year, time.Month(month), format)
	path := filepath.Join(exportOut, name)

	switch format {
	case "xlsx":
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("crear %s: %w", path, err)
		}
		defer f.Close()
		if err := export.WriteTimeEntriesXLSX(f, entries, year, time.Month(month)); err != nil {
			return err
		}
	case "pdf":
		data, err := export.GenerateMonthlyPDF(export.MonthlyReport{
			CompanyName: state.User.CompanyName,
			UserName:    state.User.Name,
			Year:        year,
			Month:       month,
			Entries:     entries,
		})
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("escribir %s: %w", path, err)
		}
	}

	fmt.Println(path)
	return nil
}

func init() {
	exportCmd.PersistentFlags().IntVar(&exportYear, "year", 0, "año (por defecto el actual)")
	exportCmd.PersistentFlags().IntVar(&exportMonth, "month", 0, "mes 1-12 (por defecto el actual)")
	exportCmd.PersistentFlags().StringVar(&exportOut, "out", ".", "directorio de salida")

	exportCmd.AddCommand(exportXLSXCmd, exportPDFCmd)
	rootCmd.AddCommand(exportCmd)
}
