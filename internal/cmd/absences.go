package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tu-usuario/control-horario/internal/application/dto"
)

var (
	absencesYear   int
	absencesStatus string

	absenceStart string
	absenceEnd   string
	absenceType  string
	absenceNotes string
)

var absencesCmd = &cobra.Command{
	Use:   "absences",
	Short: "Consulta y gestiona ausencias",
}

var absencesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lista ausencias",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		if err := a.requireActive(ctx); err != nil {
			return err
		}

		absences, err := a.api.Absences(ctx, dto.AbsenceFilters{
			Year:   absencesYear,
			Status: dto.AbsenceStatus(absencesStatus),
		})
		if err != nil {
			return err
		}
		if len(absences) == 0 {
			fmt.Println("Sin ausencias.")
			return nil
		}
		for _, ab := range absences {
			name := ab.UserID
			if ab.User != nil {
				name = ab.User.Name
			}
			fmt.Printf("%s  %-20s %s a %s  %-30s %d días  [%s]\n",
				ab.ID, name, ab.StartDate, ab.EndDate, ab.Type, ab.WorkdaysCount, ab.Status)
		}
		return nil
	},
}

var absencesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Solicita una ausencia",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		if err := a.requireActive(ctx); err != nil {
			return err
		}

		created, err := a.api.CreateAbsence(ctx, dto.CreateAbsenceRequest{
			StartDate: absenceStart,
			EndDate:   absenceEnd,
			Type:      dto.AbsenceType(absenceType),
			Notes:     absenceNotes,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Ausencia solicitada (%d días laborables, estado %s)\n",
			created.WorkdaysCount, created.Status)
		return nil
	},
}

var absencesCancelCmd = &cobra.Command{
	Use:   "cancel <id>",
	Short: "Cancela una ausencia propia",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		if err := a.requireActive(ctx); err != nil {
			return err
		}
		if err := a.api.CancelAbsence(ctx, args[0]); err != nil {
			return err
		}
		fmt.Println("Ausencia cancelada.")
		return nil
	},
}

var absencesStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Resumen de ausencias del año por estado",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		if err := a.requireActive(ctx); err != nil {
			return err
		}

		stats, err := a.api.AbsenceStats(ctx, absencesYear)
		if err != nil {
			return err
		}
		fmt.Printf("Pendientes: %d\nAprobadas:  %d\nRechazadas: %d\n",
			stats.Pending, stats.Approved, stats.Rejected)
		return nil
	},
}

func init() {
	absencesListCmd.Flags().IntVar(&absencesYear, "year", 0, "filtrar por año")
	absencesListCmd.Flags().StringVar(&absencesStatus, "status", "", "filtrar por estado (PENDING, APPROVED, REJECTED, CANCELLED)")

	absencesCreateCmd.Flags().StringVar(&absenceStart, "from", "", "fecha inicial (AAAA-MM-DD)")
	absencesCreateCmd.Flags().StringVar(&absenceEnd, "to", "", "fecha final (AAAA-MM-DD)")
	absencesCreateCmd.Flags().StringVar(&absenceType, "type", "", "tipo de ausencia ('horario absences types')")
	absencesCreateCmd.Flags().StringVar(&absenceNotes, "notes", "", "notas para quien revisa")
	_ = absencesCreateCmd.MarkFlagRequired("from")
	_ = absencesCreateCmd.MarkFlagRequired("to")
	_ = absencesCreateCmd.MarkFlagRequired("type")

	absencesStatsCmd.Flags().IntVar(&absencesYear, "year", 0, "año (por defecto el actual en el backend)")

	absencesCmd.AddCommand(absencesListCmd, absencesCreateCmd, absencesCancelCmd, absencesStatsCmd, absencesTypesCmd)
	rootCmd.AddCommand(absencesCmd)
}

var absencesTypesCmd = &cobra.Command{
	Use:   "types",
	Short: "Lista el catálogo de tipos de ausencia",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		if err := a.requireActive(ctx); err != nil {
			return err
		}
		types, err := a.api.AbsenceTypes(ctx)
		if err != nil {
			return err
		}
		for _, t := range types {
			fmt.Printf("%-40s %s\n", t.Value, t.Name)
		}
		return nil
	},
}
