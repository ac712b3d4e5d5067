package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tu-usuario/control-horario/internal/application/dto"
	"github.com/tu-usuario/control-horario/internal/infrastructure/export"
)

var (
	entriesFrom string
	entriesTo   string
	entriesUser string

	timerProject string
	timerType    string
	timerOffice  bool
)

var entriesCmd = &cobra.Command{
	Use:   "entries",
	Short: "Consulta y gestiona fichajes",
}

var entriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lista fichajes en un rango de fechas",
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

		entries, err := a.api.TimeEntries(ctx, dto.TimeEntryFilters{
			From:   entriesFrom,
			To:     entriesTo,
			UserID: entriesUser,
		})
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("Sin fichajes en el rango.")
			return nil
		}

		total := 0
		for _, e := range entries {
			project := e.ProjectID
			if e.Project != nil {
				project = e.Project.Name
			}
			fmt.Printf("%s  %-24s %s\n", e.StartedAt, project, export.FormatDuration(e.Minutes))
			total += e.Minutes
		}
		fmt.Printf("Total: %s\n", export.FormatDuration(total))
		return nil
	},
}

var entriesStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Arranca un fichaje en curso",
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

		timer, err := a.api.StartTimer(ctx, dto.StartTimerRequest{
			ProjectID: timerProject,
			TypeID:    timerType,
			IsOffice:  timerOffice,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Fichaje iniciado a las %s (id %s)\n", timer.StartedAt, timer.ID)
		return nil
	},
}

var entriesStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Cierra el fichaje en curso",
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

		entry, err := a.api.StopTimer(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Fichaje cerrado: %s\n", export.FormatDuration(entry.Minutes))
		return nil
	},
}

var entriesActiveCmd = &cobra.Command{
	Use:   "active",
	Short: "Muestra el fichaje en curso, si lo hay",
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

		timer, err := a.api.ActiveTimer(ctx)
		if err != nil {
			return err
		}
		if timer == nil {
			fmt.Println("Sin fichaje en curso.")
			return nil
		}
		project := timer.ProjectID
		if timer.Project != nil {
			project = timer.Project.Name
		}
		fmt.Printf("En curso desde %s en %s\n", timer.StartedAt, project)
		return nil
	},
}

func init() {
	entriesListCmd.Flags().StringVar(&entriesFrom, "from", "", "fecha inicial (AAAA-MM-DD)")
	entriesListCmd.Flags().StringVar(&entriesTo, "to", "", "fecha final (AAAA-MM-DD)")
	entriesListCmd.Flags().StringVar(&entriesUser, "user", "", "filtrar por id de usuario (requiere rol con acceso)")

	entriesStartCmd.Flags().StringVar(&timerProject, "project", "", "id del proyecto")
	entriesStartCmd.Flags().StringVar(&timerType, "type", "", "id del tipo de fichaje")
	entriesStartCmd.Flags().BoolVar(&timerOffice, "office", false, "fichaje presencial en oficina")
	_ = entriesStartCmd.MarkFlagRequired("project")
	_ = entriesStartCmd.MarkFlagRequired("type")

	entriesCmd.AddCommand(entriesListCmd, entriesStartCmd, entriesStopCmd, entriesActiveCmd)
	rootCmd.AddCommand(entriesCmd)
}
