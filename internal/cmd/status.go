package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tu-usuario/control-horario/internal/domain/entity"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Muestra el estado de la sesión y el perfil activo",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		a.resolver.Initialize(cmd.Context())
		state := a.store.Snapshot()

		if state.User == nil {
			switch state.Status {
			case entity.StatusOnboardingRequired:
				fmt.Println("Identidad autenticada sin empresa: onboarding pendiente.")
				for _, inv := range state.PendingInvitations {
					fmt.Printf("  invitación de %s [%s], expira %s\n", inv.CompanyName, inv.Role, inv.ExpiresAt)
				}
			case entity.StatusPendingApproval:
				fmt.Println("Solicitud de acceso pendiente de aprobación.")
				for _, req := range state.PendingRequests {
					fmt.Printf("  solicitud a %s (%s)\n", req.CompanyName, req.Status)
				}
			default:
				fmt.Println("Sin sesión. Ejecuta 'horario login'.")
				if state.Error != "" {
					fmt.Printf("  último error: %s\n", state.Error)
				}
			}
			return nil
		}

		fmt.Printf("Usuario:  %s <%s>\n", state.User.Name, state.User.Email)
		fmt.Printf("Empresa:  %s\n", state.User.CompanyName)
		fmt.Printf("Rol:      %s (%s)\n", state.User.Role, state.User.Relation)
		if state.ActiveProfile != nil {
			fmt.Printf("Perfil:   %s @ %s\n", state.ActiveProfile.ID, state.ActiveProfile.CompanyName)
		}
		if n := len(state.Profiles); n > 1 {
			fmt.Printf("Perfiles: %d disponibles ('horario profiles list')\n", n)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
