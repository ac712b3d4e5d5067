package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tu-usuario/control-horario/internal/domain/entity"
)

var loginPassword string

var loginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "Inicia sesión contra el proveedor de identidad",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		password := loginPassword
		if password == "" {
			password, err = promptLine("Contraseña: ")
			if err != nil {
				return err
			}
		}

		if err := a.auth.Login(ctx, args[0], password); err != nil {
			return err
		}

		state := a.store.Snapshot()
		switch state.Status {
		case entity.StatusActive:
			fmt.Printf("Sesión iniciada como %s (%s)\n", state.User.Name, state.User.Email)
			if state.ActiveProfile != nil {
				fmt.Printf("Perfil activo: %s @ %s [%s]\n",
					state.ActiveProfile.Name, state.ActiveProfile.CompanyName, state.ActiveProfile.Role)
			}
		case entity.StatusOnboardingRequired:
			fmt.Println("Identidad sin empresa: completa el onboarding (crear empresa o aceptar invitación).")
			for _, inv := range state.PendingInvitations {
				fmt.Printf("  invitación pendiente de %s [%s]\n", inv.CompanyName, inv.Role)
			}
		case entity.StatusPendingApproval:
			fmt.Println("Solicitud de acceso pendiente de aprobación por la empresa.")
		default:
			fmt.Printf("Estado de sesión: %s\n", state.Status)
		}
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "contraseña (si se omite, se pide de forma interactiva)")
	rootCmd.AddCommand(loginCmd)
}

// promptLine lee una línea de stdin mostrando antes la etiqueta dada.
func promptLine(label string) (string, error) {
	fmt.Fprint(os.Stderr, label)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("leer entrada: %w", err)
	}
	return strings.TrimSpace(line), nil
}
