package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tu-usuario/control-horario/internal/interfaces/callback"
)

var (
	signupPassword string
	signupWait     bool
)

var signupCmd = &cobra.Command{
	Use:   "signup <email>",
	Short: "Registra una identidad nueva",
	Long: `Registra una identidad nueva en el proveedor. Si el proveedor exige
confirmación por email, con --wait se levanta un listener local que espera la
redirección del enlace de confirmación y adopta la sesión resultante.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		password := signupPassword
		if password == "" {
			password, err = promptLine("Contraseña: ")
			if err != nil {
				return err
			}
		}

		pending, err := a.auth.SignUp(ctx, args[0], password)
		if err != nil {
			return err
		}
		if !pending {
			fmt.Println("Registro completado; sesión iniciada.")
			return nil
		}

		fmt.Println("Registro pendiente de confirmación: revisa tu email.")
		if !signupWait {
			return nil
		}

		srv := callback.New(a.cfg.Callback.Host, a.cfg.Callback.Port, a.log)
		if err := srv.Start(); err != nil {
			return err
		}
		defer srv.Shutdown()

		fmt.Printf("Esperando la confirmación en %s …\n", srv.RedirectURL())
		waitCtx, cancel := signalTimeout(ctx, 10*time.Minute)
		defer cancel()

		params, err := srv.Wait(waitCtx)
		if err != nil {
			return err
		}
		if _, err := a.identity.AdoptCallback(ctx, params, ""); err != nil {
			return err
		}
		if err := a.resolver.Resolve(ctx, ""); err != nil {
			return err
		}
		fmt.Println("Email confirmado; sesión iniciada.")
		return nil
	},
}

func init() {
	signupCmd.Flags().StringVarP(&signupPassword, "password", "p", "", "contraseña (si se omite, se pide de forma interactiva)")
	signupCmd.Flags().BoolVar(&signupWait, "wait", false, "esperar la redirección de confirmación en un listener local")
	rootCmd.AddCommand(signupCmd)
}
