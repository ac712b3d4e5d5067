package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tu-usuario/control-horario/internal/interfaces/callback"
)

var recoverWait bool

var recoverCmd = &cobra.Command{
	Use:   "recover <email>",
	Short: "Solicita la recuperación de contraseña",
	Long: `Solicita al proveedor de identidad el email de recuperación. Con --wait
se levanta un listener local que espera la redirección del enlace, adopta la
sesión de recuperación y pide la contraseña nueva.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		if err := a.auth.RequestPasswordRecovery(ctx, args[0]); err != nil {
			return err
		}
		fmt.Println("Email de recuperación enviado: revisa tu bandeja.")
		if !recoverWait {
			return nil
		}

		srv := callback.New(a.cfg.Callback.Host, a.cfg.Callback.Port, a.log)
		if err := srv.Start(); err != nil {
			return err
		}
		defer srv.Shutdown()

		fmt.Printf("Esperando el enlace de recuperación en %s …\n", srv.RedirectURL())
		waitCtx, cancel := signalTimeout(ctx, 10*time.Minute)
		defer cancel()

		params, err := srv.Wait(waitCtx)
		if err != nil {
			return err
		}
		if _, err := a.identity.AdoptCallback(ctx, params, ""); err != nil {
			return err
		}

		password, err := promptLine("Contraseña nueva: ")
		if err != nil {
			return err
		}
		if err := a.auth.UpdatePassword(ctx, password); err != nil {
			return err
		}
		fmt.Println("Contraseña actualizada.")
		return nil
	},
}

func init() {
	recoverCmd.Flags().BoolVar(&recoverWait, "wait", false, "esperar la redirección del enlace en un listener local")
	rootCmd.AddCommand(recoverCmd)
}
