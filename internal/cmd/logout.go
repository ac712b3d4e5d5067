package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Cierra la sesión y descarta el estado local",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		a.auth.Logout(cmd.Context())
		fmt.Println("Sesión cerrada.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
