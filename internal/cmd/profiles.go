package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Gestiona los perfiles de empresa de la identidad",
}

var profilesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lista los perfiles disponibles",
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

		state := a.store.Snapshot()
		if len(state.Profiles) == 0 {
			fmt.Println("Sin perfiles.")
			return nil
		}
		for _, p := range state.Profiles {
			marker := " "
			if state.ActiveProfile != nil && state.ActiveProfile.ID == p.ID {
				marker = "*"
			}
			fmt.Printf("%s %s  %s @ %s [%s]\n", marker, p.ID, p.Name, p.CompanyName, p.Role)
		}
		return nil
	},
}

var profilesSwitchCmd = &cobra.Command{
	Use:   "switch <profile-id>",
	Short: "Cambia el perfil de empresa activo",
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

		profile, err := a.resolver.SwitchProfile(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Perfil activo: %s @ %s [%s]\n", profile.Name, profile.CompanyName, profile.Role)
		return nil
	},
}

func init() {
	profilesCmd.AddCommand(profilesListCmd, profilesSwitchCmd)
	rootCmd.AddCommand(profilesCmd)
}
