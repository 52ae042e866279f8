package main

import (
	"github.com/spf13/cobra"
)

func (a *cli) profileCmd() *cobra.Command {
	profileCmd := &cobra.Command{Use: "profile", Short: "Profile operations"}

	getCmd := &cobra.Command{
		Use:   "get",
		Short: "Show the profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := a.client()
			if err != nil {
				return err
			}

			return a.finish(client.Profile.Get(cmd.Context()))
		},
	}

	var setupData string

	setupCmd := &cobra.Command{
		Use:   "setup",
		Short: "Create the profile from a JSON document",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := jsonData(setupData)
			if err != nil {
				return err
			}

			client, _, err := a.client()
			if err != nil {
				return err
			}

			return a.finish(client.Profile.Setup(cmd.Context(), data))
		},
	}
	setupCmd.Flags().StringVarP(&setupData, "data", "d", "", `Profile JSON, e.g. '{"age":30,"goal":"lose_weight"}'`)
	_ = setupCmd.MarkFlagRequired("data")

	var updateData string

	updateCmd := &cobra.Command{
		Use:   "update",
		Short: "Update profile fields from a JSON document",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := jsonData(updateData)
			if err != nil {
				return err
			}

			client, _, err := a.client()
			if err != nil {
				return err
			}

			return a.finish(client.Profile.Update(cmd.Context(), data))
		},
	}
	updateCmd.Flags().StringVarP(&updateData, "data", "d", "", `Fields to change, e.g. '{"name":"A"}'`)
	_ = updateCmd.MarkFlagRequired("data")

	profileCmd.AddCommand(getCmd, setupCmd, updateCmd)

	return profileCmd
}
