package main

import (
	"github.com/spf13/cobra"
)

func (a *cli) recommendationsCmd() *cobra.Command {
	recCmd := &cobra.Command{
		Use:     "recommendations",
		Aliases: []string{"rec"},
		Short:   "Daily recommendation operations",
	}

	todayCmd := &cobra.Command{
		Use:   "today",
		Short: "Show today's recommendations",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := a.client()
			if err != nil {
				return err
			}

			return a.finish(client.Recommendations.GetToday(cmd.Context()))
		},
	}

	regenerateCmd := &cobra.Command{
		Use:       "regenerate TYPE",
		Short:     "Regenerate one kind of recommendation (meal, activity or sleep)",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"meal", "activity", "sleep"},
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := a.client()
			if err != nil {
				return err
			}

			return a.finish(client.Recommendations.Regenerate(cmd.Context(), args[0]))
		},
	}

	var checkinData string

	checkinCmd := &cobra.Command{
		Use:   "checkin",
		Short: "Record today's check-in from a JSON document",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := jsonData(checkinData)
			if err != nil {
				return err
			}

			client, _, err := a.client()
			if err != nil {
				return err
			}

			return a.finish(client.Recommendations.Checkin(cmd.Context(), data))
		},
	}
	checkinCmd.Flags().StringVarP(&checkinData, "data", "d", "", `Check-in JSON, e.g. '{"completed":true,"mood":"good"}'`)

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Show past recommendations",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := a.client()
			if err != nil {
				return err
			}

			return a.finish(client.Recommendations.GetHistory(cmd.Context()))
		},
	}

	recCmd.AddCommand(todayCmd, regenerateCmd, checkinCmd, historyCmd)

	return recCmd
}
