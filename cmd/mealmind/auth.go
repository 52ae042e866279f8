package main

import (
	"errors"
	"fmt"
	"time"

	cn "github.com/LerianStudio/lib-mealmind-go/constant"
	"github.com/LerianStudio/lib-mealmind-go/model"
	"github.com/LerianStudio/lib-mealmind-go/session"
	"github.com/spf13/cobra"
)

func (a *cli) signupCmd() *cobra.Command {
	var req model.SignupRequest

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account and start a session",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, store, err := a.client()
			if err != nil {
				return err
			}

			resp, err := client.Auth.Signup(cmd.Context(), req)
			if err != nil {
				return a.finish(resp, err)
			}

			a.printResponse(resp)

			if _, err := client.Auth.SaveSession(resp); err != nil {
				if errors.Is(err, cn.ErrMissingToken) {
					return nil
				}

				return err
			}

			fmt.Fprintf(a.out, "session saved to %s\n", store.Path())

			return nil
		},
	}

	cmd.Flags().StringVarP(&req.Name, "name", "n", "", "Display name")
	cmd.Flags().StringVarP(&req.Email, "email", "e", "", "Email (required)")
	cmd.Flags().StringVarP(&req.Password, "password", "p", "", "Password (required)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func (a *cli) loginCmd() *cobra.Command {
	var req model.LoginRequest

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, store, err := a.client()
			if err != nil {
				return err
			}

			resp, err := client.Auth.Login(cmd.Context(), req)
			if err != nil {
				return a.finish(resp, err)
			}

			if _, err := client.Auth.SaveSession(resp); err != nil {
				return err
			}

			fmt.Fprintf(a.out, "logged in as %s, session saved to %s\n", req.Email, store.Path())

			return nil
		},
	}

	cmd.Flags().StringVarP(&req.Email, "email", "e", "", "Email (required)")
	cmd.Flags().StringVarP(&req.Password, "password", "p", "", "Password (required)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func (a *cli) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := a.client()
			if err != nil {
				return err
			}

			if err := client.Auth.Logout(); err != nil {
				return err
			}

			fmt.Fprintln(a.out, "logged out")

			return nil
		},
	}
}

func (a *cli) meCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the current user",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := a.client()
			if err != nil {
				return err
			}

			return a.finish(client.Auth.GetCurrentUser(cmd.Context()))
		},
	}
}

func (a *cli) corsTestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cors-test",
		Short: "Call the backend CORS test endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := a.client()
			if err != nil {
				return err
			}

			return a.finish(client.Auth.TestCORS(cmd.Context()))
		},
	}
}

func (a *cli) statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the stored session token details",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, err := a.client()
			if err != nil {
				return err
			}

			token, ok, err := session.Token(store)
			if err != nil {
				return err
			}

			if !ok {
				fmt.Fprintln(a.out, "not logged in")
				return nil
			}

			info, err := session.InspectToken(token)
			if err != nil {
				fmt.Fprintln(a.out, "logged in (opaque token)")
				return nil
			}

			fmt.Fprintf(a.out, "logged in as subject %s\n", info.Subject)

			if !info.IssuedAt.IsZero() {
				fmt.Fprintf(a.out, "issued:  %s\n", info.IssuedAt.UTC().Format(time.RFC3339))
			}

			switch {
			case info.ExpiresAt.IsZero():
				fmt.Fprintln(a.out, "expires: never")
			case info.Expired(time.Now()):
				fmt.Fprintf(a.out, "expires: %s (expired)\n", info.ExpiresAt.UTC().Format(time.RFC3339))
			default:
				fmt.Fprintf(a.out, "expires: %s\n", info.ExpiresAt.UTC().Format(time.RFC3339))
			}

			return nil
		},
	}
}
