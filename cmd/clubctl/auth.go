package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errNotLoggedIn = errors.New("not logged in, run 'clubctl login' first")

func loginCmd() *cobra.Command {
	var email string
	var password string
	var name string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to the booking server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				fmt.Print("Email: ")
				reader := bufio.NewReader(os.Stdin)
				value, err := reader.ReadString('\n')
				if err != nil {
					return err
				}
				email = strings.TrimSpace(value)
			}

			if password == "" {
				fmt.Print("Password: ")
				bytes, err := term.ReadPassword(int(os.Stdin.Fd()))
				fmt.Println()
				if err != nil {
					return err
				}
				password = strings.TrimSpace(string(bytes))
			}

			if email == "" || password == "" {
				return fmt.Errorf("email and password are required")
			}

			session, err := client.Login(context.Background(), email, password, name)
			if err != nil {
				return err
			}

			db, err := openStore()
			if err != nil {
				return err
			}
			defer db.Close()

			if err := saveSession(db, session); err != nil {
				return err
			}

			fmt.Printf("Logged in as %s (%s).\n", session.User.Name, session.User.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&password, "password", "", "Password")
	cmd.Flags().StringVar(&name, "name", "", "Display name for first login")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Logout and clear the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openStore()
			if err != nil {
				return err
			}
			defer db.Close()

			if err := clearSession(db); err != nil {
				return err
			}

			fmt.Println("Logged out.")
			return nil
		},
	}
}
