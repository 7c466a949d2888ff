package main

import (
	"os"

	"github.com/spf13/cobra"
)

var client *Client

var rootCmd = &cobra.Command{
	Use:          "clubctl",
	Short:        "Command line client for the South Park club booking server",
	SilenceUsage: true,
}

func main() {
	baseURL := os.Getenv("CLUB_API_URL")
	client = NewClient(baseURL)

	rootCmd.AddCommand(loginCmd())
	rootCmd.AddCommand(logoutCmd())
	rootCmd.AddCommand(sportsCmd())
	rootCmd.AddCommand(availabilityCmd())
	rootCmd.AddCommand(bookCmd())
	rootCmd.AddCommand(reservationsCmd())
	rootCmd.AddCommand(cancelCmd())
	rootCmd.AddCommand(payCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// withSession loads the stored token into the client before an
// authenticated command runs.
func withSession() error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	session, found, err := loadSession(db)
	if err != nil {
		return err
	}

	if !found {
		return errNotLoggedIn
	}

	client.AccessToken = session.Token
	return nil
}
