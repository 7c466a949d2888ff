package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func sportsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sports",
		Short: "List the sports offered by the club",
		RunE: func(cmd *cobra.Command, args []string) error {
			sports, err := client.GetSports(context.Background())
			if err != nil {
				return err
			}

			writer := tabwriter.NewWriter(os.Stdout, 2, 2, 2, ' ', 0)
			fmt.Fprintln(writer, "ID\tNAME\tCOURTS\tPRICE\tDURATION")
			for _, sport := range sports {
				fmt.Fprintf(writer, "%s\t%s\t%d\t$%.0f\t%dm\n",
					sport.ID, sport.Name, sport.Courts, sport.Price, sport.Duration)
			}
			return writer.Flush()
		},
	}
}

func availabilityCmd() *cobra.Command {
	var sportID string
	var date string
	var court int

	cmd := &cobra.Command{
		Use:   "availability",
		Short: "Show free slots for a sport on a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			if sportID == "" {
				return fmt.Errorf("--sport is required")
			}
			if date == "" {
				return fmt.Errorf("--date is required")
			}

			slots, err := client.GetAvailability(context.Background(), sportID, date, court)
			if err != nil {
				return err
			}

			writer := tabwriter.NewWriter(os.Stdout, 2, 2, 2, ' ', 0)
			fmt.Fprintln(writer, "TIME\tSTATUS")
			for _, slot := range slots {
				status := "free"
				if slot.Occupied {
					status = "occupied"
				} else if slot.Maintenance {
					status = "maintenance"
				}
				fmt.Fprintf(writer, "%s\t%s\n", slot.Time, status)
			}
			return writer.Flush()
		},
	}

	cmd.Flags().StringVar(&sportID, "sport", "", "Sport ID")
	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&court, "court", 1, "Court number")
	return cmd
}

func bookCmd() *cobra.Command {
	var sportID string
	var date string
	var timeOfDay string
	var court int

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Reserve a court",
		RunE: func(cmd *cobra.Command, args []string) error {
			if sportID == "" || date == "" || timeOfDay == "" {
				return fmt.Errorf("--sport, --date and --time are required")
			}

			if err := withSession(); err != nil {
				return err
			}

			reservation, err := client.CreateReservation(context.Background(), sportID, court, date, timeOfDay)
			if err != nil {
				return err
			}

			db, err := openStore()
			if err != nil {
				return err
			}
			defer db.Close()

			if err := syncReservations(db, []Reservation{reservation}); err != nil {
				return err
			}

			fmt.Printf("Reserved %s court %d on %s at %s ($%.0f, pay a %d%% deposit to confirm).\n",
				reservation.SportName, reservation.CourtNumber, reservation.Date, reservation.Time,
				reservation.Price, reservation.PaymentPct)
			fmt.Printf("Reservation ID: %s\n", reservation.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&sportID, "sport", "", "Sport ID")
	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&timeOfDay, "time", "", "Start time (HH:MM)")
	cmd.Flags().IntVar(&court, "court", 1, "Court number")
	return cmd
}

func reservationsCmd() *cobra.Command {
	var offline bool

	cmd := &cobra.Command{
		Use:   "reservations",
		Short: "List your reservations",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openStore()
			if err != nil {
				return err
			}
			defer db.Close()

			var reservations []Reservation

			if offline {
				reservations, err = cachedReservations(db)
				if err != nil {
					return err
				}
			} else {
				if err := withSession(); err != nil {
					return err
				}

				reservations, err = client.GetMyReservations(context.Background())
				if err != nil {
					return err
				}

				if err := syncReservations(db, reservations); err != nil {
					return err
				}
			}

			if len(reservations) == 0 {
				fmt.Println("No reservations.")
				return nil
			}

			writer := tabwriter.NewWriter(os.Stdout, 2, 2, 2, ' ', 0)
			fmt.Fprintln(writer, "ID\tSPORT\tCOURT\tDATE\tTIME\tSTATUS\tPAYMENT")
			for _, reservation := range reservations {
				fmt.Fprintf(writer, "%s\t%s\t%d\t%s\t%s\t%s\t%s\n",
					reservation.ID, reservation.SportName, reservation.CourtNumber,
					reservation.Date, reservation.Time, reservation.Status, reservation.PaymentStatus)
			}
			return writer.Flush()
		},
	}

	cmd.Flags().BoolVar(&offline, "offline", false, "List the locally cached reservations without contacting the server")
	return cmd
}

func cancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <reservation-id>",
		Short: "Cancel a reservation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := withSession(); err != nil {
				return err
			}

			if err := client.CancelReservation(context.Background(), args[0]); err != nil {
				return err
			}

			fmt.Println("Reservation cancelled.")
			return nil
		},
	}
}

func payCmd() *cobra.Command {
	var full bool

	cmd := &cobra.Command{
		Use:   "pay <reservation-id>",
		Short: "Pay the deposit or the full price for a reservation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := withSession(); err != nil {
				return err
			}

			payType := "reservation"
			if full {
				payType = "full_payment"
			}

			payment, err := client.SubmitPayment(context.Background(), args[0], payType)
			if err != nil {
				return err
			}

			fmt.Printf("Payment of $%.0f processed. Receipt: %s\n", payment.Amount, payment.Receipt)
			return nil
		},
	}

	cmd.Flags().BoolVar(&full, "full", false, "Pay the outstanding balance instead of the deposit")
	return cmd
}
