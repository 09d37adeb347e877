package cli

import (
	"github.com/spf13/cobra"
	"github.com/studyhubhq/studyhub/pkg/studysdk"
)

var reviewsCmd = &cobra.Command{
	Use:   "reviews",
	Short: "Read and write session reviews",
}

var (
	reviewText   string
	reviewRating int
)

var reviewsAddCmd = &cobra.Command{
	Use:   "add <session-id>",
	Short: "Review a session you booked (student)",
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

		err = rt.session.AddReview(cmd.Context(), studysdk.AddReviewRequest{
			SessionID:  args[0],
			UserID:     id.Subject,
			UserName:   id.Name,
			ReviewText: reviewText,
			Rating:     reviewRating,
		})
		if err != nil {
			return err
		}
		printf("Review submitted.")
		return nil
	},
}

var reviewsListCmd = &cobra.Command{
	Use:   "list <session-id>",
	Short: "List a session's reviews",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.close()

		reviews, err := rt.session.ListReviews(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		for _, r := range reviews {
			printf("%s\t%d/5 by %s: %s", r.ID, r.Rating, r.UserName, r.ReviewText)
		}
		return nil
	},
}

func init() {
	reviewsAddCmd.Flags().StringVar(&reviewText, "text", "", "review text")
	reviewsAddCmd.Flags().IntVar(&reviewRating, "rating", 0, "rating from 1 to 5")

	reviewsCmd.AddCommand(reviewsAddCmd, reviewsListCmd)
}
