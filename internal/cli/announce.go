package cli

import (
	"github.com/spf13/cobra"
	"github.com/studyhubhq/studyhub/pkg/studysdk"
)

var announcementsCmd = &cobra.Command{
	Use:   "announcements",
	Short: "Read and publish platform announcements",
}

var (
	announceTitle       string
	announceDescription string
	announcePage        int
	announceLimit       int
)

var announcementsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List announcements",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.close()

		page, err := rt.session.ListAnnouncements(cmd.Context(), announcePage, announceLimit)
		if err != nil {
			return err
		}

		for _, a := range page.Announcements {
			printf("%s\t%s\t%s", a.ID, a.Title, a.Description)
		}
		printf("page %d of %d", announcePage, page.TotalPages)
		return nil
	},
}

var announcementsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Publish an announcement (admin)",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.close()

		if err := rt.requireRole(studysdk.RoleAdmin); err != nil {
			return err
		}

		err = rt.session.CreateAnnouncement(cmd.Context(), studysdk.CreateAnnouncementRequest{
			Title:       announceTitle,
			Description: announceDescription,
		})
		if err != nil {
			return err
		}
		printf("Announcement published.")
		return nil
	},
}

func init() {
	announcementsListCmd.Flags().IntVar(&announcePage, "page", 1, "page number")
	announcementsListCmd.Flags().IntVar(&announceLimit, "limit", 10, "results per page")

	announcementsCreateCmd.Flags().StringVar(&announceTitle, "title", "", "announcement title")
	announcementsCreateCmd.Flags().StringVar(&announceDescription, "description", "", "announcement body")

	announcementsCmd.AddCommand(announcementsListCmd, announcementsCreateCmd)
}
