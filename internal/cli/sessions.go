package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/studyhubhq/studyhub/pkg/studysdk"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Browse and manage study sessions",
}

var sessionsSearch string

var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List study sessions (tutors see their own, admins see all)",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.close()

		if err := rt.requireRole(studysdk.RoleTutor, studysdk.RoleAdmin); err != nil {
			return err
		}

		sessions, err := rt.session.ListStudySessions(cmd.Context(), sessionsSearch)
		if err != nil {
			return err
		}

		for _, s := range sessions {
			printf("%s\t%-10s\t%s (by %s, fee %.2f)", s.ID, s.Status, s.Title, s.TutorName, s.Fee)
		}
		return nil
	},
}

var sessionsApprovedCmd = &cobra.Command{
	Use:   "approved",
	Short: "List approved sessions open for booking",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.close()

		sessions, err := rt.session.ListApprovedSessions(cmd.Context())
		if err != nil {
			return err
		}

		for _, s := range sessions {
			printf("%s\t%s (by %s, fee %.2f)", s.ID, s.Title, s.TutorName, s.Fee)
		}
		return nil
	},
}

var sessionsShowCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Show one session's details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.close()

		s, err := rt.session.GetStudySession(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		printf("%s\nTutor: %s <%s>\nStatus: %s\nFee: %.2f\nClass: %s %s-%s (%s)\nRegistration: %s to %s\nMax participants: %d\n\n%s",
			s.Title, s.TutorName, s.TutorEmail, s.Status, s.Fee,
			s.ClassStartDate, s.ClassStartTime, s.ClassEndTime, s.Duration,
			s.RegistrationStart, s.RegistrationEnd, s.MaxParticipants, s.Description)
		return nil
	},
}

var tutorsCmd = &cobra.Command{
	Use:   "tutors",
	Short: "List tutors on the platform",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.close()

		tutors, err := rt.session.ListTutors(cmd.Context())
		if err != nil {
			return err
		}

		for _, t := range tutors {
			printf("%s\t%s <%s>", t.ID, t.Name, t.Email)
		}
		return nil
	},
}

var createSessionReq studysdk.CreateSessionRequest
var createSessionImage string

var sessionsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Propose a new study session (tutor)",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.close()

		if err := rt.requireRole(studysdk.RoleTutor); err != nil {
			return err
		}

		id, err := rt.currentIdentity()
		if err != nil {
			return err
		}

		req := createSessionReq
		req.TutorName = id.Name
		req.TutorEmail = id.Email

		if createSessionImage != "" {
			f, err := os.Open(createSessionImage)
			if err != nil {
				return fmt.Errorf("failed to open image: %w", err)
			}
			defer f.Close()
			req.Image = &studysdk.FileUpload{Filename: filepath.Base(createSessionImage), Content: f}
		}

		if err := rt.session.CreateStudySession(cmd.Context(), req); err != nil {
			return err
		}
		printf("Session proposed; awaiting admin approval.")
		return nil
	},
}

var (
	approveFee     float64
	rejectReason   string
	rejectFeedback string
)

var sessionsApproveCmd = &cobra.Command{
	Use:   "approve <session-id>",
	Short: "Approve a pending session and set its fee (admin)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.close()

		if err := rt.requireRole(studysdk.RoleAdmin); err != nil {
			return err
		}

		decision := studysdk.SessionDecision{Status: studysdk.SessionStatusAccepted, Fee: approveFee}
		if err := rt.session.DecideStudySession(cmd.Context(), args[0], decision); err != nil {
			return err
		}
		printf("Session accepted.")
		return nil
	},
}

var sessionsRejectCmd = &cobra.Command{
	Use:   "reject <session-id>",
	Short: "Reject a pending session (admin)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.close()

		if err := rt.requireRole(studysdk.RoleAdmin); err != nil {
			return err
		}

		decision := studysdk.SessionDecision{
			Status:          studysdk.SessionStatusRejected,
			RejectionReason: rejectReason,
			Feedback:        rejectFeedback,
		}
		if err := rt.session.DecideStudySession(cmd.Context(), args[0], decision); err != nil {
			return err
		}
		printf("Session rejected.")
		return nil
	},
}

var sessionsDeleteCmd = &cobra.Command{
	Use:   "delete <session-id>",
	Short: "Delete a session (admin)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.close()

		if err := rt.requireRole(studysdk.RoleAdmin); err != nil {
			return err
		}

		if err := rt.session.DeleteStudySession(cmd.Context(), args[0]); err != nil {
			return err
		}
		printf("Session deleted.")
		return nil
	},
}

func init() {
	sessionsListCmd.Flags().StringVar(&sessionsSearch, "search", "", "free-text filter")

	f := sessionsCreateCmd.Flags()
	f.StringVar(&createSessionReq.Title, "title", "", "session title")
	f.StringVar(&createSessionReq.Description, "description", "", "session description")
	f.StringVar(&createSessionReq.RegistrationStart, "registration-start", "", "registration opens (YYYY-MM-DD)")
	f.StringVar(&createSessionReq.RegistrationEnd, "registration-end", "", "registration closes (YYYY-MM-DD)")
	f.StringVar(&createSessionReq.ClassStartDate, "class-date", "", "class start date (YYYY-MM-DD)")
	f.StringVar(&createSessionReq.ClassStartTime, "class-start", "", "class start time (HH:MM)")
	f.StringVar(&createSessionReq.ClassEndTime, "class-end", "", "class end time (HH:MM)")
	f.StringVar(&createSessionReq.Duration, "duration", "", "session duration")
	f.Float64Var(&createSessionReq.Fee, "fee", 0, "proposed fee")
	f.IntVar(&createSessionReq.MaxParticipants, "max-participants", 0, "participant cap")
	f.StringVar(&createSessionImage, "image", "", "path to a banner image")

	sessionsApproveCmd.Flags().Float64Var(&approveFee, "fee", 0, "final session fee")
	sessionsRejectCmd.Flags().StringVar(&rejectReason, "reason", "", "rejection reason")
	sessionsRejectCmd.Flags().StringVar(&rejectFeedback, "feedback", "", "feedback for the tutor")

	sessionsCmd.AddCommand(
		sessionsListCmd,
		sessionsApprovedCmd,
		sessionsShowCmd,
		sessionsCreateCmd,
		sessionsApproveCmd,
		sessionsRejectCmd,
		sessionsDeleteCmd,
		tutorsCmd,
	)
}
