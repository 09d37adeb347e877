package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/studyhubhq/studyhub/pkg/studysdk"
)

var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "Share and manage study materials",
}

var uploadReq studysdk.UploadMaterialRequest
var uploadImage string

var materialsUploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Share a material for one of your sessions (tutor)",
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

		req := uploadReq
		req.TutorName = id.Name
		req.TutorEmail = id.Email

		if uploadImage != "" {
			f, err := os.Open(uploadImage)
			if err != nil {
				return fmt.Errorf("failed to open image: %w", err)
			}
			defer f.Close()
			req.Image = &studysdk.FileUpload{Filename: filepath.Base(uploadImage), Content: f}
		}

		if err := rt.session.UploadMaterial(cmd.Context(), req); err != nil {
			return err
		}
		printf("Material uploaded.")
		return nil
	},
}

var materialsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your uploaded materials (tutor)",
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

		materials, err := rt.session.ListMaterials(cmd.Context(), id.Email)
		if err != nil {
			return err
		}

		for _, m := range materials {
			printf("%s\t%s (session %s) %s", m.ID, m.Title, m.SessionID, m.Link)
		}
		return nil
	},
}

var (
	materialsPage   int
	materialsLimit  int
	materialsSearch string
)

var materialsAllCmd = &cobra.Command{
	Use:   "all",
	Short: "Page through every material on the platform (admin)",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.close()

		if err := rt.requireRole(studysdk.RoleAdmin); err != nil {
			return err
		}

		page, err := rt.session.ListAllMaterials(cmd.Context(), materialsPage, materialsLimit, materialsSearch)
		if err != nil {
			return err
		}

		for _, m := range page.Materials {
			printf("%s\t%s (by %s)", m.ID, m.Title, m.TutorEmail)
		}
		printf("%d materials total", page.TotalMaterials)
		return nil
	},
}

var materialsUpdateCmd = &cobra.Command{
	Use:   "update <material-id>",
	Short: "Replace a material's fields (tutor)",
	Args:  cobra.ExactArgs(1),
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

		req := uploadReq
		req.TutorName = id.Name
		req.TutorEmail = id.Email

		if uploadImage != "" {
			f, err := os.Open(uploadImage)
			if err != nil {
				return fmt.Errorf("failed to open image: %w", err)
			}
			defer f.Close()
			req.Image = &studysdk.FileUpload{Filename: filepath.Base(uploadImage), Content: f}
		}

		if err := rt.session.UpdateMaterial(cmd.Context(), args[0], req); err != nil {
			return err
		}
		printf("Material updated.")
		return nil
	},
}

var materialsDeleteCmd = &cobra.Command{
	Use:   "delete <material-id>",
	Short: "Delete a material (tutor or admin)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.close()

		if err := rt.requireRole(studysdk.RoleTutor, studysdk.RoleAdmin); err != nil {
			return err
		}

		if err := rt.session.DeleteMaterial(cmd.Context(), args[0]); err != nil {
			return err
		}
		printf("Material deleted.")
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{materialsUploadCmd, materialsUpdateCmd} {
		f := c.Flags()
		f.StringVar(&uploadReq.Title, "title", "", "material title")
		f.StringVar(&uploadReq.SessionID, "session", "", "session id the material belongs to")
		f.StringVar(&uploadReq.Link, "link", "", "external resource link")
		f.StringVar(&uploadImage, "image", "", "path to an image attachment")
	}

	materialsAllCmd.Flags().IntVar(&materialsPage, "page", 1, "page number")
	materialsAllCmd.Flags().IntVar(&materialsLimit, "limit", 10, "page size")
	materialsAllCmd.Flags().StringVar(&materialsSearch, "search", "", "free-text filter")

	materialsCmd.AddCommand(
		materialsUploadCmd,
		materialsListCmd,
		materialsAllCmd,
		materialsUpdateCmd,
		materialsDeleteCmd,
	)
}
