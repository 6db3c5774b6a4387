package main

import (
	"fmt"

	"github.com/deppfellow/blog-posts/internal/lib/email"
	"github.com/spf13/cobra"
)

// newEmailPreviewCmd renders an email template with its sample data. It
// needs no configuration.
func newEmailPreviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "email-preview [template]",
		Short: "Render an email template with sample data to stdout",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := email.TemplatePostAdded
			if len(args) == 1 {
				name = email.Template(args[0])
			}

			data, ok := email.PreviewData[name]
			if !ok {
				return fmt.Errorf("no preview data for template %q", name)
			}

			body, err := email.Render(name, data)
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), body)
			return err
		},
	}
}
