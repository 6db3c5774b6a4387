package email

import "embed"

// Template is a string-based enum naming email templates.
type Template string

const (
	// TemplatePostAdded corresponds to templates/post_added.html
	TemplatePostAdded Template = "post_added"
)

// Templates are compiled into the binary so the worker does not depend on
// its working directory.
//
//go:embed templates/*.html
var templateFS embed.FS
