package email

// PreviewData contains sample template data for local preview/testing.
//
// It maps:
//
//	templateName -> (templateVariableName -> exampleValue)
//
// Example:
//
//	PreviewData["post_added"]["PostTitle"] == "Hello, world"
var PreviewData = map[Template]map[string]string{
	TemplatePostAdded: {
		"PostID":    "1",
		"PostSlug":  "hello-world",
		"PostTitle": "Hello, world",
	},
}
