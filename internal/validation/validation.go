// Package validation contains the logic for binding and validating
// request data.
//
// It decodes path parameters, query strings and JSON bodies into request
// structs, enforces the rules declared in their `validate` tags and turns
// failures into the 400 error envelope clients understand.
package validation
