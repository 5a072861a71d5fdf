package http

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Request payloads are validated against embedded JSON schemas before they
// reach the services, so malformed input never touches the document.

var (
	//go:embed schema/contact.json
	contactSchema []byte
	//go:embed schema/login.json
	loginSchema []byte
	//go:embed schema/personal_info.json
	personalInfoSchema []byte
	//go:embed schema/highlights.json
	highlightsSchema []byte
	//go:embed schema/skills.json
	skillsSchema []byte
	//go:embed schema/experience.json
	experienceSchema []byte
	//go:embed schema/experience_patch.json
	experiencePatchSchema []byte
	//go:embed schema/education.json
	educationSchema []byte
	//go:embed schema/education_patch.json
	educationPatchSchema []byte
)

// validateJSON checks the raw request body against one of the embedded
// schemas and collects all violations into a single error.
func validateJSON(schema, body []byte) error {
	res, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schema),
		gojsonschema.NewBytesLoader(body),
	)
	if err != nil {
		return fmt.Errorf("invalid payload: %w", err)
	}
	if res.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("schema validation failed: %s", strings.Join(msgs, "; "))
}
