package types

import "fmt"

// MalformedProfileError reports a structural violation of the input profile
// contract: a required field is absent or the document shape is wrong.
type MalformedProfileError struct {
	Profile string // "candidate" or "job"
	Field   string
	Message string
}

func (e *MalformedProfileError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("malformed %s profile: %s: %s", e.Profile, e.Field, e.Message)
	}
	return fmt.Sprintf("malformed %s profile: %s", e.Profile, e.Message)
}
