// Package matching implements the CV-to-job matching engine: per-facet
// category matchers, score aggregation, and gap reporting.
package matching

import "fmt"

// ConfigError reports an invalid engine configuration. It is raised during
// engine construction, before any matching occurs, and is never a
// per-candidate condition.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s", e.Message)
}
