// pkg/registry/schema.go
package registry

// ActivityRegistry is the catalog of worker activities the manager can run.
// It is the single source of truth for task types, their declared error
// codes, and the JSON schemas their payloads must satisfy.
type ActivityRegistry struct {
	Version     string     `json:"version"`
	LastUpdated string     `json:"lastUpdated"`
	Activities  []Activity `json:"activities"`
}

type Activity struct {
	ID                   string                 `json:"id"`
	DisplayName          string                 `json:"displayName"`
	Description          string                 `json:"description"`
	Category             string                 `json:"category"`
	Version              string                 `json:"version"`
	TaskType             string                 `json:"taskType"`
	ImplementationStatus string                 `json:"implementationStatus"`
	InputSchema          map[string]interface{} `json:"inputSchema,omitempty"`
	OutputSchema         map[string]interface{} `json:"outputSchema,omitempty"`
	ErrorCodes           []string               `json:"errorCodes,omitempty"`
	Timeout              string                 `json:"timeout,omitempty"`
	Retries              int                    `json:"retries,omitempty"`
	Tags                 []string               `json:"tags,omitempty"`
}
