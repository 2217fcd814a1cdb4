// pkg/registry/registry.go
package registry

import (
	"encoding/json"
	"fmt"
	"os"
)

func LoadRegistry(path string) (*ActivityRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var reg ActivityRegistry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("parse activity registry %s: %w", path, err)
	}
	return &reg, nil
}

// FindByTaskType returns the activity registered for a Camunda task type.
func (r *ActivityRegistry) FindByTaskType(taskType string) (*Activity, bool) {
	for i := range r.Activities {
		if r.Activities[i].TaskType == taskType {
			return &r.Activities[i], true
		}
	}
	return nil, false
}

// Validate checks registry-level integrity: unique IDs and task types, and
// a non-empty task type on every activity.
func (r *ActivityRegistry) Validate() error {
	ids := make(map[string]struct{}, len(r.Activities))
	taskTypes := make(map[string]struct{}, len(r.Activities))

	for _, activity := range r.Activities {
		if activity.ID == "" {
			return fmt.Errorf("activity with empty id")
		}
		if activity.TaskType == "" {
			return fmt.Errorf("activity %s has no task type", activity.ID)
		}
		if _, dup := ids[activity.ID]; dup {
			return fmt.Errorf("duplicate activity id %s", activity.ID)
		}
		if _, dup := taskTypes[activity.TaskType]; dup {
			return fmt.Errorf("duplicate task type %s", activity.TaskType)
		}
		ids[activity.ID] = struct{}{}
		taskTypes[activity.TaskType] = struct{}{}
	}
	return nil
}
