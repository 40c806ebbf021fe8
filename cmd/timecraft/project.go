package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/framefold/timecraft/internal/timeline"
)

// projectFile is the on-disk shape of a timeline the CLI loads. This is
// a tooling convenience for feeding the engine, not an engine
// persistence format.
type projectFile struct {
	Clips       []timeline.Clip       `json:"clips"`
	Transitions []timeline.Transition `json:"transitions,omitempty"`
}

func loadProject(path string) (projectFile, error) {
	var p projectFile
	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("read timeline %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("parse timeline %s: %w", path, err)
	}
	for i, c := range p.Clips {
		if c.ID == "" {
			return p, fmt.Errorf("timeline %s: clip %d has no id", path, i)
		}
		if !c.Kind.Valid() {
			return p, fmt.Errorf("timeline %s: clip %s has unknown kind %q", path, c.ID, c.Kind)
		}
		if c.Speed <= 0 {
			p.Clips[i].Speed = 1
		}
	}
	return p, nil
}
