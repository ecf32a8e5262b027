package trajectories

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Record is one immutable audit entry: everything needed to replay a
// step offline.
type Record struct {
	StepNumber        int            `json:"step_number"`
	Thought           string         `json:"thought"`
	ToolName          string         `json:"tool_name"`
	ToolArguments     map[string]any `json:"tool_arguments"`
	TerminalOutput    bool           `json:"terminal_output"`
	TerminalContent   string         `json:"terminal_content,omitempty"`
	FileViewerChanged bool           `json:"file_viewer_changed"`
	OpenFileName      string         `json:"open_file_name,omitempty"`
	FileViewerContent string         `json:"file_viewer_content,omitempty"`
	ReviewComment     string         `json:"review_comment,omitempty"`
}

// Trajectory is the append-only sequence of records for one run; the
// ground truth for offline replay.
type Trajectory struct {
	records []Record
}

func New() *Trajectory {
	return &Trajectory{}
}

func (t *Trajectory) Append(record Record) {
	t.records = append(t.records, record)
}

func (t *Trajectory) NumRecords() int {
	return len(t.records)
}

func (t *Trajectory) Record(i int) Record {
	return t.records[i]
}

// WriteFile serializes the trajectory as an ordered JSON array into
// dir/trajectory.json.
func (t *Trajectory) WriteFile(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	records := t.records
	if records == nil {
		records = []Record{}
	}
	content, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "trajectory.json"), content, 0644)
}
