package adapter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	m "github.com/mouse-blink/cooplint/internal/model"
)

// DefaultReportsDir is where analysis reports are persisted.
const DefaultReportsDir = ".cooplint-reports"

// ReportStore persists and retrieves analysis reports.
type ReportStore interface {
	Save(report m.Report) (m.Path, error)
	Load(path m.Path) (m.Report, error)
	Latest() (m.Report, m.Path, error)
}

type reportStore struct {
	dir string
	now func() time.Time
}

// NewReportStore constructs a ReportStore rooted at dir. An empty dir
// selects DefaultReportsDir in the working directory.
func NewReportStore(dir string) ReportStore {
	if dir == "" {
		dir = DefaultReportsDir
	}

	return &reportStore{dir: dir, now: time.Now}
}

// Save writes the report as a timestamped JSON file. The timestamp
// format sorts lexically, which is what Latest relies on.
func (rs *reportStore) Save(report m.Report) (m.Path, error) {
	if err := os.MkdirAll(rs.dir, 0o750); err != nil {
		return "", fmt.Errorf("failed to create reports dir: %w", err)
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}

	name := fmt.Sprintf("cooplint-%s.json", rs.now().UTC().Format("20060102-150405.000000000"))
	path := filepath.Join(rs.dir, name)

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}

	return m.Path(path), nil
}

// Load reads one stored report.
func (rs *reportStore) Load(path m.Path) (m.Report, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.Report{}, fmt.Errorf("failed to read report: %w", err)
	}

	var report m.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return m.Report{}, fmt.Errorf("failed to decode report %s: %w", path, err)
	}

	return report, nil
}

// Latest loads the most recently saved report.
func (rs *reportStore) Latest() (m.Report, m.Path, error) {
	entries, err := os.ReadDir(rs.dir)
	if err != nil {
		return m.Report{}, "", fmt.Errorf("failed to list reports: %w", err)
	}

	var names []string

	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), "cooplint-") && strings.HasSuffix(e.Name(), ".json") {
			names = append(names, e.Name())
		}
	}

	if len(names) == 0 {
		return m.Report{}, "", fmt.Errorf("no reports found in %s", rs.dir)
	}

	sort.Strings(names)

	path := m.Path(filepath.Join(rs.dir, names[len(names)-1]))

	report, err := rs.Load(path)
	if err != nil {
		return m.Report{}, "", err
	}

	return report, path, nil
}
