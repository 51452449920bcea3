package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/pfrederiksen/ffcv-tracker/internal/competition"
)

// DefaultSnapshot is the snapshot name used when none is given
const DefaultSnapshot = "results"

var unsafeName = regexp.MustCompile(`[^a-z0-9_-]+`)

// Storage handles persistence of result snapshots
type Storage struct {
	dataDir string
}

// New creates a Storage rooted at dataDir, creating the directory if needed.
// A leading "~/" is expanded to the user's home directory.
func New(dataDir string) (*Storage, error) {
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Storage{
		dataDir: dataDir,
	}, nil
}

// Dir returns the resolved data directory
func (s *Storage) Dir() string {
	return s.dataDir
}

func (s *Storage) snapshotPath(name string) string {
	name = unsafeName.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "_")
	name = strings.Trim(name, "_")
	if name == "" {
		name = DefaultSnapshot
	}
	return filepath.Join(s.dataDir, fmt.Sprintf("snapshot_%s.json", name))
}

// LoadSnapshot reads the named snapshot. A missing file yields an empty snapshot.
func (s *Storage) LoadSnapshot(name string) (*competition.Snapshot, error) {
	data, err := os.ReadFile(s.snapshotPath(name))
	if err != nil {
		if os.IsNotExist(err) {
			return competition.NewSnapshot(), nil
		}
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var snapshot competition.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}

	if snapshot.Results == nil {
		snapshot.Results = make(map[string]string)
	}

	return &snapshot, nil
}

// SaveSnapshot writes the named snapshot, stamping UpdatedAt
func (s *Storage) SaveSnapshot(snapshot *competition.Snapshot, name string) error {
	snapshot.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	path := s.snapshotPath(name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replacing snapshot: %w", err)
	}

	return nil
}

// SaveMatches builds a snapshot from matches and saves it under name
func (s *Storage) SaveMatches(matches []competition.Match, name string) error {
	snapshot := competition.CreateSnapshot(matches, time.Now().UTC().Format(time.RFC3339))
	return s.SaveSnapshot(snapshot, name)
}
