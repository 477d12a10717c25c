// Package save persists game sessions to a single JSON file keyed by player
// login. A missing or unreadable store is always treated as having no saves;
// persistence problems never abort a running game.
package save

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/samdwyer/labyrinth/internal/world"
)

// DefaultPath is the save file used when no override is configured.
const DefaultPath = "game_save.json"

// Snapshot is the field-for-field persisted state of one session.
type Snapshot struct {
	Round       int             `json:"round"`
	CurrentTurn int             `json:"current_turn"`
	FireCells   []world.Coord   `json:"fire_cells"`
	Heroes      []HeroRecord    `json:"heroes"`
	Labyrinth   LabyrinthRecord `json:"labyrinth"`
}

// HeroRecord is one hero's persisted state.
type HeroRecord struct {
	Name         string      `json:"name"`
	Health       int         `json:"health"`
	Position     world.Coord `json:"position"`
	PrevPosition world.Coord `json:"prev_position"`
	HasKey       bool        `json:"has_key"`
	CountHeal    int         `json:"count_heal"`
}

// LabyrinthRecord is the persisted labyrinth overlay.
type LabyrinthRecord struct {
	Grid       [][]int       `json:"grid"`
	FireCoords []world.Coord `json:"fire_coords"`
	KeyCoord   world.Coord   `json:"key_coord"`
	GolemCoord world.Coord   `json:"golem_coord"`
	KeyPresent bool          `json:"key"`
}

// Store reads and writes the keyed save file with whole-file
// read-modify-write. Not designed for concurrent writers; the last writer
// wins, which is acceptable for a single local player.
type Store struct {
	path string
	log  *log.Logger
}

// NewStore creates a store backed by the given file path.
func NewStore(path string, logger *log.Logger) *Store {
	if path == "" {
		path = DefaultPath
	}
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Store{path: path, log: logger}
}

// Load returns the snapshot saved for the login, or false when no usable save
// exists. A corrupt store reads the same as a missing one.
func (s *Store) Load(login string) (*Snapshot, bool) {
	all := s.readAll()
	raw, ok := all[login]
	if !ok {
		return nil, false
	}
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		s.log.WithError(err).Warn("save record is corrupt, treating as absent")
		return nil, false
	}
	return &snap, true
}

// Save upserts the snapshot for the login, keeping other players' records.
func (s *Store) Save(login string, snap *Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	all := s.readAll()
	all[login] = raw
	return s.writeAll(all)
}

// Delete removes the login's record, used when the player declines a resume.
// Deleting an absent record is not an error.
func (s *Store) Delete(login string) error {
	all := s.readAll()
	if _, ok := all[login]; !ok {
		return nil
	}
	delete(all, login)
	return s.writeAll(all)
}

// readAll loads the whole keyed collection. Missing and corrupt files both
// come back as an empty collection.
func (s *Store) readAll() map[string]json.RawMessage {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.log.WithError(err).Warn("save file unreadable, treating as empty")
		}
		return map[string]json.RawMessage{}
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(content, &all); err != nil {
		s.log.WithError(err).Warn("save file corrupt, treating as empty")
		return map[string]json.RawMessage{}
	}
	if all == nil {
		all = map[string]json.RawMessage{}
	}
	return all
}

func (s *Store) writeAll(all map[string]json.RawMessage) error {
	content, err := json.MarshalIndent(all, "", "    ")
	if err != nil {
		return fmt.Errorf("encode save file: %w", err)
	}
	if err := os.WriteFile(s.path, content, 0o644); err != nil {
		return fmt.Errorf("write save file: %w", err)
	}
	return nil
}
