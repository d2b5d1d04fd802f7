// Package jsonfile persists application state as plain JSON documents on the
// local filesystem. Three independent documents are kept under the data
// directory: the teams document (teams plus the draft), the favorites list
// and the view preference. Documents are loaded once on start and rewritten
// synchronously after every successful mutation, so a reload observes the
// state of the last returned operation. A failed write keeps the in-memory
// mutation and surfaces entities.ErrPersistence so callers can prompt a retry.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/frankuxui/pokemon-fight/internal/entities"

	"go.uber.org/zap"
)

const (
	teamsFile     = "teams.json"
	favoritesFile = "favorite-teams.json"
	viewFile      = "view-config.json"

	schemaVersion = 1
)

type teamsDocument struct {
	Version int             `json:"version"`
	Teams   []entities.Team `json:"teams"`
	Draft   *entities.Draft `json:"draft"`
}

type favoritesDocument struct {
	TeamIDs []string `json:"teamIds"`
}

type viewDocument struct {
	View entities.ViewPreference `json:"view"`
}

// Store is the jsonfile-backed repository. All operations lock the single
// mutex, so mutations apply atomically and never interleave.
type Store struct {
	log *zap.SugaredLogger
	dir string

	mu        sync.Mutex
	teams     []entities.Team
	draft     *entities.Draft
	favorites []string
	view      entities.ViewPreference
}

// New constructs a store rooted at the given data directory.
func New(log *zap.SugaredLogger, dir string) *Store {
	return &Store{
		log:  log,
		dir:  dir,
		view: entities.ViewTable,
	}
}

// OnStart creates the data directory and loads the persisted documents.
// Missing documents leave the defaults in place.
func (s *Store) OnStart(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	var teams teamsDocument
	ok, err := s.load(teamsFile, &teams)
	if err != nil {
		return err
	}
	if ok {
		if teams.Version > schemaVersion {
			return fmt.Errorf("teams document version %d is newer than supported %d", teams.Version, schemaVersion)
		}
		s.teams = teams.Teams
		s.draft = teams.Draft
	}

	var favs favoritesDocument
	if ok, err = s.load(favoritesFile, &favs); err != nil {
		return err
	} else if ok {
		s.favorites = favs.TeamIDs
	}

	var view viewDocument
	if ok, err = s.load(viewFile, &view); err != nil {
		return err
	} else if ok && view.View.Valid() {
		s.view = view.View
	}

	s.log.Infow("storage loaded", "dir", s.dir, "teams", len(s.teams), "favorites", len(s.favorites))
	return nil
}

// OnStop flushes every document a final time.
func (s *Store) OnStop(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return errors.Join(s.persistTeams(), s.persistFavorites(), s.persistView())
}

func (s *Store) load(name string, out any) (bool, error) {
	raw, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("decode %s: %w", name, err)
	}
	return true, nil
}

// write replaces a document atomically via a temp file rename, so a crash
// mid-write never leaves a truncated document behind.
func (s *Store) write(name string, doc any) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", entities.ErrPersistence, name, err)
	}

	path := filepath.Join(s.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %v", entities.ErrPersistence, name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("%w: replace %s: %v", entities.ErrPersistence, name, err)
	}
	return nil
}

func (s *Store) persistTeams() error {
	err := s.write(teamsFile, teamsDocument{Version: schemaVersion, Teams: s.teams, Draft: s.draft})
	if err != nil {
		s.log.Errorw("teams document write failed, in-memory state kept", "error", err)
	}
	return err
}

func (s *Store) persistFavorites() error {
	err := s.write(favoritesFile, favoritesDocument{TeamIDs: s.favorites})
	if err != nil {
		s.log.Errorw("favorites document write failed, in-memory state kept", "error", err)
	}
	return err
}

func (s *Store) persistView() error {
	err := s.write(viewFile, viewDocument{View: s.view})
	if err != nil {
		s.log.Errorw("view document write failed, in-memory state kept", "error", err)
	}
	return err
}
