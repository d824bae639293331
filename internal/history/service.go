package history

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"editorial/internal/config"
	"editorial/internal/domain"
	"editorial/internal/domain/models"
)

// Service implements services.HistoryService over a Store. Entries are kept
// newest first and capped at config.MaxHistoryEntries; saving past the cap
// silently drops the oldest entries.
type Service struct {
	store  Store
	logger *slog.Logger
	now    func() time.Time
}

func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger, now: time.Now}
}

func (s *Service) Save(ctx context.Context, doc *models.EditorialDocument, settings models.LayoutSettings) (*models.SavedProject, error) {
	projects, err := s.store.Load()
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	entry := models.SavedProject{
		ID:        uuid.NewString(),
		Timestamp: s.now().UTC(),
		Doc:       *doc,
		Settings:  settings,
	}

	projects = append([]models.SavedProject{entry}, projects...)
	if len(projects) > config.MaxHistoryEntries {
		projects = projects[:config.MaxHistoryEntries]
	}

	if err := s.store.Save(projects); err != nil {
		return nil, fmt.Errorf("save history: %w", err)
	}

	s.logger.Info("project saved", "project_id", entry.ID, "entries", len(projects))
	return &entry, nil
}

func (s *Service) List(ctx context.Context) ([]models.SavedProject, error) {
	projects, err := s.store.Load()
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	return projects, nil
}

func (s *Service) Get(ctx context.Context, id string) (*models.SavedProject, error) {
	projects, err := s.store.Load()
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	for i := range projects {
		if projects[i].ID == id {
			return &projects[i], nil
		}
	}
	return nil, domain.ErrNotFound
}
