package systems

import (
	"encoding/json"
	"fmt"

	"github.com/quasilyte/gdata"
)

// ScoreStore persists the best score between runs.
type ScoreStore interface {
	LoadBestScore() (int, error)
	SaveBestScore(score int) error
}

const bestScoreItem = "bestScore"

// SavedScore represents the score data stored on disk
type SavedScore struct {
	BestScore int `json:"bestScore"`
}

// GdataScoreStore keeps the best score in the platform's app data directory.
type GdataScoreStore struct {
	manager *gdata.Manager
}

// OpenScoreStore initializes the gdata manager for score storage
func OpenScoreStore(appName string) (*GdataScoreStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open score store: %w", err)
	}
	return &GdataScoreStore{manager: m}, nil
}

func (s *GdataScoreStore) LoadBestScore() (int, error) {
	data, err := s.manager.LoadItem(bestScoreItem)
	if err != nil {
		return 0, fmt.Errorf("load best score: %w", err)
	}
	if len(data) == 0 {
		// Nothing saved yet
		return 0, nil
	}

	var saved SavedScore
	if err := json.Unmarshal(data, &saved); err != nil {
		return 0, fmt.Errorf("parse best score: %w", err)
	}
	return saved.BestScore, nil
}

func (s *GdataScoreStore) SaveBestScore(score int) error {
	data, err := json.Marshal(SavedScore{BestScore: score})
	if err != nil {
		return fmt.Errorf("serialize best score: %w", err)
	}
	if err := s.manager.SaveItem(bestScoreItem, data); err != nil {
		return fmt.Errorf("save best score: %w", err)
	}
	return nil
}

// MemoryScoreStore is a ScoreStore that never touches the disk.
type MemoryScoreStore struct {
	Best  int
	Saves int
}

func (s *MemoryScoreStore) LoadBestScore() (int, error) {
	return s.Best, nil
}

func (s *MemoryScoreStore) SaveBestScore(score int) error {
	s.Best = score
	s.Saves++
	return nil
}
