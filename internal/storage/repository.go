// ABOUTME: Repository interface for climbing log storage.
// ABOUTME: Defines the contract for sends, sessions, meal logs, and profile.
package storage

import (
	"time"

	"github.com/harperreed/crag/internal/models"
)

// Repository defines the storage interface for the climbing log.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	// Send operations
	CreateSend(s *models.Send) error
	GetSend(idOrPrefix string) (*models.Send, error)
	ListSends(style *models.Style, limit int) ([]*models.Send, error)
	DeleteSend(idOrPrefix string) error

	// Session operations
	CreateSession(s *models.Session) error
	GetSession(idOrPrefix string) (*models.Session, error)
	ListSessions(sessionType *models.SessionType, limit int) ([]*models.Session, error)
	DeleteSession(idOrPrefix string) error

	// Meal log operations
	CreateMealLog(m *models.MealLog) error
	ListMealLogs(since *time.Time, limit int) ([]*models.MealLog, error)
	DeleteMealLog(idOrPrefix string) error

	// Profile
	GetProfile() (*models.Profile, error)
	SaveProfile(p *models.Profile) error

	// Export/Import
	GetAllData() (*ExportData, error)
	ImportData(data *ExportData) error
	ExportJSON() ([]byte, error)
	ExportYAML() ([]byte, error)
	ExportMarkdown(since *time.Time) (string, error)
	ImportJSON(data []byte) error

	// Lifecycle
	Close() error
}
