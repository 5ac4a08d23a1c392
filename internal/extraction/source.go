package extraction

import (
	"context"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/school-scheduler/internal/config"
)

// Source é o colaborador externo de extração: pode falhar, e nesse caso
// a sessão fica vazia e indisponível.
type Source interface {
	Fetch(ctx context.Context) ([]RawSchoolRecord, error)
}

func NewDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(5)
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	return db, nil
}

type GormSource struct {
	db *gorm.DB
}

func NewGormSource(db *gorm.DB) *GormSource {
	return &GormSource{db: db}
}

// Fetch lê as linhas cruas na ordem em que o pipeline as depositou,
// agrupadas por escola.
func (s *GormSource) Fetch(ctx context.Context) ([]RawSchoolRecord, error) {
	var rows []RawSchoolRecord
	if err := s.db.WithContext(ctx).
		Order("codigo ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

var _ Source = (*GormSource)(nil)
