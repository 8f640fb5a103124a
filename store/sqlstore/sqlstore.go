// Package sqlstore implements store.Store with gorm. Colleges and questions
// are rows owned by their parent and ordered by a position column.
package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/andrewpaige1/essaydraft-api/models"
	"github.com/andrewpaige1/essaydraft-api/store"
)

type Store struct {
	db *gorm.DB
}

var _ store.Store = (*Store)(nil)

// Open connects with the given dialector, verifies the connection and
// migrates the schema.
func Open(ctx context.Context, dialector gorm.Dialector) (*Store, error) {
	db, err := connect(ctx, dialector, 0)
	if err != nil {
		return nil, err
	}
	return New(db)
}

func OpenPostgres(ctx context.Context, dsn string) (*Store, error) {
	return Open(ctx, postgres.Open(dsn))
}

// OpenSQLite opens a SQLite database with a single pooled connection, since
// SQLite serializes writers anyway.
func OpenSQLite(ctx context.Context, dsn string) (*Store, error) {
	db, err := connect(ctx, sqlite.Open(dsn), 1)
	if err != nil {
		return nil, err
	}
	return New(db)
}

func connect(ctx context.Context, dialector gorm.Dialector, maxOpenConns int) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if maxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(maxOpenConns)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}
	return db, nil
}

// New wraps an already opened connection and migrates the schema.
func New(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&models.User{}, &models.College{}, &models.Question{}); err != nil {
		return nil, fmt.Errorf("failed to auto migrate database: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *Store) CreateUser(ctx context.Context, u *models.User) error {
	err := s.db.WithContext(ctx).Omit(clause.Associations).Create(u).Error
	if err != nil {
		if isDuplicate(err) {
			return store.ErrConflict
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (s *Store) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *Store) UserByID(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *Store) UpdateDetail(ctx context.Context, userID string, field models.DetailField, value string) error {
	column := field.Column()
	if column == "" {
		return fmt.Errorf("unknown detail field %q", field)
	}

	result := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).Update(column, value)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) ReplaceDetails(ctx context.Context, userID string, details models.Details) error {
	result := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).Updates(details.Columns())
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) Colleges(ctx context.Context, userID string) ([]models.College, error) {
	db := s.db.WithContext(ctx)
	if err := requireUser(db, userID); err != nil {
		return nil, err
	}
	return listColleges(db, userID)
}

func (s *Store) College(ctx context.Context, userID, collegeID string) (*models.College, error) {
	var college models.College
	err := s.db.WithContext(ctx).
		Preload("Questions", byPosition).
		Where("id = ? AND user_id = ?", collegeID, userID).
		First(&college).Error
	if err != nil {
		return nil, translate(err)
	}
	normalize(&college)
	return &college, nil
}

func (s *Store) AddCollege(ctx context.Context, userID string, c models.College) ([]models.College, error) {
	var colleges []models.College
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireUser(tx, userID); err != nil {
			return err
		}

		pos, err := nextPosition(tx, &models.College{}, "user_id = ?", userID)
		if err != nil {
			return err
		}
		c.UserID = userID
		c.Position = pos
		if c.ApplicationStatus == nil {
			c.ApplicationStatus = map[string]any{}
		}
		if err := tx.Omit("Questions").Create(&c).Error; err != nil {
			return err
		}

		colleges, err = listColleges(tx, userID)
		return err
	})
	if err != nil {
		return nil, translate(err)
	}
	return colleges, nil
}

func (s *Store) DeleteCollege(ctx context.Context, userID, collegeID string) ([]models.College, error) {
	var colleges []models.College
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireUser(tx, userID); err != nil {
			return err
		}
		if _, err := findCollege(tx, userID, collegeID); err != nil {
			return err
		}

		// questions first so the delete does not depend on FK cascade support
		if err := tx.Where("college_id = ?", collegeID).Delete(&models.Question{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id = ? AND user_id = ?", collegeID, userID).Delete(&models.College{}).Error; err != nil {
			return err
		}

		var err error
		colleges, err = listColleges(tx, userID)
		return err
	})
	if err != nil {
		return nil, translate(err)
	}
	return colleges, nil
}

func (s *Store) AddQuestion(ctx context.Context, userID, collegeID string, q models.Question) ([]models.Question, error) {
	var questions []models.Question
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findCollege(tx, userID, collegeID); err != nil {
			return err
		}

		pos, err := nextPosition(tx, &models.Question{}, "college_id = ?", collegeID)
		if err != nil {
			return err
		}
		q.CollegeID = collegeID
		q.Position = pos
		if err := tx.Create(&q).Error; err != nil {
			return err
		}

		questions, err = listQuestions(tx, collegeID)
		return err
	})
	if err != nil {
		return nil, translate(err)
	}
	return questions, nil
}

func (s *Store) UpdateAnswer(ctx context.Context, userID, collegeID, questionID, answer string) ([]models.Question, error) {
	var questions []models.Question
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findCollege(tx, userID, collegeID); err != nil {
			return err
		}

		result := tx.Model(&models.Question{}).
			Where("id = ? AND college_id = ?", questionID, collegeID).
			Update("answer", answer)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return store.ErrNotFound
		}

		var err error
		questions, err = listQuestions(tx, collegeID)
		return err
	})
	if err != nil {
		return nil, translate(err)
	}
	return questions, nil
}

func byPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position, created_at")
}

func requireUser(db *gorm.DB, userID string) error {
	var n int64
	if err := db.Model(&models.User{}).Where("id = ?", userID).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func findCollege(db *gorm.DB, userID, collegeID string) (*models.College, error) {
	var college models.College
	if err := db.Where("id = ? AND user_id = ?", collegeID, userID).First(&college).Error; err != nil {
		return nil, err
	}
	return &college, nil
}

func listColleges(db *gorm.DB, userID string) ([]models.College, error) {
	colleges := []models.College{}
	err := db.Preload("Questions", byPosition).
		Where("user_id = ?", userID).
		Scopes(byPosition).
		Find(&colleges).Error
	if err != nil {
		return nil, err
	}
	for i := range colleges {
		normalize(&colleges[i])
	}
	return colleges, nil
}

func listQuestions(db *gorm.DB, collegeID string) ([]models.Question, error) {
	questions := []models.Question{}
	if err := db.Where("college_id = ?", collegeID).Scopes(byPosition).Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func nextPosition(db *gorm.DB, model any, query string, arg string) (int, error) {
	var next int
	err := db.Model(model).Where(query, arg).Select("COALESCE(MAX(position), -1) + 1").Scan(&next).Error
	return next, err
}

// normalize keeps empty lists and maps as [] and {} in JSON
func normalize(c *models.College) {
	if c.Questions == nil {
		c.Questions = []models.Question{}
	}
	if c.ApplicationStatus == nil {
		c.ApplicationStatus = map[string]any{}
	}
}

func translate(err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound), errors.Is(err, store.ErrConflict):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return store.ErrNotFound
	default:
		return fmt.Errorf("db error: %w", err)
	}
}

func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}
