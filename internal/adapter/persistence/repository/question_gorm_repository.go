package repository

import (
	"context"
	"errors"
	"time"

	"temporada_ferias/internal/domain/entities"
	"temporada_ferias/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type questionRecord struct {
	ID         string    `gorm:"primaryKey;size:64"`
	Email      string    `gorm:"size:255;not null"`
	Question   string    `gorm:"type:text;not null"`
	Status     string    `gorm:"size:16;not null;index"`
	CreatedAt  time.Time `gorm:"autoCreateTime:false;index"`
	Answer     string    `gorm:"type:text"`
	AnsweredAt *time.Time
	AnsweredBy string `gorm:"size:255"`
	ArchivedAt *time.Time
	ArchivedBy string `gorm:"size:255"`
}

func (questionRecord) TableName() string { return "questions" }

type QuestionGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IQuestionRepository = (*QuestionGormRepository)(nil)

func NewQuestionGormRepository(db *gorm.DB) *QuestionGormRepository {
	return &QuestionGormRepository{db: db}
}

func (r *QuestionGormRepository) Create(ctx context.Context, q entities.Question) (entities.Question, error) {
	rec := toQuestionRecord(q)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return entities.Question{}, err
	}
	return q, nil
}

func (r *QuestionGormRepository) GetByID(ctx context.Context, id string) (entities.Question, error) {
	var rec questionRecord
	err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Question{}, nil
	}
	if err != nil {
		return entities.Question{}, err
	}
	return fromQuestionRecord(rec), nil
}

func (r *QuestionGormRepository) List(ctx context.Context) ([]entities.Question, error) {
	var recs []questionRecord
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&recs).Error; err != nil {
		return nil, err
	}
	items := make([]entities.Question, 0, len(recs))
	for _, rec := range recs {
		items = append(items, fromQuestionRecord(rec))
	}
	return items, nil
}

// Update fails with gorm.ErrRecordNotFound when the question does not exist.
func (r *QuestionGormRepository) Update(ctx context.Context, q entities.Question) (entities.Question, error) {
	rec := toQuestionRecord(q)
	res := r.db.WithContext(ctx).Model(&questionRecord{}).
		Where("id = ?", rec.ID).
		Updates(map[string]interface{}{
			"email":       rec.Email,
			"question":    rec.Question,
			"status":      rec.Status,
			"answer":      rec.Answer,
			"answered_at": rec.AnsweredAt,
			"answered_by": rec.AnsweredBy,
			"archived_at": rec.ArchivedAt,
			"archived_by": rec.ArchivedBy,
		})
	if res.Error != nil {
		return entities.Question{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Question{}, gorm.ErrRecordNotFound
	}
	return q, nil
}

func toQuestionRecord(q entities.Question) questionRecord {
	return questionRecord{
		ID:         q.ID,
		Email:      q.Email,
		Question:   q.Question,
		Status:     string(q.Status),
		CreatedAt:  q.CreatedAt.UTC(),
		Answer:     q.Answer,
		AnsweredAt: utcPtr(q.AnsweredAt),
		AnsweredBy: q.AnsweredBy,
		ArchivedAt: utcPtr(q.ArchivedAt),
		ArchivedBy: q.ArchivedBy,
	}
}

func fromQuestionRecord(rec questionRecord) entities.Question {
	return entities.Question{
		ID:         rec.ID,
		Email:      rec.Email,
		Question:   rec.Question,
		Status:     entities.QuestionStatus(rec.Status),
		CreatedAt:  rec.CreatedAt.UTC(),
		Answer:     rec.Answer,
		AnsweredAt: utcPtr(rec.AnsweredAt),
		AnsweredBy: rec.AnsweredBy,
		ArchivedAt: utcPtr(rec.ArchivedAt),
		ArchivedBy: rec.ArchivedBy,
	}
}
