package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"temporada_ferias/internal/domain/entities"
	"temporada_ferias/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const minQuestionLength = 10

var (
	ErrInvalidQuestion   = errors.New("invalid question")
	ErrInvalidQuestionID = errors.New("invalid question id")
	ErrQuestionNotFound  = errors.New("question not found")
	ErrInvalidAnswer     = errors.New("answer must have at least 10 characters")
	ErrQuestionArchived  = errors.New("question is archived")
)

// IQuestionUseCase is the landing page Q&A inbox.

type IQuestionUseCase interface {
	Submit(ctx context.Context, email, question string) (entities.Question, error)
	List(ctx context.Context) ([]entities.Question, error)
	Reply(ctx context.Context, id, answer, actor string) (entities.Question, error)
	Archive(ctx context.Context, id, actor string) (entities.Question, error)
}

type QuestionUseCase struct {
	repo     interfaces.IQuestionRepository
	notifier interfaces.INotifier
	now      func() time.Time
}

var _ IQuestionUseCase = (*QuestionUseCase)(nil)

func NewQuestionUseCase(repo interfaces.IQuestionRepository, notifier interfaces.INotifier) *QuestionUseCase {
	return &QuestionUseCase{repo: repo, notifier: notifier, now: time.Now}
}

func (u *QuestionUseCase) Submit(ctx context.Context, email, question string) (entities.Question, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	question = strings.TrimSpace(question)
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return entities.Question{}, fmt.Errorf("%w: email is not valid", ErrInvalidQuestion)
	}
	if utf8.RuneCountInString(question) < minQuestionLength {
		return entities.Question{}, fmt.Errorf("%w: question must have at least %d characters", ErrInvalidQuestion, minQuestionLength)
	}

	q := entities.Question{
		ID:        uuid.NewString(),
		Email:     email,
		Question:  question,
		Status:    entities.QuestionStatusPending,
		CreatedAt: u.now().UTC(),
	}
	created, err := u.repo.Create(ctx, q)
	if err != nil {
		zap.L().Error("[question][usecase] create failed", zap.String("email", email), zap.Error(err))
		return entities.Question{}, err
	}
	zap.L().Info("[question][usecase] submitted", zap.String("question_id", created.ID))
	return created, nil
}

// List returns the inbox newest first, archived entries included.
func (u *QuestionUseCase) List(ctx context.Context) ([]entities.Question, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

// Reply stores the answer and emails it to the asker. The stored answer is
// kept when the email fails; the error then wraps ErrNotificationFailed.
func (u *QuestionUseCase) Reply(ctx context.Context, id, answer, actor string) (entities.Question, error) {
	answer = strings.TrimSpace(answer)
	if utf8.RuneCountInString(answer) < minQuestionLength {
		return entities.Question{}, ErrInvalidAnswer
	}
	q, err := u.load(ctx, id)
	if err != nil {
		return entities.Question{}, err
	}
	if q.Status == entities.QuestionStatusArchived {
		return entities.Question{}, ErrQuestionArchived
	}

	at := u.now().UTC()
	q.Answer = answer
	q.Status = entities.QuestionStatusAnswered
	q.AnsweredAt = &at
	q.AnsweredBy = actorOrDefault(actor)

	saved, err := u.repo.Update(ctx, q)
	if err != nil {
		zap.L().Error("[question][usecase] reply update failed", zap.String("question_id", q.ID), zap.Error(err))
		return entities.Question{}, err
	}
	zap.L().Info("[question][usecase] answered", zap.String("question_id", saved.ID), zap.String("actor", saved.AnsweredBy))

	if u.notifier != nil {
		if err := u.notifier.QuestionAnswered(ctx, saved); err != nil {
			zap.L().Warn("[question][usecase] reply email failed", zap.String("question_id", saved.ID), zap.Error(err))
			return saved, fmt.Errorf("%w: %v", ErrNotificationFailed, err)
		}
	}
	return saved, nil
}

// Archive soft-deletes a question. Archiving twice keeps the first stamp.
func (u *QuestionUseCase) Archive(ctx context.Context, id, actor string) (entities.Question, error) {
	q, err := u.load(ctx, id)
	if err != nil {
		return entities.Question{}, err
	}
	if q.Status == entities.QuestionStatusArchived {
		return q, nil
	}

	at := u.now().UTC()
	q.Status = entities.QuestionStatusArchived
	q.ArchivedAt = &at
	q.ArchivedBy = actorOrDefault(actor)

	saved, err := u.repo.Update(ctx, q)
	if err != nil {
		zap.L().Error("[question][usecase] archive update failed", zap.String("question_id", q.ID), zap.Error(err))
		return entities.Question{}, err
	}
	zap.L().Info("[question][usecase] archived", zap.String("question_id", saved.ID), zap.String("actor", saved.ArchivedBy))
	return saved, nil
}

func (u *QuestionUseCase) load(ctx context.Context, id string) (entities.Question, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Question{}, ErrInvalidQuestionID
	}
	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Question{}, err
	}
	if q.ID == "" {
		return entities.Question{}, ErrQuestionNotFound
	}
	return q, nil
}

func actorOrDefault(actor string) string {
	if actor = strings.TrimSpace(actor); actor != "" {
		return actor
	}
	return "admin"
}
