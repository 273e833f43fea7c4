package usecase

import (
	"context"
	"fmt"
	"sort"

	"temporada_ferias/internal/domain/entities"
	"temporada_ferias/internal/usecase/interfaces"
)

const (
	activityActorSystem = "Sistema"
	questionPreviewLen  = 30
)

// IActivityUseCase derives the admin activity log. Nothing is stored: the log
// is rebuilt from registrations and questions on every call.

type IActivityUseCase interface {
	List(ctx context.Context) ([]entities.ActivityEntry, error)
}

type ActivityUseCase struct {
	registrations interfaces.IRegistrationRepository
	questions     interfaces.IQuestionRepository
}

var _ IActivityUseCase = (*ActivityUseCase)(nil)

func NewActivityUseCase(registrations interfaces.IRegistrationRepository, questions interfaces.IQuestionRepository) *ActivityUseCase {
	return &ActivityUseCase{registrations: registrations, questions: questions}
}

func (u *ActivityUseCase) List(ctx context.Context) ([]entities.ActivityEntry, error) {
	regs, err := u.registrations.List(ctx)
	if err != nil {
		return nil, err
	}
	qs, err := u.questions.List(ctx)
	if err != nil {
		return nil, err
	}
	return BuildActivityLog(regs, qs), nil
}

// BuildActivityLog returns the log newest first.
func BuildActivityLog(regs []entities.Registration, qs []entities.Question) []entities.ActivityEntry {
	var logs []entities.ActivityEntry

	for _, r := range regs {
		if !r.CreatedAt.IsZero() {
			logs = append(logs, entities.ActivityEntry{
				Date:     r.CreatedAt,
				Actor:    activityActorSystem,
				Action:   fmt.Sprintf("Nova inscrição recebida para %s.", r.Name),
				Type:     entities.ActivityTypeRegistration,
				TargetID: r.ID,
			})
		}
		if r.Payment.Confirmed && r.Payment.ConfirmedAt != nil && r.Payment.ConfirmedBy != "" {
			logs = append(logs, entities.ActivityEntry{
				Date:     *r.Payment.ConfirmedAt,
				Actor:    r.Payment.ConfirmedBy,
				Action:   fmt.Sprintf("Pagamento final confirmado para %s.", r.Name),
				Type:     entities.ActivityTypePayment,
				TargetID: r.ID,
			})
		}
		for _, in := range r.Payment.PaidInstallments {
			if in.ConfirmedBy == "" {
				continue
			}
			logs = append(logs, entities.ActivityEntry{
				Date:     in.PaidAt,
				Actor:    in.ConfirmedBy,
				Action:   fmt.Sprintf("Parcela %d (R$ %s) paga por %s.", in.Number, in.Amount.StringFixed(2), r.Name),
				Type:     entities.ActivityTypePayment,
				TargetID: r.ID,
			})
		}
	}

	for _, q := range qs {
		if !q.CreatedAt.IsZero() {
			logs = append(logs, entities.ActivityEntry{
				Date:     q.CreatedAt,
				Actor:    q.Email,
				Action:   fmt.Sprintf("Nova dúvida recebida: %q.", preview(q.Question, questionPreviewLen)),
				Type:     entities.ActivityTypeQuestion,
				TargetID: q.ID,
			})
		}
		if q.AnsweredAt != nil && q.AnsweredBy != "" {
			logs = append(logs, entities.ActivityEntry{
				Date:     *q.AnsweredAt,
				Actor:    q.AnsweredBy,
				Action:   fmt.Sprintf("Dúvida de %s foi respondida.", q.Email),
				Type:     entities.ActivityTypeQuestion,
				TargetID: q.ID,
			})
		}
		if q.Status == entities.QuestionStatusArchived && q.ArchivedAt != nil && q.ArchivedBy != "" {
			logs = append(logs, entities.ActivityEntry{
				Date:     *q.ArchivedAt,
				Actor:    q.ArchivedBy,
				Action:   fmt.Sprintf("Dúvida de %s foi arquivada.", q.Email),
				Type:     entities.ActivityTypeQuestion,
				TargetID: q.ID,
			})
		}
	}

	sort.SliceStable(logs, func(i, j int) bool {
		return logs[i].Date.After(logs[j].Date)
	})
	return logs
}

func preview(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
