package repository

import (
	"context"
	"fmt"

	"temporada_ferias/internal/domain/entities"
	"temporada_ferias/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const DefaultQuestionsTableName = "questions"

type questionItem struct {
	ID         string `dynamodbav:"id"`
	Email      string `dynamodbav:"email"`
	Question   string `dynamodbav:"question"`
	Status     string `dynamodbav:"status"`
	CreatedAt  string `dynamodbav:"created_at"`
	Answer     string `dynamodbav:"answer,omitempty"`
	AnsweredAt string `dynamodbav:"answered_at,omitempty"`
	AnsweredBy string `dynamodbav:"answered_by,omitempty"`
	ArchivedAt string `dynamodbav:"archived_at,omitempty"`
	ArchivedBy string `dynamodbav:"archived_by,omitempty"`
}

// QuestionDynamoRepository persists the Q&A inbox in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type QuestionDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IQuestionRepository = (*QuestionDynamoRepository)(nil)

func NewQuestionDynamoRepository(ddb DynamoDBAPI, tableName string) *QuestionDynamoRepository {
	if tableName == "" {
		tableName = DefaultQuestionsTableName
	}
	return &QuestionDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *QuestionDynamoRepository) Create(ctx context.Context, q entities.Question) (entities.Question, error) {
	return r.put(ctx, q, "attribute_not_exists(#id)")
}

func (r *QuestionDynamoRepository) Update(ctx context.Context, q entities.Question) (entities.Question, error) {
	return r.put(ctx, q, "attribute_exists(#id)")
}

func (r *QuestionDynamoRepository) put(ctx context.Context, q entities.Question, condition string) (entities.Question, error) {
	av, err := attributevalue.MarshalMap(toQuestionItem(q))
	if err != nil {
		return entities.Question{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String(condition),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Question{}, err
	}
	return q, nil
}

func (r *QuestionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Question, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Question{}, err
	}
	if len(out.Item) == 0 {
		return entities.Question{}, nil
	}

	var it questionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Question{}, err
	}
	return fromQuestionItem(it)
}

func (r *QuestionDynamoRepository) List(ctx context.Context) ([]entities.Question, error) {
	items := make([]entities.Question, 0)
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it questionItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			q, err := fromQuestionItem(it)
			if err != nil {
				return nil, err
			}
			items = append(items, q)
		}
	}
	return items, nil
}

func toQuestionItem(q entities.Question) questionItem {
	return questionItem{
		ID:         q.ID,
		Email:      q.Email,
		Question:   q.Question,
		Status:     string(q.Status),
		CreatedAt:  formatTime(q.CreatedAt),
		Answer:     q.Answer,
		AnsweredAt: formatTimePtr(q.AnsweredAt),
		AnsweredBy: q.AnsweredBy,
		ArchivedAt: formatTimePtr(q.ArchivedAt),
		ArchivedBy: q.ArchivedBy,
	}
}

func fromQuestionItem(it questionItem) (entities.Question, error) {
	var d itemDecoder
	q := entities.Question{
		ID:         it.ID,
		Email:      it.Email,
		Question:   it.Question,
		Status:     entities.QuestionStatus(it.Status),
		CreatedAt:  d.time("created_at", it.CreatedAt),
		Answer:     it.Answer,
		AnsweredAt: d.timePtr("answered_at", it.AnsweredAt),
		AnsweredBy: it.AnsweredBy,
		ArchivedAt: d.timePtr("archived_at", it.ArchivedAt),
		ArchivedBy: it.ArchivedBy,
	}
	if d.err != nil {
		return entities.Question{}, fmt.Errorf("question %s: %w", it.ID, d.err)
	}
	return q, nil
}
