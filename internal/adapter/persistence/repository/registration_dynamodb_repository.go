package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"temporada_ferias/internal/domain/entities"
	"temporada_ferias/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const DefaultRegistrationsTableName = "registrations"

type installmentItem struct {
	Number      int    `dynamodbav:"installment"`
	Amount      string `dynamodbav:"amount"`
	PaidAt      string `dynamodbav:"paid_at"`
	ConfirmedBy string `dynamodbav:"confirmed_by,omitempty"`
}

type registrationItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Email     string `dynamodbav:"email"`
	Phone     string `dynamodbav:"phone"`
	Fee       string `dynamodbav:"fee"`
	IsAdoptee bool   `dynamodbav:"is_adoptee"`
	PaidAt    string `dynamodbav:"paid_at,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
	Version   int64  `dynamodbav:"version"`

	PaymentMethod     string            `dynamodbav:"payment_method"`
	InstallmentsTotal int               `dynamodbav:"installments_total"`
	PaidInstallments  []installmentItem `dynamodbav:"paid_installments"`
	TotalPaid         string            `dynamodbav:"total_paid"`
	Confirmed         bool              `dynamodbav:"confirmed"`
	ConfirmedBy       string            `dynamodbav:"confirmed_by,omitempty"`
	ConfirmedAt       string            `dynamodbav:"confirmed_at,omitempty"`

	// DetailsRaw keeps the whole signup form as JSON; it is never queried.
	DetailsRaw string `dynamodbav:"details_raw"`
}

// RegistrationDynamoRepository persists registrations and their embedded
// payment plan as a single DynamoDB item.
//
// Table requirements:
//   - PK: id (string)
//
// Every Update is conditional on the version read by the caller, so two admins
// editing the same carnê never overwrite each other's installments.

type RegistrationDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IRegistrationRepository = (*RegistrationDynamoRepository)(nil)

func NewRegistrationDynamoRepository(ddb DynamoDBAPI, tableName string) *RegistrationDynamoRepository {
	if tableName == "" {
		tableName = DefaultRegistrationsTableName
	}
	return &RegistrationDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *RegistrationDynamoRepository) Create(ctx context.Context, reg entities.Registration) (entities.Registration, error) {
	av, err := marshalRegistration(reg)
	if err != nil {
		return entities.Registration{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Registration{}, err
	}
	return reg, nil
}

func (r *RegistrationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Registration, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Registration{}, err
	}
	if len(out.Item) == 0 {
		return entities.Registration{}, nil
	}
	return unmarshalRegistration(out.Item)
}

func (r *RegistrationDynamoRepository) List(ctx context.Context) ([]entities.Registration, error) {
	items := make([]entities.Registration, 0)
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			reg, err := unmarshalRegistration(raw)
			if err != nil {
				return nil, err
			}
			items = append(items, reg)
		}
	}
	return items, nil
}

// Update replaces the item only when the stored version still equals reg.Version.
func (r *RegistrationDynamoRepository) Update(ctx context.Context, reg entities.Registration) (entities.Registration, error) {
	expected := reg.Version
	reg.Version = expected + 1

	av, err := marshalRegistration(reg)
	if err != nil {
		return entities.Registration{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expected, 10)},
		},
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return entities.Registration{}, interfaces.ErrVersionConflict
		}
		return entities.Registration{}, err
	}
	return reg, nil
}

func marshalRegistration(reg entities.Registration) (map[string]types.AttributeValue, error) {
	it, err := toRegistrationItem(reg)
	if err != nil {
		return nil, err
	}
	return attributevalue.MarshalMap(it)
}

func unmarshalRegistration(raw map[string]types.AttributeValue) (entities.Registration, error) {
	var it registrationItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Registration{}, err
	}
	return fromRegistrationItem(it)
}

func toRegistrationItem(reg entities.Registration) (registrationItem, error) {
	details, err := json.Marshal(reg.Details)
	if err != nil {
		return registrationItem{}, err
	}

	installments := make([]installmentItem, 0, len(reg.Payment.PaidInstallments))
	for _, in := range reg.Payment.PaidInstallments {
		installments = append(installments, installmentItem{
			Number:      in.Number,
			Amount:      formatMoney(in.Amount),
			PaidAt:      formatTime(in.PaidAt),
			ConfirmedBy: in.ConfirmedBy,
		})
	}

	return registrationItem{
		ID:                reg.ID,
		Name:              reg.Name,
		Email:             reg.Email,
		Phone:             reg.Phone,
		Fee:               formatMoney(reg.Fee),
		IsAdoptee:         reg.IsAdoptee,
		PaidAt:            formatTimePtr(reg.PaidAt),
		CreatedAt:         formatTime(reg.CreatedAt),
		UpdatedAt:         formatTime(reg.UpdatedAt),
		Version:           reg.Version,
		PaymentMethod:     string(reg.Payment.Method),
		InstallmentsTotal: reg.Payment.InstallmentsTotal,
		PaidInstallments:  installments,
		TotalPaid:         formatMoney(reg.Payment.TotalPaid),
		Confirmed:         reg.Payment.Confirmed,
		ConfirmedBy:       reg.Payment.ConfirmedBy,
		ConfirmedAt:       formatTimePtr(reg.Payment.ConfirmedAt),
		DetailsRaw:        string(details),
	}, nil
}

func fromRegistrationItem(it registrationItem) (entities.Registration, error) {
	var details entities.RegistrationDetail
	if it.DetailsRaw != "" {
		if err := json.Unmarshal([]byte(it.DetailsRaw), &details); err != nil {
			return entities.Registration{}, err
		}
	}

	var d itemDecoder
	installments := make([]entities.Installment, 0, len(it.PaidInstallments))
	for _, in := range it.PaidInstallments {
		installments = append(installments, entities.Installment{
			Number:      in.Number,
			Amount:      d.money("paid_installments.amount", in.Amount),
			PaidAt:      d.time("paid_installments.paid_at", in.PaidAt),
			ConfirmedBy: in.ConfirmedBy,
		})
	}

	reg := entities.Registration{
		ID:        it.ID,
		Name:      it.Name,
		Email:     it.Email,
		Phone:     it.Phone,
		Fee:       d.money("fee", it.Fee),
		Details:   details,
		IsAdoptee: it.IsAdoptee,
		PaidAt:    d.timePtr("paid_at", it.PaidAt),
		CreatedAt: d.time("created_at", it.CreatedAt),
		UpdatedAt: d.time("updated_at", it.UpdatedAt),
		Version:   it.Version,
		Payment: entities.PaymentPlan{
			Method:            entities.PaymentMethod(it.PaymentMethod),
			InstallmentsTotal: it.InstallmentsTotal,
			PaidInstallments:  installments,
			TotalPaid:         d.money("total_paid", it.TotalPaid),
			Confirmed:         it.Confirmed,
			ConfirmedBy:       it.ConfirmedBy,
			ConfirmedAt:       d.timePtr("confirmed_at", it.ConfirmedAt),
		},
	}
	if d.err != nil {
		return entities.Registration{}, fmt.Errorf("registration %s: %w", it.ID, d.err)
	}
	return reg, nil
}
