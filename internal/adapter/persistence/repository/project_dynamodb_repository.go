package repository

import (
	"context"
	"errors"
	"time"

	"agencydesk/internal/domain/entities"
	"agencydesk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultProjectsTableName = "projects"
	projectsClientIDIndex    = "client_id-index"
)

type projectItem struct {
	ID              string   `dynamodbav:"id"`
	ClientID        string   `dynamodbav:"client_id"`
	Name            string   `dynamodbav:"name"`
	QuoteAmount     string   `dynamodbav:"quote_amount"`
	DepositAmount   string   `dynamodbav:"deposit_amount"`
	ProgressAmounts []string `dynamodbav:"progress_amounts,omitempty"`
	BalanceDate     string   `dynamodbav:"balance_date,omitempty"`
	CreatedAt       string   `dynamodbav:"created_at"`
	UpdatedAt       string   `dynamodbav:"updated_at"`
}

// ProjectDynamoRepository persists Project entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: client_id-index (PK: client_id)
//
// An empty balance_date attribute means the project is not settled yet.

type ProjectDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProjectRepository = (*ProjectDynamoRepository)(nil)

func NewProjectDynamoRepository(ddb *dynamodb.Client) *ProjectDynamoRepository {
	return &ProjectDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROJECTS_TABLE", defaultProjectsTableName),
	}
}

func (r *ProjectDynamoRepository) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	it := toProjectItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Project{}, err
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
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectDynamoRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Project{}, err
	}
	if len(out.Item) == 0 {
		return entities.Project{}, nil
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func (r *ProjectDynamoRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.Project, error) {
	res, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(projectsClientIDIndex),
		KeyConditionExpression: aws.String("#client_id = :client_id"),
		ExpressionAttributeNames: map[string]string{
			"#client_id": "client_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":client_id": &types.AttributeValueMemberS{Value: clientID},
		},
	})
	if err != nil {
		return nil, err
	}

	out := make([]entities.Project, 0, len(res.Items))
	for _, item := range res.Items {
		var it projectItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		out = append(out, fromProjectItem(it))
	}
	return out, nil
}

func (r *ProjectDynamoRepository) UpdateQuoteAmountByID(ctx context.Context, id string, amount float64) (entities.Project, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #quote_amount = :quote_amount, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":quote_amount": &types.AttributeValueMemberS{Value: floatToString(amount)},
			":updated_at":   &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#quote_amount": "quote_amount",
			"#updated_at":   "updated_at",
		}
		return expr, vals, names
	})
}

func (r *ProjectDynamoRepository) UpdatePaymentsByID(ctx context.Context, id string, deposit float64, progress []float64, balanceDate *time.Time) (entities.Project, error) {
	balance := ""
	if balanceDate != nil {
		balance = timeToString(*balanceDate)
	}
	progressAttr := make([]types.AttributeValue, 0, len(progress))
	for _, v := range progress {
		progressAttr = append(progressAttr, &types.AttributeValueMemberS{Value: floatToString(v)})
	}

	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #deposit_amount = :deposit_amount, #progress_amounts = :progress_amounts, #balance_date = :balance_date, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":deposit_amount":   &types.AttributeValueMemberS{Value: floatToString(deposit)},
			":progress_amounts": &types.AttributeValueMemberL{Value: progressAttr},
			":balance_date":     &types.AttributeValueMemberS{Value: balance},
			":updated_at":       &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#deposit_amount":   "deposit_amount",
			"#progress_amounts": "progress_amounts",
			"#balance_date":     "balance_date",
			"#updated_at":       "updated_at",
		}
		return expr, vals, names
	})
}

func (r *ProjectDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Project, error) {
	now := timeToString(time.Now())
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Project{}, nil
		}
		return entities.Project{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Project{}, nil
	}
	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func toProjectItem(p entities.Project) projectItem {
	balance := ""
	if p.BalanceDate != nil {
		balance = timeToString(*p.BalanceDate)
	}
	return projectItem{
		ID:              p.ID,
		ClientID:        p.ClientID,
		Name:            p.Name,
		QuoteAmount:     floatToString(p.QuoteAmount),
		DepositAmount:   floatToString(p.DepositAmount),
		ProgressAmounts: floatsToStrings(p.ProgressAmounts),
		BalanceDate:     balance,
		CreatedAt:       timeToString(p.CreatedAt),
		UpdatedAt:       timeToString(p.UpdatedAt),
	}
}

func fromProjectItem(it projectItem) entities.Project {
	var balanceDate *time.Time
	if it.BalanceDate != "" {
		t := stringToTime(it.BalanceDate)
		balanceDate = &t
	}
	return entities.Project{
		ID:              it.ID,
		ClientID:        it.ClientID,
		Name:            it.Name,
		QuoteAmount:     stringToFloat(it.QuoteAmount),
		DepositAmount:   stringToFloat(it.DepositAmount),
		ProgressAmounts: stringsToFloats(it.ProgressAmounts),
		BalanceDate:     balanceDate,
		CreatedAt:       stringToTime(it.CreatedAt),
		UpdatedAt:       stringToTime(it.UpdatedAt),
	}
}
