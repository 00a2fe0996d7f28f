package repository

import (
	"context"
	"errors"
	"sort"

	"agencydesk/internal/domain/entities"
	"agencydesk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultBillingHistoryTableName = "billing_history"
	historyDeliverableIDIndex      = "deliverable_id-index"
)

type billingHistoryItem struct {
	ID            string `dynamodbav:"id"`
	DeliverableID string `dynamodbav:"deliverable_id"`
	Status        string `dynamodbav:"status"`
	Amount        string `dynamodbav:"amount"`
	Notes         string `dynamodbav:"notes,omitempty"`
	ChangedAt     string `dynamodbav:"changed_at"`
	ChangedBy     string `dynamodbav:"changed_by,omitempty"`
}

// BillingHistoryDynamoRepository persists BillingHistoryEntry records in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: deliverable_id-index (PK: deliverable_id)
//
// Entries are immutable except for amount/notes; deletes remove a single item
// and never rewrite siblings.

type BillingHistoryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBillingHistoryRepository = (*BillingHistoryDynamoRepository)(nil)

func NewBillingHistoryDynamoRepository(ddb *dynamodb.Client) *BillingHistoryDynamoRepository {
	return &BillingHistoryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BILLING_HISTORY_TABLE", defaultBillingHistoryTableName),
	}
}

func (r *BillingHistoryDynamoRepository) Create(ctx context.Context, e entities.BillingHistoryEntry) (entities.BillingHistoryEntry, error) {
	it := toBillingHistoryItem(e)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.BillingHistoryEntry{}, err
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
		return entities.BillingHistoryEntry{}, err
	}
	return e, nil
}

func (r *BillingHistoryDynamoRepository) GetByID(ctx context.Context, id string) (entities.BillingHistoryEntry, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.BillingHistoryEntry{}, err
	}
	if len(out.Item) == 0 {
		return entities.BillingHistoryEntry{}, nil
	}

	var it billingHistoryItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.BillingHistoryEntry{}, err
	}
	return fromBillingHistoryItem(it), nil
}

// ListByDeliverableID returns the deliverable's entries in ChangedAt ascending
// (display) order. The GSI has no sort key, so ordering happens here.
func (r *BillingHistoryDynamoRepository) ListByDeliverableID(ctx context.Context, deliverableID string) ([]entities.BillingHistoryEntry, error) {
	res, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(historyDeliverableIDIndex),
		KeyConditionExpression: aws.String("#deliverable_id = :deliverable_id"),
		ExpressionAttributeNames: map[string]string{
			"#deliverable_id": "deliverable_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":deliverable_id": &types.AttributeValueMemberS{Value: deliverableID},
		},
	})
	if err != nil {
		return nil, err
	}

	out := make([]entities.BillingHistoryEntry, 0, len(res.Items))
	for _, item := range res.Items {
		var it billingHistoryItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		out = append(out, fromBillingHistoryItem(it))
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ChangedAt.Before(out[j].ChangedAt)
	})
	return out, nil
}

func (r *BillingHistoryDynamoRepository) UpdateAmountNotesByID(ctx context.Context, id string, amount float64, notes string) (entities.BillingHistoryEntry, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #amount = :amount, #notes = :notes"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":amount": &types.AttributeValueMemberS{Value: floatToString(amount)},
			":notes":  &types.AttributeValueMemberS{Value: notes},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#amount": "amount",
			"#notes":  "notes",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.BillingHistoryEntry{}, nil
		}
		return entities.BillingHistoryEntry{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.BillingHistoryEntry{}, nil
	}

	var it billingHistoryItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.BillingHistoryEntry{}, err
	}
	return fromBillingHistoryItem(it), nil
}

func (r *BillingHistoryDynamoRepository) DeleteByID(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toBillingHistoryItem(e entities.BillingHistoryEntry) billingHistoryItem {
	return billingHistoryItem{
		ID:            e.ID,
		DeliverableID: e.DeliverableID,
		Status:        string(e.Status),
		Amount:        floatToString(e.Amount),
		Notes:         e.Notes,
		ChangedAt:     timeToString(e.ChangedAt),
		ChangedBy:     e.ChangedBy,
	}
}

func fromBillingHistoryItem(it billingHistoryItem) entities.BillingHistoryEntry {
	return entities.BillingHistoryEntry{
		ID:            it.ID,
		DeliverableID: it.DeliverableID,
		Status:        entities.BillingStatus(it.Status),
		Amount:        stringToFloat(it.Amount),
		Notes:         it.Notes,
		ChangedAt:     stringToTime(it.ChangedAt),
		ChangedBy:     it.ChangedBy,
	}
}
