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
	defaultDeliverablesTableName = "deliverables"
	deliverablesProjectIDIndex   = "project_id-index"
)

type deliverableItem struct {
	ID              string   `dynamodbav:"id"`
	ProjectID       string   `dynamodbav:"project_id,omitempty"`
	ClientID        string   `dynamodbav:"client_id,omitempty"`
	Name            string   `dynamodbav:"name"`
	Status          string   `dynamodbav:"status"`
	BillingStatus   string   `dynamodbav:"billing_status"`
	Price           string   `dynamodbav:"price"`
	SubcontractCost string   `dynamodbav:"subcontract_cost"`
	QuoteAmount     string   `dynamodbav:"quote_amount"`
	DepositAmount   string   `dynamodbav:"deposit_amount"`
	ProgressAmounts []string `dynamodbav:"progress_amounts,omitempty"`
	BalanceAmount   string   `dynamodbav:"balance_amount"`
	TotalInvoiced   string   `dynamodbav:"total_invoiced"`
	PotentialMargin string   `dynamodbav:"potential_margin"`
	CreatedAt       string   `dynamodbav:"created_at"`
	UpdatedAt       string   `dynamodbav:"updated_at"`
}

// DeliverableDynamoRepository persists Deliverable entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: project_id-index (PK: project_id)

type DeliverableDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDeliverableRepository = (*DeliverableDynamoRepository)(nil)

func NewDeliverableDynamoRepository(ddb *dynamodb.Client) *DeliverableDynamoRepository {
	return &DeliverableDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DELIVERABLES_TABLE", defaultDeliverablesTableName),
	}
}

func (r *DeliverableDynamoRepository) Create(ctx context.Context, d entities.Deliverable) (entities.Deliverable, error) {
	it := toDeliverableItem(d)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Deliverable{}, err
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
		return entities.Deliverable{}, err
	}
	return d, nil
}

func (r *DeliverableDynamoRepository) GetByID(ctx context.Context, id string) (entities.Deliverable, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Deliverable{}, err
	}
	if len(out.Item) == 0 {
		return entities.Deliverable{}, nil
	}

	var it deliverableItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Deliverable{}, err
	}
	return fromDeliverableItem(it), nil
}

func (r *DeliverableDynamoRepository) List(ctx context.Context) ([]entities.Deliverable, error) {
	var out []entities.Deliverable
	var lastKey map[string]types.AttributeValue
	for {
		res, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, err
		}
		for _, item := range res.Items {
			var it deliverableItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			out = append(out, fromDeliverableItem(it))
		}
		if len(res.LastEvaluatedKey) == 0 {
			break
		}
		lastKey = res.LastEvaluatedKey
	}
	return out, nil
}

func (r *DeliverableDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.Deliverable, error) {
	res, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(deliverablesProjectIDIndex),
		KeyConditionExpression: aws.String("#project_id = :project_id"),
		ExpressionAttributeNames: map[string]string{
			"#project_id": "project_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":project_id": &types.AttributeValueMemberS{Value: projectID},
		},
	})
	if err != nil {
		return nil, err
	}

	out := make([]entities.Deliverable, 0, len(res.Items))
	for _, item := range res.Items {
		var it deliverableItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		out = append(out, fromDeliverableItem(it))
	}
	return out, nil
}

func (r *DeliverableDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.DeliverableStatus) (entities.Deliverable, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *DeliverableDynamoRepository) UpdateBillingByID(ctx context.Context, id string, billing entities.BillingStatus, price float64, status entities.DeliverableStatus) (entities.Deliverable, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #billing_status = :billing_status, #price = :price, #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":billing_status": &types.AttributeValueMemberS{Value: string(billing)},
			":price":          &types.AttributeValueMemberS{Value: floatToString(price)},
			":status":         &types.AttributeValueMemberS{Value: string(status)},
			":updated_at":     &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#billing_status": "billing_status",
			"#price":          "price",
			"#status":         "status",
			"#updated_at":     "updated_at",
		}
		return expr, vals, names
	})
}

func (r *DeliverableDynamoRepository) UpdateTotalInvoicedByID(ctx context.Context, id string, total float64) (entities.Deliverable, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #total_invoiced = :total_invoiced, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":total_invoiced": &types.AttributeValueMemberS{Value: floatToString(total)},
			":updated_at":     &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#total_invoiced": "total_invoiced",
			"#updated_at":     "updated_at",
		}
		return expr, vals, names
	})
}

func (r *DeliverableDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Deliverable, error) {
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
			return entities.Deliverable{}, nil
		}
		return entities.Deliverable{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Deliverable{}, nil
	}
	var it deliverableItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Deliverable{}, err
	}
	return fromDeliverableItem(it), nil
}

func toDeliverableItem(d entities.Deliverable) deliverableItem {
	return deliverableItem{
		ID:              d.ID,
		ProjectID:       d.ProjectID,
		ClientID:        d.ClientID,
		Name:            d.Name,
		Status:          string(d.Status),
		BillingStatus:   string(d.BillingStatus),
		Price:           floatToString(d.Price),
		SubcontractCost: floatToString(d.SubcontractCost),
		QuoteAmount:     floatToString(d.QuoteAmount),
		DepositAmount:   floatToString(d.DepositAmount),
		ProgressAmounts: floatsToStrings(d.ProgressAmounts),
		BalanceAmount:   floatToString(d.BalanceAmount),
		TotalInvoiced:   floatToString(d.TotalInvoiced),
		PotentialMargin: floatToString(d.PotentialMargin),
		CreatedAt:       timeToString(d.CreatedAt),
		UpdatedAt:       timeToString(d.UpdatedAt),
	}
}

func fromDeliverableItem(it deliverableItem) entities.Deliverable {
	return entities.Deliverable{
		ID:              it.ID,
		ProjectID:       it.ProjectID,
		ClientID:        it.ClientID,
		Name:            it.Name,
		Status:          entities.DeliverableStatus(it.Status),
		BillingStatus:   entities.BillingStatus(it.BillingStatus),
		Price:           stringToFloat(it.Price),
		SubcontractCost: stringToFloat(it.SubcontractCost),
		QuoteAmount:     stringToFloat(it.QuoteAmount),
		DepositAmount:   stringToFloat(it.DepositAmount),
		ProgressAmounts: stringsToFloats(it.ProgressAmounts),
		BalanceAmount:   stringToFloat(it.BalanceAmount),
		TotalInvoiced:   stringToFloat(it.TotalInvoiced),
		PotentialMargin: stringToFloat(it.PotentialMargin),
		CreatedAt:       stringToTime(it.CreatedAt),
		UpdatedAt:       stringToTime(it.UpdatedAt),
	}
}
