package repository

import (
	"context"

	"agencydesk/internal/domain/entities"
	"agencydesk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultClientsTableName = "clients"

type clientItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Company   string `dynamodbav:"company,omitempty"`
	Email     string `dynamodbav:"email,omitempty"`
	Notes     string `dynamodbav:"notes,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ClientDynamoRepository persists Client records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type ClientDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IClientRepository = (*ClientDynamoRepository)(nil)

func NewClientDynamoRepository(ddb *dynamodb.Client) *ClientDynamoRepository {
	return &ClientDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CLIENTS_TABLE", defaultClientsTableName),
	}
}

func (r *ClientDynamoRepository) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	it := toClientItem(c)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Client{}, err
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
		return entities.Client{}, err
	}
	return c, nil
}

func (r *ClientDynamoRepository) GetByID(ctx context.Context, id string) (entities.Client, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Client{}, err
	}
	if len(out.Item) == 0 {
		return entities.Client{}, nil
	}

	var it clientItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Client{}, err
	}
	return fromClientItem(it), nil
}

func (r *ClientDynamoRepository) List(ctx context.Context) ([]entities.Client, error) {
	var out []entities.Client
	var startKey map[string]types.AttributeValue

	for {
		res, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		for _, item := range res.Items {
			var it clientItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			out = append(out, fromClientItem(it))
		}

		if len(res.LastEvaluatedKey) == 0 {
			break
		}
		startKey = res.LastEvaluatedKey
	}
	return out, nil
}

func toClientItem(c entities.Client) clientItem {
	return clientItem{
		ID:        c.ID,
		Name:      c.Name,
		Company:   c.Company,
		Email:     c.Email,
		Notes:     c.Notes,
		CreatedAt: timeToString(c.CreatedAt),
		UpdatedAt: timeToString(c.UpdatedAt),
	}
}

func fromClientItem(it clientItem) entities.Client {
	return entities.Client{
		ID:        it.ID,
		Name:      it.Name,
		Company:   it.Company,
		Email:     it.Email,
		Notes:     it.Notes,
		CreatedAt: stringToTime(it.CreatedAt),
		UpdatedAt: stringToTime(it.UpdatedAt),
	}
}
