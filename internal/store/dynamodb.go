package store

import (
	"context"

	"quiz-backend/internal/apperror"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// PutItemAPI is the slice of the DynamoDB client this store uses.
type PutItemAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

type DynamoStore struct {
	client PutItemAPI
}

func NewDynamoStore(client PutItemAPI) *DynamoStore {
	return &DynamoStore{client: client}
}

func (s *DynamoStore) Put(ctx context.Context, table string, item Item) error {
	av, err := attributevalue.MarshalMap(map[string]any(item))
	if err != nil {
		return apperror.NewInternalError("marshal item for "+table, err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(table),
		Item:      av,
	})
	if err != nil {
		return apperror.NewExternalError("dynamodb put into "+table, err)
	}
	return nil
}
