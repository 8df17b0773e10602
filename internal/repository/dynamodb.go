package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/deppfellow/person-service/internal/model"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/pkg/errors"
)

// DynamoDBAPI is the part of *dynamodb.Client the repository uses.
type DynamoDBAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

// DynamoDBPersonRepository stores each person as one item of a table
// whose partition key is `id`.
type DynamoDBPersonRepository struct {
	client    DynamoDBAPI
	tableName string
}

// NewDynamoDBPersonRepository builds a repository writing to tableName.
func NewDynamoDBPersonRepository(client DynamoDBAPI, tableName string) *DynamoDBPersonRepository {
	return &DynamoDBPersonRepository{
		client:    client,
		tableName: tableName,
	}
}

// PutPerson issues one PutItem with all four attributes. The condition
// keeps an existing id from being overwritten.
func (r *DynamoDBPersonRepository) PutPerson(ctx context.Context, person *model.Person) error {
	item, err := attributevalue.MarshalMap(person)
	if err != nil {
		return errors.Wrap(err, "marshal person item")
	}

	segment := newrelic.DatastoreSegment{
		StartTime:  newrelic.FromContext(ctx).StartSegmentNow(),
		Product:    newrelic.DatastoreDynamoDB,
		Collection: r.tableName,
		Operation:  "PutItem",
	}
	defer segment.End()

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})
	if err != nil {
		return errors.Wrapf(err, "put person %s into table %s", person.ID, r.tableName)
	}

	return nil
}

// Ping describes the table, which fails if it is missing or unreachable.
func (r *DynamoDBPersonRepository) Ping(ctx context.Context) error {
	_, err := r.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return errors.Wrapf(err, "describe table %s", r.tableName)
	}
	return nil
}
