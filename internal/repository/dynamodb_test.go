package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/deppfellow/person-service/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDynamoDB struct {
	putInputs      []*dynamodb.PutItemInput
	describeInputs []*dynamodb.DescribeTableInput
	err            error
}

func (f *fakeDynamoDB) PutItem(_ context.Context, params *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.putInputs = append(f.putInputs, params)
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamoDB) DescribeTable(_ context.Context, params *dynamodb.DescribeTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	f.describeInputs = append(f.describeInputs, params)
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.DescribeTableOutput{}, nil
}

func TestDynamoDBPutPersonWritesAllAttributes(t *testing.T) {
	client := &fakeDynamoDB{}
	repo := NewDynamoDBPersonRepository(client, "persons")

	person := &model.Person{ID: "01HZX3J8Q9", FirstName: "Jane", LastName: "Doe", Age: 30}
	require.NoError(t, repo.PutPerson(context.Background(), person))

	require.Len(t, client.putInputs, 1)
	input := client.putInputs[0]

	assert.Equal(t, "persons", aws.ToString(input.TableName))
	assert.Equal(t, "attribute_not_exists(id)", aws.ToString(input.ConditionExpression))
	assert.Equal(t, map[string]types.AttributeValue{
		"id":        &types.AttributeValueMemberS{Value: "01HZX3J8Q9"},
		"firstName": &types.AttributeValueMemberS{Value: "Jane"},
		"lastName":  &types.AttributeValueMemberS{Value: "Doe"},
		"age":       &types.AttributeValueMemberN{Value: "30"},
	}, input.Item)
}

func TestDynamoDBPutPersonError(t *testing.T) {
	cause := errors.New("throttled")
	client := &fakeDynamoDB{err: cause}
	repo := NewDynamoDBPersonRepository(client, "persons")

	err := repo.PutPerson(context.Background(), &model.Person{ID: "x"})

	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Len(t, client.putInputs, 1)
}

func TestDynamoDBPing(t *testing.T) {
	client := &fakeDynamoDB{}
	repo := NewDynamoDBPersonRepository(client, "persons")

	require.NoError(t, repo.Ping(context.Background()))
	require.Len(t, client.describeInputs, 1)
	assert.Equal(t, "persons", aws.ToString(client.describeInputs[0].TableName))

	client.err = errors.New("no such table")
	assert.Error(t, repo.Ping(context.Background()))
}
