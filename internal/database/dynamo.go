package database

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/japb1998/atelier/internal/model"
)

var (
	dynamoHandler = slog.NewTextHandler(os.Stdout, nil).WithAttrs([]slog.Attr{slog.String("repository", "dynamo")})
	dynamoLogger  = slog.New(dynamoHandler)
)

var dynamoClient *DynamoClient

type DynamoClient struct {
	Client *dynamodb.DynamoDB
}

func newDynamoClient(sess *session.Session) *DynamoClient {
	if dynamoClient == nil {
		dynamoClient = &DynamoClient{
			Client: dynamodb.New(sess),
		}
	}
	return dynamoClient
}

func (d *DynamoClient) GetOne(ctx context.Context, input *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {

	output, err := d.Client.GetItemWithContext(ctx, input)

	if err != nil {
		dynamoLogger.Error("GetItem failed", slog.String("error", err.Error()))
		return nil, err
	}
	return output, nil
}

func (d *DynamoClient) PutItem(ctx context.Context, input *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {

	if output, err := d.Client.PutItemWithContext(ctx, input); err != nil {
		dynamoLogger.Error("PutItem failed", slog.String("error", err.Error()))
		return nil, err
	} else {
		return output, nil
	}
}

type itemStore interface {
	GetOne(ctx context.Context, input *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, input *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error)
}

// documentItem is the single dynamo item holding the serialized client list.
type documentItem struct {
	PrimaryKey   string    `json:"primaryKey"`
	Clients      string    `json:"clients"`
	NextClientId int       `json:"nextClientId,omitempty"`
	LastUpdateAt time.Time `json:"lastUpdateAt"`
}

// DynamoDocument stores the whole client list as one JSON string attribute of
// one item, keyed by documentKey.
type DynamoDocument struct {
	client      itemStore
	tableName   string
	documentKey string
}

func NewDynamoDocument(sess *session.Session, tableName, documentKey string) *DynamoDocument {
	return &DynamoDocument{
		client:      newDynamoClient(sess),
		tableName:   tableName,
		documentKey: documentKey,
	}
}

func (d *DynamoDocument) key() (map[string]*dynamodb.AttributeValue, error) {
	return dynamodbattribute.MarshalMap(map[string]string{
		"primaryKey": d.documentKey,
	})
}

func (d *DynamoDocument) Load(ctx context.Context) (Snapshot, error) {
	snap := Snapshot{Clients: make([]model.ClientItem, 0)}
	key, err := d.key()

	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: marshalling key: %w", ErrPersistence, err)
	}

	out, err := d.client.GetOne(ctx, &dynamodb.GetItemInput{
		TableName:      &d.tableName,
		Key:            key,
		ConsistentRead: aws.Bool(true),
	})

	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: getting document %s: %w", ErrPersistence, d.documentKey, err)
	}

	if out == nil || len(out.Item) == 0 {
		dynamoLogger.Debug("no client document yet", slog.String("key", d.documentKey))
		return snap, nil
	}

	var item documentItem
	if err := dynamodbattribute.UnmarshalMap(out.Item, &item); err != nil {
		return Snapshot{}, fmt.Errorf("%w: unmarshalling item: %w", ErrPersistence, err)
	}
	snap.NextClientId = item.NextClientId

	if item.Clients == "" {
		return snap, nil
	}

	if err := json.Unmarshal([]byte(item.Clients), &snap.Clients); err != nil {
		return Snapshot{}, fmt.Errorf("%w: decoding clients: %w", ErrPersistence, err)
	}

	if snap.Clients == nil {
		snap.Clients = make([]model.ClientItem, 0)
	}
	return snap, nil
}

func (d *DynamoDocument) Save(ctx context.Context, snap Snapshot) error {
	clients := snap.Clients
	if clients == nil {
		clients = make([]model.ClientItem, 0)
	}
	b, err := json.Marshal(clients)

	if err != nil {
		return fmt.Errorf("%w: encoding clients: %w", ErrPersistence, err)
	}

	item, err := dynamodbattribute.MarshalMap(documentItem{
		PrimaryKey:   d.documentKey,
		Clients:      string(b),
		NextClientId: snap.NextClientId,
		LastUpdateAt: time.Now().UTC(),
	})

	if err != nil {
		return fmt.Errorf("%w: marshalling item: %w", ErrPersistence, err)
	}

	_, err = d.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &d.tableName,
		Item:      item,
	})

	if err != nil {
		return fmt.Errorf("%w: putting document %s: %w", ErrPersistence, d.documentKey, err)
	}

	return nil
}
