package database

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memItems is an in-memory stand-in for the dynamo table.
type memItems struct {
	items  map[string]map[string]*dynamodb.AttributeValue
	putErr error
}

func (m *memItems) GetOne(ctx context.Context, input *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
	k := *input.Key["primaryKey"].S
	return &dynamodb.GetItemOutput{Item: m.items[k]}, nil
}

func (m *memItems) PutItem(ctx context.Context, input *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
	if m.putErr != nil {
		return nil, m.putErr
	}
	m.items[*input.Item["primaryKey"].S] = input.Item
	return &dynamodb.PutItemOutput{}, nil
}

func newMemDocument() (*DynamoDocument, *memItems) {
	mem := &memItems{items: map[string]map[string]*dynamodb.AttributeValue{}}
	return &DynamoDocument{client: mem, tableName: "atelier-clients", documentKey: "atelier"}, mem
}

func TestDynamoDocumentRoundTrip(t *testing.T) {
	doc, mem := newMemDocument()
	ctx := context.Background()

	empty, err := doc.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty.Clients)

	snap := Snapshot{Clients: sampleClients(), NextClientId: 5}
	require.NoError(t, doc.Save(ctx, snap))
	require.Contains(t, mem.items, "atelier")
	assert.Equal(t, "5", *mem.items["atelier"]["nextClientId"].N)

	loaded, err := doc.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, snap, loaded)
}

func TestDynamoDocumentPutFailure(t *testing.T) {
	doc, mem := newMemDocument()
	mem.putErr = errors.New("throttled")

	err := doc.Save(context.Background(), Snapshot{Clients: sampleClients()})
	assert.ErrorIs(t, err, ErrPersistence)
}

func TestRepositoryOverDynamoDocument(t *testing.T) {
	doc, _ := newMemDocument()
	repo := NewClientRepo(doc)
	ctx := context.Background()
	seedClients(t, repo, "Alice", "Bob")

	require.NoError(t, repo.DeleteClient(ctx, 1))

	c, err := repo.GetClientById(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Bob", c.Name)
}

func TestStableIdsSurviveOnDynamoDocument(t *testing.T) {
	doc, _ := newMemDocument()
	ctx := context.Background()
	seedClients(t, NewClientRepo(doc, WithStableIds(true)), "Alice", "Bob")

	// a fresh repository must not reuse the id of the deleted last client
	repo := NewClientRepo(doc, WithStableIds(true))
	require.NoError(t, repo.DeleteClient(ctx, 2))
	seedClients(t, repo, "Chloé")

	c, err := repo.GetClientById(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Chloé", c.Name)

	_, err = repo.GetClientById(ctx, 2)
	assert.ErrorIs(t, err, ErrClientNotFound)
}
