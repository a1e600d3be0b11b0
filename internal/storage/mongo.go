package storage

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Default connection timeout
const defaultTimeout = 10 * time.Second

const sessionCollectionName = "sessions"

// sessionDoc is the single document holding the opaque session blob. The
// document _id doubles as the durable key.
type sessionDoc struct {
	ID   string `bson:"_id"`
	Data []byte `bson:"data"`
}

// mongoStorage implements SessionStorage as one document in a MongoDB
// collection. The blob stays opaque; Mongo only sees raw bytes.
type mongoStorage struct {
	collection *mongo.Collection
	key        string
}

// ConnectDB establishes a connection to MongoDB using the provided URI and
// verifies it with a ping.
func ConnectDB(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		_ = client.Disconnect(disconnectCtx)
		return nil, err
	}

	return client, nil
}

// DisconnectDB gracefully disconnects the MongoDB client.
func DisconnectDB(client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	return client.Disconnect(ctx)
}

// NewMongoStorage creates a Mongo-backed session storage. It expects a
// connected *mongo.Database instance and the durable key to store under.
func NewMongoStorage(db *mongo.Database, key string) SessionStorage {
	return &mongoStorage{
		collection: db.Collection(sessionCollectionName),
		key:        key,
	}
}

func (m *mongoStorage) Get(ctx context.Context) ([]byte, error) {
	var doc sessionDoc
	err := m.collection.FindOne(ctx, bson.M{"_id": m.key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc.Data, nil
}

func (m *mongoStorage) Set(ctx context.Context, data []byte) error {
	opts := options.Replace().SetUpsert(true)
	_, err := m.collection.ReplaceOne(ctx, bson.M{"_id": m.key}, sessionDoc{ID: m.key, Data: data}, opts)
	return err
}

func (m *mongoStorage) Remove(ctx context.Context) error {
	_, err := m.collection.DeleteOne(ctx, bson.M{"_id": m.key})
	return err
}
