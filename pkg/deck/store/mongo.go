package store

import (
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/slidekit/carousel/pkg/deck"
	"github.com/slidekit/carousel/pkg/errors"
	"github.com/slidekit/carousel/pkg/observability"
)

// deckCollection is the MongoDB collection holding deck documents.
const deckCollection = "decks"

// MongoStore keeps decks in a MongoDB collection, one document per deck
// keyed by name. The deck body is stored as its TOML encoding, so file
// and Mongo stores stay byte-compatible.
type MongoStore struct {
	client *mongo.Client
	col    *mongo.Collection
}

// mongoDeck is the stored document shape.
type mongoDeck struct {
	Name      string    `bson:"_id"`
	Data      []byte    `bson:"data"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// NewMongoStore connects to MongoDB and returns a deck store backed by
// the given database.
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "connect to mongodb")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeStore, err, "ping mongodb")
	}
	return &MongoStore{
		client: client,
		col:    client.Database(database).Collection(deckCollection),
	}, nil
}

// List returns the names of all stored decks, sorted.
func (s *MongoStore) List(ctx context.Context) ([]string, error) {
	cursor, err := s.col.Find(ctx, bson.D{},
		options.Find().SetProjection(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "list decks")
	}
	defer cursor.Close(ctx)

	var names []string
	for cursor.Next(ctx) {
		var doc struct {
			Name string `bson:"_id"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeStore, err, "decode deck name")
		}
		names = append(names, doc.Name)
	}
	if err := cursor.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "list decks")
	}
	sort.Strings(names)
	return names, nil
}

// Get retrieves and parses a deck by name.
func (s *MongoStore) Get(ctx context.Context, name string) (*deck.Deck, error) {
	if err := errors.ValidateDeckName(name); err != nil {
		return nil, err
	}

	var doc mongoDeck
	err := s.col.FindOne(ctx, bson.D{{Key: "_id", Value: name}}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, errors.New(errors.ErrCodeDeckNotFound, "deck %q not found", name)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "fetch deck %q", name)
	}

	d, err := deck.Parse(doc.Data)
	if err != nil {
		observability.Stores().OnDeckLoad(name, 0, err)
		return nil, err
	}
	observability.Stores().OnDeckLoad(name, len(d.Slides), nil)
	return d, nil
}

// Put stores a deck document, replacing any existing one.
func (s *MongoStore) Put(ctx context.Context, name string, d *deck.Deck) error {
	if err := errors.ValidateDeckName(name); err != nil {
		return err
	}
	if err := d.Validate(); err != nil {
		return err
	}

	data, err := deck.Marshal(d)
	if err != nil {
		observability.Stores().OnDeckSave(name, err)
		return err
	}

	doc := mongoDeck{Name: name, Data: data, UpdatedAt: time.Now().UTC()}
	_, err = s.col.ReplaceOne(ctx, bson.D{{Key: "_id", Value: name}}, doc,
		options.Replace().SetUpsert(true))
	if err != nil {
		err = errors.Wrap(errors.ErrCodeStore, err, "store deck %q", name)
		observability.Stores().OnDeckSave(name, err)
		return err
	}
	observability.Stores().OnDeckSave(name, nil)
	return nil
}

// Delete removes a deck document. Missing documents are ignored.
func (s *MongoStore) Delete(ctx context.Context, name string) error {
	if err := errors.ValidateDeckName(name); err != nil {
		return err
	}

	if _, err := s.col.DeleteOne(ctx, bson.D{{Key: "_id", Value: name}}); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "delete deck %q", name)
	}
	return nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)
