package store

import (
	"context"

	"quiz-backend/internal/apperror"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// documentWriter is the part of a collection MongoStore writes through.
type documentWriter interface {
	Upsert(ctx context.Context, filter, doc bson.M) error
	Insert(ctx context.Context, doc bson.M) error
}

type mongoCollection struct {
	coll *mongo.Collection
}

func (c mongoCollection) Upsert(ctx context.Context, filter, doc bson.M) error {
	_, err := c.coll.ReplaceOne(ctx, filter, doc, options.Replace().SetUpsert(true))
	return err
}

func (c mongoCollection) Insert(ctx context.Context, doc bson.M) error {
	_, err := c.coll.InsertOne(ctx, doc)
	return err
}

// MongoStore maps each table to a collection. Tables with a known key
// attribute get overwrite-by-key semantics through an upserting replace.
type MongoStore struct {
	collection func(table string) documentWriter
	keys       map[string]string
}

// NewMongoStore takes the key attribute per table name.
func NewMongoStore(db *mongo.Database, keys map[string]string) *MongoStore {
	return &MongoStore{
		collection: func(table string) documentWriter {
			return mongoCollection{coll: db.Collection(table)}
		},
		keys: keys,
	}
}

func (s *MongoStore) Put(ctx context.Context, table string, item Item) error {
	coll := s.collection(table)
	doc := bson.M(item)

	if filter, ok := s.keyFilter(table, item); ok {
		if err := coll.Upsert(ctx, filter, doc); err != nil {
			return apperror.NewExternalError("mongo upsert into "+table, err)
		}
		return nil
	}

	if err := coll.Insert(ctx, doc); err != nil {
		return apperror.NewExternalError("mongo insert into "+table, err)
	}
	return nil
}

func (s *MongoStore) keyFilter(table string, item Item) (bson.M, bool) {
	key, ok := s.keys[table]
	if !ok {
		return nil, false
	}
	value, ok := item[key]
	if !ok || value == nil {
		return nil, false
	}
	return bson.M{key: value}, true
}
