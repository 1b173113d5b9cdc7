package tablestore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mongoSchemaCollection = "_tables"

// MongoStore keeps each table in its own collection, one document per row,
// plus a schema document per table holding the column order.
// SaveAll needs a replica set or sharded cluster for transactions.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

type mongoRow struct {
	Seq   int               `bson:"seq"`
	Cells map[string]string `bson:"cells"`
}

type mongoSchema struct {
	Name    string   `bson:"_id"`
	Columns []string `bson:"columns"`
}

func NewMongoStore(client *mongo.Client, dbName string) *MongoStore {
	return &MongoStore{client: client, db: client.Database(dbName)}
}

func (s *MongoStore) Load(ctx context.Context, name string) (*Table, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}

	var schema mongoSchema
	err := s.db.Collection(mongoSchemaCollection).FindOne(ctx, bson.M{"_id": name}).Decode(&schema)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to read schema of %s: %w", name, err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "seq", Value: 1}})
	cursor, err := s.db.Collection(name).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query table %s: %w", name, err)
	}
	defer cursor.Close(ctx)

	var docs []mongoRow
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode table %s: %w", name, err)
	}

	t := NewTable(schema.Columns...)
	for _, d := range docs {
		row := make(Row, len(t.Columns))
		for _, col := range t.Columns {
			row[col] = ""
		}
		for k, v := range d.Cells {
			row[k] = v
		}
		t.Append(row)
	}
	Normalize(t)
	return t, nil
}

func (s *MongoStore) Save(ctx context.Context, name string, t *Table) error {
	return s.SaveAll(ctx, Change{Name: name, Table: t})
}

func (s *MongoStore) SaveAll(ctx context.Context, changes ...Change) error {
	if err := checkChanges(changes); err != nil {
		return err
	}

	sess, err := s.client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		for _, ch := range changes {
			if err := s.replace(sc, ch); err != nil {
				return nil, err
			}
		}
		return nil, nil
	})
	if err != nil {
		return fmt.Errorf("failed to commit tables: %w", err)
	}
	return nil
}

func (s *MongoStore) replace(ctx context.Context, ch Change) error {
	t := ch.Table
	if t == nil {
		t = NewTable()
	}
	coll := s.db.Collection(ch.Name)
	if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to clear %s: %w", ch.Name, err)
	}
	if len(t.Rows) > 0 {
		docs := make([]interface{}, 0, len(t.Rows))
		for i, r := range t.Rows {
			cells := make(map[string]string, len(t.Columns))
			for _, col := range t.Columns {
				cells[col] = r[col]
			}
			docs = append(docs, mongoRow{Seq: i, Cells: cells})
		}
		if _, err := coll.InsertMany(ctx, docs); err != nil {
			return fmt.Errorf("failed to insert rows into %s: %w", ch.Name, err)
		}
	}
	schema := mongoSchema{Name: ch.Name, Columns: t.Columns}
	_, err := s.db.Collection(mongoSchemaCollection).ReplaceOne(ctx, bson.M{"_id": ch.Name}, schema, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to write schema of %s: %w", ch.Name, err)
	}
	return nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
