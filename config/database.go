package config

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"Employee-Attendance-Portal/pkg/tablestore"
)

func MongoConnect(ctx context.Context, uri string) (*mongo.Client, error) {
	if uri == "" {
		return nil, fmt.Errorf("MONGOSTRING is not set")
	}

	client, err := mongo.NewClient(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to create MongoDB client: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := client.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	log.Println("Connected to MongoDB!")
	return client, nil
}

func MySQLConnect(ctx context.Context, dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("MYSQL_DSN is not set")
	}
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open MySQL: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping MySQL: %w", err)
	}

	log.Println("Connected to MySQL!")
	return db, nil
}

// OpenStore opens the table backend named by StoreDriver, wrapped in the
// read cache when TableCache is set.
func OpenStore(ctx context.Context, cfg *AppConfig) (tablestore.Store, error) {
	var (
		store tablestore.Store
		err   error
	)
	switch cfg.StoreDriver {
	case "", "csv":
		store, err = tablestore.NewCSVStore(cfg.DataDir)
	case "mongo":
		var client *mongo.Client
		client, err = MongoConnect(ctx, cfg.MONGOSTRING)
		if err == nil {
			store = tablestore.NewMongoStore(client, cfg.MongoDB)
		}
	case "mysql":
		var db *sql.DB
		db, err = MySQLConnect(ctx, cfg.MySQLDSN)
		if err == nil {
			store, err = tablestore.NewMySQLStore(ctx, db)
			if err != nil {
				db.Close()
			}
		}
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
	if err != nil {
		return nil, err
	}

	log.Printf("Table store: %s (cache: %v)", cfg.StoreDriver, cfg.TableCache)
	if cfg.TableCache {
		return tablestore.NewCachedStore(store), nil
	}
	return store, nil
}
