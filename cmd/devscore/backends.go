package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ArijitMandal123/Hackathon-Proj-sbh/internal/adapter/classifier"
	"github.com/ArijitMandal123/Hackathon-Proj-sbh/internal/adapter/store"
	"github.com/ArijitMandal123/Hackathon-Proj-sbh/internal/api/http/limiter"
	"github.com/ArijitMandal123/Hackathon-Proj-sbh/internal/app"
	"github.com/ArijitMandal123/Hackathon-Proj-sbh/internal/database"
	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
)

func newDifficultyModel(conf Config) (app.DifficultyModel, error) {
	doer := limiter.NewHTTPDoer(
		&http.Client{Timeout: conf.ClassifierHTTPTimeout},
		conf.ClassifierRateLimit,
		1,
	)

	var model app.DifficultyModel
	switch conf.ClassifierBackend {
	case "huggingface":
		model = classifier.NewHuggingFace(doer, conf.HuggingFaceAddress, conf.HuggingFaceModel, conf.HuggingFaceToken)
	case "openrouter":
		if conf.OpenRouterAPIKey == "" {
			return nil, fmt.Errorf("OPENROUTER_API_KEY is required for openrouter classifier")
		}
		model = classifier.NewOpenRouter(doer, conf.OpenRouterAddress, conf.OpenRouterModel, conf.OpenRouterAPIKey)
	case "fixed":
		label, ok := app.ParseDifficulty(conf.ClassifierFixedLabel)
		if !ok {
			return nil, fmt.Errorf("invalid fixed classifier label %q", conf.ClassifierFixedLabel)
		}
		return classifier.NewFixed(label), nil
	default:
		return nil, fmt.Errorf("unknown classifier backend %q", conf.ClassifierBackend)
	}

	if conf.ClassifierCacheSize <= 0 {
		return model, nil
	}
	return classifier.NewCachedModel(model, conf.ClassifierCacheSize, conf.ClassifierCacheTTL)
}

// newStore creates user store for configured backend.
// Returned closer releases backend connections.
func newStore(ctx context.Context, conf Config, l logrus.FieldLogger) (app.Store, io.Closer, error) {
	switch conf.StoreBackend {
	case "bolt":
		kv, err := database.NewBoltKVStore(conf.BoltDBPath, conf.BoltDBBucketName)
		if err != nil {
			return nil, nil, fmt.Errorf("creating bolt kv store: %w", err)
		}
		return store.NewBoltStore(kv), kv, nil
	case "redis":
		rdb, err := database.ConnectRedis(ctx, database.RedisConfig{
			Address:  conf.RedisAddress,
			Password: conf.RedisPassword,
			DB:       conf.RedisDB,
		})
		if err != nil {
			return nil, nil, err
		}
		return store.NewRedisStore(rdb, conf.RedisKeyPrefix), rdb, nil
	case "postgres":
		db, err := database.ConnectPostgres(ctx, database.PostgresConfig{
			DSN:          conf.PostgresDSN,
			MaxAttempts:  conf.PostgresConnectAttempts,
			RetryBackoff: 2 * time.Second,
			MaxOpenConns: 25,
			MaxIdleConns: 5,
		}, l)
		if err != nil {
			return nil, nil, err
		}
		if err := database.RunMigrations(db, l); err != nil {
			db.Close()
			return nil, nil, err
		}
		return store.NewPostgresStore(db), db, nil
	case "firestore":
		fs, err := store.NewFirestoreStore(ctx, conf.FirestoreProjectID, conf.FirestoreCredentialsFile, conf.FirestoreCollection)
		if err != nil {
			return nil, nil, err
		}
		return fs, fs, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", conf.StoreBackend)
	}
}

func closeAll(closers ...io.Closer) error {
	var result error
	for _, c := range closers {
		if c == nil {
			continue
		}
		if err := c.Close(); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result
}
