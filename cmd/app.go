package cmd

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/tieubaoca/docextractor/config"
	"github.com/tieubaoca/docextractor/database"
	"github.com/tieubaoca/docextractor/logger"
	"github.com/tieubaoca/docextractor/repository"
	"github.com/tieubaoca/docextractor/service"
	"github.com/tieubaoca/docextractor/types"
)

// app holds the collaborators shared by the server and the CLI commands.
type app struct {
	service *service.SyllabusService
	index   *database.TopicIndex
	closers []func(context.Context) error
}

func (a *app) Close(ctx context.Context) {
	for i := len(a.closers) - 1; i >= 0; i-- {
		_ = a.closers[i](ctx)
	}
}

func newApp(ctx context.Context, cfg *config.Config, log *logger.Logger) (*app, error) {
	a := &app{}

	syllabi, sections, err := a.openStores(ctx, cfg, log)
	if err != nil {
		a.Close(ctx)
		return nil, err
	}

	var opts []service.Option
	if cfg.UploadDir != "" {
		files, err := service.NewFileService(cfg.UploadDir)
		if err != nil {
			a.Close(ctx)
			return nil, err
		}
		opts = append(opts, service.WithArchive(files))
	}
	if cfg.WeaviateStoreConfig.Host != "" {
		index, err := database.NewTopicIndex(ctx, database.WeaviateConfig{
			Host:     cfg.WeaviateStoreConfig.Host,
			APIKey:   cfg.WeaviateStoreConfig.APIKey,
			Text2Vec: cfg.WeaviateStoreConfig.Text2Vec,
		})
		if err != nil {
			a.Close(ctx)
			return nil, fmt.Errorf("failed to connect to Weaviate: %w", err)
		}
		log.Info("topic search enabled", "host", cfg.WeaviateStoreConfig.Host)
		a.index = index
		opts = append(opts, service.WithTopicIndex(index))
	}

	repo := repository.NewCourseRepo(syllabi, sections)
	a.service = service.NewSyllabusService(service.NewPDFService(), repo, log, opts...)
	return a, nil
}

func (a *app) openStores(ctx context.Context, cfg *config.Config, log *logger.Logger) (
	database.DocumentStore[types.SyllabusDocument],
	database.DocumentStore[types.CourseDocument],
	error,
) {
	var (
		syllabi  database.DocumentStore[types.SyllabusDocument]
		sections database.DocumentStore[types.CourseDocument]
	)

	switch cfg.Store {
	case config.StoreMemory:
		log.Warn("using in-memory store, records are lost on exit")
		syllabi = database.NewMemoryStore[types.SyllabusDocument]()
		sections = database.NewMemoryStore[types.CourseDocument]()
	default:
		client, err := database.NewMongoClient(ctx, cfg.Mongo.URI)
		if err != nil {
			return nil, nil, err
		}
		a.closers = append(a.closers, client.Disconnect)

		db := client.Database(cfg.Mongo.Database)
		syllabi, sections, err = openMongoStores(ctx, db, cfg.Mongo)
		if err != nil {
			return nil, nil, err
		}
		log.Info("connected to MongoDB", "database", cfg.Mongo.Database)
	}

	if cfg.Redis.Addr == "" {
		return syllabi, sections, nil
	}
	cache, err := database.NewRedisCache(ctx, database.RedisConfig{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		Prefix:   "docextractor:",
	})
	if err != nil {
		return nil, nil, err
	}
	a.closers = append(a.closers, func(context.Context) error { return cache.Close() })
	log.Info("course cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.TTL)

	return database.NewCachedStore(syllabi, cache, "syllabus", cfg.Redis.TTL),
		database.NewCachedStore(sections, cache, "sections", cfg.Redis.TTL),
		nil
}

func openMongoStores(ctx context.Context, db *mongo.Database, cfg config.MongoConfig) (
	*database.MongoStore[types.SyllabusDocument],
	*database.MongoStore[types.CourseDocument],
	error,
) {
	syllabi, err := database.NewMongoStore[types.SyllabusDocument](ctx, db.Collection(cfg.SyllabiCollection))
	if err != nil {
		return nil, nil, err
	}
	sections, err := database.NewMongoStore[types.CourseDocument](ctx, db.Collection(cfg.SectionsCollection))
	if err != nil {
		return nil, nil, err
	}
	return syllabi, sections, nil
}
