package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/weaviate/weaviate-go-client/v4/weaviate"
	"github.com/weaviate/weaviate-go-client/v4/weaviate/auth"
	"github.com/weaviate/weaviate-go-client/v4/weaviate/filters"
	"github.com/weaviate/weaviate-go-client/v4/weaviate/graphql"
	"github.com/weaviate/weaviate/entities/models"

	"github.com/tieubaoca/docextractor/types"
)

const (
	BATCH_SIZE  = 200
	TOPIC_CLASS = "SyllabusTopic"
)

func topicClass(text2vec string) *models.Class {
	return &models.Class{
		Class: TOPIC_CLASS,
		Properties: []*models.Property{
			{Name: "courseCode", DataType: []string{"text"}},
			{Name: "unit", DataType: []string{"text"}},
			{Name: "unitTitle", DataType: []string{"text"}},
			{Name: "topic", DataType: []string{"text"}},
			{Name: "createdAt", DataType: []string{"int"}},
		},
		Vectorizer:      text2vec,
		VectorIndexType: "hnsw",
	}
}

type WeaviateConfig struct {
	Host     string
	APIKey   string
	Text2Vec string
}

// TopicIndex keeps one object per (course, unit, topic) so courses can be
// searched by what they teach.
type TopicIndex struct {
	client   *weaviate.Client
	text2vec string
}

func NewTopicIndex(ctx context.Context, config WeaviateConfig) (*TopicIndex, error) {
	var scheme string
	if strings.HasPrefix(config.Host, "https") {
		scheme = "https"
	} else {
		scheme = "http"
	}
	host := strings.TrimPrefix(config.Host, scheme+"://")
	cfg := weaviate.Config{
		Host:   host,
		Scheme: scheme,
	}
	if config.APIKey != "" {
		cfg.AuthConfig = auth.ApiKey{Value: config.APIKey}
		cfg.Headers = map[string]string{
			"X-Weaviate-Api-Key":     config.APIKey,
			"X-Weaviate-Cluster-Url": fmt.Sprintf("%s://%s", scheme, host),
		}
	}
	client, err := weaviate.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create weaviate client: %w", err)
	}

	index := &TopicIndex{client: client, text2vec: config.Text2Vec}
	exists, err := client.Schema().ClassExistenceChecker().WithClassName(TOPIC_CLASS).Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get schema: %w", err)
	}
	if !exists {
		if err := client.Schema().ClassCreator().WithClass(topicClass(config.Text2Vec)).Do(ctx); err != nil {
			return nil, fmt.Errorf("failed to create %s class: %w", TOPIC_CLASS, err)
		}
	}
	return index, nil
}

// ReInit drops and recreates the topic class.
func (s *TopicIndex) ReInit(ctx context.Context) error {
	if err := s.client.Schema().ClassDeleter().WithClassName(TOPIC_CLASS).Do(ctx); err != nil {
		return fmt.Errorf("failed to delete %s class: %w", TOPIC_CLASS, err)
	}
	if err := s.client.Schema().ClassCreator().WithClass(topicClass(s.text2vec)).Do(ctx); err != nil {
		return fmt.Errorf("failed to create %s class: %w", TOPIC_CLASS, err)
	}
	return nil
}

// IndexSyllabus replaces the indexed topics of doc's course.
func (s *TopicIndex) IndexSyllabus(ctx context.Context, doc types.SyllabusDocument) error {
	_, err := s.client.Batch().ObjectsBatchDeleter().
		WithClassName(TOPIC_CLASS).
		WithWhere(filters.Where().
			WithPath([]string{"courseCode"}).
			WithOperator(filters.Equal).
			WithValueString(doc.CourseCode)).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to clear topics of %s: %w", doc.CourseCode, err)
	}

	var objects []*models.Object
	for key, unit := range doc.Units {
		for _, topic := range unit.Topics {
			objects = append(objects, &models.Object{
				Class: TOPIC_CLASS,
				Properties: map[string]interface{}{
					"courseCode": doc.CourseCode,
					"unit":       key,
					"unitTitle":  unit.Title,
					"topic":      topic,
					"createdAt":  doc.CreatedAt,
				},
			})
		}
	}

	total := len(objects)
	for i := 0; i < total; i += BATCH_SIZE {
		end := i + BATCH_SIZE
		if end > total {
			end = total
		}
		if _, err := s.client.Batch().ObjectsBatcher().WithObjects(objects[i:end]...).Do(ctx); err != nil {
			return fmt.Errorf("failed to insert batch %d-%d: %w", i, end, err)
		}
	}
	return nil
}

// Search returns the topics closest to query.
func (s *TopicIndex) Search(ctx context.Context, query string, limit int) ([]types.TopicHit, error) {
	fields := []graphql.Field{
		{Name: "courseCode"},
		{Name: "unit"},
		{Name: "unitTitle"},
		{Name: "topic"},
		{Name: "_additional", Fields: []graphql.Field{{Name: "distance"}}},
	}
	nearText := s.client.GraphQL().NearTextArgBuilder().WithConcepts([]string{query})

	getBuilder := s.client.GraphQL().Get().
		WithClassName(TOPIC_CLASS).
		WithFields(fields...).
		WithNearText(nearText)
	if limit > 0 {
		getBuilder = getBuilder.WithLimit(limit)
	}
	result, err := getBuilder.Do(ctx)
	if err != nil {
		return nil, err
	}
	if len(result.Errors) > 0 {
		return nil, fmt.Errorf("search failed: %v", result.Errors[0].Message)
	}

	var hits []types.TopicHit
	get, _ := result.Data["Get"].(map[string]interface{})
	items, _ := get[TOPIC_CLASS].([]interface{})
	for _, item := range items {
		obj, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		hit := types.TopicHit{
			CourseCode: asString(obj["courseCode"]),
			Unit:       asString(obj["unit"]),
			UnitTitle:  asString(obj["unitTitle"]),
			Topic:      asString(obj["topic"]),
		}
		if additional, ok := obj["_additional"].(map[string]interface{}); ok {
			if distance, ok := additional["distance"].(float64); ok {
				hit.Distance = distance
			}
		}
		hits = append(hits, hit)
	}
	return hits, nil
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}
