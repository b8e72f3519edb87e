package repositories

import (
	"context"
	"time"

	"github.com/anonto42/second-brain/backend/internal/errs"
	"github.com/anonto42/second-brain/backend/internal/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// ContentRepository defines the interface for content data operations.
// Every query is scoped to the owning user.
type ContentRepository interface {
	CreateContent(ctx context.Context, content *models.Content) error
	GetContentsByUserID(ctx context.Context, userID string) ([]models.Content, error)
	// DeleteContent deletes the row matching both contentID and userID, so a
	// foreign row is indistinguishable from a missing one.
	DeleteContent(ctx context.Context, userID, contentID string) error
}

// MongoContentRepository implements ContentRepository for MongoDB
type MongoContentRepository struct {
	collection *mongo.Collection
}

// NewMongoContentRepository creates a new MongoContentRepository
func NewMongoContentRepository(db *mongo.Database) *MongoContentRepository {
	return &MongoContentRepository{collection: db.Collection("contents")}
}

// EnsureIndexes creates the owner index used by every list query.
func (r *MongoContentRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}},
	})
	return err
}

// CreateContent creates a new content record in MongoDB
func (r *MongoContentRepository) CreateContent(ctx context.Context, content *models.Content) error {
	content.ID = primitive.NewObjectID().Hex()
	content.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, content)
	return err
}

// GetContentsByUserID retrieves all content owned by a user, in stored order.
func (r *MongoContentRepository) GetContentsByUserID(ctx context.Context, userID string) ([]models.Content, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	contents := []models.Content{}
	if err = cursor.All(ctx, &contents); err != nil {
		return nil, err
	}
	return contents, nil
}

// DeleteContent deletes a content record owned by the given user from MongoDB
func (r *MongoContentRepository) DeleteContent(ctx context.Context, userID, contentID string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": contentID, "user_id": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// PostgresContentRepository implements ContentRepository for PostgreSQL
type PostgresContentRepository struct {
	db *gorm.DB
}

// NewPostgresContentRepository creates a new PostgresContentRepository
func NewPostgresContentRepository(db *gorm.DB) *PostgresContentRepository {
	return &PostgresContentRepository{db: db}
}

// CreateContent creates a new content record in PostgreSQL
func (r *PostgresContentRepository) CreateContent(ctx context.Context, content *models.Content) error {
	content.ID = uuid.NewString()
	content.CreatedAt = time.Now()
	return r.db.WithContext(ctx).Create(content).Error
}

// GetContentsByUserID retrieves all content owned by a user from PostgreSQL
func (r *PostgresContentRepository) GetContentsByUserID(ctx context.Context, userID string) ([]models.Content, error) {
	contents := []models.Content{}
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&contents).Error
	return contents, err
}

// DeleteContent deletes a content record owned by the given user from PostgreSQL
func (r *PostgresContentRepository) DeleteContent(ctx context.Context, userID, contentID string) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", contentID, userID).Delete(&models.Content{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errs.ErrNotFound
	}
	return nil
}
