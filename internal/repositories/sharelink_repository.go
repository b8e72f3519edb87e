package repositories

import (
	"context"
	"errors"

	"github.com/anonto42/second-brain/backend/internal/errs"
	"github.com/anonto42/second-brain/backend/internal/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/gorm"
)

// ShareLinkRepository defines the interface for share link operations.
// The store enforces at most one link per user; CreateShareLink returns
// errs.ErrDuplicate when a concurrent request won the insert.
type ShareLinkRepository interface {
	CreateShareLink(ctx context.Context, link *models.ShareLink) error
	GetShareLinkByUserID(ctx context.Context, userID string) (*models.ShareLink, error)
	GetShareLinkByHash(ctx context.Context, hash string) (*models.ShareLink, error)
	// DeleteShareLinkByUserID is a no-op, not an error, when no link exists.
	DeleteShareLinkByUserID(ctx context.Context, userID string) error
}

// MongoShareLinkRepository implements ShareLinkRepository for MongoDB
type MongoShareLinkRepository struct {
	collection *mongo.Collection
}

// NewMongoShareLinkRepository creates a new MongoShareLinkRepository
func NewMongoShareLinkRepository(db *mongo.Database) *MongoShareLinkRepository {
	return &MongoShareLinkRepository{collection: db.Collection("links")}
}

// EnsureIndexes creates the unique owner index and the hash lookup index.
// The unique index is the backstop for two concurrent share requests.
func (r *MongoShareLinkRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "hash", Value: 1}},
		},
	})
	return err
}

// CreateShareLink creates a new share link in MongoDB
func (r *MongoShareLinkRepository) CreateShareLink(ctx context.Context, link *models.ShareLink) error {
	link.ID = primitive.NewObjectID().Hex()
	_, err := r.collection.InsertOne(ctx, link)
	if mongo.IsDuplicateKeyError(err) {
		return errs.ErrDuplicate
	}
	return err
}

// GetShareLinkByUserID retrieves a user's share link from MongoDB
func (r *MongoShareLinkRepository) GetShareLinkByUserID(ctx context.Context, userID string) (*models.ShareLink, error) {
	var link models.ShareLink
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&link)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &link, nil
}

// GetShareLinkByHash retrieves a share link by its public hash from MongoDB
func (r *MongoShareLinkRepository) GetShareLinkByHash(ctx context.Context, hash string) (*models.ShareLink, error) {
	var link models.ShareLink
	err := r.collection.FindOne(ctx, bson.M{"hash": hash}).Decode(&link)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &link, nil
}

// DeleteShareLinkByUserID deletes a user's share link from MongoDB
func (r *MongoShareLinkRepository) DeleteShareLinkByUserID(ctx context.Context, userID string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"user_id": userID})
	return err
}

// PostgresShareLinkRepository implements ShareLinkRepository for PostgreSQL
type PostgresShareLinkRepository struct {
	db *gorm.DB
}

// NewPostgresShareLinkRepository creates a new PostgresShareLinkRepository
func NewPostgresShareLinkRepository(db *gorm.DB) *PostgresShareLinkRepository {
	return &PostgresShareLinkRepository{db: db}
}

// CreateShareLink creates a new share link in PostgreSQL
func (r *PostgresShareLinkRepository) CreateShareLink(ctx context.Context, link *models.ShareLink) error {
	link.ID = uuid.NewString()
	return translatePostgresError(r.db.WithContext(ctx).Create(link).Error)
}

// GetShareLinkByUserID retrieves a user's share link from PostgreSQL
func (r *PostgresShareLinkRepository) GetShareLinkByUserID(ctx context.Context, userID string) (*models.ShareLink, error) {
	var link models.ShareLink
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &link, nil
}

// GetShareLinkByHash retrieves a share link by its public hash from PostgreSQL
func (r *PostgresShareLinkRepository) GetShareLinkByHash(ctx context.Context, hash string) (*models.ShareLink, error) {
	var link models.ShareLink
	if err := r.db.WithContext(ctx).Where("hash = ?", hash).First(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &link, nil
}

// DeleteShareLinkByUserID deletes a user's share link from PostgreSQL
func (r *PostgresShareLinkRepository) DeleteShareLinkByUserID(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.ShareLink{}).Error
}
