package mongodb

import (
	"context"
	"strings"

	"creativehub/internal/domain/entity"
	"creativehub/internal/domain/repository"
	"creativehub/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	store *store[model.UserModel]
}

// NewUserRepository is the constructor for userRepository. ListFilter.Type filters by role.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{
		store: newStore[model.UserModel](db, CollectionUsers, "role", "firstName", "lastName", "email"),
	}
}

func (repo *userRepository) List(ctx context.Context, filter repository.ListFilter) ([]*entity.User, error) {
	docs, err := repo.store.list(ctx, filter)
	if err != nil {
		return nil, err
	}

	users := make([]*entity.User, 0, len(docs))
	for _, doc := range docs {
		users = append(users, toUserDomain(doc))
	}

	return users, nil
}

func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	doc, err := repo.store.findByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return toUserDomain(doc), nil
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	doc, err := repo.store.findOne(ctx, bson.M{"email": strings.ToLower(strings.TrimSpace(email))})
	if err != nil {
		return nil, err
	}

	return toUserDomain(doc), nil
}

func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	user.CreatedAt = now()
	user.UpdatedAt = user.CreatedAt
	doc := fromUserDomain(user, assignID(user.ID))
	if err := repo.store.insert(ctx, doc); err != nil {
		return err
	}
	user.ID = doc.ID.Hex()

	return nil
}

func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	oid, err := objectID(user.ID)
	if err != nil {
		return err
	}

	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	user.UpdatedAt = now()

	return repo.store.replace(ctx, oid, fromUserDomain(user, oid))
}

func (repo *userRepository) Delete(ctx context.Context, id string) error {
	return repo.store.deleteByID(ctx, id)
}
