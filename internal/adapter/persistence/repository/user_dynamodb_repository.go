package repository

import (
	"context"

	"fenceworks/internal/domain/entities"
	"fenceworks/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultUsersTableName = "users"

type userItem struct {
	ID        string `dynamodbav:"id"`
	Role      string `dynamodbav:"role"`
	Name      string `dynamodbav:"name"`
	Email     string `dynamodbav:"email"`
	Phone     string `dynamodbav:"phone,omitempty"`
	Location  string `dynamodbav:"location,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// UserDynamoRepository persists portal profiles keyed by identity user id.
//
// Table requirements:
//   - PK: id (string)
type UserDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb DynamoAPI) *UserDynamoRepository {
	return &UserDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("USERS_TABLE", defaultUsersTableName),
	}
}

func (r *UserDynamoRepository) Create(ctx context.Context, u entities.UserProfile) (entities.UserProfile, error) {
	created, err := putNew(ctx, r.ddb, r.tableName, "id", toUserItem(u))
	if err != nil {
		return entities.UserProfile{}, err
	}
	if !created {
		return entities.UserProfile{}, errDuplicateKey("user", u.ID)
	}
	return u, nil
}

func (r *UserDynamoRepository) GetByID(ctx context.Context, id string) (entities.UserProfile, error) {
	it, found, err := getItem[userItem](ctx, r.ddb, r.tableName, idKey(id))
	if err != nil || !found {
		return entities.UserProfile{}, err
	}
	return fromUserItem(it), nil
}

func (r *UserDynamoRepository) ListAll(ctx context.Context) ([]entities.UserProfile, error) {
	items, err := scanAll[userItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.UserProfile, 0, len(items))
	for _, it := range items {
		out = append(out, fromUserItem(it))
	}
	return out, nil
}

func (r *UserDynamoRepository) UpdateContact(ctx context.Context, id, name, phone, location string) (entities.UserProfile, error) {
	it, found, err := updateByID[userItem](ctx, r.ddb, r.tableName, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #name = :name, #phone = :phone, #location = :location, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":name":       &types.AttributeValueMemberS{Value: name},
			":phone":      &types.AttributeValueMemberS{Value: phone},
			":location":   &types.AttributeValueMemberS{Value: location},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#name":       "name",
			"#phone":      "phone",
			"#location":   "location",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
	if err != nil || !found {
		return entities.UserProfile{}, err
	}
	return fromUserItem(it), nil
}

func toUserItem(u entities.UserProfile) userItem {
	return userItem{
		ID:        u.ID,
		Role:      string(u.Role),
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Location:  u.Location,
		CreatedAt: formatTime(u.CreatedAt),
		UpdatedAt: formatTime(u.UpdatedAt),
	}
}

// fromUserItem reads an unknown or missing role as Customer.
func fromUserItem(it userItem) entities.UserProfile {
	role, ok := entities.ParseRole(it.Role)
	if !ok {
		role = entities.RoleCustomer
	}
	return entities.UserProfile{
		ID:        it.ID,
		Role:      role,
		Name:      it.Name,
		Email:     it.Email,
		Phone:     it.Phone,
		Location:  it.Location,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
