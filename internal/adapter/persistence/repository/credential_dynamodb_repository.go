package repository

import (
	"context"
	"strings"

	"fenceworks/internal/domain/entities"
	"fenceworks/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCredentialsTableName = "credentials"

type credentialItem struct {
	Email          string `dynamodbav:"email"`
	UserID         string `dynamodbav:"user_id"`
	DisplayName    string `dynamodbav:"display_name"`
	PasswordHash   string `dynamodbav:"password_hash"`
	FailedAttempts int    `dynamodbav:"failed_attempts"`
	LockedUntil    string `dynamodbav:"locked_until,omitempty"`
	ResetToken     string `dynamodbav:"reset_token,omitempty"`
	ResetExpiresAt string `dynamodbav:"reset_expires_at,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
}

// CredentialDynamoRepository is the identity provider's account store.
//
// Table requirements:
//   - PK: email (string, lowercased)
type CredentialDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ICredentialRepository = (*CredentialDynamoRepository)(nil)

func NewCredentialDynamoRepository(ddb DynamoAPI) *CredentialDynamoRepository {
	return &CredentialDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CREDENTIALS_TABLE", defaultCredentialsTableName),
	}
}

// Create reports false when the email is already registered.
func (r *CredentialDynamoRepository) Create(ctx context.Context, c entities.Credential) (bool, error) {
	return putNew(ctx, r.ddb, r.tableName, "email", toCredentialItem(c))
}

func (r *CredentialDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.Credential, error) {
	key := map[string]types.AttributeValue{
		"email": &types.AttributeValueMemberS{Value: credentialKey(email)},
	}
	it, found, err := getItem[credentialItem](ctx, r.ddb, r.tableName, key)
	if err != nil || !found {
		return entities.Credential{}, err
	}
	return fromCredentialItem(it), nil
}

func (r *CredentialDynamoRepository) Put(ctx context.Context, c entities.Credential) error {
	av, err := attributevalue.MarshalMap(toCredentialItem(c))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func credentialKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func toCredentialItem(c entities.Credential) credentialItem {
	return credentialItem{
		Email:          credentialKey(c.Email),
		UserID:         c.UserID,
		DisplayName:    c.DisplayName,
		PasswordHash:   c.PasswordHash,
		FailedAttempts: c.FailedAttempts,
		LockedUntil:    formatTime(c.LockedUntil),
		ResetToken:     c.ResetToken,
		ResetExpiresAt: formatTime(c.ResetExpiresAt),
		CreatedAt:      formatTime(c.CreatedAt),
	}
}

func fromCredentialItem(it credentialItem) entities.Credential {
	return entities.Credential{
		Email:          it.Email,
		UserID:         it.UserID,
		DisplayName:    it.DisplayName,
		PasswordHash:   it.PasswordHash,
		FailedAttempts: it.FailedAttempts,
		LockedUntil:    parseTime(it.LockedUntil),
		ResetToken:     it.ResetToken,
		ResetExpiresAt: parseTime(it.ResetExpiresAt),
		CreatedAt:      parseTime(it.CreatedAt),
	}
}
