package repository

import (
	"context"

	"fenceworks/internal/domain/entities"
	"fenceworks/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const (
	defaultSettingsTableName = "settings"
	settingsItemID           = "global"
)

type settingsItem struct {
	ID               string `dynamodbav:"id"`
	CompanyName      string `dynamodbav:"company_name"`
	ContactEmail     string `dynamodbav:"contact_email,omitempty"`
	ContactPhone     string `dynamodbav:"contact_phone,omitempty"`
	Address          string `dynamodbav:"address,omitempty"`
	Currency         string `dynamodbav:"currency"`
	NotifyOnNewQuote bool   `dynamodbav:"notify_on_new_quote"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// SettingsDynamoRepository stores the single settings document under a fixed id.
type SettingsDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ISettingsRepository = (*SettingsDynamoRepository)(nil)

func NewSettingsDynamoRepository(ddb DynamoAPI) *SettingsDynamoRepository {
	return &SettingsDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SETTINGS_TABLE", defaultSettingsTableName),
	}
}

func (r *SettingsDynamoRepository) Get(ctx context.Context) (entities.Settings, bool, error) {
	it, found, err := getItem[settingsItem](ctx, r.ddb, r.tableName, idKey(settingsItemID))
	if err != nil || !found {
		return entities.Settings{}, false, err
	}
	return entities.Settings{
		CompanyName:      it.CompanyName,
		ContactEmail:     it.ContactEmail,
		ContactPhone:     it.ContactPhone,
		Address:          it.Address,
		Currency:         it.Currency,
		NotifyOnNewQuote: it.NotifyOnNewQuote,
		UpdatedAt:        parseTime(it.UpdatedAt),
	}, true, nil
}

func (r *SettingsDynamoRepository) Put(ctx context.Context, s entities.Settings) (entities.Settings, error) {
	av, err := attributevalue.MarshalMap(settingsItem{
		ID:               settingsItemID,
		CompanyName:      s.CompanyName,
		ContactEmail:     s.ContactEmail,
		ContactPhone:     s.ContactPhone,
		Address:          s.Address,
		Currency:         s.Currency,
		NotifyOnNewQuote: s.NotifyOnNewQuote,
		UpdatedAt:        formatTime(s.UpdatedAt),
	})
	if err != nil {
		return entities.Settings{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Settings{}, err
	}
	return s, nil
}
