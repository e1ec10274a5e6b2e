package repository

import (
	"context"

	"fenceworks/internal/domain/entities"
	"fenceworks/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProductsTableName = "products"

type productItem struct {
	ID          string   `dynamodbav:"id"`
	Name        string   `dynamodbav:"name"`
	Category    string   `dynamodbav:"category"`
	BaseRate    float64  `dynamodbav:"base_rate"`
	Description string   `dynamodbav:"description,omitempty"`
	Images      []string `dynamodbav:"images,omitempty"`
	CreatedAt   string   `dynamodbav:"created_at"`
	UpdatedAt   string   `dynamodbav:"updated_at"`
}

// ProductDynamoRepository persists the catalog in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type ProductDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IProductRepository = (*ProductDynamoRepository)(nil)

func NewProductDynamoRepository(ddb DynamoAPI) *ProductDynamoRepository {
	return &ProductDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRODUCTS_TABLE", defaultProductsTableName),
	}
}

func (r *ProductDynamoRepository) Create(ctx context.Context, p entities.Product) (entities.Product, error) {
	created, err := putNew(ctx, r.ddb, r.tableName, "id", toProductItem(p))
	if err != nil {
		return entities.Product{}, err
	}
	if !created {
		return entities.Product{}, errDuplicateKey("product", p.ID)
	}
	return p, nil
}

func (r *ProductDynamoRepository) GetByID(ctx context.Context, id string) (entities.Product, error) {
	it, found, err := getItem[productItem](ctx, r.ddb, r.tableName, idKey(id))
	if err != nil || !found {
		return entities.Product{}, err
	}
	return fromProductItem(it), nil
}

func (r *ProductDynamoRepository) ListAll(ctx context.Context) ([]entities.Product, error) {
	items, err := scanAll[productItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Product, 0, len(items))
	for _, it := range items {
		out = append(out, fromProductItem(it))
	}
	return out, nil
}

// Update replaces the stored product. A zero Product means it did not exist.
func (r *ProductDynamoRepository) Update(ctx context.Context, p entities.Product) (entities.Product, error) {
	found, err := putExisting(ctx, r.ddb, r.tableName, toProductItem(p))
	if err != nil || !found {
		return entities.Product{}, err
	}
	return p, nil
}

func (r *ProductDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
		ReturnValues: types.ReturnValueNone,
	})
	if err != nil {
		if isConditionFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func toProductItem(p entities.Product) productItem {
	return productItem{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		BaseRate:    p.BaseRate,
		Description: p.Description,
		Images:      p.Images,
		CreatedAt:   formatTime(p.CreatedAt),
		UpdatedAt:   formatTime(p.UpdatedAt),
	}
}

func fromProductItem(it productItem) entities.Product {
	images := it.Images
	if images == nil {
		images = []string{}
	}
	return entities.Product{
		ID:          it.ID,
		Name:        it.Name,
		Category:    it.Category,
		BaseRate:    it.BaseRate,
		Description: it.Description,
		Images:      images,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
