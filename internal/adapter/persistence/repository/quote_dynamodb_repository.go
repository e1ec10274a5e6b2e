package repository

import (
	"context"
	"strings"

	"fenceworks/internal/domain/entities"
	"fenceworks/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotesTableName = "quotes"
	quotesCustomerIDIndex  = "customer_id-index"
)

// quoteItem keeps the cost fields as pointers so an absent attribute is told
// apart from a stored zero. Older records carry estimated_cost or total_cost
// instead of grand_total; they are read as fallbacks and never written.
type quoteItem struct {
	ID            string   `dynamodbav:"id"`
	CustomerID    string   `dynamodbav:"customer_id"`
	CustomerName  string   `dynamodbav:"customer_name"`
	CustomerEmail string   `dynamodbav:"customer_email"`
	ProductID     string   `dynamodbav:"product_id"`
	ProductName   string   `dynamodbav:"product_name"`
	Length        float64  `dynamodbav:"length"`
	Width         float64  `dynamodbav:"width"`
	Height        float64  `dynamodbav:"height"`
	Area          float64  `dynamodbav:"area"`
	MaterialCost  *float64 `dynamodbav:"material_cost,omitempty"`
	LaborCost     *float64 `dynamodbav:"labor_cost,omitempty"`
	TransportCost *float64 `dynamodbav:"transport_cost,omitempty"`
	GrandTotal    *float64 `dynamodbav:"grand_total,omitempty"`
	EstimatedCost *float64 `dynamodbav:"estimated_cost,omitempty"`
	TotalCost     *float64 `dynamodbav:"total_cost,omitempty"`
	ClientPriced  bool     `dynamodbav:"client_priced,omitempty"`
	Status        string   `dynamodbav:"status"`
	Notes         string   `dynamodbav:"notes,omitempty"`
	Unread        bool     `dynamodbav:"unread"`
	CreatedAt     string   `dynamodbav:"created_at"`
	UpdatedAt     string   `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: customer_id-index (PK: customer_id)
type QuoteDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb DynamoAPI) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	created, err := putNew(ctx, r.ddb, r.tableName, "id", toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
	}
	if !created {
		return entities.Quote{}, errDuplicateKey("quote", q.ID)
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	it, found, err := getItem[quoteItem](ctx, r.ddb, r.tableName, idKey(id))
	if err != nil || !found {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Quote, error) {
	items, err := queryIndex[quoteItem](ctx, r.ddb, r.tableName, quotesCustomerIDIndex, "customer_id", customerID)
	if err != nil {
		return nil, err
	}
	return fromQuoteItems(items), nil
}

func (r *QuoteDynamoRepository) ListAll(ctx context.Context) ([]entities.Quote, error) {
	items, err := scanAll[quoteItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	return fromQuoteItems(items), nil
}

// nonZeroValuation holds when the effective valuation is not exactly zero:
// grand_total when present, else estimated_cost, else total_cost. A
// comparison against a missing attribute is false, so a quote with no
// valuation at all fails it.
const nonZeroValuation = "(attribute_exists(#grand_total) AND #grand_total <> :zero)" +
	" OR (attribute_not_exists(#grand_total) AND ((attribute_exists(#estimated_cost) AND #estimated_cost <> :zero)" +
	" OR (attribute_not_exists(#estimated_cost) AND #total_cost <> :zero)))"

// UpdateStatus writes to only while the stored status is still from. A move
// to Approved also requires a non-zero valuation at write time. When either
// check fails, or the item is gone, interfaces.ErrQuoteStatusConflict is
// returned and nothing is written.
func (r *QuoteDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.QuoteStatus) (entities.Quote, error) {
	cond := "#status = :from"
	if to == entities.QuoteStatusApproved {
		cond += " AND (" + nonZeroValuation + ")"
	}
	it, found, err := updateByIDIf[quoteItem](ctx, r.ddb, r.tableName, id, cond, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(to)},
			":from":       &types.AttributeValueMemberS{Value: string(from)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		if to == entities.QuoteStatusApproved {
			vals[":zero"] = numberValue(0)
			names["#grand_total"] = "grand_total"
			names["#estimated_cost"] = "estimated_cost"
			names["#total_cost"] = "total_cost"
		}
		return expr, vals, names
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if !found {
		return entities.Quote{}, interfaces.ErrQuoteStatusConflict
	}
	return fromQuoteItem(it), nil
}

// UpdateDetails writes only the fields present in upd. A cost is always
// written to the canonical attributes.
func (r *QuoteDynamoRepository) UpdateDetails(ctx context.Context, id string, upd interfaces.QuoteDetailsUpdate) (entities.Quote, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		sets := []string{"#updated_at = :updated_at"}
		vals := map[string]types.AttributeValue{
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#updated_at": "updated_at",
		}
		set := func(attr string, v types.AttributeValue) {
			sets = append(sets, "#"+attr+" = :"+attr)
			vals[":"+attr] = v
			names["#"+attr] = attr
		}

		if upd.ProductName != nil {
			set("product_name", &types.AttributeValueMemberS{Value: *upd.ProductName})
		}
		if upd.Area != nil {
			set("area", numberValue(*upd.Area))
		}
		if upd.Notes != nil {
			set("notes", &types.AttributeValueMemberS{Value: *upd.Notes})
		}
		if upd.Cost != nil {
			set("material_cost", numberValue(upd.Cost.MaterialCost))
			set("labor_cost", numberValue(upd.Cost.LaborCost))
			set("transport_cost", numberValue(upd.Cost.TransportCost))
			set("grand_total", numberValue(upd.Cost.GrandTotal))
		}
		return "SET " + strings.Join(sets, ", "), vals, names
	})
}

func (r *QuoteDynamoRepository) MarkRead(ctx context.Context, id string) (entities.Quote, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #unread = :unread, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":unread":     &types.AttributeValueMemberBOOL{Value: false},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#unread":     "unread",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *QuoteDynamoRepository) update(ctx context.Context, id string, build updateBuilder) (entities.Quote, error) {
	it, found, err := updateByID[quoteItem](ctx, r.ddb, r.tableName, id, build)
	if err != nil || !found {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	it := quoteItem{
		ID:            q.ID,
		CustomerID:    q.CustomerID,
		CustomerName:  q.CustomerName,
		CustomerEmail: q.CustomerEmail,
		ProductID:     q.ProductID,
		ProductName:   q.ProductName,
		Length:        q.Dimensions.Length,
		Width:         q.Dimensions.Width,
		Height:        q.Dimensions.Height,
		Area:          q.Area,
		EstimatedCost: q.LegacyEstimatedCost,
		TotalCost:     q.LegacyTotalCost,
		ClientPriced:  q.ClientPriced,
		Status:        string(q.Status),
		Notes:         q.Notes,
		Unread:        q.Unread,
		CreatedAt:     formatTime(q.CreatedAt),
		UpdatedAt:     formatTime(q.UpdatedAt),
	}
	if q.Cost != nil {
		it.MaterialCost = aws.Float64(q.Cost.MaterialCost)
		it.LaborCost = aws.Float64(q.Cost.LaborCost)
		it.TransportCost = aws.Float64(q.Cost.TransportCost)
		it.GrandTotal = aws.Float64(q.Cost.GrandTotal)
	}
	return it
}

func fromQuoteItem(it quoteItem) entities.Quote {
	q := entities.Quote{
		ID:            it.ID,
		CustomerID:    it.CustomerID,
		CustomerName:  it.CustomerName,
		CustomerEmail: it.CustomerEmail,
		ProductID:     it.ProductID,
		ProductName:   it.ProductName,
		Dimensions:    entities.Dimensions{Length: it.Length, Width: it.Width, Height: it.Height},
		Area:          it.Area,
		ClientPriced:  it.ClientPriced,
		Status:        entities.QuoteStatus(it.Status),
		Notes:         it.Notes,
		Unread:        it.Unread,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),

		LegacyEstimatedCost: it.EstimatedCost,
		LegacyTotalCost:     it.TotalCost,
	}
	if it.GrandTotal != nil {
		q.Cost = &entities.Cost{
			MaterialCost:  aws.ToFloat64(it.MaterialCost),
			LaborCost:     aws.ToFloat64(it.LaborCost),
			TransportCost: aws.ToFloat64(it.TransportCost),
			GrandTotal:    *it.GrandTotal,
		}
	}
	return q
}

func fromQuoteItems(items []quoteItem) []entities.Quote {
	out := make([]entities.Quote, 0, len(items))
	for _, it := range items {
		out = append(out, fromQuoteItem(it))
	}
	return out
}
