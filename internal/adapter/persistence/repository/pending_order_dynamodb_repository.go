package repository

import (
	"context"

	"patisserie_marketplace/internal/domain/entities"
	"patisserie_marketplace/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPendingOrdersTableName = "pending_orders"

type pendingOrderItem struct {
	ID        string         `dynamodbav:"id"`
	OrderData orderDraftItem `dynamodbav:"order_data"`
	CreatedAt string         `dynamodbav:"created_at"`
}

type orderDraftItem struct {
	ShopID                  string         `dynamodbav:"shop_id"`
	ShopSlug                string         `dynamodbav:"shop_slug"`
	ProfileID               string         `dynamodbav:"profile_id"`
	ProductID               string         `dynamodbav:"product_id,omitempty"`
	DraftOrderID            string         `dynamodbav:"draft_order_id,omitempty"`
	CustomerName            string         `dynamodbav:"customer_name"`
	CustomerEmail           string         `dynamodbav:"customer_email"`
	CustomerPhone           string         `dynamodbav:"customer_phone,omitempty"`
	CustomerMessage         string         `dynamodbav:"customer_message,omitempty"`
	PickupDate              string         `dynamodbav:"pickup_date"`
	PickupTime              string         `dynamodbav:"pickup_time,omitempty"`
	CustomizationAnswers    map[string]any `dynamodbav:"customization_answers,omitempty"`
	TotalPrice              string         `dynamodbav:"total_price"`
	DepositAmount           string         `dynamodbav:"deposit_amount"`
	Provider                string         `dynamodbav:"provider"`
	PayPalOrderID           string         `dynamodbav:"paypal_order_id,omitempty"`
	StripeSessionID         string         `dynamodbav:"stripe_session_id,omitempty"`
	MercadoPagoPreferenceID string         `dynamodbav:"mercadopago_preference_id,omitempty"`
}

// providerRefAttribute names the draft attribute holding each provider's order id.
var providerRefAttribute = map[entities.PaymentProvider]string{
	entities.PaymentProviderPayPal:      "paypal_order_id",
	entities.PaymentProviderStripe:      "stripe_session_id",
	entities.PaymentProviderMercadoPago: "mercadopago_preference_id",
}

// PendingOrderDynamoRepository stages orders between checkout and payment capture.
//
// Table requirements:
//   - PK: id (string)
//
// Every checkout inserts a fresh row; rows are deleted once reconciled.
type PendingOrderDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IPendingOrderRepository = (*PendingOrderDynamoRepository)(nil)

func NewPendingOrderDynamoRepository(ddb DynamoDBAPI, tableName string) *PendingOrderDynamoRepository {
	return &PendingOrderDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultPendingOrdersTableName),
	}
}

func (r *PendingOrderDynamoRepository) Create(ctx context.Context, p entities.PendingOrder) (entities.PendingOrder, error) {
	av, err := attributevalue.MarshalMap(toPendingOrderItem(p))
	if err != nil {
		return entities.PendingOrder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.PendingOrder{}, interfaces.ErrAlreadyExists
		}
		return entities.PendingOrder{}, err
	}
	return p, nil
}

func (r *PendingOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.PendingOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PendingOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.PendingOrder{}, nil
	}

	var it pendingOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PendingOrder{}, err
	}
	return fromPendingOrderItem(it), nil
}

func (r *PendingOrderDynamoRepository) AttachProviderRef(ctx context.Context, id string, provider entities.PaymentProvider, providerOrderID string) error {
	attr, ok := providerRefAttribute[provider]
	if !ok {
		return nil
	}
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #data.#ref = :ref"),
		ExpressionAttributeNames: map[string]string{
			"#id":   "id",
			"#data": "order_data",
			"#ref":  attr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ref": stringAV(providerOrderID),
		},
	})
	return err
}

func (r *PendingOrderDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       idKey(id),
	})
	return err
}

func toPendingOrderItem(p entities.PendingOrder) pendingOrderItem {
	d := p.OrderData
	return pendingOrderItem{
		ID: p.ID,
		OrderData: orderDraftItem{
			ShopID:                  d.ShopID,
			ShopSlug:                d.ShopSlug,
			ProfileID:               d.ProfileID,
			ProductID:               d.ProductID,
			DraftOrderID:            d.DraftOrderID,
			CustomerName:            d.CustomerName,
			CustomerEmail:           d.CustomerEmail,
			CustomerPhone:           d.CustomerPhone,
			CustomerMessage:         d.CustomerMessage,
			PickupDate:              d.PickupDate,
			PickupTime:              d.PickupTime,
			CustomizationAnswers:    d.CustomizationAnswers,
			TotalPrice:              formatDecimal(d.TotalPrice),
			DepositAmount:           formatDecimal(d.DepositAmount),
			Provider:                string(d.Provider),
			PayPalOrderID:           d.PayPalOrderID,
			StripeSessionID:         d.StripeSessionID,
			MercadoPagoPreferenceID: d.MercadoPagoPreferenceID,
		},
		CreatedAt: formatTime(p.CreatedAt),
	}
}

func fromPendingOrderItem(it pendingOrderItem) entities.PendingOrder {
	d := it.OrderData
	return entities.PendingOrder{
		ID: it.ID,
		OrderData: entities.OrderDraft{
			ShopID:                  d.ShopID,
			ShopSlug:                d.ShopSlug,
			ProfileID:               d.ProfileID,
			ProductID:               d.ProductID,
			DraftOrderID:            d.DraftOrderID,
			CustomerName:            d.CustomerName,
			CustomerEmail:           d.CustomerEmail,
			CustomerPhone:           d.CustomerPhone,
			CustomerMessage:         d.CustomerMessage,
			PickupDate:              d.PickupDate,
			PickupTime:              d.PickupTime,
			CustomizationAnswers:    d.CustomizationAnswers,
			TotalPrice:              parseDecimal(d.TotalPrice),
			DepositAmount:           parseDecimal(d.DepositAmount),
			Provider:                entities.PaymentProvider(d.Provider),
			PayPalOrderID:           d.PayPalOrderID,
			StripeSessionID:         d.StripeSessionID,
			MercadoPagoPreferenceID: d.MercadoPagoPreferenceID,
		},
		CreatedAt: parseTime(it.CreatedAt),
	}
}
