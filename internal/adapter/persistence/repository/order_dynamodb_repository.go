package repository

import (
	"context"
	"fmt"
	"time"

	"patisserie_marketplace/internal/domain/entities"
	"patisserie_marketplace/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "orders"
	ordersShopCreatedIndex = "shop_id-created_at-index"
	ordersProviderRefIndex = "provider_ref-index"
)

type orderItem struct {
	ID                    string         `dynamodbav:"id"`
	OrderRef              string         `dynamodbav:"order_ref"`
	ShopID                string         `dynamodbav:"shop_id"`
	ProfileID             string         `dynamodbav:"profile_id"`
	ProductID             string         `dynamodbav:"product_id,omitempty"`
	CustomerName          string         `dynamodbav:"customer_name"`
	CustomerEmail         string         `dynamodbav:"customer_email"`
	CustomerPhone         string         `dynamodbav:"customer_phone,omitempty"`
	CustomerMessage       string         `dynamodbav:"customer_message,omitempty"`
	PickupDate            string         `dynamodbav:"pickup_date"`
	PickupTime            string         `dynamodbav:"pickup_time,omitempty"`
	CustomizationData     map[string]any `dynamodbav:"customization_data,omitempty"`
	Status                string         `dynamodbav:"status"`
	TotalAmount           string         `dynamodbav:"total_amount"`
	DepositAmount         string         `dynamodbav:"deposit_amount"`
	PaidAmount            string         `dynamodbav:"paid_amount"`
	Provider              string         `dynamodbav:"provider,omitempty"`
	ProviderRef           string         `dynamodbav:"provider_ref,omitempty"`
	PayPalOrderID         string         `dynamodbav:"paypal_order_id,omitempty"`
	PayPalCaptureID       string         `dynamodbav:"paypal_capture_id,omitempty"`
	StripeSessionID       string         `dynamodbav:"stripe_session_id,omitempty"`
	StripePaymentIntentID string         `dynamodbav:"stripe_payment_intent_id,omitempty"`
	MercadoPagoPaymentID  string         `dynamodbav:"mercadopago_payment_id,omitempty"`
	RefusedBy             string         `dynamodbav:"refused_by,omitempty"`
	RefusalReason         string         `dynamodbav:"refusal_reason,omitempty"`
	CreatedAt             string         `dynamodbav:"created_at"`
	UpdatedAt             string         `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists durable orders in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: shop_id-created_at-index (PK: shop_id, SK: created_at)
//   - GSI: provider_ref-index (PK: provider_ref), sparse
//
// Product orders reconciled from a payment use a deterministic id, so the
// attribute_not_exists(id) condition on Create is the double-insert guard.
type OrderDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb DynamoDBAPI, tableName string) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultOrdersTableName),
		now:       time.Now,
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
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
			return entities.Order{}, interfaces.ErrAlreadyExists
		}
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}
	return unmarshalOrder(out.Item)
}

func (r *OrderDynamoRepository) GetByProviderRef(ctx context.Context, providerRef string) (entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersProviderRefIndex),
		KeyConditionExpression: aws.String("provider_ref = :ref"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ref": stringAV(providerRef),
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Items) == 0 {
		return entities.Order{}, nil
	}
	return unmarshalOrder(out.Items[0])
}

// CountByShopSince counts non-refused orders of a shop created at or after since.
func (r *OrderDynamoRepository) CountByShopSince(ctx context.Context, shopID string, since time.Time) (int, error) {
	var (
		total int
		start map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(ordersShopCreatedIndex),
			KeyConditionExpression: aws.String("shop_id = :shop AND created_at >= :since"),
			FilterExpression:       aws.String("#status <> :refused"),
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":shop":    stringAV(shopID),
				":since":   stringAV(formatTime(since)),
				":refused": stringAV(string(entities.OrderStatusRefused)),
			},
			Select:            types.SelectCount,
			ExclusiveStartKey: start,
		})
		if err != nil {
			return 0, err
		}
		total += int(out.Count)
		if len(out.LastEvaluatedKey) == 0 {
			return total, nil
		}
		start = out.LastEvaluatedKey
	}
}

func (r *OrderDynamoRepository) FindRecentDuplicate(ctx context.Context, shopID, email, pickupDate string, since time.Time) (entities.Order, error) {
	var start map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(ordersShopCreatedIndex),
			KeyConditionExpression: aws.String("shop_id = :shop AND created_at >= :since"),
			FilterExpression:       aws.String("customer_email = :email AND pickup_date = :pickup AND #status = :pending"),
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":shop":    stringAV(shopID),
				":since":   stringAV(formatTime(since)),
				":email":   stringAV(email),
				":pickup":  stringAV(pickupDate),
				":pending": stringAV(string(entities.OrderStatusPending)),
			},
			ExclusiveStartKey: start,
		})
		if err != nil {
			return entities.Order{}, err
		}
		if len(out.Items) > 0 {
			return unmarshalOrder(out.Items[0])
		}
		if len(out.LastEvaluatedKey) == 0 {
			return entities.Order{}, nil
		}
		start = out.LastEvaluatedKey
	}
}

// UpdateStatus applies patch only while the stored status is one of from.
// A failed condition yields a zero Order and no error.
func (r *OrderDynamoRepository) UpdateStatus(ctx context.Context, id string, from []entities.OrderStatus, patch interfaces.OrderPatch) (entities.Order, error) {
	if len(from) == 0 {
		return entities.Order{}, fmt.Errorf("update order %s: no source status", id)
	}

	expr, values, names := buildOrderPatch(patch, formatTime(r.now()))
	cond := "attribute_exists(#id) AND #status IN ("
	for i, s := range from {
		key := fmt.Sprintf(":from%d", i)
		if i > 0 {
			cond += ", "
		}
		cond += key
		values[key] = stringAV(string(s))
	}
	cond += ")"

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       idKey(id),
		ConditionExpression:       aws.String(cond),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id", "#status": "status"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}
	return unmarshalOrder(out.Attributes)
}

func buildOrderPatch(p interfaces.OrderPatch, now string) (string, map[string]types.AttributeValue, map[string]string) {
	expr := "SET #updated_at = :updated_at"
	values := map[string]types.AttributeValue{":updated_at": stringAV(now)}
	names := map[string]string{"#updated_at": "updated_at"}

	set := func(attr, value string) {
		if value == "" {
			return
		}
		expr += fmt.Sprintf(", #%s = :%s", attr, attr)
		values[":"+attr] = stringAV(value)
		names["#"+attr] = attr
	}

	set("status", string(p.Status))
	if p.TotalAmount != nil {
		set("total_amount", formatDecimal(*p.TotalAmount))
	}
	if p.DepositAmount != nil {
		set("deposit_amount", formatDecimal(*p.DepositAmount))
	}
	if p.PaidAmount != nil {
		set("paid_amount", formatDecimal(*p.PaidAmount))
	}
	set("provider", string(p.Provider))
	set("provider_ref", p.ProviderRef)
	set("paypal_order_id", p.PayPalOrderID)
	set("paypal_capture_id", p.PayPalCaptureID)
	set("stripe_session_id", p.StripeSessionID)
	set("stripe_payment_intent_id", p.StripePaymentIntentID)
	set("mercadopago_payment_id", p.MercadoPagoPaymentID)
	set("refused_by", string(p.RefusedBy))
	set("refusal_reason", p.RefusalReason)
	return expr, values, names
}

func unmarshalOrder(av map[string]types.AttributeValue) (entities.Order, error) {
	var it orderItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func toOrderItem(o entities.Order) orderItem {
	return orderItem{
		ID:                    o.ID,
		OrderRef:              o.OrderRef,
		ShopID:                o.ShopID,
		ProfileID:             o.ProfileID,
		ProductID:             o.ProductID,
		CustomerName:          o.CustomerName,
		CustomerEmail:         o.CustomerEmail,
		CustomerPhone:         o.CustomerPhone,
		CustomerMessage:       o.CustomerMessage,
		PickupDate:            o.PickupDate,
		PickupTime:            o.PickupTime,
		CustomizationData:     o.CustomizationData,
		Status:                string(o.Status),
		TotalAmount:           formatDecimal(o.TotalAmount),
		DepositAmount:         formatDecimal(o.DepositAmount),
		PaidAmount:            formatDecimal(o.PaidAmount),
		Provider:              string(o.Provider),
		ProviderRef:           o.ProviderRef,
		PayPalOrderID:         o.PayPalOrderID,
		PayPalCaptureID:       o.PayPalCaptureID,
		StripeSessionID:       o.StripeSessionID,
		StripePaymentIntentID: o.StripePaymentIntentID,
		MercadoPagoPaymentID:  o.MercadoPagoPaymentID,
		RefusedBy:             string(o.RefusedBy),
		RefusalReason:         o.RefusalReason,
		CreatedAt:             formatTime(o.CreatedAt),
		UpdatedAt:             formatTime(o.UpdatedAt),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	return entities.Order{
		ID:                    it.ID,
		OrderRef:              it.OrderRef,
		ShopID:                it.ShopID,
		ProfileID:             it.ProfileID,
		ProductID:             it.ProductID,
		CustomerName:          it.CustomerName,
		CustomerEmail:         it.CustomerEmail,
		CustomerPhone:         it.CustomerPhone,
		CustomerMessage:       it.CustomerMessage,
		PickupDate:            it.PickupDate,
		PickupTime:            it.PickupTime,
		CustomizationData:     it.CustomizationData,
		Status:                entities.OrderStatus(it.Status),
		TotalAmount:           parseDecimal(it.TotalAmount),
		DepositAmount:         parseDecimal(it.DepositAmount),
		PaidAmount:            parseDecimal(it.PaidAmount),
		Provider:              entities.PaymentProvider(it.Provider),
		ProviderRef:           it.ProviderRef,
		PayPalOrderID:         it.PayPalOrderID,
		PayPalCaptureID:       it.PayPalCaptureID,
		StripeSessionID:       it.StripeSessionID,
		StripePaymentIntentID: it.StripePaymentIntentID,
		MercadoPagoPaymentID:  it.MercadoPagoPaymentID,
		RefusedBy:             entities.RefusedBy(it.RefusedBy),
		RefusalReason:         it.RefusalReason,
		CreatedAt:             parseTime(it.CreatedAt),
		UpdatedAt:             parseTime(it.UpdatedAt),
	}
}
