package repository

import (
	"context"
	"time"

	"patisserie_marketplace/internal/domain/entities"
	"patisserie_marketplace/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCommissionsTableName = "affiliate_commissions"
	defaultPayoutsTableName     = "affiliate_payouts"
	commissionsStatusCreatedIdx = "status-created_at-index"
	batchGetLimit               = 100
)

type commissionItem struct {
	ID                string `dynamodbav:"id"`
	ReferrerProfileID string `dynamodbav:"referrer_profile_id"`
	ReferredProfileID string `dynamodbav:"referred_profile_id"`
	CommissionAmount  string `dynamodbav:"commission_amount"`
	Status            string `dynamodbav:"status"`
	StripeTransferID  string `dynamodbav:"stripe_transfer_id,omitempty"`
	CreatedAt         string `dynamodbav:"created_at"`
	PaidAt            string `dynamodbav:"paid_at,omitempty"`
}

// eligibleFilter is the storage-side twin of AffiliateCommission.IsEligibleForPayout.
const eligibleFilter = "#status = :pending AND (attribute_not_exists(stripe_transfer_id) OR stripe_transfer_id = :empty)"

// CommissionDynamoRepository reads and settles affiliate commissions.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: status-created_at-index (PK: status, SK: created_at)
type CommissionDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.ICommissionRepository = (*CommissionDynamoRepository)(nil)

func NewCommissionDynamoRepository(ddb DynamoDBAPI, tableName string) *CommissionDynamoRepository {
	return &CommissionDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultCommissionsTableName),
	}
}

// ListEligible returns pending, untransferred commissions created in [from, to).
func (r *CommissionDynamoRepository) ListEligible(ctx context.Context, from, to time.Time) ([]entities.AffiliateCommission, error) {
	var (
		result []entities.AffiliateCommission
		start  map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(commissionsStatusCreatedIdx),
			KeyConditionExpression: aws.String("#status = :pending AND created_at BETWEEN :from AND :to"),
			FilterExpression:       aws.String("attribute_not_exists(stripe_transfer_id) OR stripe_transfer_id = :empty"),
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":pending": stringAV(string(entities.CommissionStatusPending)),
				":from":    stringAV(formatTime(from)),
				":to":      stringAV(formatTime(to.Add(-time.Nanosecond))),
				":empty":   stringAV(""),
			},
			ExclusiveStartKey: start,
		})
		if err != nil {
			return nil, err
		}
		page, err := unmarshalCommissions(out.Items)
		if err != nil {
			return nil, err
		}
		result = append(result, page...)
		if len(out.LastEvaluatedKey) == 0 {
			return result, nil
		}
		start = out.LastEvaluatedKey
	}
}

// ListEligibleByIDs re-reads the given rows with strongly consistent reads and
// keeps only those still eligible.
func (r *CommissionDynamoRepository) ListEligibleByIDs(ctx context.Context, ids []string) ([]entities.AffiliateCommission, error) {
	var result []entities.AffiliateCommission
	for startIdx := 0; startIdx < len(ids); startIdx += batchGetLimit {
		end := min(startIdx+batchGetLimit, len(ids))
		keys := make([]map[string]types.AttributeValue, 0, end-startIdx)
		for _, id := range ids[startIdx:end] {
			keys = append(keys, idKey(id))
		}

		request := map[string]types.KeysAndAttributes{
			r.tableName: {Keys: keys, ConsistentRead: aws.Bool(true)},
		}
		for len(request) > 0 {
			out, err := r.ddb.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{RequestItems: request})
			if err != nil {
				return nil, err
			}
			page, err := unmarshalCommissions(out.Responses[r.tableName])
			if err != nil {
				return nil, err
			}
			for _, c := range page {
				if c.IsEligibleForPayout() {
					result = append(result, c)
				}
			}
			request = out.UnprocessedKeys
		}
	}
	return result, nil
}

// MarkPaid settles a commission. It returns false when the row was no longer
// eligible, which is how overlapping runs avoid double-marking.
func (r *CommissionDynamoRepository) MarkPaid(ctx context.Context, id, transferID string, paidAt time.Time) (bool, error) {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id) AND " + eligibleFilter),
		UpdateExpression:    aws.String("SET #status = :paid, stripe_transfer_id = :transfer, paid_at = :paid_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending":  stringAV(string(entities.CommissionStatusPending)),
			":paid":     stringAV(string(entities.CommissionStatusPaid)),
			":empty":    stringAV(""),
			":transfer": stringAV(transferID),
			":paid_at":  stringAV(formatTime(paidAt)),
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func unmarshalCommissions(raw []map[string]types.AttributeValue) ([]entities.AffiliateCommission, error) {
	out := make([]entities.AffiliateCommission, 0, len(raw))
	for _, av := range raw {
		var it commissionItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		out = append(out, fromCommissionItem(it))
	}
	return out, nil
}

func fromCommissionItem(it commissionItem) entities.AffiliateCommission {
	c := entities.AffiliateCommission{
		ID:                it.ID,
		ReferrerProfileID: it.ReferrerProfileID,
		ReferredProfileID: it.ReferredProfileID,
		CommissionAmount:  parseDecimal(it.CommissionAmount),
		Status:            entities.CommissionStatus(it.Status),
		StripeTransferID:  it.StripeTransferID,
		CreatedAt:         parseTime(it.CreatedAt),
	}
	if it.PaidAt != "" {
		paidAt := parseTime(it.PaidAt)
		c.PaidAt = &paidAt
	}
	return c
}

type payoutItem struct {
	ID                string   `dynamodbav:"id"`
	ReferrerProfileID string   `dynamodbav:"referrer_profile_id"`
	Period            string   `dynamodbav:"period"`
	Amount            string   `dynamodbav:"amount"`
	AmountMinor       int64    `dynamodbav:"amount_minor"`
	StripeTransferID  string   `dynamodbav:"stripe_transfer_id"`
	CommissionIDs     []string `dynamodbav:"commission_ids,omitempty"`
	CreatedAt         string   `dynamodbav:"created_at"`
}

// PayoutDynamoRepository is the payout ledger.
//
// Table requirements:
//   - PK: id (string, the transfer idempotency key)
type PayoutDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IPayoutRepository = (*PayoutDynamoRepository)(nil)

func NewPayoutDynamoRepository(ddb DynamoDBAPI, tableName string) *PayoutDynamoRepository {
	return &PayoutDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultPayoutsTableName),
	}
}

func (r *PayoutDynamoRepository) Create(ctx context.Context, p entities.AffiliatePayout) (entities.AffiliatePayout, error) {
	av, err := attributevalue.MarshalMap(payoutItem{
		ID:                p.ID,
		ReferrerProfileID: p.ReferrerProfileID,
		Period:            p.Period,
		Amount:            formatDecimal(p.Amount),
		AmountMinor:       p.AmountMinor,
		StripeTransferID:  p.StripeTransferID,
		CommissionIDs:     p.CommissionIDs,
		CreatedAt:         formatTime(p.CreatedAt),
	})
	if err != nil {
		return entities.AffiliatePayout{}, err
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
			return entities.AffiliatePayout{}, interfaces.ErrAlreadyExists
		}
		return entities.AffiliatePayout{}, err
	}
	return p, nil
}
