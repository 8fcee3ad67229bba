package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"patisserie_marketplace/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCountersTableName = "order_counters"

// OrderRefDynamoGenerator issues sequential references per shop and year
// ("CMD-2024-0007") from an atomic counter.
//
// Table requirements:
//   - PK: id (string, "<shop id>#<year>")
type OrderRefDynamoGenerator struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IOrderRefGenerator = (*OrderRefDynamoGenerator)(nil)

func NewOrderRefDynamoGenerator(ddb DynamoDBAPI, tableName string) *OrderRefDynamoGenerator {
	return &OrderRefDynamoGenerator{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultCountersTableName),
	}
}

func (g *OrderRefDynamoGenerator) NextOrderRef(ctx context.Context, shopID string, at time.Time) (string, error) {
	year := at.UTC().Year()
	out, err := g.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(g.tableName),
		Key:              idKey(fmt.Sprintf("%s#%d", shopID, year)),
		UpdateExpression: aws.String("ADD #seq :one"),
		ExpressionAttributeNames: map[string]string{
			"#seq": "seq",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return "", err
	}

	raw, ok := out.Attributes["seq"].(*types.AttributeValueMemberN)
	if !ok {
		return "", fmt.Errorf("order counter %s: missing seq attribute", shopID)
	}
	seq, err := strconv.ParseInt(raw.Value, 10, 64)
	if err != nil {
		return "", fmt.Errorf("order counter %s: %w", shopID, err)
	}
	return fmt.Sprintf("CMD-%d-%04d", year, seq), nil
}
