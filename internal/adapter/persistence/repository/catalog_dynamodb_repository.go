package repository

import (
	"context"

	"clubpay/internal/domain/entities"
	"clubpay/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOfferingsTableName = "package_offerings"

type offeringItem struct {
	ClubID          string `dynamodbav:"club_id"`
	SKU             string `dynamodbav:"sku"`
	Name            string `dynamodbav:"name"`
	PriceMinorUnits int64  `dynamodbav:"price_minor_units"`
	Currency        string `dynamodbav:"currency"`
	Active          bool   `dynamodbav:"active"`
}

// CatalogDynamoRepository reads the per-club package catalog. The table key
// is composite: PK club_id, SK sku. Prices stored here are the source of
// truth for finalization; client-submitted amounts are never trusted.
type CatalogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb *dynamodb.Client) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("OFFERINGS_TABLE", defaultOfferingsTableName),
	}
}

func (r *CatalogDynamoRepository) GetOffering(ctx context.Context, clubID, sku string) (entities.PackageOffering, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"club_id": &types.AttributeValueMemberS{Value: clubID},
			"sku":     &types.AttributeValueMemberS{Value: sku},
		},
	})
	if err != nil {
		return entities.PackageOffering{}, err
	}
	if len(out.Item) == 0 {
		return entities.PackageOffering{}, nil
	}

	var it offeringItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PackageOffering{}, err
	}
	return fromOfferingItem(it), nil
}

func (r *CatalogDynamoRepository) ListByClubID(ctx context.Context, clubID string) ([]entities.PackageOffering, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("club_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: clubID},
		},
	})
	if err != nil {
		return nil, err
	}

	offerings := make([]entities.PackageOffering, 0, len(out.Items))
	for _, raw := range out.Items {
		var it offeringItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		offerings = append(offerings, fromOfferingItem(it))
	}
	return offerings, nil
}

func fromOfferingItem(it offeringItem) entities.PackageOffering {
	return entities.PackageOffering{
		ClubID:          it.ClubID,
		SKU:             it.SKU,
		Name:            it.Name,
		PriceMinorUnits: it.PriceMinorUnits,
		Currency:        it.Currency,
		Active:          it.Active,
	}
}
