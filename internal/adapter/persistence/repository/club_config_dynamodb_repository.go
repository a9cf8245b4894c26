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

const defaultClubConfigTableName = "club_payment_config"

type clubConfigItem struct {
	ClubID         string   `dynamodbav:"club_id"`
	Processor      string   `dynamodbav:"processor"`
	MerchantID     string   `dynamodbav:"merchant_id"`
	UserID         string   `dynamodbav:"user_id"`
	Secret         string   `dynamodbav:"secret"`
	VendorBaseURL  string   `dynamodbav:"vendor_base_url"`
	AllowedOrigins []string `dynamodbav:"allowed_origins,omitempty"`
}

// ClubConfigDynamoRepository reads per-club processor bindings and merchant
// credentials. PK: club_id. The table is written by the provisioning tooling,
// this service only reads it.
type ClubConfigDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IClubConfigRepository = (*ClubConfigDynamoRepository)(nil)

func NewClubConfigDynamoRepository(ddb *dynamodb.Client) *ClubConfigDynamoRepository {
	return &ClubConfigDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CLUB_CONFIG_TABLE", defaultClubConfigTableName),
	}
}

func (r *ClubConfigDynamoRepository) GetByClubID(ctx context.Context, clubID string) (entities.ClubPaymentConfig, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"club_id": &types.AttributeValueMemberS{Value: clubID},
		},
	})
	if err != nil {
		return entities.ClubPaymentConfig{}, err
	}
	if len(out.Item) == 0 {
		return entities.ClubPaymentConfig{}, nil
	}

	var it clubConfigItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ClubPaymentConfig{}, err
	}

	return entities.ClubPaymentConfig{
		ClubID:    it.ClubID,
		Processor: entities.Processor(it.Processor),
		Credentials: entities.MerchantCredentials{
			MerchantID: it.MerchantID,
			UserID:     it.UserID,
			Secret:     it.Secret,
		},
		VendorBaseURL:  it.VendorBaseURL,
		AllowedOrigins: it.AllowedOrigins,
	}, nil
}
