package repository

import (
	"context"
	"time"

	"clubpay/internal/domain/entities"
	"clubpay/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPurchasesTableName = "purchases"
	purchasesClubIDIndex      = "club_id-index"
)

type purchaseItem struct {
	SessionID       string `dynamodbav:"session_id"`
	RecordID        string `dynamodbav:"record_id"`
	ClubID          string `dynamodbav:"club_id"`
	MemberID        string `dynamodbav:"member_id"`
	Guest           bool   `dynamodbav:"guest"`
	SKU             string `dynamodbav:"sku"`
	PriceMinorUnits int64  `dynamodbav:"price_minor_units"`
	Currency        string `dynamodbav:"currency"`
	ContactName     string `dynamodbav:"contact_name,omitempty"`
	ContactEmail    string `dynamodbav:"contact_email,omitempty"`
	ContactPhone    string `dynamodbav:"contact_phone,omitempty"`
	CreatedAt       string `dynamodbav:"created_at"`

	ResultStatus     string `dynamodbav:"result_status"`
	TransactionID    string `dynamodbav:"transaction_id,omitempty"`
	ApprovalCode     string `dynamodbav:"approval_code,omitempty"`
	CardBrand        string `dynamodbav:"card_brand,omitempty"`
	MaskedPAN        string `dynamodbav:"masked_pan,omitempty"`
	Expiry           string `dynamodbav:"expiry,omitempty"`
	DeclineReason    string `dynamodbav:"decline_reason,omitempty"`
	RawPayloadDigest string `dynamodbav:"raw_payload_digest,omitempty"`
}

// PurchaseDynamoRepository persists PurchaseRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: session_id (string)
//   - GSI: club_id-index (PK: club_id)
//
// Create is conditional on session_id not existing: the table enforces the
// at-most-once purchase guarantee even across process restarts.
type PurchaseDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPurchaseRepository = (*PurchaseDynamoRepository)(nil)

func NewPurchaseDynamoRepository(ddb *dynamodb.Client) *PurchaseDynamoRepository {
	return &PurchaseDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PURCHASES_TABLE", defaultPurchasesTableName),
	}
}

func (r *PurchaseDynamoRepository) Create(ctx context.Context, record entities.PurchaseRecord) (entities.PurchaseRecord, error) {
	it := toPurchaseItem(record)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.PurchaseRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#sid)"),
		ExpressionAttributeNames: map[string]string{
			"#sid": "session_id",
		},
	})
	if err != nil {
		return entities.PurchaseRecord{}, err
	}
	return record, nil
}

func (r *PurchaseDynamoRepository) GetBySessionID(ctx context.Context, sessionID string) (entities.PurchaseRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"session_id": &types.AttributeValueMemberS{Value: sessionID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PurchaseRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.PurchaseRecord{}, nil
	}

	var it purchaseItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PurchaseRecord{}, err
	}
	return fromPurchaseItem(it), nil
}

func (r *PurchaseDynamoRepository) ListByClubID(ctx context.Context, clubID string) ([]entities.PurchaseRecord, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(purchasesClubIDIndex),
		KeyConditionExpression: aws.String("club_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: clubID},
		},
	})
	if err != nil {
		return nil, err
	}

	records := make([]entities.PurchaseRecord, 0, len(out.Items))
	for _, raw := range out.Items {
		var it purchaseItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		records = append(records, fromPurchaseItem(it))
	}
	return records, nil
}

func toPurchaseItem(record entities.PurchaseRecord) purchaseItem {
	return purchaseItem{
		SessionID:        record.SessionID,
		RecordID:         record.RecordID,
		ClubID:           record.ClubID,
		MemberID:         record.MemberID,
		Guest:            record.Guest,
		SKU:              record.SKU,
		PriceMinorUnits:  record.PriceMinorUnits,
		Currency:         record.Currency,
		ContactName:      record.Contact.Name,
		ContactEmail:     record.Contact.Email,
		ContactPhone:     record.Contact.Phone,
		CreatedAt:        record.CreatedAt.UTC().Format(time.RFC3339Nano),
		ResultStatus:     string(record.PaymentResult.Status),
		TransactionID:    record.PaymentResult.TransactionID,
		ApprovalCode:     record.PaymentResult.ApprovalCode,
		CardBrand:        record.PaymentResult.CardBrand,
		MaskedPAN:        record.PaymentResult.MaskedPAN,
		Expiry:           record.PaymentResult.ExpiryMonthYear,
		DeclineReason:    record.PaymentResult.DeclineReason,
		RawPayloadDigest: record.PaymentResult.RawPayloadDigest,
	}
}

func fromPurchaseItem(it purchaseItem) entities.PurchaseRecord {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.PurchaseRecord{
		RecordID:        it.RecordID,
		SessionID:       it.SessionID,
		ClubID:          it.ClubID,
		MemberID:        it.MemberID,
		Guest:           it.Guest,
		SKU:             it.SKU,
		PriceMinorUnits: it.PriceMinorUnits,
		Currency:        it.Currency,
		Contact: entities.ContactInfo{
			Name:  it.ContactName,
			Email: it.ContactEmail,
			Phone: it.ContactPhone,
		},
		CreatedAt: createdAt,
		PaymentResult: entities.CanonicalPaymentResult{
			Status:           entities.ResultStatus(it.ResultStatus),
			TransactionID:    it.TransactionID,
			ApprovalCode:     it.ApprovalCode,
			CardBrand:        it.CardBrand,
			MaskedPAN:        it.MaskedPAN,
			ExpiryMonthYear:  it.Expiry,
			DeclineReason:    it.DeclineReason,
			RawPayloadDigest: it.RawPayloadDigest,
		},
	}
}
