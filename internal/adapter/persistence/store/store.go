// Package store implements the collection-oriented object store backing the
// ERP. Every record lives in one DynamoDB table under a composite key
// (collection, id); records are schema-less documents, so entity structs go
// through a JSON round-trip on the way in and out. The store knows nothing
// about the entities it holds beyond the "id" primary key convention.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const defaultStoreTableName = "erp_store"

// Canonical collection names. Each is an independent namespace keyed by "id".
const (
	CollectionClients               = "clients"
	CollectionVehicles              = "vehicles"
	CollectionWorkOrders            = "work_orders"
	CollectionInventory             = "inventory"
	CollectionServices              = "services"
	CollectionEmployees             = "employees"
	CollectionEmployeeTransactions  = "employee_transactions"
	CollectionFinancialTransactions = "financial_transactions"
	CollectionUsers                 = "users"
	CollectionTenants               = "tenants"
	CollectionMarketingCampaigns    = "marketing_campaigns"
	CollectionRewards               = "rewards"
	CollectionRedemptions           = "redemptions"
	CollectionFidelityCards         = "fidelity_cards"
	CollectionPointsHistory         = "points_history"
	CollectionAlerts                = "alerts"
	CollectionReminders             = "reminders"
	CollectionMessageLogs           = "message_logs"
)

// Collections lists every known collection in migration order.
var Collections = []string{
	CollectionClients,
	CollectionVehicles,
	CollectionWorkOrders,
	CollectionInventory,
	CollectionServices,
	CollectionEmployees,
	CollectionEmployeeTransactions,
	CollectionFinancialTransactions,
	CollectionUsers,
	CollectionTenants,
	CollectionMarketingCampaigns,
	CollectionRewards,
	CollectionRedemptions,
	CollectionFidelityCards,
	CollectionPointsHistory,
	CollectionAlerts,
	CollectionReminders,
	CollectionMessageLogs,
}

// ErrDuplicateID is returned by Create when the id already exists in the
// collection.
var ErrDuplicateID = errors.New("duplicate id in collection")

// Document is the schema-less record representation held by the store.
type Document = map[string]any

// DynamoAPI is the subset of the DynamoDB client the store depends on.
// *dynamodb.Client satisfies it.
type DynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// Store is the collection-keyed object store.
//
// Table requirements:
//   - PK: collection (string)
//   - SK: id (string)
//
// Single-collection operations are transactional per item; migration and
// seeding span collections through TransactWriteItems batches.
type Store struct {
	ddb          DynamoAPI
	tableName    string
	legacyPath   string
	skipFlagPath string
}

func New(ddb DynamoAPI) *Store {
	return &Store{
		ddb:          ddb,
		tableName:    getenvDefault("STORE_TABLE", defaultStoreTableName),
		legacyPath:   getenvDefault("LEGACY_EXPORT_PATH", "legacy_export.json"),
		skipFlagPath: getenvDefault("SEED_SKIP_FLAG_PATH", ".seed_disabled"),
	}
}

// GetAll returns every record of a collection. No filtering, no pagination
// toward the caller; the table query is paged internally.
func GetAll[T any](ctx context.Context, s *Store, collection string) ([]T, error) {
	out := []T{}
	var startKey map[string]types.AttributeValue
	for {
		res, err := s.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(s.tableName),
			KeyConditionExpression: aws.String("#c = :c"),
			ExpressionAttributeNames: map[string]string{
				"#c": "collection",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":c": &types.AttributeValueMemberS{Value: collection},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, item := range res.Items {
			var v T
			if err := unmarshalDocument(item, &v); err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		if len(res.LastEvaluatedKey) == 0 {
			return out, nil
		}
		startKey = res.LastEvaluatedKey
	}
}

// GetByID returns the record or nil when absent. A missing key is never an
// error.
func GetByID[T any](ctx context.Context, s *Store, collection, id string) (*T, error) {
	item, err := s.getItem(ctx, collection, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	var v T
	if err := unmarshalDocument(item, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// Create inserts a record, assigning "id" and "created_at" when absent. A
// pre-existing id in the collection fails with ErrDuplicateID.
func Create[T any](ctx context.Context, s *Store, collection string, item T) (T, error) {
	var zero T
	doc, err := toDocument(item)
	if err != nil {
		return zero, err
	}
	stampNewDocument(doc)

	av, err := marshalDocument(collection, doc)
	if err != nil {
		return zero, err
	}

	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return zero, fmt.Errorf("%w: %s/%s", ErrDuplicateID, collection, doc["id"])
		}
		return zero, err
	}

	var created T
	if err := documentInto(doc, &created); err != nil {
		return zero, err
	}
	return created, nil
}

// Update shallow-merges patch over the stored record and writes it back.
// Returns nil (no-op) when the record does not exist; it never creates.
// Shallow merge cannot unset a field: absent patch keys keep their stored
// value. "id" and "collection" are not patchable.
func Update[T any](ctx context.Context, s *Store, collection, id string, patch map[string]any) (*T, error) {
	item, err := s.getItem(ctx, collection, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	var current Document
	if err := attributevalue.UnmarshalMap(item, &current); err != nil {
		return nil, err
	}
	delete(current, "collection")

	normalized, err := toDocument(patch)
	if err != nil {
		return nil, err
	}
	for k, v := range normalized {
		if k == "id" || k == "collection" {
			continue
		}
		current[k] = v
	}

	av, err := marshalDocument(collection, current)
	if err != nil {
		return nil, err
	}
	if _, err := s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	}); err != nil {
		return nil, err
	}

	var merged T
	if err := documentInto(current, &merged); err != nil {
		return nil, err
	}
	return &merged, nil
}

// Delete removes the record. It is idempotent: deleting a missing id still
// reports true; only engine failures surface as errors.
func (s *Store) Delete(ctx context.Context, collection, id string) (bool, error) {
	_, err := s.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.tableName),
		Key:       itemKey(collection, id),
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) getItem(ctx context.Context, collection, id string) (map[string]types.AttributeValue, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.tableName),
		Key:            itemKey(collection, id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	return out.Item, nil
}

func itemKey(collection, id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"collection": &types.AttributeValueMemberS{Value: collection},
		"id":         &types.AttributeValueMemberS{Value: id},
	}
}

// stampNewDocument assigns id and created_at when the caller left them empty.
// Legacy records carry numeric ids; those are normalized to their string form
// since the table sort key is a string.
func stampNewDocument(doc Document) {
	switch id := doc["id"].(type) {
	case string:
		if id == "" {
			doc["id"] = uuid.NewString()
		}
	case float64:
		doc["id"] = strconv.FormatFloat(id, 'f', -1, 64)
	default:
		doc["id"] = uuid.NewString()
	}
	if created, ok := doc["created_at"]; !ok || created == "" || created == nil || isZeroTimestamp(created) {
		doc["created_at"] = time.Now().UTC().Format(time.RFC3339Nano)
	}
}

func isZeroTimestamp(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	return err == nil && t.IsZero()
}

// toDocument normalizes any value into a schema-less document through its
// JSON representation, so entity json tags decide attribute names.
func toDocument(v any) (Document, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		doc = Document{}
	}
	return doc, nil
}

func documentInto(doc Document, out any) error {
	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

func marshalDocument(collection string, doc Document) (map[string]types.AttributeValue, error) {
	av, err := attributevalue.MarshalMap(doc)
	if err != nil {
		return nil, err
	}
	av["collection"] = &types.AttributeValueMemberS{Value: collection}
	return av, nil
}

func unmarshalDocument(item map[string]types.AttributeValue, out any) error {
	var doc Document
	if err := attributevalue.UnmarshalMap(item, &doc); err != nil {
		return err
	}
	delete(doc, "collection")
	return documentInto(doc, out)
}
