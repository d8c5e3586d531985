package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// transactBatchSize is the DynamoDB TransactWriteItems item cap.
const transactBatchSize = 100

// Init prepares the store. Exactly one of three paths runs:
//
//  1. A legacy flat JSON export is present: migrate every collection into the
//     store and delete the export only after every batch committed. A partial
//     failure leaves the export untouched so the next boot retries; re-applied
//     puts are idempotent.
//  2. The store is empty (no users) and seeding was not disabled: populate
//     demo data, flattening client-nested vehicles into the vehicles
//     collection with a client_id back-reference.
//  3. Otherwise the store is already initialized; do nothing.
func (s *Store) Init(ctx context.Context) error {
	legacy, err := s.loadLegacyExport()
	if err != nil {
		return fmt.Errorf("reading legacy export: %w", err)
	}
	if legacy != nil {
		log.Printf("[store][init] legacy export found at %s, migrating", s.legacyPath)
		if err := s.migrate(ctx, legacy); err != nil {
			// Keep the export for retry on next boot.
			return fmt.Errorf("migrating legacy export: %w", err)
		}
		if err := os.Remove(s.legacyPath); err != nil {
			return fmt.Errorf("removing migrated legacy export: %w", err)
		}
		log.Printf("[store][init] migration complete, legacy export removed")
		return nil
	}

	empty, err := s.isEmpty(ctx)
	if err != nil {
		return err
	}
	if !empty {
		return nil
	}
	if s.seedingDisabled() {
		log.Printf("[store][init] store empty but seeding disabled by flag %s", s.skipFlagPath)
		return nil
	}

	log.Printf("[store][init] store empty, seeding demo data")
	return s.seed(ctx)
}

// Reset destroys every record in the store. When skipSeeding is set, a flag
// file outside the store suppresses demo-data seeding on the next Init.
func (s *Store) Reset(ctx context.Context, skipSeeding bool) error {
	if skipSeeding {
		if err := os.WriteFile(s.skipFlagPath, []byte("1"), 0o644); err != nil {
			return fmt.Errorf("persisting seed skip flag: %w", err)
		}
	}

	var startKey map[string]types.AttributeValue
	for {
		out, err := s.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:            aws.String(s.tableName),
			ProjectionExpression: aws.String("#c, #id"),
			ExpressionAttributeNames: map[string]string{
				"#c":  "collection",
				"#id": "id",
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return err
		}
		for _, item := range out.Items {
			if _, err := s.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
				TableName: aws.String(s.tableName),
				Key:       item,
			}); err != nil {
				return err
			}
		}
		if len(out.LastEvaluatedKey) == 0 {
			return nil
		}
		startKey = out.LastEvaluatedKey
	}
}

// loadLegacyExport reads the flat legacy blob: top-level keys are collection
// names, each mapping to an array of records. Returns nil when the file does
// not exist.
func (s *Store) loadLegacyExport() (map[string][]Document, error) {
	b, err := os.ReadFile(s.legacyPath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var blob map[string][]Document
	if err := json.Unmarshal(b, &blob); err != nil {
		return nil, err
	}
	return blob, nil
}

// migrate writes every legacy collection into the store. Records without an
// id get one assigned. Writes run in transact batches; the caller deletes the
// export only after every batch succeeded.
func (s *Store) migrate(ctx context.Context, legacy map[string][]Document) error {
	var writes []types.TransactWriteItem
	for _, collection := range Collections {
		records, ok := legacy[collection]
		if !ok {
			continue
		}
		for _, doc := range records {
			stampNewDocument(doc)
			av, err := marshalDocument(collection, doc)
			if err != nil {
				return fmt.Errorf("marshaling %s record: %w", collection, err)
			}
			writes = append(writes, types.TransactWriteItem{
				Put: &types.Put{
					TableName: aws.String(s.tableName),
					Item:      av,
				},
			})
		}
		log.Printf("[store][migrate] collection=%s records=%d", collection, len(records))
	}
	return s.transactWrite(ctx, writes)
}

// transactWrite commits writes in batches bounded by the engine's transact
// item limit. Each batch is all-or-nothing.
func (s *Store) transactWrite(ctx context.Context, writes []types.TransactWriteItem) error {
	for start := 0; start < len(writes); start += transactBatchSize {
		end := start + transactBatchSize
		if end > len(writes) {
			end = len(writes)
		}
		_, err := s.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
			TransactItems: writes[start:end],
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// isEmpty treats a store with zero users as never initialized.
func (s *Store) isEmpty(ctx context.Context) (bool, error) {
	out, err := s.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.tableName),
		KeyConditionExpression: aws.String("#c = :c"),
		ExpressionAttributeNames: map[string]string{
			"#c": "collection",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":c": &types.AttributeValueMemberS{Value: CollectionUsers},
		},
		Select: types.SelectCount,
		Limit:  aws.Int32(1),
	})
	if err != nil {
		return false, err
	}
	return out.Count == 0, nil
}

func (s *Store) seedingDisabled() bool {
	_, err := os.Stat(s.skipFlagPath)
	return err == nil
}
