package store

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"estetica_pro/internal/domain/entities"
)

// fakeDynamo is an in-memory stand-in for the DynamoDB client, covering the
// slice of the API the store uses: key-value put/get/delete, per-collection
// query, scan and transact writes.
type fakeDynamo struct {
	items map[string]map[string]map[string]types.AttributeValue

	// transactErr, when set, fails every TransactWriteItems call.
	transactErr error
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]map[string]types.AttributeValue{}}
}

func avString(item map[string]types.AttributeValue, key string) string {
	if v, ok := item[key].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}

func (f *fakeDynamo) put(item map[string]types.AttributeValue) {
	collection := avString(item, "collection")
	id := avString(item, "id")
	if f.items[collection] == nil {
		f.items[collection] = map[string]map[string]types.AttributeValue{}
	}
	f.items[collection][id] = item
}

func (f *fakeDynamo) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	collection := avString(params.Item, "collection")
	id := avString(params.Item, "id")
	if params.ConditionExpression != nil {
		if _, exists := f.items[collection][id]; exists {
			return nil, &types.ConditionalCheckFailedException{}
		}
	}
	f.put(params.Item)
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	collection := avString(params.Key, "collection")
	id := avString(params.Key, "id")
	item, ok := f.items[collection][id]
	if !ok {
		return &dynamodb.GetItemOutput{}, nil
	}
	return &dynamodb.GetItemOutput{Item: item}, nil
}

func (f *fakeDynamo) DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	collection := avString(params.Key, "collection")
	id := avString(params.Key, "id")
	delete(f.items[collection], id)
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *fakeDynamo) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	collection := ""
	if v, ok := params.ExpressionAttributeValues[":c"].(*types.AttributeValueMemberS); ok {
		collection = v.Value
	}
	var items []map[string]types.AttributeValue
	for _, item := range f.items[collection] {
		items = append(items, item)
	}
	if params.Select == types.SelectCount {
		count := int32(len(items))
		if params.Limit != nil && count > *params.Limit {
			count = *params.Limit
		}
		return &dynamodb.QueryOutput{Count: count}, nil
	}
	return &dynamodb.QueryOutput{Items: items, Count: int32(len(items))}, nil
}

func (f *fakeDynamo) Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	var items []map[string]types.AttributeValue
	for collection, byID := range f.items {
		for id := range byID {
			items = append(items, map[string]types.AttributeValue{
				"collection": &types.AttributeValueMemberS{Value: collection},
				"id":         &types.AttributeValueMemberS{Value: id},
			})
		}
	}
	return &dynamodb.ScanOutput{Items: items, Count: int32(len(items))}, nil
}

func (f *fakeDynamo) TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	if f.transactErr != nil {
		return nil, f.transactErr
	}
	if len(params.TransactItems) > transactBatchSize {
		return nil, errors.New("transaction too large")
	}
	for _, w := range params.TransactItems {
		if w.Put != nil {
			f.put(w.Put.Item)
		}
	}
	return &dynamodb.TransactWriteItemsOutput{}, nil
}

func (f *fakeDynamo) count(collection string) int {
	return len(f.items[collection])
}

func newTestStore(t *testing.T, fake *fakeDynamo) *Store {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("STORE_TABLE", "erp_store_test")
	t.Setenv("LEGACY_EXPORT_PATH", filepath.Join(dir, "legacy_export.json"))
	t.Setenv("SEED_SKIP_FLAG_PATH", filepath.Join(dir, ".seed_disabled"))
	return New(fake)
}

func TestStoreCRUD(t *testing.T) {
	ctx := context.Background()

	t.Run("create assigns id and created_at", func(t *testing.T) {
		s := newTestStore(t, newFakeDynamo())

		created, err := Create(ctx, s, CollectionClients, entities.Client{Name: "Paula Dias"})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if created.ID == "" {
			t.Fatal("expected an assigned id")
		}
		if created.CreatedAt.IsZero() {
			t.Fatal("expected created_at to be stamped")
		}

		got, err := GetByID[entities.Client](ctx, s, CollectionClients, created.ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got == nil || got.Name != "Paula Dias" {
			t.Fatalf("expected stored client, got %+v", got)
		}
	})

	t.Run("create rejects duplicate id", func(t *testing.T) {
		s := newTestStore(t, newFakeDynamo())

		if _, err := Create(ctx, s, CollectionClients, entities.Client{ID: "client-1", Name: "A"}); err != nil {
			t.Fatalf("first create: %v", err)
		}
		_, err := Create(ctx, s, CollectionClients, entities.Client{ID: "client-1", Name: "B"})
		if !errors.Is(err, ErrDuplicateID) {
			t.Fatalf("expected ErrDuplicateID, got %v", err)
		}
	})

	t.Run("same id in different collections does not collide", func(t *testing.T) {
		s := newTestStore(t, newFakeDynamo())

		if _, err := Create(ctx, s, CollectionClients, entities.Client{ID: "shared", Name: "A"}); err != nil {
			t.Fatalf("client create: %v", err)
		}
		if _, err := Create(ctx, s, CollectionVehicles, entities.Vehicle{ID: "shared", Model: "Gol"}); err != nil {
			t.Fatalf("vehicle create: %v", err)
		}
	})

	t.Run("get missing returns nil without error", func(t *testing.T) {
		s := newTestStore(t, newFakeDynamo())

		got, err := GetByID[entities.Client](ctx, s, CollectionClients, "nope")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got != nil {
			t.Fatalf("expected nil, got %+v", got)
		}
	})

	t.Run("update shallow-merges and keeps unpatched fields", func(t *testing.T) {
		s := newTestStore(t, newFakeDynamo())

		created, err := Create(ctx, s, CollectionClients, entities.Client{ID: "client-1", Name: "Paula", Phone: "111"})
		if err != nil {
			t.Fatalf("create: %v", err)
		}

		updated, err := Update[entities.Client](ctx, s, CollectionClients, created.ID, map[string]any{"phone": "222"})
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if updated == nil {
			t.Fatal("expected updated record")
		}
		if updated.Phone != "222" {
			t.Fatalf("expected patched phone, got %q", updated.Phone)
		}
		if updated.Name != "Paula" {
			t.Fatalf("expected name kept, got %q", updated.Name)
		}
	})

	t.Run("update ignores id in patch", func(t *testing.T) {
		s := newTestStore(t, newFakeDynamo())

		if _, err := Create(ctx, s, CollectionClients, entities.Client{ID: "client-1", Name: "Paula"}); err != nil {
			t.Fatalf("create: %v", err)
		}
		updated, err := Update[entities.Client](ctx, s, CollectionClients, "client-1", map[string]any{"id": "client-2", "name": "Clara"})
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if updated.ID != "client-1" {
			t.Fatalf("expected id unchanged, got %q", updated.ID)
		}
		if updated.Name != "Clara" {
			t.Fatalf("expected name patched, got %q", updated.Name)
		}
	})

	t.Run("update missing is a nil no-op", func(t *testing.T) {
		fake := newFakeDynamo()
		s := newTestStore(t, fake)

		updated, err := Update[entities.Client](ctx, s, CollectionClients, "ghost", map[string]any{"name": "X"})
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if updated != nil {
			t.Fatalf("expected nil, got %+v", updated)
		}
		if fake.count(CollectionClients) != 0 {
			t.Fatal("update must never create")
		}
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		s := newTestStore(t, newFakeDynamo())

		if _, err := Create(ctx, s, CollectionClients, entities.Client{ID: "client-1", Name: "Paula"}); err != nil {
			t.Fatalf("create: %v", err)
		}
		for i := 0; i < 2; i++ {
			ok, err := s.Delete(ctx, CollectionClients, "client-1")
			if err != nil {
				t.Fatalf("delete #%d: %v", i+1, err)
			}
			if !ok {
				t.Fatalf("delete #%d reported false", i+1)
			}
		}
	})

	t.Run("get all returns every record of the collection", func(t *testing.T) {
		s := newTestStore(t, newFakeDynamo())

		for _, id := range []string{"a", "b", "c"} {
			if _, err := Create(ctx, s, CollectionServices, entities.Service{ID: id, Name: id}); err != nil {
				t.Fatalf("create %s: %v", id, err)
			}
		}
		all, err := GetAll[entities.Service](ctx, s, CollectionServices)
		if err != nil {
			t.Fatalf("get all: %v", err)
		}
		if len(all) != 3 {
			t.Fatalf("expected 3 services, got %d", len(all))
		}
	})
}

func TestStoreInitSeeds(t *testing.T) {
	ctx := context.Background()
	fake := newFakeDynamo()
	s := newTestStore(t, fake)

	if err := s.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	if fake.count(CollectionUsers) == 0 {
		t.Fatal("expected seeded admin user")
	}
	if fake.count(CollectionClients) != 3 {
		t.Fatalf("expected 3 seeded clients, got %d", fake.count(CollectionClients))
	}
	if fake.count(CollectionVehicles) != 4 {
		t.Fatalf("expected 4 flattened vehicles, got %d", fake.count(CollectionVehicles))
	}

	// Vehicles must carry the client back-reference and the client must not
	// keep the nested list.
	v, err := GetByID[entities.Vehicle](ctx, s, CollectionVehicles, "vehicle-joao-sw4")
	if err != nil {
		t.Fatalf("get vehicle: %v", err)
	}
	if v == nil || v.ClientID != "client-joao" {
		t.Fatalf("expected client_id back-reference, got %+v", v)
	}
	c, err := GetByID[entities.Client](ctx, s, CollectionClients, "client-joao")
	if err != nil {
		t.Fatalf("get client: %v", err)
	}
	if len(c.Vehicles) != 0 {
		t.Fatalf("expected flattened client, still carries %d vehicles", len(c.Vehicles))
	}

	// A second init on a populated store must be a no-op.
	users := fake.count(CollectionUsers)
	if err := s.Init(ctx); err != nil {
		t.Fatalf("second init: %v", err)
	}
	if fake.count(CollectionUsers) != users {
		t.Fatal("second init must not reseed")
	}
}

func TestStoreInitHonorsSeedSkipFlag(t *testing.T) {
	ctx := context.Background()
	fake := newFakeDynamo()
	s := newTestStore(t, fake)

	if err := os.WriteFile(s.skipFlagPath, []byte("1"), 0o644); err != nil {
		t.Fatalf("writing flag: %v", err)
	}
	if err := s.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}
	if fake.count(CollectionUsers) != 0 {
		t.Fatal("seeding must be suppressed by the flag file")
	}
}

func TestStoreInitMigratesLegacyExport(t *testing.T) {
	ctx := context.Background()
	fake := newFakeDynamo()
	s := newTestStore(t, fake)

	legacy := map[string][]map[string]any{
		"clients": {
			{"id": "client-old", "name": "Cliente Antigo"},
			{"name": "Sem ID"},
		},
		"work_orders": {
			// Legacy numeric ids become their string form.
			{"id": float64(7), "client_id": "client-old", "vehicle": "Fiat Uno", "status": "Aguardando"},
		},
	}
	blob, err := json.Marshal(legacy)
	if err != nil {
		t.Fatalf("marshal legacy: %v", err)
	}
	if err := os.WriteFile(s.legacyPath, blob, 0o644); err != nil {
		t.Fatalf("writing legacy export: %v", err)
	}

	if err := s.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	if fake.count(CollectionClients) != 2 {
		t.Fatalf("expected 2 migrated clients, got %d", fake.count(CollectionClients))
	}
	order, err := GetByID[entities.WorkOrder](ctx, s, CollectionWorkOrders, "7")
	if err != nil {
		t.Fatalf("get order: %v", err)
	}
	if order == nil || order.ClientID != "client-old" {
		t.Fatalf("expected migrated order under string id, got %+v", order)
	}

	clients, err := GetAll[entities.Client](ctx, s, CollectionClients)
	if err != nil {
		t.Fatalf("get all clients: %v", err)
	}
	for _, c := range clients {
		if c.ID == "" {
			t.Fatal("migrated record missing assigned id")
		}
	}

	if _, err := os.Stat(s.legacyPath); !os.IsNotExist(err) {
		t.Fatal("legacy export must be deleted after a full migration")
	}
}

func TestStoreInitKeepsLegacyExportOnMigrationFailure(t *testing.T) {
	ctx := context.Background()
	fake := newFakeDynamo()
	s := newTestStore(t, fake)

	legacy := map[string][]map[string]any{
		"clients": {{"id": "client-old", "name": "Cliente Antigo"}},
	}
	blob, err := json.Marshal(legacy)
	if err != nil {
		t.Fatalf("marshal legacy: %v", err)
	}
	if err := os.WriteFile(s.legacyPath, blob, 0o644); err != nil {
		t.Fatalf("writing legacy export: %v", err)
	}

	fake.transactErr = errors.New("throughput exceeded")
	if err := s.Init(ctx); err == nil {
		t.Fatal("expected init to fail when a migration batch fails")
	}
	if _, err := os.Stat(s.legacyPath); err != nil {
		t.Fatalf("legacy export must survive a failed migration: %v", err)
	}
	if fake.count(CollectionClients) != 0 {
		t.Fatalf("expected no migrated clients after the failure, got %d", fake.count(CollectionClients))
	}

	fake.transactErr = nil
	if err := s.Init(ctx); err != nil {
		t.Fatalf("retry init: %v", err)
	}
	if fake.count(CollectionClients) != 1 {
		t.Fatalf("expected the retried migration to land, got %d clients", fake.count(CollectionClients))
	}
	if _, err := os.Stat(s.legacyPath); !os.IsNotExist(err) {
		t.Fatal("legacy export must be deleted after a full migration")
	}
}

func TestStoreReset(t *testing.T) {
	ctx := context.Background()
	fake := newFakeDynamo()
	s := newTestStore(t, fake)

	if err := s.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}
	if err := s.Reset(ctx, true); err != nil {
		t.Fatalf("reset: %v", err)
	}

	for _, collection := range Collections {
		if fake.count(collection) != 0 {
			t.Fatalf("expected %s wiped, still has %d", collection, fake.count(collection))
		}
	}

	// With the skip flag persisted, re-init must leave the store empty.
	if err := s.Init(ctx); err != nil {
		t.Fatalf("re-init: %v", err)
	}
	if fake.count(CollectionUsers) != 0 {
		t.Fatal("expected re-init without seeding")
	}
}
