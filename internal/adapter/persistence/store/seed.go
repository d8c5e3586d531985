package store

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"estetica_pro/internal/domain/entities"
)

// seed populates every collection with demo data. Client-nested vehicles are
// flattened into the vehicles collection, each gaining a client_id
// back-reference; the client record itself is stored without the nested list.
// All writes go through the same transact batches as migration, so a crash
// cannot leave the store half-seeded past a committed batch.
func (s *Store) seed(ctx context.Context) error {
	now := time.Now().UTC()

	clients := seedClients(now)

	var docs []seedDoc
	for _, c := range clients {
		vehicles := c.Vehicles
		c.Vehicles = nil
		docs = append(docs, seedDoc{CollectionClients, c})
		for _, v := range vehicles {
			v.ClientID = c.ID
			if v.ID == "" {
				v.ID = uuid.NewString()
			}
			v.CreatedAt = now
			docs = append(docs, seedDoc{CollectionVehicles, v})
		}
	}
	for _, svc := range seedServices(now) {
		docs = append(docs, seedDoc{CollectionServices, svc})
	}
	for _, e := range seedEmployees(now) {
		docs = append(docs, seedDoc{CollectionEmployees, e})
	}
	for _, r := range seedRewards(now) {
		docs = append(docs, seedDoc{CollectionRewards, r})
	}
	for _, item := range seedInventory(now) {
		docs = append(docs, seedDoc{CollectionInventory, item})
	}
	docs = append(docs,
		seedDoc{CollectionTenants, entities.Tenant{ID: "tenant-demo", Name: "Estética Auto Demo", Document: "00.000.000/0001-00", CreatedAt: now}},
		seedDoc{CollectionMarketingCampaigns, entities.MarketingCampaign{ID: "camp-indicacao", Name: "Indicação de Cliente", Channel: "whatsapp", Active: true, CreatedAt: now}},
		// The user record must be last to land: its presence marks the store
		// as initialized, and batches commit in order.
		seedDoc{CollectionUsers, entities.User{ID: "user-admin", Name: "Administrador", Email: "admin@estetica.local", Role: "admin", TenantID: "tenant-demo", CreatedAt: now}},
	)

	var writes []types.TransactWriteItem
	for _, d := range docs {
		doc, err := toDocument(d.record)
		if err != nil {
			return fmt.Errorf("seeding %s: %w", d.collection, err)
		}
		stampNewDocument(doc)
		av, err := marshalDocument(d.collection, doc)
		if err != nil {
			return fmt.Errorf("seeding %s: %w", d.collection, err)
		}
		writes = append(writes, types.TransactWriteItem{
			Put: &types.Put{TableName: aws.String(s.tableName), Item: av},
		})
	}

	if err := s.transactWrite(ctx, writes); err != nil {
		return err
	}
	log.Printf("[store][seed] seeded %d records across %d collections", len(writes), len(Collections))
	return nil
}

type seedDoc struct {
	collection string
	record     any
}

func seedClients(now time.Time) []entities.Client {
	lastMonth := now.AddDate(0, -1, 0)
	return []entities.Client{
		{
			ID:    "client-joao",
			Name:  "João Pereira",
			Phone: "+55 11 98888-1001",
			Email: "joao.pereira@example.com",
			Address: entities.Address{
				Street: "Rua das Acácias", Number: "120", Neighborhood: "Jardim Paulista",
				City: "São Paulo", State: "SP", CEP: "01410-000",
			},
			LTV: 1850, VisitCount: 6, LastVisit: &lastMonth,
			Status: entities.ClientStatusActive, Segment: entities.ClientSegmentRecurring,
			CreatedAt: now,
			Vehicles: []entities.Vehicle{
				{ID: "vehicle-joao-hb20", Model: "Hyundai HB20", Plate: "FBR2C34", Color: "Prata", Year: 2021, Size: entities.VehicleSizeSmall},
				{ID: "vehicle-joao-sw4", Model: "Toyota SW4", Plate: "GHD8E21", Color: "Preto", Year: 2023, Size: entities.VehicleSizeLarge},
			},
		},
		{
			ID:    "client-marina",
			Name:  "Marina Costa",
			Phone: "+55 11 97777-2002",
			Email: "marina.costa@example.com",
			Address: entities.Address{
				Street: "Av. Brigadeiro", Number: "2500", Neighborhood: "Itaim Bibi",
				City: "São Paulo", State: "SP", CEP: "04536-100",
			},
			LTV: 5400, VisitCount: 12, LastVisit: &lastMonth,
			Status: entities.ClientStatusActive, Segment: entities.ClientSegmentVIP,
			CreatedAt: now,
			Vehicles: []entities.Vehicle{
				{ID: "vehicle-marina-cayenne", Model: "Porsche Cayenne", Plate: "MCV1A77", Color: "Branco", Year: 2024, Size: entities.VehicleSizeLarge},
			},
		},
		{
			ID:    "client-rafael",
			Name:  "Rafael Lima",
			Phone: "+55 11 96666-3003",
			Email: "rafael.lima@example.com",
			Address: entities.Address{
				Street: "Rua do Bosque", Number: "45", Neighborhood: "Barra Funda",
				City: "São Paulo", State: "SP", CEP: "01141-010",
			},
			LTV: 180, VisitCount: 1,
			Status: entities.ClientStatusActive, Segment: entities.ClientSegmentNew,
			CreatedAt: now,
			Vehicles: []entities.Vehicle{
				{ID: "vehicle-rafael-onix", Model: "Chevrolet Onix", Plate: "RLX5B09", Color: "Vermelho", Year: 2019, Size: entities.VehicleSizeSmall},
			},
		},
	}
}

func seedServices(now time.Time) []entities.Service {
	return []entities.Service{
		{
			ID: "svc-lavagem-detalhada", Name: "Lavagem Detalhada",
			Description: "Lavagem técnica com descontaminação",
			Prices: map[entities.VehicleSize]float64{
				entities.VehicleSizeSmall: 120, entities.VehicleSizeMedium: 150,
				entities.VehicleSizeLarge: 190, entities.VehicleSizeExtra: 240,
			},
			Points: 15, Active: true, CreatedAt: now,
		},
		{
			ID: "svc-polimento", Name: "Polimento Técnico",
			Description: "Correção de pintura em dois passos",
			Prices: map[entities.VehicleSize]float64{
				entities.VehicleSizeSmall: 600, entities.VehicleSizeMedium: 750,
				entities.VehicleSizeLarge: 950, entities.VehicleSizeExtra: 1200,
			},
			Points: 80, Active: true, CreatedAt: now,
		},
		{
			ID: "svc-vitrificacao", Name: "Vitrificação",
			Description: "Proteção cerâmica 3 anos",
			Prices: map[entities.VehicleSize]float64{
				entities.VehicleSizeSmall: 1400, entities.VehicleSizeMedium: 1700,
				entities.VehicleSizeLarge: 2100, entities.VehicleSizeExtra: 2600,
			},
			Points: 200, Active: true, CreatedAt: now,
		},
		{
			ID: "svc-higienizacao", Name: "Higienização Interna",
			Description: "Limpeza profunda de estofados e carpetes",
			Prices: map[entities.VehicleSize]float64{
				entities.VehicleSizeSmall: 280, entities.VehicleSizeMedium: 350,
				entities.VehicleSizeLarge: 450, entities.VehicleSizeExtra: 550,
			},
			Points: 40, Active: true, CreatedAt: now,
		},
	}
}

func seedEmployees(now time.Time) []entities.Employee {
	return []entities.Employee{
		{ID: "emp-carlos", Name: "Carlos Souza", Role: "tecnico", PINHash: mustHashPIN("1234"), SalaryType: entities.SalaryTypeCommission, Active: true, CreatedAt: now},
		{ID: "emp-ana", Name: "Ana Ribeiro", Role: "gerente", PINHash: mustHashPIN("4321"), SalaryType: entities.SalaryTypeFixed, Active: true, CreatedAt: now},
	}
}

func seedRewards(now time.Time) []entities.Reward {
	return []entities.Reward{
		{
			ID: "reward-lavagem-gratis", Name: "Lavagem Grátis",
			Description: "Uma lavagem detalhada por nossa conta",
			PointsCost:  300, MinTier: entities.TierBronze,
			Discount: entities.Discount{Type: entities.DiscountTypeService, Amount: 150, Description: "Lavagem Grátis"},
			Active:   true, CreatedAt: now,
		},
		{
			ID: "reward-desconto-10", Name: "10% de Desconto",
			Description: "10% de desconto em qualquer serviço",
			PointsCost:  500, MinTier: entities.TierPrata,
			Discount: entities.Discount{Type: entities.DiscountTypePercentage, Amount: 10, Description: "Voucher 10%"},
			Active:   true, CreatedAt: now,
		},
	}
}

func seedInventory(now time.Time) []entities.InventoryItem {
	return []entities.InventoryItem{
		{ID: "inv-shampoo", Name: "Shampoo Neutro 5L", Quantity: 8, MinStock: 2, Unit: "galão", CreatedAt: now},
		{ID: "inv-cera", Name: "Cera Carnaúba", Quantity: 5, MinStock: 1, Unit: "lata", CreatedAt: now},
		{ID: "inv-microfibra", Name: "Toalha Microfibra", Quantity: 40, MinStock: 10, Unit: "unidade", CreatedAt: now},
	}
}

// mustHashPIN bcrypt-hashes a demo PIN. Hashing only runs while seeding demo
// data, so a failure here is a programming error.
func mustHashPIN(pin string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return string(h)
}
