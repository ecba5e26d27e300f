package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/popsolutions/odoo-api-server/internal/core/domain"
	"github.com/popsolutions/odoo-api-server/internal/core/ports"
)

const partnersCollection = "res_partner"

// PartnerRepository persists contact records in the res_partner collection.
type PartnerRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewPartnerRepository(db *mongo.Database) *PartnerRepository {
	return &PartnerRepository{db: db, coll: db.Collection(partnersCollection)}
}

func (r *PartnerRepository) Search(ctx context.Context, filter ports.PartnerFilter) ([]*domain.Partner, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.TeamID != 0 {
		query["team_id"] = filter.TeamID
	}

	cursor, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search partners: %w", err)
	}
	defer cursor.Close(ctx)

	var partners []*domain.Partner
	if err := cursor.All(ctx, &partners); err != nil {
		return nil, fmt.Errorf("decode partners: %w", err)
	}
	return partners, nil
}

func (r *PartnerRepository) Browse(ctx context.Context, id int) (*domain.Partner, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.Partner
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPartnerNotFound
		}
		return nil, fmt.Errorf("browse partner: %w", err)
	}
	return &p, nil
}

func (r *PartnerRepository) Create(ctx context.Context, p *domain.Partner) (*domain.Partner, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextSequence(ctx, r.db, partnersCollection)
	if err != nil {
		return nil, err
	}

	clone := *p
	clone.ID = id
	if _, err := r.coll.InsertOne(ctx, &clone); err != nil {
		return nil, fmt.Errorf("insert partner: %w", err)
	}
	return &clone, nil
}

// DistinctCities returns the distinct non-empty city names of partners in the
// given country and state.
func (r *PartnerRepository) DistinctCities(ctx context.Context, countryID, stateID int) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	values, err := r.coll.Distinct(ctx, "city", bson.M{
		"country.id": countryID,
		"state.id":   stateID,
		"city":       bson.M{"$nin": bson.A{nil, ""}},
	})
	if err != nil {
		return nil, fmt.Errorf("distinct cities: %w", err)
	}

	cities := make([]string, 0, len(values))
	for _, v := range values {
		if city, ok := v.(string); ok {
			cities = append(cities, city)
		}
	}
	return cities, nil
}

// EnsureIndexes creates the indexes used by partner lookups.
func (r *PartnerRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}},
		{Keys: bson.D{{Key: "team_id", Value: 1}}},
		{Keys: bson.D{{Key: "country.id", Value: 1}, {Key: "state.id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
