package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/popsolutions/odoo-api-server/internal/core/domain"
)

const (
	validatorsCollection = "auth_validators"
	paramsCollection     = "config_parameters"
)

// ValidatorRepository reads named validator configurations. Records are
// administered out of band; the name doubles as the document id, which gives
// the uniqueness the registry contract requires.
type ValidatorRepository struct {
	coll *mongo.Collection
}

func NewValidatorRepository(db *mongo.Database) *ValidatorRepository {
	return &ValidatorRepository{coll: db.Collection(validatorsCollection)}
}

func (r *ValidatorRepository) FindByName(ctx context.Context, name string) (*domain.Validator, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var v domain.Validator
	if err := r.coll.FindOne(ctx, bson.M{"_id": name}).Decode(&v); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrValidatorNotFound
		}
		return nil, fmt.Errorf("find validator: %w", err)
	}
	return &v, nil
}

// ParamRepository is the configuration-parameter store, the equivalent of
// ir.config_parameter: one {_id: key, value} document per parameter.
type ParamRepository struct {
	coll *mongo.Collection
}

func NewParamRepository(db *mongo.Database) *ParamRepository {
	return &ParamRepository{coll: db.Collection(paramsCollection)}
}

func (r *ParamRepository) GetParam(ctx context.Context, key string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc struct {
		Value string `bson:"value"`
	}
	if err := r.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get param %s: %w", key, err)
	}
	return doc.Value, true, nil
}
