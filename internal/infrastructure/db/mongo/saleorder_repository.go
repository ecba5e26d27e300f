package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/popsolutions/odoo-api-server/internal/core/domain"
)

const (
	saleOrdersCollection   = "sale_order"
	paymentTermsCollection = "account_payment_term"
)

// SaleOrderRepository persists sale orders with their embedded lines.
type SaleOrderRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewSaleOrderRepository(db *mongo.Database) *SaleOrderRepository {
	return &SaleOrderRepository{db: db, coll: db.Collection(saleOrdersCollection)}
}

func (r *SaleOrderRepository) Search(ctx context.Context) ([]*domain.SaleOrder, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("search sale orders: %w", err)
	}
	defer cursor.Close(ctx)

	var orders []*domain.SaleOrder
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("decode sale orders: %w", err)
	}
	return orders, nil
}

func (r *SaleOrderRepository) Browse(ctx context.Context, id int) (*domain.SaleOrder, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var o domain.SaleOrder
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&o); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSaleOrderNotFound
		}
		return nil, fmt.Errorf("browse sale order: %w", err)
	}
	return &o, nil
}

func (r *SaleOrderRepository) Create(ctx context.Context, o *domain.SaleOrder) (*domain.SaleOrder, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextSequence(ctx, r.db, saleOrdersCollection)
	if err != nil {
		return nil, err
	}

	clone := *o
	clone.ID = id
	if _, err := r.coll.InsertOne(ctx, &clone); err != nil {
		return nil, fmt.Errorf("insert sale order: %w", err)
	}
	return &clone, nil
}

// PaymentTermRepository reads payment terms.
type PaymentTermRepository struct {
	coll *mongo.Collection
}

func NewPaymentTermRepository(db *mongo.Database) *PaymentTermRepository {
	return &PaymentTermRepository{coll: db.Collection(paymentTermsCollection)}
}

func (r *PaymentTermRepository) Search(ctx context.Context) ([]*domain.PaymentTerm, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("search payment terms: %w", err)
	}
	defer cursor.Close(ctx)

	var terms []*domain.PaymentTerm
	if err := cursor.All(ctx, &terms); err != nil {
		return nil, fmt.Errorf("decode payment terms: %w", err)
	}
	return terms, nil
}
