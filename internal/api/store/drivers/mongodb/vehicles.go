package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/aussiebroadwan/myvehicles/internal/api/domain"
)

type vehicleDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Marca       string             `bson:"marca"`
	Modelo      string             `bson:"modelo"`
	Cor         string             `bson:"cor"`
	Placa       string             `bson:"placa"`
	Renavam     string             `bson:"renavam"`
	RazaoSocial string             `bson:"razao_social,omitempty"`
}

func (d vehicleDoc) toDomain() domain.Vehicle {
	return domain.Vehicle{
		ID:           d.ID.Hex(),
		Brand:        d.Marca,
		Model:        d.Modelo,
		Color:        d.Cor,
		Plate:        d.Placa,
		Renavam:      d.Renavam,
		BusinessName: d.RazaoSocial,
	}
}

func vehicleToDoc(v domain.Vehicle) vehicleDoc {
	return vehicleDoc{
		Marca:       v.Brand,
		Modelo:      v.Model,
		Cor:         v.Color,
		Placa:       v.Plate,
		Renavam:     v.Renavam,
		RazaoSocial: v.BusinessName,
	}
}

var byBrandModel = bson.D{{Key: "marca", Value: 1}, {Key: "modelo", Value: 1}}

type vehiclesRepo struct {
	coll *mongo.Collection
}

func (r *vehiclesRepo) find(ctx context.Context, filter any) ([]domain.Vehicle, error) {
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(byBrandModel))
	if err != nil {
		return nil, err
	}

	var docs []vehicleDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	vehicles := make([]domain.Vehicle, 0, len(docs))
	for _, d := range docs {
		vehicles = append(vehicles, d.toDomain())
	}
	return vehicles, nil
}

func (r *vehiclesRepo) List(ctx context.Context) ([]domain.Vehicle, error) {
	return r.find(ctx, bson.D{})
}

func (r *vehiclesRepo) GetByID(ctx context.Context, id string) (domain.Vehicle, error) {
	oid, err := objectID(id)
	if err != nil {
		return domain.Vehicle{}, err
	}

	var doc vehicleDoc
	if err := r.coll.FindOne(ctx, byID(oid)).Decode(&doc); err != nil {
		return domain.Vehicle{}, mapNotFound(err)
	}
	return doc.toDomain(), nil
}

func (r *vehiclesRepo) SearchByBusinessName(ctx context.Context, filter string) ([]domain.Vehicle, error) {
	return r.find(ctx, bson.D{{Key: "razao_social", Value: contains(filter)}})
}

func (r *vehiclesRepo) Create(ctx context.Context, v domain.Vehicle) (string, error) {
	res, err := r.coll.InsertOne(ctx, vehicleToDoc(v))
	if err != nil {
		return "", mapWriteError(err)
	}
	return insertedHex(res)
}

func (r *vehiclesRepo) Update(ctx context.Context, id string, v domain.Vehicle) (domain.UpdateResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return domain.UpdateResult{}, err
	}

	res, err := r.coll.UpdateOne(ctx, byID(oid), bson.D{{Key: "$set", Value: vehicleToDoc(v)}})
	if err != nil {
		return domain.UpdateResult{}, mapWriteError(err)
	}
	return domain.UpdateResult{Matched: res.MatchedCount, Modified: res.ModifiedCount}, nil
}

func (r *vehiclesRepo) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := objectID(id)
	if err != nil {
		return 0, err
	}

	res, err := r.coll.DeleteOne(ctx, byID(oid))
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
