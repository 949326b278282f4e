package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/aussiebroadwan/myvehicles/internal/api/domain"
	"github.com/aussiebroadwan/myvehicles/internal/api/store"
)

type userDoc struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	Nome   string             `bson:"nome"`
	Email  string             `bson:"email"`
	Senha  string             `bson:"senha,omitempty"`
	Ativo  bool               `bson:"ativo"`
	Tipo   string             `bson:"tipo"`
	Avatar string             `bson:"avatar"`
}

func (d userDoc) toDomain() domain.User {
	return domain.User{
		ID:           d.ID.Hex(),
		Name:         d.Nome,
		Email:        d.Email,
		PasswordHash: d.Senha,
		Active:       d.Ativo,
		Role:         domain.Role(d.Tipo),
		Avatar:       d.Avatar,
	}
}

func userToDoc(u domain.User) userDoc {
	return userDoc{
		Nome:   u.Name,
		Email:  u.Email,
		Senha:  u.PasswordHash,
		Ativo:  u.Active,
		Tipo:   string(u.Role),
		Avatar: u.Avatar,
	}
}

var (
	withoutPassword = bson.D{{Key: "senha", Value: 0}}
	byName          = bson.D{{Key: "nome", Value: 1}}
)

type usersRepo struct {
	coll *mongo.Collection
}

func (r *usersRepo) find(ctx context.Context, filter any, opts *options.FindOptions) ([]domain.User, error) {
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	var docs []userDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, len(docs))
	for _, d := range docs {
		users = append(users, d.toDomain())
	}
	return users, nil
}

func (r *usersRepo) List(ctx context.Context) ([]domain.User, error) {
	return r.find(ctx, bson.D{}, options.Find().SetProjection(withoutPassword).SetSort(byName))
}

func (r *usersRepo) GetByID(ctx context.Context, id string) (domain.User, error) {
	oid, err := objectID(id)
	if err != nil {
		return domain.User{}, err
	}

	var doc userDoc
	err = r.coll.FindOne(ctx, byID(oid), options.FindOne().SetProjection(withoutPassword)).Decode(&doc)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return doc.toDomain(), nil
}

func (r *usersRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	var doc userDoc
	err := r.coll.FindOne(ctx, bson.D{{Key: "email", Value: bson.D{{Key: "$eq", Value: email}}}}).Decode(&doc)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return doc.toDomain(), nil
}

func (r *usersRepo) Search(ctx context.Context, filter string, limit int) ([]domain.User, error) {
	pattern := contains(filter)
	query := bson.D{{Key: "$or", Value: bson.A{
		bson.D{{Key: "nome", Value: pattern}},
		bson.D{{Key: "email", Value: pattern}},
	}}}

	opts := options.Find().
		SetProjection(withoutPassword).
		SetSort(byName).
		SetLimit(int64(limit))
	return r.find(ctx, query, opts)
}

func (r *usersRepo) Create(ctx context.Context, u domain.User) (string, error) {
	res, err := r.coll.InsertOne(ctx, userToDoc(u))
	if err != nil {
		return "", mapWriteError(err)
	}
	return insertedHex(res)
}

func (r *usersRepo) Update(ctx context.Context, id string, u domain.User) (domain.UpdateResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return domain.UpdateResult{}, err
	}

	res, err := r.coll.UpdateOne(ctx, byID(oid), bson.D{{Key: "$set", Value: userToDoc(u)}})
	if err != nil {
		return domain.UpdateResult{}, mapWriteError(err)
	}
	return domain.UpdateResult{Matched: res.MatchedCount, Modified: res.ModifiedCount}, nil
}

func (r *usersRepo) SetPasswordHash(ctx context.Context, id, hash string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.UpdateOne(ctx, byID(oid), bson.D{{Key: "$set", Value: bson.D{{Key: "senha", Value: hash}}}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *usersRepo) Delete(ctx context.Context, id string) (int64, error) {
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
