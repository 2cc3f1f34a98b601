package mongodb

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/jhoicas/accounts-api/internal/domain/entity"
	"github.com/jhoicas/accounts-api/internal/domain/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

type accountDoc struct {
	ID         string    `bson:"_id"`
	Username   string    `bson:"username"`
	Email      string    `bson:"email"`
	Password   string    `bson:"password"`
	AccessType string    `bson:"accessType"`
	SignupAt   string    `bson:"signupAt"`
	CreatedAt  time.Time `bson:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt"`
}

func toAccountDoc(a *entity.Account) accountDoc {
	return accountDoc{
		ID:         a.ID,
		Username:   a.Username,
		Email:      a.Email,
		Password:   a.PasswordHash,
		AccessType: a.AccessType,
		SignupAt:   a.SignupAt,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

func (d accountDoc) entity() *entity.Account {
	return &entity.Account{
		ID:           d.ID,
		Username:     d.Username,
		Email:        d.Email,
		PasswordHash: d.Password,
		AccessType:   d.AccessType,
		SignupAt:     d.SignupAt,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// AccountRepo implementación del puerto AccountRepository sobre la colección accounts.
type AccountRepo struct {
	coll *mongo.Collection
}

// NewAccountRepository construye el adaptador.
func NewAccountRepository(db *mongo.Database) *AccountRepo {
	return &AccountRepo{coll: db.Collection(accountsCollection)}
}

func (r *AccountRepo) Create(ctx context.Context, a *entity.Account) error {
	if _, err := r.coll.InsertOne(ctx, toAccountDoc(a)); err != nil {
		if dup := duplicateKeyError(err); dup != nil {
			return dup
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

func (r *AccountRepo) GetByID(ctx context.Context, id string) (*entity.Account, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *AccountRepo) GetByUsername(ctx context.Context, username string) (*entity.Account, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *AccountRepo) GetByEmail(ctx context.Context, email string) (*entity.Account, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *AccountRepo) findOne(ctx context.Context, filter bson.M) (*entity.Account, error) {
	var doc accountDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	return doc.entity(), nil
}

// accountQuery traduce el filtro de dominio a un documento de consulta.
func accountQuery(f entity.AccountFilter) bson.M {
	q := bson.M{}
	if f.Search != "" {
		q["username"] = bson.M{"$regex": regexp.QuoteMeta(f.Search), "$options": "i"}
	}
	if f.AccessType != "" {
		q["accessType"] = f.AccessType
	}
	if f.SignupAt != "" {
		q["signupAt"] = f.SignupAt
	}
	created := bson.M{}
	if f.CreatedFrom != nil {
		created["$gte"] = *f.CreatedFrom
	}
	if f.CreatedTo != nil {
		created["$lt"] = *f.CreatedTo
	}
	if len(created) > 0 {
		q["createdAt"] = created
	}
	return q
}

func (r *AccountRepo) List(ctx context.Context, f entity.AccountFilter) ([]*entity.Account, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: 1}})
	cur, err := r.coll.Find(ctx, accountQuery(f), opts)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	var docs []accountDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode accounts: %w", err)
	}
	list := make([]*entity.Account, 0, len(docs))
	for _, d := range docs {
		list = append(list, d.entity())
	}
	return list, nil
}

func accountSet(p entity.AccountPatch) bson.M {
	set := bson.M{"updatedAt": p.UpdatedAt}
	if p.Username != nil {
		set["username"] = *p.Username
	}
	if p.Email != nil {
		set["email"] = *p.Email
	}
	if p.AccessType != nil {
		set["accessType"] = *p.AccessType
	}
	if p.SignupAt != nil {
		set["signupAt"] = *p.SignupAt
	}
	if p.PasswordHash != nil {
		set["password"] = *p.PasswordHash
	}
	return set
}

func (r *AccountRepo) Update(ctx context.Context, id string, p entity.AccountPatch) (*entity.Account, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc accountDoc
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": accountSet(p)}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		if dup := duplicateKeyError(err); dup != nil {
			return nil, dup
		}
		return nil, fmt.Errorf("update account: %w", err)
	}
	return doc.entity(), nil
}

func (r *AccountRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("delete account: %w", err)
	}
	return res.DeletedCount > 0, nil
}
