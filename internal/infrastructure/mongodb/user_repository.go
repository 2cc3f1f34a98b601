package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/accounts-api/internal/domain/entity"
	"github.com/jhoicas/accounts-api/internal/domain/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ repository.UserRepository = (*UserRepo)(nil)

type userDoc struct {
	ID          string     `bson:"_id"`
	AccountID   string     `bson:"accountId"`
	FirstName   string     `bson:"firstName"`
	LastName    string     `bson:"lastName"`
	MiddleName  string     `bson:"middleName"`
	Nickname    string     `bson:"nickname"`
	Birthdate   *time.Time `bson:"birthdate"`
	FbAccount   string     `bson:"fbAccount"`
	ContactNo   string     `bson:"contactNo"`
	EmailAdd    string     `bson:"emailAdd"`
	Status      string     `bson:"status"`
	Position    string     `bson:"position"`
	Type        string     `bson:"type"`
	Group       string     `bson:"group"`
	YearBaptism int        `bson:"yearBaptism"`
	Position1FC string     `bson:"position1FC"`
	Eon         string     `bson:"eon"`
	CreatedAt   time.Time  `bson:"createdAt"`
	UpdatedAt   time.Time  `bson:"updatedAt"`
}

func toUserDoc(u *entity.User) userDoc {
	return userDoc(*u)
}

func (d userDoc) entity() *entity.User {
	u := entity.User(d)
	return &u
}

// UserRepo implementación del puerto UserRepository sobre la colección users.
type UserRepo struct {
	coll *mongo.Collection
}

// NewUserRepository construye el adaptador.
func NewUserRepository(db *mongo.Database) *UserRepo {
	return &UserRepo{coll: db.Collection(usersCollection)}
}

func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	if _, err := r.coll.InsertOne(ctx, toUserDoc(u)); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var doc userDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return doc.entity(), nil
}

func (r *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	var docs []userDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	list := make([]*entity.User, 0, len(docs))
	for _, d := range docs {
		list = append(list, d.entity())
	}
	return list, nil
}

func userSet(p entity.UserPatch) bson.M {
	set := bson.M{"updatedAt": p.UpdatedAt}
	fields := map[string]*string{
		"accountId":   p.AccountID,
		"firstName":   p.FirstName,
		"lastName":    p.LastName,
		"middleName":  p.MiddleName,
		"nickname":    p.Nickname,
		"fbAccount":   p.FbAccount,
		"contactNo":   p.ContactNo,
		"emailAdd":    p.EmailAdd,
		"status":      p.Status,
		"position":    p.Position,
		"type":        p.Type,
		"group":       p.Group,
		"position1FC": p.Position1FC,
		"eon":         p.Eon,
	}
	for k, v := range fields {
		if v != nil {
			set[k] = *v
		}
	}
	if p.Birthdate != nil {
		set["birthdate"] = *p.Birthdate
	}
	if p.YearBaptism != nil {
		set["yearBaptism"] = *p.YearBaptism
	}
	return set
}

func (r *UserRepo) Update(ctx context.Context, id string, p entity.UserPatch) (*entity.User, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc userDoc
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": userSet(p)}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return doc.entity(), nil
}

func (r *UserRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("delete user: %w", err)
	}
	return res.DeletedCount > 0, nil
}
