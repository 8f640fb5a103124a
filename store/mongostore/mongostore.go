// Package mongostore implements store.Store on MongoDB. Each user is a
// single document in the users collection with colleges and their questions
// embedded, so every mutation is one atomic document update.
package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/andrewpaige1/essaydraft-api/models"
	"github.com/andrewpaige1/essaydraft-api/store"
)

const usersCollection = "users"

type Store struct {
	client *mongo.Client
	users  *mongo.Collection
}

var _ store.Store = (*Store)(nil)

// Open connects to uri, verifies the connection and ensures the unique email
// index exists.
func Open(ctx context.Context, uri, database string) (*Store, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongodb ping failed: %w", err)
	}

	s := &Store{
		client: client,
		users:  client.Database(database).Collection(usersCollection),
	}
	if err := s.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return s, nil
}

func (s *Store) ensureIndexes(ctx context.Context) error {
	_, err := s.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_unique"),
	})
	if err != nil {
		return fmt.Errorf("failed to create email index: %w", err)
	}
	return nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Store) CreateUser(ctx context.Context, u *models.User) error {
	if u.Colleges == nil {
		u.Colleges = []models.College{}
	}
	if _, err := s.users.InsertOne(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return store.ErrConflict
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (s *Store) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	opts := options.FindOne().SetProjection(bson.M{"colleges": 0})
	if err := s.users.FindOne(ctx, bson.M{"email": email}, opts).Decode(&user); err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *Store) UserByID(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	opts := options.FindOne().SetProjection(bson.M{"colleges": 0})
	if err := s.users.FindOne(ctx, bson.M{"_id": userID}, opts).Decode(&user); err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *Store) UpdateDetail(ctx context.Context, userID string, field models.DetailField, value string) error {
	if _, ok := models.ParseDetailField(string(field)); !ok {
		return fmt.Errorf("unknown detail field %q", field)
	}
	return s.updateUser(ctx, userID, bson.M{"$set": bson.M{
		field.DocumentPath(): value,
		"updatedAt":          time.Now().UTC(),
	}})
}

func (s *Store) ReplaceDetails(ctx context.Context, userID string, details models.Details) error {
	return s.updateUser(ctx, userID, bson.M{"$set": bson.M{
		"details":   details,
		"updatedAt": time.Now().UTC(),
	}})
}

func (s *Store) Colleges(ctx context.Context, userID string) ([]models.College, error) {
	var user models.User
	opts := options.FindOne().SetProjection(bson.M{"colleges": 1})
	if err := s.users.FindOne(ctx, bson.M{"_id": userID}, opts).Decode(&user); err != nil {
		return nil, translate(err)
	}
	return normalize(user.Colleges), nil
}

func (s *Store) College(ctx context.Context, userID, collegeID string) (*models.College, error) {
	var user models.User
	opts := options.FindOne().SetProjection(onlyCollege(collegeID))
	filter := bson.M{"_id": userID, "colleges._id": collegeID}
	if err := s.users.FindOne(ctx, filter, opts).Decode(&user); err != nil {
		return nil, translate(err)
	}
	return firstCollege(user)
}

func (s *Store) AddCollege(ctx context.Context, userID string, c models.College) ([]models.College, error) {
	if c.ApplicationStatus == nil {
		c.ApplicationStatus = map[string]any{}
	}
	if c.Questions == nil {
		c.Questions = []models.Question{}
	}

	user, err := s.findAndUpdate(ctx,
		bson.M{"_id": userID},
		bson.M{
			"$push": bson.M{"colleges": c},
			"$set":  bson.M{"updatedAt": time.Now().UTC()},
		},
		bson.M{"colleges": 1},
	)
	if err != nil {
		return nil, err
	}
	return normalize(user.Colleges), nil
}

func (s *Store) DeleteCollege(ctx context.Context, userID, collegeID string) ([]models.College, error) {
	user, err := s.findAndUpdate(ctx,
		bson.M{"_id": userID, "colleges._id": collegeID},
		bson.M{
			"$pull": bson.M{"colleges": bson.M{"_id": collegeID}},
			"$set":  bson.M{"updatedAt": time.Now().UTC()},
		},
		bson.M{"colleges": 1},
	)
	if err != nil {
		return nil, err
	}
	return normalize(user.Colleges), nil
}

func (s *Store) AddQuestion(ctx context.Context, userID, collegeID string, q models.Question) ([]models.Question, error) {
	user, err := s.findAndUpdate(ctx,
		bson.M{"_id": userID, "colleges._id": collegeID},
		bson.M{
			"$push": bson.M{"colleges.$.questions": q},
			"$set":  bson.M{"updatedAt": time.Now().UTC()},
		},
		onlyCollege(collegeID),
	)
	if err != nil {
		return nil, err
	}
	college, err := firstCollege(*user)
	if err != nil {
		return nil, err
	}
	return college.Questions, nil
}

func (s *Store) UpdateAnswer(ctx context.Context, userID, collegeID, questionID, answer string) ([]models.Question, error) {
	filter := bson.M{
		"_id": userID,
		"colleges": bson.M{"$elemMatch": bson.M{
			"_id":           collegeID,
			"questions._id": questionID,
		}},
	}
	update := bson.M{"$set": bson.M{
		"colleges.$[c].questions.$[q].answer": answer,
		"updatedAt":                           time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(onlyCollege(collegeID)).
		SetArrayFilters([]any{
			bson.M{"c._id": collegeID},
			bson.M{"q._id": questionID},
		})

	var user models.User
	if err := s.users.FindOneAndUpdate(ctx, filter, update, opts).Decode(&user); err != nil {
		return nil, translate(err)
	}
	college, err := firstCollege(user)
	if err != nil {
		return nil, err
	}
	return college.Questions, nil
}

func (s *Store) updateUser(ctx context.Context, userID string, update bson.M) error {
	res, err := s.users.UpdateOne(ctx, bson.M{"_id": userID}, update)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) findAndUpdate(ctx context.Context, filter, update, projection bson.M) (*models.User, error) {
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(projection)

	var user models.User
	if err := s.users.FindOneAndUpdate(ctx, filter, update, opts).Decode(&user); err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func onlyCollege(collegeID string) bson.M {
	return bson.M{"colleges": bson.M{"$elemMatch": bson.M{"_id": collegeID}}}
}

func firstCollege(user models.User) (*models.College, error) {
	colleges := normalize(user.Colleges)
	if len(colleges) == 0 {
		return nil, store.ErrNotFound
	}
	return &colleges[0], nil
}

func normalize(colleges []models.College) []models.College {
	if colleges == nil {
		return []models.College{}
	}
	for i := range colleges {
		if colleges[i].Questions == nil {
			colleges[i].Questions = []models.Question{}
		}
		if colleges[i].ApplicationStatus == nil {
			colleges[i].ApplicationStatus = map[string]any{}
		}
	}
	return colleges
}

func translate(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return store.ErrNotFound
	}
	return fmt.Errorf("db error: %w", err)
}
