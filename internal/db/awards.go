package awards

import (
	"context"
	"errors"
	"fmt"
	"time"

	models "github.com/glkeru/hamawards/internal/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AwardsDB struct {
	mgo  *mongo.Client
	coll *mongo.Collection
}

func NewAwardsDB(mng string, database string) (*AwardsDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if mng == "" {
		return nil, fmt.Errorf("env AWARDS_MONGO is not set")
	}

	options := options.Client().ApplyURI("mongodb://" + mng)
	client, err := mongo.Connect(ctx, options)
	if err != nil {
		return nil, err
	}
	err = client.Ping(ctx, nil)
	if err != nil {
		return nil, err
	}
	db := client.Database(database)
	coll := db.Collection("awards")

	return &AwardsDB{client, coll}, nil
}

func (a *AwardsDB) Close(ctx context.Context) error {
	return a.mgo.Disconnect(ctx)
}

func (a *AwardsDB) GetAward(ctx context.Context, awardID uuid.UUID) (award models.Award, err error) {
	filter := bson.M{"id": awardID}
	err = a.coll.FindOne(ctx, filter).Decode(&award)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Award{}, fmt.Errorf("award %s: %w", awardID, models.ErrNotFound)
		}
		return models.Award{}, err
	}
	return award, nil
}

// Одобренные награды - для проверки связи
func (a *AwardsDB) ListApprovedAwards(ctx context.Context) ([]models.Award, error) {
	return a.find(ctx, bson.M{"status": models.StatusApproved})
}

func (a *AwardsDB) ListAllAwards(ctx context.Context) ([]models.Award, error) {
	return a.find(ctx, bson.M{})
}

func (a *AwardsDB) find(ctx context.Context, filter bson.M) ([]models.Award, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	result, err := a.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer result.Close(ctx)

	awards := []models.Award{}
	for result.Next(ctx) {
		var award models.Award
		err := result.Decode(&award)
		if err != nil {
			return nil, err
		}
		awards = append(awards, award)
	}
	return awards, result.Err()
}

// Создание/обновление целиком, ID задает сервис
func (a *AwardsDB) SaveAward(ctx context.Context, award models.Award) error {
	if award.ID == uuid.Nil {
		return fmt.Errorf("award id is empty")
	}
	filter := bson.M{"id": award.ID}
	_, err := a.coll.ReplaceOne(ctx, filter, award, options.Replace().SetUpsert(true))
	return err
}

// Удалить можно только свою награду в статусе draft или returned
func (a *AwardsDB) DeleteAward(ctx context.Context, awardID uuid.UUID, creatorID string) error {
	filter := bson.M{
		"id":         awardID,
		"creator_id": creatorID,
		"status":     bson.M{"$in": []string{models.StatusDraft, models.StatusReturned}},
	}
	res, err := a.coll.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("award %s: %w", awardID, models.ErrNotFound)
	}
	return nil
}
