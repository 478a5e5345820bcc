package bitacora

import (
	"citas-service/internal/app/contracts"
	"citas-service/internal/app/models"
	"citas-service/internal/pkg/exceptions"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BitacoraMongoRepository struct {
	Collection *mongo.Collection
}

func NewBitacoraMongoRepository(db *mongo.Client, dbName, collectionName string) contracts.BitacoraRepository {
	return &BitacoraMongoRepository{
		Collection: db.Database(dbName).Collection(collectionName),
	}
}

func (repo *BitacoraMongoRepository) Insert(ctx context.Context, registro *models.RegistroBitacora) error {
	_, err := repo.Collection.InsertOne(ctx, registro)
	if err != nil {
		return exceptions.ErrMongoInsert(err)
	}
	return nil
}

func (repo *BitacoraMongoRepository) FindRecent(ctx context.Context, limit int64) ([]models.RegistroBitacora, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "creado_en", Value: -1}}).
		SetLimit(limit)

	cursor, err := repo.Collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, exceptions.ErrMongoFind(err)
	}

	registros := make([]models.RegistroBitacora, 0)
	if err := cursor.All(ctx, &registros); err != nil {
		return nil, exceptions.ErrMongoFind(err)
	}
	return registros, nil
}
