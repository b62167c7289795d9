package lugar

import (
	"context"

	"homestock/internal/common/models"
	"homestock/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type LugarRepository interface {
	Create(ctx context.Context, lugar *models.Lugar) error
	FindAll(ctx context.Context) ([]models.Lugar, error)
	FindByID(ctx context.Context, id string) (*models.Lugar, error)
	FindByGrupoFamiliarID(ctx context.Context, grupoFamiliarID string) ([]models.Lugar, error)
	Update(ctx context.Context, lugar *models.Lugar) error
	Delete(ctx context.Context, id string) error
}

type LugarRepositoryImpl struct {
	collection *mongo.Collection
}

func NewLugarRepository(db *database.MongodbDB) LugarRepository {
	return &LugarRepositoryImpl{
		collection: db.DB.Collection("lugares"),
	}
}

func (r *LugarRepositoryImpl) Create(ctx context.Context, lugar *models.Lugar) error {
	if lugar.Productos == nil {
		lugar.Productos = []models.Producto{}
	}

	result, err := r.collection.InsertOne(ctx, lugar)
	if err != nil {
		return err
	}

	lugar.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *LugarRepositoryImpl) FindAll(ctx context.Context) ([]models.Lugar, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var lugares []models.Lugar
	if err := cursor.All(ctx, &lugares); err != nil {
		return nil, err
	}

	return lugares, nil
}

func (r *LugarRepositoryImpl) FindByID(ctx context.Context, id string) (*models.Lugar, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	var lugar models.Lugar
	if err := r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&lugar); err != nil {
		return nil, err
	}
	return &lugar, nil
}

func (r *LugarRepositoryImpl) FindByGrupoFamiliarID(ctx context.Context, grupoFamiliarID string) ([]models.Lugar, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"grupoFamiliarId": grupoFamiliarID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var lugares []models.Lugar
	if err := cursor.All(ctx, &lugares); err != nil {
		return nil, err
	}

	return lugares, nil
}

func (r *LugarRepositoryImpl) Update(ctx context.Context, lugar *models.Lugar) error {
	update := bson.M{
		"$set": bson.M{
			"nombre":          lugar.Nombre,
			"descripcion":     lugar.Descripcion,
			"grupoFamiliarId": lugar.GrupoFamiliarID,
			"productos":       lugar.Productos,
		},
	}

	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": lugar.ID}, update)
	return err
}

func (r *LugarRepositoryImpl) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}

	_, err = r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	return err
}
