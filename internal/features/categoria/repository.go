package categoria

import (
	"context"

	"homestock/internal/common/models"
	"homestock/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CategoriaRepository interface {
	Create(ctx context.Context, categoria *models.Categoria) error
	FindAll(ctx context.Context) ([]models.Categoria, error)
	FindByNombre(ctx context.Context, nombre string) (*models.Categoria, error)
	DeleteByNombre(ctx context.Context, nombre string) error
}

type CategoriaRepositoryImpl struct {
	collection *mongo.Collection
}

func NewCategoriaRepository(db *database.MongodbDB) CategoriaRepository {
	return &CategoriaRepositoryImpl{
		collection: db.DB.Collection("categorias"),
	}
}

func (r *CategoriaRepositoryImpl) Create(ctx context.Context, categoria *models.Categoria) error {
	result, err := r.collection.InsertOne(ctx, categoria)
	if err != nil {
		return err
	}

	categoria.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *CategoriaRepositoryImpl) FindAll(ctx context.Context) ([]models.Categoria, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var categorias []models.Categoria
	if err := cursor.All(ctx, &categorias); err != nil {
		return nil, err
	}

	return categorias, nil
}

func (r *CategoriaRepositoryImpl) FindByNombre(ctx context.Context, nombre string) (*models.Categoria, error) {
	var categoria models.Categoria
	if err := r.collection.FindOne(ctx, bson.M{"nombre": nombre}).Decode(&categoria); err != nil {
		return nil, err
	}
	return &categoria, nil
}

func (r *CategoriaRepositoryImpl) DeleteByNombre(ctx context.Context, nombre string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"nombre": nombre})
	return err
}
