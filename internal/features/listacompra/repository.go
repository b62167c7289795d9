package listacompra

import (
	"context"

	"homestock/internal/common/models"
	"homestock/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ListaCompraRepository interface {
	Create(ctx context.Context, lista *models.ListaCompra) error
	FindByID(ctx context.Context, id string) (*models.ListaCompra, error)
	FindByGrupoFamiliarID(ctx context.Context, grupoFamiliarID string) ([]models.ListaCompra, error)
	Update(ctx context.Context, lista *models.ListaCompra) error
	Delete(ctx context.Context, id string) error
}

type ListaCompraRepositoryImpl struct {
	collection *mongo.Collection
}

func NewListaCompraRepository(db *database.MongodbDB) ListaCompraRepository {
	return &ListaCompraRepositoryImpl{
		collection: db.DB.Collection("listas_compra"),
	}
}

func (r *ListaCompraRepositoryImpl) Create(ctx context.Context, lista *models.ListaCompra) error {
	if lista.ProductosLista == nil {
		lista.ProductosLista = []models.ProductoLista{}
	}

	result, err := r.collection.InsertOne(ctx, lista)
	if err != nil {
		return err
	}

	lista.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *ListaCompraRepositoryImpl) FindByID(ctx context.Context, id string) (*models.ListaCompra, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	var lista models.ListaCompra
	if err := r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&lista); err != nil {
		return nil, err
	}
	return &lista, nil
}

func (r *ListaCompraRepositoryImpl) FindByGrupoFamiliarID(ctx context.Context, grupoFamiliarID string) ([]models.ListaCompra, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"grupoFamiliarId": grupoFamiliarID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var listas []models.ListaCompra
	if err := cursor.All(ctx, &listas); err != nil {
		return nil, err
	}

	return listas, nil
}

func (r *ListaCompraRepositoryImpl) Update(ctx context.Context, lista *models.ListaCompra) error {
	update := bson.M{
		"$set": bson.M{
			"nombre":         lista.Nombre,
			"descripcion":    lista.Descripcion,
			"productosLista": lista.ProductosLista,
		},
	}

	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": lista.ID}, update)
	return err
}

func (r *ListaCompraRepositoryImpl) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}

	_, err = r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	return err
}
