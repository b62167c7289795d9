package producto

import (
	"context"

	"homestock/internal/common/models"
	"homestock/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ProductoRepository interface {
	Create(ctx context.Context, producto *models.Producto) error
	FindAll(ctx context.Context) ([]models.Producto, error)
	FindByID(ctx context.Context, id string) (*models.Producto, error)
	FindByNombre(ctx context.Context, nombre string) (*models.Producto, error)
	Update(ctx context.Context, producto *models.Producto) error
	Delete(ctx context.Context, id string) error
}

type ProductoRepositoryImpl struct {
	collection *mongo.Collection
}

func NewProductoRepository(db *database.MongodbDB) ProductoRepository {
	return &ProductoRepositoryImpl{
		collection: db.DB.Collection("productos"),
	}
}

func (r *ProductoRepositoryImpl) Create(ctx context.Context, producto *models.Producto) error {
	result, err := r.collection.InsertOne(ctx, producto)
	if err != nil {
		return err
	}

	producto.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *ProductoRepositoryImpl) FindAll(ctx context.Context) ([]models.Producto, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var productos []models.Producto
	if err := cursor.All(ctx, &productos); err != nil {
		return nil, err
	}

	return productos, nil
}

func (r *ProductoRepositoryImpl) FindByID(ctx context.Context, id string) (*models.Producto, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	var producto models.Producto
	if err := r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&producto); err != nil {
		return nil, err
	}
	return &producto, nil
}

func (r *ProductoRepositoryImpl) FindByNombre(ctx context.Context, nombre string) (*models.Producto, error) {
	var producto models.Producto
	if err := r.collection.FindOne(ctx, bson.M{"nombre": nombre}).Decode(&producto); err != nil {
		return nil, err
	}
	return &producto, nil
}

func (r *ProductoRepositoryImpl) Update(ctx context.Context, producto *models.Producto) error {
	update := bson.M{
		"$set": bson.M{
			"nombre":         producto.Nombre,
			"descripcion":    producto.Descripcion,
			"cantidad":       producto.Cantidad,
			"cantidadMinima": producto.CantidadMinima,
			"expiracion":     producto.Expiracion,
			"categoria":      producto.Categoria,
		},
	}

	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": producto.ID}, update)
	return err
}

func (r *ProductoRepositoryImpl) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}

	_, err = r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	return err
}
