package grupo

import (
	"context"

	"homestock/internal/common/models"
	"homestock/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type GrupoRepository interface {
	Create(ctx context.Context, grupo *models.GrupoFamiliar) error
	FindAll(ctx context.Context) ([]models.GrupoFamiliar, error)
	FindByID(ctx context.Context, id string) (*models.GrupoFamiliar, error)
	FindByNombre(ctx context.Context, nombre string) (*models.GrupoFamiliar, error)
	Update(ctx context.Context, grupo *models.GrupoFamiliar) error
	Delete(ctx context.Context, id string) error
}

type GrupoRepositoryImpl struct {
	collection *mongo.Collection
}

func NewGrupoRepository(db *database.MongodbDB) GrupoRepository {
	return &GrupoRepositoryImpl{
		collection: db.DB.Collection("grupos_familiares"),
	}
}

func (r *GrupoRepositoryImpl) Create(ctx context.Context, grupo *models.GrupoFamiliar) error {
	if grupo.Miembros == nil {
		grupo.Miembros = []models.MiembroInfo{}
	}
	if grupo.Lugares == nil {
		grupo.Lugares = []models.Lugar{}
	}
	if grupo.ListasCompra == nil {
		grupo.ListasCompra = []models.ListaCompra{}
	}

	result, err := r.collection.InsertOne(ctx, grupo)
	if err != nil {
		return err
	}

	grupo.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *GrupoRepositoryImpl) FindAll(ctx context.Context) ([]models.GrupoFamiliar, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var grupos []models.GrupoFamiliar
	if err := cursor.All(ctx, &grupos); err != nil {
		return nil, err
	}

	return grupos, nil
}

func (r *GrupoRepositoryImpl) FindByID(ctx context.Context, id string) (*models.GrupoFamiliar, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	var grupo models.GrupoFamiliar
	if err := r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&grupo); err != nil {
		return nil, err
	}
	return &grupo, nil
}

func (r *GrupoRepositoryImpl) FindByNombre(ctx context.Context, nombre string) (*models.GrupoFamiliar, error) {
	var grupo models.GrupoFamiliar
	if err := r.collection.FindOne(ctx, bson.M{"nombre": nombre}).Decode(&grupo); err != nil {
		return nil, err
	}
	return &grupo, nil
}

func (r *GrupoRepositoryImpl) Update(ctx context.Context, grupo *models.GrupoFamiliar) error {
	update := bson.M{
		"$set": bson.M{
			"nombre":       grupo.Nombre,
			"descripcion":  grupo.Descripcion,
			"creadorId":    grupo.CreadorID,
			"miembros":     grupo.Miembros,
			"lugares":      grupo.Lugares,
			"listasCompra": grupo.ListasCompra,
		},
	}

	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": grupo.ID}, update)
	return err
}

func (r *GrupoRepositoryImpl) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}

	_, err = r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	return err
}
