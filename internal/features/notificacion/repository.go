package notificacion

import (
	"context"

	"homestock/internal/common/models"
	"homestock/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type NotificacionRepository interface {
	Create(ctx context.Context, notificacion *models.Notificacion) error
	FindNoLeidas(ctx context.Context) ([]models.Notificacion, error)
	FindByID(ctx context.Context, id string) (*models.Notificacion, error)
	ExisteNoLeida(ctx context.Context, productoID string, tipo string) (bool, error)
	MarcarLeida(ctx context.Context, id primitive.ObjectID) error
	MarcarTodasLeidas(ctx context.Context) error
}

type NotificacionRepositoryImpl struct {
	collection *mongo.Collection
}

func NewNotificacionRepository(db *database.MongodbDB) NotificacionRepository {
	return &NotificacionRepositoryImpl{
		collection: db.DB.Collection("notificaciones"),
	}
}

func (r *NotificacionRepositoryImpl) Create(ctx context.Context, notificacion *models.Notificacion) error {
	result, err := r.collection.InsertOne(ctx, notificacion)
	if err != nil {
		return err
	}

	notificacion.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *NotificacionRepositoryImpl) FindNoLeidas(ctx context.Context) ([]models.Notificacion, error) {
	opts := options.Find().SetSort(bson.M{"fechaCreacion": -1})
	cursor, err := r.collection.Find(ctx, bson.M{"leida": false}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var notificaciones []models.Notificacion
	if err := cursor.All(ctx, &notificaciones); err != nil {
		return nil, err
	}

	return notificaciones, nil
}

func (r *NotificacionRepositoryImpl) FindByID(ctx context.Context, id string) (*models.Notificacion, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	var notificacion models.Notificacion
	if err := r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&notificacion); err != nil {
		return nil, err
	}
	return &notificacion, nil
}

func (r *NotificacionRepositoryImpl) ExisteNoLeida(ctx context.Context, productoID string, tipo string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{
		"productoId": productoID,
		"tipo":       tipo,
		"leida":      false,
	})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *NotificacionRepositoryImpl) MarcarLeida(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"leida": true}})
	return err
}

func (r *NotificacionRepositoryImpl) MarcarTodasLeidas(ctx context.Context) error {
	_, err := r.collection.UpdateMany(ctx, bson.M{"leida": false}, bson.M{"$set": bson.M{"leida": true}})
	return err
}
