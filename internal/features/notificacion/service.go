package notificacion

import (
	"context"
	"fmt"
	"time"

	"homestock/internal/common/models"
	"homestock/internal/features/producto"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Products expiring within this window trigger an expiry notification.
const diasAvisoExpiracion = 5

type NotificacionService interface {
	NoLeidas(ctx context.Context) ([]models.Notificacion, error)
	MarcarComoLeida(ctx context.Context, id string) error
	MarcarTodasComoLeidas(ctx context.Context) error
	VerificarProductos(ctx context.Context) error
}

type NotificacionServiceImpl struct {
	Repo         NotificacionRepository
	ProductoRepo producto.ProductoRepository
	Hub          *Hub
	Logger       *zap.Logger
}

func NewNotificacionService(repo NotificacionRepository, productoRepo producto.ProductoRepository, hub *Hub, logger *zap.Logger) NotificacionService {
	return &NotificacionServiceImpl{
		Repo:         repo,
		ProductoRepo: productoRepo,
		Hub:          hub,
		Logger:       logger,
	}
}

func (s *NotificacionServiceImpl) NoLeidas(ctx context.Context) ([]models.Notificacion, error) {
	notificaciones, err := s.Repo.FindNoLeidas(ctx)
	if err != nil {
		return nil, err
	}
	if notificaciones == nil {
		notificaciones = []models.Notificacion{}
	}
	return notificaciones, nil
}

// MarcarComoLeida marks one notification as read. Unknown ids are ignored.
func (s *NotificacionServiceImpl) MarcarComoLeida(ctx context.Context, id string) error {
	notificacion, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil
		}
		return err
	}

	return s.Repo.MarcarLeida(ctx, notificacion.ID)
}

func (s *NotificacionServiceImpl) MarcarTodasComoLeidas(ctx context.Context) error {
	return s.Repo.MarcarTodasLeidas(ctx)
}

// VerificarProductos scans every product for low stock and upcoming expiry.
// A condition that already has an unread notification for the same product
// and type is skipped, so repeated sweeps do not pile up duplicates. Once
// the notification is read the condition may fire again.
func (s *NotificacionServiceImpl) VerificarProductos(ctx context.Context) error {
	productos, err := s.ProductoRepo.FindAll(ctx)
	if err != nil {
		return err
	}

	limite := time.Now().AddDate(0, 0, diasAvisoExpiracion)

	for i := range productos {
		p := &productos[i]

		if p.Cantidad < p.CantidadMinima {
			mensaje := fmt.Sprintf("El producto '%s' tiene cantidad baja (%d/%d)", p.Nombre, p.Cantidad, p.CantidadMinima)
			if err := s.crearSiNoExiste(ctx, p.ID.Hex(), models.TipoCantidadBaja, mensaje); err != nil {
				s.Logger.Warn("could not create low stock notification",
					zap.String("producto", p.Nombre), zap.Error(err))
			}
		}

		if p.Expiracion != nil && !p.Expiracion.After(limite) {
			mensaje := fmt.Sprintf("El producto '%s' expira pronto (%s)", p.Nombre, p.Expiracion.Format("02-01-2006"))
			if err := s.crearSiNoExiste(ctx, p.ID.Hex(), models.TipoExpiracionProxima, mensaje); err != nil {
				s.Logger.Warn("could not create expiry notification",
					zap.String("producto", p.Nombre), zap.Error(err))
			}
		}
	}

	return nil
}

func (s *NotificacionServiceImpl) crearSiNoExiste(ctx context.Context, productoID string, tipo string, mensaje string) error {
	existe, err := s.Repo.ExisteNoLeida(ctx, productoID, tipo)
	if err != nil {
		return err
	}
	if existe {
		return nil
	}

	notificacion := &models.Notificacion{
		ProductoID:    productoID,
		Mensaje:       mensaje,
		Tipo:          tipo,
		FechaCreacion: time.Now(),
		Leida:         false,
	}
	if err := s.Repo.Create(ctx, notificacion); err != nil {
		return err
	}

	if s.Hub != nil {
		s.Hub.Broadcast(notificacion)
	}
	return nil
}
