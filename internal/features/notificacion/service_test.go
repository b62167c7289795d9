package notificacion

import (
	"context"
	"testing"
	"time"

	"homestock/internal/common/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type fakeNotificacionRepo struct {
	notificaciones map[string]models.Notificacion
}

func newFakeNotificacionRepo() *fakeNotificacionRepo {
	return &fakeNotificacionRepo{notificaciones: make(map[string]models.Notificacion)}
}

func (f *fakeNotificacionRepo) Create(ctx context.Context, n *models.Notificacion) error {
	if n.ID.IsZero() {
		n.ID = primitive.NewObjectID()
	}
	f.notificaciones[n.ID.Hex()] = *n
	return nil
}

func (f *fakeNotificacionRepo) FindNoLeidas(ctx context.Context) ([]models.Notificacion, error) {
	var out []models.Notificacion
	for _, n := range f.notificaciones {
		if !n.Leida {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNotificacionRepo) FindByID(ctx context.Context, id string) (*models.Notificacion, error) {
	n, ok := f.notificaciones[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &n, nil
}

func (f *fakeNotificacionRepo) ExisteNoLeida(ctx context.Context, productoID string, tipo string) (bool, error) {
	for _, n := range f.notificaciones {
		if n.ProductoID == productoID && n.Tipo == tipo && !n.Leida {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeNotificacionRepo) MarcarLeida(ctx context.Context, id primitive.ObjectID) error {
	n, ok := f.notificaciones[id.Hex()]
	if !ok {
		return mongo.ErrNoDocuments
	}
	n.Leida = true
	f.notificaciones[id.Hex()] = n
	return nil
}

func (f *fakeNotificacionRepo) MarcarTodasLeidas(ctx context.Context) error {
	for id, n := range f.notificaciones {
		n.Leida = true
		f.notificaciones[id] = n
	}
	return nil
}

type fakeProductoRepo struct {
	productos []models.Producto
}

func (f *fakeProductoRepo) Create(ctx context.Context, p *models.Producto) error { return nil }
func (f *fakeProductoRepo) FindAll(ctx context.Context) ([]models.Producto, error) {
	return f.productos, nil
}
func (f *fakeProductoRepo) FindByID(ctx context.Context, id string) (*models.Producto, error) {
	return nil, mongo.ErrNoDocuments
}
func (f *fakeProductoRepo) FindByNombre(ctx context.Context, nombre string) (*models.Producto, error) {
	return nil, mongo.ErrNoDocuments
}
func (f *fakeProductoRepo) Update(ctx context.Context, p *models.Producto) error { return nil }
func (f *fakeProductoRepo) Delete(ctx context.Context, id string) error          { return nil }

func newTestNotificacionService(productos ...models.Producto) (*NotificacionServiceImpl, *fakeNotificacionRepo) {
	repo := newFakeNotificacionRepo()
	service := &NotificacionServiceImpl{
		Repo:         repo,
		ProductoRepo: &fakeProductoRepo{productos: productos},
		Logger:       zap.NewNop(),
	}
	return service, repo
}

func TestVerificarProductosCantidadBaja(t *testing.T) {
	producto := models.Producto{
		ID:             primitive.NewObjectID(),
		Nombre:         "Leche",
		Cantidad:       2,
		CantidadMinima: 5,
	}
	service, repo := newTestNotificacionService(producto)

	if err := service.VerificarProductos(context.Background()); err != nil {
		t.Fatalf("VerificarProductos: %v", err)
	}

	noLeidas, _ := repo.FindNoLeidas(context.Background())
	if len(noLeidas) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(noLeidas))
	}
	n := noLeidas[0]
	if n.Tipo != models.TipoCantidadBaja {
		t.Errorf("expected tipo %s, got %s", models.TipoCantidadBaja, n.Tipo)
	}
	if n.ProductoID != producto.ID.Hex() {
		t.Errorf("expected productoId %s, got %s", producto.ID.Hex(), n.ProductoID)
	}
	if want := "El producto 'Leche' tiene cantidad baja (2/5)"; n.Mensaje != want {
		t.Errorf("expected mensaje %q, got %q", want, n.Mensaje)
	}
}

func TestVerificarProductosExpiracionProxima(t *testing.T) {
	pronto := time.Now().AddDate(0, 0, 3)
	lejos := time.Now().AddDate(0, 0, 30)

	service, repo := newTestNotificacionService(
		models.Producto{ID: primitive.NewObjectID(), Nombre: "Yogur", Cantidad: 5, CantidadMinima: 1, Expiracion: &pronto},
		models.Producto{ID: primitive.NewObjectID(), Nombre: "Arroz", Cantidad: 5, CantidadMinima: 1, Expiracion: &lejos},
	)

	if err := service.VerificarProductos(context.Background()); err != nil {
		t.Fatalf("VerificarProductos: %v", err)
	}

	noLeidas, _ := repo.FindNoLeidas(context.Background())
	if len(noLeidas) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(noLeidas))
	}
	if noLeidas[0].Tipo != models.TipoExpiracionProxima {
		t.Errorf("expected tipo %s, got %s", models.TipoExpiracionProxima, noLeidas[0].Tipo)
	}
}

func TestVerificarProductosNoDuplicaMientrasNoSeLea(t *testing.T) {
	producto := models.Producto{
		ID:             primitive.NewObjectID(),
		Nombre:         "Leche",
		Cantidad:       1,
		CantidadMinima: 4,
	}
	service, repo := newTestNotificacionService(producto)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := service.VerificarProductos(ctx); err != nil {
			t.Fatal(err)
		}
	}

	noLeidas, _ := repo.FindNoLeidas(ctx)
	if len(noLeidas) != 1 {
		t.Fatalf("expected repeated sweeps to keep 1 notification, got %d", len(noLeidas))
	}

	// Once read, a persisting condition fires again on the next sweep.
	if err := service.MarcarComoLeida(ctx, noLeidas[0].ID.Hex()); err != nil {
		t.Fatal(err)
	}
	if err := service.VerificarProductos(ctx); err != nil {
		t.Fatal(err)
	}

	noLeidas, _ = repo.FindNoLeidas(ctx)
	if len(noLeidas) != 1 {
		t.Fatalf("expected the condition to re-fire after read, got %d unread", len(noLeidas))
	}
	if len(repo.notificaciones) != 2 {
		t.Errorf("expected 2 stored notifications in total, got %d", len(repo.notificaciones))
	}
}

func TestMarcarComoLeidaIgnoraIDDesconocido(t *testing.T) {
	service, _ := newTestNotificacionService()

	if err := service.MarcarComoLeida(context.Background(), primitive.NewObjectID().Hex()); err != nil {
		t.Fatalf("unknown id should be ignored: %v", err)
	}
}

func TestMarcarTodasComoLeidas(t *testing.T) {
	service, _ := newTestNotificacionService(
		models.Producto{ID: primitive.NewObjectID(), Nombre: "Leche", Cantidad: 0, CantidadMinima: 2},
		models.Producto{ID: primitive.NewObjectID(), Nombre: "Pan", Cantidad: 1, CantidadMinima: 3},
	)
	ctx := context.Background()

	if err := service.VerificarProductos(ctx); err != nil {
		t.Fatal(err)
	}
	if err := service.MarcarTodasComoLeidas(ctx); err != nil {
		t.Fatal(err)
	}

	noLeidas, err := service.NoLeidas(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(noLeidas) != 0 {
		t.Errorf("expected no unread notifications, got %d", len(noLeidas))
	}
}
