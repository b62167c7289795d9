package producto

import (
	"context"
	"testing"

	"homestock/internal/common/apperror"
	"homestock/internal/common/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type fakeProductoRepo struct {
	productos map[string]models.Producto
}

func newFakeProductoRepo() *fakeProductoRepo {
	return &fakeProductoRepo{productos: make(map[string]models.Producto)}
}

func (f *fakeProductoRepo) Create(ctx context.Context, producto *models.Producto) error {
	if producto.ID.IsZero() {
		producto.ID = primitive.NewObjectID()
	}
	f.productos[producto.ID.Hex()] = *producto
	return nil
}

func (f *fakeProductoRepo) FindAll(ctx context.Context) ([]models.Producto, error) {
	var out []models.Producto
	for _, p := range f.productos {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProductoRepo) FindByID(ctx context.Context, id string) (*models.Producto, error) {
	p, ok := f.productos[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &p, nil
}

func (f *fakeProductoRepo) FindByNombre(ctx context.Context, nombre string) (*models.Producto, error) {
	for _, p := range f.productos {
		if p.Nombre == nombre {
			return &p, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeProductoRepo) Update(ctx context.Context, producto *models.Producto) error {
	f.productos[producto.ID.Hex()] = *producto
	return nil
}

func (f *fakeProductoRepo) Delete(ctx context.Context, id string) error {
	delete(f.productos, id)
	return nil
}

type fakeLugarRepo struct {
	lugares map[string]models.Lugar
}

func newFakeLugarRepo() *fakeLugarRepo {
	return &fakeLugarRepo{lugares: make(map[string]models.Lugar)}
}

func (f *fakeLugarRepo) Create(ctx context.Context, lugar *models.Lugar) error {
	if lugar.ID.IsZero() {
		lugar.ID = primitive.NewObjectID()
	}
	f.lugares[lugar.ID.Hex()] = *lugar
	return nil
}

func (f *fakeLugarRepo) FindAll(ctx context.Context) ([]models.Lugar, error) {
	var out []models.Lugar
	for _, l := range f.lugares {
		out = append(out, l)
	}
	return out, nil
}

func (f *fakeLugarRepo) FindByID(ctx context.Context, id string) (*models.Lugar, error) {
	l, ok := f.lugares[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &l, nil
}

func (f *fakeLugarRepo) FindByGrupoFamiliarID(ctx context.Context, grupoFamiliarID string) ([]models.Lugar, error) {
	var out []models.Lugar
	for _, l := range f.lugares {
		if l.GrupoFamiliarID == grupoFamiliarID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeLugarRepo) Update(ctx context.Context, lugar *models.Lugar) error {
	f.lugares[lugar.ID.Hex()] = *lugar
	return nil
}

func (f *fakeLugarRepo) Delete(ctx context.Context, id string) error {
	delete(f.lugares, id)
	return nil
}

type fakeGrupoRepo struct {
	grupos map[string]models.GrupoFamiliar
}

func newFakeGrupoRepo() *fakeGrupoRepo {
	return &fakeGrupoRepo{grupos: make(map[string]models.GrupoFamiliar)}
}

func (f *fakeGrupoRepo) Create(ctx context.Context, grupo *models.GrupoFamiliar) error {
	if grupo.ID.IsZero() {
		grupo.ID = primitive.NewObjectID()
	}
	f.grupos[grupo.ID.Hex()] = *grupo
	return nil
}

func (f *fakeGrupoRepo) FindAll(ctx context.Context) ([]models.GrupoFamiliar, error) {
	var out []models.GrupoFamiliar
	for _, g := range f.grupos {
		out = append(out, g)
	}
	return out, nil
}

func (f *fakeGrupoRepo) FindByID(ctx context.Context, id string) (*models.GrupoFamiliar, error) {
	g, ok := f.grupos[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &g, nil
}

func (f *fakeGrupoRepo) FindByNombre(ctx context.Context, nombre string) (*models.GrupoFamiliar, error) {
	for _, g := range f.grupos {
		if g.Nombre == nombre {
			return &g, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeGrupoRepo) Update(ctx context.Context, grupo *models.GrupoFamiliar) error {
	f.grupos[grupo.ID.Hex()] = *grupo
	return nil
}

func (f *fakeGrupoRepo) Delete(ctx context.Context, id string) error {
	delete(f.grupos, id)
	return nil
}

type fakeCategoriaRepo struct {
	categorias map[string]models.Categoria
}

func newFakeCategoriaRepo() *fakeCategoriaRepo {
	return &fakeCategoriaRepo{categorias: make(map[string]models.Categoria)}
}

func (f *fakeCategoriaRepo) Create(ctx context.Context, categoria *models.Categoria) error {
	if categoria.ID.IsZero() {
		categoria.ID = primitive.NewObjectID()
	}
	f.categorias[categoria.Nombre] = *categoria
	return nil
}

func (f *fakeCategoriaRepo) FindAll(ctx context.Context) ([]models.Categoria, error) {
	var out []models.Categoria
	for _, c := range f.categorias {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCategoriaRepo) FindByNombre(ctx context.Context, nombre string) (*models.Categoria, error) {
	c, ok := f.categorias[nombre]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &c, nil
}

func (f *fakeCategoriaRepo) DeleteByNombre(ctx context.Context, nombre string) error {
	delete(f.categorias, nombre)
	return nil
}

func newTestProductoService() (*ProductoServiceImpl, *fakeProductoRepo, *fakeLugarRepo, *fakeGrupoRepo, *fakeCategoriaRepo) {
	productoRepo := newFakeProductoRepo()
	lugarRepo := newFakeLugarRepo()
	grupoRepo := newFakeGrupoRepo()
	categoriaRepo := newFakeCategoriaRepo()

	service := &ProductoServiceImpl{
		Repo:          productoRepo,
		LugarRepo:     lugarRepo,
		GrupoRepo:     grupoRepo,
		CategoriaRepo: categoriaRepo,
		Logger:        zap.NewNop(),
	}
	return service, productoRepo, lugarRepo, grupoRepo, categoriaRepo
}

// seedLugarConGrupo creates a grupo embedding one lugar and returns both.
func seedLugarConGrupo(t *testing.T, lugarRepo *fakeLugarRepo, grupoRepo *fakeGrupoRepo) (*models.Lugar, *models.GrupoFamiliar) {
	t.Helper()
	ctx := context.Background()

	grupo := &models.GrupoFamiliar{Nombre: "Casa"}
	if err := grupoRepo.Create(ctx, grupo); err != nil {
		t.Fatal(err)
	}

	lugar := &models.Lugar{Nombre: "Despensa", GrupoFamiliarID: grupo.ID.Hex()}
	if err := lugarRepo.Create(ctx, lugar); err != nil {
		t.Fatal(err)
	}

	grupo.Lugares = append(grupo.Lugares, *lugar)
	if err := grupoRepo.Update(ctx, grupo); err != nil {
		t.Fatal(err)
	}
	return lugar, grupo
}

func TestCrearProductoValidaCantidades(t *testing.T) {
	service, _, _, _, _ := newTestProductoService()
	ctx := context.Background()

	cases := []struct {
		name           string
		nombre         string
		cantidad       int
		cantidadMinima int
	}{
		{"cantidad menor que la minima", "Leche", 2, 5},
		{"cantidad negativa", "Leche", -1, 0},
		{"cantidad minima negativa", "Leche", 3, -2},
		{"nombre vacio", "", 3, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.CrearProducto(ctx, tc.nombre, "", tc.cantidad, tc.cantidadMinima, nil, "")
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if code := apperror.StatusCode(err); code != 400 {
				t.Errorf("expected status 400, got %d", code)
			}
		})
	}
}

func TestCrearProductoPropagaAlLugarYGrupo(t *testing.T) {
	service, _, lugarRepo, grupoRepo, _ := newTestProductoService()
	ctx := context.Background()

	lugar, grupo := seedLugarConGrupo(t, lugarRepo, grupoRepo)

	producto, err := service.CrearProducto(ctx, "Arroz", "1kg", 4, 2, nil, lugar.ID.Hex())
	if err != nil {
		t.Fatalf("CrearProducto: %v", err)
	}

	l, err := lugarRepo.FindByID(ctx, lugar.ID.Hex())
	if err != nil {
		t.Fatal(err)
	}
	if len(l.Productos) != 1 || l.Productos[0].ID != producto.ID {
		t.Fatalf("expected producto embedded in lugar, got %+v", l.Productos)
	}

	g, err := grupoRepo.FindByID(ctx, grupo.ID.Hex())
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Lugares) != 1 || len(g.Lugares[0].Productos) != 1 {
		t.Fatalf("expected lugar snapshot in grupo to carry the producto, got %+v", g.Lugares)
	}
	if g.Lugares[0].Productos[0].Nombre != "Arroz" {
		t.Errorf("expected Arroz in grupo snapshot, got %s", g.Lugares[0].Productos[0].Nombre)
	}
}

func TestDecrementarOEliminar(t *testing.T) {
	service, productoRepo, lugarRepo, grupoRepo, _ := newTestProductoService()
	ctx := context.Background()

	lugar, grupo := seedLugarConGrupo(t, lugarRepo, grupoRepo)

	producto, err := service.CrearProducto(ctx, "Leche", "", 3, 1, nil, lugar.ID.Hex())
	if err != nil {
		t.Fatal(err)
	}
	id := producto.ID.Hex()

	// 3 -> 2 -> 1, decrementing and keeping every copy in sync.
	for _, want := range []int{2, 1} {
		if err := service.DecrementarOEliminar(ctx, id); err != nil {
			t.Fatalf("DecrementarOEliminar: %v", err)
		}

		p, err := productoRepo.FindByID(ctx, id)
		if err != nil {
			t.Fatal(err)
		}
		if p.Cantidad != want {
			t.Fatalf("expected cantidad %d, got %d", want, p.Cantidad)
		}

		l, _ := lugarRepo.FindByID(ctx, lugar.ID.Hex())
		if l.Productos[0].Cantidad != want {
			t.Errorf("lugar snapshot: expected cantidad %d, got %d", want, l.Productos[0].Cantidad)
		}
		g, _ := grupoRepo.FindByID(ctx, grupo.ID.Hex())
		if g.Lugares[0].Productos[0].Cantidad != want {
			t.Errorf("grupo snapshot: expected cantidad %d, got %d", want, g.Lugares[0].Productos[0].Cantidad)
		}
	}

	// At cantidad 1 the next call deletes everywhere.
	if err := service.DecrementarOEliminar(ctx, id); err != nil {
		t.Fatalf("DecrementarOEliminar: %v", err)
	}

	if _, err := productoRepo.FindByID(ctx, id); err != mongo.ErrNoDocuments {
		t.Error("expected producto deleted from canonical collection")
	}
	l, _ := lugarRepo.FindByID(ctx, lugar.ID.Hex())
	if len(l.Productos) != 0 {
		t.Errorf("expected producto removed from lugar, got %+v", l.Productos)
	}
	g, _ := grupoRepo.FindByID(ctx, grupo.ID.Hex())
	if len(g.Lugares[0].Productos) != 0 {
		t.Errorf("expected producto removed from grupo snapshot, got %+v", g.Lugares[0].Productos)
	}
}

func TestDecrementarOEliminarProductoInexistente(t *testing.T) {
	service, _, _, _, _ := newTestProductoService()

	err := service.DecrementarOEliminar(context.Background(), primitive.NewObjectID().Hex())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if code := apperror.StatusCode(err); code != 404 {
		t.Errorf("expected status 404, got %d", code)
	}
}

func TestAsignarCategoriaPropaga(t *testing.T) {
	service, _, lugarRepo, grupoRepo, categoriaRepo := newTestProductoService()
	ctx := context.Background()

	lugar, grupo := seedLugarConGrupo(t, lugarRepo, grupoRepo)
	if err := categoriaRepo.Create(ctx, &models.Categoria{Nombre: "lacteos"}); err != nil {
		t.Fatal(err)
	}

	producto, err := service.CrearProducto(ctx, "Yogur", "", 6, 2, nil, lugar.ID.Hex())
	if err != nil {
		t.Fatal(err)
	}

	// Assignment normalizes the requested name before the lookup.
	actualizado, err := service.AsignarCategoria(ctx, producto.ID.Hex(), "  Lacteos ")
	if err != nil {
		t.Fatalf("AsignarCategoria: %v", err)
	}
	if actualizado.Categoria == nil || actualizado.Categoria.Nombre != "lacteos" {
		t.Fatalf("expected categoria lacteos, got %+v", actualizado.Categoria)
	}

	l, _ := lugarRepo.FindByID(ctx, lugar.ID.Hex())
	if l.Productos[0].Categoria == nil || l.Productos[0].Categoria.Nombre != "lacteos" {
		t.Errorf("lugar snapshot missing categoria: %+v", l.Productos[0].Categoria)
	}
	g, _ := grupoRepo.FindByID(ctx, grupo.ID.Hex())
	if g.Lugares[0].Productos[0].Categoria == nil {
		t.Error("grupo snapshot missing categoria")
	}
}

func TestAsignarCategoriaInexistente(t *testing.T) {
	service, productoRepo, _, _, _ := newTestProductoService()
	ctx := context.Background()

	producto := &models.Producto{Nombre: "Pan", Cantidad: 2, CantidadMinima: 1}
	if err := productoRepo.Create(ctx, producto); err != nil {
		t.Fatal(err)
	}

	_, err := service.AsignarCategoria(ctx, producto.ID.Hex(), "inexistente")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if code := apperror.StatusCode(err); code != 400 {
		t.Errorf("expected status 400, got %d", code)
	}
}
