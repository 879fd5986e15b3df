package app

import (
	"io"
	"net/http"

	"gosupplier_api/config"
	"gosupplier_api/internal/catalog/app/web"
	"gosupplier_api/internal/catalog/app/web/handlers"
	"gosupplier_api/internal/catalog/normalize"
	"gosupplier_api/internal/catalog/storage"
	catalogsync "gosupplier_api/internal/catalog/sync"
	"gosupplier_api/pkg/dbconnect"
	"gosupplier_api/pkg/dbconnect/migration"
	"gosupplier_api/pkg/logger"
)

// CatalogServer owns the full import stack: database, migrations, the
// normalizer and the HTTP surface around them.
type CatalogServer struct {
	dbconnect.DbConnector
	config *config.AppConfig
	writer io.Writer
	log    logger.Logger
}

func NewCatalogServer(dbCon dbconnect.DbConnector, cfg *config.AppConfig, writer io.Writer) *CatalogServer {
	return &CatalogServer{
		DbConnector: dbCon,
		config:      cfg,
		writer:      writer,
		log:         logger.NewLogger(writer, "[CatalogServer]"),
	}
}

func (s *CatalogServer) Run() error {
	db, err := s.Connect()
	if err != nil {
		return err
	}
	defer db.Close()

	migrationApply := []migration.MigrationInterface{
		&storage.CatalogSchema{},
		&storage.SupplierProducts{},
	}
	for _, _migration := range migrationApply {
		if err := _migration.UpMigration(db); err != nil {
			return err
		}
	}
	s.log.Log("catalog migrations applied successfully")

	normalizer := normalize.NewNormalizer()
	productRepo := storage.NewProductRepository(db)
	syncService := catalogsync.NewService(normalizer, productRepo, s.config.Values, s.writer)

	routes := web.SetupRoutes(
		handlers.NewNormalizeHandler(normalizer),
		handlers.NewSyncHandler(syncService, s.config.Suppliers, s.writer),
		handlers.NewProductsHandler(productRepo),
	)

	s.log.Log("catalog service listening on %s", s.config.Addr)
	return http.ListenAndServe(s.config.Addr, routes)
}
