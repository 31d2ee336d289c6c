package handlers

import (
	"internboat/internal/services"
)

type Deps struct {
	UserHandler    *UserHandler
	CatalogHandler *CatalogHandler
}

func NewDeps(store services.UserStore) *Deps {
	userSvc := &services.UserService{Users: store}
	catalogSvc := services.NewCatalogService()

	return &Deps{
		UserHandler:    &UserHandler{Users: userSvc},
		CatalogHandler: &CatalogHandler{Catalog: catalogSvc},
	}
}
