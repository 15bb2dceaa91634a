package routers

import (
	"clinic-console-service/internal/pkg/constvars"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type readController interface {
	FindAll(w http.ResponseWriter, r *http.Request)
	FindByID(w http.ResponseWriter, r *http.Request)
}

type crudController interface {
	readController
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

var itemPath = fmt.Sprintf("/{%s}", constvars.URLParamID)

func attachReadRoutes(router chi.Router, resource string, controller readController) {
	router.Route("/"+resource, func(r chi.Router) {
		r.Get("/", controller.FindAll)
		r.Get(itemPath, controller.FindByID)
	})
}

func attachCRUDRoutes(router chi.Router, resource string, controller crudController) {
	router.Route("/"+resource, func(r chi.Router) {
		r.Get("/", controller.FindAll)
		r.Post("/", controller.Create)
		r.Get(itemPath, controller.FindByID)
		r.Put(itemPath, controller.Update)
		r.Delete(itemPath, controller.Delete)
	})
}
