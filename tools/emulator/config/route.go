package config

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/raywall/listing-fixtures/pkg/listing"
	"github.com/raywall/listing-fixtures/tools/emulator/types"
	"github.com/rs/zerolog/log"
)

const (
	// RootPath é o prefixo da árvore sintética em todas as personas.
	RootPath = "/root/"

	// Valor fixo devolvido no HEAD, usado por ferramentas que só olham headers.
	headContentLength = "12"
)

// NewHandler monta o roteador da persona:
//
//	GET  /root/        listagem da raiz
//	GET  /root/<sub>/  listagem do subdiretório
//	HEAD /root/...     headers fixos, sem corpo
func (s *ServerConfig) NewHandler(tree types.Tree) (http.Handler, error) {
	id, err := listing.ParseID(s.Persona)
	if err != nil {
		return nil, err
	}
	p, _ := listing.Lookup(id)

	if tree.SubName == "" {
		return nil, fmt.Errorf("árvore sem subdiretório para a persona %s", s.Persona)
	}

	return NewPersonaRouter(p, tree), nil
}

// NewPersonaRouter registra as rotas de uma persona sobre a árvore informada.
func NewPersonaRouter(p listing.Persona, tree types.Tree) *mux.Router {
	router := mux.NewRouter()
	subPath := RootPath + tree.SubName + "/"

	router.HandleFunc(RootPath, listingHandler(p, RootPath, tree.RootSnapshot())).Methods(http.MethodGet)
	router.HandleFunc(subPath, listingHandler(p, subPath, tree.SubSnapshot())).Methods(http.MethodGet)
	router.PathPrefix(RootPath).HandlerFunc(headHandler(p)).Methods(http.MethodHead)

	router.NotFoundHandler = statusHandler(p, http.StatusNotFound)
	router.MethodNotAllowedHandler = statusHandler(p, http.StatusMethodNotAllowed)

	return router
}

func listingHandler(p listing.Persona, path string, snap listing.Snapshot) http.HandlerFunc {
	title := listing.IndexTitle(path)
	return func(w http.ResponseWriter, r *http.Request) {
		doc := listing.Document(title, p.RenderSnapshot(snap))

		w.Header().Set("Server", p.ServerHeader)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := io.WriteString(w, doc); err != nil {
			log.Ctx(r.Context()).Warn().Err(err).Msg("Erro ao escrever listagem")
		}
	}
}

func headHandler(p listing.Persona) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Server", p.ServerHeader)
		w.Header().Set("Content-Type", "text/plain")
		w.Header().Set("Content-Length", headContentLength)
		w.WriteHeader(http.StatusOK)
	}
}

func statusHandler(p listing.Persona, status int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Server", p.ServerHeader)
		http.Error(w, http.StatusText(status), status)
	})
}
