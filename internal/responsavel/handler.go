package responsavel

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type criarResponsavelRequest struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Ativo *bool  `json:"ativo"`
}

// Handler encapsula DB e repository
type Handler struct {
	DB         *gorm.DB
	Repository *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

// CriarResponsavel cadastra um novo responsável
func (h *Handler) CriarResponsavel(w http.ResponseWriter, r *http.Request) {
	var req criarResponsavelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if req.Nome == "" {
		http.Error(w, "o nome do responsável é obrigatório", http.StatusBadRequest)
		return
	}
	ativo := true
	if req.Ativo != nil {
		ativo = *req.Ativo
	}
	resp := Responsavel{Nome: req.Nome, Email: req.Email, Ativo: ativo}
	if err := h.Repository.Salvar(h.DB, &resp); err != nil {
		http.Error(w, "erro ao salvar responsável", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(resp)
}

// ListarResponsaveis retorna todos os responsáveis
func (h *Handler) ListarResponsaveis(w http.ResponseWriter, r *http.Request) {
	lista, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		http.Error(w, "erro ao listar responsáveis", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(lista)
}

// AtualizarResponsavel altera nome, email e ativo
func (h *Handler) AtualizarResponsavel(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	existente, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "responsável não encontrado", http.StatusNotFound)
		return
	}

	var req criarResponsavelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if req.Nome != "" {
		existente.Nome = req.Nome
	}
	existente.Email = req.Email
	if req.Ativo != nil {
		existente.Ativo = *req.Ativo
	}
	if err := h.Repository.Salvar(h.DB, existente); err != nil {
		http.Error(w, "erro ao atualizar responsável", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(existente)
}

// DeletarResponsavel remove um responsável do cadastro (o histórico
// preserva o nome em texto)
func (h *Handler) DeletarResponsavel(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao excluir responsável", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("responsável removido"))
}
