package consultor

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	DB *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db}
}

func (h *Handler) CriarConsultor(w http.ResponseWriter, r *http.Request) {
	var c Consultor
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if c.Nome == "" {
		http.Error(w, "o nome do consultor é obrigatório", http.StatusBadRequest)
		return
	}
	c.ID = 0
	if err := h.DB.Create(&c).Error; err != nil {
		http.Error(w, "erro ao salvar consultor", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

func (h *Handler) ListarConsultores(w http.ResponseWriter, r *http.Request) {
	var lista []Consultor
	if err := h.DB.Order("nome").Find(&lista).Error; err != nil {
		http.Error(w, "erro ao listar consultores", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(lista)
}

func (h *Handler) AtualizarConsultor(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	var existente Consultor
	if err := h.DB.First(&existente, id).Error; err != nil {
		http.Error(w, "consultor não encontrado", http.StatusNotFound)
		return
	}
	var dados Consultor
	if err := json.NewDecoder(r.Body).Decode(&dados); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if dados.Nome != "" {
		existente.Nome = dados.Nome
	}
	existente.Email = dados.Email
	existente.Ativo = dados.Ativo
	if err := h.DB.Save(&existente).Error; err != nil {
		http.Error(w, "erro ao atualizar consultor", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(existente)
}

func (h *Handler) DeletarConsultor(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.DB.Delete(&Consultor{}, id).Error; err != nil {
		http.Error(w, "erro ao excluir consultor", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("consultor removido"))
}
