package motivorazao

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

// Listar devolve motivos e razões em uma única resposta
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	motivos, err := h.Repository.ListarMotivos(h.DB)
	if err != nil {
		http.Error(w, "erro ao listar motivos", http.StatusInternalServerError)
		return
	}
	razoes, err := h.Repository.ListarRazoes(h.DB)
	if err != nil {
		http.Error(w, "erro ao listar razões", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"motivos": motivos,
		"razoes":  razoes,
	})
}

type criarMotivoRequest struct {
	Nome string `json:"nome"`
}

func (h *Handler) CriarMotivo(w http.ResponseWriter, r *http.Request) {
	var req criarMotivoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Nome) == "" {
		http.Error(w, "o nome do motivo é obrigatório", http.StatusBadRequest)
		return
	}
	motivo, err := h.Repository.GarantirMotivo(h.DB, req.Nome)
	if err != nil {
		http.Error(w, "erro ao salvar motivo", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(motivo)
}

func (h *Handler) AtualizarMotivo(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	var req criarMotivoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Nome) == "" {
		http.Error(w, "o nome do motivo é obrigatório", http.StatusBadRequest)
		return
	}
	var motivo Motivo
	if err := h.DB.First(&motivo, id).Error; err != nil {
		http.Error(w, "motivo não encontrado", http.StatusNotFound)
		return
	}
	motivo.Nome = strings.TrimSpace(req.Nome)
	if err := h.DB.Save(&motivo).Error; err != nil {
		http.Error(w, "erro ao atualizar motivo", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(motivo)
}

func (h *Handler) DeletarMotivo(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("motivo_id = ?", id).Delete(&Razao{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Motivo{}, id).Error
	}); err != nil {
		http.Error(w, "erro ao excluir motivo", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("motivo removido"))
}

type criarRazaoRequest struct {
	Nome            string `json:"nome"`
	TipoDeHistorico string `json:"tipoDeHistorico"`
	MotivoID        uint   `json:"motivoId"`
}

func (h *Handler) CriarRazao(w http.ResponseWriter, r *http.Request) {
	var req criarRazaoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	tipo := NormalizarTipo(req.TipoDeHistorico)
	if strings.TrimSpace(req.Nome) == "" || tipo == "" {
		http.Error(w, "nome e tipo da razão são obrigatórios", http.StatusBadRequest)
		return
	}
	var motivo Motivo
	if err := h.DB.First(&motivo, req.MotivoID).Error; err != nil {
		http.Error(w, "motivo não encontrado", http.StatusNotFound)
		return
	}
	if err := h.Repository.GarantirRazao(h.DB, req.Nome, tipo, &motivo); err != nil {
		http.Error(w, "erro ao salvar razão", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write([]byte("razão adicionada"))
}

func (h *Handler) AtualizarRazao(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	var req criarRazaoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Nome) == "" {
		http.Error(w, "o nome da razão é obrigatório", http.StatusBadRequest)
		return
	}
	tipo := NormalizarTipo(req.TipoDeHistorico)
	if tipo == "" {
		http.Error(w, "tipo inválido para a razão", http.StatusBadRequest)
		return
	}
	var razao Razao
	if err := h.DB.First(&razao, id).Error; err != nil {
		http.Error(w, "razão não encontrada", http.StatusNotFound)
		return
	}
	if req.MotivoID != 0 {
		var motivo Motivo
		if err := h.DB.First(&motivo, req.MotivoID).Error; err != nil {
			http.Error(w, "motivo não encontrado", http.StatusNotFound)
			return
		}
		razao.MotivoID = motivo.ID
	}
	razao.Nome = strings.TrimSpace(req.Nome)
	razao.TipoDeHistorico = tipo
	if err := h.DB.Save(&razao).Error; err != nil {
		http.Error(w, "erro ao atualizar razão", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(razao)
}

func (h *Handler) DeletarRazao(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.DB.Delete(&Razao{}, id).Error; err != nil {
		http.Error(w, "erro ao excluir razão", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("razão removida"))
}
