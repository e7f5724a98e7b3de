package usuario

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/AtrioGestao/api-clientes/internal/auth"
	"github.com/AtrioGestao/api-clientes/internal/utils"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// request DTOs
type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type criarUsuarioRequest struct {
	Nome   string `json:"nome"`
	Email  string `json:"email"`
	Senha  string `json:"senha"`
	Perfil string `json:"perfil"`
}

// Handler encapsula DB
type Handler struct {
	DB *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db}
}

// Login gera um JWT para credenciais válidas
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	var u Usuario
	if err := h.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).First(&u).Error; err != nil {
		http.Error(w, "credenciais inválidas", http.StatusUnauthorized)
		return
	}

	if !utils.CheckSenha(u.Senha, req.Senha) {
		http.Error(w, "senha incorreta", http.StatusUnauthorized)
		return
	}

	token, err := auth.GerarToken(u.ID, u.Perfil)
	if err != nil {
		http.Error(w, "erro ao gerar token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"token": token, "perfil": u.Perfil})
}

// CriarUsuario cadastra um novo usuário (somente admin)
func (h *Handler) CriarUsuario(w http.ResponseWriter, r *http.Request) {
	var req criarUsuarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	perfil := strings.ToUpper(strings.TrimSpace(req.Perfil))
	if perfil != auth.PerfilAdministrador && perfil != auth.PerfilAgendamento {
		http.Error(w, "perfil inválido", http.StatusBadRequest)
		return
	}
	if req.Senha == "" {
		http.Error(w, "senha obrigatória", http.StatusBadRequest)
		return
	}

	hash, err := utils.HashSenha(req.Senha)
	if err != nil {
		http.Error(w, "erro ao processar senha", http.StatusInternalServerError)
		return
	}

	u := Usuario{
		Nome:   strings.TrimSpace(req.Nome),
		Email:  strings.ToLower(strings.TrimSpace(req.Email)),
		Senha:  hash,
		Perfil: perfil,
	}
	if err := h.DB.Create(&u).Error; err != nil {
		http.Error(w, "erro ao salvar usuário", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(u)
}

// ListarUsuarios retorna todos os usuários (somente admin)
func (h *Handler) ListarUsuarios(w http.ResponseWriter, r *http.Request) {
	var usuarios []Usuario
	if err := h.DB.Order("nome").Find(&usuarios).Error; err != nil {
		http.Error(w, "erro ao listar usuários", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(usuarios)
}

// DeletarUsuario remove um usuário (somente admin)
func (h *Handler) DeletarUsuario(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.DB.Delete(&Usuario{}, id).Error; err != nil {
		http.Error(w, "erro ao remover usuário", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Me retorna o usuário logado
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(auth.CtxUserID).(uint)

	var u Usuario
	if err := h.DB.First(&u, userID).Error; err != nil {
		http.Error(w, "usuário não encontrado", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(u)
}
