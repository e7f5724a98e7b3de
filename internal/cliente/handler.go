package cliente

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/AtrioGestao/api-clientes/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var validate = validator.New()

// Handler encapsula DB e repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

func filtrosDaQuery(r *http.Request) Filtros {
	q := r.URL.Query()
	return Filtros{
		Nome:        q.Get("nome"),
		Responsavel: q.Get("responsavel"),
		Status:      q.Get("status"),
		Termometro:  q.Get("termometro"),
		DataTipo:    q.Get("data_tipo"),
		DataInicio:  q.Get("data_inicio"),
		DataFim:     q.Get("data_fim"),
		ValorMin:    q.Get("valor_min"),
		ValorMax:    q.Get("valor_max"),
	}
}

func (h *Handler) buscarCliente(w http.ResponseWriter, r *http.Request) *Cliente {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return nil
	}
	c, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "cliente não encontrado", http.StatusNotFound)
		return nil
	}
	return c
}

func parseDataObrigatoria(w http.ResponseWriter, valor string) (time.Time, bool) {
	data, err := utils.ParseData(valor)
	if err != nil || data == nil {
		http.Error(w, "data em formato inválido", http.StatusBadRequest)
		return time.Time{}, false
	}
	return *data, true
}

// CriarCliente cadastra um novo cliente
func (h *Handler) CriarCliente(w http.ResponseWriter, r *http.Request) {
	var req criarClienteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, "campos obrigatórios ausentes ou inválidos", http.StatusBadRequest)
		return
	}

	entrada, ok := parseDataObrigatoria(w, req.Entrada)
	if !ok {
		return
	}
	saida, err := utils.ParseData(req.Saida)
	if err != nil {
		http.Error(w, "data de saída inválida", http.StatusBadRequest)
		return
	}
	valor, err := utils.ParseDecimal(req.Valor)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	termometro := req.Termometro
	if termometro == 0 {
		termometro = 3
	}
	status := req.Status
	if status == "" {
		status = StatusAtivo
	}

	c := Cliente{
		Nome:            req.Nome,
		Responsavel:     req.Responsavel,
		Termometro:      termometro,
		QuerAlinhamento: req.QuerAlinhamento,
		Status:          status,
		Entrada:         entrada,
		Saida:           saida,
		Valor:           valor,
		Permuta:         req.Permuta,
		Motivo:          req.Motivo,
		Razao:           req.Razao,
	}
	if err := c.Normalizar(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&c).Error; err != nil {
			return err
		}
		return respRepo.GarantirPorNome(tx, c.Responsavel)
	}); err != nil {
		http.Error(w, "erro ao salvar cliente", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// ListarClientes aplica os filtros de querystring
func (h *Handler) ListarClientes(w http.ResponseWriter, r *http.Request) {
	clientes, err := h.Repository.ListarComFiltros(h.DB, filtrosDaQuery(r))
	if err != nil {
		http.Error(w, "erro ao listar clientes", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(clientes)
}

// BuscarPorID retorna um cliente com histórico
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	c := h.buscarCliente(w, r)
	if c == nil {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

// AtualizarCliente altera apenas nome e quer-alinhamento; os demais
// campos só mudam pelas mutações auditadas
func (h *Handler) AtualizarCliente(w http.ResponseWriter, r *http.Request) {
	c := h.buscarCliente(w, r)
	if c == nil {
		return
	}
	var req atualizarClienteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, "o nome do cliente é obrigatório", http.StatusBadRequest)
		return
	}
	c.Nome = req.Nome
	c.QuerAlinhamento = req.QuerAlinhamento
	if err := h.Repository.Salvar(h.DB, c); err != nil {
		http.Error(w, "erro ao atualizar cliente", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("cliente atualizado com sucesso"))
}

// DeletarCliente remove o cliente e seu histórico
func (h *Handler) DeletarCliente(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao excluir cliente", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("cliente removido"))
}

// Transferir registra a troca de responsável
func (h *Handler) Transferir(w http.ResponseWriter, r *http.Request) {
	c := h.buscarCliente(w, r)
	if c == nil {
		return
	}
	var req transferirRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, "novo responsável, motivo e data são obrigatórios", http.StatusBadRequest)
		return
	}
	data, ok := parseDataObrigatoria(w, req.Data)
	if !ok {
		return
	}
	if err := Transferir(h.DB, c, req.NovoResponsavel, req.Motivo, req.Razao, data); err != nil {
		http.Error(w, "erro ao registrar transferência", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("transferência registrada com sucesso"))
}

// RegistrarSaida inativa o cliente
func (h *Handler) RegistrarSaida(w http.ResponseWriter, r *http.Request) {
	c := h.buscarCliente(w, r)
	if c == nil {
		return
	}
	var req saidaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, "data e motivo da saída são obrigatórios", http.StatusBadRequest)
		return
	}
	data, ok := parseDataObrigatoria(w, req.Data)
	if !ok {
		return
	}
	if data.Before(c.Entrada) {
		http.Error(w, ErrSaidaAntesEntrada.Error(), http.StatusBadRequest)
		return
	}
	if err := RegistrarSaida(h.DB, c, data, req.Motivo, req.Razao); err != nil {
		http.Error(w, "erro ao registrar saída", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("saída registrada"))
}

// AlterarTermometro registra a nova nota de satisfação
func (h *Handler) AlterarTermometro(w http.ResponseWriter, r *http.Request) {
	c := h.buscarCliente(w, r)
	if c == nil {
		return
	}
	var req termometroRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, "termômetro (1 a 5), data e motivo são obrigatórios", http.StatusBadRequest)
		return
	}
	data, ok := parseDataObrigatoria(w, req.Data)
	if !ok {
		return
	}
	if err := AlterarTermometro(h.DB, c, req.NovoTermometro, data, req.Motivo, req.Razao); err != nil {
		http.Error(w, "erro ao registrar alteração de termômetro", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("alteração de termômetro registrada"))
}

// AlterarValor registra a mudança de valor/permuta
func (h *Handler) AlterarValor(w http.ResponseWriter, r *http.Request) {
	c := h.buscarCliente(w, r)
	if c == nil {
		return
	}
	var req valorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, "data e motivo são obrigatórios", http.StatusBadRequest)
		return
	}
	data, ok := parseDataObrigatoria(w, req.Data)
	if !ok {
		return
	}
	valor := decimal.Zero
	if !req.Permuta {
		var err error
		valor, err = utils.ParseDecimal(req.Valor)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	if err := AlterarValor(h.DB, c, valor, req.Permuta, data, req.Motivo, req.Razao); err != nil {
		if errors.Is(err, ErrValorObrigatorio) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "erro ao registrar alteração de valor", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("alteração de valor registrada"))
}

// LimparTudo apaga todos os registros operacionais (reset completo)
func (h *Handler) LimparTudo(w http.ResponseWriter, r *http.Request) {
	if err := LimparBanco(h.DB); err != nil {
		http.Error(w, "erro ao limpar registros", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("todos os registros foram removidos"))
}
