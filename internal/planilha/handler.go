package planilha

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/AtrioGestao/api-clientes/internal/agendamento"
	"github.com/AtrioGestao/api-clientes/internal/cliente"
	"github.com/AtrioGestao/api-clientes/internal/config"
	"gorm.io/gorm"
)

const contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Handler encapsula DB para importação e exportação
type Handler struct {
	DB       *gorm.DB
	Clientes cliente.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Clientes: cliente.NewRepository()}
}

// arquivoEnviado extrai o campo "arquivo" do multipart.
func arquivoEnviado(w http.ResponseWriter, r *http.Request) (multipart.File, bool) {
	arquivo, _, err := r.FormFile("arquivo")
	if err != nil {
		http.Error(w, "arquivo não enviado", http.StatusBadRequest)
		return nil, false
	}
	return arquivo, true
}

func responderErroImportacao(w http.ResponseWriter, err error) {
	var erroImp *ErroImportacao
	if errors.As(err, &erroImp) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]any{"erros": erroImp.Linhas})
		return
	}
	http.Error(w, err.Error(), http.StatusBadRequest)
}

// ImportarClientes responde POST /clientes/importar
func (h *Handler) ImportarClientes(w http.ResponseWriter, r *http.Request) {
	arquivo, ok := arquivoEnviado(w, r)
	if !ok {
		return
	}
	defer arquivo.Close()

	importados, err := ImportarClientes(h.DB, arquivo)
	if err != nil {
		responderErroImportacao(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"importados": importados})
}

// ImportarResponsaveis responde POST /responsaveis/importar
func (h *Handler) ImportarResponsaveis(w http.ResponseWriter, r *http.Request) {
	arquivo, ok := arquivoEnviado(w, r)
	if !ok {
		return
	}
	defer arquivo.Close()

	importados, err := ImportarResponsaveis(h.DB, arquivo)
	if err != nil {
		responderErroImportacao(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"importados": importados})
}

// ImportarMotivosRazoes responde POST /motivos-razoes/importar
func (h *Handler) ImportarMotivosRazoes(w http.ResponseWriter, r *http.Request) {
	arquivo, ok := arquivoEnviado(w, r)
	if !ok {
		return
	}
	defer arquivo.Close()

	motivos, razoes, err := ImportarMotivosRazoes(h.DB, arquivo)
	if err != nil {
		responderErroImportacao(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"motivos": motivos, "razoes": razoes})
}

// ExportarClientes responde GET /clientes/exportar com os mesmos
// filtros da listagem.
func (h *Handler) ExportarClientes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filtros := cliente.Filtros{
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
	clientes, err := h.Clientes.ListarComFiltros(h.DB, filtros)
	if err != nil {
		config.LogError(config.GetLogger(), "planilha", "ExportarClientes", "listar clientes", err)
		http.Error(w, "erro ao listar clientes", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentTypeXLSX)
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="clientes_%s.xlsx"`, time.Now().Format("20060102_150405")))
	if err := ExportarClientes(w, clientes); err != nil {
		config.LogError(config.GetLogger(), "planilha", "ExportarClientes", "gerar planilha", err)
		http.Error(w, "erro ao gerar planilha", http.StatusInternalServerError)
	}
}

// ExportarReunioes responde GET /reunioes/exportar
func (h *Handler) ExportarReunioes(w http.ResponseWriter, r *http.Request) {
	listas, err := agendamento.MontarListasReunioes(h.DB)
	if err != nil {
		config.LogError(config.GetLogger(), "planilha", "ExportarReunioes", "montar listas", err)
		http.Error(w, "erro ao listar reuniões", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentTypeXLSX)
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="reunioes_preferencias_%s.xlsx"`, time.Now().Format("20060102")))
	if err := ExportarReunioes(w, listas); err != nil {
		config.LogError(config.GetLogger(), "planilha", "ExportarReunioes", "gerar planilha", err)
		http.Error(w, "erro ao gerar planilha", http.StatusInternalServerError)
	}
}
