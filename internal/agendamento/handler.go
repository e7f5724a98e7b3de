package agendamento

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/AtrioGestao/api-clientes/internal/cliente"
	"github.com/AtrioGestao/api-clientes/internal/config"
	"github.com/AtrioGestao/api-clientes/internal/consultor"
	"github.com/AtrioGestao/api-clientes/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

var validate = validator.New()

// Handler encapsula DB e repository
type Handler struct {
	DB         *gorm.DB
	Repository *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository(db)}
}

// ListarReunioes responde GET /reunioes com as duas listas montadas.
func (h *Handler) ListarReunioes(w http.ResponseWriter, r *http.Request) {
	listas, err := MontarListasReunioes(h.DB)
	if err != nil {
		config.LogError(config.GetLogger(), "agendamento", "ListarReunioes", "montar listas", err)
		http.Error(w, "erro ao listar reuniões", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(listas)
}

type preferenciaRequest struct {
	Tipo            string `json:"tipo" validate:"required,oneof=ALINHAMENTO FECHAMENTO"`
	DiaPrefInicio   *int   `json:"diaPrefInicio" validate:"omitempty,min=1,max=31"`
	DiaPrefFim      *int   `json:"diaPrefFim" validate:"omitempty,min=1,max=31"`
	DiaSemanaPref   string `json:"diaSemanaPref" validate:"omitempty,oneof=SEGUNDA TERCA QUARTA QUINTA SEXTA"`
	HorarioPref     string `json:"horarioPref" validate:"omitempty,oneof=MANHA TARDE NOITE"`
	Local           string `json:"local" validate:"omitempty,oneof=ESCRITORIO ONLINE CLIENTE OUTRO"`
	LocalDescricao  string `json:"localDescricao"`
	DuracaoMinutos  *int   `json:"duracaoMinutos" validate:"omitempty,min=1"`
	DataSugerida    *int   `json:"dataSugerida" validate:"omitempty,min=1,max=31"`
	Observacoes     string `json:"observacoes"`
	ConsultorID     *uint  `json:"consultorId"`
}

// SalvarPreferencia responde PUT /clientes/{id}/preferencias. Na
// preferência de alinhamento o responsável é sempre o responsável atual
// do cliente; na de fechamento, o nome do consultor escolhido.
func (h *Handler) SalvarPreferencia(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var req preferenciaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	req.Tipo = strings.ToUpper(strings.TrimSpace(req.Tipo))
	if err := validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var c cliente.Cliente
	if err := h.DB.First(&c, id).Error; err != nil {
		http.Error(w, "cliente não encontrado", http.StatusNotFound)
		return
	}

	pref := ReuniaoPreferencia{
		ClienteID:      c.ID,
		Tipo:           req.Tipo,
		DiaPrefInicio:  req.DiaPrefInicio,
		DiaPrefFim:     req.DiaPrefFim,
		DiaSemanaPref:  req.DiaSemanaPref,
		HorarioPref:    req.HorarioPref,
		Local:          req.Local,
		LocalDescricao: req.LocalDescricao,
		DuracaoMinutos: req.DuracaoMinutos,
		DataSugerida:   req.DataSugerida,
		Observacoes:    req.Observacoes,
	}

	switch req.Tipo {
	case TipoAlinhamento:
		pref.ResponsavelNome = c.Responsavel
		pref.ConsultorID = nil
	case TipoFechamento:
		if req.ConsultorID != nil {
			var cons consultor.Consultor
			if err := h.DB.First(&cons, *req.ConsultorID).Error; err != nil {
				http.Error(w, "consultor não encontrado", http.StatusBadRequest)
				return
			}
			pref.ConsultorID = req.ConsultorID
			pref.ResponsavelNome = cons.Nome
		}
	}

	if err := h.Repository.SalvarPreferencia(&pref); err != nil {
		config.LogError(config.GetLogger(), "agendamento", "SalvarPreferencia", "gravar preferência", err)
		http.Error(w, "erro ao salvar preferência", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(pref)
}

type preferenciaResumo struct {
	DiaSemana   string `json:"diaSemana"`
	Horario     string `json:"horario"`
	Local       string `json:"local"`
	Observacoes string `json:"observacoes"`
	Responsavel string `json:"responsavel"`
	Consultor   string `json:"consultor,omitempty"`
	Duracao     string `json:"duracao,omitempty"`
	DiaSugerido string `json:"diaSugerido,omitempty"`
}

type celulaAgendamento struct {
	Data       *time.Time `json:"data"`
	Horario    string     `json:"horario"`
	Status     string     `json:"status"`
	Observacao string     `json:"observacao"`
}

type linhaGrade struct {
	Cliente struct {
		ID              uint   `json:"id"`
		Nome            string `json:"nome"`
		QuerAlinhamento bool   `json:"querAlinhamento"`
	} `json:"cliente"`
	Preferencias struct {
		Alinhamento *preferenciaResumo `json:"alinhamento"`
		Fechamento  *preferenciaResumo `json:"fechamento"`
	} `json:"preferencias"`
	Agendamento struct {
		Alinhamento celulaAgendamento `json:"alinhamento"`
		Fechamento  celulaAgendamento `json:"fechamento"`
	} `json:"agendamento"`
}

// GradeAgendamentos responde GET /agendamentos?mes=&ano=: uma linha por
// cliente ativo com as preferências resumidas e a célula do mês pedido
// (pendente quando ainda não gravada). Sem parâmetros, usa o mês atual.
func (h *Handler) GradeAgendamentos(w http.ResponseWriter, r *http.Request) {
	hoje := time.Now()
	mes, ano := int(hoje.Month()), hoje.Year()
	var err error
	if v := r.URL.Query().Get("mes"); v != "" {
		if mes, err = strconv.Atoi(v); err != nil || mes < 1 || mes > 12 {
			http.Error(w, "mês/ano inválidos", http.StatusBadRequest)
			return
		}
	}
	if v := r.URL.Query().Get("ano"); v != "" {
		if ano, err = strconv.Atoi(v); err != nil {
			http.Error(w, "mês/ano inválidos", http.StatusBadRequest)
			return
		}
	}

	var ativos []cliente.Cliente
	if err := h.DB.Where("status = ?", cliente.StatusAtivo).Order("nome").Find(&ativos).Error; err != nil {
		http.Error(w, "erro ao listar clientes", http.StatusInternalServerError)
		return
	}

	var prefs []ReuniaoPreferencia
	if err := h.DB.Preload("Consultor").Find(&prefs).Error; err != nil {
		http.Error(w, "erro ao listar preferências", http.StatusInternalServerError)
		return
	}
	prefPorClienteTipo := make(map[uint]map[string]*ReuniaoPreferencia, len(prefs))
	for i := range prefs {
		p := &prefs[i]
		if prefPorClienteTipo[p.ClienteID] == nil {
			prefPorClienteTipo[p.ClienteID] = map[string]*ReuniaoPreferencia{}
		}
		prefPorClienteTipo[p.ClienteID][p.Tipo] = p
	}

	alinhamentos, err := h.Repository.AlinhamentosDoMes(mes, ano)
	if err != nil {
		http.Error(w, "erro ao listar agendamentos", http.StatusInternalServerError)
		return
	}
	fechamentos, err := h.Repository.FechamentosDoMes(mes, ano)
	if err != nil {
		http.Error(w, "erro ao listar agendamentos", http.StatusInternalServerError)
		return
	}

	resumo := func(p *ReuniaoPreferencia, c *cliente.Cliente) *preferenciaResumo {
		if p == nil {
			return nil
		}
		res := &preferenciaResumo{
			DiaSemana:   p.RotuloDiaSemana(),
			Horario:     p.RotuloHorario(),
			Local:       p.RotuloLocal(),
			Observacoes: p.Observacoes,
			Responsavel: p.ResponsavelNome,
			Duracao:     p.RotuloDuracao(),
		}
		if res.Responsavel == "" {
			res.Responsavel = c.Responsavel
		}
		if p.Consultor != nil {
			res.Consultor = p.Consultor.Nome
		}
		if p.DataSugerida != nil {
			res.DiaSugerido = strconv.Itoa(*p.DataSugerida)
		}
		return res
	}

	linhas := make([]linhaGrade, 0, len(ativos))
	for i := range ativos {
		c := &ativos[i]
		var linha linhaGrade
		linha.Cliente.ID = c.ID
		linha.Cliente.Nome = c.Nome
		linha.Cliente.QuerAlinhamento = c.QuerAlinhamento
		linha.Preferencias.Alinhamento = resumo(prefPorClienteTipo[c.ID][TipoAlinhamento], c)
		linha.Preferencias.Fechamento = resumo(prefPorClienteTipo[c.ID][TipoFechamento], c)

		linha.Agendamento.Alinhamento = celulaAgendamento{Status: StatusPendente}
		if a, ok := alinhamentos[c.ID]; ok {
			linha.Agendamento.Alinhamento = celulaAgendamento{
				Data: a.DataReuniao, Horario: a.Horario, Status: a.Status, Observacao: a.Observacao,
			}
		}
		linha.Agendamento.Fechamento = celulaAgendamento{Status: StatusPendente}
		if f, ok := fechamentos[c.ID]; ok {
			linha.Agendamento.Fechamento = celulaAgendamento{
				Data: f.DataReuniao, Horario: f.Horario, Status: f.Status, Observacao: f.Observacao,
			}
		}
		linhas = append(linhas, linha)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"mes": mes, "ano": ano, "data": linhas})
}

type salvarAgendamentoRequest struct {
	Tipo       string `json:"tipo" validate:"required,oneof=alinhamento fechamento"`
	ClienteID  uint   `json:"clienteId" validate:"required"`
	Mes        int    `json:"mes" validate:"required,min=1,max=12"`
	Ano        int    `json:"ano" validate:"required"`
	Data       string `json:"data"`
	Horario    string `json:"horario"`
	Status     string `json:"status" validate:"omitempty,oneof=PENDENTE AGENDADO REALIZADO CANCELADO"`
	Observacao string `json:"observacao"`
}

// SalvarAgendamento responde POST /agendamentos gravando a célula do
// cliente no mês (cria ou atualiza).
func (h *Handler) SalvarAgendamento(w http.ResponseWriter, r *http.Request) {
	var req salvarAgendamentoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var c cliente.Cliente
	if err := h.DB.First(&c, req.ClienteID).Error; err != nil {
		http.Error(w, "cliente não encontrado", http.StatusNotFound)
		return
	}

	var dataReuniao *time.Time
	if req.Data != "" {
		parsed, err := utils.ParseData(req.Data)
		if err != nil {
			http.Error(w, "data em formato inválido", http.StatusBadRequest)
			return
		}
		dataReuniao = parsed
	}
	status := req.Status
	if status == "" {
		status = StatusPendente
	}

	var errSalvar error
	if req.Tipo == "alinhamento" {
		errSalvar = h.Repository.SalvarAlinhamento(&AgendamentoAlinhamento{
			ClienteID: req.ClienteID, Mes: req.Mes, Ano: req.Ano,
			DataReuniao: dataReuniao, Horario: req.Horario, Status: status, Observacao: req.Observacao,
		})
	} else {
		errSalvar = h.Repository.SalvarFechamento(&AgendamentoFechamento{
			ClienteID: req.ClienteID, Mes: req.Mes, Ano: req.Ano,
			DataReuniao: dataReuniao, Horario: req.Horario, Status: status, Observacao: req.Observacao,
		})
	}
	if errSalvar != nil {
		config.LogError(config.GetLogger(), "agendamento", "SalvarAgendamento", "gravar agendamento", errSalvar)
		http.Error(w, "erro ao salvar agendamento", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}
