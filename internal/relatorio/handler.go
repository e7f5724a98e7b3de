package relatorio

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/AtrioGestao/api-clientes/internal/cliente"
	"github.com/AtrioGestao/api-clientes/internal/config"
	"github.com/AtrioGestao/api-clientes/internal/historico"
	"github.com/AtrioGestao/api-clientes/internal/responsavel"
	"gorm.io/gorm"
)

// Handler monta o painel gerencial a partir do banco.
type Handler struct {
	DB           *gorm.DB
	Clientes     cliente.Repository
	Historico    *historico.Repository
	Responsaveis *responsavel.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:           db,
		Clientes:     cliente.NewRepository(),
		Historico:    historico.NewRepository(db),
		Responsaveis: responsavel.NewRepository(),
	}
}

type estatisticas struct {
	TotalClientes    int64   `json:"totalClientes"`
	ClientesAtivos   int64   `json:"clientesAtivos"`
	ClientesInativos int64   `json:"clientesInativos"`
	ReceitaAtiva     float64 `json:"receitaAtiva"`
	Responsaveis     int64   `json:"responsaveis"`
}

type eventoRecente struct {
	ID        uint      `json:"id"`
	ClienteID uint      `json:"clienteId"`
	Cliente   string    `json:"cliente"`
	Tipo      string    `json:"tipo"`
	Data      time.Time `json:"data"`
	Descricao string    `json:"descricao"`
}

// Dashboard responde GET /dashboard: estatísticas, relatórios por
// operador recortados na janela mes_inicio/mes_fim (ausente = eixo
// completo) e os gráficos prontos para o front.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	logger := config.GetLogger()

	clientes, err := h.Clientes.ListarTodos(h.DB)
	if err != nil {
		config.LogError(logger, "relatorio", "Dashboard", "listar clientes", err)
		http.Error(w, "erro ao listar clientes", http.StatusInternalServerError)
		return
	}

	rel := MontarRelatorios(clientes, time.Now())

	mesesVisiveis := rel.Meses
	inicio := r.URL.Query().Get("mes_inicio")
	fim := r.URL.Query().Get("mes_fim")
	if inicio != "" || fim != "" {
		if inicio == "" && len(rel.Meses) > 0 {
			inicio = rel.Meses[0]
		}
		if fim == "" && len(rel.Meses) > 0 {
			fim = rel.Meses[len(rel.Meses)-1]
		}
		intervalo, err := IntervaloMeses(inicio, fim)
		if err != nil {
			http.Error(w, "mês em formato inválido, use AAAA-MM", http.StatusBadRequest)
			return
		}
		mesesVisiveis = intervalo
	}

	quantidade := FiltrarRelatorioQuantidade(rel.Quantidade, mesesVisiveis)
	valor := FiltrarRelatorioValor(rel.Valor, mesesVisiveis)
	recebimentos := FiltrarRecebimentos(rel.Recebimentos, mesesVisiveis)

	stats, err := h.montarEstatisticas()
	if err != nil {
		config.LogError(logger, "relatorio", "Dashboard", "estatísticas", err)
		http.Error(w, "erro ao calcular estatísticas", http.StatusInternalServerError)
		return
	}

	recentes, err := h.montarRecentes(clientes)
	if err != nil {
		config.LogError(logger, "relatorio", "Dashboard", "histórico recente", err)
		http.Error(w, "erro ao listar histórico", http.StatusInternalServerError)
		return
	}

	resposta := map[string]any{
		"estatisticas":        stats,
		"meses":               mesesVisiveis,
		"totaisOperadores":    rel.TotaisOperadores,
		"receitaMensal":       rel.ReceitaMensal,
		"relatorioQuantidade": quantidade,
		"relatorioValor":      valor,
		"relatorioCombinado":  CombinarRelatorios(quantidade, valor, mesesVisiveis),
		"fluxoRecebimentos":   recebimentos,
		"graficoQuantidade":   GraficoQuantidade(quantidade),
		"graficoValor":        GraficoValor(valor),
		"historicoRecente":    recentes,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resposta)
}

func (h *Handler) montarEstatisticas() (*estatisticas, error) {
	total, err := h.Clientes.Contar(h.DB)
	if err != nil {
		return nil, err
	}
	ativos, err := h.Clientes.ContarPorStatus(h.DB, cliente.StatusAtivo)
	if err != nil {
		return nil, err
	}
	inativos, err := h.Clientes.ContarPorStatus(h.DB, cliente.StatusInativo)
	if err != nil {
		return nil, err
	}
	receita, err := h.Clientes.SomarValorPorStatus(h.DB, cliente.StatusAtivo)
	if err != nil {
		return nil, err
	}
	responsaveis, err := h.Responsaveis.Contar(h.DB)
	if err != nil {
		return nil, err
	}
	return &estatisticas{
		TotalClientes:    total,
		ClientesAtivos:   ativos,
		ClientesInativos: inativos,
		ReceitaAtiva:     receita,
		Responsaveis:     responsaveis,
	}, nil
}

// montarRecentes devolve os dez últimos eventos de histórico com o nome
// do cliente resolvido.
func (h *Handler) montarRecentes(clientes []cliente.Cliente) ([]eventoRecente, error) {
	eventos, err := h.Historico.ListarRecentes(10)
	if err != nil {
		return nil, err
	}
	nomePorID := make(map[uint]string, len(clientes))
	for i := range clientes {
		nomePorID[clientes[i].ID] = clientes[i].Nome
	}
	recentes := make([]eventoRecente, 0, len(eventos))
	for _, ev := range eventos {
		recentes = append(recentes, eventoRecente{
			ID:        ev.ID,
			ClienteID: ev.ClienteID,
			Cliente:   nomePorID[ev.ClienteID],
			Tipo:      ev.Tipo,
			Data:      ev.Data,
			Descricao: ev.DescricaoAlteracao(),
		})
	}
	return recentes, nil
}
