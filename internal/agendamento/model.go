// Package agendamento guarda as preferências de reunião de cada cliente
// e a grade mensal de agendamentos de alinhamento e fechamento.
package agendamento

import (
	"fmt"
	"time"

	"github.com/AtrioGestao/api-clientes/internal/cliente"
	"github.com/AtrioGestao/api-clientes/internal/consultor"
	"gorm.io/gorm"
)

const (
	TipoAlinhamento = "ALINHAMENTO"
	TipoFechamento  = "FECHAMENTO"
)

const (
	StatusPendente  = "PENDENTE"
	StatusAgendado  = "AGENDADO"
	StatusRealizado = "REALIZADO"
	StatusCancelado = "CANCELADO"
)

// Rótulos de exibição dos códigos armazenados; código desconhecido ou
// vazio vira string vazia.
var (
	rotulosDiaSemana = map[string]string{
		"SEGUNDA": "Segunda-feira",
		"TERCA":   "Terça-feira",
		"QUARTA":  "Quarta-feira",
		"QUINTA":  "Quinta-feira",
		"SEXTA":   "Sexta-feira",
	}
	rotulosHorario = map[string]string{
		"MANHA": "Manhã",
		"TARDE": "Tarde",
		"NOITE": "Noite",
	}
	rotulosLocal = map[string]string{
		"ESCRITORIO": "Escritório",
		"ONLINE":     "Reunião Online",
		"CLIENTE":    "No cliente",
		"OUTRO":      "Outro",
	}
)

// ReuniaoPreferencia é única por cliente e tipo: como o cliente prefere
// ser atendido nas reuniões de alinhamento ou de fechamento.
type ReuniaoPreferencia struct {
	ID              uint                 `gorm:"primaryKey" json:"id"`
	ClienteID       uint                 `gorm:"not null;uniqueIndex:idx_pref_cliente_tipo" json:"clienteId"`
	Cliente         cliente.Cliente      `gorm:"foreignKey:ClienteID;constraint:OnDelete:CASCADE" json:"-"`
	Tipo            string               `gorm:"size:15;not null;uniqueIndex:idx_pref_cliente_tipo" json:"tipo"`
	DiaPrefInicio   *int                 `json:"diaPrefInicio"`
	DiaPrefFim      *int                 `json:"diaPrefFim"`
	DiaSemanaPref   string               `gorm:"size:15" json:"diaSemanaPref"`
	HorarioPref     string               `gorm:"size:30" json:"horarioPref"`
	Local           string               `gorm:"size:30" json:"local"`
	LocalDescricao  string               `gorm:"size:255" json:"localDescricao"`
	DuracaoMinutos  *int                 `json:"duracaoMinutos"`
	DataSugerida    *int                 `json:"dataSugerida"`
	Observacoes     string               `json:"observacoes"`
	ResponsavelNome string               `gorm:"size:100" json:"responsavelNome"`
	ConsultorID     *uint                `json:"consultorId"`
	Consultor       *consultor.Consultor `gorm:"foreignKey:ConsultorID;constraint:OnDelete:SET NULL" json:"consultor,omitempty"`
	CriadoEm        time.Time            `gorm:"autoCreateTime" json:"criadoEm"`
	AtualizadoEm    time.Time            `gorm:"autoUpdateTime" json:"atualizadoEm"`
}

// RotuloDiaSemana devolve o rótulo de exibição do dia preferido.
func (p ReuniaoPreferencia) RotuloDiaSemana() string { return rotulosDiaSemana[p.DiaSemanaPref] }

func (p ReuniaoPreferencia) RotuloHorario() string { return rotulosHorario[p.HorarioPref] }

func (p ReuniaoPreferencia) RotuloLocal() string { return rotulosLocal[p.Local] }

// RotuloDuracao formata a duração como "45 min", vazio quando não há.
func (p ReuniaoPreferencia) RotuloDuracao() string {
	if p.DuracaoMinutos == nil {
		return ""
	}
	return fmt.Sprintf("%d min", *p.DuracaoMinutos)
}

// AgendamentoAlinhamento é a célula cliente × mês da grade de reuniões
// de alinhamento.
type AgendamentoAlinhamento struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	ClienteID    uint            `gorm:"not null;uniqueIndex:idx_alinhamento_cliente_mes_ano" json:"clienteId"`
	Cliente      cliente.Cliente `gorm:"foreignKey:ClienteID;constraint:OnDelete:CASCADE" json:"-"`
	Mes          int             `gorm:"not null;uniqueIndex:idx_alinhamento_cliente_mes_ano" json:"mes"`
	Ano          int             `gorm:"not null;uniqueIndex:idx_alinhamento_cliente_mes_ano" json:"ano"`
	DataReuniao  *time.Time      `json:"dataReuniao"`
	Horario      string          `gorm:"size:20" json:"horario"`
	Status       string          `gorm:"size:10;not null;default:PENDENTE" json:"status"`
	Observacao   string          `json:"observacao"`
	CriadoEm     time.Time       `gorm:"autoCreateTime" json:"criadoEm"`
	AtualizadoEm time.Time       `gorm:"autoUpdateTime" json:"atualizadoEm"`
}

// AgendamentoFechamento espelha a grade de alinhamento para as reuniões
// de fechamento; tabela separada porque os dois ciclos andam
// independentes.
type AgendamentoFechamento struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	ClienteID    uint            `gorm:"not null;uniqueIndex:idx_fechamento_cliente_mes_ano" json:"clienteId"`
	Cliente      cliente.Cliente `gorm:"foreignKey:ClienteID;constraint:OnDelete:CASCADE" json:"-"`
	Mes          int             `gorm:"not null;uniqueIndex:idx_fechamento_cliente_mes_ano" json:"mes"`
	Ano          int             `gorm:"not null;uniqueIndex:idx_fechamento_cliente_mes_ano" json:"ano"`
	DataReuniao  *time.Time      `json:"dataReuniao"`
	Horario      string          `gorm:"size:20" json:"horario"`
	Status       string          `gorm:"size:10;not null;default:PENDENTE" json:"status"`
	Observacao   string          `json:"observacao"`
	CriadoEm     time.Time       `gorm:"autoCreateTime" json:"criadoEm"`
	AtualizadoEm time.Time       `gorm:"autoUpdateTime" json:"atualizadoEm"`
}

func (ReuniaoPreferencia) TableName() string { return "reuniao_preferencias" }

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&ReuniaoPreferencia{}, &AgendamentoAlinhamento{}, &AgendamentoFechamento{})
}
