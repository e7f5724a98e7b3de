package agendamento

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AtrioGestao/api-clientes/internal/cliente"
	"gorm.io/gorm"
)

const (
	MensagemCadastreAlinhamento = "Cadastre Preferencias de Alinhamento"
	MensagemCadastreFechamento  = "Cadastre Preferencias de Fechamento"
)

// ItemReuniao é uma linha das listas de reuniões: uma preferência já
// cadastrada, ou um placeholder para cliente ativo que ainda não tem.
type ItemReuniao struct {
	Cliente     cliente.Cliente     `json:"cliente"`
	Preferencia *ReuniaoPreferencia `json:"preferencia"`
	Placeholder bool                `json:"placeholder"`
	Mensagem    string              `json:"mensagem,omitempty"`
}

// ListasReunioes agrupa as duas listas exibidas (e exportadas) juntas.
type ListasReunioes struct {
	Alinhamentos []ItemReuniao `json:"alinhamentos"`
	Fechamentos  []ItemReuniao `json:"fechamentos"`
}

// MontarListasReunioes junta preferências cadastradas com placeholders:
// na lista de alinhamento entram os clientes ativos que querem
// alinhamento e ainda não têm preferência; na de fechamento, todos os
// clientes ativos sem preferência. Ambas saem em ordem alfabética de
// cliente (sem diferenciar maiúsculas).
func MontarListasReunioes(db *gorm.DB) (*ListasReunioes, error) {
	repo := NewRepository(db)

	prefsAlinhamento, err := repo.ListarPreferenciasPorTipo(TipoAlinhamento)
	if err != nil {
		return nil, err
	}
	prefsFechamento, err := repo.ListarPreferenciasPorTipo(TipoFechamento)
	if err != nil {
		return nil, err
	}

	var ativos []cliente.Cliente
	if err := db.Where("status = ?", cliente.StatusAtivo).Find(&ativos).Error; err != nil {
		return nil, err
	}

	montar := func(prefs []ReuniaoPreferencia, candidatos []cliente.Cliente, mensagem string) []ItemReuniao {
		comPreferencia := make(map[uint]bool, len(prefs))
		itens := make([]ItemReuniao, 0, len(prefs)+len(candidatos))
		for i := range prefs {
			comPreferencia[prefs[i].ClienteID] = true
			itens = append(itens, ItemReuniao{Cliente: prefs[i].Cliente, Preferencia: &prefs[i]})
		}
		for _, c := range candidatos {
			if comPreferencia[c.ID] {
				continue
			}
			itens = append(itens, ItemReuniao{Cliente: c, Placeholder: true, Mensagem: mensagem})
		}
		sort.SliceStable(itens, func(i, j int) bool {
			return strings.ToLower(itens[i].Cliente.Nome) < strings.ToLower(itens[j].Cliente.Nome)
		})
		return itens
	}

	querAlinhamento := make([]cliente.Cliente, 0, len(ativos))
	for _, c := range ativos {
		if c.QuerAlinhamento {
			querAlinhamento = append(querAlinhamento, c)
		}
	}

	return &ListasReunioes{
		Alinhamentos: montar(prefsAlinhamento, querAlinhamento, MensagemCadastreAlinhamento),
		Fechamentos:  montar(prefsFechamento, ativos, MensagemCadastreFechamento),
	}, nil
}

// RotuloPeriodo formata a janela de dias preferida ("5 à 10", "5" ou
// "—"), como aparece na listagem e na planilha exportada.
func (p ReuniaoPreferencia) RotuloPeriodo() string {
	if p.DiaPrefInicio != nil && p.DiaPrefFim != nil {
		return fmt.Sprintf("%d à %d", *p.DiaPrefInicio, *p.DiaPrefFim)
	}
	if p.DiaPrefInicio != nil {
		return fmt.Sprintf("%d", *p.DiaPrefInicio)
	}
	return "—"
}
