package agendamento

import (
	"errors"

	"gorm.io/gorm"
)

// Repository encapsula operações de banco para preferências e grade
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// BuscarPreferencia devolve a preferência do cliente para o tipo, ou
// nil quando ainda não foi cadastrada.
func (r *Repository) BuscarPreferencia(clienteID uint, tipo string) (*ReuniaoPreferencia, error) {
	var pref ReuniaoPreferencia
	err := r.DB.Preload("Consultor").
		Where("cliente_id = ? AND tipo = ?", clienteID, tipo).
		First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pref, nil
}

// SalvarPreferencia grava a preferência respeitando a unicidade por
// cliente e tipo: atualiza a existente ou cria uma nova.
func (r *Repository) SalvarPreferencia(pref *ReuniaoPreferencia) error {
	var existente ReuniaoPreferencia
	err := r.DB.Where("cliente_id = ? AND tipo = ?", pref.ClienteID, pref.Tipo).
		First(&existente).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return r.DB.Create(pref).Error
	}
	pref.ID = existente.ID
	pref.CriadoEm = existente.CriadoEm
	return r.DB.Save(pref).Error
}

// ListarPreferenciasPorTipo carrega todas as preferências de um tipo com
// cliente e consultor, em ordem alfabética de cliente.
func (r *Repository) ListarPreferenciasPorTipo(tipo string) ([]ReuniaoPreferencia, error) {
	var prefs []ReuniaoPreferencia
	err := r.DB.Preload("Cliente").Preload("Consultor").
		Joins("JOIN clientes ON clientes.id = reuniao_preferencias.cliente_id").
		Where("reuniao_preferencias.tipo = ?", tipo).
		Order("clientes.nome").
		Find(&prefs).Error
	return prefs, err
}

// AlinhamentosDoMes indexa por cliente os agendamentos de alinhamento já
// gravados para o mês.
func (r *Repository) AlinhamentosDoMes(mes, ano int) (map[uint]AgendamentoAlinhamento, error) {
	var lista []AgendamentoAlinhamento
	if err := r.DB.Where("mes = ? AND ano = ?", mes, ano).Find(&lista).Error; err != nil {
		return nil, err
	}
	porCliente := make(map[uint]AgendamentoAlinhamento, len(lista))
	for _, a := range lista {
		porCliente[a.ClienteID] = a
	}
	return porCliente, nil
}

func (r *Repository) FechamentosDoMes(mes, ano int) (map[uint]AgendamentoFechamento, error) {
	var lista []AgendamentoFechamento
	if err := r.DB.Where("mes = ? AND ano = ?", mes, ano).Find(&lista).Error; err != nil {
		return nil, err
	}
	porCliente := make(map[uint]AgendamentoFechamento, len(lista))
	for _, f := range lista {
		porCliente[f.ClienteID] = f
	}
	return porCliente, nil
}

// SalvarAlinhamento grava a célula do cliente no mês: atualiza a
// existente ou cria uma nova.
func (r *Repository) SalvarAlinhamento(a *AgendamentoAlinhamento) error {
	var existente AgendamentoAlinhamento
	err := r.DB.Where("cliente_id = ? AND mes = ? AND ano = ?", a.ClienteID, a.Mes, a.Ano).
		First(&existente).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return r.DB.Create(a).Error
	}
	a.ID = existente.ID
	a.CriadoEm = existente.CriadoEm
	return r.DB.Save(a).Error
}

func (r *Repository) SalvarFechamento(f *AgendamentoFechamento) error {
	var existente AgendamentoFechamento
	err := r.DB.Where("cliente_id = ? AND mes = ? AND ano = ?", f.ClienteID, f.Mes, f.Ano).
		First(&existente).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return r.DB.Create(f).Error
	}
	f.ID = existente.ID
	f.CriadoEm = existente.CriadoEm
	return r.DB.Save(f).Error
}
