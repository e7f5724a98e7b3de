package historico

import "gorm.io/gorm"

// Repository encapsula operações de banco para HistoricoCliente
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// ListarPorCliente retorna o histórico completo do cliente, mais recente
// primeiro. Eventos do mesmo dia mantêm a ordem de inserção (id).
func (r *Repository) ListarPorCliente(clienteID uint) ([]HistoricoCliente, error) {
	var eventos []HistoricoCliente
	err := r.DB.Where("cliente_id = ?", clienteID).
		Order("data DESC, id DESC").
		Find(&eventos).Error
	return eventos, err
}

// ListarRecentes retorna os últimos eventos de todos os clientes.
func (r *Repository) ListarRecentes(limite int) ([]HistoricoCliente, error) {
	var eventos []HistoricoCliente
	err := r.DB.Order("data DESC, id DESC").Limit(limite).Find(&eventos).Error
	return eventos, err
}
