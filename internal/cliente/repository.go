package cliente

import (
	"strconv"
	"strings"

	"github.com/AtrioGestao/api-clientes/internal/utils"
	"gorm.io/gorm"
)

// Filtros de listagem; todos os campos chegam como texto de querystring e
// valores malformados são simplesmente ignorados.
type Filtros struct {
	Nome        string
	Responsavel string
	Status      string
	Termometro  string
	DataTipo    string
	DataInicio  string
	DataFim     string
	ValorMin    string
	ValorMax    string
}

type Repository interface {
	Salvar(db *gorm.DB, c *Cliente) error
	BuscarPorID(db *gorm.DB, id uint) (*Cliente, error)
	ListarTodos(db *gorm.DB) ([]Cliente, error)
	ListarComFiltros(db *gorm.DB, f Filtros) ([]Cliente, error)
	Deletar(db *gorm.DB, id uint) error
	ContarPorStatus(db *gorm.DB, status string) (int64, error)
	Contar(db *gorm.DB) (int64, error)
	SomarValorPorStatus(db *gorm.DB, status string) (float64, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, c *Cliente) error {
	return db.Save(c).Error
}

// BuscarPorID carrega o cliente com o histórico completo
func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Cliente, error) {
	var c Cliente
	err := db.Preload("Historico").First(&c, id).Error
	return &c, err
}

// ListarTodos carrega todos os clientes com histórico, para o relatório
func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Cliente, error) {
	var clientes []Cliente
	err := db.Preload("Historico").Order("entrada DESC, nome").Find(&clientes).Error
	return clientes, err
}

func (r *repositoryImpl) ListarComFiltros(db *gorm.DB, f Filtros) ([]Cliente, error) {
	consulta := db.Model(&Cliente{})

	if f.Nome != "" {
		consulta = consulta.Where("LOWER(nome) LIKE ?", "%"+strings.ToLower(f.Nome)+"%")
	}
	if f.Responsavel != "" {
		consulta = consulta.Where("LOWER(responsavel) LIKE ?", "%"+strings.ToLower(f.Responsavel)+"%")
	}
	if f.Status == StatusAtivo || f.Status == StatusInativo {
		consulta = consulta.Where("status = ?", f.Status)
	}
	if termometro, err := strconv.Atoi(f.Termometro); err == nil {
		consulta = consulta.Where("termometro = ?", termometro)
	}
	if f.DataTipo == "entrada" || f.DataTipo == "saida" {
		if inicio, err := utils.ParseData(f.DataInicio); err == nil && inicio != nil {
			consulta = consulta.Where(f.DataTipo+" >= ?", *inicio)
		}
		if fim, err := utils.ParseData(f.DataFim); err == nil && fim != nil {
			consulta = consulta.Where(f.DataTipo+" <= ?", *fim)
		}
	}
	if strings.TrimSpace(f.ValorMin) != "" {
		if minimo, err := utils.ParseDecimal(f.ValorMin); err == nil {
			consulta = consulta.Where("valor >= ?", minimo)
		}
	}
	if strings.TrimSpace(f.ValorMax) != "" {
		if maximo, err := utils.ParseDecimal(f.ValorMax); err == nil {
			consulta = consulta.Where("valor <= ?", maximo)
		}
	}

	var clientes []Cliente
	err := consulta.Order("nome").Find(&clientes).Error
	return clientes, err
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Select("Historico").Delete(&Cliente{ID: id}).Error
}

func (r *repositoryImpl) Contar(db *gorm.DB) (int64, error) {
	var total int64
	err := db.Model(&Cliente{}).Count(&total).Error
	return total, err
}

func (r *repositoryImpl) ContarPorStatus(db *gorm.DB, status string) (int64, error) {
	var total int64
	err := db.Model(&Cliente{}).Where("status = ?", status).Count(&total).Error
	return total, err
}

func (r *repositoryImpl) SomarValorPorStatus(db *gorm.DB, status string) (float64, error) {
	var total float64
	err := db.Model(&Cliente{}).Where("status = ?", status).
		Select("COALESCE(SUM(valor), 0)").Scan(&total).Error
	return total, err
}
