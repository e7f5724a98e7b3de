package motivorazao

import (
	"strings"

	"gorm.io/gorm"
)

// Repository encapsula operações de banco para o vocabulário motivo/razão
type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

// GarantirMotivo devolve o motivo com o nome dado, criando-o se preciso.
// Nome vazio devolve nil sem erro.
func (r *Repository) GarantirMotivo(db *gorm.DB, nome string) (*Motivo, error) {
	nome = strings.TrimSpace(nome)
	if nome == "" {
		return nil, nil
	}
	var motivo Motivo
	err := db.Where(Motivo{Nome: nome}).FirstOrCreate(&motivo, Motivo{Nome: nome}).Error
	if err != nil {
		return nil, err
	}
	return &motivo, nil
}

// GarantirRazao registra a razão sob (nome, tipo). Sem motivo informado,
// cria um motivo homônimo à razão. Uma razão existente apontando para
// outro motivo é redirecionada.
func (r *Repository) GarantirRazao(db *gorm.DB, nome, tipo string, motivo *Motivo) error {
	nome = strings.TrimSpace(nome)
	if nome == "" {
		return nil
	}
	if motivo == nil {
		var err error
		motivo, err = r.GarantirMotivo(db, nome)
		if err != nil || motivo == nil {
			return err
		}
	}
	var razao Razao
	err := db.Where(Razao{Nome: nome, TipoDeHistorico: tipo}).
		Attrs(Razao{MotivoID: motivo.ID}).
		FirstOrCreate(&razao).Error
	if err != nil {
		return err
	}
	if razao.MotivoID != motivo.ID {
		return db.Model(&razao).Update("motivo_id", motivo.ID).Error
	}
	return nil
}

// Registrar é o get-or-create idempotente disparado dentro da transação
// de cada mutação: o vocabulário cresce conforme é usado.
func (r *Repository) Registrar(db *gorm.DB, motivoNome, razaoNome, tipo string) error {
	motivo, err := r.GarantirMotivo(db, motivoNome)
	if err != nil {
		return err
	}
	if strings.TrimSpace(razaoNome) != "" && tipo != "" {
		return r.GarantirRazao(db, razaoNome, tipo, motivo)
	}
	return nil
}

func (r *Repository) ListarMotivos(db *gorm.DB) ([]Motivo, error) {
	var motivos []Motivo
	err := db.Order("nome").Find(&motivos).Error
	return motivos, err
}

func (r *Repository) ListarRazoes(db *gorm.DB) ([]Razao, error) {
	var razoes []Razao
	err := db.Order("nome").Find(&razoes).Error
	return razoes, err
}

// ListarRazoesPorTipo retorna os nomes de razão válidos para um tipo.
func (r *Repository) ListarRazoesPorTipo(db *gorm.DB, tipo string) ([]string, error) {
	var nomes []string
	err := db.Model(&Razao{}).Where("tipo_de_historico = ?", tipo).Order("nome").Pluck("nome", &nomes).Error
	return nomes, err
}
