package responsavel

import (
	"strings"

	"gorm.io/gorm"
)

// Repository encapsula operações de banco para Responsavel
type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

// GarantirPorNome cria o responsável caso ainda não exista (idempotente).
func (r *Repository) GarantirPorNome(db *gorm.DB, nome string) error {
	nome = strings.TrimSpace(nome)
	if nome == "" {
		return nil
	}
	return db.Where(Responsavel{Nome: nome}).FirstOrCreate(&Responsavel{Nome: nome, Ativo: true}).Error
}

// AtualizarOuCriar grava email e ativo para o nome, criando se preciso.
func (r *Repository) AtualizarOuCriar(db *gorm.DB, nome, email string, ativo bool) error {
	var existente Responsavel
	err := db.Where("nome = ?", nome).First(&existente).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return err
		}
		return db.Create(&Responsavel{Nome: nome, Email: email, Ativo: ativo}).Error
	}
	existente.Email = email
	existente.Ativo = ativo
	return db.Save(&existente).Error
}

func (r *Repository) ListarTodos(db *gorm.DB) ([]Responsavel, error) {
	var lista []Responsavel
	err := db.Order("nome").Find(&lista).Error
	return lista, err
}

// ListarNomes retorna apenas os nomes, em ordem alfabética.
func (r *Repository) ListarNomes(db *gorm.DB) ([]string, error) {
	var nomes []string
	err := db.Model(&Responsavel{}).Order("nome").Pluck("nome", &nomes).Error
	return nomes, err
}

func (r *Repository) BuscarPorID(db *gorm.DB, id uint) (*Responsavel, error) {
	var resp Responsavel
	err := db.First(&resp, id).Error
	return &resp, err
}

func (r *Repository) Salvar(db *gorm.DB, resp *Responsavel) error {
	return db.Save(resp).Error
}

func (r *Repository) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Responsavel{}, id).Error
}

func (r *Repository) Contar(db *gorm.DB) (int64, error) {
	var total int64
	err := db.Model(&Responsavel{}).Count(&total).Error
	return total, err
}
