package cliente

import (
	"time"

	"github.com/AtrioGestao/api-clientes/internal/historico"
	"github.com/AtrioGestao/api-clientes/internal/motivorazao"
	"github.com/AtrioGestao/api-clientes/internal/responsavel"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Cada mutação grava o evento de auditoria, atualiza o retrato do cliente
// e registra vocabulário/cadastros em uma única transação: ou tudo entra,
// ou nada entra.

var (
	respRepo = responsavel.NewRepository()
	vocab    = motivorazao.NewRepository()
)

// Transferir muda o responsável do cliente, registrando o evento e
// propagando o novo nome para a preferência de alinhamento.
func Transferir(db *gorm.DB, c *Cliente, novoResponsavel, motivo, razao string, data time.Time) error {
	return db.Transaction(func(tx *gorm.DB) error {
		evento := historico.HistoricoCliente{
			ClienteID:         c.ID,
			Tipo:              historico.TipoTransferencia,
			Data:              data,
			Motivo:            motivo,
			Razao:             razao,
			ResponsavelAntigo: c.Responsavel,
			ResponsavelNovo:   novoResponsavel,
		}
		if err := tx.Create(&evento).Error; err != nil {
			return err
		}
		c.Responsavel = novoResponsavel
		if err := tx.Save(c).Error; err != nil {
			return err
		}
		if err := respRepo.GarantirPorNome(tx, novoResponsavel); err != nil {
			return err
		}
		// Preferência de alinhamento segue o responsável vigente; update
		// por nome de tabela para não acoplar este pacote ao de agendas.
		if err := tx.Table("reuniao_preferencias").
			Where("cliente_id = ? AND tipo = ?", c.ID, "ALINHAMENTO").
			Update("responsavel_nome", novoResponsavel).Error; err != nil {
			return err
		}
		return vocab.Registrar(tx, motivo, razao, motivorazao.TipoTransferencia)
	})
}

// RegistrarSaida inativa o cliente na data informada.
func RegistrarSaida(db *gorm.DB, c *Cliente, data time.Time, motivo, razao string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		evento := historico.HistoricoCliente{
			ClienteID:    c.ID,
			Tipo:         historico.TipoSaida,
			Data:         data,
			Motivo:       motivo,
			Razao:        razao,
			StatusAntigo: c.Status,
			StatusNovo:   StatusInativo,
		}
		if err := tx.Create(&evento).Error; err != nil {
			return err
		}
		c.Status = StatusInativo
		c.Saida = &data
		c.Motivo = motivo
		c.Razao = razao
		if err := tx.Save(c).Error; err != nil {
			return err
		}
		return vocab.Registrar(tx, motivo, razao, motivorazao.TipoRegistroDeSaida)
	})
}

// AlterarTermometro registra a mudança da nota de satisfação (1 a 5).
func AlterarTermometro(db *gorm.DB, c *Cliente, novo int, data time.Time, motivo, razao string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		antigo := c.Termometro
		evento := historico.HistoricoCliente{
			ClienteID:        c.ID,
			Tipo:             historico.TipoTermometro,
			Data:             data,
			Motivo:           motivo,
			Razao:            razao,
			TermometroAntigo: &antigo,
			TermometroNovo:   &novo,
		}
		if err := tx.Create(&evento).Error; err != nil {
			return err
		}
		c.Termometro = novo
		if err := tx.Save(c).Error; err != nil {
			return err
		}
		return vocab.Registrar(tx, motivo, razao, motivorazao.TipoAlteracaoDeTermometro)
	})
}

// AlterarValor registra a mudança de valor/permuta. Permuta força valor
// zero; sem permuta o valor precisa ser positivo.
func AlterarValor(db *gorm.DB, c *Cliente, valor decimal.Decimal, permuta bool, data time.Time, motivo, razao string) error {
	if permuta {
		valor = decimal.Zero
	} else if valor.LessThanOrEqual(decimal.Zero) {
		return ErrValorObrigatorio
	}
	return db.Transaction(func(tx *gorm.DB) error {
		valorAntigo := c.Valor
		permutaAntiga := c.Permuta
		evento := historico.HistoricoCliente{
			ClienteID:     c.ID,
			Tipo:          historico.TipoValor,
			Data:          data,
			Motivo:        motivo,
			Razao:         razao,
			ValorAntigo:   &valorAntigo,
			ValorNovo:     &valor,
			PermutaAntiga: &permutaAntiga,
			PermutaNova:   &permuta,
		}
		if err := tx.Create(&evento).Error; err != nil {
			return err
		}
		c.Valor = valor
		c.Permuta = permuta
		if err := tx.Save(c).Error; err != nil {
			return err
		}
		return vocab.Registrar(tx, motivo, razao, motivorazao.TipoAlteracaoDeValor)
	})
}

// LimparBanco remove todos os registros operacionais em uma transação;
// usado apenas pelo reset administrativo completo.
func LimparBanco(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&historico.HistoricoCliente{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&Cliente{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&responsavel.Responsavel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&motivorazao.Razao{}).Error; err != nil {
			return err
		}
		return tx.Where("1 = 1").Delete(&motivorazao.Motivo{}).Error
	})
}
