package agendamento_test

import (
	"testing"
	"time"

	"github.com/AtrioGestao/api-clientes/internal/agendamento"
	"github.com/AtrioGestao/api-clientes/internal/cliente"
	"github.com/AtrioGestao/api-clientes/internal/consultor"
	"github.com/AtrioGestao/api-clientes/internal/historico"
	"github.com/AtrioGestao/api-clientes/internal/motivorazao"
	"github.com/AtrioGestao/api-clientes/internal/responsavel"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func bancoDeTeste(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("abrir sqlite: %v", err)
	}
	for _, fn := range []func(*gorm.DB) error{
		responsavel.Migrate,
		consultor.Migrate,
		motivorazao.Migrate,
		cliente.Migrate,
		historico.Migrate,
		agendamento.Migrate,
	} {
		if err := fn(db); err != nil {
			t.Fatalf("migrar: %v", err)
		}
	}
	return db
}

func criarCliente(t *testing.T, db *gorm.DB, nome string, querAlinhamento bool, status string) cliente.Cliente {
	t.Helper()
	c := cliente.Cliente{
		Nome:            nome,
		Responsavel:     "Alice",
		QuerAlinhamento: querAlinhamento,
		Status:          status,
		Entrada:         time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		Valor:           decimal.NewFromInt(100),
		Termometro:      3,
	}
	if err := db.Create(&c).Error; err != nil {
		t.Fatalf("criar cliente %s: %v", nome, err)
	}
	return c
}

func TestMontarListasReunioes(t *testing.T) {
	db := bancoDeTeste(t)

	acme := criarCliente(t, db, "acme", true, cliente.StatusAtivo)
	beta := criarCliente(t, db, "Beta", false, cliente.StatusAtivo)
	criarCliente(t, db, "Zumbi", true, cliente.StatusInativo)

	repo := agendamento.NewRepository(db)
	inicio, fim := 5, 10
	if err := repo.SalvarPreferencia(&agendamento.ReuniaoPreferencia{
		ClienteID:       acme.ID,
		Tipo:            agendamento.TipoAlinhamento,
		DiaPrefInicio:   &inicio,
		DiaPrefFim:      &fim,
		DiaSemanaPref:   "SEGUNDA",
		ResponsavelNome: "Alice",
	}); err != nil {
		t.Fatalf("salvar preferência: %v", err)
	}

	listas, err := agendamento.MontarListasReunioes(db)
	if err != nil {
		t.Fatalf("MontarListasReunioes: %v", err)
	}

	// alinhamento: só clientes ativos que querem alinhamento
	if len(listas.Alinhamentos) != 1 {
		t.Fatalf("esperava 1 item de alinhamento, veio %d", len(listas.Alinhamentos))
	}
	item := listas.Alinhamentos[0]
	if item.Cliente.ID != acme.ID || item.Placeholder || item.Preferencia == nil {
		t.Fatalf("item de alinhamento errado: %+v", item)
	}
	if item.Preferencia.RotuloPeriodo() != "5 à 10" {
		t.Fatalf("período: %s", item.Preferencia.RotuloPeriodo())
	}

	// fechamento: todos os ativos, placeholders em ordem alfabética
	// ignorando maiúsculas
	if len(listas.Fechamentos) != 2 {
		t.Fatalf("esperava 2 itens de fechamento, veio %d", len(listas.Fechamentos))
	}
	if listas.Fechamentos[0].Cliente.ID != acme.ID || listas.Fechamentos[1].Cliente.ID != beta.ID {
		t.Fatalf("ordem errada: %s antes de %s",
			listas.Fechamentos[0].Cliente.Nome, listas.Fechamentos[1].Cliente.Nome)
	}
	for _, f := range listas.Fechamentos {
		if !f.Placeholder || f.Mensagem != agendamento.MensagemCadastreFechamento {
			t.Fatalf("fechamento deveria ser placeholder: %+v", f)
		}
	}
}

func TestSalvarPreferenciaAtualizaExistente(t *testing.T) {
	db := bancoDeTeste(t)
	c := criarCliente(t, db, "Acme", true, cliente.StatusAtivo)
	repo := agendamento.NewRepository(db)

	primeira := agendamento.ReuniaoPreferencia{
		ClienteID:     c.ID,
		Tipo:          agendamento.TipoAlinhamento,
		DiaSemanaPref: "SEGUNDA",
	}
	if err := repo.SalvarPreferencia(&primeira); err != nil {
		t.Fatalf("primeira gravação: %v", err)
	}

	segunda := agendamento.ReuniaoPreferencia{
		ClienteID:     c.ID,
		Tipo:          agendamento.TipoAlinhamento,
		DiaSemanaPref: "QUARTA",
	}
	if err := repo.SalvarPreferencia(&segunda); err != nil {
		t.Fatalf("segunda gravação: %v", err)
	}
	if segunda.ID != primeira.ID {
		t.Fatalf("deveria reaproveitar o registro %d, criou %d", primeira.ID, segunda.ID)
	}

	var total int64
	db.Model(&agendamento.ReuniaoPreferencia{}).Count(&total)
	if total != 1 {
		t.Fatalf("esperava 1 preferência, veio %d", total)
	}

	pref, err := repo.BuscarPreferencia(c.ID, agendamento.TipoAlinhamento)
	if err != nil {
		t.Fatalf("buscar: %v", err)
	}
	if pref == nil || pref.DiaSemanaPref != "QUARTA" {
		t.Fatalf("preferência não atualizada: %+v", pref)
	}

	// tipos são independentes
	outra, err := repo.BuscarPreferencia(c.ID, agendamento.TipoFechamento)
	if err != nil {
		t.Fatalf("buscar fechamento: %v", err)
	}
	if outra != nil {
		t.Fatalf("fechamento não deveria existir: %+v", outra)
	}
}

func TestSalvarAlinhamentoUnicoPorMes(t *testing.T) {
	db := bancoDeTeste(t)
	c := criarCliente(t, db, "Acme", true, cliente.StatusAtivo)
	repo := agendamento.NewRepository(db)

	data := time.Date(2024, 5, 8, 0, 0, 0, 0, time.UTC)
	if err := repo.SalvarAlinhamento(&agendamento.AgendamentoAlinhamento{
		ClienteID:   c.ID,
		Mes:         5,
		Ano:         2024,
		DataReuniao: &data,
		Status:      agendamento.StatusAgendado,
	}); err != nil {
		t.Fatalf("salvar: %v", err)
	}
	if err := repo.SalvarAlinhamento(&agendamento.AgendamentoAlinhamento{
		ClienteID: c.ID,
		Mes:       5,
		Ano:       2024,
		Status:    agendamento.StatusRealizado,
	}); err != nil {
		t.Fatalf("regravar: %v", err)
	}

	porCliente, err := repo.AlinhamentosDoMes(5, 2024)
	if err != nil {
		t.Fatalf("AlinhamentosDoMes: %v", err)
	}
	if len(porCliente) != 1 {
		t.Fatalf("esperava 1 agendamento, veio %d", len(porCliente))
	}
	if porCliente[c.ID].Status != agendamento.StatusRealizado {
		t.Fatalf("status: %s", porCliente[c.ID].Status)
	}

	// outro mês fica vazio
	vazio, err := repo.AlinhamentosDoMes(6, 2024)
	if err != nil {
		t.Fatalf("AlinhamentosDoMes: %v", err)
	}
	if len(vazio) != 0 {
		t.Fatalf("junho deveria estar vazio: %v", vazio)
	}
}

func TestListarPreferenciasCarregaCliente(t *testing.T) {
	db := bancoDeTeste(t)
	c := criarCliente(t, db, "Acme", false, cliente.StatusAtivo)
	repo := agendamento.NewRepository(db)

	if err := repo.SalvarPreferencia(&agendamento.ReuniaoPreferencia{
		ClienteID: c.ID,
		Tipo:      agendamento.TipoFechamento,
	}); err != nil {
		t.Fatalf("salvar: %v", err)
	}

	prefs, err := repo.ListarPreferenciasPorTipo(agendamento.TipoFechamento)
	if err != nil {
		t.Fatalf("listar: %v", err)
	}
	if len(prefs) != 1 || prefs[0].Cliente.Nome != "Acme" {
		t.Fatalf("preferência sem cliente carregado: %+v", prefs)
	}
}
