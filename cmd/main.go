package main

import (
	"net/http"
	"os"

	"github.com/AtrioGestao/api-clientes/internal/agendamento"
	"github.com/AtrioGestao/api-clientes/internal/auth"
	"github.com/AtrioGestao/api-clientes/internal/cliente"
	"github.com/AtrioGestao/api-clientes/internal/config"
	"github.com/AtrioGestao/api-clientes/internal/consultor"
	"github.com/AtrioGestao/api-clientes/internal/historico"
	"github.com/AtrioGestao/api-clientes/internal/motivorazao"
	"github.com/AtrioGestao/api-clientes/internal/planilha"
	"github.com/AtrioGestao/api-clientes/internal/relatorio"
	"github.com/AtrioGestao/api-clientes/internal/responsavel"
	"github.com/AtrioGestao/api-clientes/internal/usuario"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"gorm.io/gorm"
)

func migrar(db *gorm.DB) error {
	for _, fn := range []func(*gorm.DB) error{
		responsavel.Migrate,
		consultor.Migrate,
		motivorazao.Migrate,
		cliente.Migrate,
		historico.Migrate,
		agendamento.Migrate,
		usuario.Migrate,
	} {
		if err := fn(db); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	_ = godotenv.Load()
	logger := config.GetLogger()

	db, err := config.ConectarBanco()
	if err != nil {
		logger.WithError(err).Fatal("erro ao conectar no banco")
	}

	if err := migrar(db); err != nil {
		logger.WithError(err).Fatal("erro no AutoMigrate")
	}

	// Handlers
	clienteHandler := cliente.NewHandler(db)
	responsavelHandler := responsavel.NewHandler(db)
	consultorHandler := consultor.NewHandler(db)
	motivoRazaoHandler := motivorazao.NewHandler(db)
	relatorioHandler := relatorio.NewHandler(db)
	agendamentoHandler := agendamento.NewHandler(db)
	planilhaHandler := planilha.NewHandler(db)
	usuarioHandler := usuario.NewHandler(db)

	// Router
	r := mux.NewRouter()

	// Rotas públicas
	r.HandleFunc("/login", usuarioHandler.Login).Methods("POST")

	// Rotas autenticadas (qualquer perfil)
	autenticado := r.NewRoute().Subrouter()
	autenticado.Use(auth.MiddlewareAutenticacao)
	autenticado.HandleFunc("/me", usuarioHandler.Me).Methods("GET")
	autenticado.HandleFunc("/reunioes", agendamentoHandler.ListarReunioes).Methods("GET")
	autenticado.HandleFunc("/agendamentos", agendamentoHandler.GradeAgendamentos).Methods("GET")
	autenticado.HandleFunc("/agendamentos", agendamentoHandler.SalvarAgendamento).Methods("POST")

	// Rotas administrativas
	admin := autenticado.NewRoute().Subrouter()
	admin.Use(auth.RequireAdmin)

	// Clientes
	admin.HandleFunc("/clientes", clienteHandler.CriarCliente).Methods("POST")
	admin.HandleFunc("/clientes", clienteHandler.ListarClientes).Methods("GET")
	admin.HandleFunc("/clientes/importar", planilhaHandler.ImportarClientes).Methods("POST")
	admin.HandleFunc("/clientes/exportar", planilhaHandler.ExportarClientes).Methods("GET")
	admin.HandleFunc("/clientes/{id}", clienteHandler.BuscarPorID).Methods("GET")
	admin.HandleFunc("/clientes/{id}", clienteHandler.AtualizarCliente).Methods("PUT")
	admin.HandleFunc("/clientes/{id}", clienteHandler.DeletarCliente).Methods("DELETE")
	admin.HandleFunc("/clientes/{id}/transferir", clienteHandler.Transferir).Methods("POST")
	admin.HandleFunc("/clientes/{id}/saida", clienteHandler.RegistrarSaida).Methods("POST")
	admin.HandleFunc("/clientes/{id}/termometro", clienteHandler.AlterarTermometro).Methods("POST")
	admin.HandleFunc("/clientes/{id}/valor", clienteHandler.AlterarValor).Methods("POST")
	admin.HandleFunc("/clientes/{id}/preferencias", agendamentoHandler.SalvarPreferencia).Methods("PUT")

	// Responsáveis
	admin.HandleFunc("/responsaveis", responsavelHandler.CriarResponsavel).Methods("POST")
	admin.HandleFunc("/responsaveis", responsavelHandler.ListarResponsaveis).Methods("GET")
	admin.HandleFunc("/responsaveis/importar", planilhaHandler.ImportarResponsaveis).Methods("POST")
	admin.HandleFunc("/responsaveis/{id}", responsavelHandler.AtualizarResponsavel).Methods("PUT")
	admin.HandleFunc("/responsaveis/{id}", responsavelHandler.DeletarResponsavel).Methods("DELETE")

	// Consultores
	admin.HandleFunc("/consultores", consultorHandler.CriarConsultor).Methods("POST")
	admin.HandleFunc("/consultores", consultorHandler.ListarConsultores).Methods("GET")
	admin.HandleFunc("/consultores/{id}", consultorHandler.AtualizarConsultor).Methods("PUT")
	admin.HandleFunc("/consultores/{id}", consultorHandler.DeletarConsultor).Methods("DELETE")

	// Motivos e razões
	admin.HandleFunc("/motivos-razoes", motivoRazaoHandler.Listar).Methods("GET")
	admin.HandleFunc("/motivos-razoes/importar", planilhaHandler.ImportarMotivosRazoes).Methods("POST")
	admin.HandleFunc("/motivos", motivoRazaoHandler.CriarMotivo).Methods("POST")
	admin.HandleFunc("/motivos/{id}", motivoRazaoHandler.AtualizarMotivo).Methods("PUT")
	admin.HandleFunc("/motivos/{id}", motivoRazaoHandler.DeletarMotivo).Methods("DELETE")
	admin.HandleFunc("/razoes", motivoRazaoHandler.CriarRazao).Methods("POST")
	admin.HandleFunc("/razoes/{id}", motivoRazaoHandler.AtualizarRazao).Methods("PUT")
	admin.HandleFunc("/razoes/{id}", motivoRazaoHandler.DeletarRazao).Methods("DELETE")

	// Painel e reuniões
	admin.HandleFunc("/dashboard", relatorioHandler.Dashboard).Methods("GET")
	admin.HandleFunc("/reunioes/exportar", planilhaHandler.ExportarReunioes).Methods("GET")

	// Usuários
	admin.HandleFunc("/usuarios", usuarioHandler.CriarUsuario).Methods("POST")
	admin.HandleFunc("/usuarios", usuarioHandler.ListarUsuarios).Methods("GET")
	admin.HandleFunc("/usuarios/{id}", usuarioHandler.DeletarUsuario).Methods("DELETE")

	// Limpeza total (irreversível)
	admin.HandleFunc("/config/limpar", clienteHandler.LimparTudo).Methods("POST")

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	porta := os.Getenv("PORT")
	if porta == "" {
		porta = "8080"
	}

	logger.WithField("porta", porta).Info("servidor iniciado")
	if err := http.ListenAndServe(":"+porta, c.Handler(r)); err != nil {
		logger.WithError(err).Fatal("servidor encerrado")
	}
}
