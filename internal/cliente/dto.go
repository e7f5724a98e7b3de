package cliente

// request DTOs; datas chegam como texto e passam pelos parsers de planilha
// (aceitam aaaa-mm-dd e dd/mm/aaaa).

type criarClienteRequest struct {
	Nome            string `json:"nome" validate:"required"`
	Responsavel     string `json:"responsavel" validate:"required"`
	Termometro      int    `json:"termometro" validate:"omitempty,min=1,max=5"`
	QuerAlinhamento bool   `json:"querAlinhamento"`
	Status          string `json:"status" validate:"omitempty,oneof=ATIVO INATIVO"`
	Entrada         string `json:"entrada" validate:"required"`
	Saida           string `json:"saida"`
	Valor           string `json:"valor"`
	Permuta         bool   `json:"permuta"`
	Motivo          string `json:"motivo"`
	Razao           string `json:"razao"`
}

type atualizarClienteRequest struct {
	Nome            string `json:"nome" validate:"required"`
	QuerAlinhamento bool   `json:"querAlinhamento"`
}

type transferirRequest struct {
	NovoResponsavel string `json:"novoResponsavel" validate:"required"`
	Motivo          string `json:"motivo" validate:"required"`
	Razao           string `json:"razao"`
	Data            string `json:"data" validate:"required"`
}

type saidaRequest struct {
	Data   string `json:"data" validate:"required"`
	Motivo string `json:"motivo" validate:"required"`
	Razao  string `json:"razao"`
}

type termometroRequest struct {
	NovoTermometro int    `json:"novoTermometro" validate:"required,min=1,max=5"`
	Data           string `json:"data" validate:"required"`
	Motivo         string `json:"motivo" validate:"required"`
	Razao          string `json:"razao"`
}

type valorRequest struct {
	Valor   string `json:"valor"`
	Permuta bool   `json:"permuta"`
	Data    string `json:"data" validate:"required"`
	Motivo  string `json:"motivo" validate:"required"`
	Razao   string `json:"razao"`
}
