package funcionario

// The employee aggregate spans seven tables. The root row plus four 1:1
// children share the funcionario id; days-off and dependents are 1:N and
// are fully replaced on every update.

type Funcionario struct {
	ID             int64   `gorm:"column:id;primaryKey;autoIncrement"`
	Nome           string  `gorm:"column:nome"`
	CPF            string  `gorm:"column:cpf"`
	Email          string  `gorm:"column:email"`
	CargoID        int64   `gorm:"column:cargo_id"`
	DepartamentoID int64   `gorm:"column:departamento_id"`
	Status         string  `gorm:"column:status"`
	DataAdmissao   string  `gorm:"column:data_admissao"`
	DataDemissao   *string `gorm:"column:data_demissao"`
}

func (Funcionario) TableName() string { return "funcionarios" }

type DadosPessoais struct {
	FuncionarioID      int64   `gorm:"column:funcionario_id;primaryKey"`
	DataNascimento     string  `gorm:"column:data_nascimento"`
	CidadeNascimento   string  `gorm:"column:cidade_nascimento"`
	EstadoNascimento   string  `gorm:"column:estado_nascimento"`
	Nacionalidade      string  `gorm:"column:nacionalidade"`
	Escolaridade       string  `gorm:"column:escolaridade"`
	Telefone           string  `gorm:"column:telefone"`
	EstadoCivil        string  `gorm:"column:estado_civil"`
	TituloEleitor      *string `gorm:"column:titulo_eleitor"`
	ZonaEleitoral      *string `gorm:"column:zona_eleitoral"`
	SecaoEleitoral     *string `gorm:"column:secao_eleitoral"`
	Reservista         *string `gorm:"column:reservista"`
	CategoriaReservista *string `gorm:"column:categoria_reservista"`
	RG                 string  `gorm:"column:rg"`
	DataEmissaoRG      string  `gorm:"column:data_emissao_rg"`
	OrgaoEmissorRG     string  `gorm:"column:orgao_emissor_rg"`
	EstadoEmissorRG    string  `gorm:"column:estado_emissor_rg"`
	NomePai            string  `gorm:"column:nome_pai"`
	NomeMae            string  `gorm:"column:nome_mae"`
	Conjuge            *string `gorm:"column:conjuge"`
	PossuiFilhos       string  `gorm:"column:possui_filhos"`
}

func (DadosPessoais) TableName() string { return "funcionarios_dados_pessoais" }

type Endereco struct {
	FuncionarioID int64   `gorm:"column:funcionario_id;primaryKey"`
	CEP           string  `gorm:"column:cep"`
	Cidade        string  `gorm:"column:cidade"`
	Estado        string  `gorm:"column:estado"`
	Rua           string  `gorm:"column:rua"`
	Numero        string  `gorm:"column:numero"`
	Bairro        string  `gorm:"column:bairro"`
	Complemento   *string `gorm:"column:complemento"`
}

func (Endereco) TableName() string { return "funcionarios_enderecos" }

type DadosProfissionais struct {
	FuncionarioID        int64   `gorm:"column:funcionario_id;primaryKey"`
	CTPS                 string  `gorm:"column:ctps"`
	CTPSEstado           string  `gorm:"column:ctps_estado"`
	CTPSDataEmissao      string  `gorm:"column:ctps_data_emissao"`
	PIS                  string  `gorm:"column:pis"`
	Salario              string  `gorm:"column:salario"`
	CargaHorariaMensal   string  `gorm:"column:carga_horaria_mensal"`
	CargaHorariaSemanal  string  `gorm:"column:carga_horaria_semanal"`
	PeriodoExperiencia   string  `gorm:"column:periodo_experiencia"`
	AdicionalNoturno     *string `gorm:"column:adicional_noturno"`
	PrimeiroEmprego      *string `gorm:"column:primeiro_emprego"`
	MotivoSaida          *string `gorm:"column:motivo_saida"`
	HorarioInicioSemana  string  `gorm:"column:horario_inicio_semana"`
	HorarioFimSemana     string  `gorm:"column:horario_fim_semana"`
	HorarioInicioSabado  *string `gorm:"column:horario_inicio_sabado"`
	HorarioFimSabado     *string `gorm:"column:horario_fim_sabado"`
	HorarioInicioDomingo *string `gorm:"column:horario_inicio_domingo"`
	HorarioFimDomingo    *string `gorm:"column:horario_fim_domingo"`
}

func (DadosProfissionais) TableName() string { return "funcionarios_dados_profissionais" }

type DadosBancarios struct {
	FuncionarioID  int64   `gorm:"column:funcionario_id;primaryKey"`
	FormaPagamento string  `gorm:"column:forma_pagamento"`
	ChavePIX       *string `gorm:"column:chave_pix"`
	BancoID        *int64  `gorm:"column:banco_id"`
	Agencia        *string `gorm:"column:agencia"`
	Conta          *string `gorm:"column:conta"`
	TipoConta      *string `gorm:"column:tipo_conta"`
}

func (DadosBancarios) TableName() string { return "funcionarios_dados_bancarios" }

type DiaFolga struct {
	ID            int64  `gorm:"column:id;primaryKey;autoIncrement"`
	FuncionarioID int64  `gorm:"column:funcionario_id"`
	Dia           string `gorm:"column:dia"`
}

func (DiaFolga) TableName() string { return "funcionarios_dias_folga" }

type Dependente struct {
	ID             int64  `gorm:"column:id;primaryKey;autoIncrement"`
	FuncionarioID  int64  `gorm:"column:funcionario_id"`
	Nome           string `gorm:"column:nome"`
	DataNascimento string `gorm:"column:data_nascimento"`
	Parentesco     string `gorm:"column:parentesco"`
}

func (Dependente) TableName() string { return "funcionarios_dependentes" }
