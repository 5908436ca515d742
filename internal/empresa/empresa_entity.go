package empresa

// Empresa is the company profile row. The schema keeps a single row in
// practice but nothing enforces that; the API is plain CRUD.
type Empresa struct {
	ID                 int64   `gorm:"column:id;primaryKey;autoIncrement"`
	RazaoSocial        string  `gorm:"column:razao_social"`
	NomeFantasia       *string `gorm:"column:nome_fantasia"`
	CNPJ               string  `gorm:"column:cnpj"`
	Porte              string  `gorm:"column:porte"`
	InscricaoEstadual  *string `gorm:"column:inscricao_estadual"`
	InscricaoMunicipal string  `gorm:"column:inscricao_municipal"`
	IDCnae             int64   `gorm:"column:id_cnae"`
	RegimeTributario   string  `gorm:"column:regime_tributario"`
	DataFundacao       string  `gorm:"column:data_fundacao"`
	NaturezaJuridica   *string `gorm:"column:natureza_juridica"`
	CEP                string  `gorm:"column:cep"`
	Cidade             string  `gorm:"column:cidade"`
	Estado             string  `gorm:"column:estado"`
	Rua                string  `gorm:"column:rua"`
	Numero             string  `gorm:"column:numero"`
	Bairro             string  `gorm:"column:bairro"`
	Complemento        *string `gorm:"column:complemento"`
	Email              string  `gorm:"column:email"`
	Telefone           string  `gorm:"column:telefone"`
	Site               *string `gorm:"column:site"`
	PessoaContato      *string `gorm:"column:pessoa_contato"`
	SituacaoCadastral  string  `gorm:"column:situacao_cadastral"`
}

func (Empresa) TableName() string { return "empresa" }

// CNAE is the national activity-classification lookup table.
type CNAE struct {
	ID        int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Codigo    string `gorm:"column:codigo"`
	Descricao string `gorm:"column:descricao"`
}

func (CNAE) TableName() string { return "cnae" }

type AtividadeSecundaria struct {
	ID        int64 `gorm:"column:id;primaryKey;autoIncrement"`
	EmpresaID int64 `gorm:"column:empresa_id"`
	IDCnae    int64 `gorm:"column:id_cnae"`
}

func (AtividadeSecundaria) TableName() string { return "empresa_atividade_secundaria" }
