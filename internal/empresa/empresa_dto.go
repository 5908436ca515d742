package empresa

// EmpresaPayload is the create/update body. Optionals default the way
// the schema does: porte falls back to DEMAIS and situacao_cadastral
// to Ativa when left blank.
type EmpresaPayload struct {
	RazaoSocial        string `json:"razao_social"`
	NomeFantasia       string `json:"nome_fantasia"`
	CNPJ               string `json:"cnpj"`
	Porte              string `json:"porte"`
	InscricaoEstadual  string `json:"inscricao_estadual"`
	InscricaoMunicipal string `json:"inscricao_municipal"`
	IDCnae             int64  `json:"id_cnae"`
	RegimeTributario   string `json:"regime_tributario"`
	DataFundacao       string `json:"data_fundacao"`
	NaturezaJuridica   string `json:"natureza_juridica"`
	CEP                string `json:"cep"`
	Cidade             string `json:"cidade"`
	Estado             string `json:"estado"`
	Rua                string `json:"rua"`
	Numero             string `json:"numero"`
	Bairro             string `json:"bairro"`
	Complemento        string `json:"complemento"`
	Email              string `json:"email"`
	Telefone           string `json:"telefone"`
	Site               string `json:"site"`
	PessoaContato      string `json:"pessoa_contato"`
	SituacaoCadastral  string `json:"situacao_cadastral"`

	AtividadesSecundarias []AtividadePayload `json:"atividades_secundarias"`
}

// AtividadePayload carries one secondary activity reference. Entries
// without an id_cnae are ignored, matching the form widget that posts
// placeholder rows.
type AtividadePayload struct {
	IDCnae *int64 `json:"id_cnae"`
}

// EmpresaSummary is one row of the company grid.
type EmpresaSummary struct {
	ID                 int64  `json:"id" gorm:"column:id"`
	RazaoSocial        string `json:"razao_social" gorm:"column:razao_social"`
	CNPJ               string `json:"cnpj" gorm:"column:cnpj"`
	InscricaoMunicipal string `json:"inscricao_municipal" gorm:"column:inscricao_municipal"`
	Email              string `json:"email" gorm:"column:email"`
	Telefone           string `json:"telefone" gorm:"column:telefone"`
	Cidade             string `json:"cidade" gorm:"column:cidade"`
	Estado             string `json:"estado" gorm:"column:estado"`
}

// EmpresaDetail is the full profile plus the resolved primary CNAE and
// the secondary activity list.
type EmpresaDetail struct {
	ID                 int64  `json:"id"`
	RazaoSocial        string `json:"razao_social"`
	NomeFantasia       string `json:"nome_fantasia"`
	CNPJ               string `json:"cnpj"`
	Porte              string `json:"porte"`
	InscricaoEstadual  string `json:"inscricao_estadual"`
	InscricaoMunicipal string `json:"inscricao_municipal"`
	IDCnae             int64  `json:"id_cnae"`
	Cnae               string `json:"cnae"`
	DescricaoCnae      string `json:"descricao_cnae"`
	RegimeTributario   string `json:"regime_tributario"`
	DataFundacao       string `json:"data_fundacao"`
	NaturezaJuridica   string `json:"natureza_juridica"`
	CEP                string `json:"cep"`
	Cidade             string `json:"cidade"`
	Estado             string `json:"estado"`
	Rua                string `json:"rua"`
	Numero             string `json:"numero"`
	Bairro             string `json:"bairro"`
	Complemento        string `json:"complemento"`
	Email              string `json:"email"`
	Telefone           string `json:"telefone"`
	Site               string `json:"site"`
	PessoaContato      string `json:"pessoa_contato"`
	SituacaoCadastral  string `json:"situacao_cadastral"`

	AtividadesSecundarias []AtividadeView `json:"atividades_secundarias"`
}

// AtividadeView is one resolved secondary activity.
type AtividadeView struct {
	IDCnae        int64  `json:"id_cnae" gorm:"column:id_cnae"`
	Cnae          string `json:"cnae" gorm:"column:cnae"`
	DescricaoCnae string `json:"descricao_cnae" gorm:"column:descricao_cnae"`
}

// CNAEView is the lookup response for /api/cnae/:codigo.
type CNAEView struct {
	ID        int64  `json:"id"`
	Codigo    string `json:"codigo"`
	Descricao string `json:"descricao"`
}
