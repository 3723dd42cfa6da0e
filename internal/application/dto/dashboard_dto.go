package dto

// LicencaVencendoDTO licença dentro da janela de renovação.
type LicencaVencendoDTO struct {
	LaoID          string `json:"lao_id"`
	NumeroLao      string `json:"numero_lao"`
	Empreendimento string `json:"empreendimento"`
	Validade       string `json:"validade"`
	PrazoRenovacao string `json:"prazo_renovacao"` // data limite para protocolar
	DiasRestantes  int    `json:"dias_restantes"`
}

// VistoriaProjetadaDTO próxima vistoria projetada de uma condicionante.
type VistoriaProjetadaDTO struct {
	LaoID           string `json:"lao_id"`
	NumeroLao       string `json:"numero_lao"`
	CondicionanteID string `json:"condicionante_id"`
	Condicionante   string `json:"condicionante"`
	Data            string `json:"data"`
}

// DashboardSummaryDTO resumo do painel inicial.
type DashboardSummaryDTO struct {
	TotalLicencas       int                    `json:"total_licencas"`
	LicencasAtivas      int                    `json:"licencas_ativas"`
	LicencasVencidas    int                    `json:"licencas_vencidas"`
	LicencasVencendo    []LicencaVencendoDTO   `json:"licencas_vencendo"`
	VistoriasProjetadas []VistoriaProjetadaDTO `json:"vistorias_projetadas"`
}
