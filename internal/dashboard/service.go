package dashboard

import (
	"academia-backend/internal/datas"
	"academia-backend/internal/models"

	"gorm.io/gorm"
)

// Janelas de vencimento do painel, em dias a partir de hoje. O limite
// inferior -1 é proposital: uma conta que venceu ontem continua visível.
const (
	janelaContasMin = -1
	janelaContasMax = 15

	janelaMensalidadesMin = -1
	janelaMensalidadesMax = 7
)

type FaturaResumo struct {
	ID             uint    `json:"id"`
	Descricao      string  `json:"descricao"`
	Valor          float64 `json:"valor"`
	DataVencimento string  `json:"dataVencimento"`
	Tipo           string  `json:"tipo"`
	Categoria      string  `json:"categoria"`
	AlunoID        *uint   `json:"aluno_id"`
}

type AlunoResumo struct {
	ID         uint     `json:"id"`
	Nome       string   `json:"nome"`
	Status     string   `json:"status"`
	CorPadrao  string   `json:"corPadrao"`
	DiasTreino []string `json:"diasTreino"`
}

type Resumo struct {
	Alunos                   []AlunoResumo  `json:"alunos"`
	TotalAlunos              int            `json:"totalAlunos"`
	ContasVencer             []FaturaResumo `json:"contasVencer"`
	TotalContasVencer        float64        `json:"totalContasVencer"`
	MensalidadesReceber      []FaturaResumo `json:"mensalidadesReceber"`
	TotalMensalidadesReceber float64        `json:"totalMensalidadesReceber"`
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Resumo monta a visão do painel para a data dada: contas pendentes
// vencendo entre -1 e +15 dias, mensalidades pendentes entre -1 e +7
// dias, e os alunos ativos. Só leitura; nada é alterado.
func (s *Service) Resumo(hoje string) (*Resumo, error) {
	var alunos []models.Aluno
	if err := s.db.
		Where("status = ?", models.AlunoAtivo).
		Order("nome").
		Find(&alunos).Error; err != nil {
		return nil, err
	}

	var faturas []models.Fatura
	if err := s.db.
		Where("status = ?", models.FaturaPendente).
		Order("data_vencimento asc, id asc").
		Find(&faturas).Error; err != nil {
		return nil, err
	}

	resumo := &Resumo{
		Alunos:              make([]AlunoResumo, 0, len(alunos)),
		TotalAlunos:         len(alunos),
		ContasVencer:        make([]FaturaResumo, 0),
		MensalidadesReceber: make([]FaturaResumo, 0),
	}

	for _, a := range alunos {
		resumo.Alunos = append(resumo.Alunos, AlunoResumo{
			ID:         a.ID,
			Nome:       a.Nome,
			Status:     string(a.Status),
			CorPadrao:  a.CorPadrao,
			DiasTreino: a.DiasTreino(),
		})
	}

	for _, f := range faturas {
		dias, err := datas.DiasEntre(f.DataVencimento, hoje)
		if err != nil {
			// fatura com vencimento ilegível não entra em janela nenhuma
			continue
		}

		item := FaturaResumo{
			ID:             f.ID,
			Descricao:      f.Descricao,
			Valor:          f.Valor,
			DataVencimento: f.DataVencimento,
			Tipo:           string(f.Tipo),
			Categoria:      f.Categoria,
			AlunoID:        f.AlunoID,
		}

		if dias >= janelaContasMin && dias <= janelaContasMax {
			resumo.ContasVencer = append(resumo.ContasVencer, item)
			resumo.TotalContasVencer += f.Valor
		}
		if f.Categoria == models.CategoriaMensalidade &&
			dias >= janelaMensalidadesMin && dias <= janelaMensalidadesMax {
			resumo.MensalidadesReceber = append(resumo.MensalidadesReceber, item)
			resumo.TotalMensalidadesReceber += f.Valor
		}
	}

	return resumo, nil
}
