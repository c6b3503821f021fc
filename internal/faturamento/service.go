package faturamento

import (
	"errors"
	"fmt"
	"time"

	"academia-backend/internal/datas"
	"academia-backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrFaturaNaoEncontrada = errors.New("fatura não encontrada")
	ErrFaturaJaPaga        = errors.New("fatura já está paga")
	ErrParcelasInvalidas   = errors.New("número de parcelas deve ser no mínimo 2")
	ErrVencimentoInvalido  = errors.New("data de vencimento inválida")
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// GerarMensalidades cria a fatura do mês seguinte para cada aluno ativo
// com mensalidade positiva. O vencimento cai no mesmo dia do mês da
// matrícula; se o dia não existe no mês alvo, vale a normalização do
// próprio time.Date. Faturas já existentes para (aluno, vencimento,
// categoria Mensalidade) são puladas — a comparação é pela string exata
// da data, não pelo mês. Retorna somente as faturas criadas agora.
func (s *Service) GerarMensalidades(hoje time.Time) ([]models.Fatura, error) {
	var alunos []models.Aluno
	if err := s.db.
		Where("status = ? AND mensalidade > 0", models.AlunoAtivo).
		Order("nome").
		Find(&alunos).Error; err != nil {
		return nil, err
	}

	criadas := make([]models.Fatura, 0)
	for _, aluno := range alunos {
		matricula, err := datas.ParseLocal(aluno.DataMatricula)
		if err != nil {
			// aluno sem data de matrícula válida não gera mensalidade
			continue
		}

		vencimento := time.Date(hoje.Year(), hoje.Month()+1, matricula.Day(),
			0, 0, 0, 0, datas.Fuso()).Format(datas.FormatoISO)

		existe, err := s.mensalidadeExiste(aluno.ID, vencimento)
		if err != nil {
			return nil, err
		}
		if existe {
			continue
		}

		alunoID := aluno.ID
		fatura := models.Fatura{
			Descricao:      "Mensalidade " + aluno.Nome,
			Valor:          aluno.Mensalidade,
			DataVencimento: vencimento,
			Tipo:           models.FaturaReceber,
			Status:         models.FaturaPendente,
			Categoria:      models.CategoriaMensalidade,
			AlunoID:        &alunoID,
		}
		if err := s.db.Create(&fatura).Error; err != nil {
			return nil, err
		}
		criadas = append(criadas, fatura)
	}

	return criadas, nil
}

func (s *Service) mensalidadeExiste(alunoID uint, vencimento string) (bool, error) {
	var count int64
	err := s.db.Model(&models.Fatura{}).
		Where("aluno_id = ? AND data_vencimento = ? AND categoria = ?",
			alunoID, vencimento, models.CategoriaMensalidade).
		Count(&count).Error
	return count > 0, err
}

// MarcarPaga vira o status da fatura para pago e espelha o valor no
// caixa, numa única transação: ou os dois efeitos acontecem, ou nenhum.
// Pagar de novo uma fatura já paga é erro, não um segundo lançamento.
func (s *Service) MarcarPaga(faturaID uint) (*models.Transacao, error) {
	var transacao models.Transacao

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var fatura models.Fatura
		if err := tx.First(&fatura, faturaID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrFaturaNaoEncontrada
			}
			return err
		}

		if fatura.Status == models.FaturaPaga {
			return ErrFaturaJaPaga
		}

		if err := tx.Model(&fatura).Update("status", models.FaturaPaga).Error; err != nil {
			return err
		}

		tipo := models.TransacaoSaida
		if fatura.Tipo == models.FaturaReceber {
			tipo = models.TransacaoEntrada
		}
		categoria := fatura.Categoria
		if categoria == "" {
			if fatura.Tipo == models.FaturaReceber {
				categoria = "Recebimento"
			} else {
				categoria = "Pagamento"
			}
		}

		transacao = models.Transacao{
			Data:      datas.Hoje(),
			Descricao: fatura.Descricao,
			Valor:     fatura.Valor,
			Tipo:      tipo,
			Categoria: categoria,
			AlunoID:   fatura.AlunoID,
		}
		return tx.Create(&transacao).Error
	})
	if err != nil {
		return nil, err
	}
	return &transacao, nil
}

// ParcelamentoBase descreve a fatura a ser dividida em parcelas mensais.
type ParcelamentoBase struct {
	Descricao      string
	Valor          float64
	DataVencimento string // vencimento da primeira parcela
	Tipo           models.FaturaTipo
	Categoria      string
	AlunoID        *uint
}

// CriarParcelas divide o valor em partes iguais (sem correção de
// centavos) e cria as faturas irmãs com vencimentos mensais sucessivos
// e descrições sufixadas "(i/total)".
func (s *Service) CriarParcelas(base ParcelamentoBase, total int) ([]models.Fatura, error) {
	if total < 2 {
		return nil, ErrParcelasInvalidas
	}
	primeiro, err := datas.ParseLocal(base.DataVencimento)
	if err != nil {
		return nil, ErrVencimentoInvalido
	}

	valorParcela := base.Valor / float64(total)

	parcelas := make([]models.Fatura, 0, total)
	err = s.db.Transaction(func(tx *gorm.DB) error {
		for i := 1; i <= total; i++ {
			parcela := i
			totalParcelas := total
			fatura := models.Fatura{
				Descricao:      fmt.Sprintf("%s (%d/%d)", base.Descricao, i, total),
				Valor:          valorParcela,
				DataVencimento: primeiro.AddDate(0, i-1, 0).Format(datas.FormatoISO),
				Tipo:           base.Tipo,
				Status:         models.FaturaPendente,
				Categoria:      base.Categoria,
				AlunoID:        base.AlunoID,
				Parcela:        &parcela,
				TotalParcelas:  &totalParcelas,
			}
			if err := tx.Create(&fatura).Error; err != nil {
				return err
			}
			parcelas = append(parcelas, fatura)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return parcelas, nil
}

// LimparFaturas apaga todas as faturas (fechamento de período).
// Irreversível. Retorna quantas linhas saíram.
func (s *Service) LimparFaturas() (int64, error) {
	res := s.db.Where("1 = 1").Delete(&models.Fatura{})
	return res.RowsAffected, res.Error
}
