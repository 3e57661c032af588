package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"route-system/internal/dto"
	"route-system/internal/entities"
	"route-system/pkg/customvalidator"
	apperrors "route-system/pkg/errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Cabeçalhos obrigatórios na planilha, com capitalização e acentos exatos.
var requiredHeaders = []string{"Submission ID", "Funcionário", "Endereço", "Número"}

type ImporterServiceInterface interface {
	ImportRoutes(ctx context.Context, file io.Reader) (*dto.ImportResultDTO, error)
}

type ImporterService struct {
	routeService RouteServiceInterface
	validate     *validator.Validate
	logger       *zap.Logger
}

func NewImporterService(routeService RouteServiceInterface, logger *zap.Logger) ImporterServiceInterface {
	// As linhas da planilha passam pelas mesmas regras que o POST de rota.
	v := validator.New()
	if err := customvalidator.RegisterCustomValidations(v); err != nil {
		logger.Fatal("erro ao registrar as regras de validação do importador", zap.Error(err))
	}
	return &ImporterService{routeService: routeService, validate: v, logger: logger}
}

// ImportRoutes lê a primeira aba da planilha, mapeia cada linha para uma rota
// pelo nome do cabeçalho e cria as rotas em sequência. Conflito de submission
// id conta como ignorada, não como falha; o lote não é transacional.
func (s *ImporterService) ImportRoutes(ctx context.Context, file io.Reader) (*dto.ImportResultDTO, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, apperrors.NewHttpError(http.StatusBadRequest, "Não foi possível ler a planilha. Verifique o formato do arquivo.", err, nil)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.NewHttpError(http.StatusBadRequest, "A planilha está vazia ou não contém dados!", nil, nil)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, apperrors.NewHttpError(http.StatusBadRequest, "Não foi possível ler as linhas da planilha.", err, nil)
	}
	if len(rows) <= 1 {
		return nil, apperrors.NewHttpError(http.StatusBadRequest, "A planilha não contém dados suficientes!", nil, nil)
	}

	headers := rows[0]
	headerIdx := make(map[string]int, len(headers))
	for i, h := range headers {
		headerIdx[strings.TrimSpace(h)] = i
	}

	var missing []string
	for _, h := range requiredHeaders {
		if _, ok := headerIdx[h]; !ok {
			missing = append(missing, h)
		}
	}
	if len(missing) > 0 {
		return nil, apperrors.NewHttpError(
			http.StatusBadRequest,
			fmt.Sprintf("Cabeçalhos obrigatórios faltando: %s", strings.Join(missing, ", ")),
			nil,
			map[string]interface{}{"headers": headers},
		)
	}

	cell := func(row []string, header string) string {
		idx, ok := headerIdx[header]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	result := &dto.ImportResultDTO{}
	for i, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}

		submissionID := cell(row, "Submission ID")
		if submissionID == "" {
			submissionID = uuid.NewString()
		}

		colaborador := cell(row, "Colaborador")
		if colaborador == "" {
			colaborador = cell(row, "Funcionário")
		}

		payload := dto.CreateRouteDTO{
			SubmissionID: submissionID,
			Colaborador:  colaborador,
			Funcionario:  cell(row, "Funcionário"),
			Endereco:     cell(row, "Endereço"),
			Numero:       cell(row, "Número"),
			Complemento:  cell(row, "Complemento"),
			Bairro:       cell(row, "Bairro"),
			Cidade:       cell(row, "Cidade"),
			Estado:       cell(row, "Estado"),
			Cep:          cell(row, "CEP"),
			Observacao:   cell(row, "Observacao"),
			DataEntrega:  cell(row, "Data de Entrega"),
			Prioridade:   cell(row, "Prioridade"),
			Origem:       entities.OrigemPlanilha,
		}

		if err := s.validate.Struct(&payload); err != nil {
			s.logger.Warn("linha da planilha reprovada na validação",
				zap.Int("linha", i+2),
				zap.String("submission_id", submissionID),
				zap.Error(err),
			)
			result.Ignoradas++
			continue
		}

		if _, err := s.routeService.CreateRoute(ctx, payload); err != nil {
			if errors.Is(err, apperrors.ErrConflict) {
				result.Ignoradas++
				continue
			}
			s.logger.Warn("linha da planilha não pôde ser importada",
				zap.Int("linha", i+2),
				zap.String("submission_id", submissionID),
				zap.Error(err),
			)
			result.Ignoradas++
			continue
		}
		result.Importadas++
	}

	return result, nil
}
