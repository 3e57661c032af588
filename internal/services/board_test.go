package services

import (
	"context"
	"testing"

	"route-system/internal/dto"
	"route-system/internal/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boardFixture() []dto.RouteDTO {
	return []dto.RouteDTO{
		{ID: 1, SubmissionID: "a1", Funcionario: "Maria", Endereco: "Rua das Flores", Numero: "100", Bairro: "Centro", Status: entities.StatusPendente},
		{ID: 2, SubmissionID: "b2", Funcionario: "João", Endereco: "Av. Brasil", Numero: "200", Cidade: "Curitiba", Status: entities.StatusExecutado},
		{ID: 3, SubmissionID: "c3", Funcionario: "Maria", Endereco: "Rua XV", Numero: "15", Observacao: "entregar à tarde", Status: entities.StatusExecutado},
		{ID: 4, SubmissionID: "d4", Funcionario: "Ana", Endereco: "Travessa Azul", Numero: "7", Status: entities.StatusPendente},
	}
}

func TestFilterRoutesByStatus(t *testing.T) {
	filtered := FilterRoutes(boardFixture(), entities.RouteFilter{Status: entities.StatusPendente})
	require.Len(t, filtered, 2)
	for _, route := range filtered {
		assert.Equal(t, entities.StatusPendente, route.Status)
	}
}

func TestFilterRoutesSentinelMeansNoFilter(t *testing.T) {
	all := FilterRoutes(boardFixture(), entities.RouteFilter{Status: FilterAll, Funcionario: FilterAll})
	assert.Len(t, all, len(boardFixture()))
}

func TestFilterRoutesByBusca(t *testing.T) {
	// Busca é case-insensitive e olha vários campos, inclusive o ID.
	assert.Len(t, FilterRoutes(boardFixture(), entities.RouteFilter{Busca: "rua"}), 2)
	assert.Len(t, FilterRoutes(boardFixture(), entities.RouteFilter{Busca: "CURITIBA"}), 1)
	assert.Len(t, FilterRoutes(boardFixture(), entities.RouteFilter{Busca: "tarde"}), 1)
	assert.Len(t, FilterRoutes(boardFixture(), entities.RouteFilter{Busca: "4"}), 1)
	assert.Empty(t, FilterRoutes(boardFixture(), entities.RouteFilter{Busca: "inexistente"}))
}

func TestFilterRoutesComposesWithAND(t *testing.T) {
	filtered := FilterRoutes(boardFixture(), entities.RouteFilter{
		Status:      entities.StatusExecutado,
		Funcionario: "Maria",
	})
	require.Len(t, filtered, 1)
	assert.Equal(t, uint64(3), filtered[0].ID)
}

func TestFilterRoutesIsIdempotent(t *testing.T) {
	filter := entities.RouteFilter{Status: entities.StatusPendente, Busca: "rua"}
	once := FilterRoutes(boardFixture(), filter)
	twice := FilterRoutes(once, filter)
	assert.Equal(t, once, twice)
}

func TestFilterRoutesIsCommutative(t *testing.T) {
	// Aplicar os predicados um a um, em qualquer ordem, dá o mesmo resultado
	// que a composição em uma passada só.
	byStatus := entities.RouteFilter{Status: entities.StatusExecutado}
	byFuncionario := entities.RouteFilter{Funcionario: "Maria"}
	byBusca := entities.RouteFilter{Busca: "rua"}

	statusFirst := FilterRoutes(FilterRoutes(FilterRoutes(boardFixture(), byStatus), byFuncionario), byBusca)
	buscaFirst := FilterRoutes(FilterRoutes(FilterRoutes(boardFixture(), byBusca), byFuncionario), byStatus)
	assert.Equal(t, statusFirst, buscaFirst)

	combined := FilterRoutes(boardFixture(), entities.RouteFilter{
		Status:      entities.StatusExecutado,
		Funcionario: "Maria",
		Busca:       "rua",
	})
	assert.Equal(t, combined, statusFirst)
	require.Len(t, combined, 1)
	assert.Equal(t, uint64(3), combined[0].ID)
}

func TestGetBoardPartitionsAndCounts(t *testing.T) {
	svc := NewBoardService(newFakeRouteRepository(boardFixture()...))

	board, err := svc.GetBoard(context.Background(), entities.RouteFilter{})

	require.NoError(t, err)
	assert.Len(t, board.Pendentes, 2)
	assert.Len(t, board.Executadas, 2)
	assert.Equal(t, dto.ContadoresDTO{Total: 4, Executadas: 2, Pendentes: 2}, board.Contadores)
	assert.Equal(t, []string{"Ana", "João", "Maria"}, board.Funcionarios)
}

func TestGetBoardFuncionariosComeFromFullSnapshot(t *testing.T) {
	svc := NewBoardService(newFakeRouteRepository(boardFixture()...))

	board, err := svc.GetBoard(context.Background(), entities.RouteFilter{Funcionario: "Maria"})

	require.NoError(t, err)
	assert.Equal(t, 2, board.Contadores.Total)
	// O seletor de funcionários não encolhe quando um filtro está ativo.
	assert.Equal(t, []string{"Ana", "João", "Maria"}, board.Funcionarios)
}

func TestGetBoardByFuncionario(t *testing.T) {
	svc := NewBoardService(newFakeRouteRepository(boardFixture()...))

	board, err := svc.GetBoardByFuncionario(context.Background(), "Maria", entities.RouteFilter{Status: entities.StatusPendente})

	require.NoError(t, err)
	assert.Equal(t, 1, board.Contadores.Pendentes)
	assert.Equal(t, 0, board.Contadores.Executadas)
	require.Len(t, board.Pendentes, 1)
	assert.Equal(t, uint64(1), board.Pendentes[0].ID)
}
