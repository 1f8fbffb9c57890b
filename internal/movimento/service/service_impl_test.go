package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	materialdomain "github.com/kgsoft/estoque/internal/material/domain"
	materialrepo "github.com/kgsoft/estoque/internal/material/repository"
	"github.com/kgsoft/estoque/internal/movimento/domain"
	"github.com/kgsoft/estoque/internal/movimento/repository"
	"github.com/kgsoft/estoque/internal/reference"
	"github.com/kgsoft/estoque/pkg/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (domain.Service, *gorm.DB, *materialdomain.Material) {
	t.Helper()

	conn, err := db.NewTest()
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&materialdomain.Material{}, &domain.Movimento{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	mat := &materialdomain.Material{
		ID:            node.Generate(),
		Nome:          "Parafuso sextavado",
		CategoriaID:   node.Generate(),
		Unidade:       reference.UnidadeUnidade,
		Saldo:         0,
		EstoqueMinimo: 5,
		EstoqueMaximo: 100,
		Situacao:      reference.SituacaoAtivo,
	}
	require.NoError(t, conn.Create(mat).Error)

	svc := New(Params{
		DB:        conn,
		Log:       zap.NewNop(),
		GenID:     node,
		Repo:      repository.Provide(),
		Materiais: materialrepo.Provide(),
	})
	return svc, conn, mat
}

func saldoOf(t *testing.T, conn *gorm.DB, id snowflake.ID) float64 {
	t.Helper()
	var mat materialdomain.Material
	require.NoError(t, conn.First(&mat, "id = ?", id.Int64()).Error)
	return mat.Saldo
}

func TestRegistrarEntradaIncreasesSaldo(t *testing.T) {
	svc, conn, mat := newTestService(t)

	mov, err := svc.Registrar(context.Background(), domain.RegistrarRequest{
		MaterialID: mat.ID.String(),
		Tipo:       "ENTRADA",
		Quantidade: 25,
	})
	require.NoError(t, err)

	assert.Equal(t, reference.MovimentoEntrada, mov.Tipo)
	assert.Equal(t, 25.0, saldoOf(t, conn, mat.ID))
}

func TestRegistrarSaidaDecreasesSaldo(t *testing.T) {
	svc, conn, mat := newTestService(t)

	_, err := svc.Registrar(context.Background(), domain.RegistrarRequest{
		MaterialID: mat.ID.String(), Tipo: "ENTRADA", Quantidade: 30,
	})
	require.NoError(t, err)

	_, err = svc.Registrar(context.Background(), domain.RegistrarRequest{
		MaterialID: mat.ID.String(), Tipo: "SAIDA", Quantidade: 12,
	})
	require.NoError(t, err)

	assert.Equal(t, 18.0, saldoOf(t, conn, mat.ID))
}

func TestRegistrarSaidaBeyondSaldoFailsAtomically(t *testing.T) {
	svc, conn, mat := newTestService(t)

	_, err := svc.Registrar(context.Background(), domain.RegistrarRequest{
		MaterialID: mat.ID.String(), Tipo: "ENTRADA", Quantidade: 10,
	})
	require.NoError(t, err)

	_, err = svc.Registrar(context.Background(), domain.RegistrarRequest{
		MaterialID: mat.ID.String(), Tipo: "SAIDA", Quantidade: 11,
	})
	assert.ErrorIs(t, err, domain.ErrSaldoInsuficiente)

	// balance untouched and no ledger row written
	assert.Equal(t, 10.0, saldoOf(t, conn, mat.ID))
	var count int64
	require.NoError(t, conn.Model(&domain.Movimento{}).Where("tipo = ?", "SAIDA").Count(&count).Error)
	assert.Zero(t, count)
}

func TestRegistrarValidatesInput(t *testing.T) {
	svc, _, mat := newTestService(t)

	_, err := svc.Registrar(context.Background(), domain.RegistrarRequest{
		MaterialID: mat.ID.String(), Tipo: "TRANSFERENCIA", Quantidade: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidTipo)

	_, err = svc.Registrar(context.Background(), domain.RegistrarRequest{
		MaterialID: mat.ID.String(), Tipo: "ENTRADA", Quantidade: 0,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantidade)

	_, err = svc.Registrar(context.Background(), domain.RegistrarRequest{
		MaterialID: "nao-e-id", Tipo: "ENTRADA", Quantidade: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidMaterial)

	_, err = svc.Registrar(context.Background(), domain.RegistrarRequest{
		MaterialID: "999999999", Tipo: "ENTRADA", Quantidade: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidMaterial)
}

func TestEstornarReversesMovement(t *testing.T) {
	svc, conn, mat := newTestService(t)

	entrada, err := svc.Registrar(context.Background(), domain.RegistrarRequest{
		MaterialID: mat.ID.String(), Tipo: "ENTRADA", Quantidade: 40,
	})
	require.NoError(t, err)

	saida, err := svc.Registrar(context.Background(), domain.RegistrarRequest{
		MaterialID: mat.ID.String(), Tipo: "SAIDA", Quantidade: 15,
	})
	require.NoError(t, err)
	require.Equal(t, 25.0, saldoOf(t, conn, mat.ID))

	require.NoError(t, svc.Estornar(context.Background(), saida.ID.String()))
	assert.Equal(t, 40.0, saldoOf(t, conn, mat.ID))

	require.NoError(t, svc.Estornar(context.Background(), entrada.ID.String()))
	assert.Equal(t, 0.0, saldoOf(t, conn, mat.ID))

	assert.ErrorIs(t, svc.Estornar(context.Background(), saida.ID.String()), domain.ErrNotFound)
}

func TestEstornarEntradaCannotDriveSaldoNegative(t *testing.T) {
	svc, conn, mat := newTestService(t)

	entrada, err := svc.Registrar(context.Background(), domain.RegistrarRequest{
		MaterialID: mat.ID.String(), Tipo: "ENTRADA", Quantidade: 20,
	})
	require.NoError(t, err)

	_, err = svc.Registrar(context.Background(), domain.RegistrarRequest{
		MaterialID: mat.ID.String(), Tipo: "SAIDA", Quantidade: 15,
	})
	require.NoError(t, err)

	err = svc.Estornar(context.Background(), entrada.ID.String())
	assert.ErrorIs(t, err, domain.ErrSaldoInsuficiente)
	assert.Equal(t, 5.0, saldoOf(t, conn, mat.ID))
}

func TestListByMaterialOrdersNewestFirst(t *testing.T) {
	svc, _, mat := newTestService(t)

	for _, q := range []float64{5, 7, 9} {
		_, err := svc.Registrar(context.Background(), domain.RegistrarRequest{
			MaterialID: mat.ID.String(), Tipo: "ENTRADA", Quantidade: q,
		})
		require.NoError(t, err)
	}

	items, err := svc.ListByMaterial(context.Background(), mat.ID.String())
	require.NoError(t, err)
	assert.Len(t, items, 3)
}
