package datatable

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type pessoa struct {
	ID       int64  `gorm:"primaryKey"`
	Nome     string `gorm:"column:nome"`
	Situacao string `gorm:"column:situacao"`
	Saldo    int64  `gorm:"column:saldo"`
}

func (pessoa) TableName() string { return "pessoas" }

var pessoaColumns = Descriptor{
	{Name: "nome", Kind: Text},
	{Name: "situacao", Kind: Text},
	{Name: "saldo", Kind: Numeric},
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&pessoa{}))
	return db
}

func seedPessoas(t *testing.T, db *gorm.DB) {
	t.Helper()
	rows := []pessoa{
		{Nome: "Ana Souza", Situacao: "ATIVO", Saldo: 100},
		{Nome: "Bruno Lima", Situacao: "INATIVO", Saldo: 250},
		{Nome: "Mariana Costa", Situacao: "ATIVO", Saldo: 1042},
		{Nome: "Joao Pereira", Situacao: "ATIVO", Saldo: 7},
		{Nome: "Carla Dias", Situacao: "INATIVO", Saldo: 42},
	}
	require.NoError(t, db.Create(&rows).Error)
}

func TestPaginateFiltersAndSorts(t *testing.T) {
	db := newTestDB(t)
	seedPessoas(t, db)

	res, err := Paginate[pessoa](context.Background(), db, pessoaColumns, Request{
		Draw:       "3",
		Offset:     0,
		Limit:      10,
		Search:     "ana",
		SortColumn: 0,
		SortDir:    Asc,
	})
	require.NoError(t, err)

	// "ana" hits Ana Souza and Mariana Costa via nome.
	assert.Equal(t, "3", res.Draw)
	assert.Equal(t, int64(5), res.RecordsTotal)
	assert.Equal(t, int64(2), res.RecordsFiltered)
	require.Len(t, res.Data, 2)
	assert.Equal(t, "Ana Souza", res.Data[0].Nome)
	assert.Equal(t, "Mariana Costa", res.Data[1].Nome)
	assert.LessOrEqual(t, res.RecordsFiltered, res.RecordsTotal)
}

func TestPaginateAccentedTermMatchesUnaccentedRows(t *testing.T) {
	db := newTestDB(t)
	seedPessoas(t, db)

	plain, err := Paginate[pessoa](context.Background(), db, pessoaColumns, Request{Search: "joao"})
	require.NoError(t, err)
	accented, err := Paginate[pessoa](context.Background(), db, pessoaColumns, Request{Search: "joão"})
	require.NoError(t, err)

	// The folded term is identical either way.
	assert.Equal(t, plain.RecordsFiltered, accented.RecordsFiltered)
	require.Len(t, accented.Data, 1)
	assert.Equal(t, "Joao Pereira", accented.Data[0].Nome)
}

func TestPaginateNumericColumnsMatchPartialSubstrings(t *testing.T) {
	db := newTestDB(t)
	seedPessoas(t, db)

	res, err := Paginate[pessoa](context.Background(), db, pessoaColumns, Request{Search: "04"})
	require.NoError(t, err)

	// "04" is a substring of saldo 1042 only.
	require.Len(t, res.Data, 1)
	assert.Equal(t, int64(1042), res.Data[0].Saldo)
}

func TestPaginateRespectsOffsetAndLimit(t *testing.T) {
	db := newTestDB(t)
	seedPessoas(t, db)

	res, err := Paginate[pessoa](context.Background(), db, pessoaColumns, Request{
		Offset:     2,
		Limit:      2,
		SortColumn: 0,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(5), res.RecordsTotal)
	assert.Equal(t, int64(5), res.RecordsFiltered)
	require.Len(t, res.Data, 2)
	// nome asc: Ana, Bruno, Carla, Joao, Mariana — page 2 starts at Carla.
	assert.Equal(t, "Carla Dias", res.Data[0].Nome)
	assert.Equal(t, "Joao Pereira", res.Data[1].Nome)
}

func TestPaginateDefaultsLimit(t *testing.T) {
	db := newTestDB(t)
	for i := 0; i < 25; i++ {
		require.NoError(t, db.Create(&pessoa{Nome: "Pessoa", Situacao: "ATIVO"}).Error)
	}

	res, err := Paginate[pessoa](context.Background(), db, pessoaColumns, Request{Limit: 0})
	require.NoError(t, err)
	assert.Len(t, res.Data, 10)
	assert.Equal(t, int64(25), res.RecordsTotal)
}

func TestPaginateSortDescending(t *testing.T) {
	db := newTestDB(t)
	seedPessoas(t, db)

	res, err := Paginate[pessoa](context.Background(), db, pessoaColumns, Request{
		SortColumn: 2,
		SortDir:    Desc,
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.Data)
	assert.Equal(t, int64(1042), res.Data[0].Saldo)
}

func TestPaginateRejectsOutOfRangeSortColumn(t *testing.T) {
	db := newTestDB(t)
	seedPessoas(t, db)

	_, err := Paginate[pessoa](context.Background(), db, pessoaColumns, Request{SortColumn: 5})
	assert.ErrorIs(t, err, ErrInvalidQueryParameter)

	_, err = Paginate[pessoa](context.Background(), db, pessoaColumns, Request{SortColumn: -1})
	assert.ErrorIs(t, err, ErrInvalidQueryParameter)
}

func TestPaginateRejectsUnsafeColumnNames(t *testing.T) {
	db := newTestDB(t)

	for _, desc := range []Descriptor{
		{},
		{{Name: "nome; DROP TABLE pessoas"}},
		{{Name: "Nome"}},
		{{Name: "nome"}, {Name: "nome"}},
	} {
		_, err := Paginate[pessoa](context.Background(), db, desc, Request{})
		assert.ErrorIs(t, err, ErrInvalidQueryParameter)
	}
}

func TestFold(t *testing.T) {
	assert.Equal(t, "joao", Fold("João"))
	assert.Equal(t, "joao", Fold("JOAO"))
	assert.Equal(t, "acucar", Fold("Açúcar"))
	assert.Equal(t, "", Fold(""))
}
