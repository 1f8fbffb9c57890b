// Package reference holds the closed vocabularies shared by the
// inventory domain: record situations, stock movement types and units of
// measure. Each carries a stable code persisted in the database and a
// human-readable description served to form selects.
package reference

import "fmt"

// Opcao is one selectable entry of a vocabulary.
type Opcao struct {
	Codigo    string `json:"codigo"`
	Descricao string `json:"descricao"`
}

type Situacao string

const (
	SituacaoAtivo   Situacao = "ATIVO"
	SituacaoInativo Situacao = "INATIVO"
)

var situacaoDescricoes = map[Situacao]string{
	SituacaoAtivo:   "Ativo",
	SituacaoInativo: "Inativo",
}

func (s Situacao) Descricao() string { return situacaoDescricoes[s] }

func (s Situacao) Valid() bool {
	_, ok := situacaoDescricoes[s]
	return ok
}

func ParseSituacao(code string) (Situacao, error) {
	s := Situacao(code)
	if !s.Valid() {
		return "", fmt.Errorf("situacao desconhecida: %q", code)
	}
	return s, nil
}

func Situacoes() []Opcao {
	return []Opcao{
		{Codigo: string(SituacaoAtivo), Descricao: SituacaoAtivo.Descricao()},
		{Codigo: string(SituacaoInativo), Descricao: SituacaoInativo.Descricao()},
	}
}

type TipoMovimento string

const (
	MovimentoEntrada TipoMovimento = "ENTRADA"
	MovimentoSaida   TipoMovimento = "SAIDA"
)

var tipoMovimentoDescricoes = map[TipoMovimento]string{
	MovimentoEntrada: "Entrada de material",
	MovimentoSaida:   "Saída de material",
}

func (t TipoMovimento) Descricao() string { return tipoMovimentoDescricoes[t] }

func (t TipoMovimento) Valid() bool {
	_, ok := tipoMovimentoDescricoes[t]
	return ok
}

func ParseTipoMovimento(code string) (TipoMovimento, error) {
	t := TipoMovimento(code)
	if !t.Valid() {
		return "", fmt.Errorf("tipo de movimento desconhecido: %q", code)
	}
	return t, nil
}

func TiposMovimento() []Opcao {
	return []Opcao{
		{Codigo: string(MovimentoEntrada), Descricao: MovimentoEntrada.Descricao()},
		{Codigo: string(MovimentoSaida), Descricao: MovimentoSaida.Descricao()},
	}
}

type UnidadeMedida string

const (
	UnidadeUnidade UnidadeMedida = "UN"
	UnidadeCaixa   UnidadeMedida = "CX"
	UnidadeQuilo   UnidadeMedida = "KG"
	UnidadeLitro   UnidadeMedida = "L"
	UnidadeMetro   UnidadeMedida = "M"
)

var unidadeDescricoes = map[UnidadeMedida]string{
	UnidadeUnidade: "Unidade",
	UnidadeCaixa:   "Caixa",
	UnidadeQuilo:   "Quilograma",
	UnidadeLitro:   "Litro",
	UnidadeMetro:   "Metro",
}

func (u UnidadeMedida) Descricao() string { return unidadeDescricoes[u] }

func (u UnidadeMedida) Valid() bool {
	_, ok := unidadeDescricoes[u]
	return ok
}

func ParseUnidadeMedida(code string) (UnidadeMedida, error) {
	u := UnidadeMedida(code)
	if !u.Valid() {
		return "", fmt.Errorf("unidade de medida desconhecida: %q", code)
	}
	return u, nil
}

func UnidadesMedida() []Opcao {
	return []Opcao{
		{Codigo: string(UnidadeUnidade), Descricao: UnidadeUnidade.Descricao()},
		{Codigo: string(UnidadeCaixa), Descricao: UnidadeCaixa.Descricao()},
		{Codigo: string(UnidadeQuilo), Descricao: UnidadeQuilo.Descricao()},
		{Codigo: string(UnidadeLitro), Descricao: UnidadeLitro.Descricao()},
		{Codigo: string(UnidadeMetro), Descricao: UnidadeMetro.Descricao()},
	}
}
