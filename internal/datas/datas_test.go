package datas

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitRejectsUnknownZone(t *testing.T) {
	err := Init("Planeta/Marte")
	require.Error(t, err)
}

func TestInitLoadsConfiguredZone(t *testing.T) {
	require.NoError(t, Init("America/Sao_Paulo"))
	assert.Equal(t, "America/Sao_Paulo", Fuso().String())

	// demais testes rodam em UTC para serem determinísticos
	require.NoError(t, Init("UTC"))
}

func TestParseLocalKeepsWallClockDate(t *testing.T) {
	require.NoError(t, Init("America/Sao_Paulo"))
	defer func() { require.NoError(t, Init("UTC")) }()

	d, err := ParseLocal("2025-06-10")
	require.NoError(t, err)

	// meia-noite local, nunca convertida por UTC
	assert.Equal(t, 2025, d.Year())
	assert.Equal(t, time.June, d.Month())
	assert.Equal(t, 10, d.Day())
	assert.Equal(t, 0, d.Hour())
	assert.Equal(t, "America/Sao_Paulo", d.Location().String())
}

func TestParseLocalRejectsMalformedDate(t *testing.T) {
	_, err := ParseLocal("10/06/2025")
	require.Error(t, err)

	_, err = ParseLocal("")
	require.Error(t, err)
}

func TestIdadeEmAnosBirthdayNotReached(t *testing.T) {
	idade, err := IdadeEmAnos("2000-03-01", "2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, 23, idade)
}

func TestIdadeEmAnosBirthdayAlreadyPassed(t *testing.T) {
	idade, err := IdadeEmAnos("2000-02-28", "2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, 24, idade)
}

func TestIdadeEmAnosExactBirthday(t *testing.T) {
	idade, err := IdadeEmAnos("2000-05-20", "2024-05-20")
	require.NoError(t, err)
	assert.Equal(t, 24, idade)
}

func TestIdadeEmAnosNeverNegative(t *testing.T) {
	idade, err := IdadeEmAnos("2030-01-01", "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, 0, idade)
}

func TestDiasEntre(t *testing.T) {
	dias, err := DiasEntre("2025-06-25", "2025-06-10")
	require.NoError(t, err)
	assert.Equal(t, 15, dias)

	dias, err = DiasEntre("2025-06-09", "2025-06-10")
	require.NoError(t, err)
	assert.Equal(t, -1, dias)

	dias, err = DiasEntre("2025-06-10", "2025-06-10")
	require.NoError(t, err)
	assert.Equal(t, 0, dias)
}

func TestDiasEntreAcrossMonthBoundary(t *testing.T) {
	dias, err := DiasEntre("2025-07-02", "2025-06-30")
	require.NoError(t, err)
	assert.Equal(t, 2, dias)
}

func TestFormatarExibicao(t *testing.T) {
	formatada, err := FormatarExibicao("2025-12-09")
	require.NoError(t, err)
	assert.Equal(t, "09/12/2025", formatada)

	_, err = FormatarExibicao("nada")
	require.Error(t, err)
}

func TestDiaSemana(t *testing.T) {
	require.NoError(t, Init("UTC"))

	// 2025-06-10 foi uma terça-feira
	d, err := ParseLocal("2025-06-10")
	require.NoError(t, err)
	assert.Equal(t, "terca", DiaSemana(d))

	domingo, err := ParseLocal("2025-06-08")
	require.NoError(t, err)
	assert.Equal(t, "domingo", DiaSemana(domingo))
}

func TestDiaSemanaValido(t *testing.T) {
	for _, dia := range DiasSemana {
		assert.True(t, DiaSemanaValido(dia), dia)
	}
	assert.False(t, DiaSemanaValido("monday"))
	assert.False(t, DiaSemanaValido(""))
}
