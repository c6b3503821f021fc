// Package datas concentra toda a aritmética de datas de calendário.
// Datas trafegam como strings "YYYY-MM-DD" e são sempre interpretadas
// no fuso fixo da academia, nunca via UTC: converter por UTC desloca a
// data em um dia perto da meia-noite.
package datas

import (
	"fmt"
	"math"
	"time"

	// aplicação desktop: a máquina pode não ter banco de fusos (Windows)
	_ "time/tzdata"
)

const FormatoISO = "2006-01-02"

// DiasSemana na ordem usada pela agenda (domingo primeiro, como time.Weekday).
var DiasSemana = []string{"domingo", "segunda", "terca", "quarta", "quinta", "sexta", "sabado"}

// fuso fixo do negócio; definido uma vez no boot via Init.
var fuso = time.UTC

// Init carrega o fuso configurado. Deve rodar antes de qualquer outra
// função do pacote.
func Init(zona string) error {
	loc, err := time.LoadLocation(zona)
	if err != nil {
		return fmt.Errorf("fuso horário inválido %q: %w", zona, err)
	}
	fuso = loc
	return nil
}

// Fuso expõe o *time.Location carregado.
func Fuso() *time.Location {
	return fuso
}

// Hoje retorna a data atual no fuso configurado, como "YYYY-MM-DD".
func Hoje() string {
	return time.Now().In(fuso).Format(FormatoISO)
}

// AgoraLocal retorna o instante atual no fuso configurado.
func AgoraLocal() time.Time {
	return time.Now().In(fuso)
}

// ParseLocal interpreta "YYYY-MM-DD" como meia-noite local.
func ParseLocal(s string) (time.Time, error) {
	t, err := time.ParseInLocation(FormatoISO, s, fuso)
	if err != nil {
		return time.Time{}, fmt.Errorf("data inválida %q: %w", s, err)
	}
	return t, nil
}

// FormatarExibicao converte "YYYY-MM-DD" para "DD/MM/YYYY".
func FormatarExibicao(s string) (string, error) {
	t, err := ParseLocal(s)
	if err != nil {
		return "", err
	}
	return t.Format("02/01/2006"), nil
}

// IdadeEmAnos calcula anos completos entre o nascimento e hoje,
// descontando um ano se o aniversário ainda não chegou. A comparação
// ingênua de mês/dia cobre também nascidos em 29 de fevereiro.
func IdadeEmAnos(nascimento, hoje string) (int, error) {
	nasc, err := ParseLocal(nascimento)
	if err != nil {
		return 0, err
	}
	atual, err := ParseLocal(hoje)
	if err != nil {
		return 0, err
	}

	idade := atual.Year() - nasc.Year()
	if atual.Month() < nasc.Month() ||
		(atual.Month() == nasc.Month() && atual.Day() < nasc.Day()) {
		idade--
	}
	if idade < 0 {
		idade = 0
	}
	return idade, nil
}

// DiasEntre retorna quantos dias faltam de b até a (negativo se a já
// passou), com ambas as datas alinhadas à meia-noite local.
func DiasEntre(a, b string) (int, error) {
	da, err := ParseLocal(a)
	if err != nil {
		return 0, err
	}
	db, err := ParseLocal(b)
	if err != nil {
		return 0, err
	}
	return int(math.Ceil(da.Sub(db).Hours() / 24)), nil
}

// DiaSemana retorna o dia da semana em português ("domingo".."sabado").
func DiaSemana(t time.Time) string {
	return DiasSemana[int(t.In(fuso).Weekday())]
}

// DiaSemanaHoje retorna o dia da semana de hoje no fuso configurado.
func DiaSemanaHoje() string {
	return DiaSemana(time.Now())
}

// DiaSemanaValido informa se a tag de dia da semana é conhecida.
func DiaSemanaValido(dia string) bool {
	for _, d := range DiasSemana {
		if d == dia {
			return true
		}
	}
	return false
}
