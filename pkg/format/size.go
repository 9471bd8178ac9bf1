package format

import (
	"fmt"
	"math"
	"strconv"
)

// Unidades compactas na ordem de escalonamento. "G" é o teto: valores
// acima de 1024G continuam expressos em G.
var sizeUnits = []string{"B", "K", "M", "G"}

// Size converte uma quantidade de bytes no token compacto usado por listagens
// estilo nginx/caddy.
//
// Regras:
//   - abaixo de 1024 o valor sai como inteiro, sem sufixo ("123");
//   - valores inteiros após a divisão saem sem casa decimal ("2K");
//   - os demais saem com uma casa decimal ("4.5K").
//
// O arredondamento é o de strconv.FormatFloat com precisão 1, portanto valores
// imediatamente abaixo de uma fronteira podem aparecer como "1024.0K".
//
// Tamanho negativo é erro de programação e causa panic.
func Size(n int64) string {
	if n < 0 {
		panic(fmt.Sprintf("format: tamanho negativo %d", n))
	}

	value := float64(n)
	unit := 0
	for value >= 1024 && unit < len(sizeUnits)-1 {
		value /= 1024
		unit++
	}

	if unit == 0 {
		return strconv.FormatInt(n, 10)
	}
	if value == math.Trunc(value) {
		return strconv.FormatFloat(value, 'f', 0, 64) + sizeUnits[unit]
	}
	return strconv.FormatFloat(value, 'f', 1, 64) + sizeUnits[unit]
}
