package world

import (
	"math/rand"
	"strings"
)

var (
	namePrefixes = []string{"Ash", "Bel", "Cor", "Dun", "El", "Fen", "Gar", "Hol", "Kil", "Mar", "Oak", "Rav", "Stan", "Thorn", "Wick"}
	nameSuffixes = []string{"bury", "ford", "ham", "haven", "mere", "moor", "stead", "ton", "vale", "wick"}
)

// townName builds a town name from two syllable tables.
func townName(rng *rand.Rand) string {
	var b strings.Builder
	b.WriteString(namePrefixes[rng.Intn(len(namePrefixes))])
	b.WriteString(nameSuffixes[rng.Intn(len(nameSuffixes))])
	return b.String()
}
