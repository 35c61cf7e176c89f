package naming

import "strings"

// Russian Cyrillic to Latin, matching the reversed ru table used when the catalog was named
var cyrillicToLatin = strings.NewReplacer(
	"щ", "sch", "Щ", "Sch",
	"ж", "zh", "Ж", "Zh",
	"ц", "ts", "Ц", "Ts",
	"ч", "ch", "Ч", "Ch",
	"ш", "sh", "Ш", "Sh",
	"ю", "ju", "Ю", "Ju",
	"я", "ja", "Я", "Ja",
	"а", "a", "А", "A",
	"б", "b", "Б", "B",
	"в", "v", "В", "V",
	"г", "g", "Г", "G",
	"д", "d", "Д", "D",
	"е", "e", "Е", "E",
	"ё", "e", "Ё", "E",
	"з", "z", "З", "Z",
	"и", "i", "И", "I",
	"й", "j", "Й", "J",
	"к", "k", "К", "K",
	"л", "l", "Л", "L",
	"м", "m", "М", "M",
	"н", "n", "Н", "N",
	"о", "o", "О", "O",
	"п", "p", "П", "P",
	"р", "r", "Р", "R",
	"с", "s", "С", "S",
	"т", "t", "Т", "T",
	"у", "u", "У", "U",
	"ф", "f", "Ф", "F",
	"х", "h", "Х", "H",
	"ы", "y", "Ы", "Y",
	"э", "e", "Э", "E",
	"ъ", "'", "Ъ", "'",
	"ь", "'", "Ь", "'",
)

// Transliterate rewrites Russian Cyrillic letters as Latin. Other characters pass through.
func Transliterate(s string) string {
	return cyrillicToLatin.Replace(s)
}
