package olive

import (
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/olive-network/olive-contract/contracts/olive/oliveconst"
)

// Symbol is a parsed "<precision>,<CODE>" symbol argument.
type Symbol struct {
	Precision int
	Code      string
}

func parseSymbol(s string) Symbol {
	parts := std.StringSplit(s, ",")
	if len(parts) != 2 {
		panic("invalid symbol name")
	}

	p := parts[0]
	if len(p) == 0 || len(p) > 2 {
		panic("invalid symbol precision")
	}

	precision := 0
	for i := 0; i < len(p); i++ {
		c := p[i]
		if c < '0' || c > '9' {
			panic("invalid symbol precision")
		}
		precision = precision*10 + int(c-'0')
	}
	if precision > oliveconst.MaxPrecision {
		panic("invalid symbol precision")
	}

	code := parts[1]
	checkSymbolCode(code)

	return Symbol{Precision: precision, Code: code}
}

func checkSymbolCode(code string) {
	ln := len(code)
	if ln == 0 || ln > oliveconst.MaxSymbolCodeLength {
		panic("invalid symbol name")
	}

	for i := 0; i < ln; i++ {
		c := code[i]
		if c < 'A' || c > 'Z' {
			panic("invalid symbol name")
		}
	}
}

// checkPrecision ensures the symbol argument matches the registered token.
func checkPrecision(st Stats, sym Symbol) {
	if st.Precision != sym.Precision {
		panic("symbol precision mismatch")
	}
}

// precisionMultiplier returns the amount of indivisible units in one whole
// token.
func precisionMultiplier(precision int) int {
	mult := 1
	for i := 0; i < precision; i++ {
		mult *= 10
	}

	return mult
}

func isValidAmount(amount int) bool {
	return amount >= -oliveconst.MaxAmount && amount <= oliveconst.MaxAmount
}

func checkAmount(amount int) {
	if !isValidAmount(amount) {
		panic("invalid quantity")
	}
}

// formatAmount renders amount of units as a decimal number followed by the
// symbol code, e.g. "10.0000 OLIVE".
func formatAmount(amount int, sym Symbol) string {
	mult := precisionMultiplier(sym.Precision)

	s := std.Itoa(amount/mult, 10)
	if sym.Precision > 0 {
		frac := std.Itoa(amount%mult, 10)
		for len(frac) < sym.Precision {
			frac = "0" + frac
		}
		s = s + "." + frac
	}

	return s + " " + sym.Code
}
