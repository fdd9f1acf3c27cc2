package dotgraph

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/matzehuels/forestmerge/pkg/errors"
)

// colorMask keeps the low 24 bits (RGB) of a region code.
var colorMask = big.NewInt(0xffffff)

// RegionToColor converts a hexadecimal region code to a Graphviz color.
//
// The code is parsed as an arbitrary-precision integer (an optional sign and
// "0x" prefix are accepted), masked to its low 24 bits and formatted as
// lowercase hex without zero padding:
//
//	RegionToColor("ff0000")           // "#ff0000"
//	RegionToColor("1000000ff")        // "#ff"
//	RegionToColor("0")                // "#0"
//
// Single underscores between digits are accepted as separators ("ff_00"),
// as is one directly after the 0x prefix. Negative codes are masked in two's
// complement.
func RegionToColor(region string) (string, error) {
	s := strings.TrimSpace(region)
	neg := false
	switch {
	case strings.HasPrefix(s, "-"):
		neg = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	prefixed := len(s) > 2 && (s[:2] == "0x" || s[:2] == "0X")
	if prefixed {
		s = s[2:]
	}

	digits, ok := stripSeparators(s, prefixed)
	if !ok || digits == "" || strings.ContainsAny(digits, "+-") {
		return "", errors.New(errors.ErrCodeInvalidRegion, "region %q is not hexadecimal", region)
	}
	n, ok := new(big.Int).SetString(digits, 16)
	if !ok {
		return "", errors.New(errors.ErrCodeInvalidRegion, "region %q is not hexadecimal", region)
	}
	if neg {
		n.Neg(n)
	}

	rgb := new(big.Int).And(n, colorMask)
	return fmt.Sprintf("#%x", rgb.Uint64()), nil
}

// stripSeparators removes digit-group underscores from s. It reports false
// for a leading, trailing or doubled underscore. A leading one is allowed
// when it follows a 0x prefix.
func stripSeparators(s string, prefixed bool) (string, bool) {
	if !strings.Contains(s, "_") {
		return s, true
	}
	if prefixed && strings.HasPrefix(s, "_") {
		s = s[1:]
	}
	if strings.HasPrefix(s, "_") || strings.HasSuffix(s, "_") || strings.Contains(s, "__") {
		return "", false
	}
	return strings.ReplaceAll(s, "_", ""), true
}
