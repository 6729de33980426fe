// Package tsplib - proven optima for classic Euclidean instances.
package tsplib

import "strings"

// knownOptima maps lowercase instance names to the proven optimal tour
// length published with TSPLIB. Only EUC_2D instances are listed, since
// those are the ones this package can parse.
var knownOptima = map[string]float64{
	"a280":     2579,
	"berlin52": 7542,
	"ch130":    6110,
	"ch150":    6528,
	"eil51":    426,
	"eil76":    538,
	"eil101":   629,
	"kroa100":  21282,
	"krob100":  22141,
	"kroc100":  20749,
	"krod100":  21294,
	"kroe100":  22068,
	"lin105":   14379,
	"pcb442":   50778,
	"pr76":     108159,
	"pr1002":   259045,
	"rat99":    1211,
	"rd100":    7910,
	"st70":     675,
	"tsp225":   3916,
}

// KnownOptimal looks up the proven optimum for an instance name. Matching
// is case-insensitive and ignores surrounding whitespace, so a NAME header
// can be passed through unmodified.
func KnownOptimal(name string) (float64, bool) {
	v, ok := knownOptima[strings.ToLower(strings.TrimSpace(name))]
	return v, ok
}
