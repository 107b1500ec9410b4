package impact

// Fixed keyword taxonomy for the oil-market domain. The lists are frozen on
// purpose: classification must be reproducible across runs, so any tuning
// happens here and nowhere else.

var bullishWords = []string{
	"surge", "rally", "jump", "soar", "spike", "upward",
	"tighten", "deficit", "outage", "sanction", "strike",
}

var bearishWords = []string{
	"plunge", "drop", "decline", "fall", "bearish",
	"glut", "oversupply", "slowdown", "recession", "ceasefire",
}

// Mechanism labels, in tie-break priority order.
const (
	MechanismGeopolitical = "Geopolitical risk / premium"
	MechanismSupply       = "Physical supply change"
	MechanismDemand       = "Macro-demand channel"
	MechanismInventory    = "Inventory signal (build/draw)"
	MechanismNone         = "No clear mechanism"
)

// mechanismCategories are scanned per headline: a headline contributes one
// hit to a category when any of its keywords occurs. Order is the fixed
// priority used to resolve tied tallies.
var mechanismCategories = []struct {
	label    string
	keywords []string
}{
	{MechanismGeopolitical, []string{"war", "tension", "attack", "ceasefire", "sanction", "missile", "strike"}},
	{MechanismSupply, []string{"output", "production", "supply", "pipeline", "refinery", "outage"}},
	{MechanismDemand, []string{"demand", "slowdown", "recession", "pmi", "china", "consumption"}},
	{MechanismInventory, []string{"inventory", "stock", "build", "draw", "spr", "storage"}},
}
