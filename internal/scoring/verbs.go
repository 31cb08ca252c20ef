package scoring

// actionVerbs is the dictionary of strong resume verbs checked at the start of a line.
var actionVerbs = toSet(
	"accelerated", "accomplished", "achieved", "advanced", "allocated", "analyzed", "balanced",
	"benchmarked", "boosted", "broadened", "budgeted", "built", "capitalized", "centralized",
	"championed", "clarified", "collaborated", "combined", "communicated", "competed",
	"conceptualized", "consolidated", "constructed", "consulted", "created", "cultivated",
	"customized", "decreased", "defined", "delegated", "delivered", "demonstrated", "designed",
	"developed", "diagnosed", "directed", "distributed", "diversified", "doubled", "earned", "edited",
	"educated", "eliminated", "embodied", "embraced", "emerged", "empowered", "enabled", "encouraged",
	"enhanced", "established", "evaluated", "exceeded", "executed", "expanded", "expedited",
	"experimented", "explored", "expressed", "facilitated", "financed", "focused", "forecasted",
	"formulated", "founded", "functioned", "furnished", "gained", "gathered", "generated", "granted",
	"grew", "guided", "harnessed", "headed", "honored", "identified", "illustrated", "imagined",
	"implemented", "improved", "increased", "influenced", "initiated", "innovated", "inspected",
	"inspired", "installed", "instituted", "integrated", "introduced", "invented", "invested",
	"isolated", "joined", "kindled", "knew", "launched", "lectured", "led", "licensed", "listened",
	"located", "logged", "managed", "marketed", "mastered", "maximized", "measured", "mentored",
	"merged", "minimized", "mobilized", "modified", "motivated", "mounted", "negotiated", "nominated",
	"nurtured", "observed", "obtained", "operated", "optimized", "orchestrated", "organized",
	"oriented", "outlined", "overhauled", "oversaw", "participated", "partnered", "perfected",
	"performed", "persuaded", "piloted", "pinpointed", "pioneered", "planned", "polished", "prepared",
	"presided", "prevented", "printed", "prioritized", "produced", "promoted", "protected", "proved",
	"provided", "published", "qualified", "questioned", "quit", "raised", "rated", "realized",
	"received", "recognized", "recommended", "recovered", "reduced", "referred", "refined",
	"regulated", "rehabilitated", "reinforced", "rejected", "related", "remodeled", "removed",
	"repaired", "replaced", "reported", "represented", "reproduced", "researched", "resolved",
	"restored", "restricted", "restructured", "retained", "retrieved", "returned", "reviewed",
	"revitalized", "revived", "revolutionized", "saved", "scheduled", "screened", "scrutinized",
	"searched", "secured", "selected", "served", "shaped", "shared", "showed", "simplified", "solved",
	"spearheaded", "specified", "sped", "stimulated", "strengthened", "studied", "succeeded",
	"suggested", "summarized", "supervised", "supplied", "supported", "surpassed", "surveyed",
	"sustained", "tailored", "targeted", "taught", "tested", "timed", "transformed", "translated",
	"transported", "trimmed", "troubled", "truncated", "trusted", "turned", "united", "unveiled",
	"updated", "upgraded", "utilized", "validated", "verified", "visualized", "voiced", "won",
	"wrote",
)

func toSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
