package builtins

import "strings"

// skillIndex is the UO skill name → client skill-list index table `useskill`
// resolves its argument against before calling host.Actions.UseSkill.
// Names are matched case-insensitively and with spaces stripped, so both
// `useskill "Detect Hidden"` and `useskill "detecthidden"` work.
var skillIndex = map[string]int{
	"alchemy":        0,
	"anatomy":        1,
	"animallore":     2,
	"itemidentification": 3,
	"armslore":       4,
	"parrying":       5,
	"begging":        6,
	"blacksmithing":  7,
	"bowcraft":       8,
	"peacemaking":    9,
	"camping":        10,
	"carpentry":      11,
	"cartography":    12,
	"cooking":        13,
	"detecthidden":   14,
	"enticement":     15,
	"evaluatingintelligence": 16,
	"healing":        17,
	"fishing":        18,
	"forensicevaluation": 19,
	"herding":        20,
	"hiding":         21,
	"provocation":    22,
	"inscription":    23,
	"lockpicking":    24,
	"magery":         25,
	"magicresistance": 26,
	"tactics":        27,
	"snooping":       28,
	"musicianship":   29,
	"poisoning":      30,
	"archery":        31,
	"spiritspeak":    32,
	"stealing":       33,
	"tailoring":      34,
	"animaltaming":   35,
	"taste_id":       36,
	"tinkering":      37,
	"tracking":       38,
	"veterinary":     39,
	"swordsmanship":  40,
	"macefighting":   41,
	"fencing":        42,
	"wrestling":      43,
	"lumberjacking":  44,
	"mining":         45,
	"meditation":     46,
	"stealth":        47,
	"removetrap":     48,
	"necromancy":     49,
	"focus":          50,
	"chivalry":       51,
	"bushido":        52,
	"ninjitsu":       53,
	"spellweaving":   54,
	"mysticism":      55,
	"imbuing":        56,
	"throwing":       57,
}

// ResolveSkill resolves name (any casing, spaces ignored) to its skill-list
// index. ok is false for an unrecognised name.
func ResolveSkill(name string) (int, bool) {
	key := strings.ReplaceAll(strings.ToLower(name), " ", "")
	idx, ok := skillIndex[key]
	return idx, ok
}
