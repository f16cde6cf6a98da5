package command

import "strings"

// parsedUsage is the one-time parse of a command's usage string.
type parsedUsage struct {
	keyword        string
	mandatoryCount int
	expectedNames  []string
}

// parseUsage parses a usage string such as "kw (a) [b] [c]": the first
// whitespace-separated token is the keyword; each `(name)` increases the
// mandatory count; bracket characters are stripped from every remaining
// token, which becomes an expected argument name in order.
func parseUsage(usage string) parsedUsage {
	fields := strings.Fields(usage)
	if len(fields) == 0 {
		return parsedUsage{}
	}

	p := parsedUsage{keyword: fields[0]}
	for _, f := range fields[1:] {
		mandatory := strings.HasPrefix(f, "(") && strings.HasSuffix(f, ")")
		name := strings.Trim(f, "()[]")
		if name == "" {
			continue
		}
		if mandatory {
			p.mandatoryCount++
		}
		p.expectedNames = append(p.expectedNames, name)
	}
	return p
}
