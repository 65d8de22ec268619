package validators

import "strings"

// Rule names accepted in Rule.Checks.
const (
	RuleRequired         = "required"
	RuleIsEmail          = "isEmail"
	RuleIsStrongPassword = "isStrongPassword"
)

// Rule declares the checks applied to one field. Checks is a comma separated
// list of rule names; an empty Checks keeps the field without checking it.
type Rule struct {
	Field  string
	Checks string
}

// RuleSet is evaluated in declaration order.
type RuleSet []Rule

// checks returns the rule names of r with "required" moved to the front.
func (r Rule) checks() []string {
	if strings.TrimSpace(r.Checks) == "" {
		return nil
	}

	parts := strings.Split(r.Checks, ",")
	out := make([]string, 0, len(parts))
	required := false
	for _, p := range parts {
		p = strings.TrimSpace(p)
		switch p {
		case "":
		case RuleRequired:
			required = true
		default:
			out = append(out, p)
		}
	}

	if required {
		out = append([]string{RuleRequired}, out...)
	}
	return out
}

// With returns a copy of rs extended by rules.
func (rs RuleSet) With(rules ...Rule) RuleSet {
	out := make(RuleSet, 0, len(rs)+len(rules))
	out = append(out, rs...)
	return append(out, rules...)
}
