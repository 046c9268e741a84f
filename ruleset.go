package restyle

// RuleGroup is a named run of consecutive rules. Groups exist for display
// only; the rewrite applies the flattened list in order.
type RuleGroup struct {
	Name  string
	Rules []Rule
}

// collapseSpaces turns every run of two or more spaces into one.
// Tabs and newlines are left alone.
var collapseSpaces = MustPattern(` {2,}`, " ")

// unicodeSpace matches the characters Unicode text processing treats as
// whitespace, which is wider than RE2's \s.
const unicodeSpace = `[\s\v\x1c-\x1f\x85\p{Z}]`

var (
	blurDecoration = MustPattern(unicodeSpace+`*<div className="absolute[^>]*blur-\[60px\][^>]*/>`, "")

	rounded3rem  = MustPattern(`rounded-\[3rem\]`, "rounded-2xl")
	rounded25rem = MustPattern(`rounded-\[2\.5rem\]`, "rounded-2xl")
	rounded4xl   = MustPattern(`rounded-4xl`, "rounded-2xl")
	rounded3xl   = MustPattern(`rounded-3xl`, "rounded-2xl")
)

// DefaultRuleGroups returns the built-in "soften" rule set grouped by the
// kind of token it touches. Order matters across and within groups: later
// rules see the output of earlier ones, and space collapsing runs last.
func DefaultRuleGroups() []RuleGroup {
	return []RuleGroup{
		{
			Name:  "Decorations",
			Rules: []Rule{blurDecoration},
		},
		{
			Name:  "Corners",
			Rules: []Rule{rounded3rem, rounded25rem, rounded4xl, rounded3xl},
		},
		{
			Name: "Typography",
			Rules: []Rule{
				Literal{Old: "font-black", New: "font-medium"},
				Literal{Old: "tracking-tighter", New: ""},
				Literal{Old: "italic", New: ""},
				Literal{Old: "tracking-[0.2em]", New: ""},
				Literal{Old: "tracking-widest", New: ""},
				Literal{Old: "text-[10px]", New: "text-xs"},
				Literal{Old: "uppercase", New: ""},
				Literal{Old: "text-4xl", New: "text-2xl"},
			},
		},
		{
			Name: "Shadows",
			Rules: []Rule{
				Literal{Old: "shadow-2xl shadow-emerald-100", New: "shadow-sm"},
				Literal{Old: "shadow-2xl shadow-slate-300", New: "shadow-sm"},
				Literal{Old: "shadow-2xl", New: "shadow-sm"},
				Literal{Old: "shadow-xl shadow-slate-200/40", New: "shadow-sm"},
			},
		},
		{
			Name: "Buttons and colors",
			Rules: []Rule{
				// Two spaces: must run before collapsing.
				Literal{Old: "bg-slate-900  text-white", New: "bg-white border border-slate-200 text-slate-800"},
				Literal{Old: "bg-slate-900", New: "bg-white border text-slate-800"},
				Literal{Old: "text-emerald-400", New: "text-emerald-600"},
				Literal{Old: "bg-white/5", New: "bg-slate-100"},
				Literal{Old: "border-white/10", New: "border-slate-200"},
				Literal{Old: "text-emerald-100", New: "text-emerald-700"},
				Literal{
					Old: "bg-emerald-600 hover:bg-emerald-700 text-white font-medium h-14 px-10 rounded-2xl",
					New: "bg-emerald-600 hover:bg-emerald-700 text-white font-semibold h-10 px-4 rounded-xl",
				},
				Literal{Old: "rounded-2xl h-14 px-8", New: "rounded-xl h-10 px-4"},
				Literal{Old: "h-14 px-10 rounded-2xl", New: "h-10 px-4 rounded-xl"},
			},
		},
		{
			Name:  "Whitespace",
			Rules: []Rule{collapseSpaces},
		},
	}
}

// DefaultRules returns the built-in rule set as one ordered list.
// Each call returns a fresh slice.
func DefaultRules() []Rule {
	return Flatten(DefaultRuleGroups())
}

// Flatten concatenates the rules of each group in order.
func Flatten(groups []RuleGroup) []Rule {
	var n int
	for _, g := range groups {
		n += len(g.Rules)
	}
	rules := make([]Rule, 0, n)
	for _, g := range groups {
		rules = append(rules, g.Rules...)
	}
	return rules
}
