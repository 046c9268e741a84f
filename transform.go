package restyle

// Transform folds rules over buf in order, each rule consuming the output of
// the previous one. It has no side effects.
func Transform(buf string, rules []Rule) string {
	for _, rule := range rules {
		buf = rule.Apply(buf)
	}
	return buf
}

// Report returns whether final differs from original.
func Report(original, final string) bool {
	return original != final
}
