// Package restyle rewrites utility-class strings in a single source file to
// a flatter, simpler visual style.
//
// A rewrite loads the file into one buffer, folds an ordered list of rules
// over it, collapses runs of spaces, and writes the buffer back to the same
// path:
//
//	result, err := restyle.Rewrite(ctx, restyle.Config{
//		Path:     "src/app/dashboard/pacientes/[id]/PatientDetailClient.tsx",
//		Encoding: "utf-8",
//	})
//	fmt.Println("Text was modified:", result.Modified)
//
// Rules are either a Literal (exact substring) or a Pattern (regular
// expression with a literal replacement). DefaultRules returns the built-in
// set; Transform applies any rule list to a string without touching disk.
//
// # CLI Tool
//
// Install with:
//
//	go install github.com/yacobolo/restyle/cmd/restyle@latest
package restyle
