package calculus

// Engine turns expression text into something computable.
// expr.Engine is the stock implementation.
type Engine interface {
	// Compile returns text as a function of variable.
	Compile(text, variable string) (func(float64) float64, error)

	// Differentiate returns the text of d(text)/d(variable).
	Differentiate(text, variable string) (string, error)
}
