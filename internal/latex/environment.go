package latex

// Environment is a named delimiter pair such as \text{ / } or
// \begin{matrix} / \end{matrix}. Pure value type used transiently by scans.
type Environment struct {
	Open  string
	Close string
}

// NewEnvironment creates an environment from its delimiter pair.
func NewEnvironment(open, close string) Environment {
	return Environment{Open: open, Close: close}
}

// BeginEndEnvironment builds the \begin{name} / \end{name} pair.
func BeginEndEnvironment(name string) Environment {
	return Environment{
		Open:  `\begin{` + name + `}`,
		Close: `\end{` + name + `}`,
	}
}

// IsZero returns true if the environment has no delimiters.
func (e Environment) IsZero() bool {
	return e.Open == "" && e.Close == ""
}
