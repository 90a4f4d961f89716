package kernel

// ProfanityChecker decides whether a text may not be used as a name.
// It is passed explicitly to the constructors that need it.
type ProfanityChecker interface {
	ContainsProfanity(text string) bool
}

// ProfanityCheckerFunc adapts a plain function to ProfanityChecker.
type ProfanityCheckerFunc func(text string) bool

func (f ProfanityCheckerFunc) ContainsProfanity(text string) bool {
	return f(text)
}
