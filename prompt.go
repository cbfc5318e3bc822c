package travel

// Prompter asks the user for input.
type Prompter interface {
	// PromptText asks for a line of text, proposing def. It returns false if
	// the user canceled.
	PromptText(message, def string) (string, bool)
	// Confirm asks a yes/no question.
	Confirm(message string) bool
}

// Opener opens a link in the user's browser.
type Opener interface {
	Open(url string) error
}

// promptNonEmpty asks for a value and treats a cancel or an empty answer the same way.
func promptNonEmpty(p Prompter, message, def string) (string, error) {
	v, ok := p.PromptText(message, def)
	if !ok || v == "" {
		return "", ErrCanceled
	}
	return v, nil
}

// OpenLink opens link with o. Links are not validated.
func OpenLink(o Opener, link string) error {
	if link == "" {
		return ErrNoLink
	}
	return o.Open(link)
}
