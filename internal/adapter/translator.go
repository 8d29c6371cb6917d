package adapter

import "context"

// Translator converts one contiguous run of source-script text into the
// target script. Calls are synchronous and never concurrent: the engine
// finishes one run before submitting the next. A failed translation must
// surface as an error, never as empty text.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

// TranslatorFunc adapts a plain function to the Translator interface. Tests
// use it to plug in deterministic stubs.
type TranslatorFunc func(ctx context.Context, text string) (string, error)

// Translate implements Translator.
func (f TranslatorFunc) Translate(ctx context.Context, text string) (string, error) {
	return f(ctx, text)
}
