package translate

import (
	"context"

	"github.com/locnguyen04/digest-flow/internal/language"
)

// Translator converts text into the selected target language.
// A selection of None is an identity pass-through, not an error.
type Translator interface {
	Translate(ctx context.Context, text string, sel language.Selection) (string, error)
}
