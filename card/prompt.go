package card

import "fmt"

// punjabiPromptLanguage pins the script and dialect for Punjabi output.
const punjabiPromptLanguage = "Pakistani Punjabi (Shahmukhi script)"

// PromptLanguage returns the language phrase used in the prompt.
func PromptLanguage(language string) string {
	if language == LanguagePunjabi {
		return punjabiPromptLanguage
	}
	return language
}

// Prompt builds the text-generation prompt for req.
func Prompt(req Request) string {
	return fmt.Sprintf(
		"Generate a short, %s quote about \"%s\". The quote should be in %s. Do not include quotation marks or any attributions.",
		req.Tone, req.Topic, PromptLanguage(req.Language),
	)
}
