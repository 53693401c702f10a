package transcribe

import "strings"

// scribe returns ISO 639-3 style codes, the translator wants 639-1
var scribeToISO = map[string]string{
	"spa": "es", "eng": "en", "fra": "fr", "deu": "de", "ita": "it",
	"por": "pt", "rus": "ru", "jpn": "ja", "kor": "ko", "zho": "zh",
	"ara": "ar", "hin": "hi",
}

// whisper verbose responses carry the language as a lowercase name
var whisperToISO = map[string]string{
	"spanish": "es", "english": "en", "french": "fr", "german": "de",
	"italian": "it", "portuguese": "pt", "russian": "ru", "japanese": "ja",
	"korean": "ko", "chinese": "zh", "arabic": "ar", "hindi": "hi",
}

// ISOFromScribe maps an ElevenLabs language code to ISO 639-1. Unknown
// three-letter codes are truncated to their first two letters.
func ISOFromScribe(code string) string {
	if code == "" {
		return ""
	}
	code = strings.ToLower(code)
	if iso, ok := scribeToISO[code]; ok {
		return iso
	}
	if len(code) > 2 {
		return code[:2]
	}
	return code
}

// ISOFromWhisper maps a Whisper language name to ISO 639-1.
func ISOFromWhisper(name string) string {
	if name == "" {
		return ""
	}
	name = strings.ToLower(name)
	if iso, ok := whisperToISO[name]; ok {
		return iso
	}
	if len(name) == 2 {
		return name
	}
	return ""
}

var englishFunctionWords = []string{
	" the ", " and ", " is ", " i ", " you ", " to ", " of ", " that ", " it ",
}

// LikelyEnglish guesses whether text is English when the service did not
// report a language. Counts common function words.
func LikelyEnglish(text string) bool {
	if text == "" {
		return false
	}
	padded := " " + strings.ToLower(text) + " "
	count := 0
	for _, w := range englishFunctionWords {
		if strings.Contains(padded, w) {
			count++
		}
	}
	return count >= 2
}
