package auditing

import (
	"regexp"
	"strings"
)

// campaignLangToken matches the language tag convention embedded in
// campaign names: "L-EN", "L_DE", "LFR".
var campaignLangToken = regexp.MustCompile(`\bL[-_]?([A-Za-z]{2})\b`)

var nonLetters = regexp.MustCompile(`[^a-z]`)

// languageNames maps ISO 639-1 codes to the language names the ads
// platform uses in its targeting field.
var languageNames = map[string]string{
	"af": "Afrikaans", "sq": "Albanian", "am": "Amharic", "ar": "Arabic",
	"hy": "Armenian", "az": "Azerbaijani", "eu": "Basque", "be": "Belarusian",
	"bn": "Bengali", "bs": "Bosnian", "bg": "Bulgarian", "ca": "Catalan",
	"ceb": "Cebuano", "ny": "Chichewa", "zh": "Chinese", "co": "Corsican",
	"hr": "Croatian", "cs": "Czech", "da": "Danish", "nl": "Dutch",
	"en": "English", "eo": "Esperanto", "et": "Estonian", "tl": "Filipino",
	"fi": "Finnish", "fr": "French", "fy": "Frisian", "gl": "Galician",
	"ka": "Georgian", "de": "German", "el": "Greek", "gu": "Gujarati",
	"ht": "Haitian Creole", "ha": "Hausa", "haw": "Hawaiian", "he": "Hebrew",
	"hi": "Hindi", "hmn": "Hmong", "hu": "Hungarian", "is": "Icelandic",
	"ig": "Igbo", "id": "Indonesian", "ga": "Irish", "it": "Italian",
	"ja": "Japanese", "jw": "Javanese", "kn": "Kannada", "kk": "Kazakh",
	"km": "Khmer", "rw": "Kinyarwanda", "ko": "Korean", "ku": "Kurdish (Kurmanji)",
	"ky": "Kyrgyz", "lo": "Lao", "la": "Latin", "lv": "Latvian",
	"lt": "Lithuanian", "lb": "Luxembourgish", "mk": "Macedonian", "mg": "Malagasy",
	"ms": "Malay", "ml": "Malayalam", "mt": "Maltese", "mi": "Maori",
	"mr": "Marathi", "mn": "Mongolian", "my": "Myanmar (Burmese)", "ne": "Nepali",
	"no": "Norwegian", "or": "Odia (Oriya)", "ps": "Pashto", "fa": "Persian",
	"pl": "Polish", "pt": "Portuguese", "pa": "Punjabi", "ro": "Romanian",
	"ru": "Russian", "sm": "Samoan", "gd": "Scots Gaelic", "sr": "Serbian",
	"st": "Sesotho", "sn": "Shona", "sd": "Sindhi", "si": "Sinhala",
	"sk": "Slovak", "sl": "Slovenian", "so": "Somali", "es": "Spanish",
	"su": "Sundanese", "sw": "Swahili", "sv": "Swedish", "tg": "Tajik",
	"ta": "Tamil", "tt": "Tatar", "te": "Telugu", "th": "Thai",
	"tr": "Turkish", "tk": "Turkmen", "uk": "Ukrainian", "ur": "Urdu",
	"ug": "Uyghur", "uz": "Uzbek", "vi": "Vietnamese", "cy": "Welsh",
	"xh": "Xhosa", "yi": "Yidish", "yo": "Yoruba", "zu": "Zulu",
}

// languageMismatch checks whether the language tag embedded in a campaign
// name contradicts the campaign's targeted language. Campaigns without a
// recognizable tag never mismatch. The comparison keeps letters only, so
// "Chinese (simplified)" still matches "zh".
func languageMismatch(campaignName, targetLanguage string) (expected string, mismatch bool) {
	m := campaignLangToken.FindStringSubmatch(campaignName)
	if m == nil {
		return "", false
	}

	expected = languageNames[strings.ToLower(m[1])]
	if expected == "" {
		return "", false
	}

	normTarget := nonLetters.ReplaceAllString(strings.ToLower(targetLanguage), "")
	normExpected := nonLetters.ReplaceAllString(strings.ToLower(expected), "")
	return expected, !strings.Contains(normTarget, normExpected)
}
