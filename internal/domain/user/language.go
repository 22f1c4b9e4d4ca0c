package user

// Language is the UI language preference stored on a user.
type Language string

const (
	LanguageEnglish    Language = "en"
	LanguageArabic     Language = "ar"
	LanguageHindi      Language = "hi"
	LanguageIndonesian Language = "id"
	LanguageFilipino   Language = "fil"
	LanguageUrdu       Language = "ur"
	LanguageTwi        Language = "tw"
	LanguageAmharic    Language = "am"
)

// DefaultLanguage is assigned when a user is created without one.
const DefaultLanguage = LanguageEnglish

// Languages lists every supported language code.
var Languages = []Language{
	LanguageEnglish,
	LanguageArabic,
	LanguageHindi,
	LanguageIndonesian,
	LanguageFilipino,
	LanguageUrdu,
	LanguageTwi,
	LanguageAmharic,
}

// IsValid returns true if the language is one of the supported codes.
func (l Language) IsValid() bool {
	for _, known := range Languages {
		if l == known {
			return true
		}
	}
	return false
}

// String implements fmt.Stringer.
func (l Language) String() string {
	return string(l)
}
