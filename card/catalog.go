package card

// Font is a selectable card font.
type Font struct {
	Name  string
	Value string

	// Files are TTF file names tried, in order, when rasterizing.
	Files []string

	// Weight picks the embedded fallback face when no file is found.
	Weight FontWeight
}

// FontWeight picks among the embedded fallback faces.
type FontWeight int

const (
	WeightRegular FontWeight = iota
	WeightMedium
	WeightBold
)

// Fonts is the font catalog in display order.
var Fonts = []Font{
	{Name: "Roboto", Value: "font-roboto", Files: []string{"Roboto-Bold.ttf", "Roboto-Regular.ttf"}, Weight: WeightBold},
	{Name: "Open Sans", Value: "font-open-sans", Files: []string{"OpenSans-Bold.ttf", "OpenSans-Regular.ttf"}, Weight: WeightBold},
	{Name: "Lato", Value: "font-lato", Files: []string{"Lato-Bold.ttf", "Lato-Regular.ttf"}, Weight: WeightBold},
	{Name: "Montserrat", Value: "font-montserrat", Files: []string{"Montserrat-Bold.ttf", "Montserrat-Regular.ttf"}, Weight: WeightBold},
	{Name: "Oswald", Value: "font-oswald", Files: []string{"Oswald-Bold.ttf", "Oswald-Regular.ttf"}, Weight: WeightMedium},
	{Name: "Playfair Display", Value: "font-playfair-display", Files: []string{"PlayfairDisplay-Bold.ttf", "PlayfairDisplay-Regular.ttf"}, Weight: WeightBold},
	{Name: "Merriweather", Value: "font-merriweather", Files: []string{"Merriweather-Bold.ttf", "Merriweather-Regular.ttf"}, Weight: WeightBold},
	{Name: "Tiro Gurmukhi", Value: "font-tiro-gurmukhi", Files: []string{"TiroGurmukhi-Regular.ttf"}},
	{Name: "Raavi", Value: "font-raavi", Files: []string{"raavi.ttf", "Raavi.ttf", "raavib.ttf"}},
}

// PunjabiFonts are the fonts able to render Punjabi text.
var PunjabiFonts = []string{"font-tiro-gurmukhi", "font-raavi"}

// PunjabiDefaultFont is the font switched to when Punjabi is selected.
const PunjabiDefaultFont = "font-tiro-gurmukhi"

const (
	LanguageEnglish = "English"
	LanguageUrdu    = "Urdu"
	LanguagePunjabi = "Punjabi"
)

// Option is a name/value pair shown in a selector.
type Option struct {
	Name  string
	Value string
}

// Languages is the language catalog.
var Languages = []Option{
	{Name: "English", Value: LanguageEnglish},
	{Name: "Urdu", Value: LanguageUrdu},
	{Name: "Punjabi", Value: LanguagePunjabi},
}

// Tones is the tone catalog.
var Tones = []Option{
	{Name: "Inspirational", Value: "inspirational"},
	{Name: "Witty", Value: "witty"},
	{Name: "Philosophical", Value: "philosophical"},
	{Name: "Humorous", Value: "humorous"},
	{Name: "Hopeful", Value: "hopeful"},
	{Name: "Serious", Value: "serious"},
}

// LookupFont returns the catalog entry for value.
func LookupFont(value string) (Font, bool) {
	for _, f := range Fonts {
		if f.Value == value {
			return f, true
		}
	}
	return Font{}, false
}

// FontValues returns the catalog values in display order.
func FontValues() []string {
	values := make([]string, len(Fonts))
	for i, f := range Fonts {
		values[i] = f.Value
	}
	return values
}

// IsPunjabiFont reports whether value can render Punjabi text.
func IsPunjabiFont(value string) bool {
	for _, f := range PunjabiFonts {
		if f == value {
			return true
		}
	}
	return false
}

// OptionValues returns the values of opts in order.
func OptionValues(opts []Option) []string {
	values := make([]string, len(opts))
	for i, o := range opts {
		values[i] = o.Value
	}
	return values
}

// OptionName returns the display name for value, or value itself when it is
// not in opts.
func OptionName(opts []Option, value string) string {
	for _, o := range opts {
		if o.Value == value {
			return o.Name
		}
	}
	return value
}
