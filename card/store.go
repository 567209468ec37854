package card

import "strings"

// Request is the input of one quote generation.
type Request struct {
	Topic    string
	Tone     string
	Language string
}

// Store holds the card configuration of one session.
//
// Setters are independent and never fail. After each mutation the store
// reconciles derived state: a Punjabi language forces a Punjabi font.
// A Store is not safe for concurrent use.
type Store struct {
	cfg Config
}

// NewStore returns a store seeded with cfg.
func NewStore(cfg Config) *Store {
	s := &Store{cfg: cfg}
	s.reconcile()
	return s
}

// Config returns a copy of the current configuration.
func (s *Store) Config() Config { return s.cfg }

func (s *Store) SetQuote(v string)     { s.cfg.Quote = v; s.reconcile() }
func (s *Store) SetTopic(v string)     { s.cfg.Topic = v; s.reconcile() }
func (s *Store) SetSignature(v string) { s.cfg.Signature = v; s.reconcile() }
func (s *Store) SetLanguage(v string)  { s.cfg.Language = v; s.reconcile() }
func (s *Store) SetTone(v string)      { s.cfg.Tone = v; s.reconcile() }

func (s *Store) SetFont(v string)            { s.cfg.Style.Font = v; s.reconcile() }
func (s *Store) SetAlignment(v Alignment)    { s.cfg.Style.Alignment = v; s.reconcile() }
func (s *Store) SetThemeColor(v string)      { s.cfg.Style.ThemeColor = v; s.reconcile() }
func (s *Store) SetAccentColor(v string)     { s.cfg.Style.AccentColor = v; s.reconcile() }
func (s *Store) SetShowSignature(v bool)     { s.cfg.ShowSignature = v; s.reconcile() }
func (s *Store) SetUserImage(dataURL string) { s.cfg.UserImage = dataURL; s.reconcile() }

// RemoveUserImage clears the user image.
func (s *Store) RemoveUserImage() { s.SetUserImage("") }

// Request snapshots the generation inputs.
func (s *Store) Request() Request {
	return Request{
		Topic:    s.cfg.Topic,
		Tone:     s.cfg.Tone,
		Language: s.cfg.Language,
	}
}

// BeginGeneration marks a generation as pending and clears the quote.
// It returns false, leaving the store untouched, if one is already pending.
func (s *Store) BeginGeneration() bool {
	if s.cfg.IsGenerating {
		return false
	}
	s.cfg.IsGenerating = true
	s.cfg.Quote = ""
	return true
}

// FinishGeneration records the outcome of the pending generation.
func (s *Store) FinishGeneration(text string, err error) {
	if err != nil {
		s.cfg.Quote = FallbackQuote
	} else {
		s.cfg.Quote = strings.TrimSpace(text)
	}
	s.cfg.IsGenerating = false
	s.reconcile()
}

func (s *Store) reconcile() {
	if s.cfg.Language == LanguagePunjabi && !IsPunjabiFont(s.cfg.Style.Font) {
		s.cfg.Style.Font = PunjabiDefaultFont
	}
}
