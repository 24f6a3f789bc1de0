package entity

type HintKind string

const (
	HintValidMove      HintKind = "valid_move"
	HintCapturable     HintKind = "capturable"
	HintThreatened     HintKind = "threatened"
	HintScoreIndicator HintKind = "score_indicator"
	HintMoveCount      HintKind = "move_count"
)

type HintStyle string

const (
	StyleHighlight HintStyle = "highlight"
	StyleWarning   HintStyle = "warning"
	StyleInfo      HintStyle = "info"
)

// HintOverlay - one marker drawn over a board cell.
type HintOverlay struct {
	Position Position  `json:"position"`
	Kind     HintKind  `json:"kind"`
	Style    HintStyle `json:"style"`
	Content  string    `json:"content,omitempty"`
}

type HintState struct {
	Enabled  bool          `json:"enabled"`
	Selected *Position     `json:"selected,omitempty"`
	Overlays []HintOverlay `json:"overlays"`
}

// Manifest - describes a game for navigation and documentation pages.
type Manifest struct {
	Name             string `json:"name"`
	DisplayName      string `json:"display_name"`
	ShortDescription string `json:"short_description"`
	Path             string `json:"path"`
	RulesFile        string `json:"rules_file"`
}
