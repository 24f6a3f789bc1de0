package concentration

import (
	"fmt"

	"github.com/rocketscienceinc/tabletop-backend/internal/apperror"
	"github.com/rocketscienceinc/tabletop-backend/internal/entity"
	"golang.org/x/exp/rand"
)

type Player string

const (
	Player1 Player = "PLAYER1"
	Player2 Player = "PLAYER2"

	None Player = ""
)

func (that Player) Opponent() Player {
	if that == Player1 {
		return Player2
	}
	return Player1
}

type Phase string

const (
	PhaseTurn       Phase = "turn"
	PhaseEvaluating Phase = "evaluating"
	PhaseGameOver   Phase = "game_over"
)

const (
	SuitJoker  = "J"
	matchJoker = "joker"
)

type Card struct {
	ID        int    `json:"id"`
	Suit      string `json:"suit"`
	Rank      int    `json:"rank"`
	MatchID   string `json:"match_id"`
	Flipped   bool   `json:"flipped"`
	Matched   bool   `json:"matched"`
	MatchedBy Player `json:"matched_by,omitempty"`
}

type Scores struct {
	Player1 int `json:"PLAYER1"`
	Player2 int `json:"PLAYER2"`
}

type State struct {
	Board         []Card        `json:"board"`
	CurrentPlayer Player        `json:"current_player"`
	Phase         Phase         `json:"phase"`
	Status        entity.Status `json:"status"`
	Winner        Player        `json:"winner"`
	IsDraw        bool          `json:"is_draw"`
	Scores        Scores        `json:"scores"`
	// Flipped - face-up cards of the current turn, at most two.
	Flipped []int `json:"flipped"`
	// Revealed - every card seen at least once.
	Revealed []int `json:"revealed"`
	// Hinted - unmatched known pairs, set once at least two such pairs exist.
	Hinted []int `json:"hinted"`
	Seed   int64 `json:"seed"`
}

type deckLayout struct {
	suits  []string
	ranks  int
	jokers int
}

func deckFor(difficulty entity.Difficulty) (deckLayout, error) {
	switch difficulty {
	case entity.DifficultyEasy:
		return deckLayout{suits: []string{"S", "H"}, ranks: 10}, nil
	case entity.DifficultyNormal, "":
		return deckLayout{suits: []string{"S", "H", "D", "C"}, ranks: 10}, nil
	case entity.DifficultyHard:
		return deckLayout{suits: []string{"S", "H", "D", "C"}, ranks: 13, jokers: 2}, nil
	default:
		return deckLayout{}, fmt.Errorf("%w: %q", apperror.ErrInvalidDifficulty, difficulty)
	}
}

// NewState - a deck for the difficulty shuffled by seed. The same seed always deals the same board.
func NewState(difficulty entity.Difficulty, seed int64) (*State, error) {
	layout, err := deckFor(difficulty)
	if err != nil {
		return nil, err
	}

	var deck []Card
	for _, suit := range layout.suits {
		for rank := 1; rank <= layout.ranks; rank++ {
			deck = append(deck, Card{Suit: suit, Rank: rank, MatchID: fmt.Sprintf("r%02d", rank)})
		}
	}
	for i := 0; i < layout.jokers; i++ {
		deck = append(deck, Card{Suit: SuitJoker, MatchID: matchJoker})
	}

	rng := rand.New(rand.NewSource(uint64(seed)))
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})

	for i := range deck {
		deck[i].ID = i
	}

	return &State{
		Board:         deck,
		CurrentPlayer: Player1,
		Phase:         PhaseTurn,
		Status:        entity.StatusPlaying,
		Seed:          seed,
	}, nil
}

func (that *State) IsFinished() bool {
	return that.Status == entity.StatusEnded
}
