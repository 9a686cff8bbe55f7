package service

import (
	"fmt"

	"github.com/fizennn/Seejam-Server/internal/apperr"
	"github.com/fizennn/Seejam-Server/internal/game"

	"github.com/google/uuid"
)

// DuelRepo is the minimal repository interface the duel state machine
// needs. Using a small interface simplifies testing.
type DuelRepo interface {
	CreateDuel(d *game.Duel) error
	GetDuelByPublicID(publicID string) (*game.Duel, error)
	UpdateDuel(d *game.Duel) error
}

// CardLookup resolves catalog cards during play resolution. *catalog.Cards
// satisfies it.
type CardLookup interface {
	Get(id uint) (*game.Card, error)
	GetMany(ids []uint) (map[uint]*game.Card, error)
}

// PlayerRef names one side of a new duel. DeckID is required for user
// owners and ignored for NPCs.
type PlayerRef struct {
	Owner  game.OwnerRef
	DeckID *uint
}

const logDuelInitialized = "Duel initialized"

func logTurnBegins(turn int) string {
	return fmt.Sprintf("Turn %d begins", turn)
}

// CreateDuel builds both starting snapshots, persists the initial duel and
// returns it sanitized for the given viewer. A player cannot duel
// themselves.
func CreateDuel(repo DuelRepo, lookup LookupRepo, sh Shuffler, p1, p2 PlayerRef, viewerUserID uint) (*DuelView, error) {
	if p1.Owner == p2.Owner {
		return nil, apperr.InvalidArgument("both sides reference the same %s %d", p1.Owner.Kind, p1.Owner.ID)
	}

	snap1, err := BuildPlayerSnapshot(lookup, p1.Owner, p1.DeckID, sh)
	if err != nil {
		return nil, err
	}
	snap2, err := BuildPlayerSnapshot(lookup, p2.Owner, p2.DeckID, sh)
	if err != nil {
		return nil, err
	}

	d := &game.Duel{
		PublicID:  uuid.NewString(),
		Player1:   snap1,
		Player2:   snap2,
		Turn:      1,
		Status:    game.StatusOngoing,
		BattleLog: []string{logDuelInitialized, logTurnBegins(1)},
	}
	if err := repo.CreateDuel(d); err != nil {
		return nil, err
	}
	return SanitizeForViewer(d, viewerUserID), nil
}
