package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-tally/internal/entity"
	"github.com/rocketscienceinc/tictactoe-tally/internal/match"
	"github.com/rocketscienceinc/tictactoe-tally/internal/tictactoe"
)

type sessionRepo interface {
	CreateOrUpdate(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameManager - runs hot-seat sessions. Requests are handled one at a time.
type GameManager struct {
	logger      *slog.Logger
	sessionRepo sessionRepo

	mu sync.Mutex
}

func NewGameManager(logger *slog.Logger, sessionRepo sessionRepo) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		sessionRepo: sessionRepo,
	}
}

// play - is a session brought back to life: the round replayed from its moves and the tracker subscribed to it.
type play struct {
	session *entity.Session
	round   *tictactoe.Round
	tracker *match.Tracker
}

func (that *GameManager) StartSession(ctx context.Context) (*entity.SessionView, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	session := entity.NewSession(uuid.NewString())
	if err := that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed create session: %w", err)
	}

	that.logger.Info("session started", "sessionID", session.ID)

	game := &play{session: session, round: tictactoe.NewRound(), tracker: match.NewTracker()}
	return game.view(), nil
}

func (that *GameManager) GetSession(ctx context.Context, sessionID string) (*entity.SessionView, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	game, err := that.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return game.view(), nil
}

func (that *GameManager) MakeMove(ctx context.Context, sessionID string, cell int) (*entity.SessionView, error) {
	log := that.logger.With("method", "MakeMove", "sessionID", sessionID)

	that.mu.Lock()
	defer that.mu.Unlock()

	game, err := that.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	game.round.OnWin(func(winner entity.Player) {
		log.Info("round won", "winner", winner.Mark())
	})

	if err = game.round.ApplyMove(cell); err != nil {
		log.Debug("move rejected", "cell", cell, "error", err)
		return nil, fmt.Errorf("failed make move: %w", err)
	}

	if game.round.Status().State == entity.StateDraw {
		log.Info("round drawn")
	}

	if err = that.save(ctx, game); err != nil {
		return nil, err
	}

	return game.view(), nil
}

// ResetRound - starts the next round, the tally is kept.
func (that *GameManager) ResetRound(ctx context.Context, sessionID string) (*entity.SessionView, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	game, err := that.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	game.round.Reset()

	if err = that.save(ctx, game); err != nil {
		return nil, err
	}

	return game.view(), nil
}

// ResetMatch - zeroes the tally and starts a new round.
func (that *GameManager) ResetMatch(ctx context.Context, sessionID string) (*entity.SessionView, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	game, err := that.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	game.round.Reset()
	game.tracker.Reset()

	if err = that.save(ctx, game); err != nil {
		return nil, err
	}

	that.logger.Info("match reset", "sessionID", sessionID)

	return game.view(), nil
}

func (that *GameManager) EndSession(ctx context.Context, sessionID string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.sessionRepo.DeleteByID(ctx, sessionID); err != nil {
		return fmt.Errorf("failed delete session: %w", err)
	}

	that.logger.Info("session ended", "sessionID", sessionID)

	return nil
}

func (that *GameManager) load(ctx context.Context, sessionID string) (*play, error) {
	session, err := that.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed get session by id: %w", err)
	}

	round, err := tictactoe.Replay(session.Moves)
	if err != nil {
		return nil, fmt.Errorf("failed restore round: %w", err)
	}

	tracker := match.NewTracker()
	tracker.Restore(session.Tally)

	// subscribed after the replay so rounds already counted are not counted again
	round.OnWin(tracker.RecordWin)

	return &play{session: session, round: round, tracker: tracker}, nil
}

func (that *GameManager) save(ctx context.Context, game *play) error {
	game.session.Moves = game.round.Moves()
	game.session.Tally = game.tracker.CurrentTally()

	if err := that.sessionRepo.CreateOrUpdate(ctx, game.session); err != nil {
		return fmt.Errorf("failed update session: %w", err)
	}

	return nil
}

func (that *play) view() *entity.SessionView {
	status := that.round.Status()

	view := &entity.SessionView{
		ID:            that.session.ID,
		Moves:         that.round.Moves(),
		CurrentPlayer: that.round.CurrentPlayer(),
		Status:        status.State,
		Winner:        status.Winner,
		Tally:         that.tracker.CurrentTally(),
	}

	for cell, owner := range that.round.Board() {
		view.Board[cell] = owner.Mark()
	}

	return view
}
