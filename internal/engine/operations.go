package engine

import (
	"sort"
	"time"

	"github.com/Seednode/quizengine/internal/catalog"
	"github.com/Seednode/quizengine/internal/events"
	"github.com/Seednode/quizengine/internal/mode"
	"github.com/Seednode/quizengine/internal/modifier"
	"github.com/Seednode/quizengine/internal/scoring"
	"github.com/Seednode/quizengine/internal/session"
	"github.com/Seednode/quizengine/internal/xp"
)

// StartSession begins a session for a lobby. questions may be pre-fetched
// by the caller; an empty slice lets the engine try the injected
// QuestionProvider collaborator and finally the built-in trivia set.
func (e *SessionEngine) StartSession(hostID string, desc catalog.LobbyDescriptor, questions []catalog.Question, gm session.GameMode) error {
	return e.call(func() error { return e.startSessionLocked(hostID, desc, questions, gm) })
}

func (e *SessionEngine) startSessionLocked(hostID string, desc catalog.LobbyDescriptor, questions []catalog.Question, gm session.GameMode) error {
	if hostID != desc.HostID {
		return session.NewError(session.NotHost, hostID)
	}
	if e.gs != nil {
		return session.NewError(session.AlreadyActive, e.lobbyCode)
	}

	if len(questions) == 0 && e.collab.Questions != nil {
		count := desc.SelectedQuestionCount
		if count <= 0 {
			count = 10
		}
		setIDs := desc.QuestionSetIDs
		if len(setIDs) == 0 {
			setIDs = []int64{e.cfg.DefaultQuestionSetID}
		}
		fetched, err := e.collab.Questions.RandomQuestions(catalog.QuestionQuery{
			QuestionSetIDs: setIDs,
			Count:          count,
		})
		if err != nil {
			e.logf("RandomQuestions failed for %s: %v", e.lobbyCode, err)
		} else {
			questions = fetched
		}
	}
	if len(questions) == 0 {
		questions = catalog.Fallback()
	}

	e.ruleset = mode.New(gm)

	gs := session.NewGameState(e.lobbyCode, newSessionID(), gm, questions)
	for _, r := range desc.Roster {
		gs.AddPlayer(session.NewPlayer(r.PlayerID, r.Username, r.Character, r.CharacterLevel, r.IsHost))
	}
	e.gs = gs

	modeCfg := session.ModeConfig{
		SurvivalLives:             e.cfg.SurvivalLives,
		WagerStartingScore:        e.cfg.WagerStartingScore,
		WagerPhaseDeadlineSeconds: e.cfg.WagerPhaseDeadlineSeconds,
		MaxMultiplier:             e.cfg.MaxMultiplier,
	}
	e.ruleset.Init(gs, modeCfg, e.collab.RNG)

	if e.collab.Modifiers != nil {
		for _, p := range gs.Roster {
			set, err := e.collab.Modifiers.ModifiersFor(p.ID)
			if err != nil {
				e.logf("ModifiersFor failed for %s: %v", p.ID, err)
				continue
			}
			p.Modifiers = set
			p.Title = set.Title
			p.CosmeticEffects = set.CosmeticEffects
		}
	}

	if e.collab.Sessions != nil {
		if err := e.collab.Sessions.CreateSession(e.lobbyCode, gs.SessionID); err != nil {
			e.logf("CreateSession failed for %s: %v", e.lobbyCode, err)
		}
	}

	gs.Status = session.StatusSyncing
	e.emitLobby(events.GameStarted, events.GameStartedPayload{TotalQuestions: gs.TotalQuestions, GameMode: string(gm)})
	e.startSyncCountdown()

	return nil
}

// startSyncCountdown emits the SyncCountdownSeconds-tick (five by default) game-syncing countdown on its own goroutine, then hands control back to the mailbox to
// flip PLAYING and kick off the first question.
func (e *SessionEngine) startSyncCountdown() {
	ticks := e.cfg.SyncCountdownSeconds
	stop := make(chan struct{})
	e.syncStop = stop

	go func() {
		for remaining := ticks; remaining >= 1; remaining-- {
			select {
			case <-stop:
				return
			default:
			}

			e.emitLobby(events.GameSyncing, events.GameSyncingPayload{TicksRemaining: remaining})

			select {
			case <-time.After(time.Second):
			case <-stop:
				return
			}
		}

		e.post(func() {
			if e.syncStop == stop {
				e.syncStop = nil
			}
			if e.gs == nil || e.gs.Status != session.StatusSyncing {
				return
			}
			e.gs.Status = session.StatusPlaying
			e.startNextQuestionLocked()
		})
	}()
}

// startNextQuestionLocked advances to the next question, or ends the
// session if none remain.
func (e *SessionEngine) startNextQuestionLocked() {
	if e.gs.CurrentQuestionIndex >= e.gs.TotalQuestions-1 {
		e.endSessionLocked()
		return
	}

	e.gs.CurrentQuestionIndex++
	q := e.gs.Questions[e.gs.CurrentQuestionIndex]
	if len(q.Options) > 1 {
		opts := append([]string(nil), q.Options...)
		session.ShuffleStrings(e.collab.RNG, opts)
		q.Options = opts
	}
	e.gs.CurrentQuestion = &q

	for _, p := range e.gs.Roster {
		if p.Eliminated {
			p.HasAnsweredCurrentQuestion = true
			continue
		}
		p.ResetRoundFlags()
	}

	if e.gs.Mode == session.ModeFastestFinger {
		e.gs.FirstCorrectPlayerID = ""
	}

	if e.gs.Mode == session.ModeSurvival {
		outcome := mode.SurvivalLivenessCheck(e.gs)
		if outcome.SurvivalEnded {
			e.emitLobby(events.SurvivalWinner, events.SurvivalWinnerPayload{PlayerID: outcome.SurvivalWinnerID})
			e.endSessionLocked()
			return
		}
	}

	if e.gs.Mode == session.ModeDuel {
		mode.DuelPair(e.gs)
		for _, p := range e.gs.Roster {
			if !p.IsDueling {
				p.HasAnsweredCurrentQuestion = true
			}
		}
	}

	if e.gs.Mode == session.ModeWager {
		e.gs.WagerPhaseActive = true
		e.gs.PlayerWagers = make(map[string]int)
		e.startWagerPhaseTimer()
		return
	}

	e.beginRoundLocked()
}

func (e *SessionEngine) startWagerPhaseTimer() {
	deadline := e.cfg.WagerPhaseDeadlineSeconds
	e.wagerTimer = time.AfterFunc(time.Duration(deadline)*time.Second, func() {
		e.post(func() { e.closeWagerPhaseLocked() })
	})
}

func (e *SessionEngine) closeWagerPhaseLocked() {
	if e.gs == nil || !e.gs.WagerPhaseActive {
		return
	}
	if e.wagerTimer != nil {
		e.wagerTimer.Stop()
		e.wagerTimer = nil
	}

	for _, p := range e.gs.Roster {
		if _, ok := e.gs.PlayerWagers[p.ID]; !ok {
			e.gs.PlayerWagers[p.ID] = 0
		}
	}
	e.gs.WagerPhaseActive = false

	e.beginRoundLocked()
}

// beginRoundLocked stamps the round start time, emits question-started (or
// duel-question-started), snapshots round-start scores, and starts the
// clock. Split out of startNextQuestionLocked because wager mode delays it
// behind the wager phase.
func (e *SessionEngine) beginRoundLocked() {
	e.gs.QuestionStartedAtMillis = time.Now().UnixMilli()
	e.gs.Status = session.StatusRoundActive

	e.gs.RoundStartScores = make(map[string]int, len(e.gs.Roster))
	for _, p := range e.gs.Roster {
		e.gs.RoundStartScores[p.ID] = p.Score
	}

	payload := events.QuestionStartedPayload{
		QuestionIndex:   e.gs.CurrentQuestionIndex,
		TotalQuestions:  e.gs.TotalQuestions,
		Prompt:          e.gs.CurrentQuestion.Prompt,
		Options:         e.gs.CurrentQuestion.Options,
		Kind:            string(e.gs.CurrentQuestion.Kind),
		DeadlineSeconds: e.ruleset.DeadlineSeconds(),
	}

	if e.gs.Mode == session.ModeDuel {
		e.emitLobby(events.DuelQuestionStarted, events.DuelQuestionStartedPayload{
			QuestionStartedPayload: payload,
			DuelistIDs:             []string{e.gs.CurrentDuelPair[0], e.gs.CurrentDuelPair[1]},
		})
	} else {
		e.emitLobby(events.QuestionStarted, payload)
	}

	e.startClock(e.ruleset.DeadlineSeconds())
}

// SubmitAnswer records a player's answer to the current question.
func (e *SessionEngine) SubmitAnswer(playerID, answer string, wagerPercent *int) error {
	if !e.locks.tryLock(e.lobbyCode, playerID) {
		return session.NewError(session.InProgress, playerID)
	}
	defer e.locks.unlock(e.lobbyCode, playerID)

	return e.call(func() error { return e.submitAnswerLocked(playerID, answer, wagerPercent) })
}

func (e *SessionEngine) submitAnswerLocked(playerID, answer string, wagerPercent *int) error {
	if e.gs == nil || e.gs.Status != session.StatusRoundActive {
		return session.NewError(session.NotActive, "no round in progress")
	}
	if e.gs.CurrentQuestion == nil {
		return session.NewError(session.NoQuestion, "")
	}

	p, ok := e.gs.Player(playerID)
	if !ok {
		return session.NewError(session.UnknownPlayer, playerID)
	}
	if e.gs.Mode == session.ModeSurvival && p.Eliminated {
		return session.NewError(session.Eliminated, playerID)
	}
	if e.gs.Mode == session.ModeDuel && !p.IsDueling {
		return session.NewError(session.NotDuelist, playerID)
	}
	if p.HasAnsweredCurrentQuestion {
		return session.NewError(session.AlreadyAnswered, playerID)
	}

	elapsed := int((time.Now().UnixMilli() - e.gs.QuestionStartedAtMillis) / 1000)
	if elapsed < 0 {
		elapsed = 0
	}

	p.CurrentAnswer = answer
	p.AnswerElapsedSeconds = elapsed
	p.HasAnsweredCurrentQuestion = true

	check := scoring.Check(answer, *e.gs.CurrentQuestion)

	ctx := scoring.Context{
		ElapsedSeconds:  elapsed,
		DeadlineSeconds: e.ruleset.DeadlineSeconds(),
		Multiplier:      p.Multiplier,
		Streak:          p.CurrentStreak,
		LastWrongStreak: p.LastWrongStreak,
		FreeWrongUsed:   p.FreeWrongUsed,
		MaxMultiplier:   e.cfg.MaxMultiplier,
		Modifiers:       p.Modifiers,
	}

	var result scoring.Result
	if check.PartialScore > 0 && check.PartialScore < 1 {
		result = scoring.CalculatePartialScore(check.PartialScore, ctx)
	} else {
		result = scoring.CalculateScore(check.IsCorrect, ctx)
	}

	oldScore := p.Score
	p.Score += result.Points
	if p.Score < 0 {
		p.Score = 0
	}
	p.CurrentStreak = result.NewStreak
	p.Multiplier = result.NewMultiplier
	p.LastWrongStreak = result.NewLastWrongStreak
	if result.FreeWrongConsumed {
		p.FreeWrongUsed++
	}
	if check.IsCorrect {
		p.CorrectCount++
	} else {
		p.WrongCount++
	}

	actx := session.AnswerContext{Elapsed: elapsed, Check: check, ScoreResult: result, WagerPercent: wagerPercent}
	outcome := e.ruleset.OnAnswer(e.gs, p, actx)

	if outcome.OverridePoints != nil {
		p.Score = oldScore + *outcome.OverridePoints
		if p.Score < 0 {
			p.Score = 0
		}
	}

	scoreDelta := p.Score - oldScore

	payload := events.AnswerReceivedPayload{
		PlayerID:       p.ID,
		Correct:        check.IsCorrect,
		Points:         scoreDelta,
		ScoreDelta:     scoreDelta,
		NewScore:       p.Score,
		NewStreak:      p.CurrentStreak,
		NewMultiplier:  p.Multiplier,
		IsFirstCorrect: outcome.IsFirstCorrect,
		LivesRemaining: outcome.LivesRemaining,
		WagerAmount:    outcome.WagerAmount,
	}

	if e.gs.Mode == session.ModePractice && !check.IsCorrect {
		payload.WaitForContinue = true
		payload.CorrectAnswer = e.gs.CurrentQuestion.CorrectAnswer
		payload.Hint = e.gs.CurrentQuestion.Hint
	}

	e.emitLobby(events.AnswerReceived, payload)

	if outcome.LivesRemaining != nil {
		e.emitLobby(events.LivesUpdated, events.LivesUpdatedPayload{PlayerID: p.ID, LivesRemaining: *outcome.LivesRemaining})
	}
	if outcome.JustEliminated {
		e.emitLobby(events.PlayerEliminated, events.PlayerEliminatedPayload{PlayerID: p.ID})
	}

	if outcome.WaitForContinue {
		e.gs.AwaitingContinue = true
		e.emitLobby(events.WaitForContinue, events.WaitForContinuePayload{
			CorrectAnswer: e.gs.CurrentQuestion.CorrectAnswer,
			Hint:          e.gs.CurrentQuestion.Hint,
			WaitingOn:     e.allPlayerIDs(),
		})
	}

	if outcome.BlockAdvance || e.gs.AwaitingContinue {
		return nil
	}

	if e.gs.AllAnswered() {
		roundOutcome := e.ruleset.OnRoundEnd(e.gs)
		e.handleRoundEndOutcome(roundOutcome)

		if e.gs.Status != session.StatusFinal && e.gs.Status != session.StatusDestroyed {
			e.endCurrentQuestionLocked()
		}
	}

	return nil
}

func (e *SessionEngine) handleRoundEndOutcome(o session.RoundEndOutcome) {
	if o.Duel != nil {
		next := []string{}
		if e.gs.CurrentDuelPair[0] != "" || e.gs.CurrentDuelPair[1] != "" {
			next = []string{e.gs.CurrentDuelPair[0], e.gs.CurrentDuelPair[1]}
		}
		e.emitLobby(events.DuelResult, events.DuelResultPayload{
			WinnerID:       o.Duel.WinnerID,
			LoserID:        o.Duel.LoserID,
			Draw:           o.Duel.Draw,
			NextDuelistIDs: next,
		})
	}
	if o.SurvivalEnded {
		e.emitLobby(events.SurvivalWinner, events.SurvivalWinnerPayload{PlayerID: o.SurvivalWinnerID})
	}
}

// SubmitWager records a player's wager during the wager phase.
func (e *SessionEngine) SubmitWager(playerID string, wagerPercent int) error {
	if !e.locks.tryLock(e.lobbyCode, playerID) {
		return session.NewError(session.InProgress, playerID)
	}
	defer e.locks.unlock(e.lobbyCode, playerID)

	return e.call(func() error { return e.submitWagerLocked(playerID, wagerPercent) })
}

func (e *SessionEngine) submitWagerLocked(playerID string, pct int) error {
	if e.gs == nil || !e.gs.WagerPhaseActive {
		return session.NewError(session.NoWagerPhase, playerID)
	}
	if _, ok := e.gs.Player(playerID); !ok {
		return session.NewError(session.UnknownPlayer, playerID)
	}

	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}

	e.gs.PlayerWagers[playerID] = pct
	e.emitLobby(events.WagerSubmitted, events.WagerSubmittedPayload{PlayerID: playerID, WagerPercent: pct, AllIn: pct == 100})

	if len(e.gs.PlayerWagers) >= len(e.gs.Roster) {
		e.closeWagerPhaseLocked()
	}

	return nil
}

// PracticeContinue advances a waiting player past a wrong-answer pause in
// practice mode.
func (e *SessionEngine) PracticeContinue(playerID string) error {
	return e.call(func() error { return e.practiceContinueLocked(playerID) })
}

func (e *SessionEngine) practiceContinueLocked(playerID string) error {
	if e.gs == nil {
		return session.NewError(session.NotActive, "")
	}
	if _, ok := e.gs.Player(playerID); !ok {
		return session.NewError(session.UnknownPlayer, playerID)
	}

	e.gs.PracticeContinued[playerID] = true
	if len(e.gs.PracticeContinued) < len(e.gs.Roster) {
		return nil
	}

	e.gs.AwaitingContinue = false
	e.gs.PracticeContinued = make(map[string]bool)
	e.endCurrentQuestionLocked()

	return nil
}

// endCurrentQuestionLocked closes out the current question, emits results,
// and schedules the next one.
func (e *SessionEngine) endCurrentQuestionLocked() {
	if e.gs == nil || e.gs.CurrentQuestion == nil {
		return
	}

	e.cancelClock()
	e.gs.Status = session.StatusRoundEnding

	results := make([]events.PlayerRoundResult, 0, len(e.gs.Roster))
	scores := make(map[string]int, len(e.gs.Roster))

	for _, p := range e.gs.Roster {
		check := scoring.CheckResult{}
		if p.HasAnsweredCurrentQuestion && p.CurrentAnswer != "" {
			check = scoring.Check(p.CurrentAnswer, *e.gs.CurrentQuestion)
		}

		results = append(results, events.PlayerRoundResult{
			PlayerID:        p.ID,
			Answered:        p.HasAnsweredCurrentQuestion,
			Correct:         check.IsCorrect,
			SubmittedAnswer: p.CurrentAnswer,
			ElapsedSeconds:  p.AnswerElapsedSeconds,
			ScoreDelta:      p.Score - e.gs.RoundStartScores[p.ID],
			NewScore:        p.Score,
		})
		scores[p.ID] = p.Score

		if !p.HasAnsweredCurrentQuestion {
			p.CurrentStreak = 0
			p.Multiplier = 1
		}
	}

	e.emitLobby(events.QuestionResults, events.QuestionResultsPayload{
		QuestionIndex: e.gs.CurrentQuestionIndex,
		CorrectAnswer: e.gs.CurrentQuestion.CorrectAnswer,
		Results:       results,
	})
	e.emitLobby(events.QuestionEnded, events.QuestionEndedPayload{
		QuestionIndex: e.gs.CurrentQuestionIndex,
		CorrectAnswer: e.gs.CurrentQuestion.CorrectAnswer,
		Scores:        scores,
	})

	if e.gs.Mode == session.ModeSurvival {
		outcome := mode.SurvivalLivenessCheck(e.gs)
		if outcome.SurvivalEnded {
			e.emitLobby(events.SurvivalWinner, events.SurvivalWinnerPayload{PlayerID: outcome.SurvivalWinnerID})
			e.endSessionLocked()
			return
		}
	}

	if e.gs.CurrentQuestionIndex >= e.gs.TotalQuestions-1 {
		e.endSessionLocked()
		return
	}

	delay := e.cfg.NextQuestionDelaySeconds
	e.nextQuestionTimer = time.AfterFunc(time.Duration(delay)*time.Second, func() {
		e.post(func() { e.startNextQuestionLocked() })
	})
}

// endSessionLocked finalizes the session: scores, XP, leaderboard, and
// registry cleanup.
func (e *SessionEngine) endSessionLocked() {
	if e.gs == nil || e.gs.Status == session.StatusFinal || e.gs.Status == session.StatusDestroyed {
		return
	}

	e.cancelAllTimersLocked()
	e.gs.Status = session.StatusFinal

	outcome := e.ruleset.OnSessionEnd(e.gs)

	finalScores := make(map[string]int, len(e.gs.Roster))
	for _, p := range e.gs.Roster {
		finalScores[p.ID] = p.Score
	}
	if e.collab.Sessions != nil {
		if err := e.collab.Sessions.CloseSession(e.gs.SessionID, finalScores); err != nil {
			e.logf("CloseSession failed for %s: %v", e.gs.SessionID, err)
		}
	}

	type scoredPlayer struct {
		p     *session.Player
		total int
	}

	ranked := make([]scoredPlayer, 0, len(e.gs.Roster))
	for _, p := range e.gs.Roster {
		total := p.Score
		if p.Modifiers != nil {
			stats := modifier.Stats{CorrectCount: p.CorrectCount, WrongCount: p.WrongCount, TotalScore: p.Score}
			total = scoring.ApplyEndGameBonuses(total, p.Modifiers, stats)
		}
		ranked = append(ranked, scoredPlayer{p, total})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].total > ranked[j].total })

	results := make([]catalog.PlayerResult, 0, len(ranked))
	leaderboard := make([]events.LeaderboardEntry, 0, len(ranked))
	var levelUps []events.PlayerLevelUpPayload

	for i, r := range ranked {
		placement := i + 1

		results = append(results, catalog.PlayerResult{
			PlayerID:     r.p.ID,
			Score:        r.total,
			CorrectCount: r.p.CorrectCount,
			WrongCount:   r.p.WrongCount,
			Placement:    placement,
		})

		entry := events.LeaderboardEntry{PlayerID: r.p.ID, Username: r.p.Username, Score: r.total, Placement: placement}

		if !outcome.SkipXP {
			baseXP := xp.BaseXPFromScore(r.total)
			stats := modifier.Stats{CorrectCount: r.p.CorrectCount, WrongCount: r.p.WrongCount, TotalScore: r.total}
			modifiedXP := scoring.CalculateModifiedXP(baseXP, r.p.Modifiers, stats)
			entry.XPAwarded = modifiedXP

			if e.collab.XP != nil {
				award, err := e.collab.XP.AwardXP(r.p.ID, modifiedXP)
				if err != nil {
					e.logf("AwardXP failed for %s: %v", r.p.ID, err)
				} else if award != nil && award.LevelUp {
					entry.LeveledUp = true
					entry.NewLevel = award.NewLevel
					levelUps = append(levelUps, events.PlayerLevelUpPayload{
						PlayerID: r.p.ID, OldLevel: award.OldLevel, NewLevel: award.NewLevel, NewlyUnlockedPerks: award.NewlyUnlockedPerks,
					})
				}
			}
		}

		leaderboard = append(leaderboard, entry)
	}

	if e.collab.Results != nil {
		if err := e.collab.Results.RecordPlayerResults(e.gs.SessionID, results); err != nil {
			e.logf("RecordPlayerResults failed for %s: %v", e.gs.SessionID, err)
		}
	}

	e.emitLobby(events.GameEnded, events.GameEndedPayload{Leaderboard: leaderboard})
	for _, lu := range levelUps {
		e.emitLobby(events.PlayerLevelUp, lu)
	}

	winner := ""
	if outcome.DuelMostWinsPlayerID != "" {
		winner = outcome.DuelMostWinsPlayerID
		e.emitLobby(events.DuelEnded, events.DuelEndedPayload{MostWinsPlayerID: winner})
	} else if len(ranked) > 0 {
		winner = ranked[0].p.ID
	}
	e.emitLobby(events.GameOver, events.GameOverPayload{WinnerPlayerID: winner})

	e.gs.Status = session.StatusDestroyed
	e.destroyed = true

	if e.registry != nil {
		e.registry.destroy(e.gs.LobbyCode)
	}
}

// Disconnect marks a player disconnected and starts their grace-period
// timer.
func (e *SessionEngine) Disconnect(playerID string) error {
	return e.call(func() error { return e.disconnectLocked(playerID) })
}

func (e *SessionEngine) disconnectLocked(playerID string) error {
	if e.gs == nil {
		return session.NewError(session.NotActive, "")
	}
	p, ok := e.gs.Player(playerID)
	if !ok {
		return session.NewError(session.UnknownPlayer, playerID)
	}

	p.IsConnected = false
	e.emitLobby(events.PlayerDisconnected, events.PlayerDisconnectedPayload{PlayerID: playerID})

	if t, ok := e.disconnectTimers[playerID]; ok {
		t.Stop()
	}

	grace := e.cfg.DisconnectGraceSeconds
	e.disconnectTimers[playerID] = time.AfterFunc(time.Duration(grace)*time.Second, func() {
		e.post(func() { e.confirmDisconnectLocked(playerID) })
	})

	return nil
}

func (e *SessionEngine) confirmDisconnectLocked(playerID string) {
	if e.gs == nil {
		return
	}
	p, ok := e.gs.Player(playerID)
	if !ok || p.IsConnected {
		return
	}

	delete(e.disconnectTimers, playerID)
	e.emitLobby(events.PlayerDisconnectConfirmed, events.PlayerDisconnectConfirmedPayload{PlayerID: playerID})

	allDisconnected := true
	for _, pl := range e.gs.Roster {
		if pl.IsConnected {
			allDisconnected = false
			break
		}
	}
	if allDisconnected {
		e.endSessionLocked()
	}
}

// Reconnect cancels a pending disconnect and marks the player connected
// again.
func (e *SessionEngine) Reconnect(playerID string) error {
	return e.call(func() error { return e.reconnectLocked(playerID) })
}

func (e *SessionEngine) reconnectLocked(playerID string) error {
	if e.gs == nil {
		return session.NewError(session.NotActive, "")
	}
	p, ok := e.gs.Player(playerID)
	if !ok {
		return session.NewError(session.UnknownPlayer, playerID)
	}

	if t, ok := e.disconnectTimers[playerID]; ok {
		t.Stop()
		delete(e.disconnectTimers, playerID)
	}

	p.IsConnected = true
	e.emitLobby(events.PlayerReconnected, events.PlayerReconnectedPayload{PlayerID: playerID})

	return nil
}

// cancelAllTimersLocked cancels every engine-owned timer atomically.
func (e *SessionEngine) cancelAllTimersLocked() {
	e.cancelClock()

	if e.syncStop != nil {
		close(e.syncStop)
		e.syncStop = nil
	}
	if e.nextQuestionTimer != nil {
		e.nextQuestionTimer.Stop()
		e.nextQuestionTimer = nil
	}
	if e.wagerTimer != nil {
		e.wagerTimer.Stop()
		e.wagerTimer = nil
	}
	for id, t := range e.disconnectTimers {
		t.Stop()
		delete(e.disconnectTimers, id)
	}
}
