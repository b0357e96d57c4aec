package store

import (
	"context"
	"fmt"

	"github.com/sproutfi/sprout/ent"
	"github.com/sproutfi/sprout/ent/challengeevent"
)

func (r *eventRepo) AppendChallenge(ctx context.Context, data ChallengeEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ChallengeEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetChallengeID(data.ChallengeID).
		SetChallengeTitle(data.ChallengeTitle).
		SetChallengeType(data.ChallengeType).
		SetXpAwarded(data.XPAwarded).
		SetCoinsAwarded(data.CoinsAwarded).
		SetRepeat(data.Repeat).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save challenge event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryChallengeEvents(ctx context.Context, opts QueryOpts) ([]ChallengeEventRecord, error) {
	query := r.client.ChallengeEvent.Query().
		Order(ent.Desc(challengeevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(challengeevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(challengeevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(challengeevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(challengeevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query challenge events: %w", err)
	}

	records := make([]ChallengeEventRecord, len(events))
	for i, e := range events {
		records[i] = ChallengeEventRecord{
			SessionID:      e.SessionID,
			ChallengeID:    e.ChallengeID,
			ChallengeTitle: e.ChallengeTitle,
			ChallengeType:  e.ChallengeType,
			XPAwarded:      e.XpAwarded,
			CoinsAwarded:   e.CoinsAwarded,
			Repeat:         e.Repeat,
			Sequence:       e.Sequence,
			Timestamp:      e.Timestamp,
		}
	}
	return records, nil
}

func (r *eventRepo) ChallengeCounts(ctx context.Context) (map[string]int, int, error) {
	events, err := r.client.ChallengeEvent.Query().All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("query challenge counts: %w", err)
	}

	byType := make(map[string]int)
	for _, e := range events {
		byType[e.ChallengeType]++
	}
	return byType, len(events), nil
}
