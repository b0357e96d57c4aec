package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendQuizAnswer(ctx context.Context, data QuizAnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.QuizAnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetQuestionIndex(data.QuestionIndex).
		SetOptionIndex(data.OptionIndex).
		SetOverwrite(data.Overwrite).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save quiz answer event: %w", err)
	}
	return nil
}
