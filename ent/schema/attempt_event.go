package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records one graded answer within a worksheet session.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("question_id").
			NotEmpty().
			Comment("Question ID within the worksheet, e.g. q3 or q3.1"),
		field.String("question_type").
			NotEmpty().
			Comment("Question shape tag, e.g. fill_blank"),
		field.String("question_text").
			Comment("The prompt shown"),
		field.String("correct_answer").
			Comment("Paper-transcribable canonical answer"),
		field.String("learner_answer").
			Comment("What the learner submitted, rendered to text"),
		field.Bool("correct").
			Comment("Whether the answer was graded correct"),
		field.Float("partial_score").
			Default(0).
			Comment("Fraction of gradable units correct; 0 when not applicable"),
		field.Bool("has_partial").
			Default(false).
			Comment("Whether partial_score is meaningful for this type"),
		field.String("feedback").
			Comment("Feedback string surfaced to the learner"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("question_type"),
		index.Fields("correct"),
	}
}
