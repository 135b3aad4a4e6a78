package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records the summary of one graded worksheet.
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Unique().
			Comment("UUID for the grading session"),
		field.String("worksheet_title").
			Comment("Worksheet title as extracted, may be empty"),
		field.Int("questions_graded").
			Comment("Gradable units in the worksheet, sub-questions included"),
		field.Int("correct_answers").
			Comment("Units graded fully correct"),
		field.Float("score").
			Comment("Earned units including partial credit"),
		field.Float("percent").
			Comment("score / questions_graded * 100"),
		field.Int("stars").
			Comment("Stars awarded for the session (0-3)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
	}
}
