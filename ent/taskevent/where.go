// Code generated by ent, DO NOT EDIT.

package taskevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/kaiwen/hrquest/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldEQ(FieldSessionID, v))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v int) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldEQ(FieldTaskID, v))
}

// TaskTitle applies equality check predicate on the "task_title" field. It's identical to TaskTitleEQ.
func TaskTitle(v string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldEQ(FieldTaskTitle, v))
}

// Module applies equality check predicate on the "module" field. It's identical to ModuleEQ.
func Module(v string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldEQ(FieldModule, v))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldEQ(FieldKind, v))
}

// XpAwarded applies equality check predicate on the "xp_awarded" field. It's identical to XpAwardedEQ.
func XpAwarded(v int) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldEQ(FieldXpAwarded, v))
}

// Badge applies equality check predicate on the "badge" field. It's identical to BadgeEQ.
func Badge(v string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldEQ(FieldBadge, v))
}

// QuizAllCorrect applies equality check predicate on the "quiz_all_correct" field. It's identical to QuizAllCorrectEQ.
func QuizAllCorrect(v bool) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldEQ(FieldQuizAllCorrect, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v int) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v int) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...int) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...int) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v int) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v int) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v int) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v int) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldLTE(FieldTaskID, v))
}

// TaskTitleEQ applies the EQ predicate on the "task_title" field.
func TaskTitleEQ(v string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldEQ(FieldTaskTitle, v))
}

// TaskTitleNEQ applies the NEQ predicate on the "task_title" field.
func TaskTitleNEQ(v string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldNEQ(FieldTaskTitle, v))
}

// TaskTitleIn applies the In predicate on the "task_title" field.
func TaskTitleIn(vs ...string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldIn(FieldTaskTitle, vs...))
}

// TaskTitleNotIn applies the NotIn predicate on the "task_title" field.
func TaskTitleNotIn(vs ...string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldNotIn(FieldTaskTitle, vs...))
}

// TaskTitleGT applies the GT predicate on the "task_title" field.
func TaskTitleGT(v string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldGT(FieldTaskTitle, v))
}

// TaskTitleGTE applies the GTE predicate on the "task_title" field.
func TaskTitleGTE(v string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldGTE(FieldTaskTitle, v))
}

// TaskTitleLT applies the LT predicate on the "task_title" field.
func TaskTitleLT(v string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldLT(FieldTaskTitle, v))
}

// TaskTitleLTE applies the LTE predicate on the "task_title" field.
func TaskTitleLTE(v string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldLTE(FieldTaskTitle, v))
}

// TaskTitleContains applies the Contains predicate on the "task_title" field.
func TaskTitleContains(v string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldContains(FieldTaskTitle, v))
}

// TaskTitleHasPrefix applies the HasPrefix predicate on the "task_title" field.
func TaskTitleHasPrefix(v string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldHasPrefix(FieldTaskTitle, v))
}

// TaskTitleHasSuffix applies the HasSuffix predicate on the "task_title" field.
func TaskTitleHasSuffix(v string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldHasSuffix(FieldTaskTitle, v))
}

// TaskTitleEqualFold applies the EqualFold predicate on the "task_title" field.
func TaskTitleEqualFold(v string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldEqualFold(FieldTaskTitle, v))
}

// TaskTitleContainsFold applies the ContainsFold predicate on the "task_title" field.
func TaskTitleContainsFold(v string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldContainsFold(FieldTaskTitle, v))
}

// ModuleEQ applies the EQ predicate on the "module" field.
func ModuleEQ(v string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldEQ(FieldModule, v))
}

// ModuleNEQ applies the NEQ predicate on the "module" field.
func ModuleNEQ(v string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldNEQ(FieldModule, v))
}

// ModuleIn applies the In predicate on the "module" field.
func ModuleIn(vs ...string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldIn(FieldModule, vs...))
}

// ModuleNotIn applies the NotIn predicate on the "module" field.
func ModuleNotIn(vs ...string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldNotIn(FieldModule, vs...))
}

// ModuleGT applies the GT predicate on the "module" field.
func ModuleGT(v string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldGT(FieldModule, v))
}

// ModuleGTE applies the GTE predicate on the "module" field.
func ModuleGTE(v string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldGTE(FieldModule, v))
}

// ModuleLT applies the LT predicate on the "module" field.
func ModuleLT(v string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldLT(FieldModule, v))
}

// ModuleLTE applies the LTE predicate on the "module" field.
func ModuleLTE(v string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldLTE(FieldModule, v))
}

// ModuleContains applies the Contains predicate on the "module" field.
func ModuleContains(v string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldContains(FieldModule, v))
}

// ModuleHasPrefix applies the HasPrefix predicate on the "module" field.
func ModuleHasPrefix(v string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldHasPrefix(FieldModule, v))
}

// ModuleHasSuffix applies the HasSuffix predicate on the "module" field.
func ModuleHasSuffix(v string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldHasSuffix(FieldModule, v))
}

// ModuleEqualFold applies the EqualFold predicate on the "module" field.
func ModuleEqualFold(v string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldEqualFold(FieldModule, v))
}

// ModuleContainsFold applies the ContainsFold predicate on the "module" field.
func ModuleContainsFold(v string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldContainsFold(FieldModule, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldContainsFold(FieldKind, v))
}

// XpAwardedEQ applies the EQ predicate on the "xp_awarded" field.
func XpAwardedEQ(v int) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldEQ(FieldXpAwarded, v))
}

// XpAwardedNEQ applies the NEQ predicate on the "xp_awarded" field.
func XpAwardedNEQ(v int) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldNEQ(FieldXpAwarded, v))
}

// XpAwardedIn applies the In predicate on the "xp_awarded" field.
func XpAwardedIn(vs ...int) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldIn(FieldXpAwarded, vs...))
}

// XpAwardedNotIn applies the NotIn predicate on the "xp_awarded" field.
func XpAwardedNotIn(vs ...int) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldNotIn(FieldXpAwarded, vs...))
}

// XpAwardedGT applies the GT predicate on the "xp_awarded" field.
func XpAwardedGT(v int) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldGT(FieldXpAwarded, v))
}

// XpAwardedGTE applies the GTE predicate on the "xp_awarded" field.
func XpAwardedGTE(v int) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldGTE(FieldXpAwarded, v))
}

// XpAwardedLT applies the LT predicate on the "xp_awarded" field.
func XpAwardedLT(v int) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldLT(FieldXpAwarded, v))
}

// XpAwardedLTE applies the LTE predicate on the "xp_awarded" field.
func XpAwardedLTE(v int) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldLTE(FieldXpAwarded, v))
}

// BadgeEQ applies the EQ predicate on the "badge" field.
func BadgeEQ(v string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldEQ(FieldBadge, v))
}

// BadgeNEQ applies the NEQ predicate on the "badge" field.
func BadgeNEQ(v string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldNEQ(FieldBadge, v))
}

// BadgeIn applies the In predicate on the "badge" field.
func BadgeIn(vs ...string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldIn(FieldBadge, vs...))
}

// BadgeNotIn applies the NotIn predicate on the "badge" field.
func BadgeNotIn(vs ...string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldNotIn(FieldBadge, vs...))
}

// BadgeGT applies the GT predicate on the "badge" field.
func BadgeGT(v string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldGT(FieldBadge, v))
}

// BadgeGTE applies the GTE predicate on the "badge" field.
func BadgeGTE(v string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldGTE(FieldBadge, v))
}

// BadgeLT applies the LT predicate on the "badge" field.
func BadgeLT(v string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldLT(FieldBadge, v))
}

// BadgeLTE applies the LTE predicate on the "badge" field.
func BadgeLTE(v string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldLTE(FieldBadge, v))
}

// BadgeContains applies the Contains predicate on the "badge" field.
func BadgeContains(v string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldContains(FieldBadge, v))
}

// BadgeHasPrefix applies the HasPrefix predicate on the "badge" field.
func BadgeHasPrefix(v string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldHasPrefix(FieldBadge, v))
}

// BadgeHasSuffix applies the HasSuffix predicate on the "badge" field.
func BadgeHasSuffix(v string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldHasSuffix(FieldBadge, v))
}

// BadgeIsNil applies the IsNil predicate on the "badge" field.
func BadgeIsNil() predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldIsNull(FieldBadge))
}

// BadgeNotNil applies the NotNil predicate on the "badge" field.
func BadgeNotNil() predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldNotNull(FieldBadge))
}

// BadgeEqualFold applies the EqualFold predicate on the "badge" field.
func BadgeEqualFold(v string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldEqualFold(FieldBadge, v))
}

// BadgeContainsFold applies the ContainsFold predicate on the "badge" field.
func BadgeContainsFold(v string) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldContainsFold(FieldBadge, v))
}

// QuizAllCorrectEQ applies the EQ predicate on the "quiz_all_correct" field.
func QuizAllCorrectEQ(v bool) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldEQ(FieldQuizAllCorrect, v))
}

// QuizAllCorrectNEQ applies the NEQ predicate on the "quiz_all_correct" field.
func QuizAllCorrectNEQ(v bool) predicate.TaskEvent {
	return predicate.TaskEvent(sql.FieldNEQ(FieldQuizAllCorrect, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TaskEvent) predicate.TaskEvent {
	return predicate.TaskEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TaskEvent) predicate.TaskEvent {
	return predicate.TaskEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TaskEvent) predicate.TaskEvent {
	return predicate.TaskEvent(sql.NotPredicates(p))
}
