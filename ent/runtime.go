// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/kaiwen/hrquest/ent/assessmentevent"
	"github.com/kaiwen/hrquest/ent/schema"
	"github.com/kaiwen/hrquest/ent/taskevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	assessmenteventMixin := schema.AssessmentEvent{}.Mixin()
	assessmenteventMixinFields0 := assessmenteventMixin[0].Fields()
	_ = assessmenteventMixinFields0
	assessmenteventFields := schema.AssessmentEvent{}.Fields()
	_ = assessmenteventFields
	// assessmenteventDescTimestamp is the schema descriptor for timestamp field.
	assessmenteventDescTimestamp := assessmenteventMixinFields0[1].Descriptor()
	// assessmentevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	assessmentevent.DefaultTimestamp = assessmenteventDescTimestamp.Default.(func() time.Time)
	// assessmenteventDescSessionID is the schema descriptor for session_id field.
	assessmenteventDescSessionID := assessmenteventFields[0].Descriptor()
	// assessmentevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	assessmentevent.SessionIDValidator = assessmenteventDescSessionID.Validators[0].(func(string) error)
	// assessmenteventDescAction is the schema descriptor for action field.
	assessmenteventDescAction := assessmenteventFields[1].Descriptor()
	// assessmentevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	assessmentevent.ActionValidator = assessmenteventDescAction.Validators[0].(func(string) error)
	// assessmenteventDescPlacedLevel is the schema descriptor for placed_level field.
	assessmenteventDescPlacedLevel := assessmenteventFields[3].Descriptor()
	// assessmentevent.DefaultPlacedLevel holds the default value on creation for the placed_level field.
	assessmentevent.DefaultPlacedLevel = assessmenteventDescPlacedLevel.Default.(int)
	// assessmenteventDescRecommendedModule is the schema descriptor for recommended_module field.
	assessmenteventDescRecommendedModule := assessmenteventFields[4].Descriptor()
	// assessmentevent.DefaultRecommendedModule holds the default value on creation for the recommended_module field.
	assessmentevent.DefaultRecommendedModule = assessmenteventDescRecommendedModule.Default.(int)
	taskeventMixin := schema.TaskEvent{}.Mixin()
	taskeventMixinFields0 := taskeventMixin[0].Fields()
	_ = taskeventMixinFields0
	taskeventFields := schema.TaskEvent{}.Fields()
	_ = taskeventFields
	// taskeventDescTimestamp is the schema descriptor for timestamp field.
	taskeventDescTimestamp := taskeventMixinFields0[1].Descriptor()
	// taskevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	taskevent.DefaultTimestamp = taskeventDescTimestamp.Default.(func() time.Time)
	// taskeventDescSessionID is the schema descriptor for session_id field.
	taskeventDescSessionID := taskeventFields[0].Descriptor()
	// taskevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	taskevent.SessionIDValidator = taskeventDescSessionID.Validators[0].(func(string) error)
	// taskeventDescTaskID is the schema descriptor for task_id field.
	taskeventDescTaskID := taskeventFields[1].Descriptor()
	// taskevent.TaskIDValidator is a validator for the "task_id" field. It is called by the builders before save.
	taskevent.TaskIDValidator = taskeventDescTaskID.Validators[0].(func(int) error)
	// taskeventDescTaskTitle is the schema descriptor for task_title field.
	taskeventDescTaskTitle := taskeventFields[2].Descriptor()
	// taskevent.TaskTitleValidator is a validator for the "task_title" field. It is called by the builders before save.
	taskevent.TaskTitleValidator = taskeventDescTaskTitle.Validators[0].(func(string) error)
	// taskeventDescModule is the schema descriptor for module field.
	taskeventDescModule := taskeventFields[3].Descriptor()
	// taskevent.ModuleValidator is a validator for the "module" field. It is called by the builders before save.
	taskevent.ModuleValidator = taskeventDescModule.Validators[0].(func(string) error)
	// taskeventDescKind is the schema descriptor for kind field.
	taskeventDescKind := taskeventFields[4].Descriptor()
	// taskevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	taskevent.KindValidator = taskeventDescKind.Validators[0].(func(string) error)
	// taskeventDescQuizAllCorrect is the schema descriptor for quiz_all_correct field.
	taskeventDescQuizAllCorrect := taskeventFields[7].Descriptor()
	// taskevent.DefaultQuizAllCorrect holds the default value on creation for the quiz_all_correct field.
	taskevent.DefaultQuizAllCorrect = taskeventDescQuizAllCorrect.Default.(bool)
}
