// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AssessmentEventsColumns holds the columns for the "assessment_events" table.
	AssessmentEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "placed_title", Type: field.TypeString, Nullable: true},
		{Name: "placed_level", Type: field.TypeInt, Default: 0},
		{Name: "recommended_module", Type: field.TypeInt, Default: 0},
	}
	// AssessmentEventsTable holds the schema information for the "assessment_events" table.
	AssessmentEventsTable = &schema.Table{
		Name:       "assessment_events",
		Columns:    AssessmentEventsColumns,
		PrimaryKey: []*schema.Column{AssessmentEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "assessmentevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AssessmentEventsColumns[1]},
			},
			{
				Name:    "assessmentevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AssessmentEventsColumns[2]},
			},
			{
				Name:    "assessmentevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AssessmentEventsColumns[3]},
			},
		},
	}
	// TaskEventsColumns holds the columns for the "task_events" table.
	TaskEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "task_id", Type: field.TypeInt},
		{Name: "task_title", Type: field.TypeString},
		{Name: "module", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "xp_awarded", Type: field.TypeInt},
		{Name: "badge", Type: field.TypeString, Nullable: true},
		{Name: "quiz_all_correct", Type: field.TypeBool, Default: false},
	}
	// TaskEventsTable holds the schema information for the "task_events" table.
	TaskEventsTable = &schema.Table{
		Name:       "task_events",
		Columns:    TaskEventsColumns,
		PrimaryKey: []*schema.Column{TaskEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "taskevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{TaskEventsColumns[1]},
			},
			{
				Name:    "taskevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{TaskEventsColumns[2]},
			},
			{
				Name:    "taskevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{TaskEventsColumns[3]},
			},
			{
				Name:    "taskevent_task_id",
				Unique:  false,
				Columns: []*schema.Column{TaskEventsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AssessmentEventsTable,
		TaskEventsTable,
	}
)

func init() {
}
